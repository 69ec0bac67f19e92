package config

import (
	"github.com/ferdian3456/jobboard/internal/util"

	"github.com/knadh/koanf/v2"
)

func NewMailer(config *koanf.Koanf) *util.Mailer {
	port := config.Int("SMTP_PORT")
	if port == 0 {
		port = 587
	}

	return &util.Mailer{
		SMTPHost:       config.String("SMTP_HOST"),
		SMTPPort:       port,
		SenderName:     config.String("SENDER_NAME"),
		SenderEmail:    config.String("SENDER_EMAIL"),
		SenderPassword: config.String("SENDER_PASSWORD"),
	}
}
