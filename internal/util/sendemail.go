package util

import (
	"bytes"
	"embed"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed template/*.html
var TemplateFS embed.FS

type Mailer struct {
	SMTPHost       string
	SMTPPort       int
	SenderName     string
	SenderEmail    string
	SenderPassword string
}

func (mailer *Mailer) Send(receiverEmail string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(mailer.SenderEmail, mailer.SenderName))
	message.SetHeader("To", receiverEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(
		mailer.SMTPHost,
		mailer.SMTPPort,
		mailer.SenderEmail,
		mailer.SenderPassword,
	)

	err := dialer.DialAndSend(message)
	if err != nil {
		return err
	}

	return nil
}

func RenderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(TemplateFS, "template/"+name)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, data)
	if err != nil {
		return "", err
	}

	return body.String(), nil
}
