package config

import (
	"github.com/ferdian3456/jobboard/internal/imaging"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

func NewImageCodec(config *koanf.Koanf, log *zap.Logger) imaging.Codec {
	codec, err := imaging.NewCodec(config.String("IMAGE_CODEC"))
	if err != nil {
		log.Fatal("failed to create image codec", zap.Error(err))
	}

	return codec
}
