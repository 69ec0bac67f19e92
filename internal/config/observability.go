package config

import (
	"github.com/ferdian3456/jobboard/internal/observability"

	"github.com/knadh/koanf/v2"
)

func LoadObservabilityConfig(config *koanf.Koanf) observability.Config {
	observabilityConfig := observability.Config{
		Enabled:      config.String("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		OtelEndpoint: config.String("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  config.String("OTEL_SERVICE_NAME"),
		Environment:  config.String("ENVIRONMENT"),
		OtelHeaders:  config.String("OTEL_EXPORTER_OTLP_HEADERS"),
	}

	if observabilityConfig.ServiceName == "" {
		observabilityConfig.ServiceName = "jobboard"
	}

	return observabilityConfig
}
