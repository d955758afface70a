package service

import (
	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/internal/config"
	"github.com/MKhiriev/go-api-caller/internal/logger"
)

type Services struct {
	DemoIntegrationService DemoIntegrationService
}

// NewServices builds the integrations on top of caller. Every service is
// wrapped with its input validation.
func NewServices(caller adapter.APICaller, cfg config.ClientConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		DemoIntegrationService: NewDemoIntegrationValidationService().
			Wrap(NewDemoIntegrationService(caller, cfg.Auth, logger)),
	}
}
