package http

import (
	"time"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/validators"
)

// maxRequestBody caps a container request body. Documents are split into
// chunks well below this by the client.
const maxRequestBody = 32 << 20

type Handler struct {
	services  *service.Services
	validator validators.Validator

	credential     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewSyncDataValidator(),
		credential:     cfg.Credential,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
