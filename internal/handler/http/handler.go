package http

import (
	"github.com/MKhiriev/go-blog-keeper/internal/config"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer enables the HashSHA256 body signature check when non-nil.
	signer *utils.PayloadSigner

	limiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		signer:   utils.NewPayloadSigner(cfg.App.HashKey),
		limiter:  newIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		logger:   logger,
	}
}
