package http

import (
	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins map[string]struct{}
	allowAnyOrigin bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		allowedOrigins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
		logger:         logger,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			h.allowAnyOrigin = true
			continue
		}
		h.allowedOrigins[origin] = struct{}{}
	}

	logger.Info().Strs("allowed_origins", cfg.AllowedOrigins).Msg("http handler created")
	return h
}
