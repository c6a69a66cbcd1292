package http

import (
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/service"
	"github.com/MKhiriev/go-card-keeper/internal/store"
)

type Handler struct {
	bridge *service.Bridge
	store  *store.Handle

	app         config.App
	corsOrigins []string

	logger *logger.Logger
}

func NewHandler(bridge *service.Bridge, st *store.Handle, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		bridge:      bridge,
		store:       st,
		app:         cfg.App,
		corsOrigins: cfg.Server.CORSOrigins,
		logger:      logger,
	}
}
