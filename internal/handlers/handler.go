package handlers

import (
	"go.uber.org/zap"

	"qr-dine/internal/service"
)

type Handler struct {
	Service *service.Service
	Logger  *zap.Logger
}

func New(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: svc, Logger: logger}
}
