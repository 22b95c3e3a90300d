package service

import (
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/config"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/store"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
)

// Services aggregates the registrar's domain services and is the single
// dependency handed to the transport layer.
type Services struct {
	TokenIssue   TokenIssuer
	Registration Registrar
}

// NewServices wires the domain services over a shared token codec.
func NewServices(cfg config.App, servers store.ServerRepository, log *logger.Logger) *Services {
	codec := token.NewCodec()

	return &Services{
		TokenIssue:   NewTokenIssueService(codec, log),
		Registration: NewRegistrationService(codec, servers, cfg.TokenTTL, log),
	}
}
