package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/service"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/store"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.Registration.Register(ctx, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrMalformedToken):
			log.Err(err).Msg("malformed registration token")
			http.Error(w, "malformed registration token", http.StatusBadRequest)
			return
		case errors.Is(err, token.ErrDecryption):
			log.Err(err).Msg("registration token failed to decrypt")
			http.Error(w, "registration token failed to decrypt", http.StatusUnprocessableEntity)
			return
		case errors.Is(err, token.ErrMalformedPayload):
			log.Err(err).Msg("registration token carries a malformed payload")
			http.Error(w, "registration token carries a malformed payload", http.StatusUnprocessableEntity)
			return
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("registration token is expired")
			http.Error(w, "registration token is expired", http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrHostnameAlreadyRegistered):
			log.Err(err).Msg("hostname already registered")
			http.Error(w, "hostname already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during server registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	resp := models.RegisterResponse{
		ID:           registered.ID,
		Hostname:     registered.Hostname,
		RegisteredAt: registered.RegisteredAt.UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Err(err).Msg("error writing registration response")
	}
}

func (h *Handler) listServers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	servers, err := h.services.Registration.Servers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing registered servers")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// an empty registry serializes as [], not null
	if servers == nil {
		servers = []models.Server{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(servers); err != nil {
		log.Err(err).Msg("error writing servers response")
	}
}
