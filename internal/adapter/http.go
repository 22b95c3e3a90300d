package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/utils"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

type httpRegistrarClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRegistrarClient constructs an HTTP/REST implementation of
// [RegistrarClient]. It normalises and validates address, then configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPRegistrarClient(address string, timeout time.Duration, logger *logger.Logger) (RegistrarClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid registrar address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpRegistrarClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [RegistrarClient]. It POSTs the token to
// POST /api/register and decodes the created registry record.
func (h *httpRegistrarClient) Register(ctx context.Context, token string) (models.RegisterResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Token: token}).
		Post("/api/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	var registered models.RegisterResponse
	if err = json.Unmarshal(resp.Body(), &registered); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register decode response: %w", err)
	}

	return registered, nil
}

// IssueToken implements [RegistrarClient]. It POSTs spec to POST /api/token
// and decodes the issued token.
func (h *httpRegistrarClient) IssueToken(ctx context.Context, spec models.IssueSpec) (models.IssuedToken, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(spec).
		Post("/api/token")
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("issue token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IssuedToken{}, err
	}

	var issued models.IssuedToken
	if err = json.Unmarshal(resp.Body(), &issued); err != nil {
		return models.IssuedToken{}, fmt.Errorf("issue token decode response: %w", err)
	}

	return issued, nil
}

// Servers implements [RegistrarClient]. It GETs /api/servers.
func (h *httpRegistrarClient) Servers(ctx context.Context) ([]models.Server, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/servers")
	if err != nil {
		return nil, fmt.Errorf("servers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var servers []models.Server
	if err = json.Unmarshal(resp.Body(), &servers); err != nil {
		return nil, fmt.Errorf("servers decode response: %w", err)
	}

	return servers, nil
}
