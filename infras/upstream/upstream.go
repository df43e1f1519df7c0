// Package upstream is the single HTTP doorway to the backend
// collaborators (api-gateway, booking-service, room-service,
// user-service). The back office owns no storage of its own: every
// authoritative read and write goes through here.
package upstream

//go:generate go run go.uber.org/mock/mockgen -source=./upstream.go -destination=./mocks/upstream_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const defaultTimeoutSeconds = 10

// Service names a backend collaborator so callers pick a base URL
// without carrying URLs around.
type Service string

const (
	ServiceGateway Service = "gateway"
	ServiceBooking Service = "booking"
	ServiceRoom    Service = "room"
	ServiceUser    Service = "user"
)

// Client performs JSON round-trips against a backend service. The
// session bearer token travels on the context (see auth.Session);
// requests without a session go out unauthenticated, which the gateway
// is free to reject.
type Client interface {
	Get(ctx context.Context, service Service, path string, query url.Values, out any) error
	Post(ctx context.Context, service Service, path string, body, out any) error
	Put(ctx context.Context, service Service, path string, body any) error
	Delete(ctx context.Context, service Service, path string) error
}

type clientImpl struct {
	config *config.Config
	http   *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := cfg.Upstream.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		config: cfg,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) baseURL(service Service) string {
	switch service {
	case ServiceBooking:
		return c.config.Upstream.BookingURL
	case ServiceRoom:
		return c.config.Upstream.RoomURL
	case ServiceUser:
		return c.config.Upstream.UserURL
	default:
		return c.config.Upstream.GatewayURL
	}
}

func (c *clientImpl) Get(ctx context.Context, service Service, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, service, path, query, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, service Service, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, service, path, nil, body, out)
}

func (c *clientImpl) Put(ctx context.Context, service Service, path string, body any) error {
	return c.do(ctx, http.MethodPut, service, path, nil, body, nil)
}

func (c *clientImpl) Delete(ctx context.Context, service Service, path string) error {
	return c.do(ctx, http.MethodDelete, service, path, nil, nil, nil)
}

func (c *clientImpl) do(ctx context.Context, method string, service Service, path string, query url.Values, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelUpstreamScopeName, fmt.Sprintf("%s.%s %s", constant.OtelUpstreamScopeName, method, path))
	defer scope.End()
	defer scope.TraceIfError(err)

	fullURL := c.baseURL(service) + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	scope.SetAttribute(constant.OtelURLAttributeKey, fullURL)

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal request body: %w", marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if session, ok := auth.SessionFromContext(ctx); ok {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+session.Token())
	}

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("url", fullURL).Msg("upstream request failed")

		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		message := readErrorMessage(response.Body)
		if message == "" {
			message = fmt.Sprintf("upstream %s returned status %d", service, response.StatusCode)
		}

		log.Error().
			Int("status", response.StatusCode).
			Str("url", fullURL).
			Str("message", message).
			Msg("upstream rejected request")

		return failure.Upstream(response.StatusCode, message) //nolint:wrapcheck
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}

// readErrorMessage extracts a human-readable message from an upstream
// error payload, tolerating both {"message": ...} and {"error": ...}.
func readErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}

	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}
