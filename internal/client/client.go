package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/candleworks/storefront/internal/config"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// API is the shared HTTP plumbing behind every resource client. It holds no
// mutable state; concurrent use from multiple goroutines is safe.
type API struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func New(cfg config.Backend) *API {
	return &API{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: cfg.RequestTimeout,
	}
}

// errorBody is the optional JSON error payload on non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
}

// do issues a single round trip against the backend: no retries, no caching.
// A non-2xx response maps to RemoteRejected (NotFound for 404), a transport
// failure or timeout to RemoteUnavailable. When out is non-nil the 2xx body
// is decoded into it as JSON.
func (a *API) do(ctx context.Context, resource, operation, method, path string, body, out any) error {
	return a.doRaw(ctx, resource, operation, method, path, body, func(r io.Reader) error {
		if out == nil {
			return nil
		}

		if err := json.NewDecoder(r).Decode(out); err != nil {
			return errors.InternalError("Failed to decode response body").WithError(err)
		}

		return nil
	})
}

// doText is do for the handful of endpoints that answer with a plain-text
// body instead of JSON (the token returned by /auth/login).
func (a *API) doText(ctx context.Context, resource, operation, method, path string, body any) (string, error) {
	var text string

	err := a.doRaw(ctx, resource, operation, method, path, body, func(r io.Reader) error {
		raw, readErr := io.ReadAll(r)
		if readErr != nil {
			return errors.InternalError("Failed to read response body").WithError(readErr)
		}

		text = strings.TrimSpace(string(raw))

		return nil
	})

	return text, err
}

func (a *API) doRaw(ctx context.Context, resource, operation, method, path string, body any, consume func(io.Reader) error) error {
	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode request body").WithError(err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, a.baseURL+path, reader)
	if err != nil {
		return errors.InternalError("Failed to build request").WithError(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		metrics.ObserveAPIRequest(resource, operation, "unavailable", time.Since(start))
		slog.Warn("backend unreachable",
			slog.String("resource", resource),
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)

		return errors.RemoteUnavailableError("network error, please retry").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveAPIRequest(resource, operation, "rejected", time.Since(start))

		return a.rejectionError(resp, resource, operation)
	}

	metrics.ObserveAPIRequest(resource, operation, "ok", time.Since(start))

	return consume(resp.Body)
}

func (a *API) rejectionError(resp *http.Response, resource, operation string) error {
	var serverMessage string

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			serverMessage = eb.Message
		}
	}

	slog.Warn("backend rejected request",
		slog.String("resource", resource),
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.String("message", serverMessage),
	)

	if resp.StatusCode == http.StatusNotFound {
		if serverMessage == "" {
			serverMessage = fmt.Sprintf("%s not found", resource)
		}

		return errors.NotFoundError(serverMessage)
	}

	return errors.RemoteRejectedError(resp.StatusCode, serverMessage)
}

// Ping verifies backend reachability; used by the health endpoint.
func (a *API) Ping(ctx context.Context) error {
	var stores []json.RawMessage

	return a.do(ctx, "store", "ping", http.MethodGet, "/store/all", nil, &stores)
}
