package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/voucher/pkg/logger"
)

// TokenFunc returns the bearer token to forward for the request context, or "" for none.
type TokenFunc func(r *http.Request) string

// Observer receives the outcome of every backend call.
type Observer func(method, path string, status int, elapsed time.Duration)

type JWTRoundTripper struct {
	Transport http.RoundTripper
	Token     TokenFunc
	Observe   Observer
}

func NewJWTRoundTripper(transport http.RoundTripper, token TokenFunc, observe Observer) *JWTRoundTripper {
	return &JWTRoundTripper{Transport: transport, Token: token, Observe: observe}
}

func (j *JWTRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	// RoundTrip must not modify the caller's request.
	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if j.Token != nil && r.Header.Get("Authorization") == "" {
		if token := j.Token(r); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	start := time.Now()

	resp, err := j.Transport.RoundTrip(r)
	if err != nil {
		j.observe(r, 0, start)
		return nil, fmt.Errorf("round trip: %w", err)
	}

	j.observe(r, resp.StatusCode, start)

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "status", resp.StatusCode)

	return resp, nil
}

func (j *JWTRoundTripper) observe(r *http.Request, status int, start time.Time) {
	if j.Observe == nil {
		return
	}

	j.Observe(r.Method, r.URL.Path, status, time.Since(start))
}
