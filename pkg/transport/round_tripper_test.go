package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/voucher/pkg/logger"
	"github.com/samandr77/microservices/voucher/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotAuth, gotReqID []string

	mux := http.NewServeMux()
	mux.HandleFunc("/requisicoes", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		gotReqID = append(gotReqID, r.Header.Get("X-Request-Id"))
		_, _ = fmt.Fprintf(w, `{"status": "success"}`)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	var observed []int

	client := &http.Client{
		Timeout: time.Second * 10,
		Transport: transport.NewJWTRoundTripper(
			http.DefaultTransport,
			func(*http.Request) string { return "station-token" },
			func(_, _ string, status int, _ time.Duration) { observed = append(observed, status) },
		),
	}

	ctx := logger.WithRequestID(context.Background(), "req-1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/requisicoes", strings.NewReader(`{}`))
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Empty(t, req.Header.Get("Authorization"), "caller request must stay untouched")

	req, err = http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/missing", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer explicit")

	resp2, err := client.Do(req)
	require.NoError(t, err)

	defer resp2.Body.Close()

	require.Equal(t, []string{"Bearer station-token", "Bearer explicit"}, gotAuth)
	require.Equal(t, []string{"req-1"}, gotReqID)
	require.Equal(t, []int{http.StatusOK, http.StatusNotFound}, observed)

	require.Equal(t, buf.String(),
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"POST %s/requisicoes"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"POST %s/requisicoes","status":200}
{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/missing"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/missing","status":404}
`, now, server.URL, now, server.URL, now, server.URL, now, server.URL))
}
