package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/logger"
	"github.com/samandr77/microservices/invoice/pkg/transport"
)

//nolint:paralleltest
func TestLoggingRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/logo.jpg", func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprint(w, "image")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	ctx := logger.WithRequestID(context.Background(), "req-42")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/logo.jpg", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-42", gotRequestID)
	require.Equal(t,
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/logo.jpg"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/logo.jpg","status":200}
`, now, server.URL, now, server.URL), buf.String())
}

//nolint:paralleltest
func TestLoggingRoundTripper_Error(t *testing.T) {
	client := &http.Client{
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.ErrorContains(t, err, "round trip")
}
