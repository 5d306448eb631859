package assets_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/internal/clients/assets"
	"github.com/samandr77/microservices/invoice/internal/entity"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))

	return buf.Bytes()
}

func TestClient_Image(t *testing.T) {
	t.Parallel()

	data := pngBytes(t)

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// First attempt fails to exercise the retry.
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)

	c := assets.NewClient(2, time.Second)

	img, err := c.Image(context.Background(), server.URL+"/logo.png")
	require.NoError(t, err)
	require.Equal(t, "PNG", img.Type)
	require.Equal(t, data, img.Data)
	require.EqualValues(t, 2, calls.Load())

	// Served from cache.
	_, err = c.Image(context.Background(), server.URL+"/logo.png")
	require.NoError(t, err)
	require.EqualValues(t, 2, calls.Load())
}

func TestClient_Image_Errors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	t.Cleanup(server.Close)

	c := assets.NewClient(0, time.Second)

	_, err := c.Image(context.Background(), server.URL+"/missing")
	require.ErrorContains(t, err, "unexpected code 404")

	_, err = c.Image(context.Background(), server.URL+"/page")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
