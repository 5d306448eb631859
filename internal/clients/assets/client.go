package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/pkg/transport"
)

const (
	maxImageSize        = 5 << 20
	defaultRetryWaitMax = time.Second * 2
)

// Client downloads invoice images and keeps successful downloads in memory.
type Client struct {
	client *retryablehttp.Client
	mu     sync.Mutex
	cache  map[string]entity.Image
}

func NewClient(retryAttempts int, timeout time.Duration) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)
	retryClient.Logger = nil

	return &Client{
		client: retryClient,
		cache:  make(map[string]entity.Image),
	}
}

func (c *Client) Image(ctx context.Context, url string) (entity.Image, error) {
	c.mu.Lock()
	img, ok := c.cache[url]
	c.mu.Unlock()

	if ok {
		return img, nil
	}

	img, err := c.download(ctx, url)
	if err != nil {
		return entity.Image{}, err
	}

	c.mu.Lock()
	c.cache[url] = img
	c.mu.Unlock()

	return img, nil
}

func (c *Client) download(ctx context.Context, url string) (entity.Image, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.Image{}, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Image{}, fmt.Errorf("get %s: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Image{}, fmt.Errorf("get %s: unexpected code %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return entity.Image{}, fmt.Errorf("read body: %w", err)
	}

	if len(data) > maxImageSize {
		return entity.Image{}, fmt.Errorf("%w: image %s is larger than %d bytes", entity.ErrInvalidArgument, url, maxImageSize)
	}

	imgType, err := imageType(data)
	if err != nil {
		return entity.Image{}, fmt.Errorf("image %s: %w", url, err)
	}

	return entity.Image{Data: data, Type: imgType}, nil
}

func imageType(data []byte) (string, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/jpeg":
		return "JPG", nil
	case "image/png":
		return "PNG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("%w: unsupported content type %s", entity.ErrInvalidArgument, ct)
	}
}
