package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

// DefaultTimeout bounds every device round trip.
const DefaultTimeout = 5 * time.Second

// maxBodySize caps how much of a device response is read into memory.
const maxBodySize = 1 << 20

// Response is the part of a device reply the core cares about.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the device answered with HTTP 200.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode == http.StatusOK
}

// Transport performs the network calls against device microservices.
// Implementations must honor ctx cancellation and their own timeout.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
	Post(ctx context.Context, url string) (*Response, error)
}

// HTTPTransport is the net/http backed Transport.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport whose calls are bounded by timeout.
// A non-positive timeout selects DefaultTimeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
	}
}

// Get issues a GET request.
func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodGet, url)
}

// Post issues a body-less POST request.
func (t *HTTPTransport) Post(ctx context.Context, url string) (*Response, error) {
	return t.do(ctx, http.MethodPost, url)
}

func (t *HTTPTransport) do(ctx context.Context, method, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// StatusURL returns the status endpoint of the device at host:port.
func StatusURL(host string, port int) string {
	return fmt.Sprintf("http://%s/status", hostPort(host, port))
}

// ActionURL returns http://{host}:{port}/{path}/{param}.
func ActionURL(host string, port int, path, param string) string {
	return fmt.Sprintf("http://%s/%s/%s", hostPort(host, port), path, param)
}

func hostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
