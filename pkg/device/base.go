package device

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urmzd/smartapp/pkg/transport"
)

// base holds the identity and network locator shared by every variant.
type base struct {
	id        string
	host      string
	port      int
	transport transport.Transport
}

func (b *base) ID() string   { return b.id }
func (b *base) Host() string { return b.host }
func (b *base) Port() int    { return b.port }

// Status performs GET /status and decodes the JSON object body.
func (b *base) Status(ctx context.Context) (Status, error) {
	resp, err := b.transport.Get(ctx, transport.StatusURL(b.host, b.port))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreachable, b.id, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, b.id, resp.StatusCode)
	}

	var status Status
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, b.id, err)
	}
	if status == nil {
		return nil, fmt.Errorf("%w: %s returned null", ErrInvalidPayload, b.id)
	}
	return status, nil
}

// post issues POST /{path}/{param}. A non-200 reply is (false, nil).
func (b *base) post(ctx context.Context, path, param string) (bool, error) {
	resp, err := b.transport.Post(ctx, transport.ActionURL(b.host, b.port, path, param))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrUnreachable, b.id, err)
	}
	return resp.OK(), nil
}

// postLevel issues POST /{path}/{n} with the integer parameter key.
func (b *base) postLevel(ctx context.Context, path, key string, params Params) (bool, error) {
	n, ok := params.Int(key)
	if !ok {
		return false, fmt.Errorf("%w: %s requires integer %q", ErrInvalidParams, path, key)
	}
	return b.post(ctx, path, strconv.Itoa(n))
}

func unsupported(kind Kind, action string) error {
	return fmt.Errorf("%w: %s does not support %q", ErrUnsupported, kind, action)
}
