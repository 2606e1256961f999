// Package transporttest provides a scriptable Transport for tests.
package transporttest

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/urmzd/smartapp/pkg/transport"
)

// ErrTimeout is what an unscripted "timeout" reply returns.
var ErrTimeout = errors.New("transporttest: request timed out")

// Call is one recorded request.
type Call struct {
	Method string
	URL    string
}

type reply struct {
	resp *transport.Response
	err  error
}

// DefaultBody answers unscripted URLs.
const DefaultBody = `{"ok":true}`

// Recorder records every call and answers from a per-URL script.
// Unscripted URLs get HTTP 200 with DefaultBody.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	replies map[string]reply
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{replies: make(map[string]reply)}
}

// Respond scripts a status code and body for url.
func (r *Recorder) Respond(url string, status int, body string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[url] = reply{resp: &transport.Response{StatusCode: status, Body: []byte(body)}}
	return r
}

// Fail scripts a transport error for url.
func (r *Recorder) Fail(url string, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[url] = reply{err: err}
	return r
}

// Get implements transport.Transport.
func (r *Recorder) Get(ctx context.Context, url string) (*transport.Response, error) {
	return r.record(ctx, http.MethodGet, url)
}

// Post implements transport.Transport.
func (r *Recorder) Post(ctx context.Context, url string) (*transport.Response, error) {
	return r.record(ctx, http.MethodPost, url)
}

func (r *Recorder) record(ctx context.Context, method, url string) (*transport.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{Method: method, URL: url})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep, ok := r.replies[url]
	if !ok {
		return &transport.Response{StatusCode: http.StatusOK, Body: []byte(DefaultBody)}, nil
	}
	if rep.err != nil {
		return nil, rep.err
	}
	// Copy so callers cannot mutate the script.
	body := append([]byte(nil), rep.resp.Body...)
	return &transport.Response{StatusCode: rep.resp.StatusCode, Body: body}, nil
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many calls were recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset forgets recorded calls but keeps the script.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
