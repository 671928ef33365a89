package controller

import (
	"sync"

	"github.com/fwojciec/pager"
)

// Handle represents a live session. Close requests an owner-equivalent
// close; Done is closed once the session has fully retired.
type Handle struct {
	session *pager.Session

	closeOnce sync.Once
	closeCh   chan struct{}
	done      chan struct{}

	mu  sync.Mutex
	err error
}

func newHandle(s *pager.Session) *Handle {
	return &Handle{
		session: s,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Close requests an explicit close, equivalent to an owner close event.
// It is safe to call from any goroutine and more than once; it does not
// wait for teardown.
func (h *Handle) Close() {
	h.closeOnce.Do(func() { close(h.closeCh) })
}

// Done is closed once the session has retired and teardown completed.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the fault that retired the session, or nil for a clean
// close or expiry. Valid only after Done is closed.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Session returns the session for inspection. The run goroutine owns
// the session until Done is closed; callers must wait before reading.
func (h *Handle) Session() *pager.Session {
	return h.session
}

func (h *Handle) finish(err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
	close(h.done)
}
