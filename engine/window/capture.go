package window

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showroom/engine/input"
)

// cursorCapture implements input.Capture for a window whose cursor mode may only be changed
// on the thread running the message loop. Acquire and Release record the request and wake
// the loop, which applies it through pending.
type cursorCapture struct {
	mu      *sync.Mutex
	want    bool
	applied bool
	wake    func()
}

var _ input.Capture = &cursorCapture{}

func newCursorCapture() *cursorCapture {
	return &cursorCapture{mu: &sync.Mutex{}}
}

func (c *cursorCapture) Acquire() {
	c.set(true)
}

func (c *cursorCapture) Release() {
	c.set(false)
}

func (c *cursorCapture) set(want bool) {
	c.mu.Lock()
	c.want = want
	wake := c.wake
	c.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// Held reports the requested state so callers see their own Acquire immediately.
func (c *cursorCapture) Held() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.want
}

// pending returns the requested state and whether it differs from the applied one, marking
// it applied.
func (c *cursorCapture) pending() (want, changed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.want == c.applied {
		return c.want, false
	}
	c.applied = c.want
	return c.want, true
}
