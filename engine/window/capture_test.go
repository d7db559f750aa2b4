package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorCapture(t *testing.T) {
	c := newCursorCapture()
	wakes := 0
	c.wake = func() { wakes++ }

	assert.False(t, c.Held())
	_, changed := c.pending()
	assert.False(t, changed)

	c.Acquire()
	assert.True(t, c.Held(), "held reflects the request before it is applied")
	assert.Equal(t, 1, wakes)

	want, changed := c.pending()
	assert.True(t, want)
	assert.True(t, changed)
	_, changed = c.pending()
	assert.False(t, changed, "applied once")

	c.Release()
	c.Acquire()
	_, changed = c.pending()
	assert.False(t, changed, "release then acquire before the loop runs is a no-op")

	c.Release()
	want, changed = c.pending()
	assert.False(t, want)
	assert.True(t, changed)
	assert.Equal(t, 4, wakes)
}
