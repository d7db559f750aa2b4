package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowBuilderOptions(t *testing.T) {
	w := &engineWindow{width: 1280, height: 720, rawMotion: true}
	for _, opt := range []WindowBuilderOption{
		WithTitle("Gallery"),
		WithSize(0, 900),
		WithMinSize(320, 240),
		WithRawMotion(false),
	} {
		opt(w)
	}

	assert.Equal(t, "Gallery", w.title)
	assert.Equal(t, 1280, w.width, "non-positive width keeps the default")
	assert.Equal(t, 900, w.height)
	assert.Equal(t, 320, w.minWidth)
	assert.Equal(t, 240, w.minHeight)
	assert.False(t, w.rawMotion)
}
