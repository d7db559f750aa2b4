package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags, out := log.Flags(), log.Writer()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestTickWaitsForInterval(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler(WithInterval(time.Hour))

	for range 10 {
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())
}

func TestTickLogsStats(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler(WithInterval(0), WithStats(func() string { return "Particles: 84" }))

	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] TPS:")
	assert.Contains(t, buf.String(), "| Particles: 84")
	assert.Equal(t, 0, p.frameCount)
}
