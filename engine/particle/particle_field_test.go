package particle

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showroom/common"
	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField(t *testing.T, options ...ParticleFieldOption) ParticleField {
	t.Helper()
	options = append([]ParticleFieldOption{WithRNG(common.NewRNG(42))}, options...)
	return NewParticleField([3]float32{2, 0, -3}, options...)
}

func TestNewParticleFieldSpawnsOnDisc(t *testing.T) {
	f := newTestField(t, WithCount(200), WithAreaRadius(0.5), WithVerticalOffset(-0.1))
	require.Equal(t, 200, f.Count())

	for i := range f.Count() {
		p := f.Position(i)
		dist := math32.Hypot(p[0]-2, p[2]+3)
		assert.LessOrEqual(t, dist, float32(0.5)+1e-5)
		assert.InDelta(t, -0.1, p[1], 1e-6)

		assert.GreaterOrEqual(t, f.MaxLife(i), float32(DefaultMaxLife*0.75))
		assert.LessOrEqual(t, f.MaxLife(i), float32(DefaultMaxLife*1.25))
		assert.GreaterOrEqual(t, f.Life(i), float32(0))
		assert.Less(t, f.Life(i), f.MaxLife(i))
		assert.Zero(t, f.Size(i))
	}
}

func TestUpdateKeepsLifeWithinBounds(t *testing.T) {
	f := newTestField(t, WithCount(64))
	for range 500 {
		f.Update(0.033)
		for i := range f.Count() {
			assert.GreaterOrEqual(t, f.Life(i), float32(0))
			assert.LessOrEqual(t, f.Life(i), f.MaxLife(i))
			assert.GreaterOrEqual(t, f.Size(i), float32(0))
		}
	}
}

func TestUpdateRecyclesInSameCall(t *testing.T) {
	f := newTestField(t, WithCount(16), WithMaxLife(1))

	// A step longer than any lifetime expires every particle at once.
	f.Update(2)
	for i := range f.Count() {
		assert.Equal(t, 1, f.RecycleCount(i))
		assert.Equal(t, f.MaxLife(i), f.Life(i), "recycled particle restarts at full life")
		// Respawned particles are placed, not integrated.
		assert.InDelta(t, DefaultVerticalOffset, f.Position(i)[1], 1e-6)
	}
	assert.Equal(t, 16, f.TotalRecycles())
}

func TestUpdateIntegratesLiveParticles(t *testing.T) {
	f := newTestField(t, WithCount(1), WithMaxLife(100), WithSpreadSpeed(0))
	before := f.Position(0)
	f.Update(0.1)
	if f.RecycleCount(0) == 0 {
		after := f.Position(0)
		assert.Greater(t, after[1], before[1])
		assert.Equal(t, before[0], after[0])
		assert.Equal(t, before[2], after[2])
	}
}

func TestProductSmokeFullyRecyclesWithinNominalLife(t *testing.T) {
	const maxLife = float32(2.5 / 1.4)
	f := NewParticleField([3]float32{0, 0, 0},
		WithRNG(common.NewRNG(1234)),
		WithCount(84),
		WithAreaRadius(1),
		WithMaxLife(maxLife),
		WithVerticalOffset(0),
	)

	elapsed := float32(0)
	for elapsed < maxLife {
		f.Update(0.016)
		elapsed += 0.016
	}

	for i := range f.Count() {
		assert.GreaterOrEqual(t, f.RecycleCount(i), 1, "particle %d never recycled", i)
	}
}

func TestBuffersTrackParticles(t *testing.T) {
	f := newTestField(t, WithCount(8))
	f.Update(0.016)

	positions := f.Positions()
	sizes := f.Sizes()
	require.Len(t, positions, 24)
	require.Len(t, sizes, 8)
	for i := range 8 {
		p := f.Position(i)
		assert.Equal(t, p[:], positions[i*3:i*3+3])
		assert.Equal(t, f.Size(i), sizes[i])
	}

	// Returned buffers are copies.
	positions[0] = 999
	assert.NotEqual(t, float32(999), f.Positions()[0])
}

func TestDisposeDetachesOnce(t *testing.T) {
	sc := scene.NewScene("test")
	f := newTestField(t, WithScene(sc), WithCount(4))
	require.True(t, sc.Contains(f))

	f.Dispose()
	assert.True(t, f.Disposed())
	assert.False(t, sc.Contains(f))
	assert.Zero(t, sc.Count())

	assert.NotPanics(t, func() {
		f.Dispose()
		f.Update(0.016)
	})
	assert.Empty(t, f.Positions())
	assert.Zero(t, f.Life(0))
}

func TestAppearanceDefaults(t *testing.T) {
	f := newTestField(t)
	assert.Equal(t, common.HexColor(DefaultColor), f.Color())
	assert.Equal(t, float32(DefaultOpacity), f.Opacity())
	assert.True(t, f.Visible())
	assert.Equal(t, DefaultCount, f.Count())

	f.SetVisible(false)
	assert.False(t, f.Visible())
}
