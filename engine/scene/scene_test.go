package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddRemove(t *testing.T) {
	s := NewScene("showroom")
	a := NewNode("a")
	b := NewNode("b")

	idA := s.Add(a)
	idB := s.Add(b)
	require.Equal(t, uint64(1), idA)
	require.Equal(t, uint64(2), idB)
	assert.Equal(t, idA, s.Add(a), "re-adding returns the existing id")
	assert.Equal(t, 2, s.Count())
	assert.Same(t, b, s.Get(idB))
	assert.Equal(t, []Visual{a, b}, s.Visuals())

	s.Remove(a)
	assert.False(t, s.Contains(a))
	assert.Nil(t, s.Get(idA))
	assert.Equal(t, 1, s.Count())

	s.Remove(a)
	s.RemoveByID(99)
	assert.Equal(t, 1, s.Count())

	s.RemoveByID(idB)
	assert.Zero(t, s.Count())
}

func TestSceneOptionsAndClear(t *testing.T) {
	a := NewNode("a")
	s := NewScene("main", WithActive(true), WithVisuals(a, NewNode("b")))

	assert.True(t, s.Active())
	assert.Equal(t, "main", s.Name())
	assert.Equal(t, 2, s.Count())
	assert.Zero(t, s.Add(nil))

	s.Clear()
	assert.Zero(t, s.Count())
	assert.False(t, s.Contains(a))
}

func TestNodeTransform(t *testing.T) {
	n := NewNode("kiosk", WithPosition(1, 2, 3), WithScale(2, 2, 2), WithBoundingSize([3]float32{1, 2, 1}))

	x, y, z := n.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
	assert.Equal(t, [3]float32{1, 2, 1}, n.BoundingSize())
	assert.True(t, n.Visible())

	m := n.ModelMatrix()
	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{m[12], m[13], m[14]})

	n.SetVisible(false)
	assert.False(t, n.Visible())
}
