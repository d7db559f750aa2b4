package loader

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-showroom/engine/scene"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positionBytes(t *testing.T, points ...[3]float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, points))
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func assertSize(t *testing.T, expected, actual [3]float32) {
	t.Helper()
	assert.InDeltaSlice(t, expected[:], actual[:], 1e-4)
}

const boxGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [{"name": "root", "scale": [2, 2, 2], "children": [1]}, {"name": "box", "mesh": 0, "translation": [5, 0, 0]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"componentType": 5126, "count": 8, "type": "VEC3", "min": [-1, 0, -0.5], "max": [1, 2, 0.5]}]
}`

func TestBoundsFromAccessorMinMax(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "box.gltf", []byte(boxGLTF))

	l := NewLoader(WithBaseDir(dir))
	defer l.Close()

	size, err := l.Bounds("box.gltf")
	require.NoError(t, err)
	assertSize(t, [3]float32{4, 4, 2}, size)

	cached, ok := l.Get("box.gltf")
	assert.True(t, ok)
	assert.Equal(t, size, cached)
}

func TestBoundsReadsVerticesWithRotation(t *testing.T) {
	data := positionBytes(t, [3]float32{0, 0, 0}, [3]float32{2, 1, 0}, [3]float32{0, 0, 3})
	half := math32.Sqrt(0.5)
	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "nodes": [{"mesh": 0, "rotation": [0, %f, 0, %f], "translation": [10, 10, 10]}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
  "bufferViews": [{"buffer": 0, "byteLength": %d}],
  "buffers": [{"byteLength": %d, "uri": "data:application/octet-stream;base64,%s"}]
}`, half, half, len(data), len(data), base64.StdEncoding.EncodeToString(data))

	f, err := decodeGLTF([]byte(doc), false, "")
	require.NoError(t, err)

	size, err := f.bounds()
	require.NoError(t, err)
	// a quarter turn about Y swaps width and depth
	assertSize(t, [3]float32{3, 1, 2}, size)
}

func TestBoundsExternalBufferWithStride(t *testing.T) {
	dir := t.TempDir()
	// each position is followed by a 4-byte pad
	var buf bytes.Buffer
	for _, p := range [][3]float32{{-1, -1, -1}, {1, 3, 0}} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, p))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(99)))
	}
	writeFile(t, dir, "points.bin", buf.Bytes())
	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "nodes": [{"mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 2, "type": "VEC3"}],
  "bufferViews": [{"buffer": 0, "byteLength": %d, "byteStride": 16}],
  "buffers": [{"byteLength": %d, "uri": "points.bin"}]
}`, buf.Len(), buf.Len())
	path := writeFile(t, dir, "points.gltf", []byte(doc))

	size, err := newGLTFLoaderBackend().Bounds(path)
	require.NoError(t, err)
	assertSize(t, [3]float32{2, 4, 1}, size)
}

func buildGLB(t *testing.T, jsonDoc string, bin []byte) []byte {
	t.Helper()
	jsonChunk := []byte(jsonDoc)
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	for len(bin)%4 != 0 {
		bin = append(bin, 0)
	}

	var buf bytes.Buffer
	total := 12 + 8 + len(jsonChunk) + 8 + len(bin)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(total)}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(jsonChunk)), ChunkType: gltfGLBChunkJSON}))
	buf.Write(jsonChunk)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN}))
	buf.Write(bin)
	return buf.Bytes()
}

func TestBoundsGLB(t *testing.T) {
	bin := positionBytes(t, [3]float32{-0.5, 0, -0.25}, [3]float32{0.5, 1.5, 0.25})
	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scenes": [{"nodes": [0]}],
  "nodes": [{"mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 2, "type": "VEC3"}],
  "bufferViews": [{"buffer": 0, "byteLength": %d}],
  "buffers": [{"byteLength": %d}]
}`, len(bin), len(bin))

	dir := t.TempDir()
	writeFile(t, dir, "chair.glb", buildGLB(t, doc, bin))

	l := NewLoader(WithBaseDir(dir))
	defer l.Close()

	size, err := l.Bounds("chair.glb")
	require.NoError(t, err)
	assertSize(t, [3]float32{1, 1.5, 0.5}, size)
}

func TestBoundsErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "old.gltf", []byte(`{"asset": {"version": "1.0"}}`))
	writeFile(t, dir, "empty.gltf", []byte(`{"asset": {"version": "2.0"}, "nodes": [{"name": "empty"}]}`))
	writeFile(t, dir, "bad.glb", []byte("glTF but not really a container"))
	writeFile(t, dir, "model.obj", []byte("v 0 0 0"))

	l := NewLoader(WithBaseDir(dir))
	defer l.Close()

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", "missing.gltf", os.ErrNotExist},
		{"unsupported extension", "model.obj", ErrUnsupportedFormat},
		{"glTF 1.0", "old.gltf", errInvalidGLTFVersion},
		{"no geometry", "empty.gltf", errNoGeometry},
		{"corrupt GLB", "bad.glb", errInvalidGLBVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Bounds(tt.path)
			assert.ErrorIs(t, err, tt.want)
			_, cached := l.Get(tt.path)
			assert.False(t, cached)
		})
	}
}

func TestWithCachedSkipsTheFile(t *testing.T) {
	l := NewLoader(WithBaseDir("/assets"), WithCached("sofa.glb", [3]float32{2, 1, 1}))
	defer l.Close()

	size, err := l.Bounds("/assets/sofa.glb")
	require.NoError(t, err)
	assert.Equal(t, [3]float32{2, 1, 1}, size)
}

func TestLoadCallsReady(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "box.gltf", []byte(boxGLTF))

	l := NewLoader(WithBaseDir(dir), WithWorkers(1))
	defer l.Close()

	type result struct {
		model scene.Visual
		size  [3]float32
	}
	done := make(chan result, 1)
	l.Load("box.gltf", func(model scene.Visual, size [3]float32) {
		done <- result{model, size}
	}, func(err error) {
		t.Errorf("unexpected load error: %v", err)
	})

	select {
	case r := <-done:
		assert.Equal(t, "box", r.model.Label())
		assertSize(t, [3]float32{4, 4, 2}, r.size)
		node, ok := r.model.(scene.Node)
		require.True(t, ok)
		assert.Equal(t, r.size, node.BoundingSize())
	case <-time.After(2 * time.Second):
		t.Fatal("load did not complete")
	}
}

func TestLoadCallsError(t *testing.T) {
	l := NewLoader(WithBaseDir(t.TempDir()))
	defer l.Close()

	failed := make(chan error, 1)
	l.Load("nope.glb", func(scene.Visual, [3]float32) {
		t.Error("unexpected ready callback")
	}, func(err error) {
		failed <- err
	})

	select {
	case err := <-failed:
		assert.ErrorIs(t, err, os.ErrNotExist)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not fail")
	}
}

func TestLoadAfterClose(t *testing.T) {
	l := NewLoader()
	l.Close()
	l.Close()

	var got error
	l.Load("box.gltf", nil, func(err error) { got = err })
	assert.ErrorIs(t, got, ErrClosed)
}
