package fog

import "github.com/chewxy/math32"

// Mesh is an indexed triangle list with flat xyz positions.
type Mesh struct {
	Positions []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// newCylinderMesh builds a capped cylinder whose base sits on y=0 and top on y=height.
func newCylinderMesh(radius, height float32, radialSegments, heightSegments int) Mesh {
	radialSegments = max(radialSegments, 3)
	heightSegments = max(heightSegments, 1)

	var m Mesh
	ring := radialSegments + 1

	// Side wall, bottom row first.
	for row := 0; row <= heightSegments; row++ {
		y := height * float32(row) / float32(heightSegments)
		for seg := 0; seg <= radialSegments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(radialSegments)
			s, c := math32.Sincos(theta)
			m.Positions = append(m.Positions, radius*s, y, radius*c)
		}
	}
	for row := range heightSegments {
		for seg := range radialSegments {
			a := uint32(row*ring + seg)
			b := uint32((row+1)*ring + seg)
			m.Indices = append(m.Indices, a, a+1, b, b, a+1, b+1)
		}
	}

	// Caps: a centre vertex fanned to its own ring.
	for _, y := range [2]float32{0, height} {
		centre := uint32(m.VertexCount())
		m.Positions = append(m.Positions, 0, y, 0)
		for seg := 0; seg <= radialSegments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(radialSegments)
			s, c := math32.Sincos(theta)
			m.Positions = append(m.Positions, radius*s, y, radius*c)
		}
		for seg := range radialSegments {
			a := centre + 1 + uint32(seg)
			if y == 0 {
				m.Indices = append(m.Indices, centre, a+1, a)
			} else {
				m.Indices = append(m.Indices, centre, a, a+1)
			}
		}
	}

	return m
}
