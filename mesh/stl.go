package mesh

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// ReadSTL reads a binary STL stream into a Solid. Shared vertices are
// deduplicated and vertex normals are averaged from the facet normals,
// so tessellation output renders smooth. STL carries no edge curves:
// the line/vertex cell sets stay empty.
func ReadSTL(r io.Reader) (*Solid, error) {
	var header struct {
		Comment      [80]byte
		TrianglesNum uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrapf(err, "Failed to read stl header")
	}

	m := &Mesh{}
	vertIndexes := make(map[[3]float32]uint32)

	var facet struct {
		Normal   [3]float32
		Vertices [3][3]float32
		Attrs    uint16
	}
	for iTriangle := uint32(0); iTriangle < header.TrianglesNum; iTriangle++ {
		if err := binary.Read(r, binary.LittleEndian, &facet); err != nil {
			return nil, errors.Wrapf(err, "Failed to read stl facet %d of %d", iTriangle, header.TrianglesNum)
		}

		var tri [3]uint32
		for iVertex, pos := range facet.Vertices {
			index, exists := vertIndexes[pos]
			if !exists {
				index = uint32(len(m.Positions))
				m.Positions = append(m.Positions, pos)
				m.Normals = append(m.Normals, [3]float32{})
				vertIndexes[pos] = index
			}
			for i := 0; i < 3; i++ {
				m.Normals[index][i] += facet.Normal[i]
			}
			tri[iVertex] = index
		}
		m.Triangles = append(m.Triangles, tri)
	}

	for i, n := range m.Normals {
		l := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
		if l > 1e-12 {
			m.Normals[i] = [3]float32{n[0] / l, n[1] / l, n[2] / l}
		}
	}

	return NewSolid(m), nil
}
