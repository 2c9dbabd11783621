package mesh

// Solid wraps a prebuilt mesh so it can sit in an assembly tree. The
// tessellation tolerances are ignored: the mesh is already discrete.
type Solid struct {
	mesh *Mesh
}

func NewSolid(m *Mesh) *Solid {
	return &Solid{mesh: m}
}

func (s *Solid) Tessellate(tolerance, angularTolerance float32) (*Mesh, error) {
	return s.mesh.Clone(), nil
}

// Box builds an axis-aligned box centered at the origin. Faces carry
// their own vertices so normals stay flat; the 12 boundary edges index
// a trailing set of corner positions with zeroed normals.
func Box(dx, dy, dz float32) *Solid {
	x, y, z := dx/2, dy/2, dz/2

	corners := [8][3]float32{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}

	// corner indexes per face, counter-clockwise seen from outside
	quads := [6][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 3, 7, 6}, // +Y
		{1, 2, 6, 5}, // +X
		{0, 4, 7, 3}, // -X
	}
	faceNormals := [6][3]float32{
		{0, 0, -1}, {0, 0, 1}, {0, -1, 0}, {0, 1, 0}, {1, 0, 0}, {-1, 0, 0},
	}

	m := &Mesh{}
	for iFace, quad := range quads {
		base := uint32(len(m.Positions))
		for _, c := range quad {
			m.Positions = append(m.Positions, corners[c])
			m.Normals = append(m.Normals, faceNormals[iFace])
		}
		m.Triangles = append(m.Triangles,
			[3]uint32{base, base + 1, base + 2},
			[3]uint32{base, base + 2, base + 3})
	}

	edgeBase := uint32(len(m.Positions))
	for _, c := range corners {
		m.Positions = append(m.Positions, c)
		m.Normals = append(m.Normals, [3]float32{})
	}
	boxEdges := [12][2]uint32{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range boxEdges {
		m.Lines = append(m.Lines, [2]uint32{edgeBase + e[0], edgeBase + e[1]})
	}

	return NewSolid(m)
}
