package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func tessellate(t *testing.T, s *Solid) *Mesh {
	t.Helper()
	m, err := s.Tessellate(1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBoxMesh(t *testing.T) {
	m := tessellate(t, Box(2, 4, 6))

	if len(m.Triangles) != 12 {
		t.Errorf("triangles=%d; expected 12", len(m.Triangles))
	}
	if len(m.Lines) != 12 {
		t.Errorf("lines=%d; expected 12", len(m.Lines))
	}
	if len(m.Positions) != len(m.Normals) {
		t.Errorf("positions=%d normals=%d; expected equal", len(m.Positions), len(m.Normals))
	}

	b := m.Bounds()
	if b.Extents() != (mgl32.Vec3{2, 4, 6}) {
		t.Errorf("extents=%v; expected (2 4 6)", b.Extents())
	}
	if b.Center() != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("center=%v; expected origin", b.Center())
	}
}

func TestSplitCells(t *testing.T) {
	m := tessellate(t, Box(1, 1, 1))
	faces, edges := m.SplitCells()

	if len(faces.Triangles) != 12 || len(faces.Lines) != 0 {
		t.Errorf("faces: triangles=%d lines=%d; expected 12/0", len(faces.Triangles), len(faces.Lines))
	}
	if len(faces.Positions) != 24 {
		t.Errorf("faces positions=%d; expected 24 (edge corners dropped)", len(faces.Positions))
	}
	if faces.Normals == nil {
		t.Error("faces lost normals")
	}

	if len(edges.Lines) != 12 || len(edges.Triangles) != 0 {
		t.Errorf("edges: lines=%d triangles=%d; expected 12/0", len(edges.Lines), len(edges.Triangles))
	}
	if len(edges.Positions) != 8 {
		t.Errorf("edges positions=%d; expected 8", len(edges.Positions))
	}
	if edges.Normals != nil {
		t.Error("edge subset must not carry normals")
	}
}

func TestAABBJoin(t *testing.T) {
	a := tessellate(t, Box(1, 1, 1)).Bounds()
	b := tessellate(t, Box(1, 1, 1)).Transformed(mgl32.QuatIdent(), mgl32.Vec3{3, 0, 0}).Bounds()

	joined := a.Join(b)
	if joined.Extents() != (mgl32.Vec3{4, 1, 1}) {
		t.Errorf("joined extents=%v; expected (4 1 1)", joined.Extents())
	}

	empty := EmptyAABB()
	if !empty.IsEmpty() {
		t.Error("EmptyAABB not empty")
	}
	if empty.Join(a) != a || a.Join(empty) != a {
		t.Error("join with empty box must be identity")
	}
}

func TestTransformed(t *testing.T) {
	m := tessellate(t, Box(2, 2, 2))
	moved := m.Transformed(mgl32.QuatIdent(), mgl32.Vec3{10, 0, 0})

	if c := moved.Bounds().Center(); c.Sub(mgl32.Vec3{10, 0, 0}).Len() > 1e-6 {
		t.Errorf("moved center=%v; expected (10 0 0)", c)
	}
	if c := m.Bounds().Center(); c != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("source mesh mutated, center=%v", c)
	}
}

func TestMerge(t *testing.T) {
	a := tessellate(t, Box(1, 1, 1))
	b := tessellate(t, Box(1, 1, 1)).Transformed(mgl32.QuatIdent(), mgl32.Vec3{5, 0, 0})

	merged := Merge([]*Mesh{a, b})
	if len(merged.Triangles) != 24 {
		t.Errorf("merged triangles=%d; expected 24", len(merged.Triangles))
	}
	if len(merged.Positions) != len(a.Positions)+len(b.Positions) {
		t.Errorf("merged positions=%d; expected %d", len(merged.Positions), len(a.Positions)+len(b.Positions))
	}

	ext := merged.Bounds().Extents()
	if ext.Sub(mgl32.Vec3{6, 1, 1}).Len() > 1e-6 {
		t.Errorf("merged extents=%v; expected (6 1 1)", ext)
	}
}

func TestWeld(t *testing.T) {
	m := tessellate(t, Box(1, 1, 1))

	// 24 face verts + 8 edge corners collapse to the 8 distinct corners.
	welded := m.Weld(1e-6)
	if len(welded.Positions) != 8 {
		t.Errorf("welded positions=%d; expected 8", len(welded.Positions))
	}
	if len(welded.Triangles) != 12 {
		t.Errorf("welded triangles=%d; expected 12", len(welded.Triangles))
	}

	// Welding everything into one point drops the degenerate cells.
	collapsed := m.Weld(100)
	if len(collapsed.Positions) != 1 || len(collapsed.Triangles) != 0 || len(collapsed.Lines) != 0 {
		t.Errorf("collapsed mesh: %d positions %d triangles %d lines; expected 1/0/0",
			len(collapsed.Positions), len(collapsed.Triangles), len(collapsed.Lines))
	}
}

func TestWeldNearOrigin(t *testing.T) {
	// Buckets must have the same width on both sides of zero: these two
	// points sit 1.8*tol apart and may not merge.
	m := &Mesh{
		Positions: [][3]float32{{-1.4, 0, 0}, {0.4, 0, 0}},
		Lines:     [][2]uint32{{0, 1}},
	}
	welded := m.Weld(1)
	if len(welded.Positions) != 2 {
		t.Fatalf("welded positions=%d; expected 2", len(welded.Positions))
	}
	if len(welded.Lines) != 1 {
		t.Errorf("welded lines=%d; expected 1", len(welded.Lines))
	}

	near := &Mesh{Positions: [][3]float32{{-0.2, 0, 0}, {0.2, 0, 0}}}
	if got := len(near.Weld(1).Positions); got != 1 {
		t.Errorf("near positions=%d; expected 1", got)
	}
}
