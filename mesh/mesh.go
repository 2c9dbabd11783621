// Package mesh holds the tessellated shape representation consumed by
// the exporters: flat position/normal arrays plus triangle, line and
// vertex cells indexing into them.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32

	Triangles [][3]uint32
	Lines     [][2]uint32
	Points    []uint32
}

func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([][3]float32, len(m.Positions)),
		Triangles: make([][3]uint32, len(m.Triangles)),
		Lines:     make([][2]uint32, len(m.Lines)),
		Points:    make([]uint32, len(m.Points)),
	}
	copy(c.Positions, m.Positions)
	copy(c.Triangles, m.Triangles)
	copy(c.Lines, m.Lines)
	copy(c.Points, m.Points)
	if m.Normals != nil {
		c.Normals = make([][3]float32, len(m.Normals))
		copy(c.Normals, m.Normals)
	}
	return c
}

// Transformed returns a copy with the rotation and translation applied
// to every position and the rotation applied to every normal.
func (m *Mesh) Transformed(rot mgl32.Quat, trans mgl32.Vec3) *Mesh {
	c := m.Clone()
	for i, p := range c.Positions {
		v := rot.Rotate(mgl32.Vec3{p[0], p[1], p[2]}).Add(trans)
		c.Positions[i] = [3]float32{v[0], v[1], v[2]}
	}
	for i, n := range c.Normals {
		v := rot.Rotate(mgl32.Vec3{n[0], n[1], n[2]})
		c.Normals[i] = [3]float32{v[0], v[1], v[2]}
	}
	return c
}

// SplitCells partitions the mesh into a triangles-only subset and a
// lines/vertices-only subset. Positions are compacted to the points
// each subset references. The edge subset carries no normals.
func (m *Mesh) SplitCells() (faces *Mesh, edges *Mesh) {
	faces = &Mesh{}
	faceRemap := newRemap(m, faces, true)
	for _, t := range m.Triangles {
		faces.Triangles = append(faces.Triangles, [3]uint32{
			faceRemap.get(t[0]), faceRemap.get(t[1]), faceRemap.get(t[2])})
	}

	edges = &Mesh{}
	edgeRemap := newRemap(m, edges, false)
	for _, l := range m.Lines {
		edges.Lines = append(edges.Lines, [2]uint32{
			edgeRemap.get(l[0]), edgeRemap.get(l[1])})
	}
	for _, p := range m.Points {
		edges.Points = append(edges.Points, edgeRemap.get(p))
	}

	return faces, edges
}

// Merge concatenates already-transformed meshes into one.
func Merge(meshes []*Mesh) *Mesh {
	out := &Mesh{}
	hasNormals := true
	for _, m := range meshes {
		if m.Normals == nil {
			hasNormals = false
		}
	}
	for _, m := range meshes {
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)
		if hasNormals {
			out.Normals = append(out.Normals, m.Normals...)
		}
		for _, t := range m.Triangles {
			out.Triangles = append(out.Triangles, [3]uint32{base + t[0], base + t[1], base + t[2]})
		}
		for _, l := range m.Lines {
			out.Lines = append(out.Lines, [2]uint32{base + l[0], base + l[1]})
		}
		for _, p := range m.Points {
			out.Points = append(out.Points, base+p)
		}
	}
	return out
}

type remap struct {
	src     *Mesh
	dst     *Mesh
	normals bool
	indexes map[uint32]uint32
}

func newRemap(src, dst *Mesh, normals bool) *remap {
	return &remap{
		src:     src,
		dst:     dst,
		normals: normals && src.Normals != nil,
		indexes: make(map[uint32]uint32),
	}
}

func (r *remap) get(i uint32) uint32 {
	if n, exists := r.indexes[i]; exists {
		return n
	}
	n := uint32(len(r.dst.Positions))
	r.dst.Positions = append(r.dst.Positions, r.src.Positions[i])
	if r.normals {
		r.dst.Normals = append(r.dst.Normals, r.src.Normals[i])
	}
	r.indexes[i] = n
	return n
}
