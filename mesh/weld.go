package mesh

import "math"

// Weld merges positions closer than tol and drops degenerate cells.
// It is the mesh-level stand-in for a boolean fuse: coincident faces of
// touching parts end up sharing vertices in the welded result.
func (m *Mesh) Weld(tol float32) *Mesh {
	if tol <= 0 {
		return m.Clone()
	}

	type cell [3]int32
	// Floor keeps bucket widths uniform across zero; int32 conversion
	// alone truncates toward zero and doubles the origin bucket.
	round := func(v float32) int32 {
		return int32(math.Floor(float64(v/tol) + 0.5))
	}
	quantize := func(p [3]float32) cell {
		return cell{round(p[0]), round(p[1]), round(p[2])}
	}

	out := &Mesh{}
	if m.Normals != nil {
		out.Normals = make([][3]float32, 0, len(m.Normals))
	}
	welded := make(map[cell]uint32)
	remap := make([]uint32, len(m.Positions))
	for i, p := range m.Positions {
		c := quantize(p)
		if n, exists := welded[c]; exists {
			remap[i] = n
			continue
		}
		n := uint32(len(out.Positions))
		out.Positions = append(out.Positions, p)
		if out.Normals != nil {
			out.Normals = append(out.Normals, m.Normals[i])
		}
		welded[c] = n
		remap[i] = n
	}

	for _, t := range m.Triangles {
		a, b, c := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		out.Triangles = append(out.Triangles, [3]uint32{a, b, c})
	}
	for _, l := range m.Lines {
		a, b := remap[l[0]], remap[l[1]]
		if a == b {
			continue
		}
		out.Lines = append(out.Lines, [2]uint32{a, b})
	}
	seen := make(map[uint32]struct{})
	for _, p := range m.Points {
		n := remap[p]
		if _, exists := seen[n]; exists {
			continue
		}
		seen[n] = struct{}{}
		out.Points = append(out.Points, n)
	}

	return out
}
