package png

import (
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/scene"
	"github.com/rastvo/asmexport/utils"
)

const viewAngleDeg = 30.0

func render(s *scene.Scene, path string, cfg settings) error {
	ctx := fauxgl.NewContext(cfg.width, cfg.height)
	ctx.ClearColorBufferWith(fauxgl.MakeColor(cfg.background))
	ctx.ClearDepthBuffer()

	viewProj, eye := cameraMatrix(cfg.camera, s, cfg.width, cfg.height)
	lightDir := eye.Sub(toVector(cfg.camera.FocalPoint)).Normalize()

	for _, actor := range s.Actors {
		if actor.Kind != scene.FaceActor {
			continue
		}
		matrix := viewProj.Mul(modelMatrix(actor))
		shader := fauxgl.NewPhongShader(matrix, lightDir, eye)
		shader.ObjectColor = toColor(actor.Color)
		ctx.Shader = shader
		ctx.DrawTriangles(triangles(actor.Mesh.Positions, actor.Mesh.Normals, actor.Mesh.Triangles))
	}

	// Bias edges toward the camera so they stay visible on top of the
	// faces they outline.
	ctx.DepthBias = -1e-4
	for _, actor := range s.Actors {
		if actor.Kind != scene.EdgeActor {
			continue
		}
		matrix := viewProj.Mul(modelMatrix(actor))
		ctx.Shader = fauxgl.NewSolidColorShader(matrix, toColor(actor.Color))
		ctx.LineWidth = float64(actor.LineWidth)
		ctx.DrawLines(lines(actor.Mesh.Positions, actor.Mesh.Lines))
	}

	if err := fauxgl.SavePNG(path, ctx.Image()); err != nil {
		return errors.Wrapf(err, "Failed to save png %q", path)
	}
	return nil
}

// cameraMatrix builds the combined projection*view matrix and returns
// it with the eye position.
func cameraMatrix(camera scene.Camera, s *scene.Scene, width, height int) (fauxgl.Matrix, fauxgl.Vector) {
	eye := toVector(camera.Position)
	center := toVector(camera.FocalPoint)
	up := toVector(camera.ViewUp)

	aspect := float64(width) / float64(height)

	radius := 1.0
	if !s.Bounds.IsEmpty() {
		radius = math.Max(float64(s.Bounds.Extents().Len())/2, 1e-3)
	}
	dist := math.Max(eye.Sub(center).Length(), 1e-3)

	near := dist - 2*radius
	far := dist + 2*radius
	if camera.ClippingRange != nil {
		near = float64(camera.ClippingRange[0])
		far = float64(camera.ClippingRange[1])
	}
	if near < dist/1000 {
		near = dist / 1000
	}

	view := fauxgl.LookAt(eye, center, up)
	if camera.Parallel {
		h := radius * 1.1
		return view.Orthographic(-h*aspect, h*aspect, -h, h, near, far), eye
	}
	return view.Perspective(viewAngleDeg, aspect, near, far), eye
}

func modelMatrix(actor *scene.Actor) fauxgl.Matrix {
	axis, angle := utils.QuatToAxisAngle(actor.Rotation)
	m := fauxgl.Identity()
	if angle != 0 {
		m = fauxgl.Rotate(toVector(axis), float64(angle))
	}
	return m.Translate(toVector(actor.Position))
}

func triangles(positions, normals [][3]float32, tris [][3]uint32) []*fauxgl.Triangle {
	out := make([]*fauxgl.Triangle, 0, len(tris))
	for _, t := range tris {
		var verts [3]fauxgl.Vertex
		for i, index := range t {
			verts[i].Position = toVector3(positions[index])
			if normals != nil {
				verts[i].Normal = toVector3(normals[index])
			}
		}
		tri := fauxgl.NewTriangle(verts[0], verts[1], verts[2])
		if normals == nil {
			tri.FixNormals()
		}
		out = append(out, tri)
	}
	return out
}

func lines(positions [][3]float32, segments [][2]uint32) []*fauxgl.Line {
	out := make([]*fauxgl.Line, 0, len(segments))
	for _, l := range segments {
		out = append(out, fauxgl.NewLineForPoints(
			toVector3(positions[l[0]]), toVector3(positions[l[1]])))
	}
	return out
}

func toVector(v mgl32.Vec3) fauxgl.Vector {
	return fauxgl.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func toVector3(v [3]float32) fauxgl.Vector {
	return fauxgl.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func toColor(c utils.ColorFloat) fauxgl.Color {
	return fauxgl.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}
