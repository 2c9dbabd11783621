// Package png rasterizes the render scene offscreen and writes the
// framebuffer as a PNG image.
//
// Rendering state lives in a per-call context; nothing process-wide is
// touched, so concurrent exports do not interfere.
package png

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/scene"
	"github.com/rastvo/asmexport/utils"
)

// Options enumerates every recognized rendering option. Nil pointer
// fields and zero sizes take the stated defaults.
type Options struct {
	Width  int // default 800
	Height int // default 600

	CameraPosition  *mgl32.Vec3 // default: bbox extents scaled by 2
	ViewUpDirection *mgl32.Vec3 // default (0, 0, 1)
	FocalPoint      *mgl32.Vec3 // default (0, 0, 0)

	ParallelProjection *bool             // default false
	BackgroundColor    *utils.ColorFloat // default (0.8, 0.8, 0.8)
	ClippingRange      *[2]float32       // default: derived from scene bounds

	Tolerance        float32
	AngularTolerance float32
}

// settings are fully resolved options, validated at the boundary.
type settings struct {
	width, height int
	camera        scene.Camera
	background    utils.ColorFloat
}

func (o Options) resolve(s *scene.Scene) settings {
	width, height := config.ImageSize()
	if o.Width > 0 {
		width = o.Width
	}
	if o.Height > 0 {
		height = o.Height
	}

	camera := scene.FitCamera(s)
	if o.CameraPosition != nil {
		camera.Position = *o.CameraPosition
	}
	if o.ViewUpDirection != nil {
		camera.ViewUp = *o.ViewUpDirection
	}
	if o.FocalPoint != nil {
		camera.FocalPoint = *o.FocalPoint
	}
	if o.ParallelProjection != nil {
		camera.Parallel = *o.ParallelProjection
	}
	camera.ClippingRange = o.ClippingRange

	background := config.Background()
	if o.BackgroundColor != nil {
		background = *o.BackgroundColor
	}

	return settings{
		width:      width,
		height:     height,
		camera:     camera,
		background: background,
	}
}

// Export renders the assembly offscreen and writes a PNG at path.
func Export(assy *assembly.Assembly, path string, opts Options) error {
	if opts.Tolerance <= 0 {
		opts.Tolerance = config.LinearTolerance()
	}
	if opts.AngularTolerance <= 0 {
		opts.AngularTolerance = config.AngularTolerance()
	}

	s, err := scene.FromAssembly(assy, opts.Tolerance, opts.AngularTolerance)
	if err != nil {
		return err
	}

	return render(s, path, opts.resolve(s))
}

// ExportShape renders a bare shape by wrapping it in a one-part
// assembly, so both entry points share defaults and behavior.
func ExportShape(shape assembly.Shape, path string, opts Options) error {
	assy := assembly.New("shape")
	assy.AddPart("shape", shape, assembly.Identity(), nil)
	return Export(assy, path, opts)
}
