// Package vrml serializes the render scene as a VRML 2.0 world: one
// Transform per actor, IndexedFaceSet geometry for face actors and
// IndexedLineSet for edge actors.
package vrml

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/scene"
	"github.com/rastvo/asmexport/utils"
)

// Export tessellates the assembly and writes a VRML file at path.
func Export(assy *assembly.Assembly, path string, tolerance, angularTolerance float32) error {
	if tolerance <= 0 {
		tolerance = config.LinearTolerance()
	}
	if angularTolerance <= 0 {
		angularTolerance = config.AngularTolerance()
	}

	s, err := scene.FromAssembly(assy, tolerance, angularTolerance)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create vrml file %q", path)
	}
	if err := Write(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Write(s *scene.Scene, out io.Writer) error {
	w := &vrmlWriter{w: bufio.NewWriter(out)}

	w.printf("#VRML V2.0 utf8\n")
	w.printf("# written by asmexport\n")
	w.printf("Background {\n  skyColor [ %s ]\n}\n", color3(s.Background))

	camera := scene.FitCamera(s)
	w.printf("Viewpoint {\n  position %G %G %G\n  description \"default\"\n}\n",
		camera.Position[0], camera.Position[1], camera.Position[2])

	for _, actor := range s.Actors {
		w.actor(actor)
	}

	if w.err != nil {
		return errors.Wrapf(w.err, "Failed to write vrml scene")
	}
	return w.w.Flush()
}

type vrmlWriter struct {
	w   *bufio.Writer
	err error
}

func (w *vrmlWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *vrmlWriter) actor(a *scene.Actor) {
	axis, angle := utils.QuatToAxisAngle(a.Rotation)

	w.printf("Transform {\n")
	w.printf("  translation %G %G %G\n", a.Position[0], a.Position[1], a.Position[2])
	w.printf("  rotation %G %G %G %G\n", axis[0], axis[1], axis[2], angle)
	w.printf("  children [\n    Shape {\n")

	w.printf("      appearance Appearance {\n        material Material {\n")
	w.printf("          diffuseColor %s\n", color3(a.Color))
	if a.Color.Opacity() < 1 {
		w.printf("          transparency %G\n", 1-a.Color.Opacity())
	}
	w.printf("        }\n      }\n")

	switch a.Kind {
	case scene.FaceActor:
		w.faceSet(a)
	case scene.EdgeActor:
		w.lineSet(a)
	}

	w.printf("    }\n  ]\n}\n")
}

func (w *vrmlWriter) faceSet(a *scene.Actor) {
	w.printf("      geometry IndexedFaceSet {\n        solid FALSE\n")
	w.coordinates(a)
	if a.Mesh.Normals != nil {
		w.printf("        normalPerVertex TRUE\n        normal Normal {\n          vector [\n")
		for _, n := range a.Mesh.Normals {
			w.printf("            %G %G %G,\n", n[0], n[1], n[2])
		}
		w.printf("          ]\n        }\n")
	}
	w.printf("        coordIndex [\n")
	for _, t := range a.Mesh.Triangles {
		w.printf("          %d, %d, %d, -1,\n", t[0], t[1], t[2])
	}
	w.printf("        ]\n      }\n")
}

func (w *vrmlWriter) lineSet(a *scene.Actor) {
	w.printf("      geometry IndexedLineSet {\n")
	w.coordinates(a)
	w.printf("        coordIndex [\n")
	for _, l := range a.Mesh.Lines {
		w.printf("          %d, %d, -1,\n", l[0], l[1])
	}
	w.printf("        ]\n      }\n")
}

func (w *vrmlWriter) coordinates(a *scene.Actor) {
	w.printf("        coord Coordinate {\n          point [\n")
	for _, p := range a.Mesh.Positions {
		w.printf("            %G %G %G,\n", p[0], p[1], p[2])
	}
	w.printf("          ]\n        }\n")
}

func color3(c utils.ColorFloat) string {
	return fmt.Sprintf("%G %G %G", c[0], c[1], c[2])
}
