// Package exporters is the entry point of the module: one function per
// supported output format, each a thin dispatch into the format
// package. Every call is synchronous and self-contained; failures from
// the underlying writers surface unchanged.
package exporters

import (
	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/exporters/gltfexp"
	"github.com/rastvo/asmexport/exporters/ocaf"
	"github.com/rastvo/asmexport/exporters/png"
	"github.com/rastvo/asmexport/exporters/step"
	"github.com/rastvo/asmexport/exporters/vrml"
	"github.com/rastvo/asmexport/exporters/vtkjs"
)

type (
	STEPOptions = step.Options
	GLTFOptions = gltfexp.Options
	PNGOptions  = png.Options
)

// STEP writes an ISO 10303-21 file.
func STEP(assy *assembly.Assembly, path string, opts STEPOptions) error {
	return step.Export(assy, path, opts)
}

// CAF writes the document intermediate as an XML file.
func CAF(assy *assembly.Assembly, path string) error {
	return ocaf.Export(assy, path)
}

// GLTF writes a glTF 2.0 file, binary or ASCII per options or path
// extension.
func GLTF(assy *assembly.Assembly, path string, opts GLTFOptions) error {
	return gltfexp.Export(assy, path, opts)
}

// VRML writes a VRML 2.0 world. Zero tolerances take the configured
// defaults.
func VRML(assy *assembly.Assembly, path string, tolerance, angularTolerance float32) error {
	return vrml.Export(assy, path, tolerance, angularTolerance)
}

// VTKJS writes a zipped vtk.js scene. ".zip" is appended to path.
func VTKJS(assy *assembly.Assembly, path string, tolerance, angularTolerance float32) error {
	return vtkjs.Export(assy, path, tolerance, angularTolerance)
}

// PNG renders the assembly offscreen into a PNG image.
func PNG(assy *assembly.Assembly, path string, opts PNGOptions) error {
	return png.Export(assy, path, opts)
}

// PNGShape renders a bare shape with the same defaults as PNG.
func PNGShape(shape assembly.Shape, path string, opts PNGOptions) error {
	return png.ExportShape(shape, path, opts)
}
