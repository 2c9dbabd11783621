// Package step writes ISO 10303-21 files. Tessellated labels become
// faceted boundary representations (poly-loop faces inside closed
// shells), the assembly structure becomes products with axis
// placements, colors become styled items.
package step

import (
	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/document"
)

// ExportMode selects between one product per label and a single fused
// solid. Fused mode welds coincident vertices across parts and can be
// slow on large assemblies.
type ExportMode string

const (
	ModeDefault ExportMode = "default"
	ModeFused   ExportMode = "fused"
)

type Options struct {
	Mode ExportMode

	// FuzzyTol is the welding tolerance for fused mode. Zero falls back
	// to the linear tessellation tolerance.
	FuzzyTol float32
	// Glue skips welding in fused mode. Only safe for parts that do not
	// intersect, or touch without overlapping.
	Glue bool

	// WritePCurves controls emission of edge curve sets alongside the
	// faceted breps. Nil means on; disabling them gives a smaller file.
	WritePCurves *bool
	// PrecisionMode selects the uncertainty written into the geometric
	// representation context: -1 coarse, 0 default, 1 fine.
	PrecisionMode int

	Tolerance        float32
	AngularTolerance float32
}

func DefaultOptions() Options {
	return Options{
		Mode:             ModeDefault,
		Tolerance:        config.LinearTolerance(),
		AngularTolerance: config.AngularTolerance(),
	}
}

// Export writes the assembly to a STEP file at path.
func Export(assy *assembly.Assembly, path string, opts Options) error {
	if opts.Tolerance <= 0 {
		opts.Tolerance = config.LinearTolerance()
	}
	if opts.AngularTolerance <= 0 {
		opts.AngularTolerance = config.AngularTolerance()
	}

	var doc *document.Document
	var err error
	if opts.Mode == ModeFused {
		doc, err = document.FromAssemblyFused(assy, opts.Glue, opts.FuzzyTol, opts.Tolerance, opts.AngularTolerance)
	} else {
		doc, err = document.FromAssembly(assy, opts.Tolerance, opts.AngularTolerance)
	}
	if err != nil {
		return err
	}

	pcurves := true
	if opts.WritePCurves != nil {
		pcurves = *opts.WritePCurves
	}
	w := NewWriter(Config{
		WritePCurves:  pcurves,
		PrecisionMode: opts.PrecisionMode,
	})
	return w.WriteFile(doc, path)
}
