// Package document is the in-memory application document used as the
// intermediate representation for STEP, XML and glTF export. It mirrors
// the assembly tree with tessellation already performed, so exporters
// only serialize.
package document

import (
	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

type Label struct {
	Name     string
	Loc      assembly.Location
	Color    *utils.ColorFloat
	Mesh     *mesh.Mesh // nil for grouping labels
	Children []*Label
}

type Document struct {
	Name string
	Root *Label
}

func (l *Label) EffectiveColor() utils.ColorFloat {
	if l.Color != nil {
		return *l.Color
	}
	return assembly.DefaultColor
}

// Walk visits labels pre-order with their accumulated location.
func (d *Document) Walk(visit func(label *Label, world assembly.Location) error) error {
	return walk(d.Root, assembly.Identity(), visit)
}

func walk(l *Label, parent assembly.Location, visit func(*Label, assembly.Location) error) error {
	world := parent.Compose(l.Loc)
	if err := visit(l, world); err != nil {
		return err
	}
	for _, child := range l.Children {
		if err := walk(child, world, visit); err != nil {
			return err
		}
	}
	return nil
}

// FromAssembly converts an assembly into a document, tessellating every
// shape with the given tolerances.
func FromAssembly(assy *assembly.Assembly, tolerance, angularTolerance float32) (*Document, error) {
	root, err := labelFor(assy, tolerance, angularTolerance)
	if err != nil {
		return nil, err
	}
	name := assy.Name
	if name == "" {
		name = utils.RandomName()
	}
	return &Document{Name: name, Root: root}, nil
}

func labelFor(a *assembly.Assembly, tolerance, angularTolerance float32) (*Label, error) {
	l := &Label{
		Name:  a.Name,
		Loc:   a.Loc,
		Color: a.Color,
	}
	if a.Shape != nil {
		m, err := a.Shape.Tessellate(tolerance, angularTolerance)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to tessellate %q", a.Name)
		}
		l.Mesh = m
	}
	for _, child := range a.Children {
		cl, err := labelFor(child, tolerance, angularTolerance)
		if err != nil {
			return nil, err
		}
		l.Children = append(l.Children, cl)
	}
	return l, nil
}

// FromAssemblyFused flattens the whole tree into one merged solid under
// a single label. Coincident vertices are welded within fuzzyTol unless
// glue is set, which skips welding for non-intersecting parts.
func FromAssemblyFused(assy *assembly.Assembly, glue bool, fuzzyTol, tolerance, angularTolerance float32) (*Document, error) {
	compound, err := assy.Compound(tolerance, angularTolerance)
	if err != nil {
		return nil, err
	}
	if !glue {
		if fuzzyTol <= 0 {
			fuzzyTol = tolerance
		}
		compound = compound.Weld(fuzzyTol)
	}

	name := assy.Name
	if name == "" {
		name = utils.RandomName()
	}

	var color *utils.ColorFloat
	if assy.Color != nil {
		c := *assy.Color
		color = &c
	}

	return &Document{
		Name: name,
		Root: &Label{
			Name:  name,
			Loc:   assembly.Identity(),
			Color: color,
			Mesh:  compound,
		},
	}, nil
}
