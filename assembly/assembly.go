// Package assembly is the input data model of the exporters: a tree of
// named shapes, each with a local transform and an optional color. The
// tree owns its children; shapes are referenced, not owned.
package assembly

import (
	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

// Shape is the tessellation boundary. Anything that can triangulate
// itself within the given tolerances can sit in an assembly.
type Shape interface {
	Tessellate(tolerance, angularTolerance float32) (*mesh.Mesh, error)
}

// DefaultColor is used for parts without an explicit color.
var DefaultColor = utils.ColorFloat{0.1, 0.1, 0.1, 1.0}

type Assembly struct {
	Name     string
	Shape    Shape // nil for pure grouping nodes
	Loc      Location
	Color    *utils.ColorFloat
	Children []*Assembly
}

func New(name string) *Assembly {
	return &Assembly{Name: name, Loc: Identity()}
}

func (a *Assembly) AddChild(child *Assembly) *Assembly {
	a.Children = append(a.Children, child)
	return a
}

// AddPart appends a leaf child and returns the parent for chaining.
func (a *Assembly) AddPart(name string, shape Shape, loc Location, color *utils.ColorFloat) *Assembly {
	return a.AddChild(&Assembly{Name: name, Shape: shape, Loc: loc, Color: color})
}

// EffectiveColor is the part color, or DefaultColor when unset.
func (a *Assembly) EffectiveColor() utils.ColorFloat {
	if a.Color != nil {
		return *a.Color
	}
	return DefaultColor
}

// Traverse walks the tree pre-order, handing each node its accumulated
// world location. Returning an error aborts the walk.
func (a *Assembly) Traverse(visit func(node *Assembly, world Location) error) error {
	return a.traverse(Identity(), visit)
}

func (a *Assembly) traverse(parent Location, visit func(node *Assembly, world Location) error) error {
	world := parent.Compose(a.Loc)
	if err := visit(a, world); err != nil {
		return err
	}
	for _, child := range a.Children {
		if err := child.traverse(world, visit); err != nil {
			return err
		}
	}
	return nil
}

// Compound tessellates every shape in the tree and merges the results
// into a single world-space mesh.
func (a *Assembly) Compound(tolerance, angularTolerance float32) (*mesh.Mesh, error) {
	var meshes []*mesh.Mesh
	err := a.Traverse(func(node *Assembly, world Location) error {
		if node.Shape == nil {
			return nil
		}
		m, err := node.Shape.Tessellate(tolerance, angularTolerance)
		if err != nil {
			return errors.Wrapf(err, "Failed to tessellate %q", node.Name)
		}
		meshes = append(meshes, world.Apply(m))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mesh.Merge(meshes), nil
}
