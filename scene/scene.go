// Package scene turns an assembly into renderable actors: per leaf one
// actor for the triangle cells and one for the line/vertex cells. The
// VRML, vtk.js and PNG exporters all consume this representation.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

type ActorKind int

const (
	FaceActor ActorKind = iota
	EdgeActor
)

var EdgeColor = utils.ColorFloat{1.0, 1.0, 1.0, 1.0}

type Actor struct {
	Kind      ActorKind
	Name      string
	Mesh      *mesh.Mesh
	Position  mgl32.Vec3
	Rotation  mgl32.Quat
	Color     utils.ColorFloat
	LineWidth float32
}

type Scene struct {
	Actors     []*Actor
	Background utils.ColorFloat
	Bounds     mesh.AABB
}

// FromAssembly tessellates every leaf shape and splits its cells into a
// face actor and an edge actor placed at the leaf's world location.
func FromAssembly(assy *assembly.Assembly, tolerance, angularTolerance float32) (*Scene, error) {
	s := &Scene{
		Background: config.Background(),
		Bounds:     mesh.EmptyAABB(),
	}

	err := assy.Traverse(func(node *assembly.Assembly, world assembly.Location) error {
		if node.Shape == nil {
			return nil
		}
		m, err := node.Shape.Tessellate(tolerance, angularTolerance)
		if err != nil {
			return errors.Wrapf(err, "Failed to tessellate %q", node.Name)
		}

		faces, edges := m.SplitCells()

		s.Actors = append(s.Actors, &Actor{
			Kind:     FaceActor,
			Name:     node.Name,
			Mesh:     faces,
			Position: world.Translation,
			Rotation: world.Rotation,
			Color:    node.EffectiveColor(),
		})
		s.Actors = append(s.Actors, &Actor{
			Kind:      EdgeActor,
			Name:      node.Name,
			Mesh:      edges,
			Position:  world.Translation,
			Rotation:  world.Rotation,
			Color:     EdgeColor,
			LineWidth: 1,
		})

		s.Bounds = s.Bounds.Join(world.Apply(m).Bounds())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if config.Debug() {
		utils.LogDump(s.Actors)
	}
	return s, nil
}
