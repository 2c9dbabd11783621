// Package gltfexp writes the assembly as a glTF 2.0 document.
//
// The assembly authors in +Z up; glTF mandates +Y up. The
// reconciliation is a -90 degree rotation about X carried by a
// synthetic export root node, so the assembly tree itself is never
// touched on any path.
package gltfexp

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/document"
)

type Options struct {
	// Binary forces .glb or ASCII output. Nil selects by extension:
	// ".gltf" is ASCII, everything else binary.
	Binary *bool

	Tolerance        float32
	AngularTolerance float32
}

// BinaryForPath reports the format used when Binary is unset. The
// extension match is case-sensitive: only a literal ".gltf" selects
// ASCII output.
func BinaryForPath(path string) bool {
	return filepath.Ext(path) != ".gltf"
}

// Export writes the assembly to a glTF file at path.
func Export(assy *assembly.Assembly, path string, opts Options) error {
	if opts.Tolerance <= 0 {
		opts.Tolerance = config.LinearTolerance()
	}
	if opts.AngularTolerance <= 0 {
		opts.AngularTolerance = config.AngularTolerance()
	}

	binary := BinaryForPath(path)
	if opts.Binary != nil {
		binary = *opts.Binary
	}

	doc, err := document.FromAssembly(assy, opts.Tolerance, opts.AngularTolerance)
	if err != nil {
		return err
	}

	gdoc, err := buildDocument(doc)
	if err != nil {
		return err
	}

	if binary {
		err = gltf.SaveBinary(gdoc, path)
	} else {
		err = gltf.Save(gdoc, path)
	}
	return errors.Wrapf(err, "Failed to save gltf %q", path)
}

// zUpToYUp is a -90 degree rotation about X as a quaternion.
var zUpToYUp = mgl32.QuatRotate(-mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})

func buildDocument(doc *document.Document) (*gltf.Document, error) {
	gdoc := gltf.NewDocument()
	gdoc.Asset.Generator = "asmexport"

	b := &builder{doc: gdoc}

	rootIndex := uint32(len(gdoc.Nodes))
	root := &gltf.Node{
		Name:     doc.Name,
		Rotation: [4]float32{zUpToYUp.V[0], zUpToYUp.V[1], zUpToYUp.V[2], zUpToYUp.W},
		Scale:    [3]float32{1, 1, 1},
	}
	gdoc.Nodes = append(gdoc.Nodes, root)
	gdoc.Scenes[0].Nodes = append(gdoc.Scenes[0].Nodes, rootIndex)

	child, err := b.node(doc.Root)
	if err != nil {
		return nil, err
	}
	root.Children = append(root.Children, child)

	return gdoc, nil
}

type builder struct {
	doc *gltf.Document
}

func (b *builder) node(l *document.Label) (uint32, error) {
	node := &gltf.Node{
		Name:        l.Name,
		Translation: l.Loc.Translation,
		Rotation:    [4]float32{l.Loc.Rotation.V[0], l.Loc.Rotation.V[1], l.Loc.Rotation.V[2], l.Loc.Rotation.W},
		Scale:       [3]float32{1, 1, 1},
	}

	if l.Mesh != nil && len(l.Mesh.Triangles) > 0 {
		meshIndex, err := b.mesh(l)
		if err != nil {
			return 0, err
		}
		node.Mesh = gltf.Index(meshIndex)
	}

	index := uint32(len(b.doc.Nodes))
	b.doc.Nodes = append(b.doc.Nodes, node)

	for _, child := range l.Children {
		childIndex, err := b.node(child)
		if err != nil {
			return 0, err
		}
		node.Children = append(node.Children, childIndex)
	}

	return index, nil
}

func (b *builder) mesh(l *document.Label) (uint32, error) {
	m := l.Mesh

	if len(m.Positions) == 0 {
		return 0, errors.Errorf("Label %q has no tessellated points", l.Name)
	}

	positionAccessor := modeler.WritePosition(b.doc, m.Positions)

	var normalsAccessor uint32
	if m.Normals != nil {
		normalsAccessor = modeler.WriteNormal(b.doc, m.Normals)
	}

	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, t[0], t[1], t[2])
	}
	indicesAccessor := modeler.WriteIndices(b.doc, indices)

	attributes := map[string]uint32{
		"POSITION": positionAccessor,
	}
	if m.Normals != nil {
		attributes["NORMAL"] = normalsAccessor
	}

	materialIndex := b.material(l)

	gltfMesh := &gltf.Mesh{
		Name: l.Name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: attributes,
				Material:   gltf.Index(materialIndex),
			},
		},
	}

	b.doc.Meshes = append(b.doc.Meshes, gltfMesh)
	return uint32(len(b.doc.Meshes) - 1), nil
}

func (b *builder) material(l *document.Label) uint32 {
	c := l.EffectiveColor()
	color := new([4]float32)
	*color = [4]float32(c)

	b.doc.Materials = append(b.doc.Materials, &gltf.Material{
		Name:        l.Name,
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: color,
		},
	})
	return uint32(len(b.doc.Materials) - 1)
}
