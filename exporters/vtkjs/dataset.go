package vtkjs

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/scene"
)

// writeDataSet lays out one actor as a vtkPolyData directory:
// index.json plus data/<md5> array files.
func writeDataSet(actor *scene.Actor, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0777); err != nil {
		return errors.Wrapf(err, "Failed to create dataset dir %q", dir)
	}

	m := actor.Mesh

	points := make([]byte, 0, len(m.Positions)*12)
	for _, p := range m.Positions {
		points = appendFloats(points, p[0], p[1], p[2])
	}
	pointsRef, err := writeArray(dir, points)
	if err != nil {
		return err
	}

	index := polyData{
		VTKClass: "vtkPolyData",
		Points: arrayJSON{
			VTKClass:           "vtkPoints",
			Name:               "_points",
			DataType:           "Float32Array",
			NumberOfComponents: 3,
			Size:               len(m.Positions) * 3,
			Ref:                ref(pointsRef),
		},
	}

	if len(m.Triangles) > 0 {
		polys := make([]byte, 0, len(m.Triangles)*16)
		for _, t := range m.Triangles {
			polys = appendUints(polys, 3, t[0], t[1], t[2])
		}
		id, err := writeArray(dir, polys)
		if err != nil {
			return err
		}
		index.Polys = &arrayJSON{
			VTKClass:           "vtkCellArray",
			Name:               "_polys",
			DataType:           "Uint32Array",
			NumberOfComponents: 1,
			Size:               len(m.Triangles) * 4,
			Ref:                ref(id),
		}
	}

	var cells []byte
	cellsNum := 0
	for _, l := range m.Lines {
		cells = appendUints(cells, 2, l[0], l[1])
		cellsNum += 3
	}
	for _, p := range m.Points {
		cells = appendUints(cells, 1, p)
		cellsNum += 2
	}
	if cells != nil {
		id, err := writeArray(dir, cells)
		if err != nil {
			return err
		}
		index.Lines = &arrayJSON{
			VTKClass:           "vtkCellArray",
			Name:               "_lines",
			DataType:           "Uint32Array",
			NumberOfComponents: 1,
			Size:               cellsNum,
			Ref:                ref(id),
		}
	}

	if m.Normals != nil && len(m.Normals) > 0 {
		normals := make([]byte, 0, len(m.Normals)*12)
		for _, n := range m.Normals {
			normals = appendFloats(normals, n[0], n[1], n[2])
		}
		id, err := writeArray(dir, normals)
		if err != nil {
			return err
		}
		index.PointData = &dataSetAttrs{
			VTKClass: "vtkDataSetAttributes",
			Arrays: []attrArray{{Data: arrayJSON{
				VTKClass:           "vtkDataArray",
				Name:               "Normals",
				DataType:           "Float32Array",
				NumberOfComponents: 3,
				Size:               len(m.Normals) * 3,
				Ref:                ref(id),
			}}},
		}
	}

	data, err := json.MarshalIndent(&index, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal polydata index")
	}
	return os.WriteFile(filepath.Join(dir, "index.json"), data, 0666)
}

// writeArray stores raw little-endian bytes under data/ named by their
// md5, the way the toolkit's dataset writer names array files.
func writeArray(dir string, data []byte) (string, error) {
	id := fmt.Sprintf("%x", md5.Sum(data))
	path := filepath.Join(dir, "data", id)
	if err := os.WriteFile(path, data, 0666); err != nil {
		return "", errors.Wrapf(err, "Failed to write array %q", path)
	}
	return id, nil
}

func appendFloats(b []byte, vs ...float32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}

func appendUints(b []byte, vs ...uint32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func itemName(i int, actor *scene.Actor) string {
	kind := "faces"
	if actor.Kind == scene.EdgeActor {
		kind = "edges"
	}
	return fmt.Sprintf("%d_%s_%s", i+1, actor.Name, kind)
}

func ref(id string) *refJSON {
	return &refJSON{Encode: "LittleEndian", BasePath: "data", ID: id}
}
