// Package ocaf persists the document intermediate as an XML file, the
// application's own storage format. The storage format name is
// registered from the destination extension.
package ocaf

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/document"
)

const formatName = "XmlOcaf"

// Export converts the assembly to a document and saves it next to
// nothing else at path. The destination folder must already exist.
func Export(assy *assembly.Assembly, path string) error {
	doc, err := document.FromAssembly(assy, config.LinearTolerance(), config.AngularTolerance())
	if err != nil {
		return err
	}
	return Save(doc, path)
}

func Save(doc *document.Document, path string) error {
	folder := filepath.Dir(path)
	if _, err := os.Stat(folder); err != nil {
		return errors.Wrapf(err, "Destination folder %q is not accessible", folder)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "xml"
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	x := xmlDocument{
		Format:    formatName,
		Extension: ext,
		Name:      name,
		Root:      labelToXML(doc.Root),
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create %q", path)
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return errors.Wrapf(err, "Failed to write xml header")
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(&x); err != nil {
		return errors.Wrapf(err, "Failed to encode document %q", doc.Name)
	}
	return enc.Flush()
}

type xmlDocument struct {
	XMLName   xml.Name `xml:"document"`
	Format    string   `xml:"format,attr"`
	Extension string   `xml:"extension,attr"`
	Name      string   `xml:"name,attr"`
	Root      xmlLabel `xml:"label"`
}

type xmlLabel struct {
	Name        string      `xml:"name,attr"`
	Translation string      `xml:"translation,attr"`
	Rotation    string      `xml:"rotation,attr"`
	Color       string      `xml:"color,attr,omitempty"`
	Mesh        *xmlMesh    `xml:"mesh,omitempty"`
	Children    []*xmlLabel `xml:"label"`
}

type xmlMesh struct {
	VerticesNum  int    `xml:"vertices,attr"`
	TrianglesNum int    `xml:"triangles,attr"`
	Positions    string `xml:"positions"`
	Normals      string `xml:"normals,omitempty"`
	Triangles    string `xml:"indexes"`
	Lines        string `xml:"lines,omitempty"`
}

func labelToXML(l *document.Label) xmlLabel {
	x := xmlLabel{
		Name: l.Name,
		Translation: floatList(
			l.Loc.Translation[0], l.Loc.Translation[1], l.Loc.Translation[2]),
		Rotation: floatList(
			l.Loc.Rotation.V[0], l.Loc.Rotation.V[1], l.Loc.Rotation.V[2], l.Loc.Rotation.W),
	}
	if l.Color != nil {
		x.Color = floatList((*l.Color)[0], (*l.Color)[1], (*l.Color)[2], (*l.Color)[3])
	}
	if l.Mesh != nil {
		m := &xmlMesh{
			VerticesNum:  len(l.Mesh.Positions),
			TrianglesNum: len(l.Mesh.Triangles),
		}
		for _, p := range l.Mesh.Positions {
			m.Positions = appendFloats(m.Positions, p[0], p[1], p[2])
		}
		for _, n := range l.Mesh.Normals {
			m.Normals = appendFloats(m.Normals, n[0], n[1], n[2])
		}
		for _, t := range l.Mesh.Triangles {
			m.Triangles = appendInts(m.Triangles, t[0], t[1], t[2])
		}
		for _, line := range l.Mesh.Lines {
			m.Lines = appendInts(m.Lines, line[0], line[1])
		}
		x.Mesh = m
	}
	for _, child := range l.Children {
		cx := labelToXML(child)
		x.Children = append(x.Children, &cx)
	}
	return x
}
