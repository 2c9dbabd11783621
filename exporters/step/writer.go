package step

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/document"
)

const schemaName = "AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }"

// Config is the writer-level configuration. Exported fields are
// forwarded verbatim from the export options.
type Config struct {
	WritePCurves  bool
	PrecisionMode int
}

// Uncertainty is the length measure written into the representation
// context for the configured precision mode.
func (c Config) Uncertainty() float64 {
	switch {
	case c.PrecisionMode < 0:
		return 1e-3
	case c.PrecisionMode > 0:
		return 1e-6
	}
	return 1e-4
}

type Writer struct {
	cfg Config
}

func NewWriter(cfg Config) *Writer {
	return &Writer{cfg: cfg}
}

func (w *Writer) Config() Config {
	return w.cfg
}

func (w *Writer) WriteFile(doc *document.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Failed to create step file %q", path)
	}
	if err := w.Write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (w *Writer) Write(doc *document.Document, out io.Writer) error {
	bw := bufio.NewWriter(out)
	e := &entityWriter{w: bw}

	e.header(doc.Name)
	e.commonEntities(w.cfg.Uncertainty())

	err := doc.Walk(func(l *document.Label, world assembly.Location) error {
		if l.Mesh == nil {
			return nil
		}
		e.product(l, world, w.cfg.WritePCurves)
		return nil
	})
	if err != nil {
		return err
	}

	e.footer()
	if e.err != nil {
		return errors.Wrapf(e.err, "Failed to write step data")
	}
	return bw.Flush()
}

// entityWriter numbers and prints Part 21 entity instances. The first
// write error sticks; later writes become no-ops.
type entityWriter struct {
	w    *bufio.Writer
	next int
	err  error

	ctx int // geometric representation context, shared by all products
}

func (e *entityWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *entityWriter) entity(body string, args ...interface{}) int {
	e.next++
	e.printf("#%d=%s;\n", e.next, fmt.Sprintf(body, args...))
	return e.next
}

func (e *entityWriter) header(name string) {
	e.printf("ISO-10303-21;\nHEADER;\n")
	e.printf("FILE_DESCRIPTION(('faceted assembly export'),'2;1');\n")
	e.printf("FILE_NAME('%s','%s',(''),(''),'asmexport','asmexport','');\n",
		escape(name), time.Now().UTC().Format("2006-01-02T15:04:05"))
	e.printf("FILE_SCHEMA(('%s'));\nENDSEC;\nDATA;\n", schemaName)
}

func (e *entityWriter) footer() {
	e.printf("ENDSEC;\nEND-ISO-10303-21;\n")
}

func (e *entityWriter) commonEntities(uncertainty float64) {
	app := e.entity("APPLICATION_CONTEXT('automotive design')")
	e.entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d)", app)

	length := e.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	angle := e.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	solid := e.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	unc := e.entity("UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(%G),#%d,'distance_accuracy_value','')",
		uncertainty, length)
	e.ctx = e.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((#%d))GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('',''))",
		unc, length, angle, solid)
}

func (e *entityWriter) product(l *document.Label, world assembly.Location, pcurves bool) {
	name := escape(l.Name)

	prodCtx := e.entity("PRODUCT_CONTEXT('',#1,'mechanical')")
	prod := e.entity("PRODUCT('%s','%s','',(#%d))", name, name, prodCtx)
	formation := e.entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", prod)
	defCtx := e.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#1,'design')")
	def := e.entity("PRODUCT_DEFINITION('design','',#%d,#%d)", formation, defCtx)
	defShape := e.entity("PRODUCT_DEFINITION_SHAPE('','',#%d)", def)

	placement := e.axisPlacement(world)

	items := []int{placement}
	items = append(items, e.facetedBrep(l, name))
	if pcurves {
		if curves := e.edgeCurves(l, name); curves != 0 {
			items = append(items, curves)
		}
	}

	repr := e.entity("SHAPE_REPRESENTATION('%s',(%s),#%d)", name, refList(items), e.ctx)
	e.entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", defShape, repr)
}

func (e *entityWriter) axisPlacement(world assembly.Location) int {
	origin := e.entity("CARTESIAN_POINT('',(%G,%G,%G))",
		world.Translation[0], world.Translation[1], world.Translation[2])

	m := world.Rotation.Mat4()
	axis := e.entity("DIRECTION('',(%G,%G,%G))", m.At(0, 2), m.At(1, 2), m.At(2, 2))
	refDir := e.entity("DIRECTION('',(%G,%G,%G))", m.At(0, 0), m.At(1, 0), m.At(2, 0))
	return e.entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", origin, axis, refDir)
}

func (e *entityWriter) facetedBrep(l *document.Label, name string) int {
	m := l.Mesh

	points := make([]int, len(m.Positions))
	for i, p := range m.Positions {
		points[i] = e.entity("CARTESIAN_POINT('',(%G,%G,%G))", p[0], p[1], p[2])
	}

	faces := make([]int, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		loop := e.entity("POLY_LOOP('',(#%d,#%d,#%d))", points[t[0]], points[t[1]], points[t[2]])
		bound := e.entity("FACE_OUTER_BOUND('',#%d,.T.)", loop)
		faces = append(faces, e.entity("FACE_SURFACE('',(#%d),$,.T.)", bound))
	}

	shell := e.entity("CLOSED_SHELL('',(%s))", refList(faces))
	brep := e.entity("FACETED_BREP('%s',#%d)", name, shell)

	e.styledItem(brep, l)
	return brep
}

func (e *entityWriter) styledItem(brep int, l *document.Label) {
	c := l.EffectiveColor()
	rgb := e.entity("COLOUR_RGB('',%G,%G,%G)", c[0], c[1], c[2])
	fill := e.entity("FILL_AREA_STYLE('',(#%d))", e.entity("FILL_AREA_STYLE_COLOUR('',#%d)", rgb))
	surf := e.entity("SURFACE_STYLE_FILL_AREA(#%d)", fill)
	usage := e.entity("SURFACE_STYLE_USAGE(.BOTH.,#%d)", e.entity("SURFACE_SIDE_STYLE('',(#%d))", surf))
	style := e.entity("PRESENTATION_STYLE_ASSIGNMENT((#%d))", usage)
	e.entity("STYLED_ITEM('color',(#%d),#%d)", style, brep)
}

// edgeCurves writes the tessellated boundary edges as a geometric curve
// set of polylines. Returns 0 when the label has no line cells.
func (e *entityWriter) edgeCurves(l *document.Label, name string) int {
	m := l.Mesh
	if len(m.Lines) == 0 {
		return 0
	}

	polylines := make([]int, 0, len(m.Lines))
	for _, line := range m.Lines {
		a := m.Positions[line[0]]
		b := m.Positions[line[1]]
		pa := e.entity("CARTESIAN_POINT('',(%G,%G,%G))", a[0], a[1], a[2])
		pb := e.entity("CARTESIAN_POINT('',(%G,%G,%G))", b[0], b[1], b[2])
		polylines = append(polylines, e.entity("POLYLINE('',(#%d,#%d))", pa, pb))
	}
	return e.entity("GEOMETRIC_CURVE_SET('%s edges',(%s))", name, refList(polylines))
}

func refList(ids []int) string {
	out := make([]byte, 0, len(ids)*6)
	for i, id := range ids {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, fmt.Sprintf("#%d", id)...)
	}
	return string(out)
}

// escape quotes apostrophes and backslashes per Part 21 string rules.
func escape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\'':
			out = append(out, '\'', '\'')
		case '\\':
			out = append(out, '\\', '\\')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
