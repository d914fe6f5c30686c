package svg2vd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Level is the severity of a diagnostic.
type Level int

// Diagnostic levels. Errors prevent conversion, warnings drop only the element they concern.
const (
	LevelError Level = iota
	LevelWarning
)

func (level Level) String() string {
	if level == LevelError {
		return "Error"
	}
	return "Warning"
}

// Diagnostic is a problem found in an SVG document.
type Diagnostic struct {
	Level   Level
	Line    int
	Element string
	Err     error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v@ line %d %v", d.Level, d.Line, d.Err)
}

////////////////////////////////////////////////////////////////

// ViewBox is the user space rectangle that is mapped onto the viewport.
type ViewBox struct {
	X, Y, W, H float64
}

// Element is a group or a leaf of the tree.
type Element interface {
	Transform(Matrix)
	Dump(io.Writer, string)
}

// Group is an SVG g element.
type Group struct {
	ID       string
	Line     int
	Children []Element
}

// Add appends a child element.
func (g *Group) Add(e Element) {
	g.Children = append(g.Children, e)
}

// Transform transforms all leaves in the group.
func (g *Group) Transform(m Matrix) {
	for _, child := range g.Children {
		child.Transform(m)
	}
}

// Walk calls fn for every leaf in document order.
func (g *Group) Walk(fn func(*Leaf)) {
	for _, child := range g.Children {
		switch e := child.(type) {
		case *Group:
			e.Walk(fn)
		case *Leaf:
			fn(e)
		}
	}
}

// Dump writes the group and its children.
func (g *Group) Dump(w io.Writer, indent string) {
	fmt.Fprintf(w, "%sgroup %q (line %d)\n", indent, g.ID, g.Line)
	for _, child := range g.Children {
		child.Dump(w, indent+"  ")
	}
}

// Leaf is a drawable SVG element converted to path data.
type Leaf struct {
	ID     string
	Tag    string
	Line   int
	Path   Path
	Matrix Matrix // transform from the leaf's coordinates to the document's user space
	Style  Style
}

// Drawable returns true if the leaf has path data and paints something.
func (l *Leaf) Drawable() bool {
	return !l.Path.Empty() && l.Style.Visible()
}

// Transform applies m after the leaf's own matrix to the path data and resets the matrix. The stroke width is scaled by the square root of the area scale. Leaves that draw nothing are left alone.
func (l *Leaf) Transform(m Matrix) {
	if !l.Drawable() {
		return
	}
	m = m.Mul(l.Matrix)
	l.Path = l.Path.Transform(m)
	l.Matrix = Identity

	if v, ok := l.Style[attrStrokeWidth]; ok {
		if sw, err := strconv.ParseFloat(v, 64); err == nil {
			if scale := math.Sqrt(math.Abs(m.Det())); !equal(scale, 1.0) {
				l.Style[attrStrokeWidth] = dec(sw * scale).String()
			}
		}
	}
}

// Dump writes the leaf and its path data.
func (l *Leaf) Dump(w io.Writer, indent string) {
	fmt.Fprintf(w, "%s%s %q (line %d): %v\n", indent, l.Tag, l.ID, l.Line, l.Path)
}

////////////////////////////////////////////////////////////////

// Tree is a parsed SVG document.
type Tree struct {
	Width, Height float64
	ViewBox       ViewBox
	Matrix        Matrix // applied to all leaves in user space before the view box translation
	Root          *Group
	Diagnostics   []Diagnostic
}

// Normalize transforms all drawable leaves into viewport coordinates, applying the tree matrix, the view box translation, and the leaves' own matrices in a single pass.
func (t *Tree) Normalize() {
	m := Identity.Translate(-t.ViewBox.X, -t.ViewBox.Y).Mul(t.Matrix)
	t.Root.Transform(m)
	t.Matrix = Identity
	t.ViewBox.X, t.ViewBox.Y = 0.0, 0.0
}

// Leaves returns all leaves in document order.
func (t *Tree) Leaves() []*Leaf {
	leaves := []*Leaf{}
	t.Root.Walk(func(l *Leaf) {
		leaves = append(leaves, l)
	})
	return leaves
}

// CanConvert returns true if there are no error diagnostics.
func (t *Tree) CanConvert() bool {
	for _, d := range t.Diagnostics {
		if d.Level == LevelError {
			return false
		}
	}
	return true
}

// ErrorLog returns the diagnostics of the file, one per line, or an empty string if there are none.
func (t *Tree) ErrorLog(filename string) string {
	if len(t.Diagnostics) == 0 {
		return ""
	}
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "In %s:\n", filename)
	for _, d := range t.Diagnostics {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dump writes the tree structure.
func (t *Tree) Dump(w io.Writer) {
	fmt.Fprintf(w, "svg %vx%v viewBox=%v,%v,%v,%v\n", dec(t.Width), dec(t.Height), dec(t.ViewBox.X), dec(t.ViewBox.Y), dec(t.ViewBox.W), dec(t.ViewBox.H))
	t.Root.Dump(w, "  ")
}
