package svg2vd

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html/charset"
)

// ErrNotSVG is returned when the document does not have a single svg root element.
var ErrNotSVG = errors.New("not an SVG document")

// unsupported are the SVG elements that have no VectorDrawable counterpart.
var unsupported = map[string]bool{
	// animation
	"animate": true, "animateColor": true, "animateMotion": true, "animateTransform": true, "mpath": true, "set": true,
	// containers
	"a": true, "defs": true, "glyph": true, "marker": true, "mask": true, "missing-glyph": true, "pattern": true, "switch": true, "symbol": true,
	// filter primitives
	"feBlend": true, "feColorMatrix": true, "feComponentTransfer": true, "feComposite": true, "feConvolveMatrix": true,
	"feDiffuseLighting": true, "feDisplacementMap": true, "feFlood": true, "feFuncA": true, "feFuncB": true, "feFuncG": true,
	"feFuncR": true, "feGaussianBlur": true, "feImage": true, "feMerge": true, "feMergeNode": true, "feMorphology": true,
	"feOffset": true, "feSpecularLighting": true, "feTile": true, "feTurbulence": true,
	"feDistantLight": true, "fePointLight": true, "feSpotLight": true,
	// fonts
	"font": true, "font-face": true, "font-face-format": true, "font-face-name": true, "font-face-src": true, "font-face-uri": true,
	"hkern": true, "vkern": true,
	// gradients
	"linearGradient": true, "radialGradient": true, "stop": true,
	// text
	"text": true, "altGlyph": true, "altGlyphDef": true, "altGlyphItem": true, "glyphRef": true, "textPath": true, "tref": true, "tspan": true,
	// other
	"use": true, "image": true, "clipPath": true, "color-profile": true, "cursor": true, "filter": true, "foreignObject": true, "script": true, "view": true,
}

// parseDimension returns a length in user units, where percentages are relative to parent.
func parseDimension(v string, parent float64) (float64, error) {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0.0, nil
	}

	nn, _ := parse.Dimension([]byte(v))
	num, err := strconv.ParseFloat(v[:nn], 64)
	if err != nil {
		return 0.0, fmt.Errorf("bad dimension: %v: %s", err, v)
	}

	dim := v[nn:]
	switch strings.ToLower(dim) {
	case "cm":
		return num * 10.0 * 96.0 / 25.4, nil
	case "mm":
		return num * 96.0 / 25.4, nil
	case "q":
		return num * 0.25 * 96.0 / 25.4, nil
	case "in":
		return num * 96.0, nil
	case "pc":
		return num * 96.0 / 6.0, nil
	case "pt":
		return num * 96.0 / 72.0, nil
	case "", "px":
		return num, nil
	case "%":
		return num * parent / 100.0, nil
	}
	return 0.0, fmt.Errorf("unknown dimension: %s", dim)
}

// ParseTransform parses the transform attribute. Transformations are applied from right to left.
func ParseTransform(v string) (Matrix, error) {
	i, j := 0, 0
	m := Identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.Trim(v[j:i], " \t\r\n,"))
			j = i + 1
		} else if v[i] == ')' {
			d, err := ParseFloats(v[j:i])
			if err != nil {
				return Identity, fmt.Errorf("bad transform %s: %w", fun, err)
			}
			switch fun {
			case "matrix":
				if len(d) != 6 {
					return Identity, fmt.Errorf("bad transform matrix")
				}
				m = m.Mul(NewMatrix(d[0], d[1], d[2], d[3], d[4], d[5]))
			case "translate":
				if len(d) == 1 {
					m = m.Translate(d[0], 0.0)
				} else if len(d) == 2 {
					m = m.Translate(d[0], d[1])
				} else {
					return Identity, fmt.Errorf("bad transform translate")
				}
			case "scale":
				if len(d) == 1 {
					m = m.Scale(d[0], d[0])
				} else if len(d) == 2 {
					m = m.Scale(d[0], d[1])
				} else {
					return Identity, fmt.Errorf("bad transform scale")
				}
			case "rotate":
				if len(d) == 1 {
					m = m.Rotate(d[0])
				} else if len(d) == 3 {
					m = m.RotateAt(d[0], d[1], d[2])
				} else {
					return Identity, fmt.Errorf("bad transform rotate")
				}
			case "skewx":
				if len(d) != 1 {
					return Identity, fmt.Errorf("bad transform skewX")
				}
				m = m.Shear(math.Tan(d[0]*math.Pi/180.0), 0.0)
			case "skewy":
				if len(d) != 1 {
					return Identity, fmt.Errorf("bad transform skewY")
				}
				m = m.Shear(0.0, math.Tan(d[0]*math.Pi/180.0))
			default:
				return Identity, fmt.Errorf("unknown transform: %s", fun)
			}
			j = i + 1
		}
		i++
	}
	if strings.Trim(v[j:], " \t\r\n,") != "" {
		return Identity, fmt.Errorf("bad transform: %s", v)
	}
	return m, nil
}

// parsePoints parses the points attribute of polygons and polylines. An odd trailing coordinate is dropped.
func parsePoints(v string) ([]Point, error) {
	vals, err := ParseFloats(v)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		points = append(points, Point{vals[i], vals[i+1]})
	}
	return points, nil
}

// xmlEncoding returns the encoding label of the XML declaration, if any.
func xmlEncoding(b []byte) string {
	z := parse.NewInputBytes(b)
	defer z.Restore()

	l := xml.NewLexer(z)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.StartTagPIToken:
			if !bytes.HasSuffix(bytes.ToLower(data), []byte("xml")) {
				return ""
			}
		case xml.AttributeToken:
			if string(l.Text()) == "encoding" {
				val := l.AttrVal()
				if 2 <= len(val) {
					val = val[1 : len(val)-1]
				}
				return strings.TrimSpace(string(val))
			}
		default:
			return ""
		}
	}
}

// decode converts the document to UTF-8 following the encoding of its XML declaration.
func decode(b []byte) ([]byte, error) {
	label := xmlEncoding(b)
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return b, nil
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %s: %w", label, err)
	}
	return io.ReadAll(r)
}

////////////////////////////////////////////////////////////////

type svgFrame struct {
	tag    string
	group  *Group
	style  Style
	matrix Matrix
	hidden bool
}

type svgParser struct {
	z      *parse.Input
	tree   *Tree
	frames []svgFrame
	err    error
	closed bool

	lineOffset, lineNum int // newlines are counted up to lineOffset
}

func (svg *svgParser) frame() *svgFrame {
	return &svg.frames[len(svg.frames)-1]
}

// line returns the current line number of the lexer. Newlines are counted from the previous call onwards, the lexer only moves forward.
func (svg *svgParser) line() int {
	b := svg.z.Bytes()
	offset := min(svg.z.Offset(), len(b))
	for i := svg.lineOffset; i < offset; i++ {
		if b[i] == '\n' || b[i] == '\r' && (i+1 == len(b) || b[i+1] != '\n') {
			svg.lineNum++
		}
	}
	svg.lineOffset = offset
	return svg.lineNum
}

func (svg *svgParser) diag(level Level, tag string, err error) {
	svg.tree.Diagnostics = append(svg.tree.Diagnostics, Diagnostic{
		Level:   level,
		Line:    svg.line(),
		Element: tag,
		Err:     err,
	})
}

// applyStyle applies the presentation attributes and then the style attribute of an element. It returns whether the element is hidden and whether its style makes it fully transparent.
func (svg *svgParser) applyStyle(tag string, style Style, attrs map[string]string, names []string) (bool, bool) {
	hidden, invisible := false, false
	for _, name := range names {
		if name == "display" {
			hidden = hidden || strings.TrimSpace(attrs[name]) == "none"
		} else if name != "style" {
			svg.setPresentation(tag, style, name, attrs[name])
		}
	}
	if v, ok := attrs["style"]; ok {
		for _, decl := range parseInlineStyle(v) {
			if decl.name == "display" {
				hidden = hidden || decl.val == "none"
			} else if decl.name == "opacity" {
				if f, err := strconv.ParseFloat(decl.val, 64); err == nil && f == 0.0 {
					invisible = true
				}
			}
			svg.setPresentation(tag, style, decl.name, decl.val)
		}
	}
	return hidden, invisible
}

func (svg *svgParser) setPresentation(tag string, style Style, name, val string) {
	attr, ok := presentation[name]
	if !ok {
		return
	}
	val = strings.TrimSpace(val)
	if val == "inherit" {
		return
	} else if strings.HasPrefix(strings.ToLower(val), "url(") {
		svg.diag(LevelError, tag, fmt.Errorf("unsupported URL value: %s", val))
		return
	}

	v, err := translate(name, val)
	if err != nil {
		svg.diag(LevelError, tag, fmt.Errorf("unsupported %s value: %w", name, err))
		return
	}
	style[attr] = v
}

func (svg *svgParser) root(attrs map[string]string, names []string) {
	tree := &Tree{
		Matrix: Identity,
		Root:   &Group{ID: attrs["id"]},
	}
	svg.tree = tree
	tree.Root.Line = svg.line()

	hasViewBox := false
	if v, ok := attrs["viewBox"]; ok {
		vals, err := ParseFloats(v)
		if err != nil || len(vals) != 4 {
			svg.diag(LevelError, "svg", fmt.Errorf("bad viewBox: %s", v))
		} else {
			tree.ViewBox = ViewBox{vals[0], vals[1], vals[2], vals[3]}
			hasViewBox = 0.0 < vals[2] && 0.0 < vals[3]
		}
	}

	var err error
	if tree.Width, err = parseDimension(attrs["width"], tree.ViewBox.W); err != nil {
		svg.diag(LevelError, "svg", err)
	}
	if tree.Height, err = parseDimension(attrs["height"], tree.ViewBox.H); err != nil {
		svg.diag(LevelError, "svg", err)
	}

	if !hasViewBox {
		if 0.0 < tree.Width && 0.0 < tree.Height {
			tree.ViewBox = ViewBox{0.0, 0.0, tree.Width, tree.Height}
		} else {
			svg.diag(LevelError, "svg", fmt.Errorf("missing viewBox in <svg> element"))
		}
	}
	if tree.Width <= 0.0 || tree.Height <= 0.0 {
		tree.Width, tree.Height = tree.ViewBox.W, tree.ViewBox.H
	}

	style := Style{}
	hidden, _ := svg.applyStyle("svg", style, attrs, names)
	svg.frames = append(svg.frames, svgFrame{
		tag:    "svg",
		group:  tree.Root,
		style:  style,
		matrix: Identity,
		hidden: hidden,
	})
}

// geometry returns the path data of a shape element.
func (svg *svgParser) geometry(tag string, attrs map[string]string) (string, error) {
	vb := svg.tree.ViewBox
	diagonal := math.Sqrt((vb.W*vb.W + vb.H*vb.H) / 2.0)
	dims := func(names []string, parents []float64) ([]float64, error) {
		vals := make([]float64, len(names))
		for i, name := range names {
			var err error
			if vals[i], err = parseDimension(attrs[name], parents[i]); err != nil {
				return nil, fmt.Errorf("bad %s: %w", name, err)
			}
		}
		return vals, nil
	}

	switch tag {
	case "path":
		return attrs["d"], nil
	case "rect":
		d, err := dims([]string{"x", "y", "width", "height", "rx", "ry"}, []float64{vb.W, vb.H, vb.W, vb.H, vb.W, vb.H})
		if err != nil {
			return "", err
		} else if d[2] <= 0.0 || d[3] <= 0.0 {
			return "", nil
		}
		rx, ry := d[4], d[5]
		if _, ok := attrs["rx"]; !ok {
			rx = ry
		} else if _, ok := attrs["ry"]; !ok {
			ry = rx
		}
		return RoundedRectangle(d[0], d[1], d[2], d[3], rx, ry), nil
	case "circle":
		d, err := dims([]string{"cx", "cy", "r"}, []float64{vb.W, vb.H, diagonal})
		if err != nil {
			return "", err
		} else if d[2] <= 0.0 {
			return "", nil
		}
		return Circle(d[0], d[1], d[2]), nil
	case "ellipse":
		d, err := dims([]string{"cx", "cy", "rx", "ry"}, []float64{vb.W, vb.H, vb.W, vb.H})
		if err != nil {
			return "", err
		} else if d[2] <= 0.0 || d[3] <= 0.0 {
			return "", nil
		}
		return Ellipse(d[0], d[1], d[2], d[3]), nil
	case "line":
		d, err := dims([]string{"x1", "y1", "x2", "y2"}, []float64{vb.W, vb.H, vb.W, vb.H})
		if err != nil {
			return "", err
		}
		return Line(d[0], d[1], d[2], d[3]), nil
	case "polygon", "polyline":
		points, err := parsePoints(attrs["points"])
		if err != nil {
			return "", fmt.Errorf("bad points: %w", err)
		} else if tag == "polygon" {
			return Polygon(points), nil
		}
		return Polyline(points), nil
	}
	return "", nil
}

// leaf adds a shape element to the current group. Failures drop the element with a warning.
func (svg *svgParser) leaf(tag string, attrs map[string]string, names []string) {
	parent := svg.frame()
	style := parent.style.Copy()
	hidden, invisible := svg.applyStyle(tag, style, attrs, names)
	if parent.hidden || hidden || invisible {
		return
	}

	m := parent.matrix
	if v, ok := attrs["transform"]; ok {
		t, err := ParseTransform(v)
		if err != nil {
			svg.diag(LevelWarning, tag, err)
			return
		}
		m = m.Mul(t)
	}

	d, err := svg.geometry(tag, attrs)
	if err != nil {
		svg.diag(LevelWarning, tag, err)
		return
	}
	p, err := ParsePath(d)
	if err != nil {
		svg.diag(LevelWarning, tag, err)
		return
	}

	parent.group.Add(&Leaf{
		ID:     attrs["id"],
		Tag:    tag,
		Line:   svg.line(),
		Path:   p,
		Matrix: m,
		Style:  style,
	})
}

func (svg *svgParser) startTag(tag string, attrs map[string]string, names []string) {
	if svg.tree == nil {
		if tag != "svg" {
			svg.err = fmt.Errorf("%w: root element is <%s>", ErrNotSVG, tag)
			return
		}
		svg.root(attrs, names)
		return
	} else if tag == "svg" {
		svg.err = fmt.Errorf("%w: nested <svg> element on line %d", ErrNotSVG, svg.line())
		return
	}

	parent := svg.frame()
	frame := svgFrame{
		tag:    tag,
		group:  parent.group,
		style:  parent.style,
		matrix: parent.matrix,
		hidden: parent.hidden,
	}
	if unsupported[tag] {
		svg.diag(LevelError, tag, fmt.Errorf("<%s> is not supported", tag))
	} else if tag == "style" {
		svg.diag(LevelWarning, tag, fmt.Errorf("style sheets are ignored"))
	}

	switch tag {
	case "g":
		style := parent.style.Copy()
		hidden, _ := svg.applyStyle(tag, style, attrs, names)
		frame.style = style
		frame.hidden = frame.hidden || hidden
		if v, ok := attrs["transform"]; ok {
			if t, err := ParseTransform(v); err != nil {
				svg.diag(LevelError, tag, err)
			} else {
				frame.matrix = frame.matrix.Mul(t)
			}
		}
		g := &Group{ID: attrs["id"], Line: svg.line()}
		parent.group.Add(g)
		frame.group = g
	case "path", "rect", "circle", "ellipse", "line", "polygon", "polyline":
		svg.leaf(tag, attrs, names)
	}
	svg.frames = append(svg.frames, frame)
}

func (svg *svgParser) endTag() {
	if 0 < len(svg.frames) {
		svg.frames = svg.frames[:len(svg.frames)-1]
		svg.closed = len(svg.frames) == 0
	}
}

// ParseSVG parses an SVG document into a tree of groups and path leaves. Geometry is converted to path data and parsed immediately. Problems that prevent a faithful conversion are recorded as diagnostics on the tree, while malformed XML and documents without an svg root return an error.
func ParseSVG(r io.Reader) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if b, err = decode(b); err != nil {
		return nil, err
	}

	z := parse.NewInputBytes(b)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z:       z,
		lineNum: 1,
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if svg.err != nil {
				return nil, svg.err
			} else if svg.tree == nil {
				return nil, ErrNotSVG
			}
			return svg.tree, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			attrNames := []string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrNames = append(attrNames, string(l.Text()))
				attrs[string(l.Text())] = html.UnescapeString(string(val))
			}
			if svg.closed {
				continue
			}

			svg.startTag(string(data[1:]), attrs, attrNames)
			if svg.err != nil {
				return nil, svg.err
			}
			if tt == xml.StartTagCloseVoidToken {
				svg.endTag()
			}
		case xml.EndTagToken:
			svg.endTag()
		}
	}
}
