package svg2vd

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// LineCap is the shape at the ends of open strokes.
type LineCap int

// Line caps.
const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (lc LineCap) String() string {
	switch lc {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// LineJoin is the shape at the corners of strokes.
type LineJoin int

// Line joins.
const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (join LineJoin) String() string {
	switch join {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "miter"
}

// FillType is the fill rule of a path.
type FillType int

// Fill types.
const (
	NonZero FillType = iota
	EvenOdd
)

func (fillType FillType) String() string {
	if fillType == EvenOdd {
		return "evenOdd"
	}
	return "nonZero"
}

// VectorPath is a path element of a VectorDrawable, with the transformations of its groups applied.
type VectorPath struct {
	Name        string
	Path        Path
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
	MiterLimit  float64
	FillType    FillType
	TrimStart   float64
	TrimEnd     float64
	TrimOffset  float64
	Clip        bool // path is a clip-path element

	fillAlpha, strokeAlpha float64
}

// VectorDrawable is a parsed Android VectorDrawable document.
type VectorDrawable struct {
	Width, Height                 float64 // in dp
	ViewportWidth, ViewportHeight float64
	Alpha                         float64
	Paths                         []*VectorPath
}

// Dump writes a summary of the drawable.
func (vd *VectorDrawable) Dump(w io.Writer) {
	fmt.Fprintf(w, "vector %vx%vdp viewport=%vx%v alpha=%v\n", dec(vd.Width), dec(vd.Height), dec(vd.ViewportWidth), dec(vd.ViewportHeight), dec(vd.Alpha))
	for _, p := range vd.Paths {
		tag := "path"
		if p.Clip {
			tag = "clip-path"
		}
		fmt.Fprintf(w, "  %s %q: %d nodes bounds=%v fill=%s stroke=%s width=%v\n", tag, p.Name, len(p.Path), p.Path.FastBounds(), argbColor(p.FillColor), argbColor(p.StrokeColor), dec(p.StrokeWidth))
	}
}

// parseSize parses a dimension with an Android unit suffix. All units are taken as dp.
func parseSize(v string) (float64, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, unit := range []string{"dip", "dp", "sp", "px", "pt", "in", "mm"} {
		if strings.HasSuffix(v, unit) {
			v = strings.TrimSpace(v[:len(v)-len(unit)])
			break
		}
	}
	return strconv.ParseFloat(v, 64)
}

// groupMatrix returns the transformation of a group element.
func groupMatrix(attrs map[string]float64) Matrix {
	sx, sy := 1.0, 1.0
	if v, ok := attrs["android:scaleX"]; ok {
		sx = v
	}
	if v, ok := attrs["android:scaleY"]; ok {
		sy = v
	}
	px, py := attrs["android:pivotX"], attrs["android:pivotY"]
	tx, ty := attrs["android:translateX"], attrs["android:translateY"]
	return Identity.Translate(tx+px, ty+py).Rotate(attrs["android:rotation"]).Scale(sx, sy).Translate(-px, -py)
}

type vdParser struct {
	z      *parse.Input
	vd     *VectorDrawable
	tags   []string
	groups []Matrix
}

func (vdp *vdParser) errorf(format string, a ...interface{}) *parse.Error {
	return parse.NewErrorLexer(vdp.z, format, a...)
}

// PathDataError is a bad android:pathData value. It unwraps to both the position of the element and the error of the path parser.
type PathDataError struct {
	Pos *parse.Error
	Err error
}

func (e *PathDataError) Error() string {
	return e.Pos.Error()
}

func (e *PathDataError) Unwrap() []error {
	return []error{e.Pos, e.Err}
}

func (vdp *vdParser) float(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0.0, vdp.errorf("bad %s: %s", name, v)
	}
	return f, nil
}

var vectorAttrs = []string{
	"android:width",
	"android:height",
	"android:viewportWidth",
	"android:viewportHeight",
	"android:alpha",
}

var pathAttrs = []string{
	"android:name",
	"android:pathData",
	"android:fillColor",
	"android:strokeColor",
	"android:fillAlpha",
	"android:strokeAlpha",
	"android:strokeWidth",
	"android:strokeMiterLimit",
	"android:strokeMiterlimit",
	"android:trimPathStart",
	"android:trimPathEnd",
	"android:trimPathOffset",
	"android:strokeLinecap",
	"android:strokeLinejoin",
	"android:fillType",
	"android:clipToPath",
}

func (vdp *vdParser) vector(attrs map[string]string) error {
	var err error
	for _, name := range vectorAttrs {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		switch name {
		case "android:width":
			if vdp.vd.Width, err = parseSize(v); err != nil {
				return vdp.errorf("bad android:width: %s", v)
			}
		case "android:height":
			if vdp.vd.Height, err = parseSize(v); err != nil {
				return vdp.errorf("bad android:height: %s", v)
			}
		case "android:viewportWidth":
			if vdp.vd.ViewportWidth, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:viewportHeight":
			if vdp.vd.ViewportHeight, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:alpha":
			if vdp.vd.Alpha, err = vdp.float(name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (vdp *vdParser) group(attrs map[string]string) error {
	vals := map[string]float64{}
	for _, name := range []string{"android:rotation", "android:pivotX", "android:pivotY", "android:scaleX", "android:scaleY", "android:translateX", "android:translateY"} {
		if v, ok := attrs[name]; ok {
			f, err := vdp.float(name, v)
			if err != nil {
				return err
			}
			vals[name] = f
		}
	}
	m := vdp.groups[len(vdp.groups)-1].Mul(groupMatrix(vals))
	vdp.groups = append(vdp.groups, m)
	return nil
}

func (vdp *vdParser) path(attrs map[string]string, clip bool) error {
	p := &VectorPath{
		FillColor:   color.NRGBA{0, 0, 0, 0},
		StrokeColor: color.NRGBA{0, 0, 0, 0},
		MiterLimit:  4.0,
		TrimEnd:     1.0,
		Clip:        clip,
		fillAlpha:   1.0,
		strokeAlpha: 1.0,
	}

	var err error
	for _, name := range pathAttrs {
		v, ok := attrs[name]
		if !ok {
			continue
		}
		switch name {
		case "android:name":
			p.Name = v
		case "android:pathData":
			if p.Path, err = ParsePath(v); err != nil {
				return &PathDataError{Pos: vdp.errorf("%v", err), Err: err}
			}
		case "android:fillColor", "android:strokeColor":
			c, err := ParseColor(v)
			if err != nil {
				return vdp.errorf("bad %s: %s", name, v)
			} else if name == "android:fillColor" {
				p.FillColor = c
			} else {
				p.StrokeColor = c
			}
		case "android:fillAlpha":
			if p.fillAlpha, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:strokeAlpha":
			if p.strokeAlpha, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:strokeWidth":
			if p.StrokeWidth, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:strokeMiterLimit", "android:strokeMiterlimit":
			if p.MiterLimit, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:trimPathStart":
			if p.TrimStart, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:trimPathEnd":
			if p.TrimEnd, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:trimPathOffset":
			if p.TrimOffset, err = vdp.float(name, v); err != nil {
				return err
			}
		case "android:strokeLinecap":
			switch strings.ToLower(v) {
			case "butt":
				p.LineCap = ButtCap
			case "round":
				p.LineCap = RoundCap
			case "square":
				p.LineCap = SquareCap
			default:
				return vdp.errorf("bad %s: %s", name, v)
			}
		case "android:strokeLinejoin":
			switch strings.ToLower(v) {
			case "miter":
				p.LineJoin = MiterJoin
			case "round":
				p.LineJoin = RoundJoin
			case "bevel":
				p.LineJoin = BevelJoin
			default:
				return vdp.errorf("bad %s: %s", name, v)
			}
		case "android:fillType":
			switch strings.ToLower(v) {
			case "nonzero":
				p.FillType = NonZero
			case "evenodd":
				p.FillType = EvenOdd
			default:
				return vdp.errorf("bad %s: %s", name, v)
			}
		case "android:clipToPath":
			if p.Clip, err = strconv.ParseBool(v); err != nil {
				return vdp.errorf("bad %s: %s", name, v)
			}
		}
	}
	p.FillColor.A = multiplyAlpha(p.FillColor.A, p.fillAlpha)
	p.StrokeColor.A = multiplyAlpha(p.StrokeColor.A, p.strokeAlpha)

	m := vdp.groups[len(vdp.groups)-1]
	if !m.IsIdentity() {
		p.Path = p.Path.Transform(m)
		p.StrokeWidth *= math.Sqrt(math.Abs(m.Det()))
	}
	vdp.vd.Paths = append(vdp.vd.Paths, p)
	return nil
}

func (vdp *vdParser) endTag() {
	if len(vdp.tags) == 0 {
		return
	}
	tag := vdp.tags[len(vdp.tags)-1]
	vdp.tags = vdp.tags[:len(vdp.tags)-1]
	if tag == "group" {
		vdp.groups = vdp.groups[:len(vdp.groups)-1]
	}
}

func multiplyAlpha(a uint8, alpha float64) uint8 {
	alpha = max(0.0, min(1.0, alpha))
	return uint8(math.Round(float64(a) * alpha))
}

// ParseVectorDrawable parses an Android VectorDrawable document. Colors are folded with their alphas and the transformations of groups are applied to the path data of their children.
func ParseVectorDrawable(r io.Reader) (*VectorDrawable, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	z := parse.NewInputBytes(b)
	defer z.Restore()

	l := xml.NewLexer(z)
	vdp := vdParser{
		z:      z,
		groups: []Matrix{Identity},
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if vdp.vd == nil {
				return nil, fmt.Errorf("not a VectorDrawable document")
			}
			return vdp.vd, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = html.UnescapeString(string(val))
			}

			tag := string(data[1:])
			if vdp.vd == nil {
				if tag != "vector" {
					return nil, vdp.errorf("root element is <%s>, expected <vector>", tag)
				}
				vdp.vd = &VectorDrawable{Alpha: 1.0}
				err = vdp.vector(attrs)
			} else {
				switch tag {
				case "group":
					err = vdp.group(attrs)
				case "path":
					err = vdp.path(attrs, false)
				case "clip-path":
					err = vdp.path(attrs, true)
				}
			}
			if err != nil {
				return nil, err
			}
			vdp.tags = append(vdp.tags, tag)
			if tt == xml.StartTagCloseVoidToken {
				vdp.endTag()
			}
		case xml.EndTagToken:
			vdp.endTag()
		}
	}
}
