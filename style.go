package svg2vd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// VectorDrawable path attributes.
const (
	attrName           = "android:name"
	attrPathData       = "android:pathData"
	attrFillColor      = "android:fillColor"
	attrFillAlpha      = "android:fillAlpha"
	attrStrokeColor    = "android:strokeColor"
	attrStrokeAlpha    = "android:strokeAlpha"
	attrStrokeWidth    = "android:strokeWidth"
	attrStrokeLinecap  = "android:strokeLinecap"
	attrStrokeLinejoin = "android:strokeLinejoin"
	attrStrokeMiter    = "android:strokeMiterLimit"
	attrFillType       = "android:fillType"
	attrClip           = "android:clip"
)

// presentation maps SVG presentation attributes to VectorDrawable path attributes.
var presentation = map[string]string{
	"stroke":            attrStrokeColor,
	"stroke-opacity":    attrStrokeAlpha,
	"stroke-linejoin":   attrStrokeLinejoin,
	"stroke-linecap":    attrStrokeLinecap,
	"stroke-width":      attrStrokeWidth,
	"stroke-miterlimit": attrStrokeMiter,
	"fill":              attrFillColor,
	"fill-opacity":      attrFillAlpha,
	"fill-rule":         attrFillType,
	"opacity":           attrFillAlpha,
	"clip":              attrClip,
}

// attrOrder is the order in which the style of a path is written.
var attrOrder = []string{
	attrFillColor,
	attrFillAlpha,
	attrFillType,
	attrStrokeColor,
	attrStrokeAlpha,
	attrStrokeWidth,
	attrStrokeLinecap,
	attrStrokeLinejoin,
	attrStrokeMiter,
	attrClip,
}

// Style holds VectorDrawable path attributes and their values.
type Style map[string]string

// Copy returns a copy of the style.
func (s Style) Copy() Style {
	t := make(Style, len(s))
	for k, v := range s {
		t[k] = v
	}
	return t
}

// Visible returns false when neither fill nor stroke would paint anything. A missing fill paints black.
func (s Style) Visible() bool {
	fill, hasFill := s[attrFillColor]
	stroke, hasStroke := s[attrStrokeColor]
	emptyFill := hasFill && isTransparent(fill)
	emptyStroke := !hasStroke || isTransparent(stroke)
	return !emptyFill || !emptyStroke
}

func isTransparent(v string) bool {
	return v == transparent || v == "#0000"
}

// translate converts the value of an SVG presentation attribute to its VectorDrawable value.
func translate(name, val string) (string, error) {
	switch name {
	case "fill", "stroke":
		return SVGColor(val)
	case "stroke-width", "stroke-miterlimit":
		num, err := parseDimension(val, 0.0)
		if err != nil {
			return "", err
		}
		return dec(num).String(), nil
	case "opacity", "fill-opacity", "stroke-opacity":
		scale := 1.0
		if strings.HasSuffix(val, "%") {
			val = val[:len(val)-1]
			scale = 100.0
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return "", fmt.Errorf("bad opacity: %v", err)
		}
		return dec(max(0.0, min(1.0, num/scale))).String(), nil
	case "stroke-linecap":
		switch val {
		case "butt", "round", "square":
			return val, nil
		}
		return "", fmt.Errorf("bad stroke-linecap: %s", val)
	case "stroke-linejoin":
		switch val {
		case "miter", "round", "bevel":
			return val, nil
		case "miter-clip", "arcs":
			return "miter", nil
		}
		return "", fmt.Errorf("bad stroke-linejoin: %s", val)
	case "fill-rule":
		switch val {
		case "nonzero":
			return "nonZero", nil
		case "evenodd":
			return "evenOdd", nil
		}
		return "", fmt.Errorf("bad fill-rule: %s", val)
	}
	return strings.TrimSuffix(val, "px"), nil
}

// declaration is a property of an inline style.
type declaration struct {
	name, val string
}

// parseInlineStyle returns the declarations of a style attribute in order.
func parseInlineStyle(s string) []declaration {
	decls := []declaration{}
	p := css.NewParser(parse.NewInputString(s), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		} else if gt != css.DeclarationGrammar {
			continue
		}

		sb := strings.Builder{}
		for _, v := range p.Values() {
			sb.Write(v.Data)
		}
		decls = append(decls, declaration{
			name: strings.ToLower(string(data)),
			val:  strings.TrimSpace(sb.String()),
		})
	}
	return decls
}
