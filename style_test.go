package svg2vd

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTranslate(t *testing.T) {
	var tts = []struct {
		name, val string
		res       string
	}{
		{"fill", "none", "#00000000"},
		{"stroke", "blue", "#0000ff"},
		{"stroke-width", "2", "2"},
		{"stroke-width", "1.5px", "1.5"},
		{"stroke-width", "1in", "96"},
		{"stroke-miterlimit", "10", "10"},
		{"opacity", "0.5", "0.5"},
		{"fill-opacity", "50%", "0.5"},
		{"stroke-opacity", "2", "1"},
		{"stroke-opacity", "-1", "0"},
		{"stroke-linecap", "round", "round"},
		{"stroke-linejoin", "bevel", "bevel"},
		{"stroke-linejoin", "miter-clip", "miter"},
		{"fill-rule", "evenodd", "evenOdd"},
		{"fill-rule", "nonzero", "nonZero"},
		{"clip", "10px", "10"},
	}
	for _, tt := range tts {
		t.Run(tt.name+"="+tt.val, func(t *testing.T) {
			res, err := translate(tt.name, tt.val)
			test.Error(t, err)
			test.String(t, res, tt.res)
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	var tts = []struct {
		name, val string
	}{
		{"fill", "rgb(1,2)"},
		{"stroke-width", "thick"},
		{"stroke-width", "2furlong"},
		{"opacity", "half"},
		{"stroke-linecap", "pointy"},
		{"stroke-linejoin", "sharp"},
		{"fill-rule", "odd"},
	}
	for _, tt := range tts {
		t.Run(tt.name+"="+tt.val, func(t *testing.T) {
			_, err := translate(tt.name, tt.val)
			test.That(t, err != nil, "expected error")
		})
	}
}

func TestStyleVisible(t *testing.T) {
	var tts = []struct {
		name  string
		style Style
		res   bool
	}{
		{"default fill", Style{}, true},
		{"fill", Style{attrFillColor: "#ff0000"}, true},
		{"no fill", Style{attrFillColor: "#00000000"}, false},
		{"no fill short", Style{attrFillColor: "#0000"}, false},
		{"no fill stroke", Style{attrFillColor: "#00000000", attrStrokeColor: "#000000"}, true},
		{"no fill no stroke", Style{attrFillColor: "#00000000", attrStrokeColor: "#00000000"}, false},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, tt.style.Visible(), tt.res)
		})
	}
}

func TestStyleCopy(t *testing.T) {
	s := Style{attrFillColor: "#ff0000"}
	c := s.Copy()
	c[attrFillColor] = "#00ff00"
	test.String(t, s[attrFillColor], "#ff0000")
}

func TestParseInlineStyle(t *testing.T) {
	decls := parseInlineStyle("fill:red; STROKE-WIDTH:2px;display:none")
	test.T(t, decls, []declaration{
		{"fill", "red"},
		{"stroke-width", "2px"},
		{"display", "none"},
	})
	test.T(t, len(parseInlineStyle("")), 0)
}
