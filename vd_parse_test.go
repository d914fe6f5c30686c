package svg2vd

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/test"
)

func TestParseVectorDrawable(t *testing.T) {
	vd, err := ParseVectorDrawable(strings.NewReader(`<?xml version="1.0" encoding="utf-8"?>
<vector xmlns:android="http://schemas.android.com/apk/res/android"
        android:width="24dp"
        android:height="12.5dip"
        android:viewportWidth="48"
        android:viewportHeight="25"
        android:alpha="0.8">
    <path
        android:name="a"
        android:pathData="M0,0h10v10z"
        android:fillColor="#8F00"
        android:fillAlpha="0.5"
        android:strokeColor="#0000FF"
        android:strokeWidth="2"
        android:strokeLinecap="square"
        android:strokeLinejoin="bevel"
        android:strokeMiterLimit="8"
        android:fillType="evenOdd"
        android:trimPathStart="0.1"
        android:trimPathEnd="0.9"
        android:trimPathOffset="0.2"/>
    <clip-path android:name="c" android:pathData="M0,0h1"/>
    <path android:pathData="M1,1l2,2"/>
</vector>`))
	test.Error(t, err)
	test.Float(t, vd.Width, 24.0)
	test.Float(t, vd.Height, 12.5)
	test.Float(t, vd.ViewportWidth, 48.0)
	test.Float(t, vd.ViewportHeight, 25.0)
	test.Float(t, vd.Alpha, 0.8)
	test.T(t, len(vd.Paths), 3)

	a := vd.Paths[0]
	test.String(t, a.Name, "a")
	test.String(t, a.Path.String(), "M0,0h10v10z")
	test.T(t, a.FillColor, color.NRGBA{255, 0, 0, 0x44})
	test.T(t, a.StrokeColor, color.NRGBA{0, 0, 255, 255})
	test.Float(t, a.StrokeWidth, 2.0)
	test.T(t, a.LineCap, SquareCap)
	test.T(t, a.LineJoin, BevelJoin)
	test.Float(t, a.MiterLimit, 8.0)
	test.T(t, a.FillType, EvenOdd)
	test.Float(t, a.TrimStart, 0.1)
	test.Float(t, a.TrimEnd, 0.9)
	test.Float(t, a.TrimOffset, 0.2)
	test.That(t, !a.Clip)

	c := vd.Paths[1]
	test.String(t, c.Name, "c")
	test.That(t, c.Clip)

	d := vd.Paths[2]
	test.T(t, d.FillColor, color.NRGBA{0, 0, 0, 0})
	test.T(t, d.LineCap, ButtCap)
	test.T(t, d.LineJoin, MiterJoin)
	test.Float(t, d.MiterLimit, 4.0)
	test.Float(t, d.TrimEnd, 1.0)
}

func TestParseVectorDrawableGroups(t *testing.T) {
	vd, err := ParseVectorDrawable(strings.NewReader(`<vector android:width="10dp" android:height="10dp" android:viewportWidth="10" android:viewportHeight="10">
    <group android:translateX="5" android:translateY="1">
        <group android:rotation="90" android:pivotX="1" android:pivotY="1">
            <path android:pathData="M1,1h2" android:strokeWidth="1"/>
        </group>
        <group android:scaleX="2" android:scaleY="2"/>
        <path android:pathData="M0,0h2" android:strokeWidth="1"/>
        <group android:scaleX="2" android:scaleY="2">
            <path android:pathData="M1,1h2" android:strokeWidth="1"/>
        </group>
    </group>
    <path android:pathData="M0,0h2"/>
</vector>`))
	test.Error(t, err)
	test.T(t, len(vd.Paths), 4)
	test.String(t, vd.Paths[0].Path.String(), "M6,2l0,2")
	test.String(t, vd.Paths[1].Path.String(), "M5,1h2")
	test.String(t, vd.Paths[2].Path.String(), "M7,3h4")
	test.Float(t, vd.Paths[2].StrokeWidth, 2.0)
	test.String(t, vd.Paths[3].Path.String(), "M0,0h2")
}

func TestParseVectorDrawableErrors(t *testing.T) {
	var tts = []struct {
		vd  string
		err string
	}{
		{`<svg/>`, "root element is <svg>, expected <vector>"},
		{`<vector android:width="wide"/>`, "bad android:width: wide"},
		{"<vector>\n<path android:pathData=\"M0,0L\"/></vector>", "bad path data: L takes a multiple of 2 values, got 0 in \"L\""},
		{"<vector>\n\n<path android:fillColor=\"red\"/></vector>", "bad android:fillColor: red"},
		{`<vector><path android:strokeLinecap="pointy"/></vector>`, "bad android:strokeLinecap: pointy"},
		{`<vector><group android:rotation="x"/></vector>`, "bad android:rotation: x"},
	}
	for _, tt := range tts {
		t.Run(tt.vd, func(t *testing.T) {
			_, err := ParseVectorDrawable(strings.NewReader(tt.vd))
			var perr *parse.Error
			if errors.As(err, &perr) {
				test.String(t, perr.Message, tt.err)
			} else {
				t.Fatalf("expected *parse.Error, got %v", err)
			}
		})
	}

	_, err := ParseVectorDrawable(strings.NewReader("<vector>\n\n<path android:fillColor=\"red\"/></vector>"))
	test.T(t, err.(*parse.Error).Line, 3)

	_, err = ParseVectorDrawable(strings.NewReader(``))
	test.That(t, err != nil)
}

func TestParseVectorDrawablePathDataError(t *testing.T) {
	_, err := ParseVectorDrawable(strings.NewReader("<vector>\n<path android:pathData=\"M0,0L\"/></vector>"))
	var arityErr *ArityError
	test.That(t, errors.As(err, &arityErr), "expected *ArityError, got", err)
	test.T(t, arityErr.Cmd, Command('L'))
	var perr *parse.Error
	test.That(t, errors.As(err, &perr))
	test.T(t, perr.Line, 2)

	_, err = ParseVectorDrawable(strings.NewReader(`<vector><path android:pathData="M0,0X1"/></vector>`))
	var tokErr *TokenizeError
	test.That(t, errors.As(err, &tokErr), "expected *TokenizeError, got", err)
}

func TestParseVectorDrawableErrorOrder(t *testing.T) {
	// several bad attributes always report the same one
	for i := 0; i < 20; i++ {
		_, err := ParseVectorDrawable(strings.NewReader(`<vector><path android:strokeWidth="x" android:strokeLinecap="pointy" android:fillColor="red"/></vector>`))
		var perr *parse.Error
		test.That(t, errors.As(err, &perr))
		test.String(t, perr.Message, "bad android:fillColor: red")

		_, err = ParseVectorDrawable(strings.NewReader(`<vector android:alpha="a" android:height="b" android:width="c"/>`))
		test.That(t, errors.As(err, &perr))
		test.String(t, perr.Message, "bad android:width: c")
	}
}

func TestParseVectorDrawableEntities(t *testing.T) {
	vd, err := ParseVectorDrawable(strings.NewReader(`<vector><path android:name="a&lt;b" android:pathData="M0,0&#10;h5" android:fillColor="&#35;ff0000"/></vector>`))
	test.Error(t, err)
	test.T(t, len(vd.Paths), 1)
	test.String(t, vd.Paths[0].Name, "a<b")
	test.String(t, vd.Paths[0].Path.String(), "M0,0h5")
	test.T(t, vd.Paths[0].FillColor, color.NRGBA{255, 0, 0, 255})
}

func TestVectorDrawableDump(t *testing.T) {
	vd := &VectorDrawable{
		Width:          24.0,
		Height:         24.0,
		ViewportWidth:  12.0,
		ViewportHeight: 12.0,
		Alpha:          1.0,
		Paths: []*VectorPath{
			{Name: "a", Path: MustParsePath("M0,0h1z"), FillColor: color.NRGBA{255, 0, 0, 255}, StrokeWidth: 1.5},
			{Name: "c", Path: MustParsePath("M0,0h1"), Clip: true},
		},
	}
	w := &bytes.Buffer{}
	vd.Dump(w)
	test.String(t, w.String(), `vector 24x24dp viewport=12x12 alpha=1
  path "a": 3 nodes bounds=[0; 0]--[1; 0] fill=#ffff0000 stroke=#00000000 width=1.5
  clip-path "c": 2 nodes bounds=[0; 0]--[1; 0] fill=#00000000 stroke=#00000000 width=0
`)
}

func TestParseSize(t *testing.T) {
	for _, tt := range []struct {
		v   string
		res float64
	}{{"24dp", 24.0}, {"24", 24.0}, {"1.5 sp", 1.5}, {"10PX", 10.0}, {"3in", 3.0}} {
		res, err := parseSize(tt.v)
		test.Error(t, err)
		test.Float(t, res, tt.res)
	}
}
