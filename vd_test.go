package svg2vd

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

const boxSVG = `<svg width="24" height="24" viewBox="0 0 24 24">
	<path id="box" d="M0,0h10v10z" fill="#ff0000" stroke="#000" stroke-width="2"/>
	<path d="M0.5,0.5h10"/>
	<path d="M0,0h1" fill="none"/>
</svg>`

func TestConvert(t *testing.T) {
	w := &bytes.Buffer{}
	tree, err := Convert(w, strings.NewReader(boxSVG), nil)
	test.Error(t, err)
	test.T(t, len(tree.Diagnostics), 0)
	test.String(t, w.String(), `<vector xmlns:android="http://schemas.android.com/apk/res/android"
        android:width="24dp"
        android:height="24dp"
        android:viewportWidth="24"
        android:viewportHeight="24">
    <path
        android:name="box"
        android:pathData="M0,0h10v10z"
        android:fillColor="#ff0000"
        android:strokeColor="#000"
        android:strokeWidth="2"/>
    <path
        android:fillColor="#FF000000"
        android:pathData="M0.5,0.5h10"/>
</vector>
`)
}

func TestConvertOptions(t *testing.T) {
	w := &bytes.Buffer{}
	opts := &Options{
		Scale:     2.5,
		Transform: Identity.Translate(1.0, 1.0),
	}
	_, err := Convert(w, strings.NewReader(boxSVG), opts)
	test.Error(t, err)
	test.That(t, strings.Contains(w.String(), `android:width="60dp"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:viewportWidth="24"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:pathData="M1,1h10v10z"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:pathData="M1.5,1.5h10"`), w.String())
}

func TestConvertOptionsUnchanged(t *testing.T) {
	opts := &Options{}
	_, err := Convert(&bytes.Buffer{}, strings.NewReader(boxSVG), opts)
	test.Error(t, err)
	test.T(t, *opts, Options{})

	tree := mustParseSVG(t, boxSVG)
	tree.Normalize()
	test.Error(t, tree.WriteVectorDrawable(&bytes.Buffer{}, opts))
	test.T(t, *opts, Options{})
}

func TestConvertMinify(t *testing.T) {
	w := &bytes.Buffer{}
	_, err := Convert(w, strings.NewReader(boxSVG), &Options{Minify: true})
	test.Error(t, err)
	test.That(t, strings.Contains(w.String(), `android:pathData="M.5,.5h10"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:pathData="M0,0h10v10z"`), w.String())
	test.That(t, !strings.Contains(w.String(), "\n        "), w.String())
}

func TestConvertUnsupported(t *testing.T) {
	w := &bytes.Buffer{}
	tree, err := Convert(w, strings.NewReader(`<svg width="10" height="10"><text>hi</text><path d="M0,0h1"/></svg>`), nil)
	test.That(t, errors.Is(err, ErrUnsupported), "expected ErrUnsupported, got", err)
	test.That(t, tree != nil)
	test.T(t, w.Len(), 0)
	test.String(t, tree.ErrorLog("text.svg"), "In text.svg:\nError@ line 1 <text> is not supported\n")
}

func TestConvertNotSVG(t *testing.T) {
	tree, err := Convert(&bytes.Buffer{}, strings.NewReader(`<html/>`), nil)
	test.That(t, errors.Is(err, ErrNotSVG))
	test.That(t, tree == nil)
}

func TestWriteVectorDrawableEscape(t *testing.T) {
	tree := newTestTree(&Leaf{ID: `a"b`, Path: MustParsePath("M0,0h1"), Style: Style{attrFillColor: "#ff0000"}})
	tree.ViewBox = ViewBox{0.0, 0.0, 100.0, 50.0}
	w := &bytes.Buffer{}
	test.Error(t, tree.WriteVectorDrawable(w, nil))
	test.That(t, strings.Contains(w.String(), `android:name="a&#34;b"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:viewportHeight="50"`), w.String())
}

func TestConvertEntities(t *testing.T) {
	w := &bytes.Buffer{}
	_, err := Convert(w, strings.NewReader(`<svg width="10" height="10"><path d="M0,0&#10;h5" id="a&amp;b"/></svg>`), nil)
	test.Error(t, err)
	test.That(t, strings.Contains(w.String(), `android:name="a&amp;b"`), w.String())
	test.That(t, strings.Contains(w.String(), `android:pathData="M0,0h5"`), w.String())

	vd, err := ParseVectorDrawable(w)
	test.Error(t, err)
	test.T(t, len(vd.Paths), 1)
	test.String(t, vd.Paths[0].Name, "a&b")
}

func TestConvertRoundTrip(t *testing.T) {
	w := &bytes.Buffer{}
	_, err := Convert(w, strings.NewReader(`<svg width="20" height="10">
<g transform="rotate(90 5 5)"><rect id="r" width="4" height="2" fill="red" fill-opacity="0.5" stroke="blue" stroke-opacity="0.5" stroke-linejoin="round"/></g>
</svg>`), nil)
	test.Error(t, err)

	vd, err := ParseVectorDrawable(w)
	test.Error(t, err)
	test.Float(t, vd.Width, 20.0)
	test.Float(t, vd.ViewportHeight, 10.0)
	test.T(t, len(vd.Paths), 1)
	p := vd.Paths[0]
	test.String(t, p.Name, "r")
	test.String(t, p.Path.String(), "M10,0l0,4l-2,0l0,-4z")
	test.T(t, p.LineJoin, RoundJoin)
	test.T(t, p.FillColor, color.NRGBA{255, 0, 0, 128})
	test.T(t, p.StrokeColor, color.NRGBA{0, 0, 255, 128})
}
