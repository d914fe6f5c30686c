package svg2vd

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/xml"
)

// ErrUnsupported is returned when a document has error diagnostics and cannot be converted faithfully.
var ErrUnsupported = errors.New("unsupported SVG features")

// Options are the conversion options.
type Options struct {
	Scale     float64 // factor between the SVG size and the dp size
	Transform Matrix  // applied in user space before the view box translation
	Minify    bool
}

// DefaultOptions are the default conversion options.
var DefaultOptions = Options{
	Scale:     1.0,
	Transform: Identity,
}

// normalize returns a copy of the options with zero values replaced by their defaults. A nil receiver gives DefaultOptions.
func (opts *Options) normalize() *Options {
	o := DefaultOptions
	if opts != nil {
		o = *opts
	}
	if o.Scale == 0.0 {
		o.Scale = 1.0
	}
	if o.Transform == (Matrix{}) {
		o.Transform = Identity
	}
	return &o
}

const vectorHeader = `<vector xmlns:android="http://schemas.android.com/apk/res/android"
        android:width="%ddp"
        android:height="%ddp"
        android:viewportWidth="%v"
        android:viewportHeight="%v">
`

// WriteVectorDrawable writes the drawable leaves of the tree as a VectorDrawable document. The tree is expected to be normalized.
func (t *Tree) WriteVectorDrawable(w io.Writer, opts *Options) error {
	opts = opts.normalize()

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, vectorHeader, int(t.Width*opts.Scale), int(t.Height*opts.Scale), dec(t.ViewBox.W), dec(t.ViewBox.H))
	for _, l := range t.Leaves() {
		if !l.Drawable() {
			continue
		}
		writePath(buf, l, opts.Minify)
	}
	buf.WriteString("</vector>\n")

	if !opts.Minify {
		_, err := w.Write(buf.Bytes())
		return err
	}
	m := minify.New()
	m.AddFunc("text/xml", xml.Minify)
	return m.Minify("text/xml", w, buf)
}

func writePath(w *bytes.Buffer, l *Leaf, minified bool) {
	w.WriteString("    <path\n")
	if l.ID != "" {
		fmt.Fprintf(w, "        %s=\"%s\"\n", attrName, html.EscapeString(l.ID))
	}
	if _, ok := l.Style[attrFillColor]; !ok {
		fmt.Fprintf(w, "        %s=\"#FF000000\"\n", attrFillColor)
	}
	fmt.Fprintf(w, "        %s=\"", attrPathData)
	w.Write(l.Path.AppendTo(nil, minified))
	w.WriteByte('"')
	for _, attr := range attrOrder {
		if v, ok := l.Style[attr]; ok {
			fmt.Fprintf(w, "\n        %s=\"%s\"", attr, html.EscapeString(v))
		}
	}
	w.WriteString("/>\n")
}

// Convert reads an SVG document from r and writes it to w as a VectorDrawable. The parsed tree is returned also when conversion fails so that its diagnostics can be reported. Nothing is written when the tree has error diagnostics, in which case ErrUnsupported is returned.
func Convert(w io.Writer, r io.Reader, opts *Options) (*Tree, error) {
	opts = opts.normalize()

	tree, err := ParseSVG(r)
	if err != nil {
		return nil, err
	} else if !tree.CanConvert() {
		return tree, ErrUnsupported
	}
	tree.Matrix = opts.Transform
	tree.Normalize()
	return tree, tree.WriteVectorDrawable(w, opts)
}
