package canvas

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
)

// Canvas accumulates SVG elements. Composers only append; nothing already
// written is ever rewritten. A Canvas is not safe for concurrent use; each
// render owns its own.
type Canvas struct {
	width, height float64
	defs          bytes.Buffer
	body          bytes.Buffer
	depth         int
}

// New returns an empty canvas of the given size.
func New(width, height float64) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) Width() float64  { return c.width }
func (c *Canvas) Height() float64 { return c.height }

func (c *Canvas) Rect(x, y, w, h float64, attrs ...Attr) {
	c.open("rect", []Attr{{"x", num(x)}, {"y", num(y)}, {"width", num(w)}, {"height", num(h)}}, attrs)
}

func (c *Canvas) Circle(cx, cy, r float64, attrs ...Attr) {
	c.open("circle", []Attr{{"cx", num(cx)}, {"cy", num(cy)}, {"r", num(r)}}, attrs)
}

func (c *Canvas) Ellipse(cx, cy, rx, ry float64, attrs ...Attr) {
	c.open("ellipse", []Attr{{"cx", num(cx)}, {"cy", num(cy)}, {"rx", num(rx)}, {"ry", num(ry)}}, attrs)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, attrs ...Attr) {
	c.open("line", []Attr{{"x1", num(x1)}, {"y1", num(y1)}, {"x2", num(x2)}, {"y2", num(y2)}}, attrs)
}

// Path draws an SVG path; d is written as given.
func (c *Canvas) Path(d string, attrs ...Attr) {
	c.open("path", []Attr{{"d", d}}, attrs)
}

// Text draws a text element. The content is XML-escaped.
func (c *Canvas) Text(x, y float64, s string, attrs ...Attr) {
	c.indent()
	c.body.WriteString("<text")
	writeAttrs(&c.body, []Attr{{"x", num(x)}, {"y", num(y)}})
	writeAttrs(&c.body, attrs)
	c.body.WriteByte('>')
	c.body.WriteString(EscapeXML(s))
	c.body.WriteString("</text>\n")
}

// Group wraps everything fn draws in a <g> element carrying attrs.
func (c *Canvas) Group(fn func(), attrs ...Attr) {
	c.indent()
	c.body.WriteString("<g")
	writeAttrs(&c.body, attrs)
	c.body.WriteString(">\n")
	c.depth++
	fn()
	c.depth--
	c.indent()
	c.body.WriteString("</g>\n")
}

// Bytes serializes the canvas into a complete SVG document.
func (c *Canvas) Bytes() []byte {
	var buf bytes.Buffer
	w, h := num(c.width), num(c.height)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n", w, h, w, h)
	if c.defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(c.defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	buf.Write(c.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (c *Canvas) open(tag string, geom, attrs []Attr) {
	c.indent()
	c.body.WriteByte('<')
	c.body.WriteString(tag)
	writeAttrs(&c.body, geom)
	writeAttrs(&c.body, attrs)
	c.body.WriteString("/>\n")
}

func (c *Canvas) indent() {
	for range c.depth + 1 {
		c.body.WriteString("  ")
	}
}

func writeAttrs(buf *bytes.Buffer, attrs []Attr) {
	for _, a := range attrs {
		if a.Name == "" {
			continue
		}
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, EscapeXML(a.Value))
	}
}

// EscapeXML escapes s for use in text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
