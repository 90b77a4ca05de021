package canvas

import (
	"bytes"
	"fmt"
)

// Stop is a gradient color stop. Offset is a fraction in [0, 1].
type Stop struct {
	Offset  float64
	Color   string
	Opacity float64 // 0 means fully opaque
}

// LinearGradient defines a gradient running from the top-left to the
// bottom-right corner. Reference it with [FillURL].
func (c *Canvas) LinearGradient(id string, stops ...Stop) {
	fmt.Fprintf(&c.defs, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+"\n", EscapeXML(id))
	writeStops(&c.defs, stops)
	c.defs.WriteString("    </linearGradient>\n")
}

// RadialGradient defines a centered radial gradient.
func (c *Canvas) RadialGradient(id string, stops ...Stop) {
	fmt.Fprintf(&c.defs, `    <radialGradient id="%s" cx="50%%" cy="50%%" r="50%%">`+"\n", EscapeXML(id))
	writeStops(&c.defs, stops)
	c.defs.WriteString("    </radialGradient>\n")
}

func writeStops(buf *bytes.Buffer, stops []Stop) {
	for _, s := range stops {
		fmt.Fprintf(buf, `      <stop offset="%s%%" stop-color="%s"`, num(s.Offset*100), EscapeXML(s.Color))
		if s.Opacity > 0 {
			fmt.Fprintf(buf, ` stop-opacity="%s"`, num(s.Opacity))
		}
		buf.WriteString("/>\n")
	}
}

// GlowFilter defines a filter that draws a blurred copy beneath the source.
func (c *Canvas) GlowFilter(id string, stdDev float64) {
	fmt.Fprintf(&c.defs, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", EscapeXML(id))
	fmt.Fprintf(&c.defs, `      <feGaussianBlur stdDeviation="%s" result="blur"/>`+"\n", num(stdDev))
	c.defs.WriteString("      <feMerge><feMergeNode in=\"blur\"/><feMergeNode in=\"SourceGraphic\"/></feMerge>\n")
	c.defs.WriteString("    </filter>\n")
}

// FrostFilter defines the frosted-glass filter: a blur followed by a color
// matrix that thins its alpha.
func (c *Canvas) FrostFilter(id string, stdDev float64) {
	fmt.Fprintf(&c.defs, `    <filter id="%s" x="-20%%" y="-20%%" width="140%%" height="140%%">`+"\n", EscapeXML(id))
	fmt.Fprintf(&c.defs, `      <feGaussianBlur in="SourceGraphic" stdDeviation="%s" result="blur"/>`+"\n", num(stdDev))
	c.defs.WriteString(`      <feColorMatrix in="blur" type="matrix" values="1 0 0 0 0  0 1 0 0 0  0 0 1 0 0  0 0 0 0.75 0"/>` + "\n")
	c.defs.WriteString("    </filter>\n")
}
