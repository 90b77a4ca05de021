package canvas

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{12.5, "12.5"},
		{1.0 / 3, "0.33"},
		{-0.001, "0"},
		{-4.25, "-4.25"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a<b", "a&lt;b"},
		{"Tom & Jerry", "Tom &amp; Jerry"},
		{`"quoted"`, "&#34;quoted&#34;"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanvasIsWellFormed(t *testing.T) {
	c := New(200, 100)
	c.LinearGradient("bg", Stop{0, "#000000", 0}, Stop{1, "#ffffff", 0.5})
	c.GlowFilter("glow", 3)
	c.Rect(0, 0, 200, 100, FillURL("bg"))
	c.Group(func() {
		c.Circle(10, 10, 4, Fill("#ff0000"), FilterURL("glow"))
		c.Ellipse(20, 20, 5, 3, Fill("#00ff00"))
	}, Opacity(0.5))
	c.Line(0, 0, 200, 100, Stroke("#ffffff"), Dash("4 2"))
	c.Path("M 0 0 L 10 10", Stroke("#ffffff"))
	c.Text(5, 95, "<user> & co", Fill("#ffffff"))

	dec := xml.NewDecoder(strings.NewReader(string(c.Bytes())))
	var elems []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, string(c.Bytes()))
		}
		if se, ok := tok.(xml.StartElement); ok {
			elems = append(elems, se.Name.Local)
		}
	}

	want := []string{"svg", "defs", "linearGradient", "stop", "stop", "filter", "feGaussianBlur",
		"feMerge", "feMergeNode", "feMergeNode", "rect", "g", "circle", "ellipse", "line", "path", "text"}
	if fmt.Sprint(elems) != fmt.Sprint(want) {
		t.Errorf("elements = %v, want %v", elems, want)
	}
}

func TestRadialGradientStops(t *testing.T) {
	c := New(10, 10)
	c.RadialGradient("halo", Stop{0, "#ffffff", 0.45}, Stop{1, "#ffffff", 0})
	got := string(c.Bytes())
	for _, want := range []string{
		`<radialGradient id="halo" cx="50%" cy="50%" r="50%">`,
		`<stop offset="0%" stop-color="#ffffff" stop-opacity="0.45"/>`,
		`<stop offset="100%" stop-color="#ffffff"/>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in:\n%s", want, got)
		}
	}
}

func TestCanvasOmitsEmptyDefs(t *testing.T) {
	c := New(10, 10)
	c.Rect(0, 0, 10, 10)
	if strings.Contains(string(c.Bytes()), "<defs>") {
		t.Error("canvas without definitions should not emit <defs>")
	}
}

func TestCanvasHeader(t *testing.T) {
	c := New(500, 150)
	got := string(c.Bytes())
	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" width="500" height="150" viewBox="0 0 500 150">`) {
		t.Errorf("unexpected header: %s", got)
	}
	if c.Width() != 500 || c.Height() != 150 {
		t.Errorf("size = %vx%v, want 500x150", c.Width(), c.Height())
	}
}

func TestAttrValuesAreEscaped(t *testing.T) {
	c := New(10, 10)
	c.Text(0, 0, "x", FontFamily(`Segoe "UI"`))
	if !strings.Contains(string(c.Bytes()), `font-family="Segoe &#34;UI&#34;"`) {
		t.Errorf("attribute not escaped: %s", string(c.Bytes()))
	}
}

func TestEmptyAttrNameSkipped(t *testing.T) {
	c := New(10, 10)
	c.Rect(0, 0, 1, 1, Attr{}, Fill("#000000"))
	if !strings.Contains(string(c.Bytes()), `<rect x="0" y="0" width="1" height="1" fill="#000000"/>`) {
		t.Errorf("unexpected rect: %s", string(c.Bytes()))
	}
}

func ExampleCanvas() {
	c := New(40, 20)
	c.Rect(0.5, 0.5, 39, 19, Fill("#0d1117"), Radius(4.5))
	c.Text(4, 14, "Go", With(Font("Segoe UI", 12), []Attr{Fill("#58a6ff")})...)
	fmt.Printf("%s", c.Bytes())
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="40" height="20" viewBox="0 0 40 20">
	//   <rect x="0.5" y="0.5" width="39" height="19" fill="#0d1117" rx="4.5"/>
	//   <text x="4" y="14" font-family="Segoe UI" font-size="12" fill="#58a6ff">Go</text>
	// </svg>
}
