package canvas

// Attr is a single SVG attribute. Values are escaped on write.
type Attr struct {
	Name, Value string
}

func Fill(color string) Attr        { return Attr{"fill", color} }
func Stroke(color string) Attr      { return Attr{"stroke", color} }
func StrokeWidth(w float64) Attr    { return Attr{"stroke-width", num(w)} }
func Opacity(o float64) Attr        { return Attr{"opacity", num(o)} }
func FillOpacity(o float64) Attr    { return Attr{"fill-opacity", num(o)} }
func StrokeOpacity(o float64) Attr  { return Attr{"stroke-opacity", num(o)} }
func Radius(r float64) Attr         { return Attr{"rx", num(r)} }
func FontFamily(family string) Attr { return Attr{"font-family", family} }
func FontSize(size float64) Attr    { return Attr{"font-size", num(size)} }
func FontWeight(weight string) Attr { return Attr{"font-weight", weight} }
func Anchor(anchor string) Attr     { return Attr{"text-anchor", anchor} }
func Dash(pattern string) Attr      { return Attr{"stroke-dasharray", pattern} }
func LineCap(style string) Attr     { return Attr{"stroke-linecap", style} }
func Class(name string) Attr        { return Attr{"class", name} }
func FillURL(id string) Attr        { return Attr{"fill", "url(#" + id + ")"} }
func FilterURL(id string) Attr      { return Attr{"filter", "url(#" + id + ")"} }

// Font returns the family and size attributes for text in one call.
func Font(family string, size float64) []Attr {
	return []Attr{FontFamily(family), FontSize(size)}
}

// With concatenates attribute lists, for combining [Font] with single
// attributes at a call site.
func With(groups ...[]Attr) []Attr {
	var out []Attr
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
