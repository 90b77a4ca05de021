package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

// DefaultName is the theme every unknown or empty name falls back to.
const DefaultName = "Default"

// Theme is a finalized set of style slots. A Theme returned by a [Registry]
// has every slot populated.
type Theme struct {
	Name          string  `toml:"name" yaml:"name" json:"name"`
	Background    string  `toml:"bg_color" yaml:"bg_color" json:"bg_color"`
	Title         string  `toml:"title_color" yaml:"title_color" json:"title_color"`
	Text          string  `toml:"text_color" yaml:"text_color" json:"text_color"`
	Border        string  `toml:"border_color" yaml:"border_color" json:"border_color"`
	Icon          string  `toml:"icon_color" yaml:"icon_color" json:"icon_color"`
	FontFamily    string  `toml:"font_family" yaml:"font_family" json:"font_family"`
	TitleFontSize float64 `toml:"title_font_size" yaml:"title_font_size" json:"title_font_size"`
	TextFontSize  float64 `toml:"text_font_size" yaml:"text_font_size" json:"text_font_size"`
}

// Overrides holds raw per-request color values. Empty fields leave the
// named theme's slot untouched.
type Overrides struct {
	Background string
	Title      string
	Text       string
	Border     string
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool { return o == Overrides{} }

// NormalizeColor converts a raw color value to "#rrggbb" form.
// A missing "#" is prefixed; an already prefixed value passes through
// unchanged. An empty value returns "" with no error.
func NormalizeColor(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	if len(raw) != 7 {
		return "", errors.New(errors.ErrCodeInvalidColor, "invalid color %q: want 6 hex digits", raw)
	}
	if _, err := colorful.Hex(raw); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", raw)
	}
	return raw, nil
}

// Apply returns a copy of t with the overrides merged in.
func (t Theme) Apply(o Overrides) (Theme, error) {
	if o.IsZero() {
		return t, nil
	}
	slots := []struct {
		raw string
		dst *string
	}{
		{o.Background, &t.Background},
		{o.Title, &t.Title},
		{o.Text, &t.Text},
		{o.Border, &t.Border},
	}
	for _, s := range slots {
		c, err := NormalizeColor(s.raw)
		if err != nil {
			return Theme{}, err
		}
		if c != "" {
			*s.dst = c
		}
	}
	return t, nil
}

// inherit fills every empty slot of t from base.
func (t Theme) inherit(base Theme) Theme {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&t.Background, base.Background)
	fill(&t.Title, base.Title)
	fill(&t.Text, base.Text)
	fill(&t.Border, base.Border)
	fill(&t.Icon, base.Icon)
	fill(&t.FontFamily, base.FontFamily)
	if t.TitleFontSize <= 0 {
		t.TitleFontSize = base.TitleFontSize
	}
	if t.TextFontSize <= 0 {
		t.TextFontSize = base.TextFontSize
	}
	return t
}

// complete reports whether every slot is populated.
func (t Theme) complete() bool {
	for _, s := range []string{t.Background, t.Title, t.Text, t.Border, t.Icon, t.FontFamily} {
		if s == "" {
			return false
		}
	}
	return t.TitleFontSize > 0 && t.TextFontSize > 0
}

// validate checks that every color slot of a definition is a valid color.
func (t Theme) validate() error {
	for _, c := range []string{t.Background, t.Title, t.Text, t.Border, t.Icon} {
		if c == "" {
			continue
		}
		if _, err := NormalizeColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %q", t.Name)
		}
	}
	return nil
}

// key is the case-normalized registry key for a theme name.
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
