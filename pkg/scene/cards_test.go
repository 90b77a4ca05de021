package scene

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

func TestSnakeSingleRecentDay(t *testing.T) {
	d := profile.Data{Username: "ada", TotalCommits: profile.Known(5)}
	d.Activity = append(make([]profile.Day, 195), profile.Day{Count: 5})
	th := theme.Builtin().Lookup("Gaming")

	doc := render(t, Snake{}, d, "Gaming", 0)

	// day 195 sits in column 27, row 6
	x, y := 20+27*14, 55+6*14
	head := fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="12" fill="%s" rx="2"`, x, y, th.Title)
	if !strings.Contains(doc, head) {
		t.Errorf("head not drawn on the active day; want %s", head)
	}
	apple := fmt.Sprintf(`<circle cx="%d" cy="%d" r="4.8" fill="#ff5252"`, x+6, y+6)
	if !strings.Contains(doc, apple) {
		t.Errorf("hotspot not drawn on the active day; want %s", apple)
	}
	if !strings.Contains(doc, "SCORE: 5") {
		t.Error("missing score readout")
	}
}

func TestSnakeIsDeterministic(t *testing.T) {
	d := profile.Sample("ada")
	a := render(t, Snake{}, d, "Gaming", 1)
	b := render(t, Snake{}, d, "Gaming", 99)
	if a != b {
		t.Error("snake output depends on the random source")
	}
}

func TestSnakeUnknownScore(t *testing.T) {
	doc := render(t, Snake{}, profile.Data{}, "Gaming", 0)
	if !strings.Contains(doc, "SCORE: N/A") {
		t.Error("unknown commit total should read N/A")
	}
	// fallback run: 18 segments on an empty board, 196 tiles, the frame
	if n := elements(t, doc)["rect"]; n != 1+196+18+2 {
		t.Errorf("rects = %d, want %d", n, 1+196+18+2)
	}
}

func TestSnakeQuietShortHistory(t *testing.T) {
	d := profile.Data{Activity: make([]profile.Day, 3)}
	doc := render(t, Snake{}, d, "Gaming", 0)
	// three tiles, but the fallback snake still has all 18 segments
	if n := elements(t, doc)["rect"]; n != 1+3+18+2 {
		t.Errorf("rects = %d, want %d", n, 1+3+18+2)
	}
}

var percentText = regexp.MustCompile(`>(\d+\.\d)%<`)

func percentages(doc string) []float64 {
	var out []float64
	for _, m := range percentText.FindAllStringSubmatch(doc, -1) {
		v, _ := strconv.ParseFloat(m[1], 64)
		out = append(out, v)
	}
	return out
}

func TestLanguagesShares(t *testing.T) {
	d := profile.Data{TopLanguages: []profile.Language{{Name: "Go", Weight: 3}, {Name: "Rust", Weight: 1}}}
	doc := render(t, Languages{}, d, "Default", 0)

	got := percentages(doc)
	if fmt.Sprint(got) != "[75 25]" {
		t.Errorf("percentages = %v, want [75 25]", got)
	}
	if !strings.Contains(doc, ">75.0%<") || !strings.Contains(doc, ">25.0%<") {
		t.Error("percentages not formatted with one decimal")
	}
}

func TestLanguagesSumTo100(t *testing.T) {
	d := profile.Data{TopLanguages: []profile.Language{
		{Name: "Go", Weight: 7}, {Name: "Python", Weight: 5}, {Name: "C", Weight: 3}, {Name: "Zig", Weight: 1}, {Name: "Lua", Weight: 1},
	}}
	var sum float64
	for _, s := range Shares(d) {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("shares sum to %v, want 100", sum)
	}
}

func TestLanguagesNegativeWeight(t *testing.T) {
	d := profile.Data{TopLanguages: []profile.Language{{Name: "Go", Weight: 3}, {Name: "Rust", Weight: -2}}}
	doc := render(t, Languages{}, d, "Default", 0)
	if got := percentages(doc); fmt.Sprint(got) != "[100 0]" {
		t.Errorf("percentages = %v, want [100 0]", got)
	}
	if strings.Contains(doc, `width="-`) {
		t.Errorf("negative bar width:\n%s", doc)
	}
}

func TestLanguagesZeroTotal(t *testing.T) {
	d := profile.Data{TopLanguages: []profile.Language{{Name: "Go", Weight: 0}, {Name: "Rust", Weight: 0}}}
	doc := render(t, Languages{}, d, "Default", 0)
	if got := percentages(doc); fmt.Sprint(got) != "[0 0]" {
		t.Errorf("percentages = %v, want [0 0]", got)
	}
}

func TestLanguagesEmpty(t *testing.T) {
	doc := render(t, Languages{}, profile.Data{}, "Default", 0)
	if !strings.Contains(doc, ">"+NoData+"<") || !strings.Contains(doc, ">0.0%<") {
		t.Errorf("empty list should render a single No Data row:\n%s", doc)
	}
}

func TestLanguagesHeight(t *testing.T) {
	tests := []struct {
		langs int
		want  float64
	}{
		{0, 40 + 35 + 10},
		{1, 40 + 35 + 10},
		{2, 40 + 2*35 + 10},
		{5, 40 + 5*35 + 10},
	}
	for _, tt := range tests {
		d := profile.Data{}
		for i := range tt.langs {
			d.TopLanguages = append(d.TopLanguages, profile.Language{Name: fmt.Sprint(i), Weight: 1})
		}
		if _, h := (Languages{}).Size(d); h != tt.want {
			t.Errorf("%d languages: height = %v, want %v", tt.langs, h, tt.want)
		}
	}
}

// statLines maps each visible label to the y of its text element.
func statLines(doc string) map[string]string {
	re := regexp.MustCompile(`<text x="48" y="([\d.]+)"[^>]*>([^<]+)</text>`)
	out := map[string]string{}
	for _, m := range re.FindAllStringSubmatch(doc, -1) {
		out[m[2]] = m[1]
	}
	return out
}

func TestStatsHideRowKeepsOthersInPlace(t *testing.T) {
	d := profile.Sample("ada")
	all := statLines(render(t, Stats{}, d, "Default", 0))
	if len(all) != 4 {
		t.Fatalf("visible rows = %v, want 4", all)
	}

	hides := []struct {
		stats Stats
		row   StatRow
	}{
		{Stats{HideStars: true}, RowStars},
		{Stats{HideCommits: true}, RowCommits},
		{Stats{HideRepos: true}, RowRepos},
		{Stats{HideFollowers: true}, RowFollowers},
	}
	for _, h := range hides {
		got := statLines(render(t, h.stats, d, "Default", 0))
		if _, ok := got[h.row.Label()]; ok {
			t.Errorf("%s still drawn when hidden", h.row.Label())
		}
		if len(got) != 3 {
			t.Errorf("hiding %s left %d rows, want 3", h.row.Label(), len(got))
		}
		for label, y := range got {
			if all[label] != y {
				t.Errorf("hiding %s moved %s from y=%s to y=%s", h.row.Label(), label, all[label], y)
			}
		}
	}
}

func TestStatsValues(t *testing.T) {
	d := profile.Sample("ada")
	d.TotalCommits = profile.Unknown
	doc := render(t, Stats{}, d, "Default", 0)
	for _, want := range []string{">120<", ">N/A<", ">25<", ">85<", "ada&#39;s GitHub Stats"} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %s", want)
		}
	}
}
