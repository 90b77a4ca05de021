package card

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/observability"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/scene"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"stats", KindStats, false},
		{"Languages", KindLanguages, false},
		{" activity ", KindActivity, false},
		{"contributions", KindActivity, false},
		{"streak", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidCard) {
			t.Errorf("ParseKind(%q) code = %v, want INVALID_CARD", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderIsDeterministicForASeed(t *testing.T) {
	r := New()
	d := profile.Sample("ada")
	for _, name := range r.Themes.Names() {
		for _, kind := range Kinds {
			opts := StatsOptions{Options: Options{Theme: name, Seed: 42}}
			a, err := r.Render(kind, d, opts)
			if err != nil {
				t.Fatalf("%s/%s: %v", name, kind, err)
			}
			b, _ := r.Render(kind, d, opts)
			if !bytes.Equal(a, b) {
				t.Errorf("%s/%s: same inputs produced different documents", name, kind)
			}
		}
	}
}

func TestPathCardsIgnoreSeed(t *testing.T) {
	r := New()
	d := profile.Sample("ada")
	for _, tt := range []struct {
		kind  Kind
		theme string
	}{
		{KindActivity, "Gaming"},
		{KindActivity, "Glass"},
		{KindStats, "Default"},
		{KindLanguages, "Space"},
	} {
		a, _ := r.Render(tt.kind, d, StatsOptions{Options: Options{Theme: tt.theme, Seed: 1}})
		b, _ := r.Render(tt.kind, d, StatsOptions{Options: Options{Theme: tt.theme, Seed: 2}})
		if !bytes.Equal(a, b) {
			t.Errorf("%s/%s depends on the seed", tt.kind, tt.theme)
		}
	}
}

func TestZeroSeedUsesSeedSource(t *testing.T) {
	var calls int
	r := New(WithSeeds(func() uint64 { calls++; return 9 }))
	d := profile.Sample("ada")

	got, _ := r.RenderActivity(d, Options{Theme: "Space"})
	want, _ := r.RenderActivity(d, Options{Theme: "Space", Seed: 9})
	if !bytes.Equal(got, want) {
		t.Error("zero seed did not use the seed source")
	}
	if calls != 1 {
		t.Errorf("seed source called %d times, want 1", calls)
	}
}

func TestActivityUsesThemeMotif(t *testing.T) {
	r := New()
	d := profile.Sample("ada")
	tests := []struct {
		theme, marker string
	}{
		{"Gaming", "SCORE: 450"},
		{"gaming", "SCORE: 450"},
		{"Marvel", "SNAP!"},
		{"Glass", "Recent activity"},
		{"Retro", "Contribution Log"},
		{"Default", "ada&#39;s Contributions"},
		{"no-such-theme", "ada&#39;s Contributions"},
	}
	for _, tt := range tests {
		svg, err := r.RenderActivity(d, Options{Theme: tt.theme, Seed: 1})
		if err != nil {
			t.Fatalf("%s: %v", tt.theme, err)
		}
		if !strings.Contains(string(svg), tt.marker) {
			t.Errorf("%s: missing %q", tt.theme, tt.marker)
		}
	}
}

func TestCanvasSizes(t *testing.T) {
	r := New()
	d := profile.Sample("ada")
	tests := []struct {
		kind  Kind
		theme string
		w, h  int
	}{
		{KindStats, "Default", scene.StatsWidth, scene.StatsHeight},
		{KindLanguages, "Default", scene.LanguagesWidth, 40 + 3*35 + 10},
		{KindActivity, "Default", scene.DefaultWidth, scene.DefaultHeight},
		{KindActivity, "Gaming", 560, 180},
		{KindActivity, "Cyberpunk", 800, 400},
	}
	for _, tt := range tests {
		svg, _ := r.Render(tt.kind, d, StatsOptions{Options: Options{Theme: tt.theme, Seed: 1}})
		header := fmt.Sprintf(`width="%d" height="%d"`, tt.w, tt.h)
		if !strings.Contains(string(svg), header) {
			t.Errorf("%s/%s: want %s in %s", tt.kind, tt.theme, header, firstLine(svg))
		}
	}
}

func firstLine(b []byte) string {
	s, _, _ := strings.Cut(string(b), "\n")
	return s
}

func TestOverridesApplyToOneRender(t *testing.T) {
	r := New()
	d := profile.Sample("ada")

	svg, err := r.RenderStats(d, StatsOptions{Options: Options{
		Theme:     "Default",
		Overrides: theme.Overrides{Background: "123456", Title: "#abcdef"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`fill="#123456"`, `fill="#abcdef"`} {
		if !strings.Contains(string(svg), want) {
			t.Errorf("missing %s", want)
		}
	}

	plain, _ := r.RenderStats(d, StatsOptions{Options: Options{Theme: "Default"}})
	if strings.Contains(string(plain), "#123456") {
		t.Error("override leaked into a later render")
	}
}

func TestMalformedOverrideFails(t *testing.T) {
	r := New()
	svg, err := r.RenderLanguages(profile.Sample("ada"), Options{Overrides: theme.Overrides{Text: "blue"}})
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("err = %v, want INVALID_COLOR", err)
	}
	if svg != nil {
		t.Error("failed render returned a document")
	}
}

func TestStatsHideFlags(t *testing.T) {
	r := New()
	svg, _ := r.RenderStats(profile.Sample("ada"), StatsOptions{HideCommits: true, HideFollowers: true})
	s := string(svg)
	for _, label := range []string{"Total Commits:", "Followers:"} {
		if strings.Contains(s, label) {
			t.Errorf("%s drawn while hidden", label)
		}
	}
	for _, label := range []string{"Total Stars:", "Public Repos:"} {
		if !strings.Contains(s, label) {
			t.Errorf("%s missing", label)
		}
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := New().Render("streak", profile.Data{}, StatsOptions{})
	if !errors.Is(err, errors.ErrCodeInvalidCard) {
		t.Errorf("err = %v, want INVALID_CARD", err)
	}
}

type recordingHooks struct {
	mu     sync.Mutex
	starts []string
	sizes  []int
	errs   []error
}

func (h *recordingHooks) OnRenderStart(card, theme string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, card+"/"+theme)
}

func (h *recordingHooks) OnRenderComplete(_, _ string, size int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sizes = append(h.sizes, size)
	h.errs = append(h.errs, err)
}

func TestRenderHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetRenderHooks(h)
	defer observability.Reset()

	r := New()
	svg, _ := r.RenderActivity(profile.Sample("ada"), Options{Theme: "Space", Seed: 3})
	_, err := r.RenderActivity(profile.Sample("ada"), Options{Overrides: theme.Overrides{Border: "#12"}})

	if fmt.Sprint(h.starts) != "[activity/Space activity/]" {
		t.Errorf("starts = %v", h.starts)
	}
	if len(h.sizes) != 2 || h.sizes[0] != len(svg) || h.sizes[1] != 0 {
		t.Errorf("sizes = %v, want [%d 0]", h.sizes, len(svg))
	}
	if h.errs[0] != nil || h.errs[1] != err {
		t.Errorf("errs = %v", h.errs)
	}
}

func TestConcurrentRenders(t *testing.T) {
	r := New()
	d := profile.Sample("ada")
	want, _ := r.RenderActivity(d, Options{Theme: "Constellation", Seed: 5})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.RenderActivity(d, Options{Theme: "Constellation", Seed: 5})
			if err != nil || !bytes.Equal(got, want) {
				t.Error("concurrent render diverged")
			}
		}()
	}
	wg.Wait()
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		kind errors.Code
		want string
	}{
		{errors.ErrCodeUserNotFound, "GitHub User Not Found"},
		{errors.ErrCodeRateLimited, "GitHub API Rate Limited"},
		{errors.ErrCodeUpstream, "GitHub API Error"},
		{errors.ErrCodeUnknown, "Something went wrong"},
		{errors.ErrCodeInvalidColor, "Something went wrong"},
	}
	for _, tt := range tests {
		svg := string(RenderError(tt.kind))
		if !strings.Contains(svg, ">"+tt.want+"<") {
			t.Errorf("RenderError(%s) missing %q", tt.kind, tt.want)
		}
		if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="450" height="120"`) {
			t.Errorf("RenderError(%s) header = %s", tt.kind, firstLine([]byte(svg)))
		}
	}
}

func TestRenderErrorFor(t *testing.T) {
	err := fmt.Errorf("fetch profile: %w", errors.New(errors.ErrCodeRateLimited, "quota exhausted"))
	if !bytes.Equal(RenderErrorFor(err), RenderError(errors.ErrCodeRateLimited)) {
		t.Error("wrapped rate limit not classified")
	}
	if !bytes.Equal(RenderErrorFor(fmt.Errorf("boom")), RenderError(errors.ErrCodeUnknown)) {
		t.Error("plain error should render as unknown")
	}
}
