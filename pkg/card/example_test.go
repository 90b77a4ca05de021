package card_test

import (
	"fmt"
	"strings"

	"github.com/gitcanvas/gitcanvas/pkg/card"
	"github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/profile"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

func ExampleRenderer_RenderLanguages() {
	r := card.New()
	d := profile.Data{
		Username: "ada",
		TopLanguages: []profile.Language{
			{Name: "Go", Weight: 3},
			{Name: "Rust", Weight: 1},
		},
	}

	svg, err := r.RenderLanguages(d, card.Options{Theme: "Light"})
	if err != nil {
		panic(err)
	}
	for _, pct := range []string{"75.0%", "25.0%"} {
		fmt.Println(pct, strings.Contains(string(svg), pct))
	}
	// Output:
	// 75.0% true
	// 25.0% true
}

func ExampleRenderer_RenderStats() {
	r := card.New()
	svg, err := r.RenderStats(profile.Sample("ada"), card.StatsOptions{
		Options:   card.Options{Theme: "Default", Overrides: theme.Overrides{Background: "101010"}},
		HideRepos: true,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Contains(string(svg), `fill="#101010"`))
	fmt.Println(strings.Contains(string(svg), "Public Repos:"))
	// Output:
	// true
	// false
}

func ExampleRenderError() {
	svg := card.RenderError(errors.ErrCodeUserNotFound)
	fmt.Println(strings.Contains(string(svg), "GitHub User Not Found"))
	// Output: true
}
