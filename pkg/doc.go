// Package pkg provides the core libraries for gitcanvas profile cards.
//
// # Overview
//
// gitcanvas turns a GitHub user's public numbers (stars, commits, repositories,
// followers, top languages and daily contribution counts) into themed SVG
// cards. The pkg directory is organized into three areas:
//
//  1. Rendering - themes, layout, scene composition and the SVG canvas
//  2. Data - the profile model and the GitHub client that fills it
//  3. Infrastructure - caching, HTTP plumbing, errors and observability
//
// # Architecture
//
// The typical data flow:
//
//	GitHub REST + contributions API
//	         ↓
//	    [github] → [profile].Data  (cached through [cache])
//	         ↓
//	    [card].Renderer
//	         ↓
//	 [theme] resolve + overrides → [scene] composer → [canvas] SVG bytes
//
// # Quick Start
//
//	import (
//	    "github.com/gitcanvas/gitcanvas/pkg/card"
//	    "github.com/gitcanvas/gitcanvas/pkg/github"
//	)
//
//	client := github.NewClient(token, nil, nil)
//	d, err := client.Fetch(ctx, "octocat")
//	if err != nil {
//	    svg := card.RenderErrorFor(err)
//	    ...
//	}
//	svg, err := card.New().RenderActivity(d, card.Options{Theme: "Gaming"})
//
// # Main Packages
//
// ## Rendering
//
// [card] - Entry point. Resolves the theme, seeds randomness, picks the
// composer for a card kind and returns the finished document. Also draws the
// fixed error card.
//
// [theme] - Theme registry with nine built-in themes and loading of extra
// definitions from TOML, YAML or JSON files. Per-request color overrides.
//
// [scene] - Composers for each card: stats, languages and the activity
// motifs (grid, snake, space, constellation, glass, marvel, cyberpunk,
// retro).
//
// [grid] - Contribution grid layout and the path synthesizer that turns
// active cells into the snake or Pac-Man route.
//
// [canvas] - Minimal SVG document builder with XML escaping.
//
// ## Data
//
// [profile] - The normalized profile consumed by every card, plus a sample
// profile for offline use.
//
// [github] - GitHub REST client (user, paginated repositories) and the public
// contributions API, with error classification into card error kinds.
//
// ## Infrastructure
//
// [cache] - Cache interface with file, Redis, MongoDB and null backends.
//
// [httputil] - JSON HTTP client with retries, Link pagination and a typed
// cache wrapper.
//
// [errors] - Structured error codes and input validation.
//
// [observability] - Render, cache and HTTP hooks with no-op and logging
// implementations.
//
// [buildinfo] - Version information stamped at build time.
package pkg
