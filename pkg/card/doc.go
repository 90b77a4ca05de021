// Package card assembles the three gitcanvas badges: stats, top languages
// and contribution activity.
//
// A [Renderer] resolves the requested theme, merges color overrides, sizes
// the canvas for the chosen [scene.Composer], composes and serializes the
// document. Renders are pure functions of their inputs plus a seed, so the
// same profile, theme, overrides and seed always produce the same bytes.
//
//	r := card.New(card.WithLogger(logger))
//	svg, err := r.RenderActivity(data, card.Options{Theme: "Gaming"})
//
// When the profile cannot be fetched the caller draws [RenderError]
// instead; the renderer itself never produces upstream errors.
package card
