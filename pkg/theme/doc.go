// Package theme resolves named card themes and per-request color overrides.
//
// # Registry
//
// A [Registry] is built once at startup, either from the embedded theme set
// ([Builtin]) or from the embedded set plus a directory of definition files
// ([Load]). It is never mutated afterwards, so concurrent renders can read it
// without locking.
//
// # Resolution
//
// [Registry.Resolve] looks a name up case-insensitively, falls back to the
// Default theme for unknown names, and merges [Overrides] onto a copy:
//
//	th, err := theme.Builtin().Resolve("gaming", theme.Overrides{Title: "ff8800"})
//	// th.Title == "#ff8800"
//
// Override values are normalized by [NormalizeColor]; values that are not
// six-digit hex colors are rejected with an INVALID_COLOR error.
package theme
