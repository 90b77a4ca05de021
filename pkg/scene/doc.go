// Package scene holds the composers that draw each card motif.
//
// A [Composer] appends drawing commands for one theme onto a
// [canvas.Canvas]. Activity motifs are selected through a [Registry] keyed
// by lowercase theme name; names without a motif get the plain [Grid]:
//
//	reg := scene.NewRegistry()
//	comp := reg.Lookup("Gaming") // Snake
//	w, h := scene.SizeOf(comp, data)
//	c := canvas.New(w, h)
//	comp.Compose(data, th, c, rng)
//
// The language and stats cards have their own composers, [Languages] and
// [Stats], used directly by package card.
//
// Several motifs are decorative. [Grid], [Space], [Marvel] and the scatter
// motifs place elements at random or fixed positions and do not reflect
// the profile's activity beyond which days were active. Their randomness
// comes only from the rng argument, so tests and callers can pin a seed.
package scene
