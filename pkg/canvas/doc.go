// Package canvas is the primitive drawing surface every card is built on.
//
// A [Canvas] collects shapes, text, groups and reusable definitions
// (gradients and filters) and serializes them into a standalone SVG
// document:
//
//	c := canvas.New(300, 120)
//	c.Rect(0.5, 0.5, 299, 119, canvas.Fill("#0d1117"), canvas.Radius(4.5))
//	c.Text(25, 35, "Stats", canvas.With(canvas.Font("Segoe UI", 18), []canvas.Attr{canvas.Fill("#58a6ff")})...)
//	svg := c.Bytes()
//
// Coordinates are written with at most two decimals so output is stable
// across platforms. Text content and attribute values are XML-escaped.
package canvas
