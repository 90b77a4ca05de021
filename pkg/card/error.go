package card

import (
	"github.com/gitcanvas/gitcanvas/pkg/canvas"
	"github.com/gitcanvas/gitcanvas/pkg/errors"
)

// Error card geometry and palette. The layout is fixed so a failing
// badge never shifts the page it is embedded in.
const (
	ErrorWidth  = 450
	ErrorHeight = 120

	errorBackground = "#0d1117"
	errorBorder     = "#30363d"
	errorText       = "#f85149"
)

var errorMessages = map[errors.Code]string{
	errors.ErrCodeUserNotFound: "GitHub User Not Found",
	errors.ErrCodeRateLimited:  "GitHub API Rate Limited",
	errors.ErrCodeUpstream:     "GitHub API Error",
	errors.ErrCodeUnknown:      "Something went wrong",
}

// ErrorMessage returns the text shown on the error card for kind.
func ErrorMessage(kind errors.Code) string {
	if msg, ok := errorMessages[kind]; ok {
		return msg
	}
	return errorMessages[errors.ErrCodeUnknown]
}

// RenderError draws the fixed error card for one of the upstream kinds.
// Any other code renders as UNKNOWN.
func RenderError(kind errors.Code) []byte {
	c := canvas.New(ErrorWidth, ErrorHeight)
	c.Rect(0, 0, ErrorWidth, ErrorHeight,
		canvas.Radius(10),
		canvas.Fill(errorBackground),
		canvas.Stroke(errorBorder),
		canvas.StrokeWidth(2))
	c.Text(ErrorWidth*0.5, ErrorHeight*0.55, ErrorMessage(kind),
		canvas.Anchor("middle"),
		canvas.Fill(errorText),
		canvas.FontFamily("monospace"),
		canvas.FontSize(18),
		canvas.FontWeight("bold"))
	return c.Bytes()
}

// RenderErrorFor classifies err with [errors.Kind] and draws its card.
func RenderErrorFor(err error) []byte {
	return RenderError(errors.Kind(err))
}
