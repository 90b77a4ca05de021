package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gitcanvas/gitcanvas/pkg/buildinfo"
	"github.com/gitcanvas/gitcanvas/pkg/card"
	"github.com/gitcanvas/gitcanvas/pkg/errors"
	"github.com/gitcanvas/gitcanvas/pkg/theme"
)

// ErrorHeader names the error code of a request answered with the error card.
const ErrorHeader = "X-Gitcanvas-Error"

const svgContentType = "image/svg+xml; charset=utf-8"

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "GitCanvas API is running",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"themes": s.renderer.Themes.Names()})
}

func (s *Server) handleCard(kind card.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts, err := parseOptions(q, kind)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}

		username := strings.TrimSpace(q.Get("username"))
		if err := errors.ValidateUsername(username); err != nil {
			// No GitHub account can carry this name.
			s.writeError(w, r, http.StatusBadRequest, errors.Wrap(errors.ErrCodeUserNotFound, err, "invalid username"))
			return
		}

		d, err := s.source.Fetch(r.Context(), username)
		if err != nil {
			s.writeError(w, r, http.StatusOK, err)
			return
		}

		svg, err := s.renderer.Render(kind, d, opts)
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
		writeSVG(w, http.StatusOK, svg, s.maxAge)
	}
}

// parseOptions reads the render options from the query string. Color
// overrides are validated before any fetch.
func parseOptions(q url.Values, kind card.Kind) (card.StatsOptions, error) {
	opts := card.StatsOptions{
		Options: card.Options{
			Theme: q.Get("theme"),
			Overrides: theme.Overrides{
				Background: q.Get("bg_color"),
				Title:      q.Get("title_color"),
				Text:       q.Get("text_color"),
				Border:     q.Get("border_color"),
			},
		},
	}
	if opts.Theme == "" {
		opts.Theme = "Default"
	}
	for _, c := range []string{opts.Overrides.Background, opts.Overrides.Title, opts.Overrides.Text, opts.Overrides.Border} {
		if _, err := theme.NormalizeColor(c); err != nil {
			return opts, err
		}
	}

	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", raw)
		}
		opts.Seed = seed
	}

	if kind != card.KindStats {
		return opts, nil
	}
	for name, dst := range map[string]*bool{
		"hide_stars":     &opts.HideStars,
		"hide_commits":   &opts.HideCommits,
		"hide_repos":     &opts.HideRepos,
		"hide_followers": &opts.HideFollowers,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, raw)
		}
		*dst = v
	}
	return opts, nil
}

// writeError answers with the error card for err.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeUnknown
	}
	s.logger.Warn("card failed",
		"id", RequestID(r.Context()),
		"path", r.URL.Path,
		"code", code,
		"reason", errors.UserMessage(err),
		"err", err,
	)
	w.Header().Set(ErrorHeader, string(code))
	writeSVG(w, status, card.RenderErrorFor(err), 0)
}

func writeSVG(w http.ResponseWriter, status int, svg []byte, maxAge time.Duration) {
	h := w.Header()
	h.Set("Content-Type", svgContentType)
	if maxAge > 0 {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
	} else {
		h.Set("Cache-Control", "no-store")
	}
	w.WriteHeader(status)
	_, _ = w.Write(svg)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
