package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event as a debug line on a charmbracelet logger.
// It satisfies all three hook interfaces, so one value can be registered
// for each:
//
//	h := observability.NewLogHooks(logger)
//	observability.SetRenderHooks(h)
//	observability.SetCacheHooks(h)
//	observability.SetHTTPHooks(h)
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks writing to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnRenderStart(card, theme string) {
	h.logger.Debug("render", "card", card, "theme", theme)
}

func (h *LogHooks) OnRenderComplete(card, theme string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "card", card, "theme", theme, "err", err)
		return
	}
	h.logger.Debug("rendered", "card", card, "theme", theme, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h *LogHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cache set", "backend", backend, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("request failed", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ HTTPHooks   = (*LogHooks)(nil)
)
