package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart("stats", "Default")
	r.OnRenderComplete("stats", "Default", 2048, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "redis")
	c.OnCacheMiss(ctx, "file")
	c.OnCacheSet(ctx, "mongo", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "api.github.com", "/users/ada")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/ada", 200, time.Second)
	h.OnError(ctx, "GET", "api.github.com", "/users/ada", errors.New("timeout"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}
}

type testRenderHooks struct{ NoopRenderHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnRenderStart("activity", "Gaming")
	h.OnRenderComplete("activity", "Gaming", 512, time.Millisecond, nil)
	h.OnCacheMiss(ctx, "redis")
	h.OnResponse(ctx, "GET", "api.github.com", "/users/ada", 404, time.Millisecond)
	h.OnError(ctx, "GET", "api.github.com", "/users/ada", errors.New("dial tcp: refused"))

	out := buf.String()
	for _, want := range []string{"rendered", "theme=Gaming", "cache miss", "status=404", "request failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
