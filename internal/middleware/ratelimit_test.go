package middleware_test

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
	"github.com/khushikhattar/ShortSecure/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var errMultipartNotSupported = errors.New("multipart not supported in mock")

func newTestAPI() huma.API {
	return humachi.New(chi.NewMux(), huma.DefaultConfig("Test", "1.0.0"))
}

// mockHumaContext implements huma.Context for testing.
type mockHumaContext struct {
	ctx        context.Context
	headers    map[string]string
	host       string
	remoteAddr string
	written    []byte
	statusCode int
	method     string
	operation  *huma.Operation
}

func newMockHumaContext() *mockHumaContext {
	return &mockHumaContext{
		ctx:     context.Background(),
		headers: make(map[string]string),
		method:  "GET",
	}
}

func (m *mockHumaContext) Operation() *huma.Operation {
	return m.operation
}
func (m *mockHumaContext) Context() context.Context              { return m.ctx }
func (m *mockHumaContext) TLS() *tls.ConnectionState             { return nil }
func (m *mockHumaContext) Method() string                        { return m.method }
func (m *mockHumaContext) Host() string                          { return m.host }
func (m *mockHumaContext) RemoteAddr() string                    { return m.remoteAddr }
func (m *mockHumaContext) URL() url.URL                          { return url.URL{} }
func (m *mockHumaContext) Param(_ string) string                 { return "" }
func (m *mockHumaContext) Query(_ string) string                 { return "" }
func (m *mockHumaContext) Header(name string) string             { return m.headers[name] }
func (m *mockHumaContext) EachHeader(cb func(name, value string)) {
	for name, value := range m.headers {
		cb(name, value)
	}
}
func (m *mockHumaContext) BodyReader() io.Reader                 { return nil }
func (m *mockHumaContext) GetMultipartForm() (*multipart.Form, error) {
	return nil, errMultipartNotSupported
}
func (m *mockHumaContext) SetReadDeadline(_ time.Time) error { return nil }
func (m *mockHumaContext) SetStatus(code int)                { m.statusCode = code }
func (m *mockHumaContext) Status() int                       { return m.statusCode }
func (m *mockHumaContext) AppendHeader(_, _ string)          {}
func (m *mockHumaContext) SetHeader(_, _ string)             {}
func (m *mockHumaContext) BodyWriter() io.Writer             { return &mockBodyWriter{ctx: m} }

type mockBodyWriter struct {
	ctx *mockHumaContext
}

func (w *mockBodyWriter) Write(p []byte) (n int, err error) {
	w.ctx.written = append(w.ctx.written, p...)

	return len(p), nil
}

// errorLimiter always fails the limit check.
type errorLimiter struct{}

func (errorLimiter) Allow(_ context.Context, _ string, _ ratelimit.LimitConfig) (bool, error) {
	return false, errors.New("limiter error")
}

// capturingLimiter records the keys it is asked about.
type capturingLimiter struct {
	keys []string
}

func (c *capturingLimiter) Allow(_ context.Context, key string, _ ratelimit.LimitConfig) (bool, error) {
	c.keys = append(c.keys, key)

	return true, nil
}

var anonymousTestLimit = ratelimit.EndpointConfig{
	Limits:        []ratelimit.LimitConfig{{Window: 10 * time.Minute, Max: 5}},
	AnonymousOnly: true,
}

func limitedOperation(cfg ratelimit.EndpointConfig) *huma.Operation {
	return &huma.Operation{
		Path: "/url/shorten",
		Metadata: map[string]any{
			ratelimit.MetadataKey: cfg,
		},
	}
}

func anonymousRequest(ip string, cfg ratelimit.EndpointConfig) *mockHumaContext {
	ctx := newMockHumaContext()
	ctx.ctx = middleware.ContextWithClientIP(context.Background(), ip)
	ctx.operation = limitedOperation(cfg)

	return ctx
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects the request over the anonymous limit", func(t *testing.T) {
		limiter := ratelimit.NewSlidingWindowLimiter(store.NewRateLimitMemoryStore())
		mw := middleware.RateLimiter(newTestAPI(), limiter, zap.NewNop())

		for i := 0; i < 5; i++ {
			ctx := anonymousRequest("203.0.113.5", anonymousTestLimit)
			nextCalled := false

			mw(ctx, func(_ huma.Context) { nextCalled = true })

			assert.True(t, nextCalled, "request %d should be allowed", i+1)
		}

		ctx := anonymousRequest("203.0.113.5", anonymousTestLimit)
		nextCalled := false

		mw(ctx, func(_ huma.Context) { nextCalled = true })

		assert.False(t, nextCalled, "request over the maximum should be denied")
		assert.Equal(t, 429, ctx.statusCode)
		assert.Contains(t, string(ctx.written), "too many requests")
	})

	t.Run("does not limit authenticated callers on anonymous-only endpoints", func(t *testing.T) {
		limiter := ratelimit.NewSlidingWindowLimiter(store.NewRateLimitMemoryStore())
		mw := middleware.RateLimiter(newTestAPI(), limiter, zap.NewNop())

		baseCtx := middleware.ContextWithClientIP(context.Background(), "203.0.113.5")
		baseCtx = middleware.ContextWithAccountID(baseCtx, uuid.New())

		for i := 0; i < 10; i++ {
			ctx := newMockHumaContext()
			ctx.ctx = baseCtx
			ctx.operation = limitedOperation(anonymousTestLimit)

			nextCalled := false

			mw(ctx, func(_ huma.Context) { nextCalled = true })

			assert.True(t, nextCalled, "authenticated request %d should pass", i+1)
		}
	})

	t.Run("tracks each client address independently", func(t *testing.T) {
		limit := ratelimit.EndpointConfig{
			Limits: []ratelimit.LimitConfig{{Window: time.Minute, Max: 1}},
		}
		limiter := ratelimit.NewSlidingWindowLimiter(store.NewRateLimitMemoryStore())
		mw := middleware.RateLimiter(newTestAPI(), limiter, zap.NewNop())

		first := anonymousRequest("203.0.113.5", limit)
		mw(first, func(_ huma.Context) {})

		exhausted := anonymousRequest("203.0.113.5", limit)
		nextCalled := false

		mw(exhausted, func(_ huma.Context) { nextCalled = true })

		assert.False(t, nextCalled)
		assert.Equal(t, 429, exhausted.statusCode)

		other := anonymousRequest("198.51.100.7", limit)
		nextCalled = false

		mw(other, func(_ huma.Context) { nextCalled = true })

		assert.True(t, nextCalled, "a different client has its own window")
	})

	t.Run("keys by client, route, and window", func(t *testing.T) {
		limiter := &capturingLimiter{}
		mw := middleware.RateLimiter(newTestAPI(), limiter, zap.NewNop())

		ctx := anonymousRequest("203.0.113.5", anonymousTestLimit)
		mw(ctx, func(_ huma.Context) {})

		window := anonymousTestLimit.Limits[0].Window.Milliseconds()
		assert.Equal(t, []string{fmt.Sprintf("203.0.113.5:/url/shorten:%d", window)}, limiter.keys)
	})

	t.Run("passes endpoints with no limit configured straight through", func(t *testing.T) {
		limiter := &capturingLimiter{}
		mw := middleware.RateLimiter(newTestAPI(), limiter, zap.NewNop())

		ctx := newMockHumaContext()
		ctx.operation = &huma.Operation{Path: "/auth/login"}

		nextCalled := false

		mw(ctx, func(_ huma.Context) { nextCalled = true })

		assert.True(t, nextCalled)
		assert.Empty(t, limiter.keys, "limiter should not be consulted")
	})

	t.Run("returns 500 when the limit check fails", func(t *testing.T) {
		mw := middleware.RateLimiter(newTestAPI(), errorLimiter{}, zap.NewNop())

		ctx := anonymousRequest("203.0.113.5", anonymousTestLimit)
		nextCalled := false

		mw(ctx, func(_ huma.Context) { nextCalled = true })

		assert.False(t, nextCalled)
		assert.Equal(t, 500, ctx.statusCode)
	})
}
