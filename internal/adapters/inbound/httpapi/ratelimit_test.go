package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/remote-access/internal/config"
)

func TestNewClientLimiter_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RateLimitConfig
	}{
		{name: "disabled", cfg: config.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1}},
		{name: "zero rps", cfg: config.RateLimitConfig{Enabled: true, RPS: 0, Burst: 1}},
		{name: "zero burst", cfg: config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, NewClientLimiter(tt.cfg))
		})
	}
}

func TestClientLimiter_Allow(t *testing.T) {
	l := NewClientLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2})
	require.NotNil(t, l)
	now := time.Unix(1_700_000_000, 0)

	assert.True(t, l.Allow("10.0.0.1", now))
	assert.True(t, l.Allow("10.0.0.1", now))
	assert.False(t, l.Allow("10.0.0.1", now))

	// buckets are per key
	assert.True(t, l.Allow("10.0.0.2", now))

	// one token refills after a second
	assert.True(t, l.Allow("10.0.0.1", now.Add(time.Second)))
	assert.False(t, l.Allow("10.0.0.1", now.Add(time.Second)))
}

func TestClientLimiter_NilAndEmptyKeyAllow(t *testing.T) {
	var nilLimiter *ClientLimiter
	assert.True(t, nilLimiter.Allow("10.0.0.1", time.Now()))

	l := NewClientLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1})
	for range 5 {
		assert.True(t, l.Allow("  ", time.Now()))
	}
	assert.Equal(t, 0, l.size())
}

func TestClientLimiter_EvictsIdleEntries(t *testing.T) {
	l := NewClientLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1})
	l.idleTTL = time.Minute
	start := time.Unix(1_700_000_000, 0)

	l.Allow("stale", start)
	later := start.Add(2 * time.Minute)
	for range 511 {
		l.Allow("fresh", later)
	}

	assert.Equal(t, 1, l.size())
}

func TestClientLimiter_Middleware(t *testing.T) {
	l := NewClientLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1})
	fixed := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return fixed }

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := func(addr string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		return r
	}

	assert.Equal(t, http.StatusNoContent, serve(h, req("192.0.2.1:1000")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, req("192.0.2.1:2000")).Code)
	assert.Equal(t, http.StatusNoContent, serve(h, req("192.0.2.2:1000")).Code)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{remoteAddr: "192.0.2.9", want: "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.remoteAddr, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientKey(r))
		})
	}
}
