package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/remote-access/internal/app"
	"github.com/sufield/remote-access/internal/config"
	"github.com/sufield/remote-access/internal/logging"
)

// syncBuffer lets the test read log output while the server goroutine writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = 0
	cfg.HTTP.ShutdownTimeout = 2 * time.Second
	return cfg
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	a, err := app.Bootstrap(testConfig(), nil)
	require.NoError(t, err)

	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Registry)
	assert.NotNil(t, a.Handler)
	assert.NotNil(t, a.Server)
}

func TestApplication_StartStop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, err := app.Bootstrap(testConfig(), logging.Discard())
	require.NoError(t, err)

	require.NoError(t, a.Start(ctx))
	assert.True(t, strings.HasPrefix(a.URL(), "http://localhost:"))
	assert.NotEqual(t, "http://localhost:0", a.URL())

	status, body := get(t, "http://"+a.Server.Addr()+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome to the Remote Access Project!", body)

	status, body = get(t, "http://"+a.Server.Addr()+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "go_goroutines")
	assert.Contains(t, body, "remote_access_http_requests_total")

	require.NoError(t, a.Stop(ctx))
}

func TestApplication_Run(t *testing.T) {
	t.Parallel()

	var logs syncBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	a, err := app.Bootstrap(testConfig(), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "Server is running on http://localhost:")
	}, 5*time.Second, 10*time.Millisecond)

	status, _ := get(t, "http://"+a.Server.Addr()+"/healthz")
	assert.Equal(t, http.StatusOK, status)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Contains(t, logs.String(), "Server stopped")
}

func TestApplication_RunBindFailure(t *testing.T) {
	t.Parallel()

	first, err := app.Bootstrap(testConfig(), logging.Discard())
	require.NoError(t, err)
	require.NoError(t, first.Start(context.Background()))
	defer func() { _ = first.Stop(context.Background()) }()

	cfg := testConfig()
	_, port, err := net.SplitHostPort(first.Server.Addr())
	require.NoError(t, err)
	cfg.HTTP.Port, err = strconv.Atoi(port)
	require.NoError(t, err)

	second, err := app.Bootstrap(cfg, logging.Discard())
	require.NoError(t, err)

	err = second.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestBootstrap_MetricsDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	disabled := false
	cfg.Metrics.Enabled = &disabled

	a, err := app.Bootstrap(cfg, logging.Discard())
	require.NoError(t, err)

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}
