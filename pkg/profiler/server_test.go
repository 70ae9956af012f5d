package profiler

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_AddrBeforeStart(t *testing.T) {
	server := New(0)
	assert.Empty(t, server.Addr())
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := New(0)

	require.NoError(t, server.Start(context.Background()))
	assert.NotEmpty(t, server.Addr())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(shutdownCtx))
}

func TestServer_ServesPprofIndex(t *testing.T) {
	server := New(0)

	require.NoError(t, server.Start(context.Background()))
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	// Only the instant endpoints; profile and trace block for their
	// sampling window and a picker session is too short to care.
	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "index", endpoint: "/debug/pprof/"},
		{name: "cmdline", endpoint: "/debug/pprof/cmdline"},
		{name: "symbol", endpoint: "/debug/pprof/symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get("http://" + server.Addr() + tt.endpoint)
			require.NoError(t, err, "GET %s", tt.endpoint)
			defer func() {
				_ = resp.Body.Close()
			}()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", tt.endpoint)
			assert.NotEmpty(t, body)
		})
	}
}
