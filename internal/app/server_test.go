//go:build !integration

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name                 string
		requestTimeout       time.Duration
		expectedWriteTimeout time.Duration
	}{
		{name: "default request timeout", requestTimeout: 10 * time.Second, expectedWriteTimeout: 15 * time.Second},
		{name: "long request timeout widens write timeout", requestTimeout: 30 * time.Second, expectedWriteTimeout: 35 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(okHandler(), "8080", tt.requestTimeout)

			require.NotNil(t, server.httpServer)
			assert.Equal(t, ":8080", server.httpServer.Addr)
			assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
			assert.Equal(t, tt.expectedWriteTimeout, server.httpServer.WriteTimeout)
			assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
			assert.Equal(t, 10*time.Second, server.shutdownTimeout)
		})
	}
}

func TestServer_Run_GracefulShutdown(t *testing.T) {
	server := NewServer(okHandler(), "0", time.Second)

	var order []string
	server.OnShutdown(func(context.Context) error {
		order = append(order, "async logger")
		return nil
	})
	server.OnShutdown(func(context.Context) error {
		order = append(order, "mongodb")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errChan:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
	assert.Equal(t, []string{"async logger", "mongodb"}, order)
}

func TestServer_Run_ListenError(t *testing.T) {
	server := NewServer(okHandler(), "invalid-port", time.Second)

	hookRan := false
	server.OnShutdown(func(context.Context) error {
		hookRan = true
		return nil
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(context.Background())
	}()

	select {
	case err := <-errChan:
		assert.Error(t, err)
		assert.True(t, hookRan)
	case <-time.After(2 * time.Second):
		t.Fatal("listen error was not reported")
	}
}

func TestServer_Shutdown_ReportsHookErrors(t *testing.T) {
	server := NewServer(okHandler(), "0", time.Second)
	hookErr := errors.New("disconnect failed")
	server.OnShutdown(func(context.Context) error { return hookErr })

	err := server.Shutdown()

	assert.ErrorIs(t, err, hookErr)
}
