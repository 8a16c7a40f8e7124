package main

import (
	"net/http"
	"testing"

	"github.com/ironcoach/ironcoach/internal/e2etest"
	"github.com/ironcoach/ironcoach/internal/testhelpers"
)

// startServer starts the application with a dynamic port and an in-memory
// database and returns a client-side handle to it.
func startServer(t *testing.T) *e2etest.Server {
	t.Helper()
	exportDir := t.TempDir()
	lookupEnv := func(key string) (string, bool) {
		switch key {
		case "IRONCOACH_ADDR":
			return "localhost:0", true
		case "IRONCOACH_SQLITE_URL":
			return ":memory:", true
		case "IRONCOACH_EXPORT_PATH":
			return exportDir, true
		default:
			return "", false
		}
	}
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), lookupEnv, run)
	if err != nil {
		t.Fatalf("start server: %v", err)
	}
	return server
}

func TestHealthy(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	resp, err := server.Client().Get(ctx, "/api/healthy")
	if err != nil {
		t.Fatalf("get healthy: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if contentType := resp.Header.Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	t.Parallel()
	server := startServer(t)
	ctx := t.Context()

	resp, err := server.Client().Get(ctx, "/api/nonexistent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
