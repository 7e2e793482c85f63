package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/m-mizutani/relq/pkg/controller/http"
	"github.com/m-mizutani/relq/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server, err := controller.NewServer(
		ctx,
		mcpHandler,
		controller.WithAddr("localhost:0"),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusOK)
	}

	var status model.HealthStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if status.Status != "healthy" {
		t.Errorf("Status = %v, want healthy", status.Status)
	}

	if status.Service != "relq" {
		t.Errorf("Service = %v, want relq", status.Service)
	}

	if status.Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestMCPEndpointMounted(t *testing.T) {
	ctx := context.Background()

	var called bool
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	server, err := controller.NewServer(ctx, mcpHandler)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	if !called {
		t.Error("MCP handler was not invoked")
	}
}
