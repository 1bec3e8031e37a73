package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConsoleSession(t *testing.T) {
	var seen context.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
		w.WriteHeader(http.StatusNoContent)
	})
	handler := ConsoleSession(next)

	t.Run("passes through without header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/organizations/1/dashboard", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("binds trimmed session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/organizations/1/dashboard", nil)
		req.Header.Set(ConsoleSessionHeader, "  tab-7  ")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || seen == nil {
			t.Fatalf("expected request to reach next handler, got %d", rec.Code)
		}
	})

	t.Run("rejects oversized session", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/v1/organizations/1/dashboard", nil)
		req.Header.Set(ConsoleSessionHeader, strings.Repeat("x", maxConsoleSessionLength+1))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if seen != nil {
			t.Fatalf("next handler must not run for an oversized session")
		}
	})
}
