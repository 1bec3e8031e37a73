package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{name: "not found", err: fmt.Errorf("%w: match id=3", usecase.ErrNotFound), code: http.StatusNotFound, status: "NOT_FOUND"},
		{name: "stale", err: fmt.Errorf("%w: dashboard 1", usecase.ErrStaleComputation), code: http.StatusConflict, status: "ABORTED"},
		{name: "dependency", err: fmt.Errorf("%w: batch", usecase.ErrDependencyUnavailable), code: http.StatusServiceUnavailable, status: "UNAVAILABLE"},
		{name: "unknown", err: fmt.Errorf("boom"), code: http.StatusInternalServerError, status: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.code || got.Status != tt.status {
				t.Fatalf("mapError(%v)=%+v want code=%d status=%s", tt.err, got, tt.code, tt.status)
			}
		})
	}
}

func TestWriteError_HidesServerSideDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "batch failure", err: fmt.Errorf("%w: list players: dial tcp 10.0.0.3:5432", usecase.ErrDependencyUnavailable), code: http.StatusServiceUnavailable, want: "no result available"},
		{name: "unknown", err: fmt.Errorf("nil map write in ranking"), code: http.StatusInternalServerError, want: "internal server error"},
		{name: "client error keeps detail", err: fmt.Errorf("%w: orgID must be an integer", usecase.ErrInvalidInput), code: http.StatusBadRequest, want: "invalid input: orgID must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)
			if rec.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, rec.Code)
			}

			var body googleResponseEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Error == nil || body.Error.Message != tt.want {
				t.Fatalf("unexpected error body: %+v", body.Error)
			}
		})
	}
}
