package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/skauts-stats/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "skauts-stats"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// mappedError is the wire form of a sentinel. Server-side failures carry a
// fixed public message; the wrapped detail only goes to the logs.
type mappedError struct {
	HTTPStatus    int
	Reason        string
	Status        string
	PublicMessage string
}

var errorMappings = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
	{usecase.ErrStaleComputation, mappedError{
		HTTPStatus:    http.StatusConflict,
		Reason:        "staleComputation",
		Status:        "ABORTED",
		PublicMessage: "computation superseded by a newer request",
	}},
	{usecase.ErrDependencyUnavailable, mappedError{
		HTTPStatus:    http.StatusServiceUnavailable,
		Reason:        "dependencyUnavailable",
		Status:        "UNAVAILABLE",
		PublicMessage: "no result available",
	}},
}

var internalError = mappedError{
	HTTPStatus:    http.StatusInternalServerError,
	Reason:        "internalError",
	Status:        "INTERNAL",
	PublicMessage: "internal server error",
}

func mapError(_ context.Context, err error) mappedError {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeMapped(w, mapError(ctx, err), err)
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	writeMapped(w, internalError, nil)
}

func writeMapped(w http.ResponseWriter, mapped mappedError, err error) {
	msg := mapped.PublicMessage
	if msg == "" && err != nil {
		msg = err.Error()
	}

	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: msg,
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: msg,
				},
			},
		},
	})
}
