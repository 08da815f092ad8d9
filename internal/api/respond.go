package api

import (
	"encoding/json"
	"net/http"

	"github.com/spotlight-tour/spotlight/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidIndex,
		errors.ErrCodeInvalidAnchor,
		errors.ErrCodeInvalidSettings,
		errors.ErrCodeInvalidTourFile:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeTargetNotFound,
		errors.ErrCodeTourNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeHostUnavailable,
		errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}
