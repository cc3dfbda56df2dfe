package server

import (
	"encoding/json"
	"net/http"

	"github.com/adproof/adproof/pkg/errors"
)

// errorResponse is the wire shape for all error replies.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes onto HTTP status codes. Unknown
// errors become 500s with the raw message suppressed behind a generic reply.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Code: errors.ErrCodeInvalidInput})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidCanvas, errors.ErrCodeInvalidChannel,
		errors.ErrCodeInvalidRetailer, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStrategy,
		errors.ErrCodeInvalidColor, errors.ErrCodeInvalidLayout:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFormatNotFound,
		errors.ErrCodeLayoutNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
