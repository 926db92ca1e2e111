package handler

import (
	"errors"
	"net/http"

	"github.com/diasporahq/diaspora-backend/internal/service"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// statusForError maps the service error taxonomy onto response classes for
// the endpoints that do return bodies (users, mode switch logs). The item
// ingestion path does its own bare-status mapping.
func statusForError(err error) int {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
