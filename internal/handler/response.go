package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ares-Judda/Wang-Api/internal/model"
	"github.com/Ares-Judda/Wang-Api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError translates service failures into the error envelope. Anything
// unclassified becomes an opaque 500; the cause is logged, never sent.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
	case errors.Is(err, model.ErrMissingFields):
		status = http.StatusBadRequest
		body.Code = "MISSING_FIELDS"
		body.Message = "missing required fields"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusBadRequest
		body.Code = "INVALID_CREDENTIALS"
		body.Message = "invalid credentials"
	case errors.Is(err, model.ErrMissingToken):
		status = http.StatusUnauthorized
		body.Code = "MISSING_TOKEN"
		body.Message = "refresh token required"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusForbidden
		body.Code = "INVALID_TOKEN"
		body.Message = "invalid token"
	case errors.Is(err, model.ErrPropertyNotFound),
		errors.Is(err, model.ErrFAQNotFound),
		errors.Is(err, model.ErrContractNotFound),
		errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = err.Error()
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}
