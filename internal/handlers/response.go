package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-tweeter/internal/jwt"
	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/middlewares"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/services"
	"github.com/sbilibin2017/gw-tweeter/internal/validation"
)

const (
	msgInvalidBody = "invalid request body"
	msgInternal    = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Message: msg})
}

// writeError maps a service error to its status code. Unknown errors are
// logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *validation.Error
		conflictErr   *services.ConflictError
		notFoundErr   *services.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		writeMessage(w, http.StatusConflict, conflictErr.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, jwt.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, services.ErrUnauthorized.Error())
	case errors.Is(err, services.ErrForbidden):
		writeMessage(w, http.StatusForbidden, services.ErrForbidden.Error())
	case errors.As(err, &notFoundErr):
		writeMessage(w, http.StatusNotFound, notFoundErr.Error())
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
		)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
