package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/sbilibin2017/idea2context/internal/services"
)

// maxBodyBytes limits request bodies of every endpoint.
const maxBodyBytes = 1 << 20

const (
	msgInvalidBody        = "invalid request body"
	msgInternal           = "internal server error"
	msgStoreUnavailable   = "service temporarily unavailable, try again later"
	msgUserAlreadyExists  = "user with this email already exists"
	msgInvalidCredentials = "invalid email or password"
)

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// writeValidationError answers 400 with the validation message and reports
// whether err was a validation error at all.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var vErr *services.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}
	writeError(w, http.StatusBadRequest, vErr.Message)
	return true
}
