package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/sbilibin2017/idea2context/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account. Email is trimmed and lowercased, password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.AuthResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Missing field, short password or malformed email"
// @Failure 409 {object} models.ErrorResponse "User with this email already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Failure 503 {object} models.ErrorResponse "User store unavailable"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case writeValidationError(w, err):
			case errors.Is(err, services.ErrStoreUnavailable):
				writeError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, msgUserAlreadyExists)
			default:
				logger.Log.Errorw("registration failed", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.AuthResponse{
			User:    user,
			Message: "account created successfully",
		})
	}
}
