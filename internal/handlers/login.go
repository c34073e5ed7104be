package handlers

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/sbilibin2017/idea2context/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks email and password and returns the user record
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.AuthResponse "User signed in"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or missing field"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case writeValidationError(w, err):
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			default:
				logger.Log.Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.AuthResponse{
			User:    user,
			Message: "signed in successfully",
		})
	}
}
