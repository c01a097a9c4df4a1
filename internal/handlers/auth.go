package handlers

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-tweeter/internal/middlewares"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// CurrentUserGetter resolves the profile of the authenticated caller.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, identity models.Identity) (*models.CurrentUser, error)
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Create an account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.TokenResponse "Account created"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, err := svc.Signup(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.TokenResponse{Token: token})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid user or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.TokenResponse{Token: token})
	}
}

// NewMeHandler returns an HTTP handler that describes the caller.
// @Summary Current user
// @Description Returns the profile of the token owner together with the token
// @Tags auth
// @Produce json
// @Success 200 {object} models.CurrentUser "Current user"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		user, err := svc.GetCurrentUser(r.Context(), identity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
