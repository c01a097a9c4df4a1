package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/validation"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error) // nil, nil when absent
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// Save inserts user unless the username is taken. The check and the
	// insert are a single atomic operation; inserted is false on conflict.
	Save(ctx context.Context, user models.UserDB) (inserted bool, err error)
}

// UserCache caches user profiles. Users are never mutated, so entries never go stale.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.UserDB, error) // nil, nil on miss
	Set(ctx context.Context, user models.UserDB) error
}

// PasswordHasher is the one-way password hashing primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenGenerator issues auth tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

var signupRules = validation.Rules[models.SignupRequest]{
	{
		Name:    "name",
		Message: "name is missing",
		Check:   func(r models.SignupRequest) bool { return validation.NotBlank(r.Name) },
	},
	{
		Name:    "username",
		Message: "username should be at least 5 characters",
		Check:   func(r models.SignupRequest) bool { return validation.MinLength(5)(r.Username) },
	},
	{
		Name:    "password",
		Message: "password should be at least 5 characters",
		Check:   func(r models.SignupRequest) bool { return validation.MinLength(5)(r.Password) },
	},
	{
		Name:    "email",
		Message: "invalid email",
		Check:   func(r models.SignupRequest) bool { return validation.Email(r.Email) },
	},
}

// AuthService handles signup, login and current-user lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	users  *userLookup
	hasher PasswordHasher
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	cache UserCache,
	hasher PasswordHasher,
	jwt TokenGenerator,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		users:  newUserLookup(reader, cache),
		hasher: hasher,
		jwt:    jwt,
	}
}

// Signup validates req, creates the user and returns a token bound to it.
func (svc *AuthService) Signup(ctx context.Context, req models.SignupRequest) (string, error) {
	if err := signupRules.Validate(req); err != nil {
		logger.Log.Warnw("signup rejected", "username", req.Username, "reason", err.Error())
		return "", err
	}

	// Fast path only; the insert below is what enforces uniqueness.
	existing, err := svc.reader.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "username", req.Username, "err", err)
		return "", err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", req.Username)
		return "", &ConflictError{Username: req.Username}
	}

	hash, err := svc.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	inserted, err := svc.writer.Save(ctx, models.UserDB{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", req.Username, "err", err)
		return "", err
	}
	if !inserted {
		logger.Log.Warnw("user already exists", "username", req.Username)
		return "", &ConflictError{Username: req.Username}
	}

	token, err := svc.jwt.Generate(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	logger.Log.Infow("user signed up", "username", req.Username)
	return token, nil
}

// Login authenticates a user and returns a fresh token.
// Unknown usernames and wrong passwords fail identically.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := svc.hasher.Compare(user.PasswordHash, password); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username, "err", err)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetCurrentUser returns the profile of an already authenticated caller.
func (svc *AuthService) GetCurrentUser(ctx context.Context, identity models.Identity) (*models.CurrentUser, error) {
	user, err := svc.users.get(ctx, identity.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("token subject has no user record", "username", identity.Username)
		return nil, ErrUnauthorized
	}

	return &models.CurrentUser{
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Token:    identity.Token,
	}, nil
}
