package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/crypto"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/internal/token"
	"github.com/fayrashop/api/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the token pair
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing, and the token codec for signed credentials.
type authService struct {
	users    store.UserRepository
	roles    store.RoleRepository
	codec    *token.Codec
	hasher   *crypto.PasswordHasher
	recorder LoginRecorder
	logger   *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and primitives.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, roles store.RoleRepository, codec *token.Codec, hasher *crypto.PasswordHasher, recorder LoginRecorder, logger *logger.Logger) AuthService {
	return &authService{
		users:    users,
		roles:    roles,
		codec:    codec,
		hasher:   hasher,
		recorder: recorder,
		logger:   logger,
	}
}

// Register creates a new active account carrying the default "user" role
// and signs it in immediately.
//
// Returns:
//   - apperrors.MissingField / apperrors.InvalidEmail / apperrors.InvalidInput
//     when the input fails validation;
//   - apperrors.UserAlreadyExists when the email is already registered.
func (a *authService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterInput(in); err != nil {
		return AuthResult{}, err
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Status:       true,
	}

	// New accounts always start with the default role. A missing seed is a
	// deployment fault, not a client error.
	role, err := a.roles.FindByName(ctx, models.RoleUser)
	if err != nil {
		log.Err(err).Str("role", models.RoleUser).Msg("error resolving default role")
		return AuthResult{}, fmt.Errorf("error resolving default role: %w", err)
	}
	user.Role = &role

	created, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return AuthResult{}, apperrors.UserAlreadyExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	tokens, err := a.codec.IssuePair(created)
	if err != nil {
		log.Err(err).Str("user_id", created.ID).Msg("error issuing token pair")
		return AuthResult{}, fmt.Errorf("error issuing token pair: %w", err)
	}

	return AuthResult{User: created.Public(), Tokens: tokens}, nil
}

// Login authenticates an existing account.
//
// Unknown email, wrong password, and deactivated account all surface as
// apperrors.WrongCredentials: the response never reveals which condition
// failed or whether the email is registered.
func (a *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperrors.WrongCredentials
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, apperrors.WrongCredentials
		}
		log.Err(err).Msg("error looking up user during login")
		return AuthResult{}, fmt.Errorf("error looking up user: %w", err)
	}

	if err := a.hasher.Compare(password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return AuthResult{}, apperrors.WrongCredentials
		}
		log.Err(err).Str("user_id", user.ID).Msg("error comparing password hash")
		return AuthResult{}, fmt.Errorf("error comparing password hash: %w", err)
	}

	if !user.Status {
		return AuthResult{}, apperrors.WrongCredentials
	}

	tokens, err := a.codec.IssuePair(user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error issuing token pair")
		return AuthResult{}, fmt.Errorf("error issuing token pair: %w", err)
	}

	// Fire-and-forget: the login response never waits on the stamp.
	a.recorder.Record(user.ID)

	return AuthResult{User: user.Public(), Tokens: tokens}, nil
}

// errInvalidRefresh is the single failure every refresh problem collapses
// into, so callers cannot probe which check rejected the token.
var errInvalidRefresh = apperrors.InvalidToken.WithMessage("Invalid refresh token")

// Refresh exchanges a refresh token for a fresh pair. The account is
// re-read so the new pair carries the user's current role and permissions;
// this is the only mechanism by which role changes reach a live session.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	claims, err := a.codec.Verify(token.Refresh, refreshToken)
	if err != nil {
		return models.TokenPair{}, errInvalidRefresh
	}

	user, err := a.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TokenPair{}, errInvalidRefresh
		}
		log.Err(err).Str("user_id", claims.Subject).Msg("error looking up user during refresh")
		return models.TokenPair{}, fmt.Errorf("error looking up user: %w", err)
	}

	if !user.Status {
		return models.TokenPair{}, errInvalidRefresh
	}

	tokens, err := a.codec.IssuePair(user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("error issuing token pair")
		return models.TokenPair{}, fmt.Errorf("error issuing token pair: %w", err)
	}

	return tokens, nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return apperrors.MissingField.WithMessage("First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return apperrors.MissingField.WithMessage("Last name is required")
	}
	if err := validateEmail(normalizeEmail(in.Email)); err != nil {
		return err
	}
	return validatePassword(in.Password)
}
