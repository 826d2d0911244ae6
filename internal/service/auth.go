package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkravets/bookmarks-api/internal/logger"
	"github.com/mkravets/bookmarks-api/internal/model"
)

// dummyHash is a valid argon2id encoding verified against when login hits an
// unknown email, so both failure paths cost a full hash computation.
const dummyHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// SignUp registers a new credential pair and returns an access token for the
// created user. A duplicate email surfaces as model.ErrEmailTaken.
func (a *Auth) SignUp(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: email already taken",
				"email", email)
			return "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.GenerateAccessToken(model.Identity{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return token, nil
}

// SignIn verifies a credential pair and returns an access token. Unknown
// email and wrong password both surface as model.ErrInvalidCredentials so
// the response does not reveal which part failed.
func (a *Auth) SignIn(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Burn a hash verification to keep timing aligned with the
			// known-email path.
			_, _ = a.hasher.Verify(dummyHash, password)
			a.logger.Info("Auth service: login for unknown email",
				"email", email)
			return "", model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	match, err := a.hasher.Verify(user.PasswordHash, password)
	if err != nil {
		// A stored hash that cannot be parsed fails closed.
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return "", model.ErrInvalidCredentials
	}
	if !match {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.GenerateAccessToken(model.Identity{
		UserID: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return token, nil
}
