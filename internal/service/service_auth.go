// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/resto-reviews/internal/config"
	"github.com/MKhiriev/resto-reviews/internal/crypto"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/internal/utils"
	"github.com/MKhiriev/resto-reviews/models"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths cost one bcrypt comparison.
const dummyPassword = "resto-reviews-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher computes and verifies password digests.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// admin holds the configured administrator credentials. The plaintext
	// password is hashed on first use and only the digest is compared.
	admin         config.Admin
	adminHashOnce sync.Once
	adminHash     string
	adminHashErr  error

	dummyHashMu sync.Mutex
	dummyHash   string

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		admin:          cfg.Admin,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is replaced by its digest before the user reaches the
// repository. Returns the persisted user (with a server-assigned ID) or:
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: digest,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.RegisterUser").Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or ErrInvalidCredentials when the
// email is unknown or the password does not match. Both cases take the same
// amount of hashing work.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.compareDummy(ctx, request.Password)
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, request.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", user.ID).Msg("password comparison failed")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return user, nil
}

// AdminLogin checks the administrator credentials from the configuration.
// When no administrator is configured every attempt fails with
// ErrInvalidCredentials.
func (a *authService) AdminLogin(ctx context.Context, request models.AdminLoginRequest) (models.AdminIdentity, error) {
	log := logger.FromContext(ctx)

	if !a.admin.AdminEnabled() {
		log.Warn().Str("func", "*authService.AdminLogin").Msg("admin login attempted but no admin is configured")
		return models.AdminIdentity{}, ErrInvalidCredentials
	}

	a.adminHashOnce.Do(func() {
		a.adminHash, a.adminHashErr = a.hasher.Hash(a.admin.Password)
	})
	if a.adminHashErr != nil {
		log.Err(a.adminHashErr).Str("func", "*authService.AdminLogin").Msg("admin password hashing failed")
		return models.AdminIdentity{}, fmt.Errorf("admin password hashing failed: %w", a.adminHashErr)
	}

	usernameMatches := subtle.ConstantTimeCompare([]byte(request.Username), []byte(a.admin.Username)) == 1
	err := a.hasher.Compare(a.adminHash, request.Password)
	if err != nil && !errors.Is(err, crypto.ErrPasswordMismatch) {
		return models.AdminIdentity{}, fmt.Errorf("admin password comparison failed: %w", err)
	}
	if !usernameMatches || err != nil {
		log.Warn().Str("func", "*authService.AdminLogin").Msg("invalid admin credentials")
		return models.AdminIdentity{}, ErrInvalidCredentials
	}

	return models.AdminIdentity{Username: a.admin.Username}, nil
}

// CreateToken issues a signed JWT for the given identity.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// compareDummy spends one comparison against the dummy digest. A failed
// digest computation is logged and retried on the next call.
func (a *authService) compareDummy(ctx context.Context, password string) {
	digest, err := a.dummyDigest()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.compareDummy").
			Msg("dummy digest unavailable, unknown-email login is not timing-equalized")
		return
	}
	_ = a.hasher.Compare(digest, password)
}

func (a *authService) dummyDigest() (string, error) {
	a.dummyHashMu.Lock()
	defer a.dummyHashMu.Unlock()

	if a.dummyHash == "" {
		digest, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			return "", fmt.Errorf("dummy password hashing failed: %w", err)
		}
		a.dummyHash = digest
	}
	return a.dummyHash, nil
}

// CurrentUser reloads the account behind caller. A token for an account that
// no longer exists fails with ErrTokenIsExpiredOrInvalid.
func (a *authService) CurrentUser(ctx context.Context, caller models.UserIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, caller.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*authService.CurrentUser").Int64("user_id", caller.UserID).Msg("token names a missing user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.CurrentUser").Int64("user_id", caller.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
