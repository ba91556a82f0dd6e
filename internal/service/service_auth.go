// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package service

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/store"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

// sessionTokenBytes is the entropy of a session token before encoding.
// 20 bytes encode to 32 base-32 characters.
const sessionTokenBytes = 20

// authService is the concrete implementation of [AuthService].
// It verifies argon2id password hashes and manages session records through
// the user and session repositories.
type authService struct {
	// userRepository is the data-access layer for account records.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for session records.
	sessionRepository store.SessionRepository

	// ids generates identifiers for new user records.
	ids *utils.UUIDGenerator

	// sessionTTL is the fixed lifetime of a newly created session. A
	// validated session whose remaining lifetime has dropped below half of
	// this value is extended back to a full TTL.
	sessionTTL time.Duration

	// cookieDomain scopes the session cookie in production.
	cookieDomain string

	// production tightens cookie attributes (Secure, Domain).
	production bool

	// now is the clock; replaceable in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(storages *store.Storages, appCfg config.App, authCfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    storages.UserRepository,
		sessionRepository: storages.SessionRepository,
		ids:               utils.NewUUIDGenerator(),
		sessionTTL:        authCfg.SessionTTL,
		cookieDomain:      authCfg.CookieDomain,
		production:        appCfg.IsProduction(),
		now:               time.Now,
		logger:            logger,
	}
}

// Login authenticates an existing user.
//
// Both failure modes — unknown username and wrong password — collapse into
// [ErrInvalidCredentials] so the response carries no account-enumeration
// signal. Store failures other than "not found" are surfaced wrapped.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.VerifyPassword(foundUser.HashedPassword, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("stored password hash is unreadable")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("username", username).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateUser registers a new account.
//
// Returns [ErrInvalidDataProvided] when username or password is empty, and
// the wrapped [store.ErrUsernameAlreadyExists] when the name is taken.
func (a *authService) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:             a.ids.Generate(),
		Username:       username,
		HashedPassword: hash,
	}

	createdUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// CreateSession issues a new session with a full TTL and returns the cookie
// directive carrying the token.
func (a *authService) CreateSession(ctx context.Context, userID string) (models.Session, models.SessionCookie, error) {
	token, err := generateSessionToken()
	if err != nil {
		return models.Session{}, models.SessionCookie{}, fmt.Errorf("session token generation failed: %w", err)
	}

	session := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: a.now().Add(a.sessionTTL),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		return models.Session{}, models.SessionCookie{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, a.SessionCookie(session), nil
}

// ValidateSession resolves a session token to its user.
//
// Fails closed: empty, unknown, or expired tokens all return
// [ErrUnauthorized]. An expired session is deleted on sight. When less than
// half of the TTL remains, the expiry is pushed out to a full TTL again and
// fresh=true instructs the transport to re-emit the cookie.
func (a *authService) ValidateSession(ctx context.Context, token string) (models.User, models.Session, bool, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, models.Session{}, false, ErrUnauthorized
	}

	session, err := a.sessionRepository.FindSession(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrNoSessionWasFound) {
			log.Err(err).Msg("session lookup failed")
		}
		return models.User{}, models.Session{}, false, ErrUnauthorized
	}

	now := a.now()
	if !session.ExpiresAt.After(now) {
		// lazy expiry cleanup; deletion is idempotent
		if err := a.sessionRepository.DeleteSession(ctx, session.ID); err != nil {
			log.Err(err).Msg("expired session cleanup failed")
		}
		return models.User{}, models.Session{}, false, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Str("user_id", session.UserID).Msg("session points at missing user")
		return models.User{}, models.Session{}, false, ErrUnauthorized
	}

	fresh := false
	if session.ExpiresAt.Sub(now) < a.sessionTTL/2 {
		session.ExpiresAt = now.Add(a.sessionTTL)
		if err := a.sessionRepository.UpdateSessionExpiry(ctx, session.ID, session.ExpiresAt); err != nil {
			log.Err(err).Msg("session renewal failed")
			return models.User{}, models.Session{}, false, fmt.Errorf("session renewal failed: %w", err)
		}
		fresh = true
	}

	return user, session, fresh, nil
}

// InvalidateSession deletes the session record. No error when the token is
// already absent.
func (a *authService) InvalidateSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("session invalidation failed: %w", err)
	}

	return nil
}

// SessionCookie builds the directive carrying the session token.
func (a *authService) SessionCookie(session models.Session) models.SessionCookie {
	cookie := models.SessionCookie{
		Name:    models.SessionCookieName,
		Value:   session.ID,
		Expires: session.ExpiresAt,
	}

	if a.production {
		cookie.Secure = true
		cookie.Domain = a.cookieDomain
	}

	return cookie
}

// BlankSessionCookie builds the directive that clears the session cookie.
func (a *authService) BlankSessionCookie() models.SessionCookie {
	cookie := models.SessionCookie{
		Name:   models.SessionCookieName,
		Value:  "",
		MaxAge: -1,
	}

	if a.production {
		cookie.Secure = true
		cookie.Domain = a.cookieDomain
	}

	return cookie
}

// generateSessionToken returns a fresh unguessable session token:
// 20 bytes from crypto/rand, base-32 encoded without padding, lowercased.
func generateSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)

	return strings.ToLower(encoded), nil
}
