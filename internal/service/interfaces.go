package service

import (
	"context"

	"github.com/gae-jp/portfolio-api/models"
)

// AuthService owns the user/session lifecycle: credential verification,
// session issuance, validation with sliding renewal, and invalidation.
//
// Session issuance and invalidation are modelled as pure outcomes plus
// cookie directives; the transport layer applies the directives.
type AuthService interface {
	// Login verifies the credentials and returns the matching user.
	// Unknown username and wrong password both yield [ErrInvalidCredentials].
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateUser registers a new account with an argon2id-hashed password.
	// Used by the seeding command; there is no public registration endpoint.
	CreateUser(ctx context.Context, username, password string) (models.User, error)

	// CreateSession issues a fresh session for the user and returns it
	// together with the cookie directive carrying the token.
	CreateSession(ctx context.Context, userID string) (models.Session, models.SessionCookie, error)

	// ValidateSession checks the token and returns the owning user and the
	// session. fresh reports that the session expiry was extended and the
	// caller must re-emit the session cookie. Any failure — missing,
	// unknown, or expired token — is [ErrUnauthorized].
	ValidateSession(ctx context.Context, token string) (user models.User, session models.Session, fresh bool, err error)

	// InvalidateSession deletes the session record. Idempotent: unknown
	// tokens are not an error.
	InvalidateSession(ctx context.Context, token string) error

	// SessionCookie builds the cookie directive for an existing session.
	SessionCookie(session models.Session) models.SessionCookie

	// BlankSessionCookie builds the directive that clears the session
	// cookie on the client.
	BlankSessionCookie() models.SessionCookie
}

// ContentService owns the portfolio content: the profile singleton and the
// three ordered collections. It validates and normalises request payloads
// before delegating to the repositories.
type ContentService interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error

	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, req models.SkillCreateRequest) error
	DeleteSkill(ctx context.Context, id int64) error

	ListTimeline(ctx context.Context) ([]models.TimelineEntry, error)
	CreateTimelineEntry(ctx context.Context, req models.TimelineRequest) error
	UpdateTimelineEntry(ctx context.Context, id int64, req models.TimelineRequest) error
	DeleteTimelineEntry(ctx context.Context, id int64) error

	ListGear(ctx context.Context) ([]models.GearItem, error)
	CreateGearItem(ctx context.Context, req models.GearCreateRequest) error
	DeleteGearItem(ctx context.Context, id int64) error
}
