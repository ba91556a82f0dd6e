package store

import (
	"context"
	"time"

	"github.com/gae-jp/portfolio-api/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// SessionRepository persists browser sessions.
//
// DeleteSession is idempotent: deleting an absent token is not an error.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, id string) (models.Session, error)
	UpdateSessionExpiry(ctx context.Context, id string, expiresAt time.Time) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

// ProfileRepository accesses the singleton profile row.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) error
}

// SkillRepository is the ordered skills collection.
//
// CreateSkill assigns the ordering key itself: max existing order plus one,
// computed and inserted inside a single transaction.
type SkillRepository interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	CreateSkill(ctx context.Context, skill models.Skill) error
	DeleteSkill(ctx context.Context, id int64) error
}

// TimelineRepository is the ordered timeline collection. Unlike the other
// collections, entries can also be replaced in full (order and id excepted).
type TimelineRepository interface {
	ListTimeline(ctx context.Context) ([]models.TimelineEntry, error)
	CreateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error
	UpdateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error
	DeleteTimelineEntry(ctx context.Context, id int64) error
}

// GearRepository is the ordered gear collection.
type GearRepository interface {
	ListGear(ctx context.Context) ([]models.GearItem, error)
	CreateGearItem(ctx context.Context, item models.GearItem) error
	DeleteGearItem(ctx context.Context, id int64) error
}
