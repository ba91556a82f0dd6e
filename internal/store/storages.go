package store

import (
	"github.com/gae-jp/portfolio-api/internal/logger"
)

// Storages bundles every repository behind the shared database handle.
// Constructed once at startup and injected into the service layer.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	ProfileRepository  ProfileRepository
	SkillRepository    SkillRepository
	TimelineRepository TimelineRepository
	GearRepository     GearRepository
}

// NewStorages wires all repositories to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		ProfileRepository:  NewProfileRepository(db, logger),
		SkillRepository:    NewSkillRepository(db, logger),
		TimelineRepository: NewTimelineRepository(db, logger),
		GearRepository:     NewGearRepository(db, logger),
	}
}
