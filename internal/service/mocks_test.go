// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package service

import (
	"context"
	"time"

	"github.com/gae-jp/portfolio-api/models"
)

// mockUserRepository is a function-field test double for store.UserRepository.
type mockUserRepository struct {
	CreateUserFn         func(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	FindUserByIDFn       func(ctx context.Context, id string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.FindUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return m.FindUserByIDFn(ctx, id)
}

// mockSessionRepository is a function-field test double for store.SessionRepository.
type mockSessionRepository struct {
	CreateSessionFn       func(ctx context.Context, session models.Session) error
	FindSessionFn         func(ctx context.Context, id string) (models.Session, error)
	UpdateSessionExpiryFn   func(ctx context.Context, id string, expiresAt time.Time) error
	DeleteSessionFn         func(ctx context.Context, id string) error
	DeleteExpiredSessionsFn func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return m.CreateSessionFn(ctx, session)
}

func (m *mockSessionRepository) FindSession(ctx context.Context, id string) (models.Session, error) {
	return m.FindSessionFn(ctx, id)
}

func (m *mockSessionRepository) UpdateSessionExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	return m.UpdateSessionExpiryFn(ctx, id, expiresAt)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, id string) error {
	return m.DeleteSessionFn(ctx, id)
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	return m.DeleteExpiredSessionsFn(ctx, before)
}

// mockProfileRepository is a function-field test double for store.ProfileRepository.
type mockProfileRepository struct {
	GetProfileFn    func(ctx context.Context) (models.Profile, error)
	UpdateProfileFn func(ctx context.Context, profile models.Profile) error
}

func (m *mockProfileRepository) GetProfile(ctx context.Context) (models.Profile, error) {
	return m.GetProfileFn(ctx)
}

func (m *mockProfileRepository) UpdateProfile(ctx context.Context, profile models.Profile) error {
	return m.UpdateProfileFn(ctx, profile)
}

// mockSkillRepository is a function-field test double for store.SkillRepository.
type mockSkillRepository struct {
	ListSkillsFn  func(ctx context.Context) ([]models.Skill, error)
	CreateSkillFn func(ctx context.Context, skill models.Skill) error
	DeleteSkillFn func(ctx context.Context, id int64) error
}

func (m *mockSkillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return m.ListSkillsFn(ctx)
}

func (m *mockSkillRepository) CreateSkill(ctx context.Context, skill models.Skill) error {
	return m.CreateSkillFn(ctx, skill)
}

func (m *mockSkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	return m.DeleteSkillFn(ctx, id)
}

// mockTimelineRepository is a function-field test double for store.TimelineRepository.
type mockTimelineRepository struct {
	ListTimelineFn        func(ctx context.Context) ([]models.TimelineEntry, error)
	CreateTimelineEntryFn func(ctx context.Context, entry models.TimelineEntry) error
	UpdateTimelineEntryFn func(ctx context.Context, entry models.TimelineEntry) error
	DeleteTimelineEntryFn func(ctx context.Context, id int64) error
}

func (m *mockTimelineRepository) ListTimeline(ctx context.Context) ([]models.TimelineEntry, error) {
	return m.ListTimelineFn(ctx)
}

func (m *mockTimelineRepository) CreateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error {
	return m.CreateTimelineEntryFn(ctx, entry)
}

func (m *mockTimelineRepository) UpdateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error {
	return m.UpdateTimelineEntryFn(ctx, entry)
}

func (m *mockTimelineRepository) DeleteTimelineEntry(ctx context.Context, id int64) error {
	return m.DeleteTimelineEntryFn(ctx, id)
}

// mockGearRepository is a function-field test double for store.GearRepository.
type mockGearRepository struct {
	ListGearFn      func(ctx context.Context) ([]models.GearItem, error)
	CreateGearItemFn func(ctx context.Context, item models.GearItem) error
	DeleteGearItemFn func(ctx context.Context, id int64) error
}

func (m *mockGearRepository) ListGear(ctx context.Context) ([]models.GearItem, error) {
	return m.ListGearFn(ctx)
}

func (m *mockGearRepository) CreateGearItem(ctx context.Context, item models.GearItem) error {
	return m.CreateGearItemFn(ctx, item)
}

func (m *mockGearRepository) DeleteGearItem(ctx context.Context, id int64) error {
	return m.DeleteGearItemFn(ctx, id)
}
