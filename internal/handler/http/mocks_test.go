package http

import (
	"context"

	"github.com/gae-jp/portfolio-api/models"
)

// mockAuthService is a function-field test double for service.AuthService.
// Unset cookie builders fall back to plain directives so most tests only
// wire the methods they exercise.
type mockAuthService struct {
	LoginFn              func(ctx context.Context, username, password string) (models.User, error)
	CreateUserFn         func(ctx context.Context, username, password string) (models.User, error)
	CreateSessionFn      func(ctx context.Context, userID string) (models.Session, models.SessionCookie, error)
	ValidateSessionFn    func(ctx context.Context, token string) (models.User, models.Session, bool, error)
	InvalidateSessionFn  func(ctx context.Context, token string) error
	SessionCookieFn      func(session models.Session) models.SessionCookie
	BlankSessionCookieFn func() models.SessionCookie
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.LoginFn(ctx, username, password)
}

func (m *mockAuthService) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	return m.CreateUserFn(ctx, username, password)
}

func (m *mockAuthService) CreateSession(ctx context.Context, userID string) (models.Session, models.SessionCookie, error) {
	return m.CreateSessionFn(ctx, userID)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token string) (models.User, models.Session, bool, error) {
	return m.ValidateSessionFn(ctx, token)
}

func (m *mockAuthService) InvalidateSession(ctx context.Context, token string) error {
	return m.InvalidateSessionFn(ctx, token)
}

func (m *mockAuthService) SessionCookie(session models.Session) models.SessionCookie {
	if m.SessionCookieFn != nil {
		return m.SessionCookieFn(session)
	}
	return models.SessionCookie{Name: models.SessionCookieName, Value: session.ID, Expires: session.ExpiresAt}
}

func (m *mockAuthService) BlankSessionCookie() models.SessionCookie {
	if m.BlankSessionCookieFn != nil {
		return m.BlankSessionCookieFn()
	}
	return models.SessionCookie{Name: models.SessionCookieName, MaxAge: -1}
}

// mockContentService is a function-field test double for service.ContentService.
type mockContentService struct {
	GetProfileFn    func(ctx context.Context) (models.Profile, error)
	UpdateProfileFn func(ctx context.Context, req models.ProfileUpdateRequest) error

	ListSkillsFn  func(ctx context.Context) ([]models.Skill, error)
	CreateSkillFn func(ctx context.Context, req models.SkillCreateRequest) error
	DeleteSkillFn func(ctx context.Context, id int64) error

	ListTimelineFn        func(ctx context.Context) ([]models.TimelineEntry, error)
	CreateTimelineEntryFn func(ctx context.Context, req models.TimelineRequest) error
	UpdateTimelineEntryFn func(ctx context.Context, id int64, req models.TimelineRequest) error
	DeleteTimelineEntryFn func(ctx context.Context, id int64) error

	ListGearFn      func(ctx context.Context) ([]models.GearItem, error)
	CreateGearItemFn func(ctx context.Context, req models.GearCreateRequest) error
	DeleteGearItemFn func(ctx context.Context, id int64) error
}

func (m *mockContentService) GetProfile(ctx context.Context) (models.Profile, error) {
	return m.GetProfileFn(ctx)
}

func (m *mockContentService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	return m.UpdateProfileFn(ctx, req)
}

func (m *mockContentService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return m.ListSkillsFn(ctx)
}

func (m *mockContentService) CreateSkill(ctx context.Context, req models.SkillCreateRequest) error {
	return m.CreateSkillFn(ctx, req)
}

func (m *mockContentService) DeleteSkill(ctx context.Context, id int64) error {
	return m.DeleteSkillFn(ctx, id)
}

func (m *mockContentService) ListTimeline(ctx context.Context) ([]models.TimelineEntry, error) {
	return m.ListTimelineFn(ctx)
}

func (m *mockContentService) CreateTimelineEntry(ctx context.Context, req models.TimelineRequest) error {
	return m.CreateTimelineEntryFn(ctx, req)
}

func (m *mockContentService) UpdateTimelineEntry(ctx context.Context, id int64, req models.TimelineRequest) error {
	return m.UpdateTimelineEntryFn(ctx, id, req)
}

func (m *mockContentService) DeleteTimelineEntry(ctx context.Context, id int64) error {
	return m.DeleteTimelineEntryFn(ctx, id)
}

func (m *mockContentService) ListGear(ctx context.Context) ([]models.GearItem, error) {
	return m.ListGearFn(ctx)
}

func (m *mockContentService) CreateGearItem(ctx context.Context, req models.GearCreateRequest) error {
	return m.CreateGearItemFn(ctx, req)
}

func (m *mockContentService) DeleteGearItem(ctx context.Context, id int64) error {
	return m.DeleteGearItemFn(ctx, id)
}
