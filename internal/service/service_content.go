package service

import (
	"context"
	"fmt"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/store"
	"github.com/gae-jp/portfolio-api/models"
)

// contentService is the concrete implementation of [ContentService].
// It validates request payloads, normalises optional fields, and delegates
// persistence to the repositories.
type contentService struct {
	profileRepository  store.ProfileRepository
	skillRepository    store.SkillRepository
	timelineRepository store.TimelineRepository
	gearRepository     store.GearRepository

	logger *logger.Logger
}

// NewContentService constructs a [ContentService] wired to the content
// repositories.
func NewContentService(storages *store.Storages, logger *logger.Logger) ContentService {
	return &contentService{
		profileRepository:  storages.ProfileRepository,
		skillRepository:    storages.SkillRepository,
		timelineRepository: storages.TimelineRepository,
		gearRepository:     storages.GearRepository,
		logger:             logger,
	}
}

// GetProfile returns the singleton profile row.
// [store.ErrProfileNotFound] passes through for the handler to map to 404.
func (c *contentService) GetProfile(ctx context.Context) (models.Profile, error) {
	return c.profileRepository.GetProfile(ctx)
}

// UpdateProfile validates and applies a profile update.
//
// The numeric fields arrive as json.Number so the admin UI may send numbers
// or numeric strings; anything that does not parse to an integer is rejected
// with [ErrInvalidDataProvided] instead of being coerced to zero.
func (c *contentService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) error {
	log := logger.FromContext(ctx)

	if req.Name == "" || len(req.Roles) == 0 {
		return ErrInvalidDataProvided
	}

	experienceYears, err := req.ExperienceYears.Int64()
	if err != nil {
		log.Debug().Str("experienceYears", req.ExperienceYears.String()).Msg("non-integer experienceYears rejected")
		return fmt.Errorf("%w: experienceYears must be an integer", ErrInvalidDataProvided)
	}

	projectCount, err := req.ProjectCount.Int64()
	if err != nil {
		log.Debug().Str("projectCount", req.ProjectCount.String()).Msg("non-integer projectCount rejected")
		return fmt.Errorf("%w: projectCount must be an integer", ErrInvalidDataProvided)
	}

	profile := models.Profile{
		ID:              models.ProfileID,
		Name:            req.Name,
		Roles:           req.Roles,
		ExperienceYears: experienceYears,
		ProjectCount:    projectCount,
	}

	return c.profileRepository.UpdateProfile(ctx, profile)
}

func (c *contentService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return c.skillRepository.ListSkills(ctx)
}

// CreateSkill validates the payload and inserts a new skill; the ordering
// key is assigned by the repository.
func (c *contentService) CreateSkill(ctx context.Context, req models.SkillCreateRequest) error {
	if req.Name == "" || !models.ValidSkillCategory(req.Category) {
		return ErrInvalidDataProvided
	}

	return c.skillRepository.CreateSkill(ctx, models.Skill{
		Name:     req.Name,
		Category: req.Category,
	})
}

func (c *contentService) DeleteSkill(ctx context.Context, id int64) error {
	return c.skillRepository.DeleteSkill(ctx, id)
}

func (c *contentService) ListTimeline(ctx context.Context) ([]models.TimelineEntry, error) {
	return c.timelineRepository.ListTimeline(ctx)
}

// CreateTimelineEntry validates the payload and inserts a new entry.
// Empty endDate/organization become absent values, keeping ongoing entries
// distinct from entries with empty strings.
func (c *contentService) CreateTimelineEntry(ctx context.Context, req models.TimelineRequest) error {
	entry, err := timelineEntryFromRequest(req)
	if err != nil {
		return err
	}

	return c.timelineRepository.CreateTimelineEntry(ctx, entry)
}

// UpdateTimelineEntry replaces the mutable fields of an entry; id and
// ordering key are untouched.
func (c *contentService) UpdateTimelineEntry(ctx context.Context, id int64, req models.TimelineRequest) error {
	entry, err := timelineEntryFromRequest(req)
	if err != nil {
		return err
	}
	entry.ID = id

	return c.timelineRepository.UpdateTimelineEntry(ctx, entry)
}

func (c *contentService) DeleteTimelineEntry(ctx context.Context, id int64) error {
	return c.timelineRepository.DeleteTimelineEntry(ctx, id)
}

func (c *contentService) ListGear(ctx context.Context) ([]models.GearItem, error) {
	return c.gearRepository.ListGear(ctx)
}

func (c *contentService) CreateGearItem(ctx context.Context, req models.GearCreateRequest) error {
	if req.Name == "" {
		return ErrInvalidDataProvided
	}

	return c.gearRepository.CreateGearItem(ctx, models.GearItem{Name: req.Name})
}

func (c *contentService) DeleteGearItem(ctx context.Context, id int64) error {
	return c.gearRepository.DeleteGearItem(ctx, id)
}

// timelineEntryFromRequest validates a timeline payload and converts it to
// the persistence model.
func timelineEntryFromRequest(req models.TimelineRequest) (models.TimelineEntry, error) {
	if req.StartDate == "" || req.Title == "" || req.Description == "" {
		return models.TimelineEntry{}, ErrInvalidDataProvided
	}

	return models.TimelineEntry{
		StartDate:    req.StartDate,
		EndDate:      normalizeOptional(req.EndDate),
		Title:        req.Title,
		Organization: normalizeOptional(req.Organization),
		Description:  req.Description,
	}, nil
}

// normalizeOptional maps the empty string to an absent value.
func normalizeOptional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
