package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContentService(profiles *mockProfileRepository, skills *mockSkillRepository, timeline *mockTimelineRepository, gear *mockGearRepository) *contentService {
	return &contentService{
		profileRepository:  profiles,
		skillRepository:    skills,
		timelineRepository: timeline,
		gearRepository:     gear,
		logger:             logger.Nop(),
	}
}

func TestContentService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request reaches the repository with parsed numbers", func(t *testing.T) {
		var updated models.Profile
		profiles := &mockProfileRepository{
			UpdateProfileFn: func(_ context.Context, profile models.Profile) error {
				updated = profile
				return nil
			},
		}
		content := newTestContentService(profiles, nil, nil, nil)

		err := content.UpdateProfile(ctx, models.ProfileUpdateRequest{
			Name:            "gae",
			Roles:           []string{"developer", "designer"},
			ExperienceYears: json.Number("7"),
			ProjectCount:    json.Number("24"),
		})

		require.NoError(t, err)
		assert.Equal(t, models.ProfileID, updated.ID)
		assert.Equal(t, int64(7), updated.ExperienceYears)
		assert.Equal(t, int64(24), updated.ProjectCount)
		assert.Equal(t, []string{"developer", "designer"}, updated.Roles)
	})

	t.Run("non-integer experienceYears is rejected", func(t *testing.T) {
		content := newTestContentService(&mockProfileRepository{}, nil, nil, nil)

		err := content.UpdateProfile(ctx, models.ProfileUpdateRequest{
			Name:            "gae",
			Roles:           []string{"developer"},
			ExperienceYears: json.Number("seven"),
			ProjectCount:    json.Number("24"),
		})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("missing name or roles is rejected", func(t *testing.T) {
		content := newTestContentService(&mockProfileRepository{}, nil, nil, nil)

		err := content.UpdateProfile(ctx, models.ProfileUpdateRequest{
			ExperienceYears: json.Number("7"),
			ProjectCount:    json.Number("24"),
		})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestContentService_CreateSkill(t *testing.T) {
	ctx := context.Background()

	t.Run("valid skill is forwarded without an order", func(t *testing.T) {
		var created models.Skill
		skills := &mockSkillRepository{
			CreateSkillFn: func(_ context.Context, skill models.Skill) error {
				created = skill
				return nil
			},
		}
		content := newTestContentService(nil, skills, nil, nil)

		err := content.CreateSkill(ctx, models.SkillCreateRequest{Name: "Go", Category: models.SkillCategoryLanguages})

		require.NoError(t, err)
		assert.Equal(t, "Go", created.Name)
		assert.Equal(t, models.SkillCategoryLanguages, created.Category)
		assert.Zero(t, created.Order)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		content := newTestContentService(nil, &mockSkillRepository{}, nil, nil)

		err := content.CreateSkill(ctx, models.SkillCreateRequest{Name: "Go", Category: "sports"})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		content := newTestContentService(nil, &mockSkillRepository{}, nil, nil)

		err := content.CreateSkill(ctx, models.SkillCreateRequest{Category: models.SkillCategoryOthers})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestContentService_Timeline(t *testing.T) {
	ctx := context.Background()

	t.Run("empty optional fields become absent values", func(t *testing.T) {
		var created models.TimelineEntry
		timeline := &mockTimelineRepository{
			CreateTimelineEntryFn: func(_ context.Context, entry models.TimelineEntry) error {
				created = entry
				return nil
			},
		}
		content := newTestContentService(nil, nil, timeline, nil)

		err := content.CreateTimelineEntry(ctx, models.TimelineRequest{
			StartDate:   "2024-04",
			Title:       "Freelance",
			Description: "Web development",
		})

		require.NoError(t, err)
		assert.Nil(t, created.EndDate)
		assert.Nil(t, created.Organization)
	})

	t.Run("provided optional fields survive the conversion", func(t *testing.T) {
		var created models.TimelineEntry
		timeline := &mockTimelineRepository{
			CreateTimelineEntryFn: func(_ context.Context, entry models.TimelineEntry) error {
				created = entry
				return nil
			},
		}
		content := newTestContentService(nil, nil, timeline, nil)

		err := content.CreateTimelineEntry(ctx, models.TimelineRequest{
			StartDate:    "2022-04",
			EndDate:      "2024-03",
			Title:        "Engineer",
			Organization: "Acme",
			Description:  "Backend work",
		})

		require.NoError(t, err)
		require.NotNil(t, created.EndDate)
		assert.Equal(t, "2024-03", *created.EndDate)
		require.NotNil(t, created.Organization)
		assert.Equal(t, "Acme", *created.Organization)
	})

	t.Run("update keeps the target id", func(t *testing.T) {
		var updated models.TimelineEntry
		timeline := &mockTimelineRepository{
			UpdateTimelineEntryFn: func(_ context.Context, entry models.TimelineEntry) error {
				updated = entry
				return nil
			},
		}
		content := newTestContentService(nil, nil, timeline, nil)

		err := content.UpdateTimelineEntry(ctx, 42, models.TimelineRequest{
			StartDate:   "2024-04",
			Title:       "Freelance",
			Description: "Web development",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), updated.ID)
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		content := newTestContentService(nil, nil, &mockTimelineRepository{}, nil)

		err := content.CreateTimelineEntry(ctx, models.TimelineRequest{Title: "Freelance"})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestContentService_Gear(t *testing.T) {
	ctx := context.Background()

	t.Run("valid item is forwarded", func(t *testing.T) {
		var created models.GearItem
		gear := &mockGearRepository{
			CreateGearItemFn: func(_ context.Context, item models.GearItem) error {
				created = item
				return nil
			},
		}
		content := newTestContentService(nil, nil, nil, gear)

		err := content.CreateGearItem(ctx, models.GearCreateRequest{Name: "HHKB Professional 2"})

		require.NoError(t, err)
		assert.Equal(t, "HHKB Professional 2", created.Name)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		content := newTestContentService(nil, nil, nil, &mockGearRepository{})

		err := content.CreateGearItem(ctx, models.GearCreateRequest{})

		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("delete delegates the id", func(t *testing.T) {
		var deleted int64
		gear := &mockGearRepository{
			DeleteGearItemFn: func(_ context.Context, id int64) error {
				deleted = id
				return nil
			},
		}
		content := newTestContentService(nil, nil, nil, gear)

		require.NoError(t, content.DeleteGearItem(ctx, 7))
		assert.Equal(t, int64(7), deleted)
	})
}
