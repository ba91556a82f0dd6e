package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

// skillRepository is the SQL-backed implementation of [SkillRepository].
type skillRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSkillRepository constructs a [SkillRepository] backed by the provided
// database connection and logger.
func NewSkillRepository(db *DB, logger *logger.Logger) SkillRepository {
	logger.Debug().Msg("creating skill repository")
	return &skillRepository{
		db:     db,
		logger: logger,
	}
}

// ListSkills returns all skills sorted ascending by ordering key, ties broken
// by insertion id so the order is total and stable.
func (r *skillRepository) ListSkills(ctx context.Context) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", "category", orderColumn).
		From(models.Skill{}.TableName()).
		OrderBy(orderColumn+" ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error querying skills")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Category, &skill.Order); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return skills, nil
}

// CreateSkill inserts a new skill with a server-assigned ordering key.
// The Order field of the input is ignored.
func (r *skillRepository) CreateSkill(ctx context.Context, skill models.Skill) error {
	return r.db.createWithNextOrder(ctx, skill.TableName(), func(order int64) sq.InsertBuilder {
		return r.db.builder.
			Insert(skill.TableName()).
			Columns("name", "category", orderColumn).
			Values(skill.Name, skill.Category, order)
	})
}

// DeleteSkill removes a skill. Remaining skills are never renumbered.
func (r *skillRepository) DeleteSkill(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.Skill{}.TableName(), id)
}
