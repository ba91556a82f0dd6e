package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

// profileRepository is the SQL-backed implementation of [ProfileRepository].
//
// The profiles table holds exactly one row with a fixed primary key
// ([models.ProfileID]); the repository only ever reads and updates that row.
// The roles list is persisted as a JSON-encoded text column.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetProfile returns the singleton profile row.
// Returns [ErrProfileNotFound] when the row has not been created yet.
func (r *profileRepository) GetProfile(ctx context.Context) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", "roles", "experience_years", "project_count").
		From(models.Profile{}.TableName()).
		Where(sq.Eq{"id": models.ProfileID}).
		ToSql()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	var rolesJSON string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&profile.ID, &profile.Name, &rolesJSON,
		&profile.ExperienceYears, &profile.ProjectCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(rolesJSON), &profile.Roles); err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error decoding roles column")
		return models.Profile{}, fmt.Errorf("error decoding roles column: %w", err)
	}

	return profile, nil
}

// UpdateProfile rewrites every mutable field of the singleton row.
// The id is fixed and never changes.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	rolesJSON, err := json.Marshal(profile.Roles)
	if err != nil {
		return fmt.Errorf("error encoding roles column: %w", err)
	}

	query, args, err := r.db.builder.
		Update(models.Profile{}.TableName()).
		Set("name", profile.Name).
		Set("roles", string(rolesJSON)).
		Set("experience_years", profile.ExperienceYears).
		Set("project_count", profile.ProjectCount).
		Where(sq.Eq{"id": models.ProfileID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Msg("error updating profile")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
