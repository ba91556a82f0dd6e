package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

// timelineRepository is the SQL-backed implementation of [TimelineRepository].
//
// Optional columns (end_date, organization) are stored as NULL when the
// corresponding model pointers are nil, keeping "ongoing" entries distinct
// from entries with an empty string.
type timelineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTimelineRepository constructs a [TimelineRepository] backed by the
// provided database connection and logger.
func NewTimelineRepository(db *DB, logger *logger.Logger) TimelineRepository {
	logger.Debug().Msg("creating timeline repository")
	return &timelineRepository{
		db:     db,
		logger: logger,
	}
}

// ListTimeline returns all entries sorted ascending by ordering key, ties
// broken by insertion id.
func (r *timelineRepository) ListTimeline(ctx context.Context) ([]models.TimelineEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "start_date", "end_date", "title", "organization", "description", orderColumn).
		From(models.TimelineEntry{}.TableName()).
		OrderBy(orderColumn+" ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*timelineRepository.ListTimeline").Msg("error querying timeline")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.TimelineEntry, 0)
	for rows.Next() {
		var entry models.TimelineEntry
		if err := rows.Scan(&entry.ID, &entry.StartDate, &entry.EndDate, &entry.Title,
			&entry.Organization, &entry.Description, &entry.Order); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// CreateTimelineEntry inserts a new entry with a server-assigned ordering
// key. The Order field of the input is ignored.
func (r *timelineRepository) CreateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error {
	return r.db.createWithNextOrder(ctx, entry.TableName(), func(order int64) sq.InsertBuilder {
		return r.db.builder.
			Insert(entry.TableName()).
			Columns("start_date", "end_date", "title", "organization", "description", orderColumn).
			Values(entry.StartDate, entry.EndDate, entry.Title, entry.Organization, entry.Description, order)
	})
}

// UpdateTimelineEntry replaces every mutable field of an existing entry.
// The id and the ordering key are never touched.
func (r *timelineRepository) UpdateTimelineEntry(ctx context.Context, entry models.TimelineEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(entry.TableName()).
		Set("start_date", entry.StartDate).
		Set("end_date", entry.EndDate).
		Set("title", entry.Title).
		Set("organization", entry.Organization).
		Set("description", entry.Description).
		Where(sq.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*timelineRepository.UpdateTimelineEntry").Msg("error updating timeline entry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteTimelineEntry removes an entry. Remaining entries are never
// renumbered.
func (r *timelineRepository) DeleteTimelineEntry(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.TimelineEntry{}.TableName(), id)
}
