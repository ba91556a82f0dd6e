package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

// gearRepository is the SQL-backed implementation of [GearRepository].
type gearRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGearRepository constructs a [GearRepository] backed by the provided
// database connection and logger.
func NewGearRepository(db *DB, logger *logger.Logger) GearRepository {
	logger.Debug().Msg("creating gear repository")
	return &gearRepository{
		db:     db,
		logger: logger,
	}
}

// ListGear returns all gear items sorted ascending by ordering key, ties
// broken by insertion id.
func (r *gearRepository) ListGear(ctx context.Context) ([]models.GearItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "name", orderColumn).
		From(models.GearItem{}.TableName()).
		OrderBy(orderColumn+" ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gearRepository.ListGear").Msg("error querying gear")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.GearItem, 0)
	for rows.Next() {
		var item models.GearItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Order); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// CreateGearItem inserts a new item with a server-assigned ordering key.
// The Order field of the input is ignored.
func (r *gearRepository) CreateGearItem(ctx context.Context, item models.GearItem) error {
	return r.db.createWithNextOrder(ctx, item.TableName(), func(order int64) sq.InsertBuilder {
		return r.db.builder.
			Insert(item.TableName()).
			Columns("name", orderColumn).
			Values(item.Name, order)
	})
}

// DeleteGearItem removes an item. Remaining items are never renumbered.
func (r *gearRepository) DeleteGearItem(ctx context.Context, id int64) error {
	return r.db.deleteByID(ctx, models.GearItem{}.TableName(), id)
}
