// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// orderColumn is the quoted name of the ordering-key column shared by all
// ordered collections. "order" is a reserved word in SQL, hence the quoting.
const orderColumn = `"order"`

// nextOrder computes the next ordering key for table inside tx: one more
// than the current maximum, or 0 for an empty collection.
func nextOrder(ctx context.Context, tx *sql.Tx, builder sq.StatementBuilderType, table string) (int64, error) {
	query, args, err := builder.
		Select("COALESCE(MAX(" + orderColumn + "), -1) + 1").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var order int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&order); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return order, nil
}

// createWithNextOrder runs the read-max-then-insert sequence of an ordered
// collection inside a single transaction, so two concurrent creates cannot
// both observe the same maximum. The insert builder receives the computed
// ordering key.
func (db *DB) createWithNextOrder(ctx context.Context, table string, insert func(order int64) sq.InsertBuilder) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	order, err := nextOrder(ctx, tx, db.builder, table)
	if err != nil {
		return err
	}

	query, args, err := insert(order).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// deleteByID removes a single row by primary key. A missing row is a silent
// success: remaining rows keep their ordering keys and gaps persist.
func (db *DB) deleteByID(ctx context.Context, table string, id int64) error {
	query, args, err := db.builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
