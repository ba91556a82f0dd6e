package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
//
// Expiry timestamps are persisted as unix seconds (BIGINT) so the column is
// portable across both supported drivers.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session record.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(session.TableName()).
		Columns("id", "user_id", "expires_at").
		Values(session.ID, session.UserID, session.ExpiresAt.Unix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSession retrieves the session with the given token.
// Returns [ErrNoSessionWasFound] when the token is unknown.
func (r *sessionRepository) FindSession(ctx context.Context, id string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "user_id", "expires_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	var expiresAtUnix int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&session.ID, &session.UserID, &expiresAtUnix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	session.ExpiresAt = time.Unix(expiresAtUnix, 0)

	return session, nil
}

// UpdateSessionExpiry moves the expiry of an existing session.
func (r *sessionRepository) UpdateSessionExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Session{}.TableName()).
		Set("expires_at", expiresAt.Unix()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSessionExpiry").Msg("error updating session expiry")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry lies at or before
// the given instant and reports how many rows went away. Used by the
// background sweeper; request-path cleanup stays lazy.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": before.Unix()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}

	return deleted, nil
}

// DeleteSession removes a session record. Deleting a token that does not
// exist is a no-op, which makes logout and lazy expiry cleanup idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
