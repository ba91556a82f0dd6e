// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/models"
)

func TestCreateSession_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	expiresAt := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second)
	session := models.Session{ID: "token-1", UserID: "u-1", ExpiresAt: expiresAt}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.ID, session.UserID, expiresAt.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateSession(context.Background(), session))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindSession_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "expires_at"}).
		AddRow("token-1", "u-1", expiresAt.Unix())

	mock.ExpectQuery("SELECT id, user_id, expires_at FROM sessions").
		WithArgs("token-1").
		WillReturnRows(rows)

	session, err := repo.FindSession(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", session.UserID)
	assert.True(t, session.ExpiresAt.Equal(expiresAt), "expiry must survive the unix round trip")
}

func TestFindSession_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, expires_at FROM sessions").
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSession(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNoSessionWasFound)
}

func TestUpdateSessionExpiry(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	newExpiry := time.Now().Add(30 * 24 * time.Hour)

	mock.ExpectExec("UPDATE sessions SET expires_at").
		WithArgs(newExpiry.Unix(), "token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateSessionExpiry(context.Background(), "token-1", newExpiry))
}

func TestDeleteExpiredSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	cutoff := time.Now()

	mock.ExpectExec("DELETE FROM sessions WHERE expires_at").
		WithArgs(cutoff.Unix()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredSessions(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	// zero rows affected is still a success
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("already-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteSession(context.Background(), "already-gone"))
}
