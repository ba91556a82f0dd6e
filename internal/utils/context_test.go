package utils

import (
	"context"
	"testing"
	"time"

	"github.com/gae-jp/portfolio-api/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{ID: "u-1", Username: "admin"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestGetSessionFromContext(t *testing.T) {
	session := models.Session{ID: "token", UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)}
	ctx := context.WithValue(context.Background(), SessionCtxKey, session)

	got, ok := GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, session, got)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)
}
