// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, password
// hashing, HTTP response writing, and identifier generation.
package utils

import (
	"context"

	"github.com/gae-jp/portfolio-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the
// authenticated user in the request context.
var UserCtxKey = contextKey("authUser")

// SessionCtxKey is the key under which the auth middleware stores the
// validated session in the request context.
var SessionCtxKey = contextKey("authSession")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSessionFromContext retrieves the validated session from the context.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
