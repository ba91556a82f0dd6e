// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package models

import "time"

// Session represents an authenticated browser session stored in the database.
// Sessions are created only by a successful login and destroyed by explicit
// logout or lazily when an expired session is presented for validation.
type Session struct {
	// ID is the opaque session token handed to the client inside the
	// session cookie. Generated from crypto/rand; never reused.
	ID string `json:"id"`

	// UserID references the owning user record.
	UserID string `json:"user_id"`

	// ExpiresAt is the absolute expiry time of the session.
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
