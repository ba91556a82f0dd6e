// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package models

// User represents an account entity used for authentication.
// Exactly one administrator account is expected in practice, but the model
// does not enforce that; any number of users may exist.
type User struct {
	// ID is the opaque unique identifier of the user, assigned at creation.
	ID string `json:"id"`

	// Username is the unique login name used during authentication.
	Username string `json:"username"`

	// HashedPassword stores the argon2id-encoded password hash.
	// Never exposed via JSON and never compared outside the auth service.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
