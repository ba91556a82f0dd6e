// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package http

import "errors"

// Sentinel errors used when reading the session cookie and URL parameters.
// Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request carries no session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidID is returned when a path id parameter is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id parameter")
)
