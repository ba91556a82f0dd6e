// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package service

import "errors"

// Sentinel errors returned by service methods. Handlers map them to HTTP
// statuses with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request body fails
	// validation: missing required fields, an unknown skill category, or a
	// numeric field that does not parse to an integer.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for both unknown usernames
	// and wrong passwords. The two cases are deliberately indistinguishable
	// so the endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned by session validation for missing,
	// malformed, unknown, and expired tokens alike. Validation fails closed:
	// no token-related condition surfaces as anything else.
	ErrUnauthorized = errors.New("unauthorized")
)
