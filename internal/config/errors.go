// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unsupported driver name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates invalid session settings
	// (for example, non-positive session TTL, or a production profile
	// without a cookie domain).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
