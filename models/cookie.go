// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package models

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie under which the session token travels.
const SessionCookieName = "auth_session"

// SessionCookie is a cookie directive produced by the auth service.
//
// The service itself never touches an http.ResponseWriter: it returns a
// directive and the transport layer applies it. This keeps session issuance
// and invalidation testable without an HTTP harness.
type SessionCookie struct {
	// Name is the cookie name; always [SessionCookieName] in practice.
	Name string

	// Value is the session token, or the empty string for a clearing cookie.
	Value string

	// Expires is the absolute cookie expiry. Zero for a clearing cookie,
	// which relies on MaxAge instead.
	Expires time.Time

	// MaxAge mirrors the Max-Age attribute: negative deletes the cookie.
	MaxAge int

	// Domain scopes the cookie to the production domain. Empty outside
	// production so the host-only default applies.
	Domain string

	// Secure is set in production only.
	Secure bool
}

// HTTPCookie converts the directive into an *http.Cookie ready for
// http.SetCookie. HttpOnly, SameSite=Lax and Path=/ are fixed attributes of
// the session cookie and are not configurable per directive.
func (c SessionCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     "/",
		Domain:   c.Domain,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
