// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 gae-jp.net

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/gae-jp/portfolio-api/internal/store"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidID: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthorized:        http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrProfileNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// User-facing messages for the mapped statuses. Invalid-credential and
// unauthorized replies stay generic so responses carry no account or
// session details.
var errorMessageMap = map[int]string{
	http.StatusBadRequest:   "Invalid request",
	http.StatusUnauthorized: "Unauthorized",
	http.StatusConflict:     "Already exists",
	http.StatusNotFound:     "Not found",
}

// errInvalidJSON marks a body decoding failure as bad input so the mapper
// answers 400.
func errInvalidJSON(err error) error {
	return fmt.Errorf("%w: malformed JSON body: %s", service.ErrInvalidDataProvided, err)
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status code and writes the uniform JSON error
// body. In production a 500 carries a generic message instead of the error
// text; outside production the error text is passed through to ease
// debugging.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message, known := errorMessageMap[status]
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		message = "Invalid credentials"
	case status == http.StatusInternalServerError || !known:
		status = http.StatusInternalServerError
		if h.production {
			message = http.StatusText(http.StatusInternalServerError)
		} else {
			message = err.Error()
		}
		log.Err(err).Msg("request failed with internal error")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
