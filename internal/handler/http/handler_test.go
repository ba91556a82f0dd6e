package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/gae-jp/portfolio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(auth *mockAuthService, content *mockContentService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:    auth,
			ContentService: content,
		},
		logger: logger.Nop(),
	}
}

// sessionAuth returns an auth mock that accepts exactly one token.
func sessionAuth(token string) *mockAuthService {
	return &mockAuthService{
		ValidateSessionFn: func(_ context.Context, got string) (models.User, models.Session, bool, error) {
			if got == token {
				user := models.User{ID: "user-1", Username: "admin"}
				session := models.Session{ID: token, UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
				return user, session, false, nil
			}
			return models.User{}, models.Session{}, false, service.ErrUnauthorized
		},
	}
}

func doRequest(t *testing.T, h *Handler, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContentService{})

	rec := doRequest(t, h, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.HealthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
}

func TestHandler_TraceIDHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContentService{})

	rec := doRequest(t, h, http.MethodGet, "/health", "", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestHandler_TraceIDHeader_Propagated(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContentService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
}

func TestHandler_UnknownRoute(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockContentService{})

	rec := doRequest(t, h, http.MethodGet, "/api/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
