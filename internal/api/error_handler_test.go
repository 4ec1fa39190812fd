package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{fmt.Errorf("%w: text is required", domain.ErrValidation), http.StatusBadRequest},
		{domain.ErrAlreadyLiked, http.StatusBadRequest},
		{domain.ErrNotLiked, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrCommentNotFound, http.StatusNotFound},
		{domain.ErrProfileNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrGithubProfileNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrVersionConflict, http.StatusConflict},
	}
	for _, c := range cases {
		code, msg := renderError(t, c.err)
		if code != c.code {
			t.Errorf("%v: expected status %d, got %d", c.err, c.code, code)
		}
		if msg == "" {
			t.Errorf("%v: error body must carry a message", c.err)
		}
	}
}

func TestHTTPErrorHandler_ProfileNotFoundMessage(t *testing.T) {
	_, msg := renderError(t, domain.ErrProfileNotFound)
	if msg != "there is no profile for this user" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Errorf("expected (400, invalid payload), got (%d, %q)", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	code, msg := renderError(t, errors.New("dial tcp 10.0.0.7:27017: connection refused"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Errorf("internal details must not leak, got %q", msg)
	}
}
