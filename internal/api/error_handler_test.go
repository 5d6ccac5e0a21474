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

	"github.com/storefront/storefront-api/internal/core/domain"
)

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) CaptureError(err error) { r.errs = append(r.errs, err) }

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		message  string
		reported bool
	}{
		{"malformed", fmt.Errorf("%w: username is required", domain.ErrMalformedRequest), http.StatusBadRequest, "malformed request: username is required", false},
		{"locked out", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many failed login attempts", false},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password", false},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "you need to log in to access the cart", false},
		{"not found", fmt.Errorf("brands: %w", domain.ErrNotFound), http.StatusNotFound, "not found", false},
		{"echo error", echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported Media Type"), http.StatusUnsupportedMediaType, "Unsupported Media Type", false},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			handle := NewHTTPErrorHandler(zerolog.Nop(), reporter)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handle(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp.Error)
			}
			if got := len(reporter.errs) == 1; got != tc.reported {
				t.Fatalf("reported=%v, want %v", got, tc.reported)
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop(), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.String(http.StatusOK, "done")

	handle(domain.ErrUnauthorized, c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was modified: %d %q", rec.Code, rec.Body.String())
	}
}
