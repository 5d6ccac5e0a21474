package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/core/domain"
)

type stubCartService struct {
	cart      domain.Cart
	err       error
	gotToken  string
	gotID     domain.ID
	gotLine   domain.CartLine
	lastCalls []string
}

func (s *stubCartService) record(op, token string) {
	s.lastCalls = append(s.lastCalls, op)
	s.gotToken = token
}

func (s *stubCartService) GetCart(ctx context.Context, token string) (domain.Cart, error) {
	s.record("get", token)
	return s.cart, s.err
}

func (s *stubCartService) AddToCart(ctx context.Context, token string, line domain.CartLine) (domain.Cart, error) {
	s.record("add", token)
	s.gotLine = line
	return append(s.cart, line), s.err
}

func (s *stubCartService) RemoveFromCart(ctx context.Context, token string, productID domain.ID) (domain.Cart, error) {
	s.record("remove", token)
	s.gotID = productID
	return s.cart, s.err
}

func (s *stubCartService) IncrementQuantity(ctx context.Context, token string, productID domain.ID) (domain.Cart, error) {
	s.record("increment", token)
	s.gotID = productID
	return s.cart, s.err
}

// serveCart routes a single request through the token middleware and the
// cart handler, the way the router mounts them.
func serveCart(t *testing.T, stub *stubCartService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestEcho()
	h := NewCartHandler(stub)
	g := e.Group("/api/me/cart", middleware.AccessToken())
	g.GET("", h.Get)
	g.POST("", h.Add)
	g.DELETE("/:productId", h.Remove)
	g.POST("/:productId", h.Increment)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
		case errors.Is(err, domain.ErrUnauthorized):
			code = http.StatusUnauthorized
		case errors.Is(err, domain.ErrMalformedRequest):
			code = http.StatusBadRequest
		}
		_ = c.NoContent(code)
	}

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_Get_EmptyCartIsArray(t *testing.T) {
	stub := &stubCartService{}
	rec := serveCart(t, stub, http.MethodGet, "/api/me/cart?accessToken=tok", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
	if stub.gotToken != "tok" {
		t.Fatalf("expected token from query, got %q", stub.gotToken)
	}
}

func TestCartHandler_Get_BearerHeader(t *testing.T) {
	stub := &stubCartService{}
	e := newTestEcho()
	h := NewCartHandler(stub)
	e.GET("/api/me/cart", h.Get, middleware.AccessToken())

	req := httptest.NewRequest(http.MethodGet, "/api/me/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer hdr")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotToken != "hdr" {
		t.Fatalf("expected token from header, got %q", stub.gotToken)
	}
}

func TestCartHandler_MissingToken(t *testing.T) {
	stub := &stubCartService{}
	rec := serveCart(t, stub, http.MethodGet, "/api/me/cart", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(stub.lastCalls) != 0 {
		t.Fatalf("service must not be called, got %v", stub.lastCalls)
	}
}

func TestCartHandler_Add_KeepsExtraFields(t *testing.T) {
	stub := &stubCartService{}
	body := `{"product":{"product":{"id":7,"name":"Sunglasses"},"quantity":1,"size":"M"},"note":"gift"}`
	rec := serveCart(t, stub, http.MethodPost, "/api/me/cart?accessToken=tok", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotLine.ProductID() != "7" || stub.gotLine.Item.Quantity != 1 {
		t.Fatalf("unexpected decoded line: %+v", stub.gotLine)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 1 || out[0]["note"] != "gift" {
		t.Fatalf("expected the extra line field to survive, got %s", rec.Body.String())
	}
	item, _ := out[0]["product"].(map[string]any)
	if item["size"] != "M" {
		t.Fatalf("expected the extra item field to survive, got %s", rec.Body.String())
	}
}

func TestCartHandler_Add_InvalidBody(t *testing.T) {
	stub := &stubCartService{}
	rec := serveCart(t, stub, http.MethodPost, "/api/me/cart?accessToken=tok", `[1,2]`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(stub.lastCalls) != 0 {
		t.Fatalf("service must not be called, got %v", stub.lastCalls)
	}
}

func TestCartHandler_RemoveAndIncrement_PassProductID(t *testing.T) {
	cases := []struct {
		method string
		op     string
	}{
		{http.MethodDelete, "remove"},
		{http.MethodPost, "increment"},
	}
	for _, tc := range cases {
		stub := &stubCartService{}
		rec := serveCart(t, stub, tc.method, "/api/me/cart/42?accessToken=tok", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.op, rec.Code)
		}
		if len(stub.lastCalls) != 1 || stub.lastCalls[0] != tc.op {
			t.Fatalf("expected %s, got %v", tc.op, stub.lastCalls)
		}
		if stub.gotID != "42" {
			t.Fatalf("%s: expected product id 42, got %q", tc.op, stub.gotID)
		}
	}
}

func TestCartHandler_ServiceUnauthorized(t *testing.T) {
	stub := &stubCartService{err: domain.ErrUnauthorized}
	rec := serveCart(t, stub, http.MethodGet, "/api/me/cart?accessToken=stale", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
