package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

func authRequest(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, interface{}) {
	t.Helper()
	e := echo.New()
	var gotUserID interface{}
	e.GET("/protected", func(c echo.Context) error {
		gotUserID = c.Get("user_id")
		return c.NoContent(http.StatusOK)
	}, JWTAuth(secret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 42, 5)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, userID := authRequest(t, "secret", "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	// sub travels through JSON claims, so it comes back as float64.
	sub, ok := userID.(float64)
	if !ok || sub != 42 {
		t.Errorf("user_id = %v (%T), want 42", userID, userID)
	}
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := authRequest(t, "secret", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestJWTAuthNotBearer(t *testing.T) {
	rec, _ := authRequest(t, "secret", "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, 5)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, _ := authRequest(t, "secret", "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken("secret", 42, -5)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	rec, _ := authRequest(t, "secret", "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec, _ := authRequest(t, "secret", "Bearer not.a.jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}
