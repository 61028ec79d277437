package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func mintToken(t *testing.T, secret []byte, empID uint64, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(empID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func setupAuthEcho(apiKey string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.GET("/whoami", func(c echo.Context) error {
		id, ok := ActorEmployeeID(c)
		if !ok {
			return c.JSON(http.StatusOK, map[string]string{"actor": "apikey"})
		}
		return c.JSON(http.StatusOK, map[string]uint64{"actor": id})
	}, Auth(testSecret, apiKey))
	return e
}

func authReq(e *echo.Echo, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	e := setupAuthEcho("")
	tok := mintToken(t, testSecret, 77, time.Hour)

	rec := authReq(e, map[string]string{echo.HeaderAuthorization: "Bearer " + tok})
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); body != "{\"actor\":77}\n" {
		t.Fatalf("body = %q", body)
	}
}

func TestAuth_Rejections(t *testing.T) {
	e := setupAuthEcho("")

	cases := map[string]map[string]string{
		"no header":      nil,
		"not bearer":     {echo.HeaderAuthorization: "Basic abc"},
		"garbage token":  {echo.HeaderAuthorization: "Bearer not.a.jwt"},
		"wrong secret":   {echo.HeaderAuthorization: "Bearer " + mintToken(t, []byte("other"), 1, time.Hour)},
		"expired":        {echo.HeaderAuthorization: "Bearer " + mintToken(t, testSecret, 1, -time.Hour)},
		"non-numeric id": {echo.HeaderAuthorization: "Bearer " + mintStringSubject(t)},
	}
	for name, hdr := range cases {
		rec := authReq(e, hdr)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: want 401, got %d", name, rec.Code)
		}
	}
}

func mintStringSubject(t *testing.T) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestAuth_APIKeyBypass(t *testing.T) {
	e := setupAuthEcho("sekrit")

	rec := authReq(e, map[string]string{"x-api-key": "sekrit"})
	if rec.Code != http.StatusOK {
		t.Fatalf("api key: want 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"actor\":\"apikey\"}\n" {
		t.Fatalf("api-key caller should carry no employee identity: %q", body)
	}

	rec = authReq(e, map[string]string{"x-api-key": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong api key: want 401, got %d", rec.Code)
	}
}

func TestAuth_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	e := setupAuthEcho("")
	rec := authReq(e, map[string]string{"x-api-key": ""})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("empty configured key must not authenticate, got %d", rec.Code)
	}
}

func TestAPIKeyOnly(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.POST("/bootstrap", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "yes"})
	}, APIKeyOnly("sekrit"))

	req := httptest.NewRequest(http.MethodPost, "/bootstrap", nil)
	req.Header.Set("x-api-key", "sekrit")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	// bearer token is not enough for bootstrap routes
	req = httptest.NewRequest(http.MethodPost, "/bootstrap", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+mintToken(t, testSecret, 1, time.Hour))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}
