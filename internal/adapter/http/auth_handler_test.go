package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	employeeDomain "hr-attendance-service/internal/domain/employee"
	"hr-attendance-service/internal/testutil/employeemock"
	ucAuth "hr-attendance-service/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	emps := &employeemock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*employeeDomain.Employee, error) {
			if email != "sinta@corp.example" {
				return nil, gorm.ErrRecordNotFound
			}
			return &employeeDomain.Employee{ID: 77, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	return NewAuthHandler(ucAuth.NewUsecase(emps, []byte("test-secret"), time.Hour))
}

func doLogin(t *testing.T, h *AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPost, "/login", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	return rec
}

func TestLogin_Success(t *testing.T) {
	h := newAuthHandler(t)
	rec := doLogin(t, h, map[string]string{"email": "sinta@corp.example", "password": "s3cret-pass"})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var res ucAuth.LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if res.EmpID != 77 || res.Token == "" {
		t.Fatalf("result = %+v", res)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newAuthHandler(t)

	cases := map[string]map[string]string{
		"wrong password": {"email": "sinta@corp.example", "password": "wrong-pass"},
		"unknown email":  {"email": "nobody@corp.example", "password": "s3cret-pass"},
	}
	for name, body := range cases {
		rec := doLogin(t, h, body)
		if rec.Code != stdhttp.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, rec.Code)
		}
	}
}

func TestLogin_Validation(t *testing.T) {
	h := newAuthHandler(t)

	rec := doLogin(t, h, map[string]string{"email": "not-an-email", "password": "x"})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
