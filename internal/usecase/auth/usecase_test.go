package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "hr-attendance-service/internal/domain/employee"
	"hr-attendance-service/internal/testutil/employeemock"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var secret = []byte("test-secret")

func repoWithUser(t *testing.T, email, password string) *employeemock.Repo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &employeemock.Repo{
		GetByEmailFn: func(ctx context.Context, got string) (*domain.Employee, error) {
			if got != email {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Employee{ID: 77, Email: email, PasswordHash: string(hash)}, nil
		},
	}
}

func TestLogin_Success(t *testing.T) {
	repo := repoWithUser(t, "a@x.co", "secret123")
	uc := NewUsecase(repo, secret, time.Hour)

	res, err := uc.Login(context.Background(), "a@x.co", "secret123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.EmpID != 77 {
		t.Fatalf("emp id = %d, want 77", res.EmpID)
	}

	tok, err := jwt.ParseWithClaims(res.Token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(*jwt.RegisteredClaims)
	if claims.Subject != "77" {
		t.Fatalf("subject = %q, want 77", claims.Subject)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := repoWithUser(t, "a@x.co", "secret123")
	uc := NewUsecase(repo, secret, time.Hour)

	if _, err := uc.Login(context.Background(), "a@x.co", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := repoWithUser(t, "a@x.co", "secret123")
	uc := NewUsecase(repo, secret, time.Hour)

	if _, err := uc.Login(context.Background(), "nobody@x.co", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}
