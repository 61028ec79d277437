package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hr-attendance-service/internal/domain/employee"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	employees employee.Repository
	secret    []byte
	ttl       time.Duration
}

func NewUsecase(employees employee.Repository, secret []byte, ttl time.Duration) *Usecase {
	return &Usecase{employees: employees, secret: secret, ttl: ttl}
}

type LoginResult struct {
	Token string `json:"token"`
	EmpID uint64 `json:"emp_id"`
}

// Login checks the password and mints a token whose subject is the
// employee's numeric ID.
func (u *Usecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	e, err := u.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(e.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, EmpID: e.ID}, nil
}
