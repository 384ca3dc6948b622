// Package auth is the JWT-cookie gate in front of the editor and the content
// write endpoint. Sessions are a signed, time-boxed token: no revocation
// list, no refresh, expiry is absolute.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"portfolio-cms/internal/usecase"
)

// CookieName carries the session token, http-only.
const CookieName = "admin_token"

// TokenTTL is the absolute session lifetime.
const TokenTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for any login failure. Wrong email and
// wrong password are indistinguishable on purpose, to avoid user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for a missing, malformed, forged or expired
// session token.
var ErrInvalidToken = errors.New("invalid token")

// Service mints and verifies session tokens. Every check re-verifies the
// signature; there is no shared session cache.
type Service struct {
	secret []byte
	admins usecase.AdminStore
	now    func() time.Time
}

func NewService(secret []byte, admins usecase.AdminStore) *Service {
	return &Service{secret: secret, admins: admins, now: time.Now}
}

// Login checks the password against the stored bcrypt hash and mints a signed
// token on success.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"admin": true,
		"email": admin.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks the token's signature and expiry.
func (s *Service) Verify(token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

// HashPassword produces the bcrypt hash stored for an editor account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
