package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect/devconnect-api/internal/core/domain"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo) {
	t.Helper()
	users := newStubUserRepo()
	return NewAuthService(users, testSecret, time.Hour), users
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newAuthFixture(t)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
	if user.ID == "" {
		t.Error("user must have an ID after creation")
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash must verify the original password")
	}
	if !strings.HasPrefix(user.AvatarURL, "https://www.gravatar.com/avatar/") {
		t.Errorf("avatar must be a gravatar URL, got %q", user.AvatarURL)
	}
	if _, ok := repo.byEmail["alice@example.com"]; !ok {
		t.Error("user not persisted")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	cases := []struct {
		name, email, password string
	}{
		{"", "alice@example.com", "hunter22"},   // name missing
		{"Alice", "", "hunter22"},               // email missing
		{"Alice", "not-an-email", "hunter22"},   // email without @
		{"Alice", "alice@example.com", "short"}, // password too short
	}
	for _, c := range cases {
		_, _, err := svc.Register(context.Background(), c.name, c.email, c.password)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register(%q, %q, %q): expected ErrValidation, got %v", c.name, c.email, c.password, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "Other Alice", "alice@example.com", "hunter23")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, registered, _ := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")

	token, user, err := svc.Login(context.Background(), "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %q, got %q", registered.ID, user.ID)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != registered.ID {
		t.Errorf("expected user_id claim %q, got %v", registered.ID, claims["user_id"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, _, _ = svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// An unknown email reports the same error as a wrong password so the response
// does not leak which accounts exist.
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Current(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, registered, _ := svc.Register(context.Background(), "Alice", "alice@example.com", "hunter22")

	user, err := svc.Current(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("wrong user returned: %+v", user)
	}

	if _, err := svc.Current(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	a := gravatarURL("Alice@Example.com ")
	b := gravatarURL("alice@example.com")
	if a != b {
		t.Errorf("gravatar URL must be case- and whitespace-insensitive: %q vs %q", a, b)
	}
}
