package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-that-is-at-least-32-chars!"

func TestGenerateAndValidate(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	token, err := m.Generate(42, 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID() != 42 || claims.RoleID != 1 {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	other := NewTokenManager("another-secret-that-is-32-chars-long", time.Hour)
	foreign, _ := other.Generate(1, 1)

	expiredManager := NewTokenManager(testSecret, time.Hour)
	expiredManager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _ := expiredManager.Generate(1, 1)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RoleID: 1, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RoleID: 1}).SignedString([]byte(testSecret))

	for name, token := range map[string]string{
		"garbage":    "not-a-token",
		"foreign":    foreign,
		"expired":    expired,
		"none":       none,
		"no subject": noSubject,
	} {
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
