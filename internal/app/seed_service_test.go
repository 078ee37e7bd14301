package app

import (
	"errors"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

func TestSeedServiceRoundTrip(t *testing.T) {
	svc := NewSeedService("test-secret", "bartog", time.Hour)
	seed := uuid.MustParse("0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0")

	tokenString, err := svc.IssueToken(seed)
	if err != nil {
		t.Fatalf("issue token error: %v", err)
	}

	got, err := svc.VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("verify token error: %v", err)
	}
	if got != seed {
		t.Fatalf("seed = %s, want %s", got, seed)
	}
}

func TestSeedServiceRejectsBadTokens(t *testing.T) {
	seed := NewSeed()
	good := NewSeedService("test-secret", "bartog", time.Hour)

	forged, _ := NewSeedService("other-secret", "bartog", time.Hour).IssueToken(seed)
	expired, _ := NewSeedService("test-secret", "bartog", -time.Hour).IssueToken(seed)
	stranger, _ := NewSeedService("test-secret", "someone-else", time.Hour).IssueToken(seed)

	noSeed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "bartog",
		"sub": seedTokenSubject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := map[string]string{
		"garbage":      "not-a-token",
		"forged":       forged,
		"expired":      expired,
		"wrong issuer": stranger,
		"no seed":      noSeed,
	}

	for name, tokenString := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := good.VerifyToken(tokenString); !errors.Is(err, ErrInvalidSeedToken) {
				t.Fatalf("VerifyToken err = %v, want ErrInvalidSeedToken", err)
			}
		})
	}
}

func TestSeedServiceRequiresConfig(t *testing.T) {
	if _, err := NewSeedService("", "bartog", time.Hour).IssueToken(NewSeed()); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := ParseSeed("nope"); err == nil {
		t.Fatal("expected error for malformed seed text")
	}
}
