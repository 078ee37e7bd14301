package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

// ErrInvalidSeedToken is returned for tokens that are malformed, forged,
// expired or carry no seed.
var ErrInvalidSeedToken = errors.New("invalid seed token")

const seedTokenSubject = "bartog_seed"

// SeedService signs match seeds so players can share a table and replay it
// card for card.
type SeedService struct {
	secret string
	issuer string
	ttl    time.Duration
}

func NewSeedService(secret, issuer string, ttl time.Duration) *SeedService {
	return &SeedService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// NewSeed returns a fresh random 16-byte seed.
func NewSeed() uuid.UUID {
	return uuid.New()
}

// ParseSeed reads a seed in its text form.
func ParseSeed(text string) (uuid.UUID, error) {
	seed, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid seed %q: %w", text, err)
	}
	return seed, nil
}

// IssueToken signs seed.
func (s *SeedService) IssueToken(seed uuid.UUID) (string, error) {
	if s == nil {
		return "", fmt.Errorf("seed service is nil")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("seed token config is incomplete")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  s.issuer,
		"sub":  seedTokenSubject,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"seed": seed.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifyToken checks the signature, issuer and expiry of tokenString and
// returns the seed it carries.
func (s *SeedService) VerifyToken(tokenString string) (uuid.UUID, error) {
	if s == nil || s.secret == "" {
		return uuid.Nil, fmt.Errorf("seed token config is incomplete")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSeedToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidSeedToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return uuid.Nil, fmt.Errorf("%w: wrong issuer", ErrInvalidSeedToken)
	}
	if sub, _ := claims["sub"].(string); sub != seedTokenSubject {
		return uuid.Nil, fmt.Errorf("%w: wrong subject", ErrInvalidSeedToken)
	}

	text, _ := claims["seed"].(string)
	seed, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidSeedToken, err)
	}
	return seed, nil
}
