package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cdf-insights/internal/config"
	"cdf-insights/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrSigningDisabled   = errors.New("admin token secret is not configured")
	ErrUnknownRole       = errors.New("unknown role")
)

// clockSkew tolerated on exp and nbf
const clockSkew = 30 * time.Second

// TokenService signs and checks the HS256 tokens guarding the admin routes.
// Without a secret both directions fail with ErrSigningDisabled.
type TokenService struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

func NewTokenService(cfg *config.SecurityConfig) TokenServiceInterface {
	return &TokenService{
		secret: []byte(cfg.AdminTokenSecret),
		issuer: cfg.AdminTokenIssuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.AdminTokenIssuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// GenerateToken issues a token for subject with role, valid for ttl
func (ts *TokenService) GenerateToken(subject, role string, ttl time.Duration) (string, time.Time, error) {
	if len(ts.secret) == 0 {
		return "", time.Time{}, ErrSigningDisabled
	}
	if role != models.RoleAdmin && role != models.RoleViewer {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    ts.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature, algorithm, expiry and issuer
func (ts *TokenService) ValidateToken(tokenString string) (*models.AdminClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}
	if len(ts.secret) == 0 {
		return nil, ErrSigningDisabled
	}

	claims := &models.AdminClaims{}
	_, err := ts.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.secret, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}

// ExtractTokenFromHeader returns the credentials of a "Bearer <token>" header.
// The scheme is case-insensitive.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
