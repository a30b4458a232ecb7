package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"cyclebook/config"
	"cyclebook/shared/timezone"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("no token provided")
)

const defaultExpireMin = 60

// Claims binds a session to an account and its role.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenID is the jti claim, used for revocation.
func (c *Claims) TokenID() string {
	return c.ID
}

func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

type JWT interface {
	GenerateToken(userID, role string) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	secret    []byte
	issuer    string
	expireMin int
}

func New(cfg *config.Config) JWT {
	expireMin := cfg.JWT.ExpireMin
	if expireMin <= 0 {
		expireMin = defaultExpireMin
	}

	return &Service{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.App.Name,
		expireMin: expireMin,
	}
}

// GenerateToken signs an HS256 token for the account.
func (s *Service) GenerateToken(userID, role string) (*Token, error) {
	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.expireMin) * time.Minute)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   userID,
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signed, ID: tokenID, ExpiresAt: expiresAt}, nil
}

// ValidateToken returns ErrExpiredToken for expired tokens and ErrInvalidToken for anything else that fails.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractTokenFromHeader takes the credential part of an "Authorization: Bearer <token>" header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrMissingToken
	}

	if !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
