// Package jwt issues and checks the HS256 bearer tokens handed to guests and the
// front desk. Access and refresh tokens are signed with different secrets, so one can
// never stand in for the other.
package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"grandhotel/config"
	"grandhotel/infras/otel"
	"grandhotel/shared/constant"
	"grandhotel/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	otelScopeName = "jwt"
	bearerPrefix  = "Bearer "
	leeway        = 30 * time.Second
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

type Claims struct {
	UserID  string    `json:"user_id"`
	Name    string    `json:"name"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, userID, name, role string) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type signer struct {
	secret []byte
	ttl    time.Duration
}

type Service struct {
	issuer  string
	signers map[TokenType]signer
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) JWT {
	return &Service{
		issuer: cfg.App.Name,
		signers: map[TokenType]signer{
			AccessToken:  {secret: []byte(cfg.JWT.AccessSecret), ttl: time.Duration(cfg.JWT.AccessExpireMin) * time.Minute},
			RefreshToken: {secret: []byte(cfg.JWT.RefreshSecret), ttl: time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute},
		},
		otel: otl,
	}
}

func (s *Service) GenerateTokenPair(ctx context.Context, userID, name, role string) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GenerateTokenPair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	pair = &TokenPair{TokenType: strings.TrimSpace(bearerPrefix)}

	if pair.AccessToken, err = s.sign(Claims{UserID: userID, Name: name, Role: role, Type: AccessToken}, now); err != nil {
		return nil, err
	}

	if pair.RefreshToken, err = s.sign(Claims{UserID: userID, Name: name, Role: role, Type: RefreshToken}, now); err != nil {
		return nil, err
	}

	pair.ExpiresIn = int64(s.signers[AccessToken].ttl.Seconds())

	return pair, nil
}

func (s *Service) sign(claims Claims, now time.Time) (string, error) {
	sig, ok := s.signers[claims.Type]
	if !ok || len(sig.secret) == 0 {
		return "", fmt.Errorf("no secret configured for %s tokens", claims.Type)
	}

	claims.TokenID = uuid.NewString()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        claims.TokenID,
		Subject:   claims.UserID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sig.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sig.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", claims.Type, err)
	}

	return signed, nil
}

// ValidateToken checks the signature, expiry, issuer and token type.
func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (claims *Claims, err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ValidateToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sig, ok := s.signers[tokenType]
	if !ok {
		return nil, ErrInvalidClaim
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims = &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return sig.secret, nil
	}, opts...)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// RefreshTokens trades a valid refresh token for a new pair with the same identity.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, claims.UserID, claims.Name, claims.Role)
}

func ExtractTokenFromHeader(header string) (string, error) {
	if header == constant.Empty {
		return "", errors.New("authorization header is required")
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header must be a bearer token")
	}

	return token, nil
}
