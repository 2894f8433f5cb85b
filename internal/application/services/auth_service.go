package services

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/hr-gateway/internal/core/domain/auth"
	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

type AuthService struct {
	secret []byte
	issuer string
	logger *logrus.Logger
}

func NewAuthService(secret, issuer string, logger *logrus.Logger) *AuthService {
	return &AuthService{secret: []byte(secret), issuer: issuer, logger: logger}
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	if _, err := claims.EmployeeID(); err != nil {
		return nil, err
	}
	return claims, nil
}

var _ ports.AuthService = (*AuthService)(nil)
