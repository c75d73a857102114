package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration は有効期限が明示されない場合のトークン寿命です。
const DefaultExpiration = 24 * time.Hour

// Generator は署名済みJWTの発行インターフェースです。
type Generator interface {
	GenerateToken(userID uint, email string) (string, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
}

var _ Generator = (*generator)(nil)

// NewGenerator は指定されたシークレットと有効期限でジェネレーターを生成します。
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{secret: []byte(secret), expiration: expiration}
}

// GenerateToken はHS256で署名したトークンを返します。subにユーザーIDを持ちます。
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"iat":   now.Unix(),
		"exp":   now.Add(g.expiration).Unix(),
		"email": email,
	})

	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
