package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator は認証成功後のJWT発行を抽象化します。
type Generator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// generator はHS256でトークンを署名するGenerator実装です。
type generator struct {
	secret     []byte
	expiration time.Duration
}

var _ Generator = (*generator)(nil)

// NewGenerator は指定されたシークレットと有効期限でジェネレーターを生成します。
// シークレットはAuthRequiredミドルウェアが検証に使うものと同一でなければなりません。
func NewGenerator(secret string, expiration time.Duration) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken はsub・exp・iat・emailクレームを持つ署名済みトークンを返します。
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
