package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// parseClaims はトークンを検証してクレームを取り出します。
// 署名方式がHMAC以外の場合はテストを失敗させます。
func parseClaims(t *testing.T, tokenStr, secret string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			t.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected token to be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected MapClaims")
	}
	return claims
}

// TestNewGenerator は設定値がそのまま保持されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"default expiration", "secret", DefaultExpiration},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if string(gen.secret) != tt.secret {
				t.Errorf("secret = %q, want %q", string(gen.secret), tt.secret)
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expiration = %v, want %v", gen.expiration, tt.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたトークンが検証可能で、
// sub・email・exp・iatクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
		email  string
	}{
		{"basic user", 1, "user@example.com"},
		{"user with special email", 42, "user+tag@example.com"},
		{"large user id", 999999, "test@test.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			claims := parseClaims(t, tokenStr, "test-secret")

			if sub, ok := claims["sub"].(float64); !ok || uint(sub) != tt.userID {
				t.Errorf("sub = %v, want %d", claims["sub"], tt.userID)
			}
			if email, ok := claims["email"].(string); !ok || email != tt.email {
				t.Errorf("email = %v, want %q", claims["email"], tt.email)
			}
			for _, claim := range []string{"exp", "iat"} {
				if _, ok := claims[claim]; !ok {
					t.Errorf("expected %s claim to be set", claim)
				}
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiration はexp・iatが指定した有効期間と
// 整合する時刻範囲に収まることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	expiration := 2 * time.Hour
	gen := NewGenerator("test-secret", expiration)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := gen.GenerateToken(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now().Truncate(time.Second).Add(time.Second)

	claims := parseClaims(t, tokenStr, "test-secret")

	exp := int64(claims["exp"].(float64))
	if exp < before.Add(expiration).Unix() || exp > after.Add(expiration).Unix() {
		t.Errorf("exp %d not in range [%d, %d]", exp, before.Add(expiration).Unix(), after.Add(expiration).Unix())
	}

	iat := int64(claims["iat"].(float64))
	if iat < before.Unix() || iat > after.Unix() {
		t.Errorf("iat %d not in range [%d, %d]", iat, before.Unix(), after.Unix())
	}
}

// TestGenerator_GenerateToken_DistinctUsers は異なるユーザーに対して
// 異なるトークンが生成されることを検証します。
func TestGenerator_GenerateToken_DistinctUsers(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	token1, _ := gen.GenerateToken(1, "user1@example.com")
	token2, _ := gen.GenerateToken(2, "user2@example.com")

	if token1 == token2 {
		t.Error("expected different tokens for different users")
	}
}
