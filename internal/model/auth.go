// internal/model/auth.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
// subject (sub) には学習者ID (UUID) を入れる
type JWTCustomClaims struct {
	jwt.RegisteredClaims // 標準クレーム (iss, sub, exp など) を埋め込む
}
