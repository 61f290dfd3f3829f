package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims 簽章 cookie 模式的 JWT 負載
type sessionClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}

// SignedCookieStore 無狀態 session 儲存
// token 本身即為 HS256 簽章的 JWT，伺服器端不保留任何狀態
// Revoke 為 no-op，撤銷僅靠瀏覽器端移除 cookie
type SignedCookieStore struct {
	secret []byte
	ttl    time.Duration
}

func NewSignedCookieStore(secret []byte, ttl time.Duration) *SignedCookieStore {
	return &SignedCookieStore{secret: secret, ttl: ttl}
}

func (s *SignedCookieStore) Issue(ctx context.Context, userID int) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	return signed, nil
}

func (s *SignedCookieStore) Resolve(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrNotFound
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return 0, ErrNotFound
	}
	return claims.UserID, nil
}

func (s *SignedCookieStore) Revoke(ctx context.Context, token string) error {
	return nil
}
