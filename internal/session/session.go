package session

import (
	"context"
	"errors"
)

// ErrNotFound 代表 token 不存在、已過期或已被撤銷
var ErrNotFound = errors.New("session not found")

// Store 定義 session 儲存介面
// Issue 為使用者簽發 token；Resolve 由 token 取回使用者 ID；Revoke 撤銷 token
// 後端機制（Redis 伺服器端儲存或簽章 cookie）可替換，handler 不需改動
type Store interface {
	Issue(ctx context.Context, userID int) (string, error)
	Resolve(ctx context.Context, token string) (int, error)
	Revoke(ctx context.Context, token string) error
}

type FakeStore struct {
	IssueFn   func(ctx context.Context, userID int) (string, error)
	ResolveFn func(ctx context.Context, token string) (int, error)
	RevokeFn  func(ctx context.Context, token string) error
}

// Issue 執行 Fake 設定或 panic
func (f *FakeStore) Issue(ctx context.Context, userID int) (string, error) {
	if f.IssueFn != nil {
		return f.IssueFn(ctx, userID)
	}
	panic("unexpected Issue")
}

// Resolve 執行 Fake 設定或 panic
func (f *FakeStore) Resolve(ctx context.Context, token string) (int, error) {
	if f.ResolveFn != nil {
		return f.ResolveFn(ctx, token)
	}
	panic("unexpected Resolve")
}

// Revoke 執行 Fake 設定或 panic
func (f *FakeStore) Revoke(ctx context.Context, token string) error {
	if f.RevokeFn != nil {
		return f.RevokeFn(ctx, token)
	}
	panic("unexpected Revoke")
}
