package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	// 相同密碼驗證成功
	require.NoError(t, ComparePassword(hash, "Secret123!"))
	// 不同密碼驗證失敗
	require.Error(t, ComparePassword(hash, "wrong"))

	// 每次哈希都帶隨機 salt，結果不同
	hash2, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
	require.NoError(t, ComparePassword(hash2, "Secret123!"))
}

func TestHashPasswordTooLong(t *testing.T) {
	// bcrypt 限制輸入 72 bytes
	_, err := HashPassword(strings.Repeat("a", 80))
	require.Error(t, err)
}
