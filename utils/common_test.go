package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActivityTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 45, 0, time.Local)

	// 日期为今天时取当前时刻
	require.Equal(t, "2026-08-31T14:30:45", ActivityTimestamp("2026-08-31", now))

	// 其他日期统一取上午08:00
	require.Equal(t, "2026-08-15T08:00:00", ActivityTimestamp("2026-08-15", now))

	// 空日期取当前时刻
	require.Equal(t, "2026-08-31T14:30:45", ActivityTimestamp("", now))
}

func TestNormalizeTimestamp(t *testing.T) {
	require.Equal(t, "2026-08-15T08:00:00", NormalizeTimestamp("2026-08-15"))

	// 已完整的时间戳保持不变
	require.Equal(t, "2026-08-15T12:34:56", NormalizeTimestamp("2026-08-15T12:34:56"))
	require.Equal(t, "", NormalizeTimestamp(""))
}

func TestParseFeedTimeOrdering(t *testing.T) {
	early := ParseFeedTime("2026-08-15")
	late := ParseFeedTime("2026-08-15T09:30:00")
	require.True(t, late.After(early))

	// 无法解析的时间值排在最后（零值）
	require.True(t, ParseFeedTime("garbage").IsZero())
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("admin123")
	require.NotEmpty(t, hash)
	require.NotEqual(t, "admin123", hash)

	require.True(t, VerifyPassword("admin123", hash))
	require.False(t, VerifyPassword("wrong", hash))
	require.False(t, VerifyPassword("admin123", ""))
}
