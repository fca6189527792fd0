package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
)

// GetUser 从gin上下文提取当前登录用户
func GetUser(c *gin.Context) (*models.UserProfile, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, fmt.Errorf("GetUser 未授权访问")
	}

	switch v := currentUser.(type) {
	case *models.UserProfile:
		return v, nil
	case jwt.MapClaims:
		return ProfileFromClaims(v)
	case string:
		var profile models.UserProfile
		if err := json.Unmarshal([]byte(v), &profile); err != nil {
			return nil, fmt.Errorf("解析用户信息失败: %v", err)
		}
		return &profile, nil
	default:
		return nil, fmt.Errorf("不支持的用户信息类型: %T", currentUser)
	}
}

// ActivityTimestamp 按产品约定把活动日期归一化为完整时间戳：
// 日期为今天时取当前时刻，否则取该日期上午08:00（本地时区），
// 避免按天排序时落在午夜边界上
func ActivityTimestamp(date string, now time.Time) string {
	if date == "" {
		return now.Format("2006-01-02T15:04:05")
	}
	if date == now.Format("2006-01-02") {
		return now.Format("2006-01-02T15:04:05")
	}
	return date + "T08:00:00"
}

// NormalizeTimestamp 聚合时把可能只有日期的存量时间值补全为完整时间戳
func NormalizeTimestamp(value string) string {
	if len(value) == len("2006-01-02") {
		return value + "T08:00:00"
	}
	return value
}

// ParseFeedTime 解析聚合排序用的时间值，允许日期或完整时间戳
func ParseFeedTime(value string) time.Time {
	normalized := NormalizeTimestamp(value)
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, normalized, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
