package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/pcgops/cscrm_end/models"
)

var jwtSecret []byte

// InitJWT 设置JWT签名密钥
func InitJWT(key string) {
	jwtSecret = []byte(key)
}

// HashPassword 哈希密码
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword 验证密码
func VerifyPassword(password string, hashedPassword string) bool {
	if hashedPassword == "" {
		return false
	}
	return HashPassword(password) == hashedPassword
}

// GenerateToken 为用户档案生成JWT令牌
func GenerateToken(profile *models.UserProfile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("用户档案为空，无法生成token")
	}

	roles := make([]string, len(profile.Roles))
	copy(roles, profile.Roles)

	// 创建JWT Claims
	claims := jwt.MapClaims{
		"id":        profile.ID,
		"firstName": profile.FirstName,
		"lastName":  profile.LastName,
		"email":     profile.Email,
		"roles":     roles,
		"exp":       time.Now().Add(time.Hour * 24 * 30).Unix(), // 30天有效期
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("生成token失败")
		return "", err
	}

	Logger.Info().
		Str("id", profile.ID).
		Str("email", profile.Email).
		Msg("Token生成成功")

	return tokenString, nil
}

// ParseToken 解析和验证JWT令牌
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	// 验证token并提取claims
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("无效的token")
}

// ProfileFromClaims 从JWT claims还原用户档案
func ProfileFromClaims(claims jwt.MapClaims) (*models.UserProfile, error) {
	id, _ := claims["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("token缺少用户ID")
	}

	profile := &models.UserProfile{ID: id}
	profile.FirstName, _ = claims["firstName"].(string)
	profile.LastName, _ = claims["lastName"].(string)
	profile.Email, _ = claims["email"].(string)

	switch v := claims["roles"].(type) {
	case []string:
		profile.Roles = v
	case []interface{}:
		for _, r := range v {
			if s, ok := r.(string); ok {
				profile.Roles = append(profile.Roles, s)
			}
		}
	case string:
		// 历史token只带单一role
		if v != "" {
			profile.Roles = []string{v}
		}
	}

	return profile, nil
}
