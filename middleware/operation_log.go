package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// 需要记录的HTTP方法
var loggedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// 不需要记录的路径
var excludedPaths = map[string]bool{
	"/api/auth/validate": true,
	"/api/health":        true,
	"/api/db-status":     true,
	"/api/auth/login":    true,
}

// OperationLoggerMiddleware 操作日志记录中间件，把写操作落到远端审计表。
// 审计写入失败只记日志，不影响业务响应
func OperationLoggerMiddleware(client remote.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !shouldLogOperation(c) {
			c.Next()
			return
		}

		startTime := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		// 创建自定义响应写入器以捕获响应体
		blw := &bodyLogWriter{
			body:           bytes.NewBufferString(""),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		// 读取并重置请求体
		var requestBody interface{}
		if c.Request.Body != nil {
			requestBodyBytes, err := io.ReadAll(c.Request.Body)
			if err != nil {
				utils.Logger.Error().Err(err).Msg("读取请求体失败")
			} else {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBodyBytes))
				if strings.Contains(c.Request.Header.Get("Content-Type"), "application/json") {
					if err := json.Unmarshal(requestBodyBytes, &requestBody); err != nil {
						requestBody = string(requestBodyBytes)
					}
				} else {
					requestBody = string(requestBodyBytes)
				}
			}
		}

		operatorID, operatorName, operatorRoles := extractUserInfo(c)

		c.Next()

		responseTime := time.Since(startTime).Milliseconds()

		var responseData interface{}
		if strings.Contains(c.Writer.Header().Get("Content-Type"), "application/json") {
			if err := json.Unmarshal(blw.body.Bytes(), &responseData); err != nil {
				responseData = blw.body.String()
			}
		} else {
			responseData = blw.body.String()
		}

		var errorMessage string
		if len(c.Errors) > 0 {
			errorMessage = c.Errors.String()
		}

		row := remote.Row{
			"method":         method,
			"path":           path,
			"operator_id":    operatorID,
			"operator_name":  operatorName,
			"operator_roles": operatorRoles,
			"request_body":   sanitizeData(requestBody),
			"response_data":  sanitizeData(responseData),
			"status_code":    c.Writer.Status(),
			"success":        c.Writer.Status() < http.StatusBadRequest,
			"error_message":  errorMessage,
			"operation_time": startTime.Format("2006-01-02T15:04:05"),
			"response_time":  responseTime,
			"ip_address":     getClientIP(c),
			"user_agent":     c.Request.UserAgent(),
		}

		// 审计写入放到请求循环外
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if _, err := client.Insert(ctx, remote.OperationLogsTable, row); err != nil {
				utils.Logger.Error().Err(err).Msg("保存操作日志失败")
			}
		}()
	}
}

// shouldLogOperation 检查是否需要记录此操作
func shouldLogOperation(c *gin.Context) bool {
	path := c.Request.URL.Path
	method := c.Request.Method

	if _, excluded := excludedPaths[path]; excluded {
		return false
	}

	return loggedMethods[method]
}

// extractUserInfo 从上下文中提取用户信息
func extractUserInfo(c *gin.Context) (string, string, []string) {
	operatorID := "anonymous"
	operatorName := "匿名用户"
	var operatorRoles []string

	if user, err := utils.GetUser(c); err == nil {
		operatorID = user.ID
		operatorName = user.FirstName + " " + user.LastName
		operatorRoles = user.Roles
		return operatorID, operatorName, operatorRoles
	}

	// 尝试从Authorization头解析JWT
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if claims, err := utils.ParseToken(token); err == nil {
			if profile, err := utils.ProfileFromClaims(claims); err == nil {
				operatorID = profile.ID
				operatorName = profile.FirstName + " " + profile.LastName
				operatorRoles = profile.Roles
			}
		}
	}

	return operatorID, operatorName, operatorRoles
}

// sanitizeData 清理数据中的敏感信息
func sanitizeData(data interface{}) interface{} {
	if data == nil {
		return nil
	}

	if m, ok := data.(map[string]interface{}); ok {
		sanitized := make(map[string]interface{})
		for k, v := range m {
			switch strings.ToLower(k) {
			case "password", "initialpassword", "token", "authorization", "secret", "key":
				sanitized[k] = "******"
			default:
				sanitized[k] = sanitizeData(v)
			}
		}
		return sanitized
	}

	if s, ok := data.([]interface{}); ok {
		sanitized := make([]interface{}, len(s))
		for i, v := range s {
			sanitized[i] = sanitizeData(v)
		}
		return sanitized
	}

	return data
}

// getClientIP 获取客户端IP地址
func getClientIP(c *gin.Context) string {
	if ip := c.Request.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.Request.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
