package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port         int
	MongoURI     string
	MongoDB      string
	JWTKey       string
	Debug        bool
	ReminderCron string
	AllowOrigins []string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() *Config {
	// 尝试加载.env文件，不存在时忽略
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	return &Config{
		Port:         port,
		MongoURI:     getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/cscrm"),
		MongoDB:      getEnv("MONGO_DB", "cscrm"),
		JWTKey:       getEnv("JWT_KEY", "your-secret-key"), // 实际环境应替换为安全密钥
		Debug:        getEnv("GIN_MODE", "debug") == "debug",
		ReminderCron: getEnv("REMINDER_CRON", "0 8 * * *"), // 每天08:00执行提醒扫描
		AllowOrigins: []string{
			getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
			"http://localhost:3001",
		},
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
