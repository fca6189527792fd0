package remote

import (
	"context"
	"fmt"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/utils"
)

// MongoAuth 认证子系统：凭据校验委托给profiles表，会话以JWT承载
type MongoAuth struct {
	store  *MongoStore
	events chan SessionEvent
}

// NewAuth 创建认证子系统
func NewAuth(store *MongoStore) *MongoAuth {
	return &MongoAuth{
		store:  store,
		events: make(chan SessionEvent, 8),
	}
}

// SignIn 校验凭据并建立会话
func (a *MongoAuth) SignIn(ctx context.Context, email, password string) (*Session, error) {
	rows, err := a.store.Select(ctx, ProfilesTable, Eq("email", email))
	if err != nil {
		return nil, fmt.Errorf("查询用户档案失败: %w", err)
	}
	if len(rows) == 0 {
		return nil, utils.CreateUnauthorizedError()
	}

	row := rows[0]
	hash, _ := row["password_hash"].(string)
	if !utils.VerifyPassword(password, hash) {
		utils.Logger.Info().Str("email", email).Msg("密码校验失败")
		return nil, utils.CreateUnauthorizedError()
	}

	profile := mapper.ProfileFromRow(row)
	token, err := utils.GenerateToken(&profile)
	if err != nil {
		return nil, err
	}

	a.emit(SessionEvent{Type: SessionSignedIn, Profile: &profile})
	utils.Logger.Info().Str("email", email).Str("id", profile.ID).Msg("登录成功")

	return &Session{Token: token, Profile: &profile}, nil
}

// SignOut 结束会话
func (a *MongoAuth) SignOut(ctx context.Context, userID string) error {
	a.emit(SessionEvent{Type: SessionSignedOut, Profile: &models.UserProfile{ID: userID}})
	utils.Logger.Info().Str("id", userID).Msg("已登出")
	return nil
}

// Sessions 会话事件流
func (a *MongoAuth) Sessions() <-chan SessionEvent {
	return a.events
}

// emit 非阻塞投递会话事件，订阅方不消费时丢弃而不是卡住登录
func (a *MongoAuth) emit(event SessionEvent) {
	select {
	case a.events <- event:
	default:
		utils.Logger.Warn().Str("type", string(event.Type)).Msg("会话事件队列已满，事件被丢弃")
	}
}

// InitializeAdminProfile 初始化管理员档案
func (a *MongoAuth) InitializeAdminProfile() error {
	ctx := context.Background()
	rows, err := a.store.Select(ctx, ProfilesTable, Eq("roles", models.RoleAdmin))
	if err != nil {
		return fmt.Errorf("检查管理员档案失败: %w", err)
	}
	if len(rows) > 0 {
		utils.Logger.Info().Msg("管理员档案已存在，跳过创建")
		return nil
	}

	admin := Row{
		"first_name":    "Admin",
		"last_name":     "",
		"email":         "admin@pcg.local",
		"roles":         []string{models.RoleAdmin},
		"password_hash": utils.HashPassword("admin123"),
	}
	if _, err := a.store.Insert(ctx, ProfilesTable, admin); err != nil {
		return fmt.Errorf("创建管理员档案失败: %w", err)
	}

	utils.Logger.Info().Msg("已创建默认管理员档案")
	return nil
}
