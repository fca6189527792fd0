// Package remote 封装托管表存储服务。对上层而言这是一个不透明的外部协作方：
// 提供面向表的行级CRUD（带过滤与排序）与认证子系统（登录/登出与会话事件流），
// 持久化与鉴权均委托给它，本代码库不拥有任何后端逻辑。
package remote

import (
	"context"

	"github.com/pcgops/cscrm_end/models"
)

// 表名常量，列名约定为lower_snake_case
const (
	CustomersTable         = "customers"
	ProductsTable          = "products"
	EmployeesTable         = "employees"
	LeadsTable             = "leads"
	ProfilesTable          = "profiles"
	DocActivitiesTable     = "documentation_activities"
	SchedulerActivityTable = "scheduler_activities"
	OperationLogsTable     = "api_operation_logs"
)

// Row 表行，列名为lower_snake_case，id列为十六进制字符串
type Row = map[string]interface{}

// SelectQuery select操作的过滤与排序参数
type SelectQuery struct {
	Filters    map[string]interface{}
	OrderBy    string
	Descending bool
}

// SelectOption select操作选项
type SelectOption func(*SelectQuery)

// Eq 按列等值过滤
func Eq(field string, value interface{}) SelectOption {
	return func(q *SelectQuery) {
		if q.Filters == nil {
			q.Filters = map[string]interface{}{}
		}
		q.Filters[field] = value
	}
}

// Order 按列排序
func Order(field string, descending bool) SelectOption {
	return func(q *SelectQuery) {
		q.OrderBy = field
		q.Descending = descending
	}
}

// Client 托管表存储的行级CRUD接口
type Client interface {
	// Select 查询表中满足条件的全部行
	Select(ctx context.Context, table string, opts ...SelectOption) ([]Row, error)
	// Insert 插入一行并返回存储后的行（含生成的id）
	Insert(ctx context.Context, table string, row Row) (Row, error)
	// UpdateByID 按id整行更新并返回更新后的行，无乐观并发检查，后写覆盖先写
	UpdateByID(ctx context.Context, table string, id string, row Row) (Row, error)
	// DeleteByID 按id删除行
	DeleteByID(ctx context.Context, table string, id string) error
	// DeleteBy 按列等值删除行
	DeleteBy(ctx context.Context, table string, field string, value interface{}) error
}

// SessionEventType 会话事件类型
type SessionEventType string

const (
	SessionSignedIn  SessionEventType = "SIGNED_IN"
	SessionSignedOut SessionEventType = "SIGNED_OUT"
)

// SessionEvent 会话状态变化事件
type SessionEvent struct {
	Type    SessionEventType
	Profile *models.UserProfile
}

// Session 登录成功后的会话
type Session struct {
	Token   string
	Profile *models.UserProfile
}

// Auth 认证子系统接口
type Auth interface {
	// SignIn 校验凭据并建立会话
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignOut 结束会话
	SignOut(ctx context.Context, userID string) error
	// Sessions 会话事件流，Domain Store在启动时订阅
	Sessions() <-chan SessionEvent
}
