package models

import (
	"fmt"
	"strings"
)

// ActivityType 活动来源类型
type ActivityType string

const (
	ActivityTypeCustomer      ActivityType = "customer"
	ActivityTypeDocumentation ActivityType = "documentation"
	ActivityTypeTraining      ActivityType = "training"
	ActivityTypePresales      ActivityType = "presales"
	ActivityTypeScheduler     ActivityType = "scheduler"
)

// 合成ID前缀，必须与类型一一对应且可逆
var activityPrefixes = map[ActivityType]string{
	ActivityTypeCustomer:      "cust-",
	ActivityTypeDocumentation: "doc-",
	ActivityTypeTraining:      "train-",
	ActivityTypePresales:      "pre-",
	ActivityTypeScheduler:     "sched-",
}

// ActivityOrigin 活动条目的归属：远端已持久化 / 仅本地会话内
type ActivityOrigin string

const (
	OriginRemote ActivityOrigin = "remote"
	OriginLocal  ActivityOrigin = "local"
)

// ActivityRef 合成ID解析结果：类型 + 原生ID + 归属
type ActivityRef struct {
	Type     ActivityType
	NativeID string
	Origin   ActivityOrigin
}

// SyntheticID 根据类型与原生ID构造全局唯一的合成ID
func SyntheticID(t ActivityType, nativeID string) string {
	return activityPrefixes[t] + nativeID
}

// ParseSyntheticID 解析合成ID，剥离类型前缀还原原生ID
// 归属默认按启发式分类，调用方持有存储的origin时应覆盖该值
func ParseSyntheticID(id string) (ActivityRef, error) {
	for t, prefix := range activityPrefixes {
		if strings.HasPrefix(id, prefix) {
			native := strings.TrimPrefix(id, prefix)
			if native == "" {
				return ActivityRef{}, fmt.Errorf("活动ID缺少原生部分: %s", id)
			}
			return ActivityRef{Type: t, NativeID: native, Origin: ClassifyNativeID(native)}, nil
		}
	}
	return ActivityRef{}, fmt.Errorf("无法识别的活动ID: %s", id)
}

// ClassifyNativeID 启发式归属分类，仅用于缺失origin字段的历史数据：
// 含local/test子串或非纯十六进制的ID视为本地，其余视为远端。
// 新写入的条目一律携带显式origin，存储值优先于该推断
func ClassifyNativeID(nativeID string) ActivityOrigin {
	lower := strings.ToLower(nativeID)
	if strings.Contains(lower, "local") || strings.Contains(lower, "test") {
		return OriginLocal
	}
	for _, c := range lower {
		isDigit := c >= '0' && c <= '9'
		isHex := c >= 'a' && c <= 'f'
		if !isDigit && !isHex {
			return OriginLocal
		}
	}
	return OriginRemote
}

// CustomerLogEntry 客户内嵌活动日志条目
type CustomerLogEntry struct {
	ID             string         `json:"id"`
	Timestamp      string         `json:"timestamp"`
	Content        string         `json:"content"`
	AuthorName     string         `json:"authorName"`
	NextActionDate string         `json:"nextActionDate"`
	IsDone         bool           `json:"isDone"`
	Origin         ActivityOrigin `json:"origin,omitempty"`
}

// DocumentationActivity 文档活动，documentation_activities表的顶层行
type DocumentationActivity struct {
	ID             string         `json:"id"`
	ProductType    string         `json:"productType"`
	TeamMemberID   string         `json:"teamMemberId"`
	ActivityDate   string         `json:"activityDate"`
	Description    string         `json:"description"`
	IsDone         bool           `json:"isDone"`
	NextActionDate string         `json:"nextActionDate"`
	Origin         ActivityOrigin `json:"origin,omitempty"`
}

// LocalActivity 会话级本地活动（培训/售前），不持久化
type LocalActivity struct {
	ID             string         `json:"id"`
	EntityID       string         `json:"entityId"` // 培训=员工ID，售前=线索ID
	Timestamp      string         `json:"timestamp"`
	Content        string         `json:"content"`
	AuthorName     string         `json:"authorName"`
	NextActionDate string         `json:"nextActionDate"`
	IsDone         bool           `json:"isDone"`
	Origin         ActivityOrigin `json:"origin,omitempty"`
}

// SchedulerActivity 调度提醒活动，scheduler_activities表的顶层行
type SchedulerActivity struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     string         `json:"dueDate"`
	SourceID    string         `json:"sourceId"` // 产生提醒的源活动合成ID
	IsDone      bool           `json:"isDone"`
	Origin      ActivityOrigin `json:"origin,omitempty"`
}

// FeedItem 聚合后的标准化活动记录
type FeedItem struct {
	ID             string       `json:"id"` // 合成ID
	Type           ActivityType `json:"type"`
	Timestamp      string       `json:"timestamp"` // 完整ISO时间
	Title          string       `json:"title"`
	SubTitle       string       `json:"subTitle"`
	Content        string       `json:"content"`
	IsDone         bool         `json:"isDone"`
	NextActionDate string       `json:"nextActionDate,omitempty"`

	// 回溯导航引用
	CustomerID string `json:"customerId,omitempty"`
	LeadID     string `json:"leadId,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
}
