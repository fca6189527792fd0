package store

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// ActivityInput 新建活动的入参
type ActivityInput struct {
	Type           models.ActivityType `json:"type"`
	EntityID       string              `json:"entityId"` // 客户ID/产品名/员工ID/线索ID，随类型而定
	Date           string              `json:"date"`     // yyyy-mm-dd
	Details        string              `json:"details"`
	NextActionDate string              `json:"nextActionDate"`
	AuthorName     string              `json:"authorName"`
	TeamMemberID   string              `json:"teamMemberId"` // 文档活动的负责成员
}

// DocActivities 返回文档活动集合快照
func (s *Store) DocActivities() []models.DocumentationActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.DocumentationActivity, len(s.docActivities))
	copy(result, s.docActivities)
	return result
}

// SchedulerActivities 返回调度提醒集合快照
func (s *Store) SchedulerActivities() []models.SchedulerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.SchedulerActivity, len(s.schedulerActivities))
	copy(result, s.schedulerActivities)
	return result
}

// AddActivity 按类型路由新建活动，返回聚合视图可用的合成ID。
// 客户活动内嵌在客户记录中，写入是对单条客户记录的读-改-写；
// 培训/售前活动只存在于会话级本地集合，不持久化
func (s *Store) AddActivity(ctx context.Context, in ActivityInput) (string, bool, error) {
	now := time.Now()
	timestamp := utils.ActivityTimestamp(in.Date, now)

	switch in.Type {
	case models.ActivityTypeCustomer:
		return s.addCustomerActivity(ctx, in, timestamp, now)

	case models.ActivityTypeDocumentation:
		return s.addDocumentationActivity(ctx, in, timestamp, now)

	case models.ActivityTypeTraining:
		entry := s.newLocalActivity(in, timestamp)
		s.mu.Lock()
		s.trainingActivities = append(s.trainingActivities, entry)
		s.mu.Unlock()
		return models.SyntheticID(models.ActivityTypeTraining, entry.ID), false, nil

	case models.ActivityTypePresales:
		entry := s.newLocalActivity(in, timestamp)
		s.mu.Lock()
		s.presalesActivities = append(s.presalesActivities, entry)
		s.mu.Unlock()
		return models.SyntheticID(models.ActivityTypePresales, entry.ID), false, nil

	default:
		return "", false, utils.CreateBadRequestError("不支持的活动类型: " + string(in.Type))
	}
}

func (s *Store) newLocalActivity(in ActivityInput, timestamp string) models.LocalActivity {
	return models.LocalActivity{
		ID:             "local-" + uuid.NewString(),
		EntityID:       in.EntityID,
		Timestamp:      timestamp,
		Content:        in.Details,
		AuthorName:     in.AuthorName,
		NextActionDate: in.NextActionDate,
		Origin:         models.OriginLocal,
	}
}

func (s *Store) addCustomerActivity(ctx context.Context, in ActivityInput, timestamp string, now time.Time) (string, bool, error) {
	customer, ok := s.GetCustomer(in.EntityID)
	if !ok {
		return "", false, utils.CreateNotFoundError("客户")
	}

	entry := models.CustomerLogEntry{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp:      timestamp,
		Content:        in.Details,
		AuthorName:     in.AuthorName,
		NextActionDate: in.NextActionDate,
		Origin:         models.OriginRemote,
	}

	updated := customer
	updated.ActivityLog = append(append([]models.CustomerLogEntry{}, customer.ActivityLog...), entry)

	stored, err := s.remote.UpdateByID(ctx, remote.CustomersTable, customer.ID, mapper.CustomerToRow(updated))
	if err != nil {
		utils.LogLocalFallback("update", remote.CustomersTable, err)
		entry.ID = "local-" + uuid.NewString()
		entry.Origin = models.OriginLocal
		updated.ActivityLog[len(updated.ActivityLog)-1] = entry
		s.replaceCustomer(updated)
		return models.SyntheticID(models.ActivityTypeCustomer, entry.ID), true, nil
	}

	s.replaceCustomer(mapper.CustomerFromRow(stored))
	return models.SyntheticID(models.ActivityTypeCustomer, entry.ID), false, nil
}

func (s *Store) addDocumentationActivity(ctx context.Context, in ActivityInput, timestamp string, now time.Time) (string, bool, error) {
	activity := models.DocumentationActivity{
		ProductType:    in.EntityID,
		TeamMemberID:   in.TeamMemberID,
		ActivityDate:   timestamp,
		Description:    in.Details,
		NextActionDate: in.NextActionDate,
		Origin:         models.OriginRemote,
	}

	row := mapper.DocumentationActivityToRow(activity)
	row["created_at"] = now.Format("2006-01-02T15:04:05")

	stored, err := s.remote.Insert(ctx, remote.DocActivitiesTable, row)
	if err != nil {
		utils.LogLocalFallback("insert", remote.DocActivitiesTable, err)
		activity.ID = "local-" + uuid.NewString()
		activity.Origin = models.OriginLocal
		s.mu.Lock()
		s.docActivities = append([]models.DocumentationActivity{activity}, s.docActivities...)
		s.mu.Unlock()
		return models.SyntheticID(models.ActivityTypeDocumentation, activity.ID), true, nil
	}

	created := mapper.DocumentationActivityFromRow(stored)
	s.mu.Lock()
	s.docActivities = append([]models.DocumentationActivity{created}, s.docActivities...)
	s.mu.Unlock()
	return models.SyntheticID(models.ActivityTypeDocumentation, created.ID), false, nil
}

// AddSchedulerActivity 写入调度提醒（由提醒扫描任务调用）
func (s *Store) AddSchedulerActivity(ctx context.Context, a models.SchedulerActivity) (*models.SchedulerActivity, bool, error) {
	a.Origin = models.OriginRemote
	stored, err := s.remote.Insert(ctx, remote.SchedulerActivityTable, mapper.SchedulerActivityToRow(a))
	if err != nil {
		utils.LogLocalFallback("insert", remote.SchedulerActivityTable, err)
		a.ID = "local-" + uuid.NewString()
		a.Origin = models.OriginLocal
		s.mu.Lock()
		s.schedulerActivities = append(s.schedulerActivities, a)
		s.mu.Unlock()
		return &a, true, nil
	}

	created := mapper.SchedulerActivityFromRow(stored)
	s.mu.Lock()
	s.schedulerActivities = append(s.schedulerActivities, created)
	s.mu.Unlock()
	return &created, false, nil
}

// EditActivity 依据合成ID编辑活动内容与下次行动日期。
// 合成ID剥掉类型前缀后還原原生ID；本地归属的条目只改本地状态，
// 远端归属的先写远端再对账，写失败时回退为本地变更
func (s *Store) EditActivity(ctx context.Context, syntheticID, content, nextActionDate string) (bool, error) {
	ref, err := models.ParseSyntheticID(syntheticID)
	if err != nil {
		return false, err
	}

	switch ref.Type {
	case models.ActivityTypeCustomer:
		return s.mutateCustomerLog(ctx, ref.NativeID, func(entry *models.CustomerLogEntry) {
			entry.Content = content
			entry.NextActionDate = nextActionDate
		}, false)

	case models.ActivityTypeDocumentation:
		return s.mutateDocActivity(ctx, ref.NativeID, func(a *models.DocumentationActivity) {
			a.Description = content
			a.NextActionDate = nextActionDate
		}, false)

	case models.ActivityTypeScheduler:
		return s.mutateSchedulerActivity(ctx, ref.NativeID, func(a *models.SchedulerActivity) {
			a.Description = content
			a.DueDate = nextActionDate
		}, false)

	case models.ActivityTypeTraining:
		return s.mutateLocalActivity(&s.trainingActivities, ref.NativeID, func(a *models.LocalActivity) {
			a.Content = content
			a.NextActionDate = nextActionDate
		}, false)

	case models.ActivityTypePresales:
		return s.mutateLocalActivity(&s.presalesActivities, ref.NativeID, func(a *models.LocalActivity) {
			a.Content = content
			a.NextActionDate = nextActionDate
		}, false)
	}

	return false, utils.CreateBadRequestError("不支持的活动类型")
}

// DeleteActivity 依据合成ID删除活动
func (s *Store) DeleteActivity(ctx context.Context, syntheticID string) (bool, error) {
	ref, err := models.ParseSyntheticID(syntheticID)
	if err != nil {
		return false, err
	}

	switch ref.Type {
	case models.ActivityTypeCustomer:
		return s.mutateCustomerLog(ctx, ref.NativeID, nil, true)
	case models.ActivityTypeDocumentation:
		return s.mutateDocActivity(ctx, ref.NativeID, nil, true)
	case models.ActivityTypeScheduler:
		return s.mutateSchedulerActivity(ctx, ref.NativeID, nil, true)
	case models.ActivityTypeTraining:
		return s.mutateLocalActivity(&s.trainingActivities, ref.NativeID, nil, true)
	case models.ActivityTypePresales:
		return s.mutateLocalActivity(&s.presalesActivities, ref.NativeID, nil, true)
	}

	return false, utils.CreateBadRequestError("不支持的活动类型")
}

// ToggleActivityDone 依据合成ID翻转完成标记，只影响该条目本身
func (s *Store) ToggleActivityDone(ctx context.Context, syntheticID string) (bool, error) {
	ref, err := models.ParseSyntheticID(syntheticID)
	if err != nil {
		return false, err
	}

	switch ref.Type {
	case models.ActivityTypeCustomer:
		return s.mutateCustomerLog(ctx, ref.NativeID, func(entry *models.CustomerLogEntry) {
			entry.IsDone = !entry.IsDone
		}, false)
	case models.ActivityTypeDocumentation:
		return s.mutateDocActivity(ctx, ref.NativeID, func(a *models.DocumentationActivity) {
			a.IsDone = !a.IsDone
		}, false)
	case models.ActivityTypeScheduler:
		return s.mutateSchedulerActivity(ctx, ref.NativeID, func(a *models.SchedulerActivity) {
			a.IsDone = !a.IsDone
		}, false)
	case models.ActivityTypeTraining:
		return s.mutateLocalActivity(&s.trainingActivities, ref.NativeID, func(a *models.LocalActivity) {
			a.IsDone = !a.IsDone
		}, false)
	case models.ActivityTypePresales:
		return s.mutateLocalActivity(&s.presalesActivities, ref.NativeID, func(a *models.LocalActivity) {
			a.IsDone = !a.IsDone
		}, false)
	}

	return false, utils.CreateBadRequestError("不支持的活动类型")
}

// mutateCustomerLog 定位内嵌该日志条目的客户并应用变更（remove为真时删除条目）。
// 整条客户记录读-改-写，不隔离并发写入，后写覆盖先写
func (s *Store) mutateCustomerLog(ctx context.Context, nativeID string, apply func(*models.CustomerLogEntry), remove bool) (bool, error) {
	s.mu.RLock()
	var target models.Customer
	entryIdx := -1
	for _, c := range s.customers {
		for i, entry := range c.ActivityLog {
			if entry.ID == nativeID {
				target = c
				entryIdx = i
				break
			}
		}
		if entryIdx >= 0 {
			break
		}
	}
	s.mu.RUnlock()

	if entryIdx < 0 {
		return false, utils.CreateNotFoundError("客户活动")
	}

	updated := target
	updated.ActivityLog = append([]models.CustomerLogEntry{}, target.ActivityLog...)
	entryOrigin := updated.ActivityLog[entryIdx].Origin
	if entryOrigin == "" {
		entryOrigin = models.ClassifyNativeID(nativeID)
	}

	if remove {
		updated.ActivityLog = append(updated.ActivityLog[:entryIdx], updated.ActivityLog[entryIdx+1:]...)
	} else {
		apply(&updated.ActivityLog[entryIdx])
	}

	// 条目或宿主客户本身均未持久化时，仅改本地状态
	if entryOrigin == models.OriginLocal || models.ClassifyNativeID(target.ID) == models.OriginLocal {
		s.replaceCustomer(updated)
		return true, nil
	}

	stored, err := s.remote.UpdateByID(ctx, remote.CustomersTable, target.ID, mapper.CustomerToRow(updated))
	if err != nil {
		utils.LogLocalFallback("update", remote.CustomersTable, err)
		s.replaceCustomer(updated)
		return true, nil
	}

	s.replaceCustomer(mapper.CustomerFromRow(stored))
	return false, nil
}

func (s *Store) mutateDocActivity(ctx context.Context, nativeID string, apply func(*models.DocumentationActivity), remove bool) (bool, error) {
	s.mu.RLock()
	idx := -1
	for i, a := range s.docActivities {
		if a.ID == nativeID {
			idx = i
			break
		}
	}
	var activity models.DocumentationActivity
	if idx >= 0 {
		activity = s.docActivities[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return false, utils.CreateNotFoundError("文档活动")
	}

	origin := activity.Origin
	if origin == "" {
		origin = models.ClassifyNativeID(nativeID)
	}

	if remove {
		if origin == models.OriginRemote {
			if err := s.remote.DeleteByID(ctx, remote.DocActivitiesTable, nativeID); err != nil {
				utils.LogLocalFallback("delete", remote.DocActivitiesTable, err)
				s.removeDocActivityLocal(nativeID)
				return true, nil
			}
		}
		s.removeDocActivityLocal(nativeID)
		return origin == models.OriginLocal, nil
	}

	apply(&activity)
	if origin == models.OriginLocal {
		s.replaceDocActivityLocal(activity)
		return true, nil
	}

	stored, err := s.remote.UpdateByID(ctx, remote.DocActivitiesTable, nativeID, mapper.DocumentationActivityToRow(activity))
	if err != nil {
		utils.LogLocalFallback("update", remote.DocActivitiesTable, err)
		s.replaceDocActivityLocal(activity)
		return true, nil
	}

	s.replaceDocActivityLocal(mapper.DocumentationActivityFromRow(stored))
	return false, nil
}

func (s *Store) mutateSchedulerActivity(ctx context.Context, nativeID string, apply func(*models.SchedulerActivity), remove bool) (bool, error) {
	s.mu.RLock()
	idx := -1
	for i, a := range s.schedulerActivities {
		if a.ID == nativeID {
			idx = i
			break
		}
	}
	var activity models.SchedulerActivity
	if idx >= 0 {
		activity = s.schedulerActivities[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return false, utils.CreateNotFoundError("调度提醒")
	}

	origin := activity.Origin
	if origin == "" {
		origin = models.ClassifyNativeID(nativeID)
	}

	if remove {
		if origin == models.OriginRemote {
			if err := s.remote.DeleteByID(ctx, remote.SchedulerActivityTable, nativeID); err != nil {
				utils.LogLocalFallback("delete", remote.SchedulerActivityTable, err)
				s.removeSchedulerActivityLocal(nativeID)
				return true, nil
			}
		}
		s.removeSchedulerActivityLocal(nativeID)
		return origin == models.OriginLocal, nil
	}

	apply(&activity)
	if origin == models.OriginLocal {
		s.replaceSchedulerActivityLocal(activity)
		return true, nil
	}

	stored, err := s.remote.UpdateByID(ctx, remote.SchedulerActivityTable, nativeID, mapper.SchedulerActivityToRow(activity))
	if err != nil {
		utils.LogLocalFallback("update", remote.SchedulerActivityTable, err)
		s.replaceSchedulerActivityLocal(activity)
		return true, nil
	}

	s.replaceSchedulerActivityLocal(mapper.SchedulerActivityFromRow(stored))
	return false, nil
}

// mutateLocalActivity 培训/售前活动只存在于会话本地集合
func (s *Store) mutateLocalActivity(collection *[]models.LocalActivity, nativeID string, apply func(*models.LocalActivity), remove bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range *collection {
		if (*collection)[i].ID != nativeID {
			continue
		}
		if remove {
			*collection = append((*collection)[:i], (*collection)[i+1:]...)
		} else {
			apply(&(*collection)[i])
		}
		return true, nil
	}

	return false, utils.CreateNotFoundError("活动")
}

func (s *Store) replaceDocActivityLocal(a models.DocumentationActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docActivities {
		if s.docActivities[i].ID == a.ID {
			s.docActivities[i] = a
			return
		}
	}
}

func (s *Store) removeDocActivityLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.docActivities[:0]
	for _, a := range s.docActivities {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.docActivities = filtered
}

func (s *Store) replaceSchedulerActivityLocal(a models.SchedulerActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.schedulerActivities {
		if s.schedulerActivities[i].ID == a.ID {
			s.schedulerActivities[i] = a
			return
		}
	}
}

func (s *Store) removeSchedulerActivityLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.schedulerActivities[:0]
	for _, a := range s.schedulerActivities {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.schedulerActivities = filtered
}

// TrainingActivities 返回培训活动（会话级）快照
func (s *Store) TrainingActivities() []models.LocalActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.LocalActivity, len(s.trainingActivities))
	copy(result, s.trainingActivities)
	return result
}

// PresalesActivities 返回售前活动（会话级）快照
func (s *Store) PresalesActivities() []models.LocalActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.LocalActivity, len(s.presalesActivities))
	copy(result, s.presalesActivities)
	return result
}
