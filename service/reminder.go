package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// ReminderService 每日扫描到期的下次行动日期并生成调度提醒
type ReminderService struct {
	store *store.Store
	cron  *cron.Cron
	spec  string
}

// NewReminderService 创建提醒服务，spec为cron表达式（默认每日08:00）
func NewReminderService(s *store.Store, spec string) *ReminderService {
	return &ReminderService{
		store: s,
		cron:  cron.New(),
		spec:  spec,
	}
}

// Start 注册并启动定时扫描
func (r *ReminderService) Start() error {
	_, err := r.cron.AddFunc(r.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		count := r.Scan(ctx, time.Now())
		utils.LogInfo(map[string]interface{}{"created": count}, "提醒扫描完成")
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	utils.LogInfo(map[string]interface{}{"cron": r.spec}, "提醒服务已启动")
	return nil
}

// Stop 停止定时任务，等待执行中的扫描结束
func (r *ReminderService) Stop() {
	<-r.cron.Stop().Done()
}

// Scan 扫描客户日志与文档活动中当日到期且未完成的条目，
// 为每条生成调度提醒；同一来源同一到期日只生成一次
func (r *ReminderService) Scan(ctx context.Context, now time.Time) int {
	today := now.Format("2006-01-02")

	existing := make(map[string]bool)
	for _, a := range r.store.SchedulerActivities() {
		existing[a.SourceID+"|"+a.DueDate] = true
	}

	created := 0
	for _, c := range r.store.Customers() {
		for _, entry := range c.ActivityLog {
			if entry.IsDone || entry.NextActionDate != today {
				continue
			}
			sourceID := models.SyntheticID(models.ActivityTypeCustomer, entry.ID)
			if existing[sourceID+"|"+today] {
				continue
			}
			_, _, err := r.store.AddSchedulerActivity(ctx, models.SchedulerActivity{
				Title:       c.Company,
				Description: entry.Content,
				DueDate:     today,
				SourceID:    sourceID,
			})
			if err != nil {
				utils.LogError(err, map[string]interface{}{"sourceId": sourceID}, "生成客户活动提醒失败")
				continue
			}
			existing[sourceID+"|"+today] = true
			created++
		}
	}

	for _, a := range r.store.DocActivities() {
		if a.IsDone || a.NextActionDate != today {
			continue
		}
		sourceID := models.SyntheticID(models.ActivityTypeDocumentation, a.ID)
		if existing[sourceID+"|"+today] {
			continue
		}
		_, _, err := r.store.AddSchedulerActivity(ctx, models.SchedulerActivity{
			Title:       a.ProductType,
			Description: a.Description,
			DueDate:     today,
			SourceID:    sourceID,
		})
		if err != nil {
			utils.LogError(err, map[string]interface{}{"sourceId": sourceID}, "生成文档活动提醒失败")
			continue
		}
		existing[sourceID+"|"+today] = true
		created++
	}

	return created
}
