package store

import (
	"sort"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/utils"
)

// UnknownMemberName 员工引用失配时的占位名称
const UnknownMemberName = "Unknown Member"

// FeedSources 聚合输入，全部取集合快照，聚合过程不持锁
type FeedSources struct {
	Customers     []models.Customer
	DocActivities []models.DocumentationActivity
	Training      []models.LocalActivity
	Presales      []models.LocalActivity
	Scheduler     []models.SchedulerActivity
	Employees     []models.Employee
	Leads         []models.Lead
}

// BuildFeed 把五类活动源展开为统一的标准化记录并按时间倒序排列。
// 规则：每条源记录恰好产出一条结果（无丢弃无重复）；缺员工引用
// 用占位名而不是剔除；仅日期的时间值按当日08:00参与排序
func BuildFeed(src FeedSources) []models.FeedItem {
	employeeNames := make(map[string]string, len(src.Employees))
	for _, e := range src.Employees {
		employeeNames[e.ID] = e.FullName()
	}
	leadNames := make(map[string]string, len(src.Leads))
	for _, l := range src.Leads {
		leadNames[l.ID] = l.CompanyName
	}

	items := make([]models.FeedItem, 0,
		len(src.DocActivities)+len(src.Training)+len(src.Presales)+len(src.Scheduler))

	for _, c := range src.Customers {
		for _, entry := range c.ActivityLog {
			items = append(items, models.FeedItem{
				ID:             models.SyntheticID(models.ActivityTypeCustomer, entry.ID),
				Type:           models.ActivityTypeCustomer,
				Timestamp:      utils.NormalizeTimestamp(entry.Timestamp),
				Title:          c.Company,
				SubTitle:       entry.AuthorName,
				Content:        entry.Content,
				IsDone:         entry.IsDone,
				NextActionDate: entry.NextActionDate,
				CustomerID:     c.ID,
			})
		}
	}

	for _, a := range src.DocActivities {
		member := employeeNames[a.TeamMemberID]
		if member == "" {
			member = UnknownMemberName
		}
		items = append(items, models.FeedItem{
			ID:             models.SyntheticID(models.ActivityTypeDocumentation, a.ID),
			Type:           models.ActivityTypeDocumentation,
			Timestamp:      utils.NormalizeTimestamp(a.ActivityDate),
			Title:          a.ProductType,
			SubTitle:       member,
			Content:        a.Description,
			IsDone:         a.IsDone,
			NextActionDate: a.NextActionDate,
			EmployeeID:     a.TeamMemberID,
		})
	}

	for _, a := range src.Training {
		trainee := employeeNames[a.EntityID]
		if trainee == "" {
			trainee = UnknownMemberName
		}
		items = append(items, models.FeedItem{
			ID:             models.SyntheticID(models.ActivityTypeTraining, a.ID),
			Type:           models.ActivityTypeTraining,
			Timestamp:      utils.NormalizeTimestamp(a.Timestamp),
			Title:          trainee,
			SubTitle:       a.AuthorName,
			Content:        a.Content,
			IsDone:         a.IsDone,
			NextActionDate: a.NextActionDate,
			EmployeeID:     a.EntityID,
		})
	}

	for _, a := range src.Presales {
		company := leadNames[a.EntityID]
		if company == "" {
			company = UnknownMemberName
		}
		items = append(items, models.FeedItem{
			ID:             models.SyntheticID(models.ActivityTypePresales, a.ID),
			Type:           models.ActivityTypePresales,
			Timestamp:      utils.NormalizeTimestamp(a.Timestamp),
			Title:          company,
			SubTitle:       a.AuthorName,
			Content:        a.Content,
			IsDone:         a.IsDone,
			NextActionDate: a.NextActionDate,
			LeadID:         a.EntityID,
		})
	}

	for _, a := range src.Scheduler {
		items = append(items, models.FeedItem{
			ID:             models.SyntheticID(models.ActivityTypeScheduler, a.ID),
			Type:           models.ActivityTypeScheduler,
			Timestamp:      utils.NormalizeTimestamp(a.DueDate),
			Title:          a.Title,
			SubTitle:       a.SourceID,
			Content:        a.Description,
			IsDone:         a.IsDone,
			NextActionDate: a.DueDate,
		})
	}

	// 倒序稳定排序，同一时刻的条目保持源内相对顺序
	sort.SliceStable(items, func(i, j int) bool {
		return utils.ParseFeedTime(items[i].Timestamp).After(utils.ParseFeedTime(items[j].Timestamp))
	})

	return items
}

// Feed 对当前集合快照做一次聚合
func (s *Store) Feed() []models.FeedItem {
	s.mu.RLock()
	src := FeedSources{
		Customers:     append([]models.Customer{}, s.customers...),
		DocActivities: append([]models.DocumentationActivity{}, s.docActivities...),
		Training:      append([]models.LocalActivity{}, s.trainingActivities...),
		Presales:      append([]models.LocalActivity{}, s.presalesActivities...),
		Scheduler:     append([]models.SchedulerActivity{}, s.schedulerActivities...),
		Employees:     append([]models.Employee{}, s.employees...),
		Leads:         append([]models.Lead{}, s.leads...),
	}
	s.mu.RUnlock()
	return BuildFeed(src)
}
