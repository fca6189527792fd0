// Package store 实现领域存储：内存集合 + 经远端表存储的写穿透变更。
// Store在进程启动时构造一次，显式注入给各消费方；
// 远端写入失败时大多数实体回退为仅本地变更（不持久，刷新即丢），
// 线索的新增/更新例外，失败直接上抛给调用方。
package store

import (
	"context"
	"sync"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Store 领域存储
type Store struct {
	mu     sync.RWMutex
	remote remote.Client

	customers           []models.Customer
	products            []string
	employees           []models.Employee
	leads               []models.Lead
	users               []models.UserProfile
	docActivities       []models.DocumentationActivity
	schedulerActivities []models.SchedulerActivity

	// 会话级本地集合，不持久化
	trainingActivities []models.LocalActivity
	presalesActivities []models.LocalActivity
}

// New 构造领域存储
func New(client remote.Client) *Store {
	return &Store{
		remote:              client,
		customers:           []models.Customer{},
		products:            []string{},
		employees:           []models.Employee{},
		leads:               []models.Lead{},
		users:               []models.UserProfile{},
		docActivities:       []models.DocumentationActivity{},
		schedulerActivities: []models.SchedulerActivity{},
		trainingActivities:  []models.LocalActivity{},
		presalesActivities:  []models.LocalActivity{},
	}
}

// Subscribe 订阅认证子系统的会话事件：登录成功后刷新全部集合
// 在启动时调用一次
func (s *Store) Subscribe(auth remote.Auth) {
	go func() {
		for event := range auth.Sessions() {
			switch event.Type {
			case remote.SessionSignedIn:
				utils.Logger.Info().Str("id", event.Profile.ID).Msg("会话建立，刷新数据")
				s.FetchAll(context.Background())
			case remote.SessionSignedOut:
				utils.Logger.Info().Msg("会话结束")
			}
		}
	}()
}

// FetchAll 并行加载全部集合，各表独立请求、独立对账：
// 某个表加载失败不影响其它表，失败的集合保持原状（可能为空或陈旧）
func (s *Store) FetchAll(ctx context.Context) {
	var wg sync.WaitGroup

	fetch := func(name string, load func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := load(); err != nil {
				utils.LogError(err, map[string]interface{}{"table": name}, "加载集合失败")
			}
		}()
	}

	fetch(remote.CustomersTable, func() error {
		rows, err := s.remote.Select(ctx, remote.CustomersTable, remote.Order("company", false))
		if err != nil {
			return err
		}
		customers := make([]models.Customer, 0, len(rows))
		for _, row := range rows {
			customers = append(customers, mapper.CustomerFromRow(row))
		}
		s.mu.Lock()
		s.customers = customers
		s.mu.Unlock()
		return nil
	})

	fetch(remote.ProductsTable, func() error {
		rows, err := s.remote.Select(ctx, remote.ProductsTable, remote.Order("name", false))
		if err != nil {
			return err
		}
		products := make([]string, 0, len(rows))
		for _, row := range rows {
			if name, ok := row["name"].(string); ok {
				products = append(products, name)
			}
		}
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
		return nil
	})

	fetch(remote.EmployeesTable, func() error {
		rows, err := s.remote.Select(ctx, remote.EmployeesTable)
		if err != nil {
			return err
		}
		employees := make([]models.Employee, 0, len(rows))
		for _, row := range rows {
			employees = append(employees, mapper.EmployeeFromRow(row))
		}
		s.mu.Lock()
		s.employees = employees
		s.mu.Unlock()
		return nil
	})

	fetch(remote.LeadsTable, func() error {
		rows, err := s.remote.Select(ctx, remote.LeadsTable, remote.Order("created_at", true))
		if err != nil {
			return err
		}
		leads := make([]models.Lead, 0, len(rows))
		for _, row := range rows {
			leads = append(leads, mapper.LeadFromRow(row))
		}
		s.mu.Lock()
		s.leads = leads
		s.mu.Unlock()
		return nil
	})

	fetch(remote.ProfilesTable, func() error {
		rows, err := s.remote.Select(ctx, remote.ProfilesTable, remote.Order("first_name", false))
		if err != nil {
			return err
		}
		users := make([]models.UserProfile, 0, len(rows))
		for _, row := range rows {
			users = append(users, mapper.ProfileFromRow(row))
		}
		s.mu.Lock()
		s.users = users
		s.mu.Unlock()
		return nil
	})

	fetch(remote.DocActivitiesTable, func() error {
		rows, err := s.remote.Select(ctx, remote.DocActivitiesTable, remote.Order("created_at", true))
		if err != nil {
			return err
		}
		activities := make([]models.DocumentationActivity, 0, len(rows))
		for _, row := range rows {
			activities = append(activities, mapper.DocumentationActivityFromRow(row))
		}
		s.mu.Lock()
		s.docActivities = activities
		s.mu.Unlock()
		return nil
	})

	fetch(remote.SchedulerActivityTable, func() error {
		rows, err := s.remote.Select(ctx, remote.SchedulerActivityTable, remote.Order("due_date", true))
		if err != nil {
			return err
		}
		activities := make([]models.SchedulerActivity, 0, len(rows))
		for _, row := range rows {
			activities = append(activities, mapper.SchedulerActivityFromRow(row))
		}
		s.mu.Lock()
		s.schedulerActivities = activities
		s.mu.Unlock()
		return nil
	})

	wg.Wait()
}
