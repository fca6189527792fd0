package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Customers 返回客户集合快照
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Customer, len(s.customers))
	copy(result, s.customers)
	return result
}

// GetCustomer 按ID查找客户
func (s *Store) GetCustomer(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// AddCustomer 新建客户。表单创建的客户强制进入Onboarding状态，
// 满意度代入默认值，活动日志为空。
// 远端写入失败时回退为仅本地新增（localOnly=true）
func (s *Store) AddCustomer(ctx context.Context, c models.Customer) (*models.Customer, bool, error) {
	c.Status = models.CustomerStatusOnboarding
	c.Active = true
	if c.Satisfaction == 0 {
		c.Satisfaction = models.DefaultSatisfaction
	}
	if c.ActivityLog == nil {
		c.ActivityLog = []models.CustomerLogEntry{}
	}

	row := mapper.CustomerToRow(c)
	row["created_at"] = time.Now().Format("2006-01-02T15:04:05")

	stored, err := s.remote.Insert(ctx, remote.CustomersTable, row)
	if err != nil {
		utils.LogLocalFallback("insert", remote.CustomersTable, err)
		c.ID = "local-" + uuid.NewString()
		s.mu.Lock()
		s.customers = append(s.customers, c)
		s.mu.Unlock()
		return &c, true, nil
	}

	created := mapper.CustomerFromRow(stored)
	s.mu.Lock()
	s.customers = append(s.customers, created)
	s.mu.Unlock()
	return &created, false, nil
}

// UpdateCustomer 整记录替换式保存。
// 远端写入失败时仍把变更应用到内存集合（乐观本地回退），用户不被后端不可用阻塞
func (s *Store) UpdateCustomer(ctx context.Context, c models.Customer) (*models.Customer, bool, error) {
	if _, ok := s.GetCustomer(c.ID); !ok {
		return nil, false, utils.CreateNotFoundError("客户")
	}

	stored, err := s.remote.UpdateByID(ctx, remote.CustomersTable, c.ID, mapper.CustomerToRow(c))
	if err != nil {
		utils.LogLocalFallback("update", remote.CustomersTable, err)
		s.replaceCustomer(c)
		return &c, true, nil
	}

	updated := mapper.CustomerFromRow(stored)
	s.replaceCustomer(updated)
	return &updated, false, nil
}

func (s *Store) replaceCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return
		}
	}
}
