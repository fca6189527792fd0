package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Employees 返回员工集合快照
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Employee, len(s.employees))
	copy(result, s.employees)
	return result
}

// GetEmployee 按ID查找员工（客户POC字段与文档/培训活动引用）
func (s *Store) GetEmployee(id string) (models.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// AddEmployee 新增员工，远端失败回退为仅本地新增
func (s *Store) AddEmployee(ctx context.Context, e models.Employee) (*models.Employee, bool, error) {
	stored, err := s.remote.Insert(ctx, remote.EmployeesTable, mapper.EmployeeToRow(e))
	if err != nil {
		utils.LogLocalFallback("insert", remote.EmployeesTable, err)
		e.ID = "local-" + uuid.NewString()
		s.mu.Lock()
		s.employees = append(s.employees, e)
		s.mu.Unlock()
		return &e, true, nil
	}

	created := mapper.EmployeeFromRow(stored)
	s.mu.Lock()
	s.employees = append(s.employees, created)
	s.mu.Unlock()
	return &created, false, nil
}

// UpdateEmployee 更新员工，远端失败回退为仅本地变更
func (s *Store) UpdateEmployee(ctx context.Context, e models.Employee) (*models.Employee, bool, error) {
	if _, ok := s.GetEmployee(e.ID); !ok {
		return nil, false, utils.CreateNotFoundError("员工")
	}

	stored, err := s.remote.UpdateByID(ctx, remote.EmployeesTable, e.ID, mapper.EmployeeToRow(e))
	if err != nil {
		utils.LogLocalFallback("update", remote.EmployeesTable, err)
		s.replaceEmployee(e)
		return &e, true, nil
	}

	updated := mapper.EmployeeFromRow(stored)
	s.replaceEmployee(updated)
	return &updated, false, nil
}

// RemoveEmployee 删除员工，远端失败回退为仅本地删除
func (s *Store) RemoveEmployee(ctx context.Context, id string) (bool, error) {
	if _, ok := s.GetEmployee(id); !ok {
		return false, utils.CreateNotFoundError("员工")
	}

	localOnly := false
	if err := s.remote.DeleteByID(ctx, remote.EmployeesTable, id); err != nil {
		utils.LogLocalFallback("delete", remote.EmployeesTable, err)
		localOnly = true
	}

	s.mu.Lock()
	filtered := s.employees[:0]
	for _, e := range s.employees {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	s.employees = filtered
	s.mu.Unlock()
	return localOnly, nil
}

func (s *Store) replaceEmployee(e models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == e.ID {
			s.employees[i] = e
			return
		}
	}
}
