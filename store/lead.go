package store

import (
	"context"
	"net/http"
	"time"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Leads 返回线索集合快照
func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Lead, len(s.leads))
	copy(result, s.leads)
	return result
}

// GetLead 按ID查找线索
func (s *Store) GetLead(id string) (models.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lead{}, false
}

// AddLead 新建线索。数值指标在映射边界统一清洗。
// 与其它实体不同，远端写入失败直接上抛，不做本地回退，内存集合保持不变
func (s *Store) AddLead(ctx context.Context, l models.Lead) (*models.Lead, bool, error) {
	row := mapper.LeadToRow(l)
	row["created_at"] = time.Now().Format("2006-01-02T15:04:05")

	stored, err := s.remote.Insert(ctx, remote.LeadsTable, row)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"company": l.CompanyName}, "新建线索失败")
		return nil, false, utils.NewAppError("远端服务不可用，线索未保存", http.StatusServiceUnavailable, err)
	}

	created := mapper.LeadFromRow(stored)
	s.mu.Lock()
	s.leads = append(s.leads, created)
	s.mu.Unlock()
	return &created, false, nil
}

// UpdateLead 更新线索，远端失败同样直接上抛
func (s *Store) UpdateLead(ctx context.Context, l models.Lead) (*models.Lead, bool, error) {
	if _, ok := s.GetLead(l.ID); !ok {
		return nil, false, utils.CreateNotFoundError("线索")
	}

	stored, err := s.remote.UpdateByID(ctx, remote.LeadsTable, l.ID, mapper.LeadToRow(l))
	if err != nil {
		utils.LogError(err, map[string]interface{}{"id": l.ID}, "更新线索失败")
		return nil, false, utils.NewAppError("远端服务不可用，线索未保存", http.StatusServiceUnavailable, err)
	}

	updated := mapper.LeadFromRow(stored)
	s.mu.Lock()
	for i := range s.leads {
		if s.leads[i].ID == updated.ID {
			s.leads[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return &updated, false, nil
}

// RemoveLead 删除线索，远端失败时回退为仅本地删除
func (s *Store) RemoveLead(ctx context.Context, id string) (bool, error) {
	if _, ok := s.GetLead(id); !ok {
		return false, utils.CreateNotFoundError("线索")
	}

	localOnly := false
	if err := s.remote.DeleteByID(ctx, remote.LeadsTable, id); err != nil {
		utils.LogLocalFallback("delete", remote.LeadsTable, err)
		localOnly = true
	}

	s.mu.Lock()
	filtered := s.leads[:0]
	for _, l := range s.leads {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	s.leads = filtered
	s.mu.Unlock()
	return localOnly, nil
}
