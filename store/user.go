package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/pcgops/cscrm_end/mapper"
	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Users 返回用户档案集合快照
func (s *Store) Users() []models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.UserProfile, len(s.users))
	copy(result, s.users)
	return result
}

// GetUserProfile 按ID查找用户档案
func (s *Store) GetUserProfile(id string) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserProfile{}, false
}

// AddUser 新增用户档案。初始密码由管理员发放，存储哈希
// 远端失败回退为仅本地新增
func (s *Store) AddUser(ctx context.Context, u models.UserProfile, initialPassword string) (*models.UserProfile, bool, error) {
	row := mapper.ProfileToRow(u)
	if initialPassword != "" {
		row["password_hash"] = utils.HashPassword(initialPassword)
	}

	stored, err := s.remote.Insert(ctx, remote.ProfilesTable, row)
	if err != nil {
		utils.LogLocalFallback("insert", remote.ProfilesTable, err)
		u.ID = "local-" + uuid.NewString()
		s.mu.Lock()
		s.users = append(s.users, u)
		s.mu.Unlock()
		return &u, true, nil
	}

	created := mapper.ProfileFromRow(stored)
	s.mu.Lock()
	s.users = append(s.users, created)
	s.mu.Unlock()
	return &created, false, nil
}

// RemoveUser 删除用户档案。用户不能删除自己的档案
// 远端失败回退为仅本地删除
func (s *Store) RemoveUser(ctx context.Context, currentUserID, targetID string) (bool, error) {
	if currentUserID == targetID {
		return false, utils.CreateBadRequestError("不能删除当前登录用户自己的档案")
	}
	if _, ok := s.GetUserProfile(targetID); !ok {
		return false, utils.CreateNotFoundError("用户档案")
	}

	localOnly := false
	if err := s.remote.DeleteByID(ctx, remote.ProfilesTable, targetID); err != nil {
		utils.LogLocalFallback("delete", remote.ProfilesTable, err)
		localOnly = true
	}

	s.mu.Lock()
	filtered := s.users[:0]
	for _, u := range s.users {
		if u.ID != targetID {
			filtered = append(filtered, u)
		}
	}
	s.users = filtered
	s.mu.Unlock()
	return localOnly, nil
}
