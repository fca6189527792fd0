package store

import (
	"context"

	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// Products 返回产品名称集合快照
func (s *Store) Products() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.products))
	copy(result, s.products)
	return result
}

// AddProduct 新增产品，远端失败回退为仅本地新增
func (s *Store) AddProduct(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, utils.CreateBadRequestError("产品名称不能为空")
	}

	s.mu.RLock()
	for _, p := range s.products {
		if p == name {
			s.mu.RUnlock()
			return false, utils.CreateBadRequestError("产品已存在: " + name)
		}
	}
	s.mu.RUnlock()

	localOnly := false
	if _, err := s.remote.Insert(ctx, remote.ProductsTable, remote.Row{"name": name}); err != nil {
		utils.LogLocalFallback("insert", remote.ProductsTable, err)
		localOnly = true
	}

	s.mu.Lock()
	s.products = append(s.products, name)
	s.mu.Unlock()
	return localOnly, nil
}

// RemoveProduct 按名称删除产品，远端失败回退为仅本地删除
func (s *Store) RemoveProduct(ctx context.Context, name string) (bool, error) {
	localOnly := false
	if err := s.remote.DeleteBy(ctx, remote.ProductsTable, "name", name); err != nil {
		utils.LogLocalFallback("delete", remote.ProductsTable, err)
		localOnly = true
	}

	s.mu.Lock()
	filtered := s.products[:0]
	for _, p := range s.products {
		if p != name {
			filtered = append(filtered, p)
		}
	}
	s.products = filtered
	s.mu.Unlock()
	return localOnly, nil
}
