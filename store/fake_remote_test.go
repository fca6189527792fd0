package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pcgops/cscrm_end/remote"
)

// fakeClient 内存版托管表存储，支持注入故障模拟远端不可用
type fakeClient struct {
	mu      sync.Mutex
	tables  map[string][]remote.Row
	nextID  int
	failing bool

	insertCalls int
	updateCalls int
	deleteCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{tables: make(map[string][]remote.Row)}
}

var errRemoteDown = errors.New("远端服务不可用")

func (f *fakeClient) setFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *fakeClient) genID() string {
	f.nextID++
	return fmt.Sprintf("%024x", f.nextID)
}

func (f *fakeClient) Select(ctx context.Context, table string, opts ...remote.SelectOption) ([]remote.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errRemoteDown
	}

	q := &remote.SelectQuery{}
	for _, opt := range opts {
		opt(q)
	}

	var result []remote.Row
	for _, row := range f.tables[table] {
		match := true
		for field, value := range q.Filters {
			if row[field] != value {
				match = false
				break
			}
		}
		if match {
			result = append(result, copyRow(row))
		}
	}
	return result, nil
}

func (f *fakeClient) Insert(ctx context.Context, table string, row remote.Row) (remote.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.failing {
		return nil, errRemoteDown
	}

	stored := copyRow(row)
	stored["id"] = f.genID()
	f.tables[table] = append(f.tables[table], stored)
	return copyRow(stored), nil
}

func (f *fakeClient) UpdateByID(ctx context.Context, table string, id string, row remote.Row) (remote.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failing {
		return nil, errRemoteDown
	}

	for i, existing := range f.tables[table] {
		if existing["id"] == id {
			stored := copyRow(row)
			stored["id"] = id
			f.tables[table][i] = stored
			return copyRow(stored), nil
		}
	}
	return nil, errors.New("行不存在")
}

func (f *fakeClient) DeleteByID(ctx context.Context, table string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failing {
		return errRemoteDown
	}

	rows := f.tables[table]
	for i, existing := range rows {
		if existing["id"] == id {
			f.tables[table] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return errors.New("行不存在")
}

func (f *fakeClient) DeleteBy(ctx context.Context, table string, field string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failing {
		return errRemoteDown
	}

	var kept []remote.Row
	for _, existing := range f.tables[table] {
		if existing[field] != value {
			kept = append(kept, existing)
		}
	}
	f.tables[table] = kept
	return nil
}

func copyRow(row remote.Row) remote.Row {
	dup := make(remote.Row, len(row))
	for k, v := range row {
		dup[k] = v
	}
	return dup
}
