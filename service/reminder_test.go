package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

func init() {
	utils.InitLogger()
}

// stubClient 内存版托管表存储，仅覆盖提醒扫描用到的路径
type stubClient struct {
	tables map[string][]remote.Row
	nextID int
}

func newStubClient() *stubClient {
	return &stubClient{tables: make(map[string][]remote.Row)}
}

func (s *stubClient) Select(ctx context.Context, table string, opts ...remote.SelectOption) ([]remote.Row, error) {
	return s.tables[table], nil
}

func (s *stubClient) Insert(ctx context.Context, table string, row remote.Row) (remote.Row, error) {
	s.nextID++
	stored := make(remote.Row, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	stored["id"] = fmt.Sprintf("%024x", s.nextID)
	s.tables[table] = append(s.tables[table], stored)
	return stored, nil
}

func (s *stubClient) UpdateByID(ctx context.Context, table string, id string, row remote.Row) (remote.Row, error) {
	for i, existing := range s.tables[table] {
		if existing["id"] == id {
			updated := make(remote.Row, len(row)+1)
			for k, v := range row {
				updated[k] = v
			}
			updated["id"] = id
			s.tables[table][i] = updated
			return updated, nil
		}
	}
	return nil, fmt.Errorf("行不存在")
}

func (s *stubClient) DeleteByID(ctx context.Context, table string, id string) error {
	return nil
}

func (s *stubClient) DeleteBy(ctx context.Context, table string, field string, value interface{}) error {
	return nil
}

func TestScanCreatesRemindersForDueActions(t *testing.T) {
	dataStore := store.New(newStubClient())
	now := time.Now()
	today := now.Format("2006-01-02")

	created, _, err := dataStore.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	// 今天到期的未完成活动
	_, _, err = dataStore.AddActivity(context.Background(), store.ActivityInput{
		Type:           models.ActivityTypeCustomer,
		EntityID:       created.ID,
		Details:        "合同续签跟进",
		NextActionDate: today,
	})
	require.NoError(t, err)

	// 未到期的活动不触发提醒
	_, _, err = dataStore.AddActivity(context.Background(), store.ActivityInput{
		Type:           models.ActivityTypeCustomer,
		EntityID:       created.ID,
		Details:        "下个月的回访",
		NextActionDate: now.AddDate(0, 1, 0).Format("2006-01-02"),
	})
	require.NoError(t, err)

	svc := NewReminderService(dataStore, "0 8 * * *")
	count := svc.Scan(context.Background(), now)
	require.Equal(t, 1, count)

	reminders := dataStore.SchedulerActivities()
	require.Len(t, reminders, 1)
	require.Equal(t, "Acme Foods", reminders[0].Title)
	require.Equal(t, today, reminders[0].DueDate)
	require.NotEmpty(t, reminders[0].SourceID)
}

func TestScanDeduplicatesBySource(t *testing.T) {
	dataStore := store.New(newStubClient())
	now := time.Now()
	today := now.Format("2006-01-02")

	created, _, err := dataStore.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	_, _, err = dataStore.AddActivity(context.Background(), store.ActivityInput{
		Type:           models.ActivityTypeCustomer,
		EntityID:       created.ID,
		Details:        "合同续签跟进",
		NextActionDate: today,
	})
	require.NoError(t, err)

	svc := NewReminderService(dataStore, "0 8 * * *")
	require.Equal(t, 1, svc.Scan(context.Background(), now))

	// 同一来源同一到期日重复扫描不再生成
	require.Equal(t, 0, svc.Scan(context.Background(), now))
	require.Len(t, dataStore.SchedulerActivities(), 1)
}

func TestScanSkipsDoneEntries(t *testing.T) {
	dataStore := store.New(newStubClient())
	now := time.Now()
	today := now.Format("2006-01-02")

	created, _, err := dataStore.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	id, _, err := dataStore.AddActivity(context.Background(), store.ActivityInput{
		Type:           models.ActivityTypeCustomer,
		EntityID:       created.ID,
		Details:        "已完成的跟进",
		NextActionDate: today,
	})
	require.NoError(t, err)

	_, err = dataStore.ToggleActivityDone(context.Background(), id)
	require.NoError(t, err)

	svc := NewReminderService(dataStore, "0 8 * * *")
	require.Equal(t, 0, svc.Scan(context.Background(), now))
	require.Empty(t, dataStore.SchedulerActivities())
}

func TestScanCoversDocumentationActivities(t *testing.T) {
	dataStore := store.New(newStubClient())
	now := time.Now()
	today := now.Format("2006-01-02")

	_, _, err := dataStore.AddActivity(context.Background(), store.ActivityInput{
		Type:           models.ActivityTypeDocumentation,
		EntityID:       "Platform",
		Details:        "更新部署手册",
		NextActionDate: today,
	})
	require.NoError(t, err)

	svc := NewReminderService(dataStore, "0 8 * * *")
	require.Equal(t, 1, svc.Scan(context.Background(), now))

	reminders := dataStore.SchedulerActivities()
	require.Len(t, reminders, 1)
	require.Equal(t, "Platform", reminders[0].Title)
}
