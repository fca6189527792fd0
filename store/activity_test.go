package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func seedCustomerWithLog(t *testing.T, s *Store, entries int) models.Customer {
	t.Helper()
	created, _, err := s.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	for i := 0; i < entries; i++ {
		_, _, err := s.AddActivity(context.Background(), ActivityInput{
			Type:       models.ActivityTypeCustomer,
			EntityID:   created.ID,
			Details:    "跟进记录",
			AuthorName: "Jo Lee",
		})
		require.NoError(t, err)
		// 条目ID是毫秒时间戳，保证相邻条目不同
		time.Sleep(2 * time.Millisecond)
	}

	got, ok := s.GetCustomer(created.ID)
	require.True(t, ok)
	require.Len(t, got.ActivityLog, entries)
	return got
}

func TestAddCustomerActivityAppendsEntry(t *testing.T) {
	s := New(newFakeClient())
	customer := seedCustomerWithLog(t, s, 1)

	entry := customer.ActivityLog[0]
	require.Equal(t, "跟进记录", entry.Content)
	require.Equal(t, models.OriginRemote, entry.Origin)
	require.NotEmpty(t, entry.Timestamp)
}

func TestAddCustomerActivityFallback(t *testing.T) {
	client := newFakeClient()
	s := New(client)
	created, _, err := s.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	client.setFailing(true)
	id, localOnly, err := s.AddActivity(context.Background(), ActivityInput{
		Type:     models.ActivityTypeCustomer,
		EntityID: created.ID,
		Details:  "断网时的跟进",
	})
	require.NoError(t, err)
	require.True(t, localOnly)
	require.True(t, strings.HasPrefix(id, "cust-local-"))

	got, _ := s.GetCustomer(created.ID)
	require.Len(t, got.ActivityLog, 1)
	require.Equal(t, models.OriginLocal, got.ActivityLog[0].Origin)
}

func TestToggleFlipsOnlyTargetEntry(t *testing.T) {
	s := New(newFakeClient())
	customer := seedCustomerWithLog(t, s, 3)
	other := seedCustomerWithLog(t, s, 2)

	target := customer.ActivityLog[1]
	syntheticID := models.SyntheticID(models.ActivityTypeCustomer, target.ID)

	_, err := s.ToggleActivityDone(context.Background(), syntheticID)
	require.NoError(t, err)

	got, _ := s.GetCustomer(customer.ID)
	for _, entry := range got.ActivityLog {
		if entry.ID == target.ID {
			require.True(t, entry.IsDone)
		} else {
			require.False(t, entry.IsDone)
		}
	}

	// 其他客户的日志不受影响
	untouched, _ := s.GetCustomer(other.ID)
	require.Len(t, untouched.ActivityLog, 2)
	for _, entry := range untouched.ActivityLog {
		require.False(t, entry.IsDone)
	}
}

func TestEditActivityKeepsEntryID(t *testing.T) {
	s := New(newFakeClient())
	customer := seedCustomerWithLog(t, s, 1)
	entry := customer.ActivityLog[0]
	syntheticID := models.SyntheticID(models.ActivityTypeCustomer, entry.ID)

	_, err := s.EditActivity(context.Background(), syntheticID, "改后的内容", "2026-09-15")
	require.NoError(t, err)

	got, _ := s.GetCustomer(customer.ID)
	require.Len(t, got.ActivityLog, 1)
	require.Equal(t, entry.ID, got.ActivityLog[0].ID)
	require.Equal(t, "改后的内容", got.ActivityLog[0].Content)
	require.Equal(t, "2026-09-15", got.ActivityLog[0].NextActionDate)
}

func TestDeleteActivityRemovesEntry(t *testing.T) {
	s := New(newFakeClient())
	customer := seedCustomerWithLog(t, s, 2)
	target := customer.ActivityLog[0]

	_, err := s.DeleteActivity(context.Background(), models.SyntheticID(models.ActivityTypeCustomer, target.ID))
	require.NoError(t, err)

	got, _ := s.GetCustomer(customer.ID)
	require.Len(t, got.ActivityLog, 1)
	require.NotEqual(t, target.ID, got.ActivityLog[0].ID)
}

func TestMutateUnknownActivityReturnsError(t *testing.T) {
	s := New(newFakeClient())

	_, err := s.ToggleActivityDone(context.Background(), "cust-ffffffffffffffffffffffff")
	require.Error(t, err)

	_, err = s.ToggleActivityDone(context.Background(), "unknown-123")
	require.Error(t, err)
}

func TestTrainingActivityIsSessionLocal(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	id, localOnly, err := s.AddActivity(context.Background(), ActivityInput{
		Type:     models.ActivityTypeTraining,
		EntityID: "emp-1",
		Details:  "完成基础认证培训",
	})
	require.NoError(t, err)
	require.False(t, localOnly)
	require.True(t, strings.HasPrefix(id, "train-local-"))

	// 培训活动不落远端
	require.Zero(t, client.insertCalls)
	require.Len(t, s.TrainingActivities(), 1)

	_, err = s.ToggleActivityDone(context.Background(), id)
	require.NoError(t, err)
	require.True(t, s.TrainingActivities()[0].IsDone)

	_, err = s.DeleteActivity(context.Background(), id)
	require.NoError(t, err)
	require.Empty(t, s.TrainingActivities())
}

func TestDocumentationActivityPersisted(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	id, localOnly, err := s.AddActivity(context.Background(), ActivityInput{
		Type:     models.ActivityTypeDocumentation,
		EntityID: "Platform",
		Details:  "更新部署手册",
	})
	require.NoError(t, err)
	require.False(t, localOnly)
	require.True(t, strings.HasPrefix(id, "doc-"))
	require.Equal(t, 1, client.insertCalls)

	docs := s.DocActivities()
	require.Len(t, docs, 1)
	require.Equal(t, "Platform", docs[0].ProductType)
	require.Equal(t, models.OriginRemote, docs[0].Origin)
}
