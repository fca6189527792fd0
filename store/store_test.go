package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/utils"
)

func init() {
	utils.InitLogger()
}

func TestAddCustomerRemoteSuccess(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	created, localOnly, err := s.AddCustomer(context.Background(), models.Customer{
		Company: "Acme Foods",
		Name:    "Jo Lee",
	})
	require.NoError(t, err)
	require.False(t, localOnly)
	require.NotEmpty(t, created.ID)
	require.False(t, strings.HasPrefix(created.ID, "local-"))

	// 强制进入Onboarding，满意度取默认值
	require.Equal(t, models.CustomerStatusOnboarding, created.Status)
	require.True(t, created.Active)
	require.Equal(t, models.DefaultSatisfaction, created.Satisfaction)
	require.Empty(t, created.ActivityLog)
}

func TestAddCustomerLocalFallback(t *testing.T) {
	client := newFakeClient()
	client.setFailing(true)
	s := New(client)

	created, localOnly, err := s.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)
	require.True(t, localOnly)
	require.True(t, strings.HasPrefix(created.ID, "local-"))

	// 本地回退后集合内可见
	got, ok := s.GetCustomer(created.ID)
	require.True(t, ok)
	require.Equal(t, "Acme Foods", got.Company)
}

func TestUpdateCustomerLocalFallback(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	created, _, err := s.AddCustomer(context.Background(), models.Customer{Company: "Acme Foods"})
	require.NoError(t, err)

	client.setFailing(true)
	created.Company = "Acme Foods Ltd"
	updated, localOnly, err := s.UpdateCustomer(context.Background(), *created)
	require.NoError(t, err)
	require.True(t, localOnly)
	require.Equal(t, "Acme Foods Ltd", updated.Company)

	got, ok := s.GetCustomer(created.ID)
	require.True(t, ok)
	require.Equal(t, "Acme Foods Ltd", got.Company)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := New(newFakeClient())

	_, _, err := s.UpdateCustomer(context.Background(), models.Customer{ID: "missing", Company: "X"})
	require.Error(t, err)
}

func TestAddLeadHardFailsWhenRemoteDown(t *testing.T) {
	client := newFakeClient()
	client.setFailing(true)
	s := New(client)

	// 线索创建不做本地回退，远端不可用直接报错
	created, localOnly, err := s.AddLead(context.Background(), models.Lead{CompanyName: "Beta Corp"})
	require.Error(t, err)
	require.False(t, localOnly)
	require.Nil(t, created)
	require.Empty(t, s.Leads())
}

func TestUpdateLeadHardFailsWhenRemoteDown(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	created, _, err := s.AddLead(context.Background(), models.Lead{CompanyName: "Beta Corp"})
	require.NoError(t, err)

	client.setFailing(true)
	created.CompanyName = "Beta Corp v2"
	_, _, err = s.UpdateLead(context.Background(), *created)
	require.Error(t, err)

	// 失败的更新不得污染内存集合
	got, ok := s.GetLead(created.ID)
	require.True(t, ok)
	require.Equal(t, "Beta Corp", got.CompanyName)
}

func TestRemoveLeadLocalFallback(t *testing.T) {
	client := newFakeClient()
	s := New(client)

	created, _, err := s.AddLead(context.Background(), models.Lead{CompanyName: "Beta Corp"})
	require.NoError(t, err)

	client.setFailing(true)
	localOnly, err := s.RemoveLead(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, localOnly)
	require.Empty(t, s.Leads())
}

func TestRemoveUserSelfForbidden(t *testing.T) {
	s := New(newFakeClient())

	_, err := s.RemoveUser(context.Background(), "u1", "u1")
	require.Error(t, err)
}

func TestAddProductRejectsDuplicate(t *testing.T) {
	s := New(newFakeClient())

	_, err := s.AddProduct(context.Background(), "Platform")
	require.NoError(t, err)

	_, err = s.AddProduct(context.Background(), "Platform")
	require.Error(t, err)
}
