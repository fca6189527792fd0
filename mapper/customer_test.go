package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func TestCustomerFromRowDefaults(t *testing.T) {
	c := CustomerFromRow(Row{
		"id":      "64a000000000000000000001",
		"company": "Acme Foods",
	})

	require.Equal(t, "Acme Foods", c.Company)
	// 满意度缺失时代入默认值而不是0
	require.Equal(t, models.DefaultSatisfaction, c.Satisfaction)
	// 集合字段保证非nil，前端遍历无需判空
	require.NotNil(t, c.ActivityLog)
	require.NotNil(t, c.CustomerTeam)
	require.NotNil(t, c.Attachments)
	require.Empty(t, c.ActivityLog)
}

func TestCustomerRoundTrip(t *testing.T) {
	original := models.Customer{
		ID:           "64a000000000000000000001",
		Company:      "Acme Foods",
		Name:         "Jo Lee",
		Email:        "jo@acme.example",
		Phone:        "555-0100",
		Status:       models.CustomerStatusLive,
		Active:       true,
		ARR:          "120000",
		SignedDate:   "2025-03-01",
		Terms:        12,
		Satisfaction: 9,
		CustomerTeam: []models.TeamContact{
			{FirstName: "Sam", LastName: "Wu", Email: "sam@acme.example", Role: "Ops"},
		},
		ActivityLog: []models.CustomerLogEntry{
			{ID: "1723456789000", Timestamp: "2026-08-12T10:30:00", Content: "季度回顾", AuthorName: "Jo Lee", Origin: models.OriginRemote},
		},
		LicensedProducts: []string{"Platform", "Analytics"},
		Netsuite:         map[string]interface{}{},
		Tulip:            map[string]interface{}{},
		Attachments:      []models.FileMeta{},
		Documents:        []models.FileMeta{},
		PcgSupportPocId:  "64a000000000000000000002",
	}

	restored := CustomerFromRow(CustomerToRow(original))
	// id列由存储端生成，写库行不包含id
	restored.ID = original.ID

	require.Equal(t, original, restored)
}

func TestCustomerToRowNullifiesEmptyPocIds(t *testing.T) {
	row := CustomerToRow(models.Customer{Company: "Acme Foods"})

	// 空的人员引用写库为null，避免外键校验拒绝空串
	require.Nil(t, row["pcg_support_poc_id"])
	require.Nil(t, row["pcg_sales_poc_id"])
}

func TestCustomerLogEntryOriginFallback(t *testing.T) {
	// 带显式origin的条目以存储值为准
	entry := CustomerLogEntryFromRow(Row{"id": "local-abc", "origin": "remote"})
	require.Equal(t, models.OriginRemote, entry.Origin)

	// 历史数据缺origin时按ID启发式归类
	entry = CustomerLogEntryFromRow(Row{"id": "local-abc"})
	require.Equal(t, models.OriginLocal, entry.Origin)

	entry = CustomerLogEntryFromRow(Row{"id": "1723456789000"})
	require.Equal(t, models.OriginRemote, entry.Origin)
}
