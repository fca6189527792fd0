package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func TestDocumentationActivityRowKeepsOrigin(t *testing.T) {
	original := models.DocumentationActivity{
		ProductType:  "培训平台",
		TeamMemberID: "64a000000000000000000002",
		ActivityDate: "2026-08-20",
		Description:  "整理部署文档",
		Origin:       models.OriginLocal,
	}

	row := DocumentationActivityToRow(original)
	// 归属标记必须随行落库，不能依赖ID启发式反推
	require.Equal(t, "local", row["origin"])

	row["id"] = "local-1756600000000"
	restored := DocumentationActivityFromRow(row)
	require.Equal(t, models.OriginLocal, restored.Origin)
	require.Equal(t, original.Description, restored.Description)
}

func TestSchedulerActivityRowKeepsOrigin(t *testing.T) {
	original := models.SchedulerActivity{
		Title:    "跟进提醒",
		DueDate:  "2026-09-01",
		SourceID: "doc-64a000000000000000000003",
		Origin:   models.OriginRemote,
	}

	row := SchedulerActivityToRow(original)
	require.Equal(t, "remote", row["origin"])

	row["id"] = "64a000000000000000000004"
	restored := SchedulerActivityFromRow(row)
	require.Equal(t, models.OriginRemote, restored.Origin)
	require.Equal(t, original.SourceID, restored.SourceID)
}
