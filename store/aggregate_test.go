package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func TestBuildFeedSortsDescending(t *testing.T) {
	feed := BuildFeed(FeedSources{
		Customers: []models.Customer{{
			ID:      "c1",
			Company: "Acme Foods",
			ActivityLog: []models.CustomerLogEntry{
				{ID: "1", Timestamp: "2026-08-01T10:00:00", Content: "早"},
				{ID: "2", Timestamp: "2026-08-20T10:00:00", Content: "晚"},
			},
		}},
		DocActivities: []models.DocumentationActivity{
			{ID: "d1", ProductType: "Platform", ActivityDate: "2026-08-10T09:00:00"},
		},
	})

	require.Len(t, feed, 3)
	require.Equal(t, "cust-2", feed[0].ID)
	require.Equal(t, "doc-d1", feed[1].ID)
	require.Equal(t, "cust-1", feed[2].ID)
}

func TestBuildFeedNoDropNoDuplicate(t *testing.T) {
	src := FeedSources{
		Customers: []models.Customer{{
			ID:      "c1",
			Company: "Acme Foods",
			ActivityLog: []models.CustomerLogEntry{
				{ID: "1", Timestamp: "2026-08-01"},
				{ID: "2", Timestamp: "2026-08-02"},
			},
		}},
		DocActivities: []models.DocumentationActivity{{ID: "d1", ActivityDate: "2026-08-03"}},
		Training:      []models.LocalActivity{{ID: "t1", Timestamp: "2026-08-04"}},
		Presales:      []models.LocalActivity{{ID: "p1", Timestamp: "2026-08-05"}},
		Scheduler:     []models.SchedulerActivity{{ID: "s1", DueDate: "2026-08-06"}},
	}

	feed := BuildFeed(src)
	require.Len(t, feed, 6)

	seen := make(map[string]bool)
	for _, item := range feed {
		require.False(t, seen[item.ID], "重复的合成ID: %s", item.ID)
		seen[item.ID] = true
	}
}

func TestBuildFeedSyntheticIDReversible(t *testing.T) {
	feed := BuildFeed(FeedSources{
		Scheduler: []models.SchedulerActivity{{ID: "abc123", Title: "提醒", DueDate: "2026-08-06"}},
	})
	require.Len(t, feed, 1)

	ref, err := models.ParseSyntheticID(feed[0].ID)
	require.NoError(t, err)
	require.Equal(t, models.ActivityTypeScheduler, ref.Type)
	require.Equal(t, "abc123", ref.NativeID)
}

func TestBuildFeedDateOnlyNormalizedToMorning(t *testing.T) {
	feed := BuildFeed(FeedSources{
		DocActivities: []models.DocumentationActivity{{ID: "d1", ActivityDate: "2026-08-10"}},
	})
	require.Len(t, feed, 1)
	require.Equal(t, "2026-08-10T08:00:00", feed[0].Timestamp)
}

func TestBuildFeedUnknownMemberPlaceholder(t *testing.T) {
	feed := BuildFeed(FeedSources{
		DocActivities: []models.DocumentationActivity{
			{ID: "d1", ProductType: "Platform", TeamMemberID: "missing", ActivityDate: "2026-08-10"},
		},
		Training: []models.LocalActivity{
			{ID: "t1", EntityID: "missing", Timestamp: "2026-08-11"},
		},
		Employees: []models.Employee{{ID: "e1", FirstName: "Jo", LastName: "Lee"}},
	})

	require.Len(t, feed, 2)
	for _, item := range feed {
		switch item.Type {
		case models.ActivityTypeDocumentation:
			require.Equal(t, UnknownMemberName, item.SubTitle)
		case models.ActivityTypeTraining:
			require.Equal(t, UnknownMemberName, item.Title)
		}
	}
}

func TestBuildFeedResolvesEmployeeAndLeadNames(t *testing.T) {
	feed := BuildFeed(FeedSources{
		DocActivities: []models.DocumentationActivity{
			{ID: "d1", ProductType: "Platform", TeamMemberID: "e1", ActivityDate: "2026-08-10"},
		},
		Presales: []models.LocalActivity{
			{ID: "p1", EntityID: "l1", Timestamp: "2026-08-11"},
		},
		Employees: []models.Employee{{ID: "e1", FirstName: "Jo", LastName: "Lee"}},
		Leads:     []models.Lead{{ID: "l1", CompanyName: "Beta Corp"}},
	})

	require.Len(t, feed, 2)
	for _, item := range feed {
		switch item.Type {
		case models.ActivityTypeDocumentation:
			require.Equal(t, "Jo Lee", item.SubTitle)
			require.Equal(t, "e1", item.EmployeeID)
		case models.ActivityTypePresales:
			require.Equal(t, "Beta Corp", item.Title)
			require.Equal(t, "l1", item.LeadID)
		}
	}
}
