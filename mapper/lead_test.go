package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcgops/cscrm_end/models"
)

func TestCleanNumericString(t *testing.T) {
	cases := map[string]string{
		"~1200 operators": "1200",
		"$1,500,000":      "1500000",
		"约3个班次":           "3",
		"-42":             "-42",
		"12.5":            "12.5",
		"n/a":             "",
		"":                "",
	}

	for input, want := range cases {
		require.Equal(t, want, CleanNumericString(input), "input=%q", input)
	}
}

func TestCleanNumericStringIdempotent(t *testing.T) {
	inputs := []string{"~1200 operators", "$1,500,000", "-42", "12.5", "abc", ""}
	for _, input := range inputs {
		once := CleanNumericString(input)
		require.Equal(t, once, CleanNumericString(once), "input=%q", input)
	}
}

func TestCleanNumericNilNotZero(t *testing.T) {
	// 无数字的输入返回nil而不是0，持久层区分"未填"与"填了0"
	require.Nil(t, CleanNumeric(""))
	require.Nil(t, CleanNumeric("tbd"))
	require.Nil(t, CleanNumeric("n/a"))

	got := CleanNumeric("~1200 operators")
	require.NotNil(t, got)
	require.Equal(t, 1200.0, *got)

	got = CleanNumeric("$1.5")
	require.NotNil(t, got)
	require.Equal(t, 1.5, *got)
}

func TestLeadToRowCleansNumericColumns(t *testing.T) {
	row := LeadToRow(models.Lead{
		CompanyName:   "Beta Corp",
		AnnualRevenue: "$1,500,000",
		Operators:     "~1200 operators",
		Shifts:        "tbd",
	})

	require.Equal(t, 1500000.0, row["annual_revenue"])
	require.Equal(t, 1200.0, row["operators"])
	require.Nil(t, row["shifts"])
}

func TestLeadToRowNullifiesEmptyNextStepDate(t *testing.T) {
	row := LeadToRow(models.Lead{CompanyName: "Beta Corp"})
	require.Nil(t, row["next_step_date"])

	row = LeadToRow(models.Lead{CompanyName: "Beta Corp", NextStepDate: "2026-09-01"})
	require.Equal(t, "2026-09-01", row["next_step_date"])
}

func TestLeadStatusDefaultsToNew(t *testing.T) {
	l := LeadFromRow(Row{"id": "64a000000000000000000001", "company_name": "Beta Corp"})
	require.Equal(t, models.LeadStatusNew, l.Status)

	row := LeadToRow(models.Lead{CompanyName: "Beta Corp"})
	require.Equal(t, models.LeadStatusNew, row["status"])
}

func TestLeadFromRowFormatsNumerics(t *testing.T) {
	l := LeadFromRow(Row{
		"id":             "64a000000000000000000001",
		"company_name":   "Beta Corp",
		"annual_revenue": 1500000.0,
		"operators":      1200.0,
	})

	require.Equal(t, "1500000", l.AnnualRevenue)
	require.Equal(t, "1200", l.Operators)
	// 缺失的数值列读出为空串
	require.Equal(t, "", l.Shifts)
}
