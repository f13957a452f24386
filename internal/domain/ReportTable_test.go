package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicroToCurrency(t *testing.T) {
	tests := []struct {
		micro int64
		want  float64
	}{
		{micro: 0, want: 0},
		{micro: 1, want: 0.000001},
		{micro: 5_000_000, want: 5.0},
		{micro: 1_234_567, want: 1.234567},
		{micro: 999_999_999_000_000, want: 999_999_999},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MicroToCurrency(tt.micro), "micro %d", tt.micro)
	}
}

func TestReportTable_AppendAndFreeze(t *testing.T) {
	table := NewReportTable(DateWindow{})

	table.Append(DailyStat{CampaignID: "a", Impressions: 10, Spend: 1.5})
	table.Append(
		DailyStat{CampaignID: "b", Impressions: 5, Spend: 0.5},
		DailyStat{CampaignID: "a", Impressions: 20, Spend: 2},
	)

	rows := table.Freeze()
	assert.Len(t, rows, 3)
	assert.True(t, table.Frozen())

	table.Append(DailyStat{CampaignID: "c"})
	assert.Equal(t, 3, table.Len())

	rows[0].CampaignID = "mutated"
	assert.Equal(t, "a", table.Rows()[0].CampaignID)
}

func TestReportTable_TotalsByCampaign(t *testing.T) {
	table := NewReportTable(DateWindow{})
	table.Append(
		DailyStat{CampaignID: "a", Impressions: 10, Spend: 1.5},
		DailyStat{CampaignID: "b", Impressions: 5, Spend: 0.5},
		DailyStat{CampaignID: "a", Impressions: 20, Spend: 2},
	)

	totals := table.TotalsByCampaign()

	assert.Equal(t, []CampaignTotals{
		{CampaignID: "a", Days: 2, Impressions: 30, Spend: 3.5},
		{CampaignID: "b", Days: 1, Impressions: 5, Spend: 0.5},
	}, totals)
}
