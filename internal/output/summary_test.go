package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/internal/usecases/reporting"
)

func init() {
	color.NoColor = true
}

func TestPrintSummary(t *testing.T) {
	window, err := domain.ParseDateWindow("2021-01-01", "2021-01-03")
	require.NoError(t, err)

	day := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	table := domain.NewReportTable(window)
	table.Append(
		domain.DailyStat{CampaignID: "c1", PeriodStart: day, PeriodEnd: day.AddDate(0, 0, 1), Impressions: 1000, Spend: 5},
		domain.DailyStat{CampaignID: "c1", PeriodStart: day.AddDate(0, 0, 1), PeriodEnd: day.AddDate(0, 0, 2), Impressions: 1000, Spend: 5},
		domain.DailyStat{CampaignID: "c2", PeriodStart: day, PeriodEnd: day.AddDate(0, 0, 1), Impressions: 0, Spend: 0},
	)

	var buf bytes.Buffer
	PrintSummary(&buf, table, "snap_2021-01-01_2021-01-03.csv")

	out := buf.String()
	assert.Contains(t, out, "SNAPCHAT ADS - 2021-01-01 to 2021-01-03")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "5.00") // CPM de c1
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Report written to snap_2021-01-01_2021-01-03.csv (3 rows)")
}

func TestPrintSummary_Empty(t *testing.T) {
	window, err := domain.ParseDateWindow("2021-01-01", "2021-01-03")
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, domain.NewReportTable(window), "out.csv")

	assert.Contains(t, buf.String(), "No campaign data in this window.")
	assert.Contains(t, buf.String(), "Report written to out.csv")
}

func TestProgress_DisabledIsNoop(t *testing.T) {
	p := &Progress{}
	assert.False(t, p.Enabled())

	for _, stage := range []reporting.Stage{reporting.StageInit, reporting.StageFetching, reporting.StageDone, reporting.StageAborted} {
		assert.NotPanics(t, func() { p.Observe(reporting.ProgressEvent{Stage: stage}) })
	}
}

func TestNewProgress_QuietDisables(t *testing.T) {
	assert.False(t, NewProgress(nil, true).Enabled())
}
