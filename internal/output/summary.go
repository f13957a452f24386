package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vfg2006/snapchat-ads-report/internal/domain"
	"github.com/vfg2006/snapchat-ads-report/pkg/utils"
)

// PrintSummary mostra os totais por campanha depois que o arquivo foi gravado.
func PrintSummary(w io.Writer, table *domain.ReportTable, path string) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	cyan.Fprintf(w, "SNAPCHAT ADS - %s to %s\n", table.Window.StartDate(), table.Window.EndDate())

	totals := table.TotalsByCampaign()
	if len(totals) == 0 {
		dim.Fprintln(w, "  No campaign data in this window.")
		green.Fprintf(w, "Report written to %s\n", path)
		return
	}

	summary := tablewriter.NewWriter(w)
	summary.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{
			tw.AlignLeft,  // Campaign
			tw.AlignRight, // Days
			tw.AlignRight, // Impressions
			tw.AlignRight, // Spend
			tw.AlignRight, // CPM
		}
	})
	summary.Header("Campaign", "Days", "Impressions", "Spend", "CPM")

	var days int
	var impressions int64
	var spend float64
	for _, t := range totals {
		summary.Append(
			t.CampaignID,
			strconv.Itoa(t.Days),
			strconv.FormatInt(t.Impressions, 10),
			fmt.Sprintf("%.2f", t.Spend),
			fmt.Sprintf("%.2f", utils.CostPerMille(t.Spend, t.Impressions)),
		)
		days += t.Days
		impressions += t.Impressions
		spend += t.Spend
	}

	summary.Footer(
		"TOTAL",
		strconv.Itoa(days),
		strconv.FormatInt(impressions, 10),
		fmt.Sprintf("%.2f", spend),
		fmt.Sprintf("%.2f", utils.CostPerMille(spend, impressions)),
	)

	summary.Render()

	green.Fprintf(w, "Report written to %s (%d rows)\n", path, table.Len())
}
