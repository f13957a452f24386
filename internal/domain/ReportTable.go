package domain

// ReportTable acumula as linhas de todas as campanhas de uma execução.
// Nunca é reaproveitada entre execuções.
type ReportTable struct {
	Window DateWindow
	rows   []DailyStat
	frozen bool
}

// CampaignTotals agrega as linhas de uma campanha para o resumo da execução.
type CampaignTotals struct {
	CampaignID  string
	Days        int
	Impressions int64
	Spend       float64
}

func NewReportTable(window DateWindow) *ReportTable {
	return &ReportTable{
		Window: window,
		rows:   make([]DailyStat, 0),
	}
}

// Append adiciona linhas no lugar. Depois de Freeze a tabela não aceita mais linhas.
func (t *ReportTable) Append(rows ...DailyStat) {
	if t.frozen {
		return
	}
	t.rows = append(t.rows, rows...)
}

// Freeze encerra a construção e devolve uma cópia das linhas para exportação.
func (t *ReportTable) Freeze() []DailyStat {
	t.frozen = true
	return t.Rows()
}

func (t *ReportTable) Rows() []DailyStat {
	out := make([]DailyStat, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *ReportTable) Len() int {
	return len(t.rows)
}

func (t *ReportTable) Frozen() bool {
	return t.frozen
}

// TotalsByCampaign soma impressões e gasto por campanha, na ordem de aparição.
func (t *ReportTable) TotalsByCampaign() []CampaignTotals {
	index := make(map[string]int)
	totals := make([]CampaignTotals, 0)

	for _, row := range t.rows {
		i, ok := index[row.CampaignID]
		if !ok {
			i = len(totals)
			index[row.CampaignID] = i
			totals = append(totals, CampaignTotals{CampaignID: row.CampaignID})
		}

		totals[i].Days++
		totals[i].Impressions += row.Impressions
		totals[i].Spend += row.Spend
	}

	return totals
}
