package domain

import "time"

// MicroCurrencyFactor converte micro-moeda da API para a moeda do relatório.
const MicroCurrencyFactor = 1_000_000

type DailyStat struct {
	CampaignID  string    `json:"campaign_id"`
	PeriodStart time.Time `json:"start_time"`
	PeriodEnd   time.Time `json:"end_time"`
	Impressions int64     `json:"impressions"`
	Spend       float64   `json:"spend"`
}

func MicroToCurrency(micro int64) float64 {
	return float64(micro) / MicroCurrencyFactor
}
