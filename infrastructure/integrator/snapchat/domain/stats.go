package snapdomain

type StatsResponse struct {
	RequestStatus   string                  `json:"request_status"`
	RequestID       string                  `json:"request_id"`
	TimeseriesStats []TimeseriesStatWrapper `json:"timeseries_stats"`
}

type TimeseriesStatWrapper struct {
	SubRequestStatus string          `json:"sub_request_status"`
	TimeseriesStat   *TimeseriesStat `json:"timeseries_stat"`
}

type TimeseriesStat struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Granularity string            `json:"granularity"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Timeseries  []TimeseriesEntry `json:"timeseries"`
}

type TimeseriesEntry struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Stats     *Stats `json:"stats"`
}

// Stats traz o gasto em micro-moeda, como a API entrega.
type Stats struct {
	Impressions *int64 `json:"impressions"`
	Spend       *int64 `json:"spend"`
}
