package domain

// Tipos de wire da Reporting API v4 (reports:batchGet)

type ReportResponse struct {
	Reports []Report `json:"reports"`
}

type Report struct {
	Data ReportData `json:"data"`
}

type ReportData struct {
	Rows []ReportRow `json:"rows"`
}

type ReportRow struct {
	Dimensions []string          `json:"dimensions"`
	Metrics    []DateRangeValues `json:"metrics"`
}

type DateRangeValues struct {
	Values []string `json:"values"`
}

// CampaignReport é o relatório achatado devolvido ao dashboard
type CampaignReport struct {
	Campaigns    []CampaignEntry `json:"campaigns"`
	TotalMetrics map[string]int  `json:"total_metrics"`
}

type CampaignEntry struct {
	Name               string  `json:"name"`
	Source             string  `json:"source"`
	Medium             string  `json:"medium"`
	Sessions           int     `json:"sessions"`
	Users              int     `json:"users"`
	Pageviews          int     `json:"pageviews"`
	BounceRate         float64 `json:"bounce_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
}
