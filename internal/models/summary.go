package models

// SummaryGroup is one row of the monthly aggregation: the summed amount of
// all transactions sharing a (category, status) pair inside the window.
type SummaryGroup struct {
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Total    float64 `json:"total"`
}
