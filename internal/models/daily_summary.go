package models

// DailySummary aggregates today's activity for the dashboard header.
//
// PendingFollowups deliberately counts all-time due follow-ups while every
// other field is today-scoped; the dashboard has always shown it that way.
type DailySummary struct {
	TotalPatients    int     `json:"total_patients"`
	TotalCollection  float64 `json:"total_collection"`
	PendingPayments  float64 `json:"pending_payments"`
	PendingFollowups int     `json:"pending_followups"`
}
