package models

import "time"

// Reminder recurrence values. Recurrence is informational: the dispatch job
// never schedules the next occurrence.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

type Reminder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Datetime    time.Time  `json:"datetime"`
	Recurrence  string     `json:"recurrence"`
	EmailNotify bool       `json:"emailNotify"`
	Completed   bool       `json:"completed"`
	EmailSentAt *time.Time `json:"emailSentAt"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ValidRecurrence reports whether r is one of the allowed recurrence values.
func ValidRecurrence(r string) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}
