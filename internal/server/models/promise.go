// Package models contains the documents stored in the four collections.
package models

import "time"

// Promise statuses. Pending is the only non-terminal state; the server
// validates membership but does not enforce a transition matrix.
const (
	PromiseStatusPending   = "pending"
	PromiseStatusFulfilled = "fulfilled"
	PromiseStatusBroken    = "broken"
)

// HistoryEntry records one action taken on a promise.
type HistoryEntry struct {
	Action string    `json:"action"`
	By     string    `json:"by"`
	Date   time.Time `json:"date"`
}

type Promise struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     *string        `json:"dueDate"`
	Status      string         `json:"status"`
	CreatedBy   string         `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	History     []HistoryEntry `json:"history"`
}

// ValidPromiseStatus reports whether s is one of the allowed statuses.
func ValidPromiseStatus(s string) bool {
	switch s {
	case PromiseStatusPending, PromiseStatusFulfilled, PromiseStatusBroken:
		return true
	}
	return false
}
