package query

import (
	"strconv"
	"strings"
)

// Status is the lifecycle state of a query ticket.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Priority ranks how urgently a query must be answered.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// SLACompleted is the SLA label of a resolved query.
const SLACompleted = "Completed"

// Query is a ticket raised by a company with the regulator.
type Query struct {
	ID            int64    `json:"id"`
	Company       string   `json:"company"`
	Category      string   `json:"category"`
	Status        Status   `json:"status"`
	Priority      Priority `json:"priority"`
	SubmittedDate string   `json:"submitted_date"`
	SLA           string   `json:"sla"`
	Description   string   `json:"description"`
}

// SLAHours parses the leading hour count of the SLA label, e.g. 48 for
// "48 hours". Labels without a count report false.
func (q Query) SLAHours() (int, bool) {
	fields := strings.Fields(q.SLA)
	if len(fields) == 0 {
		return 0, false
	}
	hours, err := strconv.Atoi(fields[0])
	if err != nil || hours < 0 {
		return 0, false
	}
	return hours, true
}

// ListOptions filters the query list. An empty Status matches all.
type ListOptions struct {
	Search string
	Status Status
}

// Stats counts queries by status.
type Stats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}
