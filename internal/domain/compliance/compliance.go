// Package compliance classifies a company's emissions against its assigned limit.
package compliance

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the compliance classification of a company.
type Status string

const (
	StatusCompliant   Status = "Compliant"
	StatusApproaching Status = "Approaching"
	StatusExceeded    Status = "Exceeded"
)

// ApproachingRatio is the current/limit ratio at which a company starts
// approaching its limit. The boundary itself is Approaching.
const ApproachingRatio = 0.85

// ErrUnknownStatus indicates a status filter value that is not recognised.
var ErrUnknownStatus = errors.New("unknown compliance status")

// Classify returns the compliance status for current emissions against limit.
func Classify(current, limit float64) Status {
	if current > limit {
		return StatusExceeded
	}
	if Ratio(current, limit) >= ApproachingRatio {
		return StatusApproaching
	}
	return StatusCompliant
}

// Ratio returns current/limit. A non-positive limit leaves no headroom, so the
// ratio is reported as 1 instead of dividing by it.
func Ratio(current, limit float64) float64 {
	if limit <= 0 {
		return 1
	}
	return current / limit
}

// Label returns the human-facing label for the status.
func (s Status) Label() string {
	if s == StatusApproaching {
		return "Approaching Limit"
	}
	return string(s)
}

// Filter selects companies by compliance status. The zero value matches all.
type Filter struct {
	status Status
}

// FilterAll matches every status.
var FilterAll = Filter{}

// FilterFor returns a filter matching only s.
func FilterFor(s Status) Filter {
	return Filter{status: s}
}

// ParseFilter parses "all", "compliant", "approaching" or "exceeded",
// ignoring case. An empty string means all.
func ParseFilter(raw string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, nil
	case "compliant":
		return FilterFor(StatusCompliant), nil
	case "approaching":
		return FilterFor(StatusApproaching), nil
	case "exceeded":
		return FilterFor(StatusExceeded), nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// Matches reports whether s passes the filter.
func (f Filter) Matches(s Status) bool {
	return f.status == "" || f.status == s
}

func (f Filter) String() string {
	if f.status == "" {
		return "all"
	}
	return strings.ToLower(string(f.status))
}
