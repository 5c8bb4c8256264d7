package mcp

import (
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
)

type EmptyParams struct{}

type ClassifyComplianceParams struct {
	Current float64 `json:"current" jsonschema:"current emissions in tons"`
	Limit   float64 `json:"limit" jsonschema:"assigned emission limit in tons"`
}

type ClassifyComplianceResult struct {
	Status string  `json:"status"`
	Label  string  `json:"label"`
	Ratio  float64 `json:"ratio"`
}

type ListCompaniesParams struct {
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring of the company name"`
	Status string `json:"status,omitempty" jsonschema:"all, compliant, approaching or exceeded"`
	Sector string `json:"sector,omitempty" jsonschema:"exact sector name; all or empty for every sector"`
}

type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Current     float64 `json:"current"`
	Limit       float64 `json:"limit"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	Ratio       float64 `json:"ratio"`
}

type ListCompaniesResult struct {
	Companies []Company `json:"companies"`
	Count     int       `json:"count"`
}

type UpdateCompanyParams struct {
	ID      int64    `json:"id" jsonschema:"company id"`
	Name    *string  `json:"name,omitempty" jsonschema:"new company name"`
	Current *float64 `json:"current,omitempty" jsonschema:"new current emissions in tons"`
}

type SetSectorLimitParams struct {
	Sector string  `json:"sector" jsonschema:"sector whose companies receive the limit"`
	Limit  float64 `json:"limit" jsonschema:"new emission limit in tons, greater than zero"`
}

type SetSectorLimitResult struct {
	Sector  string  `json:"sector"`
	Limit   float64 `json:"limit"`
	Updated int64   `json:"updated"`
}

type SectorBudget struct {
	Sector  string  `json:"sector"`
	Used    float64 `json:"used"`
	Total   float64 `json:"total"`
	Percent int     `json:"percent"`
}

type ListSectorsResult struct {
	Sectors []string       `json:"sectors"`
	Budgets []SectorBudget `json:"budgets"`
}

type ListRegistrationsParams struct {
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring of name, email or organization"`
}

type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	DaysPending  int    `json:"days_pending"`
}

type ListRegistrationsResult struct {
	Requests []Registration `json:"requests"`
	Count    int            `json:"count"`
}

type DecideRegistrationParams struct {
	Email    string `json:"email" jsonschema:"email of the pending request"`
	Decision string `json:"decision" jsonschema:"approve or reject"`
}

type DecideRegistrationResult struct {
	Decision string       `json:"decision"`
	Message  string       `json:"message"`
	Request  Registration `json:"request"`
}

type ListQueriesParams struct {
	Search string `json:"search,omitempty" jsonschema:"case-insensitive substring of company or category"`
	Status string `json:"status,omitempty" jsonschema:"Open, In Progress, Resolved or All"`
}

type Query struct {
	ID            int64  `json:"id"`
	Company       string `json:"company"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	SubmittedDate string `json:"submitted_date"`
	SLA           string `json:"sla"`
	Description   string `json:"description"`
}

type ListQueriesResult struct {
	Queries []Query `json:"queries"`
	Count   int     `json:"count"`
}

type UpdateQueryParams struct {
	ID          int64   `json:"id" jsonschema:"query id"`
	Status      *string `json:"status,omitempty" jsonschema:"Open, In Progress or Resolved"`
	Priority    *string `json:"priority,omitempty" jsonschema:"High, Medium or Low"`
	SLA         *string `json:"sla,omitempty" jsonschema:"SLA label such as 24 hours"`
	Description *string `json:"description,omitempty" jsonschema:"new description"`
}

type DeleteQueryParams struct {
	ID int64 `json:"id" jsonschema:"query id"`
}

type DeleteQueryResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type QueryStatsResult struct {
	Total      int     `json:"total"`
	Open       int     `json:"open"`
	InProgress int     `json:"in_progress"`
	Resolved   int     `json:"resolved"`
	SLAAlerts  int     `json:"sla_alerts"`
	Alerts     []Query `json:"alerts"`
}

type StatCard struct {
	Title   string  `json:"title"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"`
}

type Submission struct {
	Company   string  `json:"company"`
	Emissions float64 `json:"emissions"`
	Status    string  `json:"status"`
	Date      string  `json:"date"`
	Action    string  `json:"action"`
}

type OverviewResult struct {
	Cards             []StatCard            `json:"cards"`
	TrendLabel        string                `json:"trend_label"`
	Trend             []overview.TrendPoint `json:"trend"`
	MapCenter         overview.Hotspot      `json:"map_center"`
	Hotspots          []overview.Hotspot    `json:"hotspots"`
	RecentSubmissions []Submission          `json:"recent_submissions"`
}

type RecentActivityParams struct {
	Subject string `json:"subject,omitempty" jsonschema:"company id, sector, email or query id the entry is about"`
	Type    string `json:"type,omitempty" jsonschema:"activity type such as company_updated"`
	Actor   string `json:"actor,omitempty" jsonschema:"operator name, or system"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum entries, default 20"`
}

type ActivityEntry struct {
	ID        string `json:"id"`
	Actor     string `json:"actor"`
	Type      string `json:"type"`
	Subject   string `json:"subject"`
	Summary   string `json:"summary"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"`
}

type RecentActivityResult struct {
	Entries []ActivityEntry `json:"entries"`
}

func toCompany(v emission.CompanyView) Company {
	return Company{
		ID:          v.ID,
		Name:        v.Name,
		Sector:      v.Sector,
		Current:     v.Current,
		Limit:       v.Limit,
		Status:      string(v.Status),
		StatusLabel: v.StatusLabel,
		Ratio:       v.Ratio,
	}
}

func toQuery(q query.Query) Query {
	return Query{
		ID:            q.ID,
		Company:       q.Company,
		Category:      q.Category,
		Status:        string(q.Status),
		Priority:      string(q.Priority),
		SubmittedDate: q.SubmittedDate,
		SLA:           q.SLA,
		Description:   q.Description,
	}
}

func toQueries(qs []query.Query) []Query {
	out := make([]Query, 0, len(qs))
	for _, q := range qs {
		out = append(out, toQuery(q))
	}
	return out
}

func toActivityEntry(e activity.ActivityEntry) ActivityEntry {
	return ActivityEntry{
		ID:        e.ID,
		Actor:     e.Actor,
		Type:      string(e.ActivityType),
		Subject:   e.Subject,
		Summary:   e.Summary,
		Details:   e.Details,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
