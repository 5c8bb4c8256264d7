package mcp

import (
	"context"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/compliance"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultActivityLimit = 20

type tools struct {
	svc Services
}

func registerTools(server *sdkmcp.Server, svc Services) {
	t := &tools{svc: svc}

	// Emission limits
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "classify_compliance",
		Description: "Classify emissions against a limit: Exceeded above the limit, Approaching at 85% or more, otherwise Compliant",
	}, t.classifyCompliance)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_companies",
		Description: "List companies with their compliance status, filtered by name search, status and sector",
	}, t.listCompanies)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_company",
		Description: "Edit a company's name or current emissions",
	}, t.updateCompany)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_sector_limit",
		Description: "Set the emission limit of every company in a sector",
	}, t.setSectorLimit)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sectors",
		Description: "List sectors and their emission budget usage",
	}, t.listSectors)

	// Company verification
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_registrations",
		Description: "List pending company registrations, filtered by name, email or organization",
	}, t.listRegistrations)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "decide_registration",
		Description: "Approve or reject a pending registration; the request leaves the queue",
	}, t.decideRegistration)

	// Queries
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_queries",
		Description: "List query tickets, filtered by company or category search and status",
	}, t.listQueries)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_query",
		Description: "Change a query's status, priority, SLA or description",
	}, t.updateQuery)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_query",
		Description: "Delete a query ticket",
	}, t.deleteQuery)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "query_stats",
		Description: "Count queries by status and list unresolved queries close to their SLA",
	}, t.queryStats)

	// Overview + audit
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_overview",
		Description: "Get the dashboard summary: stat cards, emission trend, hotspots and recent submissions",
	}, t.getOverview)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_activity",
		Description: "List recent administrative actions, newest first",
	}, t.recentActivity)
}

func (t *tools) classifyCompliance(_ context.Context, _ *sdkmcp.CallToolRequest, in ClassifyComplianceParams) (*sdkmcp.CallToolResult, ClassifyComplianceResult, error) {
	status := compliance.Classify(in.Current, in.Limit)
	return nil, ClassifyComplianceResult{
		Status: string(status),
		Label:  status.Label(),
		Ratio:  compliance.Ratio(in.Current, in.Limit),
	}, nil
}

func (t *tools) listCompanies(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListCompaniesParams) (*sdkmcp.CallToolResult, ListCompaniesResult, error) {
	status, err := compliance.ParseFilter(in.Status)
	if err != nil {
		return nil, ListCompaniesResult{}, toolError(err)
	}
	views, err := t.svc.Emissions.List(ctx, emission.ListOptions{Search: in.Search, Status: status, Sector: in.Sector})
	if err != nil {
		return nil, ListCompaniesResult{}, toolError(err)
	}
	companies := make([]Company, 0, len(views))
	for _, v := range views {
		companies = append(companies, toCompany(v))
	}
	return nil, ListCompaniesResult{Companies: companies, Count: len(companies)}, nil
}

func (t *tools) updateCompany(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateCompanyParams) (*sdkmcp.CallToolResult, Company, error) {
	view, err := t.svc.Emissions.Update(ctx, emission.UpdateRequest{ID: in.ID, Name: in.Name, Current: in.Current})
	if err != nil {
		return nil, Company{}, toolError(err)
	}
	return nil, toCompany(*view), nil
}

func (t *tools) setSectorLimit(ctx context.Context, _ *sdkmcp.CallToolRequest, in SetSectorLimitParams) (*sdkmcp.CallToolResult, SetSectorLimitResult, error) {
	updated, err := t.svc.Emissions.ApplySectorLimit(ctx, in.Sector, in.Limit)
	if err != nil {
		return nil, SetSectorLimitResult{}, toolError(err)
	}
	return nil, SetSectorLimitResult{Sector: in.Sector, Limit: in.Limit, Updated: updated}, nil
}

func (t *tools) listSectors(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, ListSectorsResult, error) {
	sectors, err := t.svc.Emissions.Sectors(ctx)
	if err != nil {
		return nil, ListSectorsResult{}, toolError(err)
	}
	views, err := t.svc.Emissions.Budgets(ctx)
	if err != nil {
		return nil, ListSectorsResult{}, toolError(err)
	}
	budgets := make([]SectorBudget, 0, len(views))
	for _, b := range views {
		budgets = append(budgets, SectorBudget{Sector: b.Sector, Used: b.Used, Total: b.Total, Percent: b.Percent})
	}
	return nil, ListSectorsResult{Sectors: sectors, Budgets: budgets}, nil
}

func toRegistration(r registration.Request) Registration {
	return Registration{
		Name:         r.Name,
		Email:        r.Email,
		Organization: r.Organization,
		Role:         r.Role,
		DaysPending:  r.DaysPending,
	}
}

func (t *tools) listRegistrations(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListRegistrationsParams) (*sdkmcp.CallToolResult, ListRegistrationsResult, error) {
	requests, err := t.svc.Registrations.List(ctx, in.Search)
	if err != nil {
		return nil, ListRegistrationsResult{}, toolError(err)
	}
	out := make([]Registration, 0, len(requests))
	for _, r := range requests {
		out = append(out, toRegistration(r))
	}
	return nil, ListRegistrationsResult{Requests: out, Count: len(out)}, nil
}

func (t *tools) decideRegistration(ctx context.Context, _ *sdkmcp.CallToolRequest, in DecideRegistrationParams) (*sdkmcp.CallToolResult, DecideRegistrationResult, error) {
	decision, err := registration.ParseDecision(in.Decision)
	if err != nil {
		return nil, DecideRegistrationResult{}, toolError(err)
	}
	outcome, err := t.svc.Registrations.Decide(ctx, in.Email, decision)
	if err != nil {
		return nil, DecideRegistrationResult{}, toolError(err)
	}
	return nil, DecideRegistrationResult{
		Decision: string(outcome.Decision),
		Message:  outcome.Message,
		Request:  toRegistration(outcome.Request),
	}, nil
}

func (t *tools) listQueries(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListQueriesParams) (*sdkmcp.CallToolResult, ListQueriesResult, error) {
	status, err := query.ParseStatusFilter(in.Status)
	if err != nil {
		return nil, ListQueriesResult{}, toolError(err)
	}
	queries, err := t.svc.Queries.List(ctx, query.ListOptions{Search: in.Search, Status: status})
	if err != nil {
		return nil, ListQueriesResult{}, toolError(err)
	}
	return nil, ListQueriesResult{Queries: toQueries(queries), Count: len(queries)}, nil
}

func (t *tools) updateQuery(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateQueryParams) (*sdkmcp.CallToolResult, Query, error) {
	req := query.UpdateRequest{ID: in.ID, SLA: in.SLA, Description: in.Description}
	if in.Status != nil {
		status := query.Status(*in.Status)
		req.Status = &status
	}
	if in.Priority != nil {
		priority := query.Priority(*in.Priority)
		req.Priority = &priority
	}
	q, err := t.svc.Queries.Update(ctx, req)
	if err != nil {
		return nil, Query{}, toolError(err)
	}
	return nil, toQuery(*q), nil
}

func (t *tools) deleteQuery(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteQueryParams) (*sdkmcp.CallToolResult, DeleteQueryResult, error) {
	if err := t.svc.Queries.Delete(ctx, in.ID); err != nil {
		return nil, DeleteQueryResult{}, toolError(err)
	}
	return nil, DeleteQueryResult{ID: in.ID, Deleted: true}, nil
}

func (t *tools) queryStats(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, QueryStatsResult, error) {
	stats, err := t.svc.Queries.Stats(ctx)
	if err != nil {
		return nil, QueryStatsResult{}, toolError(err)
	}
	alerts, err := t.svc.Queries.SLAAlerts(ctx)
	if err != nil {
		return nil, QueryStatsResult{}, toolError(err)
	}
	return nil, QueryStatsResult{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Resolved:   stats.Resolved,
		SLAAlerts:  len(alerts),
		Alerts:     toQueries(alerts),
	}, nil
}

func (t *tools) getOverview(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, OverviewResult, error) {
	ov, err := t.svc.Overview.Get(ctx)
	if err != nil {
		return nil, OverviewResult{}, toolError(err)
	}
	cards := make([]StatCard, 0, len(ov.Cards))
	for _, c := range ov.Cards {
		cards = append(cards, StatCard{Title: c.Title, Value: c.Value, Unit: c.Unit, Display: c.Display()})
	}
	submissions := make([]Submission, 0, len(ov.RecentSubmissions))
	for _, s := range ov.RecentSubmissions {
		submissions = append(submissions, Submission{
			Company:   s.Company,
			Emissions: s.Emissions,
			Status:    string(s.Status),
			Date:      s.Date,
			Action:    s.Action,
		})
	}
	return nil, OverviewResult{
		Cards:             cards,
		TrendLabel:        ov.TrendLabel,
		Trend:             ov.Trend,
		MapCenter:         ov.MapCenter,
		Hotspots:          ov.Hotspots,
		RecentSubmissions: submissions,
	}, nil
}

func (t *tools) recentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentActivityParams) (*sdkmcp.CallToolResult, RecentActivityResult, error) {
	opts := activity.ListActivityOptions{Limit: in.Limit}
	if opts.Limit <= 0 {
		opts.Limit = defaultActivityLimit
	}
	if in.Subject != "" {
		opts.Subject = &in.Subject
	}
	if in.Type != "" {
		activityType := activity.ActivityType(in.Type)
		opts.ActivityType = &activityType
	}
	if in.Actor != "" {
		opts.Actor = &in.Actor
	}
	entries, err := t.svc.Activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return nil, RecentActivityResult{}, toolError(err)
	}
	out := make([]ActivityEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityEntry(e))
	}
	return nil, RecentActivityResult{Entries: out}, nil
}
