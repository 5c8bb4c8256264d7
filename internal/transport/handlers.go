package transport

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/compliance"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	"github.com/ecotrack/govdash/internal/export"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.svc.Overview.Get(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, ov)
}

// Emissions

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, err := compliance.ParseFilter(q.Get("status"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	companies, err := s.svc.Emissions.List(r.Context(), emission.ListOptions{
		Search: q.Get("search"),
		Status: status,
		Sector: q.Get("sector"),
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, companies)
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	company, err := s.svc.Emissions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}

type updateCompanyBody struct {
	Name    *string  `json:"name"`
	Current *float64 `json:"current"`
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var body updateCompanyBody
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}
	company, err := s.svc.Emissions.Update(r.Context(), emission.UpdateRequest{
		ID:      id,
		Name:    body.Name,
		Current: body.Current,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, company)
}

type sectorsResponse struct {
	Sectors []string                    `json:"sectors"`
	Budgets []emission.SectorBudgetView `json:"budgets"`
}

func (s *Server) handleSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := s.svc.Emissions.Sectors(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	budgets, err := s.svc.Emissions.Budgets(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, sectorsResponse{Sectors: sectors, Budgets: budgets})
}

type sectorLimitBody struct {
	Sector string  `json:"sector"`
	Limit  float64 `json:"limit"`
}

type sectorLimitResponse struct {
	Sector  string  `json:"sector"`
	Limit   float64 `json:"limit"`
	Updated int64   `json:"updated"`
}

func (s *Server) handleSetSectorLimit(w http.ResponseWriter, r *http.Request) {
	var body sectorLimitBody
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}
	updated, err := s.svc.Emissions.ApplySectorLimit(r.Context(), body.Sector, body.Limit)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, sectorLimitResponse{Sector: body.Sector, Limit: body.Limit, Updated: updated})
}

func (s *Server) handleExportEmissions(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.svc.Emissions.Export(r.Context(), &buf); err != nil {
		WriteError(w, r, err)
		return
	}
	writeAttachment(w, export.CSVContentType, emission.ExportFilename, buf.Bytes())
}

// Registrations

func (s *Server) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	requests, err := s.svc.Registrations.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, requests)
}

func (s *Server) handleDecideRegistration(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		WriteError(w, r, fmt.Errorf("%w: invalid email", errBadRequest))
		return
	}
	decision, err := registration.ParseDecision(chi.URLParam(r, "decision"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	outcome, err := s.svc.Registrations.Decide(r.Context(), email, decision)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleExportRegistrations(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.svc.Registrations.Export(r.Context(), &buf); err != nil {
		WriteError(w, r, err)
		return
	}
	writeAttachment(w, export.XLSXContentType, registration.ExportFilename, buf.Bytes())
}

// Queries

func (s *Server) handleListQueries(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	status, err := query.ParseStatusFilter(params.Get("status"))
	if err != nil {
		WriteError(w, r, err)
		return
	}
	queries, err := s.svc.Queries.List(r.Context(), query.ListOptions{
		Search: params.Get("search"),
		Status: status,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, queries)
}

type queryStatsResponse struct {
	query.Stats
	SLAAlerts int           `json:"sla_alerts"`
	Alerts    []query.Query `json:"alerts"`
}

func (s *Server) handleQueryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Queries.Stats(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	alerts, err := s.svc.Queries.SLAAlerts(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, queryStatsResponse{Stats: stats, SLAAlerts: len(alerts), Alerts: alerts})
}

func (s *Server) handleGetQuery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	q, err := s.svc.Queries.Get(r.Context(), id)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, q)
}

type updateQueryBody struct {
	Status      *query.Status   `json:"status"`
	Priority    *query.Priority `json:"priority"`
	SLA         *string         `json:"sla"`
	Description *string         `json:"description"`
}

func (s *Server) handleUpdateQuery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	var body updateQueryBody
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, r, err)
		return
	}
	q, err := s.svc.Queries.Update(r.Context(), query.UpdateRequest{
		ID:          id,
		Status:      body.Status,
		Priority:    body.Priority,
		SLA:         body.SLA,
		Description: body.Description,
	})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, q)
}

func (s *Server) handleDeleteQuery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := s.svc.Queries.Delete(r.Context(), id); err != nil {
		WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activity

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	opts := activity.ListActivityOptions{Limit: 50}
	if subject := params.Get("subject"); subject != "" {
		opts.Subject = &subject
	}
	if typ := params.Get("type"); typ != "" {
		activityType := activity.ActivityType(typ)
		opts.ActivityType = &activityType
	}
	if actor := params.Get("actor"); actor != "" {
		opts.Actor = &actor
	}
	if raw := params.Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			WriteError(w, r, fmt.Errorf("%w: since must be RFC 3339, got %q", errBadRequest, raw))
			return
		}
		opts.Since = &since
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			WriteError(w, r, fmt.Errorf("%w: invalid limit %q", errBadRequest, raw))
			return
		}
		opts.Limit = limit
	}
	if raw := params.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			WriteError(w, r, fmt.Errorf("%w: invalid offset %q", errBadRequest, raw))
			return
		}
		opts.Offset = offset
	}

	entries, err := s.svc.Activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errBadRequest, raw)
	}
	return id, nil
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
