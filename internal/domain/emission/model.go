package emission

import (
	"math"

	"github.com/ecotrack/govdash/internal/domain/compliance"
)

// Company is a regulated company with its current emissions and assigned
// limit, both in tons.
type Company struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Sector  string  `json:"sector"`
	Current float64 `json:"current"`
	Limit   float64 `json:"limit"`
}

// Status classifies the company against its limit.
func (c Company) Status() compliance.Status {
	return compliance.Classify(c.Current, c.Limit)
}

// CompanyView is a company together with its derived compliance status.
type CompanyView struct {
	Company
	Status      compliance.Status `json:"status"`
	StatusLabel string            `json:"status_label"`
	Ratio       float64           `json:"ratio"`
}

// NewView derives the view of c.
func NewView(c Company) CompanyView {
	status := c.Status()
	return CompanyView{
		Company:     c,
		Status:      status,
		StatusLabel: status.Label(),
		Ratio:       compliance.Ratio(c.Current, c.Limit),
	}
}

// SectorBudget is the emission allowance used by a sector against its total.
type SectorBudget struct {
	Sector string  `json:"sector"`
	Used   float64 `json:"used"`
	Total  float64 `json:"total"`
}

// Percent returns the used share of the budget, rounded and capped at 100.
func (b SectorBudget) Percent() int {
	if b.Total <= 0 {
		return 100
	}
	return int(math.Min(100, math.Round(b.Used/b.Total*100)))
}

// SectorBudgetView adds the rendered percentage to a budget.
type SectorBudgetView struct {
	SectorBudget
	Percent int `json:"percent"`
}

// ListOptions filters the company list. Zero values match everything.
type ListOptions struct {
	Search string
	Status compliance.Filter
	Sector string
}
