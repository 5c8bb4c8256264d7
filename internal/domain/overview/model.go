// Package overview serves the dashboard summary shown on the landing screen.
package overview

// StatCard is a headline figure on the dashboard.
type StatCard struct {
	Title string  `json:"title"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Display renders the value with its unit suffix, e.g. "12500 tons".
func (c StatCard) Display() string {
	if c.Unit == "" {
		return formatAmount(c.Value)
	}
	return formatAmount(c.Value) + " " + c.Unit
}

// TrendPoint is one month of the verified vs unverified emission series.
type TrendPoint struct {
	Month      string  `json:"month"`
	Verified   float64 `json:"verified"`
	Unverified float64 `json:"unverified"`
}

// Hotspot is a location with notable emissions.
type Hotspot struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubmissionStatus is the verification state of a company report.
type SubmissionStatus string

const (
	SubmissionVerified SubmissionStatus = "Verified"
	SubmissionPending  SubmissionStatus = "Pending"
)

// Submission is a recently submitted company emission report.
type Submission struct {
	Company   string           `json:"company"`
	Emissions float64          `json:"emissions"`
	Status    SubmissionStatus `json:"status"`
	Date      string           `json:"date"`
}

// Action is the operator action offered for the submission.
func (s Submission) Action() string {
	if s.Status == SubmissionPending {
		return "Approve"
	}
	return "View"
}

// SubmissionView adds the derived action to a submission.
type SubmissionView struct {
	Submission
	Action string `json:"action"`
}

// MapCenter is the default center of the hotspot map.
var MapCenter = Hotspot{City: "India", Latitude: 22.9734, Longitude: 78.6569}

// TrendLabel names the trend series.
const TrendLabel = "Verified vs Unverified Emissions"

// Overview is the complete dashboard summary.
type Overview struct {
	Cards             []StatCard       `json:"cards"`
	TrendLabel        string           `json:"trend_label"`
	Trend             []TrendPoint     `json:"trend"`
	MapCenter         Hotspot          `json:"map_center"`
	Hotspots          []Hotspot        `json:"hotspots"`
	RecentSubmissions []SubmissionView `json:"recent_submissions"`
}
