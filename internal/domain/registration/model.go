package registration

// Request is a pending company registration awaiting verification.
type Request struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	DaysPending  int    `json:"daysPending"`
}

// Decision is the verification outcome chosen by an operator.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision validates a decision string.
func ParseDecision(raw string) (Decision, error) {
	switch d := Decision(raw); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// PastTense returns "approved" or "rejected".
func (d Decision) PastTense() string {
	if d == DecisionApprove {
		return "approved"
	}
	return "rejected"
}

// Outcome is the result of deciding a registration request.
type Outcome struct {
	Request  Request  `json:"request"`
	Decision Decision `json:"decision"`
	Message  string   `json:"message"`
}
