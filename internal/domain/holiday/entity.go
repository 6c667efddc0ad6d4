package holiday

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// DecisionValues are the statuses a pending request may move to.
var DecisionValues = []string{
	string(StatusApproved),
	string(StatusDenied),
}

// Request is a staff member's holiday request. Status only ever moves from
// pending to approved or denied.
type Request struct {
	ID        int64
	StaffID   string
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
}

func (r Request) IsPending() bool {
	return r.Status == StatusPending
}

// Days is the inclusive length of the request in calendar days.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
