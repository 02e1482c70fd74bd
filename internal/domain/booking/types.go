package booking

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether an owner decision has already been recorded.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func decisionStatus(approved bool) Status {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}
