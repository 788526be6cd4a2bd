package entity

// Status is the lifecycle state of a preorder. The set is fixed and ordered
// for display; transitions are not restricted to be forward-only — staff may
// set any state from any state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCollected Status = "collected"
)

// AllStatuses returns the display order used by the management page.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusPreparing, StatusReady, StatusCollected}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCollected:
		return true
	}
	return false
}

// Completed reports whether the order counts toward sales progress.
func (s Status) Completed() bool {
	return s == StatusReady || s == StatusCollected
}
