package domain

type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusLoading StatusKind = "loading"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

func (s StatusKind) String() string {
	return string(s)
}

// PanelStatus is the per-panel outcome channel: one user action can fan
// out to the cart, pending-order and status panels independently.
type PanelStatus struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message,omitempty"`
}

func Idle() PanelStatus {
	return PanelStatus{Kind: StatusIdle}
}

func Loading() PanelStatus {
	return PanelStatus{Kind: StatusLoading}
}

func Success(message string) PanelStatus {
	return PanelStatus{Kind: StatusSuccess, Message: message}
}

func Errorf(message string) PanelStatus {
	return PanelStatus{Kind: StatusError, Message: message}
}
