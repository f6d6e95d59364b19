package entities

// ServiceRequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - The English vocabulary is authoritative; Spanish is a display mapping only.
//   - Closed and Canceled are terminal.
//   - Canceled is reachable from any non-terminal status. Whether a Completed
//     or Warranty job can still be canceled is a business switch, not a rule
//     of the table (see TransitionPolicy).

type ServiceRequestStatus string

const (
	StatusQuote      ServiceRequestStatus = "Quote"
	StatusPending    ServiceRequestStatus = "Pending"
	StatusApproved   ServiceRequestStatus = "Approved"
	StatusInProgress ServiceRequestStatus = "InProgress"
	StatusCompleted  ServiceRequestStatus = "Completed"
	StatusClosed     ServiceRequestStatus = "Closed"
	StatusCanceled   ServiceRequestStatus = "Canceled"
	StatusWarranty   ServiceRequestStatus = "Warranty"
)

// forwardTransitions holds the regular lifecycle edges. Cancellation is
// handled separately because it cuts across the whole table.
var forwardTransitions = map[ServiceRequestStatus][]ServiceRequestStatus{
	StatusQuote:      {StatusPending},
	StatusPending:    {StatusApproved},
	StatusApproved:   {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {StatusClosed, StatusWarranty},
	StatusWarranty:   {StatusClosed},
}

var statusLabelsES = map[ServiceRequestStatus]string{
	StatusQuote:      "Cotización",
	StatusPending:    "Pendiente",
	StatusApproved:   "Aprobado",
	StatusInProgress: "En Progreso",
	StatusCompleted:  "Completado",
	StatusClosed:     "Cerrado",
	StatusCanceled:   "Cancelado",
	StatusWarranty:   "En Garantía",
}

// TransitionPolicy carries the configurable parts of the state machine.
type TransitionPolicy struct {
	// AllowCancelCompleted permits Completed/Warranty -> Canceled.
	AllowCancelCompleted bool
}

// IsValid reports whether s is one of the known statuses.
func (s ServiceRequestStatus) IsValid() bool {
	switch s {
	case StatusQuote, StatusPending, StatusApproved, StatusInProgress,
		StatusCompleted, StatusClosed, StatusCanceled, StatusWarranty:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s ServiceRequestStatus) IsTerminal() bool {
	return s == StatusClosed || s == StatusCanceled
}

// DisplayLabel returns the Spanish label shown to clients and staff.
func (s ServiceRequestStatus) DisplayLabel() string {
	if label, ok := statusLabelsES[s]; ok {
		return label
	}
	return string(s)
}

// CanTransition reports whether moving from s to target is legal under the
// given policy. A same-status move is always legal (a no-op for callers).
func (s ServiceRequestStatus) CanTransition(target ServiceRequestStatus, policy TransitionPolicy) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCanceled {
		if s == StatusCompleted || s == StatusWarranty {
			return policy.AllowCancelCompleted
		}
		return true
	}
	for _, next := range forwardTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ParseStatus converts a wire value into a ServiceRequestStatus.
func ParseStatus(raw string) (ServiceRequestStatus, bool) {
	s := ServiceRequestStatus(raw)
	if s.IsValid() {
		return s, true
	}
	return "", false
}
