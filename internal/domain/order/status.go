package order

// Status is the lifecycle of one payment-session order.
type Status string

const (
	StatusCreated Status = "created"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
	StatusExpired Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusFailed, StatusExpired:
		return true
	}
	return false
}

// IsFinal reports whether entitlement granting for the session is settled.
// paid is terminal: webhook re-deliveries must never regress it.
func (s Status) IsFinal() bool {
	return s == StatusPaid
}

// Transition returns the status an order keyed by the same session should end
// up in when a webhook reports incoming. Status is monotonic in finality, so a
// paid order ignores any later non-paid report for the same session.
func Transition(current, incoming Status) Status {
	if current.IsFinal() && incoming != StatusPaid {
		return current
	}
	return incoming
}
