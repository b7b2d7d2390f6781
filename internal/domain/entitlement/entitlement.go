package entitlement

// Status of a buyer's access grant for one lab. The (user, lab) pair is unique
// in storage; granting is upsert-only, so re-granting an active entitlement is
// a no-op rather than an error.
type Status string

const (
	StatusActive  Status = "active"
	StatusRevoked Status = "revoked"
)

// Source records which flow produced the grant.
type Source string

const (
	SourceStripe Source = "stripe"
	SourceFree   Source = "free"
	SourceAdmin  Source = "admin"
)
