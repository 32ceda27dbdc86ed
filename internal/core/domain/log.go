package domain

import "time"

// LogAction classifies an audit trail entry.
type LogAction string

const (
	ActionCreate LogAction = "CREATE"
	ActionUpdate LogAction = "UPDATE"
	ActionDelete LogAction = "DELETE"
	ActionLogin  LogAction = "LOGIN"
)

// IsValid reports whether a is one of the known actions.
func (a LogAction) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin:
		return true
	}
	return false
}

// Log is an append-only audit record. Username is a denormalized copy taken
// at write time; it is never updated if the account is later renamed.
type Log struct {
	ID        string    `json:"id" bson:"_id"`
	Action    LogAction `json:"action" bson:"action"`
	Details   string    `json:"details" bson:"details"`
	Timestamp string    `json:"timestamp" bson:"timestamp"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
}

// RecentLogLimit caps every audit read. Older records stay in storage; they
// are simply never fetched.
const RecentLogLimit = 100

// Timestamps inside documents are RFC3339 UTC strings. Lexicographic order
// equals chronological order, which the client-side log sort relies on.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
