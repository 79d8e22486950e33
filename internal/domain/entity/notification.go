// Package entity contains the core business objects of the project.
package entity

// SendError records a single failed send attempt within a notification batch.
type SendError struct {
	Phone  string `json:"phone"`  // Recipient the attempt was made for; empty for batch-level failures.
	Detail string `json:"detail"` // The gateway's reported error for this recipient.
}

// NotificationResult is the aggregate outcome of one notification fan-out.
// It is constructed and consumed within a single trigger; nothing is
// persisted and no redelivery is attempted. The error list is unordered.
type NotificationResult struct {
	Sent   int         `json:"sent"`
	Failed int         `json:"failed"`
	Errors []SendError `json:"errors,omitempty"`
}

// Merge folds another result into this one. Used when a single trigger spans
// several books (the recent-books batch path).
func (r *NotificationResult) Merge(other *NotificationResult) {
	if other == nil {
		return
	}

	r.Sent += other.Sent
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}
