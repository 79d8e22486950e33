// Package service defines interfaces for core, stateless domain logic and
// for external collaborators the use cases depend on.
package service

import "context"

// SMSReceipt describes a successful send: the gateway's message IDs, the
// charged cost and the remaining account balance.
type SMSReceipt struct {
	MessageIDs []string
	Cost       float64
	Balance    float64
}

// SMSStatus is one row of a delivery-status query.
type SMSStatus struct {
	ID     string
	Phone  string
	Price  string
	Status string
}

// SMSGateway defines the narrow contract the notification core requires from
// the SMS sending service. A failed send is reported as an error return, not
// as a boolean plus retrievable last-error state, so callers can distinguish
// per-recipient failures from a misconfigured adapter.
type SMSGateway interface {
	// Send delivers one message to one recipient. Phone is digits only in
	// international format without a leading plus. Sender overrides the
	// configured sender name when non-empty.
	Send(ctx context.Context, phone, message, sender string) (*SMSReceipt, error)

	// Balance returns the current account balance.
	Balance(ctx context.Context) (float64, error)

	// AccountInfo returns account metadata as a key/value mapping.
	AccountInfo(ctx context.Context) (map[string]string, error)

	// CheckStatus returns delivery status for previously sent message IDs.
	CheckStatus(ctx context.Context, ids []string) ([]SMSStatus, error)
}
