package entities

import "time"

// NotificationStatus is the outcome of one SMS delivery attempt.
//
// Skipped means the gateway was not configured (no credentials); the intake
// flow still succeeds, the attempt is just recorded as such.

type NotificationStatus string

const (
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusSkipped NotificationStatus = "skipped"
)

// Notification is the delivery log entry for one outbound SMS triggered by a
// new estimate request. Kept for traceability: the admin view can show whether
// the owner was actually paged for a given lead.

type Notification struct {
	ID         string             `json:"id"`
	EstimateID string             `json:"estimate_id"`
	Recipient  string             `json:"recipient"`
	Body       string             `json:"body"`
	Status     NotificationStatus `json:"status"`

	// ProviderSID is the Twilio message SID when the provider accepted the
	// message.
	ProviderSID string `json:"provider_sid,omitempty"`
	Error       string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
