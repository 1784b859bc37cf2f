package response

import (
	"time"

	"sparklean/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string    `json:"id"`
	EstimateID  string    `json:"estimate_id"`
	Recipient   string    `json:"recipient,omitempty"`
	Body        string    `json:"body,omitempty"`
	Status      string    `json:"status"`
	ProviderSID string    `json:"provider_sid,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		EstimateID:  n.EstimateID,
		Recipient:   n.Recipient,
		Body:        n.Body,
		Status:      string(n.Status),
		ProviderSID: n.ProviderSID,
		Error:       n.Error,
		CreatedAt:   n.CreatedAt,
	}
}

func FromNotifications(notifications []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, FromNotification(n))
	}
	return out
}
