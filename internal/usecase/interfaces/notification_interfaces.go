package interfaces

import (
	"context"

	"sparklean/internal/domain/entities"
)

// ISMSGateway sends the "new estimate request" text to the business owner.
// Implementations compose the message body themselves; the returned recipient
// and body are what was (or would have been) sent, for the delivery log.

type ISMSGateway interface {
	NotifyNewEstimate(ctx context.Context, e entities.EstimateRequest) (recipient string, body string, providerSID string, err error)
}

// INotificationRepository persists the SMS delivery log.

type INotificationRepository interface {
	Append(ctx context.Context, n entities.Notification) (entities.Notification, error)
	List(ctx context.Context) ([]entities.Notification, error)
}
