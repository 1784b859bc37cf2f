package interfaces

import (
	"context"

	"sparklean/internal/domain/entities"
)

// IEstimateRequestRepository abstracts the durable store behind the intake and
// review use cases.
//
// Contract (shared by every backend):
//   - Create assigns id/createdAt/IsNew, inserts at the head and persists;
//     a generated id colliding with a live record is retried internally.
//   - List returns the collection most-recent-first and never mutates.
//   - MarkAsRead/Delete report (false, nil) for unknown ids; persistence
//     failures come back as errors, distinct from not-found.
//   - MarkAsRead on an already-read record is a successful no-op.
//   - UnreadCount equals the number of live records with IsNew set.

type IEstimateRequestRepository interface {
	Create(ctx context.Context, e entities.EstimateRequest) (entities.EstimateRequest, error)
	List(ctx context.Context) ([]entities.EstimateRequest, error)
	MarkAsRead(ctx context.Context, id string) (bool, error)
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
	UnreadCount(ctx context.Context) (int, error)
}
