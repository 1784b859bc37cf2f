package usecase

import (
	"context"
	"errors"
	"strings"

	"sparklean/internal/domain/entities"
	"sparklean/internal/usecase/interfaces"
)

var (
	ErrEstimateRequestNotFound  = errors.New("estimate request not found")
	ErrInvalidEstimateRequestID = errors.New("invalid estimate request id")
)

// ReviewList is the admin inbox view: every request most-recent-first plus
// the derived unread count.
type ReviewList struct {
	Requests []entities.EstimateRequest
	NewCount int
	Total    int
}

// IReviewUseCase exposes the admin-side triage operations.

type IReviewUseCase interface {
	List(ctx context.Context) (ReviewList, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
	Notifications(ctx context.Context) ([]entities.Notification, error)
}

type ReviewUseCase struct {
	repo       interfaces.IEstimateRequestRepository
	deliveries interfaces.INotificationRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IEstimateRequestRepository, deliveries interfaces.INotificationRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, deliveries: deliveries}
}

func (u *ReviewUseCase) List(ctx context.Context) (ReviewList, error) {
	requests, err := u.repo.List(ctx)
	if err != nil {
		return ReviewList{}, err
	}
	newCount, err := u.repo.UnreadCount(ctx)
	if err != nil {
		return ReviewList{}, err
	}
	return ReviewList{Requests: requests, NewCount: newCount, Total: len(requests)}, nil
}

// MarkAsRead acknowledges a request. Repeated calls on the same id succeed;
// unknown ids surface ErrEstimateRequestNotFound so the gateway can answer
// "already removed" instead of a generic failure.
func (u *ReviewUseCase) MarkAsRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateRequestID
	}
	found, err := u.repo.MarkAsRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateRequestNotFound
	}
	return nil
}

func (u *ReviewUseCase) MarkAllAsRead(ctx context.Context) error {
	return u.repo.MarkAllAsRead(ctx)
}

func (u *ReviewUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimateRequestID
	}
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEstimateRequestNotFound
	}
	return nil
}

func (u *ReviewUseCase) UnreadCount(ctx context.Context) (int, error) {
	return u.repo.UnreadCount(ctx)
}

func (u *ReviewUseCase) Notifications(ctx context.Context) ([]entities.Notification, error) {
	if u.deliveries == nil {
		return []entities.Notification{}, nil
	}
	return u.deliveries.List(ctx)
}
