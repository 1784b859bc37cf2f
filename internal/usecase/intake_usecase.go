package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"sparklean/internal/domain/entities"
	"sparklean/internal/domain/pricing"
	"sparklean/internal/usecase/interfaces"
)

var (
	ErrInvalidFullName      = errors.New("invalid full name")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrMissingContact       = errors.New("at least one of phone or email is required")
	ErrInvalidServiceType   = errors.New("invalid service type")
	ErrInvalidRoomCount     = errors.New("invalid room count")
	ErrInvalidBathroomCount = errors.New("invalid bathroom count")
	ErrInvalidAddonArea     = errors.New("invalid addon area")
)

const (
	maxRooms     = 50
	maxBathrooms = 20
)

// IntakeInput is the validated-at-the-edge submission the intake gateway
// passes down. Optional fields are nil when the customer left them blank.
type IntakeInput struct {
	FullName string
	Phone    *string
	Email    *string
	Address  string

	Rooms       int
	Bathrooms   int
	ServiceType string
	AddonAreas  []string

	OtherAreaText *string
	PreferredDate *string
	PreferredTime *string
	Notes         *string
}

// IIntakeUseCase exposes the customer-facing submission path: validate,
// price, persist, then page the owner (best-effort).

type IIntakeUseCase interface {
	Submit(ctx context.Context, input IntakeInput) (entities.EstimateRequest, error)
}

type IntakeUseCase struct {
	repo       interfaces.IEstimateRequestRepository
	sms        interfaces.ISMSGateway
	deliveries interfaces.INotificationRepository
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

// NewIntakeUseCase wires the submission path. sms may be nil when the gateway
// is not configured; submissions still succeed and the delivery log records a
// skipped attempt. deliveries may be nil to disable the log entirely.
func NewIntakeUseCase(repo interfaces.IEstimateRequestRepository, sms interfaces.ISMSGateway, deliveries interfaces.INotificationRepository) *IntakeUseCase {
	return &IntakeUseCase{repo: repo, sms: sms, deliveries: deliveries}
}

// Submit validates the submission, computes the quote and persists the record.
// Validation failures are rejected before any state mutation. The SMS
// notification can never fail the submission: the lead is already durable by
// the time it runs.
func (u *IntakeUseCase) Submit(ctx context.Context, input IntakeInput) (entities.EstimateRequest, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = cleanOptionalString(input.Phone)
	input.Email = cleanOptionalString(input.Email)
	input.OtherAreaText = cleanOptionalString(input.OtherAreaText)
	input.PreferredDate = cleanOptionalString(input.PreferredDate)
	input.PreferredTime = cleanOptionalString(input.PreferredTime)
	input.Notes = cleanOptionalString(input.Notes)

	if len(input.FullName) < 2 {
		return entities.EstimateRequest{}, ErrInvalidFullName
	}
	if len(input.Address) < 5 {
		return entities.EstimateRequest{}, ErrInvalidAddress
	}
	if input.Phone == nil && input.Email == nil {
		return entities.EstimateRequest{}, ErrMissingContact
	}

	serviceType := entities.ServiceType(strings.TrimSpace(input.ServiceType))
	if !serviceType.Valid() {
		return entities.EstimateRequest{}, ErrInvalidServiceType
	}
	if input.Rooms < 1 || input.Rooms > maxRooms {
		return entities.EstimateRequest{}, ErrInvalidRoomCount
	}
	if input.Bathrooms < 1 || input.Bathrooms > maxBathrooms {
		return entities.EstimateRequest{}, ErrInvalidBathroomCount
	}

	addons := make([]entities.AddonArea, 0, len(input.AddonAreas))
	for _, raw := range input.AddonAreas {
		area := entities.AddonArea(strings.TrimSpace(raw))
		if !area.Valid() {
			return entities.EstimateRequest{}, ErrInvalidAddonArea
		}
		addons = append(addons, area)
	}

	quote := pricing.ComputeQuote(pricing.Profile{
		ServiceType: serviceType,
		Rooms:       input.Rooms,
		Bathrooms:   input.Bathrooms,
		AddonAreas:  addons,
	})

	e := entities.EstimateRequest{
		FullName:         input.FullName,
		Phone:            input.Phone,
		Email:            input.Email,
		Address:          input.Address,
		Rooms:            input.Rooms,
		Bathrooms:        input.Bathrooms,
		ServiceType:      serviceType,
		ServiceTypeLabel: serviceType.Label(),
		AddonAreas:       addons,
		OtherAreaText:    input.OtherAreaText,
		PreferredDate:    input.PreferredDate,
		PreferredTime:    input.PreferredTime,
		Notes:            input.Notes,
		Quote:            &quote,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.EstimateRequest{}, err
	}
	log.Printf("[intake][usecase] new estimate request stored id=%s service=%s total=%d", created.ID, created.ServiceType, quote.Total)

	u.notifyOwner(ctx, created)

	return created, nil
}

func (u *IntakeUseCase) notifyOwner(ctx context.Context, e entities.EstimateRequest) {
	n := entities.Notification{EstimateID: e.ID}

	if u.sms == nil {
		n.Status = entities.NotificationStatusSkipped
		n.Error = "sms gateway not configured"
	} else {
		recipient, body, sid, err := u.sms.NotifyNewEstimate(ctx, e)
		n.Recipient = recipient
		n.Body = body
		if err != nil {
			n.Status = entities.NotificationStatusFailed
			n.Error = err.Error()
			log.Printf("[intake][usecase] sms notification failed estimate_id=%s err=%v", e.ID, err)
		} else {
			n.Status = entities.NotificationStatusSent
			n.ProviderSID = sid
		}
	}

	if u.deliveries == nil {
		return
	}
	if _, err := u.deliveries.Append(ctx, n); err != nil {
		log.Printf("[intake][usecase] could not record notification estimate_id=%s err=%v", e.ID, err)
	}
}

func cleanOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
