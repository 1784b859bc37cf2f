package request

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// SubmitEstimateRequest is the public estimate-form payload. Structural
// checks live in the binding tags; cross-field rules (contact method, service
// type, bounds) are enforced by the intake use case.
type SubmitEstimateRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Address  string  `json:"address" binding:"required"`

	Rooms       int      `json:"rooms" binding:"required"`
	Bathrooms   int      `json:"bathrooms" binding:"required"`
	ServiceType string   `json:"service_type" binding:"required"`
	AddonAreas  []string `json:"addon_areas"`

	OtherAreaText *string `json:"other_area_text"`
	PreferredDate *string `json:"preferred_date"`
	PreferredTime *string `json:"preferred_time"`
	Notes         *string `json:"notes"`
}

// Validate applies the format rules gin's binding tags cannot express. The
// phone field, when present, needs at least ten digits once separators are
// stripped.
func (r SubmitEstimateRequest) Validate() error {
	if r.Phone != nil && strings.TrimSpace(*r.Phone) != "" {
		digits := 0
		for _, c := range *r.Phone {
			if unicode.IsDigit(c) {
				digits++
			}
		}
		if digits < 10 {
			return ErrInvalidPhone
		}
	}
	return nil
}
