package entities

import "time"

// ServiceType is the closed set of cleaning services a customer can request.
//
// Domain notes:
//   - The estimates-service is the source of truth for submitted requests.
//   - The set mirrors the options offered by the public estimate form; the
//     intake gateway rejects anything outside it before a record is created.

type ServiceType string

const (
	ServiceTypeRegular      ServiceType = "regular"
	ServiceTypeDeep         ServiceType = "deep"
	ServiceTypeMove         ServiceType = "move"
	ServiceTypeConstruction ServiceType = "construction"
	ServiceTypeOffice       ServiceType = "office"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceTypeRegular:      "Regular Cleaning",
	ServiceTypeDeep:         "Deep Cleaning",
	ServiceTypeMove:         "Move-in / Move-out",
	ServiceTypeConstruction: "Post-construction Cleaning",
	ServiceTypeOffice:       "Office Cleaning",
}

// Valid reports whether s is one of the supported service types.
func (s ServiceType) Valid() bool {
	_, ok := serviceTypeLabels[s]
	return ok
}

// Label returns the customer-facing name for the service type. Unknown values
// fall back to the raw code so legacy records still render.
func (s ServiceType) Label() string {
	if label, ok := serviceTypeLabels[s]; ok {
		return label
	}
	return string(s)
}

// AddonArea is a closet/cabinet area the customer wants included. The set is
// closed; a free-text "other" qualifier lives on the record itself and never
// affects pricing.

type AddonArea string

const (
	AddonAreaKitchen  AddonArea = "kitchen"
	AddonAreaBedroom  AddonArea = "bedroom"
	AddonAreaGarage   AddonArea = "garage"
	AddonAreaBasement AddonArea = "basement"
)

var addonAreaLabels = map[AddonArea]string{
	AddonAreaKitchen:  "Kitchen",
	AddonAreaBedroom:  "Bedroom",
	AddonAreaGarage:   "Garage",
	AddonAreaBasement: "Basement",
}

func (a AddonArea) Valid() bool {
	_, ok := addonAreaLabels[a]
	return ok
}

func (a AddonArea) Label() string {
	if label, ok := addonAreaLabels[a]; ok {
		return label
	}
	return string(a)
}

// QuoteBreakdown is the itemized price computed at intake time.
//
// Monetary representation:
//   - All values are whole currency units; every rate in the rate card is an
//     integer, so no rounding is involved anywhere.

type QuoteBreakdown struct {
	Base         int `json:"base"`
	ExtraRooms   int `json:"extra_rooms"`
	RoomLine     int `json:"room_line"`
	Bathrooms    int `json:"bathrooms"`
	BathroomLine int `json:"bathroom_line"`
	AddonLine    int `json:"addon_line"`
	Total        int `json:"total"`
}

// EstimateRequest is one submitted "request an estimate" lead.
//
// Lifecycle:
//   - created by the intake gateway with IsNew=true
//   - IsNew only ever transitions true -> false, via mark-read operations
//   - destroyed by an explicit delete from the review gateway
//
// Optional fields are pointers so "not provided" is distinguishable from
// "provided as empty". At least one of Phone/Email is guaranteed by intake
// validation; the store itself does not re-check it.

type EstimateRequest struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsNew     bool      `json:"is_new"`

	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  string  `json:"address"`

	Rooms            int         `json:"rooms"`
	Bathrooms        int         `json:"bathrooms"`
	ServiceType      ServiceType `json:"service_type"`
	ServiceTypeLabel string      `json:"service_type_label"`
	AddonAreas       []AddonArea `json:"addon_areas,omitempty"`
	OtherAreaText    *string     `json:"other_area_text,omitempty"`

	PreferredDate *string `json:"preferred_date,omitempty"`
	PreferredTime *string `json:"preferred_time,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	// Quote is absent on manual/legacy entries.
	Quote *QuoteBreakdown `json:"quote,omitempty"`
}

// AddonAreaLabels returns the display names of the selected areas, with the
// free-text qualifier appended last when present. Mirrors what the admin view
// renders.
func (e EstimateRequest) AddonAreaLabels() []string {
	labels := make([]string, 0, len(e.AddonAreas)+1)
	for _, a := range e.AddonAreas {
		labels = append(labels, a.Label())
	}
	if e.OtherAreaText != nil && *e.OtherAreaText != "" {
		labels = append(labels, *e.OtherAreaText)
	}
	return labels
}
