package response

import (
	"time"

	"sparklean/internal/domain/entities"
)

type QuoteResponse struct {
	Base         int `json:"base"`
	ExtraRooms   int `json:"extra_rooms"`
	RoomLine     int `json:"room_line"`
	Bathrooms    int `json:"bathrooms"`
	BathroomLine int `json:"bathroom_line"`
	AddonLine    int `json:"addon_line"`
	Total        int `json:"total"`
}

type EstimateResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	IsNew     bool      `json:"is_new"`

	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  string  `json:"address"`

	Rooms            int      `json:"rooms"`
	Bathrooms        int      `json:"bathrooms"`
	ServiceType      string   `json:"service_type"`
	ServiceTypeLabel string   `json:"service_type_label"`
	AddonAreas       []string `json:"addon_areas"`
	OtherAreaText    *string  `json:"other_area_text,omitempty"`

	PreferredDate *string `json:"preferred_date,omitempty"`
	PreferredTime *string `json:"preferred_time,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	Quote *QuoteResponse `json:"quote,omitempty"`
}

func FromEstimateRequest(e entities.EstimateRequest) EstimateResponse {
	res := EstimateResponse{
		ID:               e.ID,
		CreatedAt:        e.CreatedAt,
		IsNew:            e.IsNew,
		FullName:         e.FullName,
		Phone:            e.Phone,
		Email:            e.Email,
		Address:          e.Address,
		Rooms:            e.Rooms,
		Bathrooms:        e.Bathrooms,
		ServiceType:      string(e.ServiceType),
		ServiceTypeLabel: e.ServiceTypeLabel,
		AddonAreas:       e.AddonAreaLabels(),
		OtherAreaText:    e.OtherAreaText,
		PreferredDate:    e.PreferredDate,
		PreferredTime:    e.PreferredTime,
		Notes:            e.Notes,
	}
	if e.Quote != nil {
		res.Quote = &QuoteResponse{
			Base:         e.Quote.Base,
			ExtraRooms:   e.Quote.ExtraRooms,
			RoomLine:     e.Quote.RoomLine,
			Bathrooms:    e.Quote.Bathrooms,
			BathroomLine: e.Quote.BathroomLine,
			AddonLine:    e.Quote.AddonLine,
			Total:        e.Quote.Total,
		}
	}
	return res
}

// EstimateListResponse is the admin inbox payload.
type EstimateListResponse struct {
	Success   bool               `json:"success"`
	Estimates []EstimateResponse `json:"estimates"`
	NewCount  int                `json:"new_count"`
	Total     int                `json:"total"`
}

func FromEstimateRequests(requests []entities.EstimateRequest, newCount int) EstimateListResponse {
	out := make([]EstimateResponse, 0, len(requests))
	for _, e := range requests {
		out = append(out, FromEstimateRequest(e))
	}
	return EstimateListResponse{Success: true, Estimates: out, NewCount: newCount, Total: len(out)}
}
