package pricing

import "sparklean/internal/domain/entities"

// rate is the per-service-type price card. Base covers IncludedRooms rooms;
// PerBathroom may be zero, meaning bathrooms are included in the base price
// for that service.
type rate struct {
	Base          int
	IncludedRooms int
	PerRoom       int
	PerBathroom   int
}

var rateCard = map[entities.ServiceType]rate{
	entities.ServiceTypeRegular:      {Base: 150, IncludedRooms: 2, PerRoom: 20, PerBathroom: 20},
	entities.ServiceTypeDeep:         {Base: 275, IncludedRooms: 2, PerRoom: 30, PerBathroom: 35},
	entities.ServiceTypeMove:         {Base: 350, IncludedRooms: 2, PerRoom: 35, PerBathroom: 40},
	entities.ServiceTypeConstruction: {Base: 450, IncludedRooms: 2, PerRoom: 45, PerBathroom: 50},
	entities.ServiceTypeOffice:       {Base: 200, IncludedRooms: 2, PerRoom: 25, PerBathroom: 0},
}

var addonSurcharge = map[entities.AddonArea]int{
	entities.AddonAreaKitchen:  50,
	entities.AddonAreaBedroom:  30,
	entities.AddonAreaGarage:   40,
	entities.AddonAreaBasement: 45,
}

// Profile is the pricing-relevant slice of a submission. Free-text "other"
// areas are informational only and deliberately absent here.
type Profile struct {
	ServiceType entities.ServiceType
	Rooms       int
	Bathrooms   int
	AddonAreas  []entities.AddonArea
}

// ComputeQuote prices a property profile. It is pure and total over the valid
// domain: callers reject unknown service types before invoking it. Unknown
// addon areas contribute nothing.
func ComputeQuote(p Profile) entities.QuoteBreakdown {
	r := rateCard[p.ServiceType]

	extraRooms := p.Rooms - r.IncludedRooms
	if extraRooms < 0 {
		extraRooms = 0
	}

	addonLine := 0
	for _, a := range p.AddonAreas {
		addonLine += addonSurcharge[a]
	}

	q := entities.QuoteBreakdown{
		Base:         r.Base,
		ExtraRooms:   extraRooms,
		RoomLine:     extraRooms * r.PerRoom,
		Bathrooms:    p.Bathrooms,
		BathroomLine: p.Bathrooms * r.PerBathroom,
		AddonLine:    addonLine,
	}
	q.Total = q.Base + q.RoomLine + q.BathroomLine + q.AddonLine
	return q
}
