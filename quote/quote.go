package quote

import (
	"errors"
	"math"

	"locallens/models"
)

// ErrNoTour is returned when no tour has been selected yet; callers render
// the neutral placeholder instead of a price.
var ErrNoTour = errors.New("no tour selected")

// Savings rate applied inside the early-booking window.
const earlyBookingRate = 0.20

// Input carries everything Compute needs. Hotel and Vehicle must already be
// resolved catalog options.
type Input struct {
	Tour           models.TourPackage
	Travelers      int
	Hotel          models.HotelTier
	Vehicle        models.VehicleOption
	Eligible       bool
	HoursRemaining int
}

// Breakdown is the priced result of one quote computation. All amounts are
// whole dollars.
type Breakdown struct {
	TourName         string `json:"tourName"`
	Travelers        int    `json:"travelers"`
	Days             int    `json:"days"`
	HotelStars       int    `json:"hotelStars"`
	HotelIncluded    bool   `json:"hotelIncluded"`
	HotelCost        int    `json:"hotelCost"`
	VehicleName      string `json:"vehicleName"`
	VehicleCost      int    `json:"vehicleCost"`
	GroupDiscountPct int    `json:"groupDiscountPct"`
	Subtotal         int    `json:"subtotal"`
	Savings          int    `json:"savings"`
	Total            int    `json:"total"`
	Eligible         bool   `json:"eligible"`
	HoursRemaining   int    `json:"hoursRemaining"`
	CapacityWarning  string `json:"capacityWarning,omitempty"`
}

// groupMultiplier returns the discount multiplier for the traveler count.
func groupMultiplier(travelers int) float64 {
	switch {
	case travelers >= 7:
		return 0.85
	case travelers >= 5:
		return 0.90
	default:
		return 1.0
	}
}

// Compute prices a customized tour. It is a pure function of its input.
func Compute(in Input) (Breakdown, error) {
	if in.Tour.ID == "" {
		return Breakdown{}, ErrNoTour
	}

	travelers := in.Travelers
	if travelers < 1 {
		travelers = 2
	}

	mult := groupMultiplier(travelers)
	tourCost := float64(in.Tour.BasePrice) * float64(travelers) * mult

	hotelCost := 0
	if !in.Hotel.Included {
		hotelCost = in.Hotel.PricePerNight * in.Tour.Days
	}
	vehicleCost := in.Vehicle.PricePerDay * in.Tour.Days

	subtotal := int(math.Round(tourCost + float64(hotelCost) + float64(vehicleCost)))

	savings := 0
	if in.Eligible {
		savings = int(math.Round(float64(subtotal) * earlyBookingRate))
	}

	b := Breakdown{
		TourName:       in.Tour.Name,
		Travelers:      travelers,
		Days:           in.Tour.Days,
		HotelStars:     in.Hotel.Stars,
		HotelIncluded:  in.Hotel.Included,
		HotelCost:      hotelCost,
		VehicleName:    in.Vehicle.Name,
		VehicleCost:    vehicleCost,
		Subtotal:       subtotal,
		Savings:        savings,
		Total:          subtotal - savings,
		Eligible:       in.Eligible,
		HoursRemaining: in.HoursRemaining,
	}
	if mult < 1 {
		b.GroupDiscountPct = int(math.Round((1 - mult) * 100))
	}
	// Advisory only: the quote is still computed normally.
	if in.Vehicle.Seats > 0 && travelers > in.Vehicle.Seats {
		b.CapacityWarning = "SUV fits up to 3–4 passengers. Consider upgrading to Jeep or Hiace for your group."
	}
	return b, nil
}
