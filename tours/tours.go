package tours

import (
	"net/http"
	"strings"

	"locallens/models"
	"locallens/utils"

	"github.com/julienschmidt/httprouter"
)

// Tours with at most this many days count as "short" for the duration filter.
const shortTourMaxDays = 7

// Get returns the catalog entry for id.
func Get(id string) (models.TourPackage, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return models.TourPackage{}, false
}

// All returns every tour in display order.
func All() []models.TourPackage {
	out := make([]models.TourPackage, len(catalog))
	copy(out, catalog)
	return out
}

// Filter narrows the catalog by difficulty ("easy", "moderate") and duration
// class ("short", "long"). Empty values match everything.
func Filter(difficulty, duration string) []models.TourPackage {
	var out []models.TourPackage
	for _, t := range catalog {
		if !matchDifficulty(t, difficulty) {
			continue
		}
		if !matchDuration(t, duration) {
			continue
		}
		out = append(out, t)
	}
	if out == nil {
		out = []models.TourPackage{}
	}
	return out
}

func matchDifficulty(t models.TourPackage, difficulty string) bool {
	switch strings.ToLower(difficulty) {
	case "":
		return true
	case "easy":
		return strings.HasPrefix(strings.ToLower(t.Difficulty), "easy")
	case "moderate":
		return strings.ToLower(t.Difficulty) == "moderate"
	default:
		return false
	}
}

func matchDuration(t models.TourPackage, duration string) bool {
	switch strings.ToLower(duration) {
	case "":
		return true
	case "short":
		return t.Days <= shortTourMaxDays
	case "long":
		return t.Days > shortTourMaxDays
	default:
		return false
	}
}

// HotelTiers returns every hotel tier in ascending star order.
func HotelTiers() []models.HotelTier {
	out := make([]models.HotelTier, len(hotelTiers))
	copy(out, hotelTiers)
	return out
}

// HotelTier looks up a tier by star rating.
func HotelTier(stars int) (models.HotelTier, bool) {
	for _, h := range hotelTiers {
		if h.Stars == stars {
			return h, true
		}
	}
	return models.HotelTier{}, false
}

// Vehicles returns every vehicle option.
func Vehicles() []models.VehicleOption {
	out := make([]models.VehicleOption, len(vehicles))
	copy(out, vehicles)
	return out
}

// Vehicle looks up a vehicle option by type.
func Vehicle(vehicleType string) (models.VehicleOption, bool) {
	for _, v := range vehicles {
		if v.Type == vehicleType {
			return v, true
		}
	}
	return models.VehicleOption{}, false
}

// GET /api/tours/tours
func GetTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	result := Filter(query.Get("difficulty"), query.Get("duration"))
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GET /api/tours/tour/:tourid
func GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, ok := Get(ps.ByName("tourid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// GET /api/tours/options — hotel tiers and vehicles for the customizer
func GetOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"hotels":   HotelTiers(),
		"vehicles": Vehicles(),
	})
}
