package quote

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"

	"locallens/db"
	"locallens/models"
	"locallens/notify"
	"locallens/promo"
	"locallens/tours"
	"locallens/utils"

	"github.com/julienschmidt/httprouter"
)

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

type quoteRequest struct {
	TourID     string `json:"tourid"`
	Travelers  int    `json:"travelers"`
	HotelStars int    `json:"hotelStars"`
	Vehicle    string `json:"vehicle"`
}

// GenerateQuote returns the POST /api/quote handler. Requests with no tour
// selected get the neutral placeholder instead of a price.
func GenerateQuote(hub *notify.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if req.TourID == "" {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"html": Placeholder()})
			return
		}
		tour, ok := tours.Get(req.TourID)
		if !ok {
			utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
			return
		}

		hotel, ok := tours.HotelTier(req.HotelStars)
		if !ok {
			hotel, _ = tours.HotelTier(3)
		}
		vehicle, ok := tours.Vehicle(req.Vehicle)
		if !ok && req.Vehicle != "" {
			// tolerate unknown vehicles the way the original form did:
			// zero daily cost, capitalized label
			vehicle = models.VehicleOption{
				Type: req.Vehicle,
				Name: capitalize(req.Vehicle),
			}
		}

		visitor := promo.VisitorID(w, r)
		breakdown, err := Compute(Input{
			Tour:           tour,
			Travelers:      req.Travelers,
			Hotel:          hotel,
			Vehicle:        vehicle,
			Eligible:       promo.Default.Eligible(visitor),
			HoursRemaining: promo.Default.HoursRemaining(visitor),
		})
		if err != nil {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"html": Placeholder()})
			return
		}

		archive(visitor, req, breakdown)
		if hub != nil {
			hub.Publish("quote", breakdown)
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"breakdown": breakdown,
			"html":      RenderHTML(breakdown),
		})
	}
}

// archive keeps a record of the computed quote; failures only log.
func archive(visitor string, req quoteRequest, b Breakdown) {
	record := models.QuoteRecord{
		QuoteID:    utils.GenerateRandomString(13),
		VisitorID:  visitor,
		TourID:     req.TourID,
		Travelers:  b.Travelers,
		HotelStars: b.HotelStars,
		Vehicle:    b.VehicleName,
		Subtotal:   b.Subtotal,
		Total:      b.Total,
		Eligible:   b.Eligible,
		CreatedAt:  time.Now().Unix(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.QuotesCollection.InsertOne(ctx, record); err != nil {
		log.Println("quote archive failed:", err)
	}
}
