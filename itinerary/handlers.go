package itinerary

import (
	"net/http"

	"locallens/promo"
	"locallens/tours"
	"locallens/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/tours/tour/:tourid/itinerary
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, ok := tours.Get(ps.ByName("tourid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	plan := BuildPlan(tour, promo.Default.Eligible(promo.VisitorID(w, r)))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"plan": plan,
		"html": RenderHTML(plan),
	})
}

// GET /api/tours/tour/:tourid/itinerary/pdf
func GetItineraryPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, ok := tours.Get(ps.ByName("tourid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}

	plan := BuildPlan(tour, promo.Default.Eligible(promo.VisitorID(w, r)))
	doc, err := BuildPDF(tour, plan)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+tour.ID+`-itinerary.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
