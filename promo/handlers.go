package promo

import (
	"log"
	"net/http"
	"time"

	"locallens/utils"

	"github.com/julienschmidt/httprouter"
)

const visitorCookie = "ll_visitor"

// Default is the tracker the HTTP handlers consult.
var Default = NewTracker(RedisStore{}, time.Now)

// VisitorID returns the visitor cookie value, minting and setting a new one
// when the request carries none.
func VisitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(visitorCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := utils.GetUUID()
	http.SetCookie(w, &http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((90 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// POST /api/promo/visit
func RecordVisit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitor := VisitorID(w, r)
	if err := Default.EnsureInitialized(visitor); err != nil {
		log.Println("promo: failed to record first visit:", err)
	}
	respondStatus(w, visitor)
}

// GET /api/promo/status
func GetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	respondStatus(w, VisitorID(w, r))
}

func respondStatus(w http.ResponseWriter, visitor string) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"eligible":        Default.Eligible(visitor),
		"hours_remaining": Default.HoursRemaining(visitor),
	})
}
