package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"locallens/db"
	"locallens/models"
	"locallens/notify"
	"locallens/promo"
	"locallens/utils"

	"github.com/julienschmidt/httprouter"
)

// inflight guards against duplicate concurrent submissions from the same
// visitor (double-click). The original left this undefined; we reject the
// second attempt while the first is outstanding.
type inflight struct {
	mu      sync.Mutex
	pending map[string]bool
}

func newInflight() *inflight {
	return &inflight{pending: make(map[string]bool)}
}

func (f *inflight) tryAcquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending[key] {
		return false
	}
	f.pending[key] = true
	return true
}

func (f *inflight) release(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, key)
}

var submissions = newInflight()

type enquiryInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	TravelDate string `json:"travel_date"`
	Trip       string `json:"trip"`
}

func parseEnquiry(r *http.Request) (enquiryInput, error) {
	var in enquiryInput
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&in)
		return in, err
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			return in, err
		}
	}
	in.Name = r.FormValue("name")
	in.Email = r.FormValue("email")
	in.Phone = r.FormValue("phone")
	in.Message = r.FormValue("message")
	in.TravelDate = r.FormValue("travel_date")
	in.Trip = r.FormValue("trip")
	return in, nil
}

// SubmitEnquiry returns the POST /api/contact handler.
func SubmitEnquiry(hub *notify.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		in, err := parseEnquiry(r)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"ok": false, "error": "Invalid request payload"})
			return
		}

		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.TrimSpace(in.Email)
		in.Message = strings.TrimSpace(in.Message)

		if errors := ValidateEnquiry(in.Name, in.Email, in.Message); len(errors) > 0 {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"ok": false, "errors": errors})
			return
		}

		visitor := promo.VisitorID(w, r)
		if !submissions.tryAcquire(visitor) {
			utils.RespondWithJSON(w, http.StatusTooManyRequests, utils.M{
				"ok":    false,
				"error": "A submission is already in progress. Please wait a moment.",
			})
			return
		}
		defer submissions.release(visitor)

		enquiry := models.Enquiry{
			EnquiryID:  utils.GetUUID(),
			Name:       in.Name,
			Email:      in.Email,
			Phone:      strings.TrimSpace(in.Phone),
			Message:    in.Message,
			TravelDate: strings.TrimSpace(in.TravelDate),
			Trip:       strings.TrimSpace(in.Trip),
			CreatedAt:  time.Now().Unix(),
		}

		if endpoint := os.Getenv("FORM_ENDPOINT"); endpoint != "" {
			if err := NewForwarder(endpoint).Send(enquiry); err != nil {
				log.Println("enquiry forward failed:", err)
				utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{
					"ok":    false,
					"error": "Could not deliver your message. Please try again.",
				})
				return
			}
			enquiry.Forwarded = true
		}

		enquiry.EmailSent = SendEnquiryEmails(enquiry)

		log.Printf("Submission: %s <%s> – %.80s", enquiry.Name, enquiry.Email, enquiry.Message)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := db.EnquiriesCollection.InsertOne(ctx, enquiry); err != nil {
			log.Println("enquiry insert failed:", err)
		}

		if hub != nil {
			hub.Publish("enquiry", enquiry)
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"ok":         true,
			"email_sent": enquiry.EmailSent,
			"message":    "Message received! I'll be in touch within a few hours.",
		})
	}
}

// GET /api/contact/config — form action plus the minimum allowed travel
// date (today) for the date input.
func GetConfig(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"action":   "/api/contact",
		"min_date": utils.TodayISO(time.Now()),
	})
}
