package routes

import (
	"net/http"

	"locallens/admin"
	"locallens/auth"
	"locallens/contact"
	"locallens/gallery"
	"locallens/itinerary"
	"locallens/middleware"
	"locallens/notify"
	"locallens/promo"
	"locallens/quote"
	"locallens/ratelim"
	"locallens/tours"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/tourpic/*filepath", http.Dir("static/tourpic"))
	router.ServeFiles("/css/*filepath", http.Dir("static/css"))
	router.ServeFiles("/js/*filepath", http.Dir("static/js"))
}

func AddTourRoutes(router *httprouter.Router) {
	router.GET("/api/tours/tours", ratelim.RateLimit(tours.GetTours))
	router.GET("/api/tours/tour/:tourid", tours.GetTour)
	router.GET("/api/tours/options", ratelim.RateLimit(tours.GetOptions))
}

func AddItineraryRoutes(router *httprouter.Router) {
	router.GET("/api/tours/tour/:tourid/itinerary", ratelim.RateLimit(itinerary.GetItinerary))
	router.GET("/api/tours/tour/:tourid/itinerary/pdf", ratelim.RateLimit(itinerary.GetItineraryPDF))
	router.GET("/api/tours/tour/:tourid/photos", gallery.ListTourPhotos)
}

func AddPromoRoutes(router *httprouter.Router) {
	router.POST("/api/promo/visit", ratelim.RateLimit(promo.RecordVisit))
	router.GET("/api/promo/status", promo.GetStatus)
}

func AddQuoteRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.POST("/api/quote", ratelim.RateLimit(quote.GenerateQuote(hub)))
}

func AddContactRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.POST("/api/contact", ratelim.RateLimit(contact.SubmitEnquiry(hub)))
	router.GET("/api/contact/config", contact.GetConfig)
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddAdminRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/api/admin/enquiries", middleware.Authenticate(admin.GetEnquiries))
	router.GET("/api/admin/quotes", middleware.Authenticate(admin.GetQuotes))
	router.POST("/api/admin/tours/:tourid/photos", middleware.Authenticate(gallery.UploadTourPhotos))
	router.GET("/api/admin/updates", middleware.Authenticate(notify.WebSocketHandler(hub)))
}
