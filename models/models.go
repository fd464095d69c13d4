package models

// TourPackage is one entry of the static tour catalog. Catalog entries are
// immutable for the process lifetime.
type TourPackage struct {
	ID           string    `json:"tourid" bson:"tourid"`
	Name         string    `json:"name" bson:"name"`
	Duration     string    `json:"duration" bson:"duration"`
	Days         int       `json:"days" bson:"days"`
	Difficulty   string    `json:"difficulty" bson:"difficulty"`
	Price        string    `json:"price" bson:"price"`
	BasePrice    int       `json:"basePrice" bson:"basePrice"`
	MeetingPoint string    `json:"meetingPoint" bson:"meetingPoint"`
	SpecialNotes string    `json:"specialNotes" bson:"specialNotes"`
	DayPlans     []DayPlan `json:"dayPlans" bson:"dayPlans"`
}

// DayPlan is one day's entry within a multi-day itinerary. Day order is
// itinerary order and is significant.
type DayPlan struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Meals       []string `json:"meals" bson:"meals"`
	Activities  []string `json:"activities" bson:"activities"`
	Notes       []string `json:"notes" bson:"notes"`
}

// HotelTier is a star rating with a fixed nightly price. The 3-star tier is
// folded into the base tour price.
type HotelTier struct {
	Stars         int  `json:"stars" bson:"stars"`
	PricePerNight int  `json:"pricePerNight" bson:"pricePerNight"`
	Included      bool `json:"included" bson:"included"`
}

// VehicleOption is a transport choice with a fixed daily price. Seats is 0
// when no seating-capacity policy applies.
type VehicleOption struct {
	Type        string `json:"type" bson:"type"`
	Name        string `json:"name" bson:"name"`
	PricePerDay int    `json:"pricePerDay" bson:"pricePerDay"`
	Seats       int    `json:"seats,omitempty" bson:"seats,omitempty"`
}

// Enquiry is a contact form submission.
type Enquiry struct {
	EnquiryID  string `json:"enquiryid" bson:"enquiryid"`
	Name       string `json:"name" bson:"name"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Message    string `json:"message" bson:"message"`
	TravelDate string `json:"travel_date,omitempty" bson:"travel_date,omitempty"`
	Trip       string `json:"trip,omitempty" bson:"trip,omitempty"`
	Forwarded  bool   `json:"forwarded" bson:"forwarded"`
	EmailSent  bool   `json:"email_sent" bson:"email_sent"`
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`
}

// QuoteRecord archives one computed quote request.
type QuoteRecord struct {
	QuoteID    string `json:"quoteid" bson:"quoteid"`
	VisitorID  string `json:"visitorId,omitempty" bson:"visitorId,omitempty"`
	TourID     string `json:"tourid" bson:"tourid"`
	Travelers  int    `json:"travelers" bson:"travelers"`
	HotelStars int    `json:"hotelStars" bson:"hotelStars"`
	Vehicle    string `json:"vehicle" bson:"vehicle"`
	Subtotal   int    `json:"subtotal" bson:"subtotal"`
	Total      int    `json:"total" bson:"total"`
	Eligible   bool   `json:"eligible" bson:"eligible"`
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`
}
