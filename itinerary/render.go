package itinerary

import (
	"fmt"
	"strings"

	"locallens/models"
	"locallens/utils"
)

// Plan is the structured itinerary for one tour, ready for serialization.
// Enhanced fields (start times, meal detail) are only populated for
// early-booking visitors.
type Plan struct {
	TourID       string    `json:"tourid"`
	Title        string    `json:"title"`
	Enhanced     bool      `json:"enhanced"`
	Duration     string    `json:"duration"`
	Difficulty   string    `json:"difficulty"`
	Price        string    `json:"price"`
	Days         []PlanDay `json:"days"`
	MeetingPoint string    `json:"meetingPoint"`
	SpecialNotes string    `json:"specialNotes,omitempty"`
}

// PlanDay is one rendered day block. Pills keep their display order: meals
// (standard view only), then activities, then notes.
type PlanDay struct {
	Label       string     `json:"label"` // "Day N", 1-indexed
	Title       string     `json:"title"`
	StartTime   string     `json:"startTime,omitempty"`
	Description string     `json:"description"`
	MealDetail  []MealIcon `json:"mealDetail,omitempty"`
	Pills       []Pill     `json:"pills"`
}

type MealIcon struct {
	Icon string `json:"icon"`
	Meal string `json:"meal"`
}

type Pill struct {
	Kind string `json:"kind"` // "meal", "activity", "note"
	Text string `json:"text"`
}

var mealIcons = map[string]string{
	"Breakfast": "🍳",
	"Lunch":     "🥘",
	"Dinner":    "🍽️",
}

const fallbackMealIcon = "🍴"

// startTime estimates when a day begins from its title and activities. This
// is a display heuristic, not schedule data. First matching rule wins.
func startTime(day models.DayPlan) string {
	title := strings.ToLower(day.Title)
	activities := strings.ToLower(strings.Join(day.Activities, " "))
	switch {
	case strings.Contains(title, "sunrise") || strings.Contains(activities, "sunrise"):
		return "5:00 AM"
	case strings.Contains(title, "puja") || strings.Contains(title, "ritual"):
		return "5:30 AM"
	case strings.Contains(title, "arrival") || strings.Contains(title, "departure"):
		return "9:00 AM"
	case strings.Contains(title, "fly") || strings.Contains(activities, "flight"):
		return "7:00 AM"
	default:
		return "8:30 AM"
	}
}

// BuildPlan maps a tour and the visitor's eligibility flag to a Plan. It is
// deterministic and free of any rendering surface.
func BuildPlan(tour models.TourPackage, enhanced bool) Plan {
	plan := Plan{
		TourID:       tour.ID,
		Title:        tour.Name + " – Itinerary",
		Enhanced:     enhanced,
		Duration:     tour.Duration,
		Difficulty:   tour.Difficulty,
		Price:        tour.Price,
		MeetingPoint: tour.MeetingPoint,
		SpecialNotes: tour.SpecialNotes,
	}

	for i, day := range tour.DayPlans {
		pd := PlanDay{
			Label:       fmt.Sprintf("Day %d", i+1),
			Title:       day.Title,
			Description: day.Description,
		}
		if enhanced {
			pd.StartTime = startTime(day)
			for _, m := range day.Meals {
				icon, ok := mealIcons[m]
				if !ok {
					icon = fallbackMealIcon
				}
				pd.MealDetail = append(pd.MealDetail, MealIcon{Icon: icon, Meal: m})
			}
		} else {
			// meal pills move into the detail line when enhanced
			for _, m := range day.Meals {
				pd.Pills = append(pd.Pills, Pill{Kind: "meal", Text: m})
			}
		}
		for _, a := range day.Activities {
			pd.Pills = append(pd.Pills, Pill{Kind: "activity", Text: a})
		}
		for _, n := range day.Notes {
			pd.Pills = append(pd.Pills, Pill{Kind: "note", Text: n})
		}
		plan.Days = append(plan.Days, pd)
	}
	return plan
}

// RenderHTML serializes a Plan into the modal-body markup fragment. All free
// text is escaped before insertion.
func RenderHTML(plan Plan) string {
	var sb strings.Builder

	if plan.Enhanced {
		sb.WriteString(`<div class="early-discount-badge">🎉 20% Early Booking Discount – Enhanced Itinerary</div>`)
	}

	sb.WriteString(`<div class="itinerary-meta">`)
	sb.WriteString("<span>" + utils.EscapeHTML(plan.Duration) + "</span>")
	sb.WriteString("<span>" + utils.EscapeHTML(plan.Difficulty) + "</span>")
	sb.WriteString("<span>" + utils.EscapeHTML(plan.Price) + "</span>")
	sb.WriteString(`</div>`)

	sb.WriteString(`<h3 class="itinerary-section-title">Day-by-Day Itinerary</h3>`)
	for _, day := range plan.Days {
		cls := "itinerary-day"
		if plan.Enhanced {
			cls += " itinerary-day--enhanced"
		}
		sb.WriteString(`<div class="` + cls + `">`)
		sb.WriteString(`<div class="itinerary-day-title">`)
		sb.WriteString(`<span class="itinerary-day-number">` + day.Label + `</span> `)
		sb.WriteString(utils.EscapeHTML(day.Title))
		sb.WriteString(`</div>`)

		if day.StartTime != "" {
			sb.WriteString(`<div class="itinerary-day-time">⏰ Starting ` + day.StartTime + `</div>`)
		}

		sb.WriteString(`<div class="itinerary-day-desc">` + utils.EscapeHTML(day.Description) + `</div>`)

		if len(day.MealDetail) > 0 {
			sb.WriteString(`<div class="itinerary-meal-detail"><strong>Meals included:</strong> `)
			parts := make([]string, 0, len(day.MealDetail))
			for _, m := range day.MealDetail {
				parts = append(parts, m.Icon+" "+utils.EscapeHTML(m.Meal))
			}
			sb.WriteString(strings.Join(parts, " &nbsp;·&nbsp; "))
			sb.WriteString(`</div>`)
		}

		sb.WriteString(`<div class="itinerary-day-pills">`)
		for _, p := range day.Pills {
			sb.WriteString(`<span class="itinerary-pill pill-` + p.Kind + `">` + utils.EscapeHTML(p.Text) + `</span>`)
		}
		sb.WriteString(`</div>`)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<div class="meeting-point-box">`)
	sb.WriteString(`<strong>Meeting Point &amp; Time</strong>`)
	sb.WriteString(`<br>` + utils.EscapeHTML(plan.MeetingPoint))
	if plan.SpecialNotes != "" {
		sb.WriteString(`<br><em style="opacity:0.85;font-size:0.88rem;">` + utils.EscapeHTML(plan.SpecialNotes) + `</em>`)
	}
	sb.WriteString(`</div>`)

	return sb.String()
}
