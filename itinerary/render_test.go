package itinerary

import (
	"strings"
	"testing"

	"locallens/models"
	"locallens/tours"
)

func TestStartTimeHeuristic(t *testing.T) {
	cases := []struct {
		name       string
		title      string
		activities []string
		want       string
	}{
		{"sunrise in title", "Nagarkot Sunrise", nil, "5:00 AM"},
		{"sunrise in activities", "Pokhara Day", []string{"Sarangkot Sunrise"}, "5:00 AM"},
		{"puja", "Muktinath Sunrise Puja", nil, "5:00 AM"}, // sunrise rule wins, it comes first
		{"puja only", "Morning Puja", nil, "5:30 AM"},
		{"ritual", "Cliff Preparation & Ritual", nil, "5:30 AM"},
		{"arrival", "Arrival Kathmandu", nil, "9:00 AM"},
		{"departure", "Souvenir Shopping & Departure", nil, "9:00 AM"},
		{"fly in title", "Fly to Pokhara", nil, "7:00 AM"},
		{"flight in activities", "Pokhara Hop", []string{"Mountain Flight"}, "7:00 AM"},
		{"default", "Chitwan Jungle Safari", []string{"Jeep Safari"}, "8:30 AM"},
		{"case insensitive", "SUNRISE special", nil, "5:00 AM"},
	}
	for _, c := range cases {
		got := startTime(models.DayPlan{Title: c.title, Activities: c.activities})
		if got != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestBuildPlanStandardView(t *testing.T) {
	tour, _ := tours.Get("cultural-kathmandu")
	plan := BuildPlan(tour, false)

	if plan.Enhanced {
		t.Fatal("standard plan must not be enhanced")
	}
	if len(plan.Days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(plan.Days))
	}
	if plan.Days[0].Label != "Day 1" || plan.Days[3].Label != "Day 4" {
		t.Fatalf("day labels must be 1-indexed, got %s / %s", plan.Days[0].Label, plan.Days[3].Label)
	}
	if plan.Days[0].StartTime != "" {
		t.Fatal("start times are enhanced-only")
	}
	if len(plan.Days[0].MealDetail) != 0 {
		t.Fatal("meal detail is enhanced-only")
	}

	// standard view shows meals as pills, before activities and notes
	day2 := plan.Days[1]
	if day2.Pills[0].Kind != "meal" {
		t.Fatalf("expected meal pills first, got %s", day2.Pills[0].Kind)
	}
	kinds := map[string]int{}
	lastKindOrder := 0
	order := map[string]int{"meal": 1, "activity": 2, "note": 3}
	for _, p := range day2.Pills {
		kinds[p.Kind]++
		if order[p.Kind] < lastKindOrder {
			t.Fatalf("pill order violated: %v", day2.Pills)
		}
		lastKindOrder = order[p.Kind]
	}
	if kinds["meal"] != 2 || kinds["activity"] != 3 || kinds["note"] != 1 {
		t.Fatalf("unexpected pill counts: %v", kinds)
	}
}

func TestBuildPlanEnhancedView(t *testing.T) {
	tour, _ := tours.Get("cultural-kathmandu")
	plan := BuildPlan(tour, true)

	if !plan.Enhanced {
		t.Fatal("plan should be enhanced")
	}
	day2 := plan.Days[1]
	if day2.StartTime == "" {
		t.Fatal("enhanced days carry a start time")
	}
	if len(day2.MealDetail) != 2 {
		t.Fatalf("expected 2 meal detail entries, got %d", len(day2.MealDetail))
	}
	if day2.MealDetail[0].Icon != "🍳" {
		t.Fatalf("expected breakfast icon, got %s", day2.MealDetail[0].Icon)
	}
	// no duplicated meal pills in the enhanced view
	for _, p := range day2.Pills {
		if p.Kind == "meal" {
			t.Fatal("meal pills must move into the detail line when enhanced")
		}
	}
}

func TestMealIconFallback(t *testing.T) {
	tour := models.TourPackage{
		ID:   "t",
		Name: "T",
		DayPlans: []models.DayPlan{
			{Title: "Feast Day", Meals: []string{"Brunch"}},
		},
	}
	plan := BuildPlan(tour, true)
	if plan.Days[0].MealDetail[0].Icon != "🍴" {
		t.Fatalf("unknown meals use the generic icon, got %s", plan.Days[0].MealDetail[0].Icon)
	}
}

func TestRenderHTMLEscapesCatalogText(t *testing.T) {
	tour := models.TourPackage{
		ID:           "evil",
		Name:         "Evil",
		Duration:     "1 day",
		MeetingPoint: `Airport "Gate 3" <b>`,
		DayPlans: []models.DayPlan{
			{
				Title:       `<script>alert("xss")</script>`,
				Description: "A & B",
				Activities:  []string{"<img src=x>"},
			},
		},
	}
	html := RenderHTML(BuildPlan(tour, false))

	if strings.Contains(html, "<script>") || strings.Contains(html, "<img") {
		t.Fatal("catalog text must never render as markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatal("expected escaped day title")
	}
	if !strings.Contains(html, "A &amp; B") {
		t.Fatal("expected escaped ampersand in description")
	}
	if !strings.Contains(html, "&quot;Gate 3&quot;") {
		t.Fatal("expected escaped quotes in meeting point")
	}
}

func TestRenderHTMLStructure(t *testing.T) {
	tour, _ := tours.Get("pokhara-nagarkot")

	std := RenderHTML(BuildPlan(tour, false))
	if strings.Contains(std, "early-discount-badge") {
		t.Fatal("standard view carries no discount callout")
	}
	if !strings.Contains(std, `<span class="itinerary-day-number">Day 1</span>`) {
		t.Fatal("expected day number markup")
	}
	if !strings.Contains(std, "meeting-point-box") {
		t.Fatal("expected meeting point block")
	}

	enh := RenderHTML(BuildPlan(tour, true))
	if !strings.Contains(enh, "early-discount-badge") {
		t.Fatal("enhanced view prepends the discount callout")
	}
	if !strings.Contains(enh, "itinerary-day--enhanced") {
		t.Fatal("enhanced view marks day blocks")
	}
	if !strings.Contains(enh, "Meals included:") {
		t.Fatal("enhanced view renders the meal detail line")
	}
}

func TestBuildPDF(t *testing.T) {
	tour, _ := tours.Get("cultural-kathmandu")
	doc, err := BuildPDF(tour, BuildPlan(tour, false))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc) == 0 || !strings.HasPrefix(string(doc[:5]), "%PDF-") {
		t.Fatal("expected a PDF document")
	}
}
