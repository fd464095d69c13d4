package quote

import (
	"strings"
	"testing"

	"locallens/tours"
)

func testInput(travelers int, eligible bool) Input {
	tour, _ := tours.Get("cultural-kathmandu") // base 600, 4 days
	hotel, _ := tours.HotelTier(3)
	vehicle, _ := tours.Vehicle("car") // $30/day
	return Input{
		Tour:      tour,
		Travelers: travelers,
		Hotel:     hotel,
		Vehicle:   vehicle,
		Eligible:  eligible,
	}
}

func TestComputeBaseScenario(t *testing.T) {
	// 600 x 2 x 1.0 + 0 + 30 x 4 = 1320
	b, err := Compute(testInput(2, false))
	if err != nil {
		t.Fatal(err)
	}
	if b.Subtotal != 1320 {
		t.Fatalf("expected subtotal 1320, got %d", b.Subtotal)
	}
	if b.Total != 1320 {
		t.Fatalf("expected total 1320, got %d", b.Total)
	}
	if b.Savings != 0 || b.GroupDiscountPct != 0 || b.CapacityWarning != "" {
		t.Fatalf("unexpected extras in breakdown: %+v", b)
	}
	if b.HotelCost != 0 {
		t.Fatalf("3-star hotel must cost 0, got %d", b.HotelCost)
	}
}

func TestComputeGroupDiscount(t *testing.T) {
	cases := []struct {
		travelers int
		subtotal  int
		pct       int
	}{
		{4, 600*4 + 120, 0},
		{5, 2700 + 120, 10}, // 600x5x0.9 = 2700
		{6, 3240 + 120, 10}, // 600x6x0.9 = 3240
		{7, 3570 + 120, 15}, // 600x7x0.85 = 3570
	}
	for _, c := range cases {
		b, err := Compute(testInput(c.travelers, false))
		if err != nil {
			t.Fatal(err)
		}
		if b.Subtotal != c.subtotal {
			t.Errorf("%d travelers: expected subtotal %d, got %d", c.travelers, c.subtotal, b.Subtotal)
		}
		if b.GroupDiscountPct != c.pct {
			t.Errorf("%d travelers: expected discount %d%%, got %d%%", c.travelers, c.pct, b.GroupDiscountPct)
		}
	}
}

func TestComputeEarlyBookingDiscount(t *testing.T) {
	in := testInput(2, true)
	in.HoursRemaining = 8
	b, err := Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	// savings = round(1320 x 0.20) = 264
	if b.Savings != 264 {
		t.Fatalf("expected savings 264, got %d", b.Savings)
	}
	if b.Total != 1056 {
		t.Fatalf("expected total 1056, got %d", b.Total)
	}
	if b.Total > b.Subtotal {
		t.Fatal("total must never exceed subtotal")
	}
}

func TestComputeHotelAndVehicleCosts(t *testing.T) {
	in := testInput(2, false)
	in.Hotel, _ = tours.HotelTier(5) // $90/night
	in.Vehicle, _ = tours.Vehicle("jeep")
	b, err := Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	if b.HotelCost != 90*4 {
		t.Fatalf("expected hotel cost 360, got %d", b.HotelCost)
	}
	if b.VehicleCost != 60*4 {
		t.Fatalf("expected vehicle cost 240, got %d", b.VehicleCost)
	}
}

func TestComputeCapacityWarning(t *testing.T) {
	in := testInput(5, false)
	in.Vehicle, _ = tours.Vehicle("suv")
	b, err := Compute(in)
	if err != nil {
		t.Fatal(err)
	}
	if b.CapacityWarning == "" {
		t.Fatal("expected capacity warning for 5 travelers in an SUV")
	}
	// advisory only: the quote is still computed
	if b.Subtotal == 0 || b.Total == 0 {
		t.Fatal("quote should still be computed with a capacity warning")
	}

	in.Travelers = 4
	b, _ = Compute(in)
	if b.CapacityWarning != "" {
		t.Fatal("4 travelers fit the SUV, no warning expected")
	}
}

func TestComputeNoTour(t *testing.T) {
	if _, err := Compute(Input{}); err != ErrNoTour {
		t.Fatalf("expected ErrNoTour, got %v", err)
	}
}

func TestRenderHTMLAmountsAndPluralization(t *testing.T) {
	in := testInput(6, false)
	b, _ := Compute(in)
	html := RenderHTML(b)

	// 600x6x0.9 + 0 + 30x4 = 3360
	if !strings.Contains(html, "Estimated Total: ~$3,360") {
		t.Fatalf("expected formatted total in output, got: %s", html)
	}
	if !strings.Contains(html, "6 travellers") {
		t.Fatal("expected pluralized traveller count")
	}
	if !strings.Contains(html, "3-Star Hotel (included)") {
		t.Fatal("expected included hotel label")
	}
	if !strings.Contains(html, "Group discount: 10% off") {
		t.Fatal("expected group discount line")
	}
}

func TestRenderHTMLSingleTraveler(t *testing.T) {
	b, _ := Compute(testInput(1, false))
	if !strings.Contains(RenderHTML(b), "1 traveller<") {
		t.Fatal("expected singular traveller label")
	}
}

func TestRenderHTMLEligible(t *testing.T) {
	in := testInput(2, true)
	in.HoursRemaining = 12
	b, _ := Compute(in)
	html := RenderHTML(b)

	if !strings.Contains(html, "quote-original-price") || !strings.Contains(html, "quote-discounted-price") {
		t.Fatal("eligible quote must show both original and discounted totals")
	}
	if !strings.Contains(html, "12h remaining") {
		t.Fatal("expected remaining hours in discount badge")
	}
	if !strings.Contains(html, "save $264!") {
		t.Fatal("expected savings statement")
	}
}

func TestRenderEscapesNames(t *testing.T) {
	b := Breakdown{
		TourName:    `<script>alert("x")</script>`,
		Travelers:   2,
		VehicleName: "Car",
	}
	html := RenderHTML(b)
	if strings.Contains(html, "<script>") {
		t.Fatal("tour name must be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatal("expected escaped tour name")
	}
}

func TestCapitalizeMultibyte(t *testing.T) {
	cases := []struct{ in, want string }{
		{"minibus", "Minibus"},
		{"électrique", "Électrique"},
		{"", ""},
	}
	for _, c := range cases {
		if got := capitalize(c.in); got != c.want {
			t.Errorf("capitalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
