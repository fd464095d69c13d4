package tours

import "testing"

func TestGetKnownTour(t *testing.T) {
	tour, ok := Get("cultural-kathmandu")
	if !ok {
		t.Fatal("expected cultural-kathmandu in the catalog")
	}
	if tour.Days != 4 {
		t.Errorf("expected 4 days, got %d", tour.Days)
	}
	if tour.BasePrice != 600 {
		t.Errorf("expected base price 600, got %d", tour.BasePrice)
	}
	if len(tour.DayPlans) != tour.Days {
		t.Errorf("expected %d day plans, got %d", tour.Days, len(tour.DayPlans))
	}
}

func TestGetUnknownTour(t *testing.T) {
	if _, ok := Get("everest-base-camp"); ok {
		t.Error("expected lookup miss for unknown tour id")
	}
}

func TestAllToursHaveCompleteDayPlans(t *testing.T) {
	for _, tour := range All() {
		if len(tour.DayPlans) != tour.Days {
			t.Errorf("%s: %d day plans for %d days", tour.ID, len(tour.DayPlans), tour.Days)
		}
		if tour.BasePrice <= 0 {
			t.Errorf("%s: base price %d", tour.ID, tour.BasePrice)
		}
	}
}

func TestFilterDifficulty(t *testing.T) {
	for _, tour := range Filter("easy", "") {
		if tour.ID == "poon-hill" {
			t.Error("easy filter should exclude the moderate trek")
		}
	}
	moderate := Filter("moderate", "")
	if len(moderate) == 0 {
		t.Fatal("expected at least one moderate tour")
	}
	for _, tour := range moderate {
		if tour.Difficulty != "Moderate" {
			t.Errorf("moderate filter returned %s (%s)", tour.ID, tour.Difficulty)
		}
	}
}

func TestFilterDuration(t *testing.T) {
	for _, tour := range Filter("", "short") {
		if tour.Days > shortTourMaxDays {
			t.Errorf("short filter returned %s with %d days", tour.ID, tour.Days)
		}
	}
	for _, tour := range Filter("", "long") {
		if tour.Days <= shortTourMaxDays {
			t.Errorf("long filter returned %s with %d days", tour.ID, tour.Days)
		}
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	if got, want := len(Filter("", "")), len(All()); got != want {
		t.Errorf("empty filter returned %d of %d tours", got, want)
	}
}

func TestFilterUnknownValueMatchesNothing(t *testing.T) {
	if got := Filter("extreme", ""); len(got) != 0 {
		t.Errorf("unknown difficulty returned %d tours", len(got))
	}
}

func TestHotelTierLookup(t *testing.T) {
	tier, ok := HotelTier(3)
	if !ok {
		t.Fatal("expected a 3-star tier")
	}
	if !tier.Included || tier.PricePerNight != 0 {
		t.Errorf("3-star tier should be included at no charge, got %+v", tier)
	}
	if _, ok := HotelTier(2); ok {
		t.Error("expected no 2-star tier")
	}
}

func TestVehicleLookup(t *testing.T) {
	suv, ok := Vehicle("suv")
	if !ok {
		t.Fatal("expected an suv option")
	}
	if suv.Seats != 4 {
		t.Errorf("expected suv to seat 4, got %d", suv.Seats)
	}
	if _, ok := Vehicle("helicopter"); ok {
		t.Error("expected no helicopter option")
	}
}
