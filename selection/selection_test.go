package selection

import "testing"

func selectedCount(u Update) int {
	n := 0
	for _, c := range u.Cards {
		if c.Selected {
			n++
		}
	}
	return n
}

func TestSelectIsMutuallyExclusive(t *testing.T) {
	g := NewHotelGroup()

	u := g.Select("4", false)
	if selectedCount(u) != 1 {
		t.Fatalf("expected exactly one selected card, got %d", selectedCount(u))
	}

	// selecting card B after card A leaves exactly one selected
	u = g.Select("5", false)
	if selectedCount(u) != 1 {
		t.Fatalf("expected exactly one selected card, got %d", selectedCount(u))
	}
	if u.DropdownValue != "5" {
		t.Fatalf("dropdown must mirror the chosen card, got %q", u.DropdownValue)
	}
	for _, c := range u.Cards {
		if c.Value == "4" && (c.Selected || c.AriaPressed != "false") {
			t.Fatal("previously selected card must be fully cleared")
		}
		if c.Value == "5" {
			if !c.Selected || c.AriaPressed != "true" {
				t.Fatal("chosen card must carry selected + aria-pressed state")
			}
			if c.ButtonLabel != "✓ Selected" {
				t.Fatalf("chosen card label should change, got %q", c.ButtonLabel)
			}
		}
	}
}

func TestSelectRestoresButtonLabels(t *testing.T) {
	g := NewHotelGroup()
	g.Select("4", false)
	u := g.Select("3", false)

	for _, c := range u.Cards {
		if c.Value == "4" && c.ButtonLabel != "Select 4-Star" {
			t.Fatalf("deselected card label must be restored, got %q", c.ButtonLabel)
		}
	}
}

func TestVehicleLabels(t *testing.T) {
	g := NewVehicleGroup()
	u := g.Select("jeep", false)

	for _, c := range u.Cards {
		switch c.Value {
		case "jeep":
			if c.ButtonLabel != "✓ Selected" {
				t.Fatalf("unexpected label %q", c.ButtonLabel)
			}
		case "hiace":
			if c.ButtonLabel != "Select Hiace" {
				t.Fatalf("unexpected label %q", c.ButtonLabel)
			}
		}
	}
}

func TestRecalculateOnlyWhenQuoteVisible(t *testing.T) {
	g := NewVehicleGroup()

	if u := g.Select("car", false); u.Recalculate {
		t.Fatal("no recalculation before a quote is displayed")
	}
	if u := g.Select("suv", true); !u.Recalculate {
		t.Fatal("expected recalculation once a quote is displayed")
	}
}

func TestUnknownValueIsNoOp(t *testing.T) {
	g := NewHotelGroup()
	g.Select("4", false)

	u := g.Select("9", true)
	if u.DropdownValue != "4" {
		t.Fatalf("unknown value must not change selection, got %q", u.DropdownValue)
	}
	if u.Recalculate {
		t.Fatal("unknown value must not trigger recalculation")
	}
	if selectedCount(u) != 1 {
		t.Fatal("selection state must be untouched")
	}
}

func TestSyncValueMirrorsDropdownChange(t *testing.T) {
	g := NewHotelGroup()
	g.Select("3", false)

	// dropdown change applies card state without any card click
	u := g.SyncValue("5", true)
	if selectedCount(u) != 1 || u.DropdownValue != "5" {
		t.Fatalf("dropdown change must re-derive card state, got %+v", u)
	}
	if !u.Recalculate {
		t.Fatal("dropdown change with a visible quote recalculates")
	}
}
