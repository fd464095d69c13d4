package selection

import (
	"fmt"

	"locallens/tours"
)

// Card is one selectable option inside a group.
type Card struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// CardState is the visual/ARIA state a card should show after an update.
type CardState struct {
	Value       string `json:"value"`
	Selected    bool   `json:"selected"`
	AriaPressed string `json:"ariaPressed"`
	ButtonLabel string `json:"buttonLabel"`
}

// Update describes everything the rendering surface must apply after a
// selection change: every card's state, the bound dropdown's value, and
// whether a displayed quote needs recalculating.
type Update struct {
	Cards         []CardState `json:"cards"`
	DropdownValue string      `json:"dropdownValue"`
	Recalculate   bool        `json:"recalculate"`
}

// Group is a set of mutually-exclusive selectable cards mirrored into a
// single dropdown of the same domain. Pointer activation, keyboard
// activation and the embedded select button all funnel into Select;
// dropdown changes arrive through SyncValue.
type Group struct {
	Domain   string
	Cards    []Card
	Selected string
}

// NewHotelGroup builds the hotel-card group from the catalog tiers.
func NewHotelGroup() *Group {
	g := &Group{Domain: "hotel"}
	for _, h := range tours.HotelTiers() {
		g.Cards = append(g.Cards, Card{
			Value: fmt.Sprintf("%d", h.Stars),
			Name:  fmt.Sprintf("%d-Star", h.Stars),
		})
	}
	return g
}

// NewVehicleGroup builds the vehicle-card group from the catalog options.
func NewVehicleGroup() *Group {
	g := &Group{Domain: "vehicle"}
	for _, v := range tours.Vehicles() {
		g.Cards = append(g.Cards, Card{Value: v.Type, Name: v.Name})
	}
	return g
}

func (g *Group) has(value string) bool {
	for _, c := range g.Cards {
		if c.Value == value {
			return true
		}
	}
	return false
}

func (g *Group) unselectedLabel(c Card) string {
	if g.Domain == "hotel" {
		return "Select " + c.Value + "-Star"
	}
	return "Select " + c.Name
}

// snapshot renders the current state of every card.
func (g *Group) snapshot() []CardState {
	states := make([]CardState, 0, len(g.Cards))
	for _, c := range g.Cards {
		s := CardState{Value: c.Value, AriaPressed: "false", ButtonLabel: g.unselectedLabel(c)}
		if c.Value == g.Selected {
			s.Selected = true
			s.AriaPressed = "true"
			s.ButtonLabel = "✓ Selected"
		}
		states = append(states, s)
	}
	return states
}

// Select marks the card with the given value as the single selected card.
// quoteVisible says whether a quote is currently displayed; only then does
// the update ask for a recalculation. Unknown values leave the group as is.
func (g *Group) Select(value string, quoteVisible bool) Update {
	if g.has(value) {
		g.Selected = value
	}
	return Update{
		Cards:         g.snapshot(),
		DropdownValue: g.Selected,
		Recalculate:   g.has(value) && quoteVisible,
	}
}

// SyncValue applies a dropdown-driven change back onto the cards, keeping
// the two controls in lockstep without the card ever being clicked.
func (g *Group) SyncValue(value string, quoteVisible bool) Update {
	return g.Select(value, quoteVisible)
}
