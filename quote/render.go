package quote

import (
	"fmt"
	"strings"

	"locallens/utils"
)

const disclaimer = "* Estimate includes tour, hotel &amp; vehicle. Flights, permits &amp; personal expenses extra. Final price confirmed by Jivan."

// Placeholder is what the result panel shows before a tour is chosen.
func Placeholder() string {
	return `<div class="quote-placeholder">Select your tour package above to see an instant estimate</div>`
}

// RenderHTML serializes a Breakdown into the result-panel markup fragment.
func RenderHTML(b Breakdown) string {
	var sb strings.Builder
	sb.WriteString(`<div class="quote-result">`)

	if b.CapacityWarning != "" {
		sb.WriteString(`<div class="suv-capacity-warning">⚠️ ` + utils.EscapeHTML(b.CapacityWarning) + `</div>`)
	}

	if b.Eligible {
		sb.WriteString(`<div class="early-discount-badge">🎉 20% Early Booking Discount Active`)
		if b.HoursRemaining > 0 {
			fmt.Fprintf(&sb, " – %dh remaining", b.HoursRemaining)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`<div class="quote-tour-name">` + utils.EscapeHTML(b.TourName) + `</div>`)

	sb.WriteString(`<div class="quote-breakdown">`)
	fmt.Fprintf(&sb, "<span>%d %s</span>", b.Travelers, utils.Pluralize(b.Travelers, "traveller"))
	fmt.Fprintf(&sb, "<span>%d days</span>", b.Days)
	if b.HotelIncluded {
		fmt.Fprintf(&sb, "<span>%d-Star Hotel (included)</span>", b.HotelStars)
	} else {
		fmt.Fprintf(&sb, "<span>%d-Star Hotel (+$%s)</span>", b.HotelStars, utils.FormatAmount(b.HotelCost))
	}
	sb.WriteString("<span>" + utils.EscapeHTML(b.VehicleName) + "</span>")
	if b.GroupDiscountPct > 0 {
		fmt.Fprintf(&sb, "<span>Group discount: %d%% off</span>", b.GroupDiscountPct)
	}
	sb.WriteString(`</div>`)

	if b.Eligible {
		sb.WriteString(`<div class="quote-total">`)
		sb.WriteString(`<span class="quote-original-price">~$` + utils.FormatAmount(b.Subtotal) + `</span> `)
		sb.WriteString(`<span class="quote-discounted-price">~$` + utils.FormatAmount(b.Total) + `</span>`)
		sb.WriteString(`<span class="discount-savings"> — save $` + utils.FormatAmount(b.Savings) + `!</span>`)
		sb.WriteString(`</div>`)
	} else {
		sb.WriteString(`<div class="quote-total">Estimated Total: ~$` + utils.FormatAmount(b.Total) + `</div>`)
	}

	sb.WriteString(`<div class="quote-note">` + disclaimer + `</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}
