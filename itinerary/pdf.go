package itinerary

import (
	"bytes"
	"fmt"
	"os"

	"locallens/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// shareURL is what the PDF's QR code points at.
func shareURL(tourID string) string {
	base := os.Getenv("SITE_URL")
	if base == "" {
		base = "https://locallens.homes"
	}
	return fmt.Sprintf("%s/tours.html#%s", base, tourID)
}

// BuildPDF renders a printable itinerary document with a QR share code.
func BuildPDF(tour models.TourPackage, plan Plan) ([]byte, error) {
	qrPNG, err := qrcode.Encode(shareURL(tour.ID), qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(tour.Name))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("%s  |  %s  |  %s", tour.Duration, tour.Difficulty, tour.Price)))
	pdf.Ln(12)

	for _, day := range plan.Days {
		pdf.SetFont("Arial", "B", 12)
		title := day.Label + " – " + day.Title
		if day.StartTime != "" {
			title += " (starting " + day.StartTime + ")"
		}
		pdf.MultiCell(0, 7, tr(title), "", "", false)

		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(day.Description), "", "", false)
		pdf.Ln(3)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Meeting Point & Time")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(tour.MeetingPoint), "", "", false)
	if tour.SpecialNotes != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr(tour.SpecialNotes), "", "", false)
	}

	// QR share code in the bottom-right corner
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("share-qr", 160, 250, 35, 35, false, opts, 0, "")
	pdf.SetXY(160, 285)
	pdf.SetFont("Arial", "", 7)
	pdf.Cell(35, 4, "Scan to open this tour")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
