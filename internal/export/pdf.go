package export

import (
	"bytes"
	"fmt"
	"log"

	"frontdesk-backend/internal/billing"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// A4 content area with the fixed page margin.
const (
	pdfMargin = 10.0
	pdfWidth  = 210.0 - 2*pdfMargin
	pdfHeight = 297.0 - 2*pdfMargin
)

const batchFilename = "All_Bills.pdf"

func logf(format string, args ...interface{}) {
	log.Printf("[Export] "+format, args...)
}

// PDF generates a single-bill A4 PDF with a border rectangle around the
// content area.
func (e *Exporter) PDF(r *models.BillRecord) (*Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)

	if err := e.renderBillPage(pdf, r); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	a := &Artifact{
		Filename:    e.billFilename(r, "pdf"),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}
	e.archive(a)
	return a, nil
}

// BatchPDF produces one combined PDF with a page per bill, appended
// strictly in list order: page 1 is bill index 0. A bill that cannot be
// rendered is skipped with a warning; one malformed bill must not abort
// the whole export.
func (e *Exporter) BatchPDF(bills []*models.BillRecord) (*Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)

	pages := 0
	for i, r := range bills {
		if r == nil {
			logf("skipping bill %d: record missing", i)
			continue
		}
		if err := e.renderBillPage(pdf, r); err != nil {
			logf("skipping bill %d (%s): %v", i, r.GuestName, err)
			continue
		}
		pages++
	}

	if pages == 0 {
		return nil, fmt.Errorf("no renderable bills in the working list")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write batch PDF: %w", err)
	}

	a := &Artifact{
		Filename:    batchFilename,
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}
	e.archive(a)
	return a, nil
}

// renderBillPage lays out one bill on a fresh page.
func (e *Exporter) renderBillPage(pdf *gofpdf.Fpdf, r *models.BillRecord) error {
	if !models.ValidFormType(r.FormType) {
		return fmt.Errorf("unknown form type %q", r.FormType)
	}

	pdf.AddPage()

	// Border around the content area
	pdf.SetLineWidth(0.4)
	pdf.Rect(pdfMargin, pdfMargin, pdfWidth, pdfHeight, "D")

	// Hotel header
	pdf.SetY(pdfMargin + 5)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(pdfWidth, 10, e.Hotel.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfWidth, 5, e.Hotel.Address, "", 1, "C", false, 0, "")
	if e.Hotel.Phone != "" {
		pdf.CellFormat(pdfWidth, 5, fmt.Sprintf("Phone: %s", e.Hotel.Phone), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(pdfWidth, 8, fmt.Sprintf("%s Bill", titleFor(r.FormType)), "1", 1, "C", true, 0, "")
	pdf.Ln(3)

	// Guest block
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Guest: %s", r.GuestName), "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Bill Date: %s", timeutil.DisplayDate(r.BillDate)), "", 1, "R", false, 0, "")
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Contact: %s", r.Contact), "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("ID: %s", r.IDNumber), "", 1, "R", false, 0, "")
	if r.Address != "" {
		pdf.CellFormat(pdfWidth, 7, fmt.Sprintf("Address: %s", r.Address), "", 1, "L", false, 0, "")
	}

	// Stay block
	roomLabel := "Room"
	if r.FormType == models.FormTypeRestaurant {
		roomLabel = "Table"
	}
	pdf.CellFormat(pdfWidth/3, 7, fmt.Sprintf("Check-In: %s", timeutil.DisplayDate(r.CheckIn)), "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfWidth/3, 7, fmt.Sprintf("Check-Out: %s", timeutil.DisplayDate(r.CheckOut)), "", 0, "C", false, 0, "")
	pdf.CellFormat(pdfWidth/3, 7, fmt.Sprintf("%s: %s", roomLabel, r.RoomNumber), "", 1, "R", false, 0, "")
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Days: %d", r.Days), "", 0, "L", false, 0, "")
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("PAX: %d", r.Pax), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// Itemized lines (non-zero categories only)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range billing.Lines(r) {
		pdf.CellFormat(80, 6, line.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", line.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("Rs. %d", billing.RoundINR(line.Rate)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("Rs. %d", billing.RoundINR(line.Amount)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Payment summary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pdfWidth/3, 8, fmt.Sprintf("Bill Amount: Rs. %d", billing.RoundINR(r.BillAmount)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(pdfWidth/3, 8, fmt.Sprintf("Advance: Rs. %d", billing.RoundINR(r.Advance)), "1", 0, "C", false, 0, "")

	if r.Due > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.CellFormat(pdfWidth/3, 8, fmt.Sprintf("Due: Rs. %d", billing.RoundINR(r.Due)), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Status: %s", r.Status), "", 0, "L", false, 0, "")
	if r.ModeOfPayment != "" {
		pdf.CellFormat(pdfWidth/2, 7, fmt.Sprintf("Mode: %s", r.ModeOfPayment), "", 1, "R", false, 0, "")
	} else {
		pdf.Ln(7)
	}

	// Policy footer pinned above the border's bottom edge
	if e.Hotel.Policy != "" {
		pdf.SetY(-30)
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(pdfWidth, 4, e.Hotel.Policy, "", "C", false)
	}

	return nil
}

func titleFor(formType string) string {
	switch formType {
	case models.FormTypeCustomer:
		return "Customer"
	case models.FormTypeRestaurant:
		return "Restaurant"
	case models.FormTypeHotel:
		return "Hotel"
	case models.FormTypeTravel:
		return "Travel"
	}
	return "Guest"
}
