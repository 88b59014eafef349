package export

import (
	"fmt"
	"strings"

	"frontdesk-backend/internal/billing"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/timeutil"
)

const textRule = "--------------------------------------"

// Text renders the fixed human-readable bill template used for clipboard
// export: hotel header, guest info, stay details, itemized non-zero lines,
// payment summary and the policy footer.
func (e *Exporter) Text(r *models.BillRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s\n", e.Hotel.Name))
	if e.Hotel.Address != "" {
		b.WriteString(fmt.Sprintf("%s\n", e.Hotel.Address))
	}
	if e.Hotel.Phone != "" {
		b.WriteString(fmt.Sprintf("Phone: %s\n", e.Hotel.Phone))
	}
	b.WriteString(textRule + "\n")

	b.WriteString(fmt.Sprintf("%s Bill - %s\n", titleFor(r.FormType), timeutil.DisplayDate(r.BillDate)))
	b.WriteString(fmt.Sprintf("Guest   : %s\n", r.GuestName))
	if r.Contact != "" {
		b.WriteString(fmt.Sprintf("Contact : %s\n", r.Contact))
	}
	if r.Address != "" {
		b.WriteString(fmt.Sprintf("Address : %s\n", r.Address))
	}

	roomLabel := "Room"
	if r.FormType == models.FormTypeRestaurant {
		roomLabel = "Table"
	}
	if r.RoomNumber != "" {
		b.WriteString(fmt.Sprintf("%-8s: %s\n", roomLabel, r.RoomNumber))
	}
	b.WriteString(fmt.Sprintf("Stay    : %s to %s (%d days, %d PAX)\n",
		timeutil.DisplayDate(r.CheckIn), timeutil.DisplayDate(r.CheckOut), r.Days, r.Pax))
	b.WriteString(textRule + "\n")

	for _, line := range billing.Lines(r) {
		b.WriteString(fmt.Sprintf("%-22s %2d x Rs. %-6d = Rs. %d\n",
			line.Label, line.Qty, billing.RoundINR(line.Rate), billing.RoundINR(line.Amount)))
	}
	b.WriteString(textRule + "\n")

	b.WriteString(fmt.Sprintf("Bill Amount : Rs. %d\n", billing.RoundINR(r.BillAmount)))
	b.WriteString(fmt.Sprintf("Advance     : Rs. %d\n", billing.RoundINR(r.Advance)))
	b.WriteString(fmt.Sprintf("Due         : Rs. %d\n", billing.RoundINR(r.Due)))
	b.WriteString(fmt.Sprintf("Status      : %s\n", r.Status))
	if r.ModeOfPayment != "" {
		b.WriteString(fmt.Sprintf("Mode        : %s\n", r.ModeOfPayment))
	}
	b.WriteString(textRule + "\n")

	if e.Hotel.Policy != "" {
		b.WriteString(e.Hotel.Policy + "\n")
	}

	return b.String()
}
