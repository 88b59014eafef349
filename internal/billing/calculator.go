package billing

import (
	"math"
	"time"

	"frontdesk-backend/internal/models"
)

// Line is one room category on a bill breakdown.
type Line struct {
	Label  string  `json:"label"`
	Qty    int     `json:"qty"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// Amount computes the total charge for a bill record.
// Room-based forms sum qty x rate x days over the five room categories;
// restaurant bills charge days x pax x per-guest rate (500 when unset).
// Unknown form types total zero.
func Amount(r *models.BillRecord) float64 {
	switch r.FormType {
	case models.FormTypeCustomer, models.FormTypeHotel, models.FormTypeTravel:
		days := float64(r.Days)
		return days * (float64(r.DoubleBedRoom)*r.DoubleBedRate +
			float64(r.TripleBedRoom)*r.TripleBedRate +
			float64(r.FourBedRoom)*r.FourBedRate +
			float64(r.ExtraBed)*r.ExtraBedRate +
			float64(r.Kitchen)*r.KitchenRate)
	case models.FormTypeRestaurant:
		rate := r.RatePerGuest
		if rate == 0 {
			rate = models.DefaultGuestRate
		}
		return float64(r.Days) * float64(r.Pax) * rate
	}
	return 0
}

// Due is the outstanding balance. Not clamped: overpayment yields a
// negative due and is displayed as such.
func Due(r *models.BillRecord) float64 {
	return Amount(r) - r.Advance
}

// DeriveDays returns the calendar-day difference between check-in and
// check-out when both parse and the difference is positive. Otherwise the
// previously entered value is kept.
func DeriveDays(checkIn, checkOut string, previous int) int {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return previous
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return previous
	}
	days := int(out.Sub(in).Hours() / 24)
	if days <= 0 {
		return previous
	}
	return days
}

// Lines returns the itemized breakdown for a record. Categories with a
// non-positive quantity are excluded. Restaurant bills collapse to a single
// per-guest line.
func Lines(r *models.BillRecord) []Line {
	days := float64(r.Days)
	if r.FormType == models.FormTypeRestaurant {
		rate := r.RatePerGuest
		if rate == 0 {
			rate = models.DefaultGuestRate
		}
		if r.Pax <= 0 {
			return nil
		}
		return []Line{{
			Label:  "Restaurant (per guest)",
			Qty:    r.Pax,
			Rate:   rate,
			Amount: days * float64(r.Pax) * rate,
		}}
	}

	categories := []struct {
		label string
		qty   int
		rate  float64
	}{
		{"Double Bed Room", r.DoubleBedRoom, r.DoubleBedRate},
		{"Triple Bed Room", r.TripleBedRoom, r.TripleBedRate},
		{"Four Bed Room", r.FourBedRoom, r.FourBedRate},
		{"Extra Bed", r.ExtraBed, r.ExtraBedRate},
		{"Kitchen", r.Kitchen, r.KitchenRate},
	}

	var lines []Line
	for _, c := range categories {
		if c.qty <= 0 {
			continue
		}
		lines = append(lines, Line{
			Label:  c.label,
			Qty:    c.qty,
			Rate:   c.rate,
			Amount: float64(c.qty) * c.rate * days,
		})
	}
	return lines
}

// Recalculate writes the derived amount and due back onto the record.
func Recalculate(r *models.BillRecord) {
	r.BillAmount = Amount(r)
	r.Due = r.BillAmount - r.Advance
}

// RoundINR rounds to whole rupees for display. No fractional paise.
func RoundINR(v float64) int64 {
	return int64(math.Round(v))
}
