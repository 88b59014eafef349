package forms

import (
	"fmt"

	"frontdesk-backend/internal/models"
)

// Field kinds understood by a generic form renderer.
const (
	KindText   = "text"
	KindNumber = "number"
	KindDate   = "date"
	KindSelect = "select"
)

// Field describes one input of a bill form.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

var commonFields = []Field{
	{Name: "guest_name", Label: "Guest Name", Kind: KindText, Required: true},
	{Name: "address", Label: "Address", Kind: KindText},
	{Name: "id_number", Label: "ID Number", Kind: KindText},
	{Name: "contact", Label: "Contact", Kind: KindText},
	{Name: "bill_date", Label: "Bill Date", Kind: KindDate, Required: true},
	{Name: "check_in", Label: "Check-In", Kind: KindDate},
	{Name: "check_out", Label: "Check-Out", Kind: KindDate},
	{Name: "days", Label: "Days", Kind: KindNumber},
	{Name: "pax", Label: "PAX", Kind: KindNumber},
	{Name: "advance", Label: "Advance Paid", Kind: KindNumber},
	{Name: "cash_in", Label: "Cash In", Kind: KindNumber},
	{Name: "cash_out", Label: "Cash Out", Kind: KindNumber},
	{Name: "status", Label: "Payment Status", Kind: KindSelect,
		Options: []string{models.StatusPending, models.StatusPaid, models.StatusCancelled}},
	{Name: "mode_of_payment", Label: "Mode of Payment", Kind: KindText},
	{Name: "to_account", Label: "To Account", Kind: KindText},
	{Name: "scheme", Label: "Scheme", Kind: KindText},
}

var roomFields = []Field{
	{Name: "room_number", Label: "Room Number", Kind: KindText},
	{Name: "double_bed_room", Label: "Double Bed Rooms", Kind: KindNumber},
	{Name: "double_bed_rate", Label: "Double Bed Rate", Kind: KindNumber},
	{Name: "triple_bed_room", Label: "Triple Bed Rooms", Kind: KindNumber},
	{Name: "triple_bed_rate", Label: "Triple Bed Rate", Kind: KindNumber},
	{Name: "four_bed_room", Label: "Four Bed Rooms", Kind: KindNumber},
	{Name: "four_bed_rate", Label: "Four Bed Rate", Kind: KindNumber},
	{Name: "extra_bed", Label: "Extra Beds", Kind: KindNumber},
	{Name: "extra_bed_rate", Label: "Extra Bed Rate", Kind: KindNumber},
	{Name: "kitchen", Label: "Kitchen", Kind: KindNumber},
	{Name: "kitchen_rate", Label: "Kitchen Rate", Kind: KindNumber},
}

var restaurantFields = []Field{
	// Room number carries the table number on restaurant bills
	{Name: "room_number", Label: "Table Number", Kind: KindText},
	{Name: "rate_per_guest", Label: "Rate Per Guest", Kind: KindNumber},
}

// Schema returns the declarative field list for a form type, or an error
// for an unknown type.
func Schema(formType string) ([]Field, error) {
	if !models.ValidFormType(formType) {
		return nil, fmt.Errorf("unknown form type: %s", formType)
	}
	fields := make([]Field, 0, len(commonFields)+len(roomFields))
	fields = append(fields, commonFields...)
	if formType == models.FormTypeRestaurant {
		fields = append(fields, restaurantFields...)
	} else {
		fields = append(fields, roomFields...)
	}
	return fields, nil
}

// Validate checks a record against its form schema and returns field-level
// messages keyed by field name. An empty map means the record is valid.
func Validate(r *models.BillRecord) map[string]string {
	errs := make(map[string]string)

	if !models.ValidFormType(r.FormType) {
		errs["form_type"] = "unknown form type"
		return errs
	}
	if r.GuestName == "" {
		errs["guest_name"] = "guest name is required"
	}
	if r.BillDate == "" {
		errs["bill_date"] = "bill date is required"
	}
	if r.Days < 0 {
		errs["days"] = "days cannot be negative"
	}
	if r.Pax < 0 {
		errs["pax"] = "PAX cannot be negative"
	}
	if r.Advance < 0 {
		errs["advance"] = "advance cannot be negative"
	}
	if r.CashIn < 0 {
		errs["cash_in"] = "cash in cannot be negative"
	}
	if r.CashOut < 0 {
		errs["cash_out"] = "cash out cannot be negative"
	}
	if r.Status != "" && r.Status != models.StatusPending &&
		r.Status != models.StatusPaid && r.Status != models.StatusCancelled {
		errs["status"] = "status must be Pending, Paid or Cancelled"
	}

	for name, qty := range map[string]int{
		"double_bed_room": r.DoubleBedRoom,
		"triple_bed_room": r.TripleBedRoom,
		"four_bed_room":   r.FourBedRoom,
		"extra_bed":       r.ExtraBed,
		"kitchen":         r.Kitchen,
	} {
		if qty < 0 {
			errs[name] = "quantity cannot be negative"
		}
	}

	return errs
}
