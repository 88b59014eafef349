package models

// Form types decide which fields of a bill are computed and displayed.
const (
	FormTypeCustomer   = "customer"
	FormTypeRestaurant = "restaurant"
	FormTypeHotel      = "hotel"
	FormTypeTravel     = "travel"
)

// Payment statuses
const (
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusCancelled = "Cancelled"
)

// Default nightly rates seeded into a fresh bill
const (
	DefaultDoubleBedRate = 2000
	DefaultTripleBedRate = 2500
	DefaultFourBedRate   = 3000
	DefaultExtraBedRate  = 500
	DefaultKitchenRate   = 1000
	DefaultGuestRate     = 500
)

// BillRecord is the working record behind every bill form.
// Amount and Due are always recomputed from the other fields, never hand-set.
// Dates are kept as YYYY-MM-DD strings, matching the sheet API.
type BillRecord struct {
	GuestName string `json:"guest_name"`
	FormType  string `json:"form_type"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Days     int    `json:"days"`
	Pax      int    `json:"pax"`

	// RoomNumber doubles as the table number on restaurant bills.
	RoomNumber string `json:"room_number"`

	DoubleBedRoom int     `json:"double_bed_room"`
	DoubleBedRate float64 `json:"double_bed_rate"`
	TripleBedRoom int     `json:"triple_bed_room"`
	TripleBedRate float64 `json:"triple_bed_rate"`
	FourBedRoom   int     `json:"four_bed_room"`
	FourBedRate   float64 `json:"four_bed_rate"`
	ExtraBed      int     `json:"extra_bed"`
	ExtraBedRate  float64 `json:"extra_bed_rate"`
	Kitchen       int     `json:"kitchen"`
	KitchenRate   float64 `json:"kitchen_rate"`

	RatePerGuest float64 `json:"rate_per_guest"`

	BillAmount float64 `json:"bill_amount"`
	Advance    float64 `json:"advance"`
	Due        float64 `json:"due"`
	CashIn     float64 `json:"cash_in"`
	CashOut    float64 `json:"cash_out"`

	Status        string `json:"status"`
	ModeOfPayment string `json:"mode_of_payment"`
	ToAccount     string `json:"to_account"`
	Scheme        string `json:"scheme"`

	BillDate string `json:"bill_date"`
	Address  string `json:"address"`
	IDNumber string `json:"id_number"`
	Contact  string `json:"contact"`
}

// NewBillRecord returns a fresh record with seed rates for the given form type.
func NewBillRecord(formType, billDate string) *BillRecord {
	return &BillRecord{
		FormType:      formType,
		BillDate:      billDate,
		Status:        StatusPending,
		DoubleBedRate: DefaultDoubleBedRate,
		TripleBedRate: DefaultTripleBedRate,
		FourBedRate:   DefaultFourBedRate,
		ExtraBedRate:  DefaultExtraBedRate,
		KitchenRate:   DefaultKitchenRate,
		RatePerGuest:  DefaultGuestRate,
	}
}

// Clone returns a copy of the record. Session updates replace records by
// index with a clone so a previewed record is never mutated in place.
func (b *BillRecord) Clone() *BillRecord {
	c := *b
	return &c
}

// ValidFormType reports whether t is one of the four bill templates.
func ValidFormType(t string) bool {
	switch t {
	case FormTypeCustomer, FormTypeRestaurant, FormTypeHotel, FormTypeTravel:
		return true
	}
	return false
}
