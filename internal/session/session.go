package session

import (
	"fmt"
	"sync"

	"frontdesk-backend/internal/billing"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/timeutil"
)

// FieldChanges is a partial update to the current bill. Nil fields are
// untouched. Amount and due are never accepted here; they are recomputed
// after every change.
type FieldChanges struct {
	GuestName *string `json:"guest_name,omitempty"`

	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Days     *int    `json:"days,omitempty"`
	Pax      *int    `json:"pax,omitempty"`

	RoomNumber *string `json:"room_number,omitempty"`

	DoubleBedRoom *int     `json:"double_bed_room,omitempty"`
	DoubleBedRate *float64 `json:"double_bed_rate,omitempty"`
	TripleBedRoom *int     `json:"triple_bed_room,omitempty"`
	TripleBedRate *float64 `json:"triple_bed_rate,omitempty"`
	FourBedRoom   *int     `json:"four_bed_room,omitempty"`
	FourBedRate   *float64 `json:"four_bed_rate,omitempty"`
	ExtraBed      *int     `json:"extra_bed,omitempty"`
	ExtraBedRate  *float64 `json:"extra_bed_rate,omitempty"`
	Kitchen       *int     `json:"kitchen,omitempty"`
	KitchenRate   *float64 `json:"kitchen_rate,omitempty"`

	RatePerGuest *float64 `json:"rate_per_guest,omitempty"`

	Advance *float64 `json:"advance,omitempty"`
	CashIn  *float64 `json:"cash_in,omitempty"`
	CashOut *float64 `json:"cash_out,omitempty"`

	Status        *string `json:"status,omitempty"`
	ModeOfPayment *string `json:"mode_of_payment,omitempty"`
	ToAccount     *string `json:"to_account,omitempty"`
	Scheme        *string `json:"scheme,omitempty"`

	BillDate *string `json:"bill_date,omitempty"`
	Address  *string `json:"address,omitempty"`
	IDNumber *string `json:"id_number,omitempty"`
	Contact  *string `json:"contact,omitempty"`
}

// Store owns the working list of bills for the front-desk session: the
// record list, the index being edited, the active form type tab and the
// preview flag. The app is single-user; the mutex only protects against
// overlapping HTTP requests from the same desk.
type Store struct {
	mu       sync.Mutex
	bills    []*models.BillRecord
	current  int
	formType string
	preview  bool
}

// State is a read snapshot of the session.
type State struct {
	Bills    []*models.BillRecord `json:"bills"`
	Current  int                  `json:"current"`
	FormType string               `json:"form_type"`
	Preview  bool                 `json:"preview"`
}

// NewStore starts a session with one default customer bill.
func NewStore() *Store {
	s := &Store{formType: models.FormTypeCustomer, current: -1}
	s.NewBill()
	return s
}

// Seed replaces the session with a single record arriving from an external
// booking flow. The record's computed fields are recalculated on entry.
func (s *Store) Seed(r *models.BillRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := r.Clone()
	if rec.FormType == "" {
		rec.FormType = models.FormTypeCustomer
	}
	if rec.BillDate == "" {
		rec.BillDate = timeutil.Today()
	}
	billing.Recalculate(rec)

	s.bills = []*models.BillRecord{rec}
	s.current = 0
	s.formType = rec.FormType
	s.preview = false
}

// NewBill appends a fresh default record carrying today's date and the
// active form type, and selects it.
func (s *Store) NewBill() *models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.NewBillRecord(s.formType, timeutil.Today())
	billing.Recalculate(rec)
	s.bills = append(s.bills, rec)
	s.current = len(s.bills) - 1
	s.preview = false
	return rec.Clone()
}

// Select switches to the bill at index. The active form type follows the
// selected bill's own form type so the right form component is restored.
func (s *Store) Select(index int) (*models.BillRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.bills) {
		return nil, fmt.Errorf("bill index %d out of range (have %d bills)", index, len(s.bills))
	}
	s.current = index
	s.formType = s.bills[index].FormType
	s.preview = false
	return s.bills[index].Clone(), nil
}

// SetFormType switches the active tab. The current record moves to the new
// form type and is recomputed under its rules.
func (s *Store) SetFormType(formType string) (*models.BillRecord, error) {
	if !models.ValidFormType(formType) {
		return nil, fmt.Errorf("unknown form type: %s", formType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.formType = formType
	rec := s.bills[s.current].Clone()
	rec.FormType = formType
	billing.Recalculate(rec)
	s.bills[s.current] = rec
	return rec.Clone(), nil
}

// ApplyChange updates the current record with the given field changes,
// re-derives days when a stay date changed, recomputes amount and due, and
// replaces the record in the list. Everything happens under one lock so a
// preview read can never observe a half-applied change.
func (s *Store) ApplyChange(ch *FieldChanges) *models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.bills[s.current].Clone()
	dateChanged := applyFields(rec, ch)
	if dateChanged {
		rec.Days = billing.DeriveDays(rec.CheckIn, rec.CheckOut, rec.Days)
	}
	billing.Recalculate(rec)
	s.bills[s.current] = rec
	return rec.Clone()
}

// Generate freezes the current record for preview. The recompute here is
// defensive: the preview must never show numbers from a stale intermediate
// state, even if a change event was lost.
func (s *Store) Generate() *models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.bills[s.current].Clone()
	billing.Recalculate(rec)
	s.bills[s.current] = rec
	s.preview = true
	return rec.Clone()
}

// ClosePreview returns to edit mode.
func (s *Store) ClosePreview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = false
}

// Current returns a copy of the record being edited.
func (s *Store) Current() *models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bills[s.current].Clone()
}

// Bills returns copies of every record in list order.
func (s *Store) Bills() []*models.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.BillRecord, len(s.bills))
	for i, b := range s.bills {
		out[i] = b.Clone()
	}
	return out
}

// Snapshot returns the full session state.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills := make([]*models.BillRecord, len(s.bills))
	for i, b := range s.bills {
		bills[i] = b.Clone()
	}
	return &State{
		Bills:    bills,
		Current:  s.current,
		FormType: s.formType,
		Preview:  s.preview,
	}
}

// applyFields copies non-nil changes onto rec and reports whether a stay
// date changed.
func applyFields(rec *models.BillRecord, ch *FieldChanges) bool {
	dateChanged := false

	if ch.GuestName != nil {
		rec.GuestName = *ch.GuestName
	}
	if ch.CheckIn != nil {
		rec.CheckIn = *ch.CheckIn
		dateChanged = true
	}
	if ch.CheckOut != nil {
		rec.CheckOut = *ch.CheckOut
		dateChanged = true
	}
	if ch.Days != nil {
		rec.Days = *ch.Days
	}
	if ch.Pax != nil {
		rec.Pax = *ch.Pax
	}
	if ch.RoomNumber != nil {
		rec.RoomNumber = *ch.RoomNumber
	}
	if ch.DoubleBedRoom != nil {
		rec.DoubleBedRoom = *ch.DoubleBedRoom
	}
	if ch.DoubleBedRate != nil {
		rec.DoubleBedRate = *ch.DoubleBedRate
	}
	if ch.TripleBedRoom != nil {
		rec.TripleBedRoom = *ch.TripleBedRoom
	}
	if ch.TripleBedRate != nil {
		rec.TripleBedRate = *ch.TripleBedRate
	}
	if ch.FourBedRoom != nil {
		rec.FourBedRoom = *ch.FourBedRoom
	}
	if ch.FourBedRate != nil {
		rec.FourBedRate = *ch.FourBedRate
	}
	if ch.ExtraBed != nil {
		rec.ExtraBed = *ch.ExtraBed
	}
	if ch.ExtraBedRate != nil {
		rec.ExtraBedRate = *ch.ExtraBedRate
	}
	if ch.Kitchen != nil {
		rec.Kitchen = *ch.Kitchen
	}
	if ch.KitchenRate != nil {
		rec.KitchenRate = *ch.KitchenRate
	}
	if ch.RatePerGuest != nil {
		rec.RatePerGuest = *ch.RatePerGuest
	}
	if ch.Advance != nil {
		rec.Advance = *ch.Advance
	}
	if ch.CashIn != nil {
		rec.CashIn = *ch.CashIn
	}
	if ch.CashOut != nil {
		rec.CashOut = *ch.CashOut
	}
	if ch.Status != nil {
		rec.Status = *ch.Status
	}
	if ch.ModeOfPayment != nil {
		rec.ModeOfPayment = *ch.ModeOfPayment
	}
	if ch.ToAccount != nil {
		rec.ToAccount = *ch.ToAccount
	}
	if ch.Scheme != nil {
		rec.Scheme = *ch.Scheme
	}
	if ch.BillDate != nil {
		rec.BillDate = *ch.BillDate
	}
	if ch.Address != nil {
		rec.Address = *ch.Address
	}
	if ch.IDNumber != nil {
		rec.IDNumber = *ch.IDNumber
	}
	if ch.Contact != nil {
		rec.Contact = *ch.Contact
	}

	return dateChanged
}
