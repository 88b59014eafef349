package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/internal/models"
)

func roomBill() *models.BillRecord {
	r := models.NewBillRecord(models.FormTypeCustomer, "2024-01-01")
	r.GuestName = "Ramesh Kumar"
	r.DoubleBedRoom = 2
	r.DoubleBedRate = 2000
	r.Days = 3
	return r
}

func TestAmountRoomForms(t *testing.T) {
	r := roomBill()
	assert.Equal(t, 12000.0, Amount(r))

	// Same arithmetic for every room-based form type
	r.FormType = models.FormTypeHotel
	assert.Equal(t, 12000.0, Amount(r))
	r.FormType = models.FormTypeTravel
	assert.Equal(t, 12000.0, Amount(r))
}

func TestAmountMixedCategories(t *testing.T) {
	r := roomBill()
	r.TripleBedRoom = 1
	r.TripleBedRate = 2500
	r.ExtraBed = 2
	r.ExtraBedRate = 500
	r.Kitchen = 1
	r.KitchenRate = 1000

	// (2x2000 + 1x2500 + 2x500 + 1x1000) x 3 days
	assert.Equal(t, 25500.0, Amount(r))
}

func TestAmountRestaurant(t *testing.T) {
	r := models.NewBillRecord(models.FormTypeRestaurant, "2024-01-01")
	r.Days = 2
	r.Pax = 10
	r.RatePerGuest = 500
	assert.Equal(t, 10000.0, Amount(r))
}

func TestAmountRestaurantDefaultRate(t *testing.T) {
	r := models.NewBillRecord(models.FormTypeRestaurant, "2024-01-01")
	r.Days = 1
	r.Pax = 4
	r.RatePerGuest = 0
	assert.Equal(t, 2000.0, Amount(r), "unset rate falls back to 500 per guest")
}

func TestAmountUnknownFormType(t *testing.T) {
	r := roomBill()
	r.FormType = "banquet"
	assert.Zero(t, Amount(r))
}

func TestDue(t *testing.T) {
	r := roomBill()
	r.Advance = 5000
	assert.Equal(t, 7000.0, Due(r))
}

func TestDueOverpaymentGoesNegative(t *testing.T) {
	r := roomBill()
	r.Advance = 15000
	assert.Equal(t, -3000.0, Due(r), "overpayment is shown, not clamped to zero")
}

func TestDeriveDays(t *testing.T) {
	assert.Equal(t, 3, DeriveDays("2024-01-01", "2024-01-04", 1))
	assert.Equal(t, 1, DeriveDays("2024-01-01", "2024-01-02", 7))
}

func TestDeriveDaysKeepsPrevious(t *testing.T) {
	// Same-day and reversed stays keep what the operator typed
	assert.Equal(t, 2, DeriveDays("2024-01-05", "2024-01-05", 2))
	assert.Equal(t, 2, DeriveDays("2024-01-05", "2024-01-03", 2))

	// Unparseable dates also keep the previous value
	assert.Equal(t, 4, DeriveDays("", "2024-01-04", 4))
	assert.Equal(t, 4, DeriveDays("2024-01-01", "not-a-date", 4))
}

func TestLinesExcludesEmptyCategories(t *testing.T) {
	r := roomBill()
	r.Kitchen = 1
	r.KitchenRate = 1000
	r.ExtraBed = 0
	r.FourBedRoom = -1

	lines := Lines(r)
	require.Len(t, lines, 2)
	assert.Equal(t, "Double Bed Room", lines[0].Label)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, 12000.0, lines[0].Amount)
	assert.Equal(t, "Kitchen", lines[1].Label)
	assert.Equal(t, 3000.0, lines[1].Amount)
}

func TestLinesRestaurant(t *testing.T) {
	r := models.NewBillRecord(models.FormTypeRestaurant, "2024-01-01")
	r.Days = 2
	r.Pax = 10
	r.RatePerGuest = 500

	lines := Lines(r)
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Qty)
	assert.Equal(t, 10000.0, lines[0].Amount)

	r.Pax = 0
	assert.Nil(t, Lines(r))
}

func TestRecalculate(t *testing.T) {
	r := roomBill()
	r.Advance = 5000
	Recalculate(r)
	assert.Equal(t, 12000.0, r.BillAmount)
	assert.Equal(t, 7000.0, r.Due)

	// Recalculating again changes nothing
	Recalculate(r)
	assert.Equal(t, 12000.0, r.BillAmount)
	assert.Equal(t, 7000.0, r.Due)
}

func TestRoundINR(t *testing.T) {
	assert.Equal(t, int64(1250), RoundINR(1249.5))
	assert.Equal(t, int64(1249), RoundINR(1249.4))
	assert.Equal(t, int64(-3000), RoundINR(-3000.0))
}
