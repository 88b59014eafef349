package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"frontdesk-backend/internal/billing"
	"frontdesk-backend/internal/models"
)

func testExporter() *Exporter {
	return NewExporter(HotelInfo{
		Name:    "Hotel Om Shiv Shankar",
		Address: "Mall Road, Near Bus Stand",
		Phone:   "+91 98765 43210",
		Policy:  "Check-out time is 10:00 AM.",
	})
}

func testBill() *models.BillRecord {
	r := models.NewBillRecord(models.FormTypeCustomer, "2024-01-01")
	r.GuestName = "Ramesh Kumar"
	r.CheckIn = "2024-01-01"
	r.CheckOut = "2024-01-04"
	r.Days = 3
	r.Pax = 4
	r.RoomNumber = "101"
	r.DoubleBedRoom = 2
	r.DoubleBedRate = 2000
	r.Advance = 5000
	billing.Recalculate(r)
	return r
}

// pdfPages counts page objects in the raw PDF. Every page carries a
// "/Type /Page" entry plus one for the "/Type /Pages" root.
func pdfPages(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - 1
}

func TestPDF(t *testing.T) {
	a, err := testExporter().PDF(testBill())
	require.NoError(t, err)

	assert.Equal(t, "Hotel_Om_Shiv_Shankar_Bill_Ramesh_Kumar.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF")))
	assert.Equal(t, 1, pdfPages(a.Data))
}

func TestPDFRejectsUnknownFormType(t *testing.T) {
	r := testBill()
	r.FormType = "banquet"
	_, err := testExporter().PDF(r)
	assert.Error(t, err)
}

func TestBatchPDFSkipsBadBills(t *testing.T) {
	good1 := testBill()
	bad := testBill()
	bad.FormType = "banquet"
	good2 := testBill()
	good2.GuestName = "Suresh Patel"

	a, err := testExporter().BatchPDF([]*models.BillRecord{good1, bad, nil, good2})
	require.NoError(t, err)

	assert.Equal(t, "All_Bills.pdf", a.Filename)
	assert.Equal(t, 2, pdfPages(a.Data), "bad and missing bills are skipped, not fatal")
}

func TestBatchPDFAllBadFails(t *testing.T) {
	bad := testBill()
	bad.FormType = "banquet"
	_, err := testExporter().BatchPDF([]*models.BillRecord{bad, nil})
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	r := testBill()
	a, err := testExporter().JSON(r)
	require.NoError(t, err)
	assert.Equal(t, "application/json", a.ContentType)
	assert.Equal(t, "Hotel_Om_Shiv_Shankar_Bill_Ramesh_Kumar.json", a.Filename)

	var decoded models.BillRecord
	require.NoError(t, json.Unmarshal(a.Data, &decoded))
	assert.Equal(t, *r, decoded)
}

func TestExcel(t *testing.T) {
	a, err := testExporter().Excel(testBill())
	require.NoError(t, err)
	assert.Equal(t, "Hotel_Om_Shiv_Shankar_Bill_Ramesh_Kumar.xlsx", a.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(a.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bill"}, f.GetSheetList())

	header, err := f.GetCellValue("Bill", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Guest Name", header)

	guest, err := f.GetCellValue("Bill", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Kumar", guest)

	date, err := f.GetCellValue("Bill", "C2")
	require.NoError(t, err)
	assert.Equal(t, "01-01-2024", date)
}

func TestText(t *testing.T) {
	text := testExporter().Text(testBill())

	assert.Contains(t, text, "Hotel Om Shiv Shankar")
	assert.Contains(t, text, "Customer Bill - 01-01-2024")
	assert.Contains(t, text, "Guest   : Ramesh Kumar")
	assert.Contains(t, text, "Room    : 101")
	assert.Contains(t, text, "Stay    : 01-01-2024 to 04-01-2024 (3 days, 4 PAX)")
	assert.Contains(t, text, "Double Bed Room")
	assert.Contains(t, text, "Bill Amount : Rs. 12000")
	assert.Contains(t, text, "Advance     : Rs. 5000")
	assert.Contains(t, text, "Due         : Rs. 7000")
	assert.Contains(t, text, "Check-out time is 10:00 AM.")
}

func TestTextRestaurantUsesTableLabel(t *testing.T) {
	r := models.NewBillRecord(models.FormTypeRestaurant, "2024-01-01")
	r.GuestName = "Walk In"
	r.RoomNumber = "T4"
	r.Days = 1
	r.Pax = 6
	billing.Recalculate(r)

	text := testExporter().Text(r)
	assert.Contains(t, text, "Restaurant Bill")
	assert.Contains(t, text, "Table   : T4")
	assert.Contains(t, text, "Restaurant (per guest)")
	assert.NotContains(t, strings.SplitN(text, "Stay", 2)[0], "Room    :")
}

func TestFilenameSanitizesGuestName(t *testing.T) {
	e := testExporter()
	r := testBill()
	r.GuestName = `A/B \ C: "D"`
	a, err := e.JSON(r)
	require.NoError(t, err)
	assert.Equal(t, "Hotel_Om_Shiv_Shankar_Bill_A-B_-_C-_D.json", a.Filename)

	r.GuestName = ""
	a, err = e.JSON(r)
	require.NoError(t, err)
	assert.Equal(t, "Hotel_Om_Shiv_Shankar_Bill_Guest.json", a.Filename)
}

func TestClipboardReturnsTextEvenOnFailure(t *testing.T) {
	// Headless machines have no clipboard; the rendered text must still
	// come back so the caller can show it.
	e := testExporter()
	r := testBill()
	text, _ := e.Clipboard(r)
	assert.Equal(t, e.Text(r), text)
}

type failingUploader struct{ calls int }

func (u *failingUploader) Upload(filename, contentType string, data []byte) error {
	u.calls++
	return errors.New("bucket unavailable")
}

func TestArchiveFailureDoesNotFailExport(t *testing.T) {
	e := testExporter()
	up := &failingUploader{}
	e.Archiver = up

	a, err := e.PDF(testBill())
	require.NoError(t, err)
	assert.NotEmpty(t, a.Data)
	assert.Equal(t, 1, up.calls)
}
