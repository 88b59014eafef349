package export

import (
	"fmt"

	"frontdesk-backend/internal/billing"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/timeutil"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Bill"

// excelColumns maps every BillRecord field to its human-readable header
// label, in export order.
func excelColumns(r *models.BillRecord) []struct {
	Label string
	Value interface{}
} {
	return []struct {
		Label string
		Value interface{}
	}{
		{"Guest Name", r.GuestName},
		{"Form Type", r.FormType},
		{"Bill Date", timeutil.DisplayDate(r.BillDate)},
		{"Check-In", timeutil.DisplayDate(r.CheckIn)},
		{"Check-Out", timeutil.DisplayDate(r.CheckOut)},
		{"Days", r.Days},
		{"PAX", r.Pax},
		{"Room Number", r.RoomNumber},
		{"Double Bed Rooms", r.DoubleBedRoom},
		{"Double Bed Rate", r.DoubleBedRate},
		{"Triple Bed Rooms", r.TripleBedRoom},
		{"Triple Bed Rate", r.TripleBedRate},
		{"Four Bed Rooms", r.FourBedRoom},
		{"Four Bed Rate", r.FourBedRate},
		{"Extra Beds", r.ExtraBed},
		{"Extra Bed Rate", r.ExtraBedRate},
		{"Kitchen", r.Kitchen},
		{"Kitchen Rate", r.KitchenRate},
		{"Rate Per Guest", r.RatePerGuest},
		{"Bill Amount", billing.RoundINR(r.BillAmount)},
		{"Advance Paid", billing.RoundINR(r.Advance)},
		{"Due", billing.RoundINR(r.Due)},
		{"Cash In", billing.RoundINR(r.CashIn)},
		{"Cash Out", billing.RoundINR(r.CashOut)},
		{"Payment Status", r.Status},
		{"Mode of Payment", r.ModeOfPayment},
		{"To Account", r.ToAccount},
		{"Scheme", r.Scheme},
		{"Address", r.Address},
		{"ID Number", r.IDNumber},
		{"Contact", r.Contact},
	}
}

// Excel serializes the record into a single-sheet workbook: header row of
// field labels, one data row.
func (e *Exporter) Excel(r *models.BillRecord) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, col := range excelColumns(r) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(excelSheet, cell, col.Label); err != nil {
			return nil, fmt.Errorf("failed to write header %q: %w", col.Label, err)
		}
		cell, err = excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to address value cell: %w", err)
		}
		if err := f.SetCellValue(excelSheet, cell, col.Value); err != nil {
			return nil, fmt.Errorf("failed to write value for %q: %w", col.Label, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	a := &Artifact{
		Filename:    e.billFilename(r, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}
	e.archive(a)
	return a, nil
}
