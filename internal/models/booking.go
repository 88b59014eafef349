package models

// Booking is one row of the bookings sheet. The sheet keeps everything as
// strings except the money columns.
type Booking struct {
	BookingID   string  `json:"booking_id"`
	GuestName   string  `json:"guest_name"`
	Contact     string  `json:"contact"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Rooms       int     `json:"rooms"`
	Pax         int     `json:"pax"`
	RoomType    string  `json:"room_type"`
	Amount      float64 `json:"amount"`
	Advance     float64 `json:"advance"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
	Remarks     string  `json:"remarks"`
	SubmittedAt string  `json:"submitted_at"`
}

// BookingRequest is the intake payload for a new booking.
type BookingRequest struct {
	GuestName string  `json:"guest_name"`
	Contact   string  `json:"contact"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Rooms     int     `json:"rooms"`
	Pax       int     `json:"pax"`
	RoomType  string  `json:"room_type"`
	Advance   float64 `json:"advance"`
	Source    string  `json:"source"`
	Remarks   string  `json:"remarks"`
}

// Enquiry is one row of the enquiries sheet.
type Enquiry struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Date     string `json:"date"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	FollowUp string `json:"follow_up"`
	Handled  bool   `json:"handled"`
}

// Summary is the dashboard roll-up returned by getSummary.
type Summary struct {
	TotalBookings   int     `json:"total_bookings"`
	ActiveBookings  int     `json:"active_bookings"`
	PendingPayments float64 `json:"pending_payments"`
	TodayCheckIns   int     `json:"today_check_ins"`
	TodayCheckOuts  int     `json:"today_check_outs"`
	OccupiedRooms   int     `json:"occupied_rooms"`
}

// CalendarDay is one day of the availability calendar.
type CalendarDay struct {
	Date      string `json:"date"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	CheckIns  int    `json:"check_ins"`
	CheckOuts int    `json:"check_outs"`
}
