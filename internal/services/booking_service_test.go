package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/sheets"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *BookingService {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBookingService(sheets.NewClient(srv.URL, 5*time.Second))
}

func validRequest() *models.BookingRequest {
	return &models.BookingRequest{
		GuestName: "Ramesh Kumar",
		Contact:   "9876543210",
		CheckIn:   "2024-06-01",
		CheckOut:  "2024-06-03",
		Rooms:     2,
		Pax:       4,
	}
}

func TestGetSummary(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sheets.ActionGetSummary, r.URL.Query().Get("action"))
		w.Write([]byte(`{"data": {"total_bookings": 12, "occupied_rooms": 5}}`))
	})

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalBookings)
	assert.Equal(t, 5, summary.OccupiedRooms)
}

func TestGetDetails(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"guest_name": "Ramesh Kumar", "rooms": 2}]}`))
	})

	bookings, err := svc.GetDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Ramesh Kumar", bookings[0].GuestName)
	assert.Equal(t, 2, bookings[0].Rooms)
}

func TestGetCalendar(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"date": "2024-06-01", "booked": 8, "available": 2}]}`))
	})

	days, err := svc.GetCalendar(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 8, days[0].Booked)
}

func TestSubmitBooking(t *testing.T) {
	var body map[string]interface{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"data": {"ok": true}}`))
	})

	require.NoError(t, svc.SubmitBooking(context.Background(), validRequest()))
	assert.Equal(t, sheets.ActionSubmitBooking, body["action"])
	assert.Equal(t, "Ramesh Kumar", body["guest_name"])
	assert.Equal(t, float64(2), body["rooms"])
}

func TestSubmitBookingValidation(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid requests must not reach the sheet API")
	})

	cases := map[string]func(*models.BookingRequest){
		"missing guest":     func(r *models.BookingRequest) { r.GuestName = "" },
		"missing check-in":  func(r *models.BookingRequest) { r.CheckIn = "" },
		"missing check-out": func(r *models.BookingRequest) { r.CheckOut = "" },
		"bad check-in":      func(r *models.BookingRequest) { r.CheckIn = "01/06/2024" },
		"bad check-out":     func(r *models.BookingRequest) { r.CheckOut = "someday" },
		"zero rooms":        func(r *models.BookingRequest) { r.Rooms = 0 },
	}
	for name, mutate := range cases {
		req := validRequest()
		mutate(req)
		assert.Error(t, svc.SubmitBooking(context.Background(), req), name)
	}
}

func TestRefreshData(t *testing.T) {
	var body map[string]interface{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"data": null}`))
	})

	require.NoError(t, svc.RefreshData(context.Background()))
	assert.Equal(t, sheets.ActionRefreshData, body["action"])
}
