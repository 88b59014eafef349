package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"frontdesk-backend/internal/cache"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/sheets"
)

// Per-dataset cache TTLs. The calendar changes rarely inside a day; the
// summary is the dashboard and should stay fresh.
const (
	summaryTTL  = 2 * time.Minute
	listingTTL  = 5 * time.Minute
	calendarTTL = 10 * time.Minute
)

// BookingService is the read/write surface over the sheet API: booking
// intake, listings, filters and the availability calendar. Reads go
// through Redis when available.
type BookingService struct {
	Client *sheets.Client
}

func NewBookingService(client *sheets.Client) *BookingService {
	return &BookingService{Client: client}
}

// cachedGet serves a read action from cache, falling back to the sheet API
// and populating the cache on success.
func (s *BookingService) cachedGet(ctx context.Context, action, key string, ttl time.Duration, out interface{}) error {
	if data, ok := cache.GetCached(ctx, key); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		// Corrupt cache entry: drop it and refetch
		cache.InvalidateKeys(ctx, key)
	}

	if err := s.Client.Get(ctx, action, out); err != nil {
		return err
	}

	if data, err := json.Marshal(out); err == nil {
		cache.SetCached(ctx, key, data, ttl)
	}
	return nil
}

// GetSummary returns the dashboard roll-up.
func (s *BookingService) GetSummary(ctx context.Context) (*models.Summary, error) {
	var out models.Summary
	if err := s.cachedGet(ctx, sheets.ActionGetSummary, cache.SummaryKey, summaryTTL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDetails returns the full booking listing.
func (s *BookingService) GetDetails(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.cachedGet(ctx, sheets.ActionGetDetails, cache.DetailsKey, listingTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEnquiries returns the enquiry listing.
func (s *BookingService) GetEnquiries(ctx context.Context) ([]models.Enquiry, error) {
	var out []models.Enquiry
	if err := s.cachedGet(ctx, sheets.ActionGetEnquiries, cache.EnquiriesKey, listingTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFilterDetails returns the filtered listing dataset.
func (s *BookingService) GetFilterDetails(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.cachedGet(ctx, sheets.ActionGetFilterDetails, cache.FiltersKey, listingTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHOSSBookings returns bookings sourced from the HOSS channel.
func (s *BookingService) GetHOSSBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.cachedGet(ctx, sheets.ActionGetHOSSBookings, cache.BookingsKey, listingTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCalendar returns the availability calendar.
func (s *BookingService) GetCalendar(ctx context.Context) ([]models.CalendarDay, error) {
	var out []models.CalendarDay
	if err := s.cachedGet(ctx, sheets.ActionGetCalendar, cache.CalendarKey, calendarTTL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitBooking validates and writes a new booking, then invalidates every
// cached listing.
func (s *BookingService) SubmitBooking(ctx context.Context, req *models.BookingRequest) error {
	if req.GuestName == "" {
		return fmt.Errorf("guest name is required")
	}
	if req.CheckIn == "" || req.CheckOut == "" {
		return fmt.Errorf("check-in and check-out dates are required")
	}
	if _, err := time.Parse("2006-01-02", req.CheckIn); err != nil {
		return fmt.Errorf("invalid check-in date: %w", err)
	}
	if _, err := time.Parse("2006-01-02", req.CheckOut); err != nil {
		return fmt.Errorf("invalid check-out date: %w", err)
	}
	if req.Rooms <= 0 {
		return fmt.Errorf("at least one room is required")
	}

	payload := map[string]interface{}{
		"guest_name": req.GuestName,
		"contact":    req.Contact,
		"check_in":   req.CheckIn,
		"check_out":  req.CheckOut,
		"rooms":      req.Rooms,
		"pax":        req.Pax,
		"room_type":  req.RoomType,
		"advance":    req.Advance,
		"source":     req.Source,
		"remarks":    req.Remarks,
	}
	if err := s.Client.Post(ctx, sheets.ActionSubmitBooking, payload, nil); err != nil {
		return err
	}

	cache.InvalidateSheetCaches(ctx)
	log.Printf("[Booking] Submitted booking for %s (%s to %s)", req.GuestName, req.CheckIn, req.CheckOut)
	return nil
}

// RefreshData asks the sheet backend to rebuild its derived tabs, then
// drops every cached read.
func (s *BookingService) RefreshData(ctx context.Context) error {
	if err := s.Client.Post(ctx, sheets.ActionRefreshData, nil, nil); err != nil {
		return err
	}
	cache.InvalidateSheetCaches(ctx)
	log.Printf("[Booking] Sheet data refresh triggered")
	return nil
}
