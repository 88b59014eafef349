package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/services"
	"frontdesk-backend/internal/sheets"
	"frontdesk-backend/pkg/utils"
)

// BookingHandler serves the listing/calendar surface over the sheet API.
type BookingHandler struct {
	Service *services.BookingService
}

func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

func (h *BookingHandler) ctx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 30*time.Second)
}

// GetSummary handles GET /api/bookings/summary
func (h *BookingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	summary, err := h.Service.GetSummary(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, summary)
}

// GetDetails handles GET /api/bookings
func (h *BookingHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	bookings, err := h.Service.GetDetails(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, bookings)
}

// GetEnquiries handles GET /api/enquiries
func (h *BookingHandler) GetEnquiries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	enquiries, err := h.Service.GetEnquiries(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, enquiries)
}

// GetFilterDetails handles GET /api/bookings/filtered
func (h *BookingHandler) GetFilterDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	bookings, err := h.Service.GetFilterDetails(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, bookings)
}

// GetHOSSBookings handles GET /api/bookings/hoss
func (h *BookingHandler) GetHOSSBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	bookings, err := h.Service.GetHOSSBookings(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, bookings)
}

// GetCalendar handles GET /api/calendar
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	days, err := h.Service.GetCalendar(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, days)
}

// SubmitBooking handles POST /api/bookings
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := h.ctx(r)
	defer cancel()

	if err := h.Service.SubmitBooking(ctx, &req); err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]string{"status": "submitted"})
}

// RefreshData handles POST /api/refresh
func (h *BookingHandler) RefreshData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ctx(r)
	defer cancel()

	if err := h.Service.RefreshData(ctx); err != nil {
		utils.Error(w, http.StatusBadGateway, sheets.Friendly(err))
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
