package http

import (
	"frontdesk-backend/internal/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	billHandler *handlers.BillHandler,
	exportHandler *handlers.ExportHandler,
	bookingHandler *handlers.BookingHandler,
	prefsHandler *handlers.PrefsHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler.GetHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Billing session
	billsAPI := r.PathPrefix("/api/bills/session").Subrouter()
	billsAPI.HandleFunc("", billHandler.GetSession).Methods("GET")
	billsAPI.HandleFunc("/new", billHandler.NewBill).Methods("POST")
	billsAPI.HandleFunc("/seed", billHandler.SeedBill).Methods("POST")
	billsAPI.HandleFunc("/current", billHandler.UpdateCurrent).Methods("PATCH")
	billsAPI.HandleFunc("/select/{index}", billHandler.SelectBill).Methods("POST")
	billsAPI.HandleFunc("/form-type", billHandler.SetFormType).Methods("PUT")
	billsAPI.HandleFunc("/generate", billHandler.Generate).Methods("POST")
	billsAPI.HandleFunc("/close-preview", billHandler.ClosePreview).Methods("POST")

	// Form schemas for the generic renderer
	r.HandleFunc("/api/forms/{formType}/schema", billHandler.GetSchema).Methods("GET")

	// Exports
	exportsAPI := r.PathPrefix("/api/exports").Subrouter()
	exportsAPI.HandleFunc("/pdf", exportHandler.GetPDF).Methods("GET")
	exportsAPI.HandleFunc("/batch-pdf", exportHandler.GetBatchPDF).Methods("GET")
	exportsAPI.HandleFunc("/excel", exportHandler.GetExcel).Methods("GET")
	exportsAPI.HandleFunc("/json", exportHandler.GetJSON).Methods("GET")
	exportsAPI.HandleFunc("/clipboard", exportHandler.CopyText).Methods("POST")

	// Bookings, enquiries and calendar (sheet-backed reads)
	r.HandleFunc("/api/bookings", bookingHandler.GetDetails).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.SubmitBooking).Methods("POST")
	r.HandleFunc("/api/bookings/summary", bookingHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/bookings/filtered", bookingHandler.GetFilterDetails).Methods("GET")
	r.HandleFunc("/api/bookings/hoss", bookingHandler.GetHOSSBookings).Methods("GET")
	r.HandleFunc("/api/enquiries", bookingHandler.GetEnquiries).Methods("GET")
	r.HandleFunc("/api/calendar", bookingHandler.GetCalendar).Methods("GET")
	r.HandleFunc("/api/refresh", bookingHandler.RefreshData).Methods("POST")

	// Preferences
	r.HandleFunc("/api/prefs", prefsHandler.GetPrefs).Methods("GET")
	r.HandleFunc("/api/prefs", prefsHandler.UpdatePrefs).Methods("PUT")

	return r
}
