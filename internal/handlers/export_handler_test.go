package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/internal/export"
	"frontdesk-backend/internal/session"
)

func exportRouter(t *testing.T) (*mux.Router, *session.Store) {
	t.Helper()
	store := session.NewStore()
	store.ApplyChange(&session.FieldChanges{
		GuestName:     strPtr("Ramesh Kumar"),
		DoubleBedRoom: intPtr(2),
		Days:          intPtr(3),
	})

	exporter := export.NewExporter(export.HotelInfo{
		Name:   "Hotel Om Shiv Shankar",
		Policy: "Check-out time is 10:00 AM.",
	})
	h := NewExportHandler(store, exporter)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/exports").Subrouter()
	api.HandleFunc("/pdf", h.GetPDF).Methods("GET")
	api.HandleFunc("/batch-pdf", h.GetBatchPDF).Methods("GET")
	api.HandleFunc("/excel", h.GetExcel).Methods("GET")
	api.HandleFunc("/json", h.GetJSON).Methods("GET")
	return r, store
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestGetPDFDownload(t *testing.T) {
	router, _ := exportRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/exports/pdf", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "Ramesh_Kumar.pdf")
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
}

func TestGetBatchPDFDownload(t *testing.T) {
	router, store := exportRouter(t)
	store.NewBill()
	store.ApplyChange(&session.FieldChanges{GuestName: strPtr("Suresh Patel"), Days: intPtr(1)})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/exports/batch-pdf", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "All_Bills.pdf")
}

func TestGetExcelDownload(t *testing.T) {
	router, _ := exportRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/exports/excel", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestGetJSONDownload(t *testing.T) {
	router, _ := exportRouter(t)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/exports/json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), `"guest_name": "Ramesh Kumar"`)
}
