package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"frontdesk-backend/internal/forms"
	"frontdesk-backend/internal/models"
	"frontdesk-backend/internal/session"
	"frontdesk-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// BillHandler exposes the front-desk billing session: the working list of
// bills, the record being edited and the preview state.
type BillHandler struct {
	Store *session.Store
}

func NewBillHandler(store *session.Store) *BillHandler {
	return &BillHandler{Store: store}
}

// GetSession handles GET /api/bills/session
func (h *BillHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Store.Snapshot())
}

// NewBill handles POST /api/bills/session/new
func (h *BillHandler) NewBill(w http.ResponseWriter, r *http.Request) {
	rec := h.Store.NewBill()
	utils.JSON(w, http.StatusCreated, rec)
}

// SeedBill handles POST /api/bills/session/seed. A bill arriving from an
// external booking flow replaces the session.
func (h *BillHandler) SeedBill(w http.ResponseWriter, r *http.Request) {
	var rec models.BillRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.Store.Seed(&rec)
	utils.JSON(w, http.StatusOK, h.Store.Snapshot())
}

// UpdateCurrent handles PATCH /api/bills/session/current. Each call is one
// form change event: the record is updated, days re-derived and amounts
// recomputed in a single step.
func (h *BillHandler) UpdateCurrent(w http.ResponseWriter, r *http.Request) {
	var changes session.FieldChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec := h.Store.ApplyChange(&changes)
	utils.JSON(w, http.StatusOK, rec)
}

// SelectBill handles POST /api/bills/session/select/{index}
func (h *BillHandler) SelectBill(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid bill index")
		return
	}
	rec, err := h.Store.Select(index)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// SetFormType handles PUT /api/bills/session/form-type
func (h *BillHandler) SetFormType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FormType string `json:"form_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec, err := h.Store.SetFormType(req.FormType)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// Generate handles POST /api/bills/session/generate. Validation failures
// come back as field-level messages; a valid record is recomputed and the
// session flips to preview.
func (h *BillHandler) Generate(w http.ResponseWriter, r *http.Request) {
	rec := h.Store.Current()
	if errs := forms.Validate(rec); len(errs) > 0 {
		utils.FieldErrors(w, errs)
		return
	}
	utils.JSON(w, http.StatusOK, h.Store.Generate())
}

// ClosePreview handles POST /api/bills/session/close-preview
func (h *BillHandler) ClosePreview(w http.ResponseWriter, r *http.Request) {
	h.Store.ClosePreview()
	utils.JSON(w, http.StatusOK, h.Store.Snapshot())
}

// GetSchema handles GET /api/forms/{formType}/schema. Returns the
// declarative field list a generic form renderer consumes.
func (h *BillHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	fields, err := forms.Schema(mux.Vars(r)["formType"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, fields)
}
