package handlers

import (
	"fmt"
	"net/http"

	"frontdesk-backend/internal/export"
	"frontdesk-backend/internal/metrics"
	"frontdesk-backend/internal/sheets"
	"frontdesk-backend/internal/session"
	"frontdesk-backend/pkg/utils"
)

// ExportHandler serves bill artifacts in the four formats. Each format is
// independent: a failure is reported for that format alone and the session
// is left untouched so the desk can retry.
type ExportHandler struct {
	Store    *session.Store
	Exporter *export.Exporter
}

func NewExportHandler(store *session.Store, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{Store: store, Exporter: exporter}
}

func (h *ExportHandler) send(w http.ResponseWriter, a *export.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", a.Filename))
	w.Write(a.Data)
}

// GetPDF handles GET /api/exports/pdf. Serves the current bill as a
// bordered A4 page.
func (h *ExportHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	a, err := h.Exporter.PDF(h.Store.Current())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("pdf", "error").Inc()
		utils.Error(w, http.StatusInternalServerError, sheets.Friendly(err))
		return
	}
	metrics.ExportsTotal.WithLabelValues("pdf", "ok").Inc()
	h.send(w, a)
}

// GetBatchPDF handles GET /api/exports/batch-pdf. Serves one combined PDF
// with a page per bill in the working list.
func (h *ExportHandler) GetBatchPDF(w http.ResponseWriter, r *http.Request) {
	a, err := h.Exporter.BatchPDF(h.Store.Bills())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("batch_pdf", "error").Inc()
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ExportsTotal.WithLabelValues("batch_pdf", "ok").Inc()
	h.send(w, a)
}

// GetExcel handles GET /api/exports/excel
func (h *ExportHandler) GetExcel(w http.ResponseWriter, r *http.Request) {
	a, err := h.Exporter.Excel(h.Store.Current())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("excel", "error").Inc()
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ExportsTotal.WithLabelValues("excel", "ok").Inc()
	h.send(w, a)
}

// GetJSON handles GET /api/exports/json. Pretty-printed full record dump.
func (h *ExportHandler) GetJSON(w http.ResponseWriter, r *http.Request) {
	a, err := h.Exporter.JSON(h.Store.Current())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("json", "error").Inc()
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ExportsTotal.WithLabelValues("json", "ok").Inc()
	h.send(w, a)
}

// CopyText handles POST /api/exports/clipboard. The rendered template is
// returned even when the OS clipboard is unavailable, with the failure
// reported alongside so the UI can show both the text and a toast.
func (h *ExportHandler) CopyText(w http.ResponseWriter, r *http.Request) {
	text, err := h.Exporter.Clipboard(h.Store.Current())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("clipboard", "error").Inc()
		utils.JSON(w, http.StatusOK, map[string]string{
			"text":  text,
			"error": "Could not write to the clipboard. Copy the text manually.",
		})
		return
	}
	metrics.ExportsTotal.WithLabelValues("clipboard", "ok").Inc()
	utils.JSON(w, http.StatusOK, map[string]string{"text": text})
}
