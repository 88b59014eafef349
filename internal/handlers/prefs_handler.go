package handlers

import (
	"encoding/json"
	"net/http"

	"frontdesk-backend/internal/prefs"
	"frontdesk-backend/pkg/utils"
)

// PrefsHandler reads and writes app-level preferences through the injected
// storage adapter.
type PrefsHandler struct {
	Store prefs.Store
}

func NewPrefsHandler(store prefs.Store) *PrefsHandler {
	return &PrefsHandler{Store: store}
}

// GetPrefs handles GET /api/prefs
func (h *PrefsHandler) GetPrefs(w http.ResponseWriter, r *http.Request) {
	theme, ok := h.Store.Get(r.Context(), prefs.KeyTheme)
	if !ok {
		theme = "light"
	}
	name, _ := h.Store.Get(r.Context(), prefs.KeyDisplayName)

	utils.JSON(w, http.StatusOK, map[string]string{
		"theme":        theme,
		"display_name": name,
	})
}

// UpdatePrefs handles PUT /api/prefs
func (h *PrefsHandler) UpdatePrefs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme       *string `json:"theme,omitempty"`
		DisplayName *string `json:"display_name,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Theme != nil {
		if *req.Theme != "light" && *req.Theme != "dark" {
			utils.Error(w, http.StatusBadRequest, "theme must be light or dark")
			return
		}
		if err := h.Store.Set(r.Context(), prefs.KeyTheme, *req.Theme); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to save theme")
			return
		}
	}
	if req.DisplayName != nil {
		if err := h.Store.Set(r.Context(), prefs.KeyDisplayName, *req.DisplayName); err != nil {
			utils.Error(w, http.StatusInternalServerError, "Failed to save display name")
			return
		}
	}

	h.GetPrefs(w, r)
}
