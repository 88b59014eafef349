package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"frontdesk-backend/internal/models"

	"github.com/atotto/clipboard"
)

// HotelInfo is the fixed identity printed on every artifact.
type HotelInfo struct {
	Name    string
	Address string
	Phone   string
	Policy  string
}

// Artifact is a generated downloadable file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Uploader archives generated artifacts. Optional; a nil uploader disables
// archiving.
type Uploader interface {
	Upload(filename, contentType string, data []byte) error
}

// Exporter produces bill artifacts in the four supported formats. The
// formats are independent: a failure in one never affects the others.
type Exporter struct {
	Hotel    HotelInfo
	Archiver Uploader
}

// NewExporter creates an exporter for the given hotel identity.
func NewExporter(hotel HotelInfo) *Exporter {
	return &Exporter{Hotel: hotel}
}

// JSON serializes the full record as pretty-printed JSON.
func (e *Exporter) JSON(r *models.BillRecord) (*Artifact, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bill: %w", err)
	}
	return &Artifact{
		Filename:    e.billFilename(r, "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// Clipboard renders the text template and writes it to the OS clipboard.
// The rendered text is returned either way so callers can still show it
// when the clipboard is unavailable.
func (e *Exporter) Clipboard(r *models.BillRecord) (string, error) {
	text := e.Text(r)
	if err := clipboard.WriteAll(text); err != nil {
		return text, fmt.Errorf("clipboard write failed: %w", err)
	}
	return text, nil
}

// billFilename builds <hotel>_Bill_<guest>.<ext> with filesystem-unsafe
// characters squashed.
func (e *Exporter) billFilename(r *models.BillRecord, ext string) string {
	guest := r.GuestName
	if guest == "" {
		guest = "Guest"
	}
	return fmt.Sprintf("%s_Bill_%s.%s", sanitize(e.Hotel.Name), sanitize(guest), ext)
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "\"", "", "'", "")
	return replacer.Replace(s)
}

// archive uploads the artifact when an archiver is configured. Archive
// failures never fail the export itself.
func (e *Exporter) archive(a *Artifact) {
	if e.Archiver == nil || a == nil {
		return
	}
	if err := e.Archiver.Upload(a.Filename, a.ContentType, a.Data); err != nil {
		logf("archive of %s failed: %v", a.Filename, err)
	}
}
