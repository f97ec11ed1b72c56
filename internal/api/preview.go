package api

import (
	"net/http"

	"github.com/merchkit/combobuilder/internal/preview"
)

// handlePreview renders the current design for one device mode. The device
// comes from the ?device query parameter, defaulting to desktop.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("device")
	if raw == "" {
		raw = string(preview.DeviceDesktop)
	}

	device, err := preview.ParseDevice(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tree, err := preview.Render(s.store.Snapshot(), device)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render preview")
		return
	}

	writeJSON(w, http.StatusOK, tree)
}
