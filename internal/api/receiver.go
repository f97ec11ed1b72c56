package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/merchkit/combobuilder/internal/logging"
)

// handleReceiver appends the posted JSON payload, stamped with the server
// time, to an append-only log file. Each entry is one JSON line.
func (s *Server) handleReceiver(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	entry, err := json.Marshal(payload)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}

	if err := appendLine(s.receiverLogPath, entry); err != nil {
		log.Error().Err(err).Str("path", s.receiverLogPath).Msg("receiver log write failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func appendLine(path string, entry []byte) error {
	const (
		dirPerm  = 0o750
		filePerm = 0o600
	)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Write(append(entry, '\n'))
	return err
}
