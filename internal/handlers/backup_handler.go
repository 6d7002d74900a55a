package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"
)

type BackupHandler struct {
	Service         *services.BackupService
	DefaultInterval time.Duration
}

func NewBackupHandler(s *services.BackupService, defaultInterval time.Duration) *BackupHandler {
	return &BackupHandler{Service: s, DefaultInterval: defaultInterval}
}

// Export streams the whole dataset as a downloadable JSON document.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc := h.Service.Export(r.Context())

	filename := fmt.Sprintf("aquaflow_backup_%s.json", timeutil.Today())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	json.NewEncoder(w).Encode(doc)
}

// Import restores the dataset from an uploaded backup document. The whole
// payload must parse before anything is written.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	result := h.Service.Import(r.Context(), raw)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}

// Upload pushes a fresh backup to R2.
func (h *BackupHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key, err := h.Service.UploadToR2(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"key": key})
}

// List returns the stored R2 backups, newest first.
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	backups, err := h.Service.ListR2Backups(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if backups == nil {
		backups = []services.BackupObject{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(backups)
}

type restoreRequest struct {
	Key string `json:"key"`
}

// Restore downloads a stored backup and imports it. Destructive; the
// frontend confirms before calling.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req restoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		http.Error(w, "backup key is required", http.StatusBadRequest)
		return
	}

	result := h.Service.RestoreFromR2(r.Context(), req.Key)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}

// StartScheduler begins periodic R2 uploads; an hours query overrides the
// configured interval.
func (h *BackupHandler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	interval := h.DefaultInterval
	if hours, err := strconv.Atoi(r.URL.Query().Get("hours")); err == nil && hours > 0 {
		interval = time.Duration(hours) * time.Hour
	}

	h.Service.StartScheduler(interval)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"running": true, "interval": interval.String()})
}

func (h *BackupHandler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	h.Service.StopScheduler()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"running": false})
}

func (h *BackupHandler) SchedulerStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"running": h.Service.SchedulerRunning()})
}
