// internal/ingest/handler.go
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/imports/notify", h.Notify).Methods("POST")
	router.HandleFunc("/api/imports/run", h.Run).Methods("POST")
	router.HandleFunc("/healthz", h.Health).Methods("GET")
}

// bucketNotification is the subset of the S3 event payload the importer
// cares about.
type bucketNotification struct {
	Records []struct {
		S3 struct {
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// Notify handles bucket event notifications and ingests each referenced
// object.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	var notification bucketNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		http.Error(w, "invalid notification payload", http.StatusBadRequest)
		return
	}

	results := make([]*Result, 0, len(notification.Records))
	for _, record := range notification.Records {
		key := record.S3.Object.Key
		if key == "" {
			continue
		}
		result, err := h.service.ProcessObject(r.Context(), key)
		if err != nil {
			if errors.Is(err, ErrBadObjectKey) {
				// Not an import drop; ignore the event.
				continue
			}
			http.Error(w, fmt.Sprintf("ingestion failed: %v", err), http.StatusInternalServerError)
			return
		}
		results = append(results, result)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "results": results})
}

// Run triggers ingestion of everything pending for one restaurant.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("restaurantId")
	if raw == "" {
		http.Error(w, "restaurantId parameter is required", http.StatusBadRequest)
		return
	}
	restaurantID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || restaurantID <= 0 {
		http.Error(w, "restaurantId must be a positive integer", http.StatusBadRequest)
		return
	}

	results, err := h.service.ProcessPending(r.Context(), restaurantID)
	if err != nil {
		http.Error(w, fmt.Sprintf("ingestion failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "results": results})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
