package diagnostics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, defaultLimit int) {
	r.Get("/conflicts", listConflictsHandler(svc, defaultLimit))
}

// conflictResponse es un conflicto registrado en el journal.
type conflictResponse struct {
	ID               string    `json:"id"`
	PetID            int       `json:"pet_id"`
	PetName          string    `json:"pet_name"`
	TaskID           int       `json:"task_id"`
	TaskDescription  string    `json:"task_description"`
	OtherTaskID      int       `json:"other_task_id"`
	OtherDescription string    `json:"other_description"`
	Message          string    `json:"message"`
	DetectedAt       time.Time `json:"detected_at"`
}

// listConflictsHandler godoc
// @Summary Listar conflictos detectados
// @Description Devuelve los diagnósticos de conflicto registrados (más recientes primero). Un conflicto no es un error: la agenda se sigue generando y las entradas quedan marcadas.
// @Tags conflicts
// @Produce json
// @Param pet query string false "Filtrar por nombre de mascota"
// @Param limit query int false "Máximo a devolver (1-200)"
// @Success 200 {array} conflictResponse
// @Failure 500 {string} string "internal error"
// @Router /conflicts [get]
func listConflictsHandler(svc *Service, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
				limit = n
			}
		}

		items, err := svc.List(r.Context(), ListFilter{
			PetName: strings.TrimSpace(r.URL.Query().Get("pet")),
			Limit:   limit,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]conflictResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toConflictResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toConflictResponse(rec Record) conflictResponse {
	return conflictResponse{
		ID:               rec.ID,
		PetID:            rec.PetID,
		PetName:          rec.PetName,
		TaskID:           rec.TaskID,
		TaskDescription:  rec.TaskDescription,
		OtherTaskID:      rec.OtherTaskID,
		OtherDescription: rec.OtherDescription,
		Message:          rec.Message,
		DetectedAt:       rec.DetectedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (planner/diagnostics) para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
