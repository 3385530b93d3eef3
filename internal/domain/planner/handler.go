package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/tasks"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owner", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", getOwnerHandler(svc))
		or.Patch("/", updateOwnerHandler(svc))
	})

	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", addPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Delete("/{petName}", removePetHandler(svc))

		pr.Route("/{petName}/tasks", func(tr chi.Router) {
			tr.Get("/", listTasksHandler(svc))
			tr.Post("/", addTaskHandler(svc))
			tr.Post("/{taskID}/complete", completeTaskHandler(svc))
			tr.Delete("/{taskID}", deleteTaskHandler(svc))
		})
	})

	r.Get("/schedule", scheduleHandler(svc))
}

type ownerRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type updateOwnerRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
}

type ownerResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
	PetCount    int    `json:"pet_count"`
}

type petRequest struct {
	Name           string `json:"name"`
	Species        string `json:"species"` // dog | cat | other
	Breed          string `json:"breed"`
	MedicationType string `json:"medication_type"`
}

type petResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Species        string `json:"species"`
	Breed          string `json:"breed"`
	MedicationType string `json:"medication_type"`
	TaskCount      int    `json:"task_count"`
}

type taskRequest struct {
	Kind       string `json:"kind"`       // walk | feed | give_medicine
	Time       string `json:"time"`       // HH:MM (24h), fecha de hoy
	Priority   string `json:"priority"`   // 1-3, low/medium/high o "high (3)"
	Recurrence string `json:"recurrence"` // none | daily | weekly (vacío = none)

	DurationMinutes int    `json:"duration_minutes,omitempty"`
	FoodType        string `json:"food_type,omitempty"`
	PortionSize     string `json:"portion_size,omitempty"`
	MedicationName  string `json:"medication_name,omitempty"`
	Dosage          string `json:"dosage,omitempty"`
}

type taskResponse struct {
	ID          int       `json:"id"`
	Kind        string    `json:"kind"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	Recurrence  string    `json:"recurrence"`

	DurationMinutes int    `json:"duration_minutes,omitempty"`
	FoodType        string `json:"food_type,omitempty"`
	PortionSize     string `json:"portion_size,omitempty"`
	MedicationName  string `json:"medication_name,omitempty"`
	Dosage          string `json:"dosage,omitempty"`

	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

type conflictWarning struct {
	PetName          string `json:"pet_name"`
	TaskID           int    `json:"task_id"`
	OtherTaskID      int    `json:"other_task_id"`
	OtherDescription string `json:"other_description"`
	Message          string `json:"message"`
}

type addTaskResponse struct {
	Task     taskResponse     `json:"task"`
	Conflict *conflictWarning `json:"conflict,omitempty"`
}

type completeTaskResponse struct {
	Task taskResponse  `json:"task"`
	Next *taskResponse `json:"next,omitempty"`
}

type scheduleEntryResponse struct {
	PetName  string       `json:"pet_name"`
	Task     taskResponse `json:"task"`
	Conflict bool         `json:"conflict"`
	Line     string       `json:"line"`
}

// createOwnerHandler godoc
// @Summary Crear perfil de dueño
// @Description Crea el único dueño de la sesión. Hay que crearlo antes de agregar mascotas.
// @Tags owner
// @Accept json
// @Produce json
// @Param body body ownerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "owner profile already exists"
// @Router /owner [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.CreateOwner(r.Context(), OwnerInput{
			Name:        req.Name,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Ver perfil de dueño
// @Tags owner
// @Produce json
// @Success 200 {object} ownerResponse
// @Failure 409 {string} string "owner profile required"
// @Router /owner [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Owner(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar perfil de dueño
// @Description PATCH parcial: los campos omitidos no se tocan.
// @Tags owner
// @Accept json
// @Produce json
// @Param body body updateOwnerRequest true "Campos a actualizar"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "owner profile required"
// @Router /owner [patch]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateOwnerRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.UpdateOwner(r.Context(), UpdateOwnerInput{
			Name:        req.Name,
			ContactInfo: req.ContactInfo,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// addPetHandler godoc
// @Summary Agregar mascota
// @Description Los nombres de mascota son únicos dentro de la sesión.
// @Tags pets
// @Accept json
// @Produce json
// @Param body body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid input"
// @Failure 409 {string} string "owner profile required / pet already exists"
// @Router /pets [post]
func addPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AddPet(r.Context(), PetInput{
			Name:           req.Name,
			Species:        req.Species,
			Breed:          req.Breed,
			MedicationType: req.MedicationType,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 409 {string} string "owner profile required"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPets(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// removePetHandler godoc
// @Summary Borrar mascota
// @Description Saca la mascota de la sesión junto con todas sus tareas.
// @Tags pets
// @Param petName path string true "Nombre de la mascota"
// @Success 204
// @Failure 404 {string} string "pet not found"
// @Failure 409 {string} string "owner profile required"
// @Router /pets/{petName} [delete]
func removePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemovePet(r.Context(), chi.URLParam(r, "petName")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listTasksHandler godoc
// @Summary Agenda de una mascota
// @Description Tareas de la mascota ordenadas por hora.
// @Tags tasks
// @Produce json
// @Param petName path string true "Nombre de la mascota"
// @Success 200 {array} taskResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petName}/tasks [get]
func listTasksHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.PetSchedule(r.Context(), chi.URLParam(r, "petName"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]taskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTaskResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addTaskHandler godoc
// @Summary Agregar tarea
// @Description Si la tarea choca con otra pendiente de la misma mascota se agrega igual y la respuesta trae el aviso en "conflict".
// @Tags tasks
// @Accept json
// @Produce json
// @Param petName path string true "Nombre de la mascota"
// @Param body body taskRequest true "Tarea"
// @Success 201 {object} addTaskResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petName}/tasks [post]
func addTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		kind, err := tasks.ParseKind(req.Kind)
		if err != nil {
			http.Error(w, "kind must be walk, feed or give_medicine", http.StatusBadRequest)
			return
		}
		priority, err := tasks.ParsePriority(req.Priority)
		if err != nil {
			http.Error(w, "priority must be 1, 2 or 3", http.StatusBadRequest)
			return
		}
		recurrence, err := tasks.ParseRecurrence(req.Recurrence)
		if err != nil {
			http.Error(w, "recurrence must be none, daily or weekly", http.StatusBadRequest)
			return
		}

		res, err := svc.AddTask(r.Context(), chi.URLParam(r, "petName"), TaskInput{
			Kind:            kind,
			Time:            req.Time,
			Priority:        priority,
			Recurrence:      recurrence,
			DurationMinutes: req.DurationMinutes,
			FoodType:        req.FoodType,
			PortionSize:     req.PortionSize,
			MedicationName:  req.MedicationName,
			Dosage:          req.Dosage,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		out := addTaskResponse{Task: toTaskResponse(res.Task)}
		if res.Conflict != nil {
			out.Conflict = &conflictWarning{
				PetName:          res.Conflict.PetName,
				TaskID:           res.Conflict.TaskID,
				OtherTaskID:      res.Conflict.OtherTaskID,
				OtherDescription: res.Conflict.OtherDescription,
				Message:          res.Conflict.Message,
			}
		}
		writeJSON(w, http.StatusCreated, out)
	}
}

// completeTaskHandler godoc
// @Summary Completar tarea
// @Description Marca la tarea como completa. Si se repite, devuelve la siguiente ocurrencia en "next". Completar dos veces no genera otra ocurrencia.
// @Tags tasks
// @Produce json
// @Param petName path string true "Nombre de la mascota"
// @Param taskID path int true "ID de la tarea"
// @Success 200 {object} completeTaskResponse
// @Failure 400 {string} string "invalid task id"
// @Failure 404 {string} string "pet not found / task not found"
// @Router /pets/{petName}/tasks/{taskID}/complete [post]
func completeTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskIDParam(w, r)
		if !ok {
			return
		}

		res, err := svc.CompleteTask(r.Context(), chi.URLParam(r, "petName"), id)
		if err != nil {
			writeError(w, err)
			return
		}

		out := completeTaskResponse{Task: toTaskResponse(res.Task)}
		if res.Next != nil {
			next := toTaskResponse(*res.Next)
			out.Next = &next
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// deleteTaskHandler godoc
// @Summary Borrar tarea
// @Tags tasks
// @Param petName path string true "Nombre de la mascota"
// @Param taskID path int true "ID de la tarea"
// @Success 204
// @Failure 400 {string} string "invalid task id"
// @Failure 404 {string} string "pet not found / task not found"
// @Router /pets/{petName}/tasks/{taskID} [delete]
func deleteTaskHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := taskIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteTask(r.Context(), chi.URLParam(r, "petName"), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// scheduleHandler godoc
// @Summary Agenda diaria
// @Description Todas las tareas de todas las mascotas ordenadas por hora y prioridad descendente. Las tareas en conflicto quedan marcadas. Con format=text devuelve las líneas listas para imprimir.
// @Tags schedule
// @Produce json
// @Produce plain
// @Param format query string false "json (default) o text"
// @Success 200 {array} scheduleEntryResponse
// @Router /schedule [get]
func scheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := svc.Schedule(r.Context())

		if strings.EqualFold(r.URL.Query().Get("format"), "text") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			for _, e := range entries {
				_, _ = w.Write([]byte(e.Line + "\n"))
			}
			return
		}

		out := make([]scheduleEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, scheduleEntryResponse{
				PetName:  e.PetName,
				Task:     toTaskResponse(e.Task),
				Conflict: e.Conflict,
				Line:     e.Line,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func taskIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "taskID"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, tasks.ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrOwnerRequired):
		http.Error(w, ErrOwnerRequired.Error(), http.StatusConflict)
	case errors.Is(err, ErrOwnerExists), errors.Is(err, ErrPetExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrPetNotFound), errors.Is(err, owners.ErrPetNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrTaskNotFound):
		http.Error(w, "task not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toOwnerResponse(o OwnerView) ownerResponse {
	return ownerResponse{
		ID:          o.ID,
		Name:        o.Name,
		ContactInfo: o.ContactInfo,
		PetCount:    o.PetCount,
	}
}

func toPetResponse(p PetView) petResponse {
	return petResponse{
		ID:             p.ID,
		Name:           p.Name,
		Species:        string(p.Species),
		Breed:          p.Breed,
		MedicationType: p.MedicationType,
		TaskCount:      p.TaskCount,
	}
}

func toTaskResponse(t TaskView) taskResponse {
	return taskResponse{
		ID:              t.ID,
		Kind:            string(t.Kind),
		ScheduledAt:     t.ScheduledAt,
		Priority:        int(t.Priority),
		Status:          string(t.Status),
		Recurrence:      string(t.Recurrence),
		DurationMinutes: t.DurationMinutes,
		FoodType:        t.FoodType,
		PortionSize:     t.PortionSize,
		MedicationName:  t.MedicationName,
		Dosage:          t.Dosage,
		Description:     t.Description,
		Instructions:    t.Instructions,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (planner/diagnostics) para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
