package planner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"pet-care-planner/internal/domain/diagnostics"
	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"
	"pet-care-planner/internal/platform/logger"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrOwnerRequired = errors.New("owner profile required")
	ErrOwnerExists   = errors.New("owner profile already exists")
	ErrPetExists     = errors.New("pet already exists")
	ErrPetNotFound   = errors.New("pet not found")
)

const (
	ownerID     = 1
	petIDOffset = 100
)

// Service guarda la sesión del formulario: un dueño, sus mascotas por nombre y un
// único contador de ids de tareas compartido entre todas las mascotas.
//
// Escrituras (dueño, mascotas, add/complete/delete de tareas) bajo write lock;
// la agenda y los chequeos de conflicto bajo read lock.
type Service struct {
	mu sync.RWMutex

	owner       *owners.Owner
	petsByName  map[string]*pets.Pet
	petCounter  int // ids de mascota no se reusan aunque se borre una
	taskCounter int

	diag *diagnostics.Service
	log  logger.Logger
	now  func() time.Time
}

func NewService(diag *diagnostics.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		petsByName: make(map[string]*pets.Pet),
		petCounter: petIDOffset,
		diag:       diag,
		log:        log,
		now:        time.Now,
	}
}

// Load precarga la sesión con un grafo ya armado (p.ej. desde fixtures).
// lastTaskID es el último id de tarea que ya usó quien armó el grafo; el contador
// sigue desde ahí, o desde el id más alto cargado si es mayor.
func (s *Service) Load(o *owners.Owner, lastTaskID int) error {
	if o == nil {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner != nil {
		return ErrOwnerExists
	}

	byName := make(map[string]*pets.Pet)
	maxID := lastTaskID
	maxPetID := petIDOffset
	for _, p := range o.Pets() {
		if _, dup := byName[p.Name]; dup {
			return fmt.Errorf("%w: %s", ErrPetExists, p.Name)
		}
		byName[p.Name] = p
		if p.ID > maxPetID {
			maxPetID = p.ID
		}
		for _, t := range p.Tasks() {
			if t.ID > maxID {
				maxID = t.ID
			}
		}
	}

	s.owner = o
	s.petsByName = byName
	s.petCounter = maxPetID
	s.taskCounter = maxID

	s.log.Info("session loaded", map[string]any{
		"owner": o.Name,
		"pets":  len(byName),
		"tasks": maxID,
	})
	return nil
}

type OwnerInput struct {
	Name        string
	ContactInfo string
}

func (s *Service) CreateOwner(ctx context.Context, in OwnerInput) (OwnerView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return OwnerView{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner != nil {
		return OwnerView{}, ErrOwnerExists
	}

	s.owner = owners.New(ownerID, name, strings.TrimSpace(in.ContactInfo))
	s.log.Info("owner created", map[string]any{"owner": name})
	return toOwnerView(s.owner), nil
}

func (s *Service) Owner(ctx context.Context) (OwnerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.owner == nil {
		return OwnerView{}, ErrOwnerRequired
	}
	return toOwnerView(s.owner), nil
}

// UpdateOwnerInput: punteros para PATCH real, nil = no tocar.
type UpdateOwnerInput struct {
	Name        *string
	ContactInfo *string
}

func (s *Service) UpdateOwner(ctx context.Context, in UpdateOwnerInput) (OwnerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == nil {
		return OwnerView{}, ErrOwnerRequired
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return OwnerView{}, ErrInvalidInput
		}
		s.owner.Name = name
	}
	if in.ContactInfo != nil {
		s.owner.ContactInfo = strings.TrimSpace(*in.ContactInfo)
	}
	return toOwnerView(s.owner), nil
}

type PetInput struct {
	Name           string
	Species        string
	Breed          string
	MedicationType string
}

func (s *Service) AddPet(ctx context.Context, in PetInput) (PetView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return PetView{}, ErrInvalidInput
	}

	species := pets.Species(strings.ToLower(strings.TrimSpace(in.Species)))
	switch species {
	case pets.SpeciesDog, pets.SpeciesCat, pets.SpeciesOther:
	case "":
		species = pets.SpeciesOther
	default:
		return PetView{}, ErrInvalidInput
	}

	medication := strings.TrimSpace(in.MedicationType)
	if medication == "" {
		medication = "None"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.owner == nil {
		return PetView{}, ErrOwnerRequired
	}
	if _, exists := s.petsByName[name]; exists {
		return PetView{}, ErrPetExists
	}

	s.petCounter++
	p := pets.New(s.petCounter, name, species, strings.TrimSpace(in.Breed), medication)
	s.petsByName[name] = p
	s.owner.AddPet(p)

	s.log.Info("pet added", map[string]any{"pet": name, "pet_id": p.ID})
	return toPetView(p), nil
}

func (s *Service) ListPets(ctx context.Context) ([]PetView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.owner == nil {
		return nil, ErrOwnerRequired
	}

	out := make([]PetView, 0)
	for _, p := range s.owner.Pets() {
		out = append(out, toPetView(p))
	}
	return out, nil
}

// RemovePet saca la mascota de la sesión junto con todas sus tareas. El nombre
// queda libre para otra mascota; el id no se reusa.
func (s *Service) RemovePet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.petLocked(name)
	if err != nil {
		return err
	}
	if err := s.owner.RemovePet(p); err != nil {
		return fmt.Errorf("remove pet %s: %w", p.Name, err)
	}
	delete(s.petsByName, p.Name)

	s.log.Info("pet removed", map[string]any{"pet": p.Name, "pet_id": p.ID, "tasks": len(p.Tasks())})
	return nil
}

type TaskInput struct {
	Kind       tasks.Kind
	Time       string // "HH:MM", se combina con la fecha actual
	Priority   tasks.Priority
	Recurrence tasks.Recurrence

	DurationMinutes int    // walk
	FoodType        string // feed
	PortionSize     string // feed
	MedicationName  string // give_medicine
	Dosage          string // give_medicine
}

type AddTaskResult struct {
	Task     TaskView
	Conflict *ConflictView // nil si no choca
}

// AddTask chequea conflictos antes de agregar (igual que el formulario) y agrega
// la tarea de todos modos: el conflicto es un aviso, no un rechazo.
func (s *Service) AddTask(ctx context.Context, petName string, in TaskInput) (AddTaskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.petLocked(petName)
	if err != nil {
		return AddTaskResult{}, err
	}

	at, err := s.clock(in.Time)
	if err != nil {
		return AddTaskResult{}, err
	}

	id := s.taskCounter + 1
	t, err := buildTask(id, at, in)
	if err != nil {
		return AddTaskResult{}, fmt.Errorf("build task: %w", err)
	}
	s.taskCounter = id

	res := AddTaskResult{}
	if c, ok := s.schedulerLocked(ctx).CheckConflict(t, p); ok {
		res.Conflict = toConflictView(c)
	}

	p.AddTask(t)
	res.Task = toTaskView(t)

	s.log.Info("task added", map[string]any{
		"pet":      p.Name,
		"task_id":  t.ID,
		"task":     t.Describe(),
		"conflict": res.Conflict != nil,
	})
	return res, nil
}

type CompleteResult struct {
	Task TaskView
	Next *TaskView // siguiente ocurrencia si la tarea se repite
}

func (s *Service) CompleteTask(ctx context.Context, petName string, taskID int) (CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.petLocked(petName)
	if err != nil {
		return CompleteResult{}, err
	}

	t, ok := p.TaskByID(taskID)
	if !ok {
		return CompleteResult{}, pets.ErrTaskNotFound
	}

	// Solo se reserva id si realmente va a nacer una ocurrencia nueva.
	nextID := tasks.NoID
	if t.Recurrence != tasks.RecurrenceNone && !t.IsComplete() {
		nextID = s.taskCounter + 1
	}

	next, err := p.CompleteTask(t, nextID)
	if err != nil {
		return CompleteResult{}, fmt.Errorf("complete task %d: %w", taskID, err)
	}

	res := CompleteResult{Task: toTaskView(t)}
	fields := map[string]any{"pet": p.Name, "task_id": t.ID}
	if next != nil {
		s.taskCounter = next.ID
		v := toTaskView(next)
		res.Next = &v
		fields["next_id"] = next.ID
		fields["next_at"] = next.ScheduledAt.Format("2006-01-02 15:04")
	}

	s.log.Info("task completed", fields)
	return res, nil
}

// DeleteTask es una acción del usuario; el core nunca borra historial por su cuenta.
func (s *Service) DeleteTask(ctx context.Context, petName string, taskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.petLocked(petName)
	if err != nil {
		return err
	}
	if err := p.RemoveTask(taskID); err != nil {
		return err
	}

	s.log.Info("task deleted", map[string]any{"pet": p.Name, "task_id": taskID})
	return nil
}

// PetSchedule devuelve las tareas de la mascota ordenadas por hora.
func (s *Service) PetSchedule(ctx context.Context, petName string) ([]TaskView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.petLocked(petName)
	if err != nil {
		return nil, err
	}

	out := make([]TaskView, 0)
	for _, t := range p.DailySchedule() {
		out = append(out, toTaskView(t))
	}
	return out, nil
}

// Schedule genera la agenda diaria completa. Sin dueño devuelve vacío, nunca falla.
func (s *Service) Schedule(ctx context.Context) []EntryView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]EntryView, 0)
	if s.owner == nil {
		return out
	}
	for _, e := range s.schedulerLocked(ctx).GenerateDailySchedule() {
		out = append(out, toEntryView(e))
	}
	return out
}

func (s *Service) TaskOverview(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.owner == nil {
		return nil, ErrOwnerRequired
	}
	return s.owner.TaskOverview(), nil
}

func (s *Service) petLocked(name string) (*pets.Pet, error) {
	if s.owner == nil {
		return nil, ErrOwnerRequired
	}
	p, ok := s.petsByName[strings.TrimSpace(name)]
	if !ok {
		return nil, ErrPetNotFound
	}
	return p, nil
}

func (s *Service) schedulerLocked(ctx context.Context) *scheduling.Scheduler {
	if s.diag == nil {
		return scheduling.New(s.owner)
	}
	return scheduling.New(s.owner, scheduling.WithReporter(s.diag.Reporter(ctx)))
}

// clock combina "HH:MM" (24h) con la fecha actual.
func (s *Service) clock(hhmm string) (time.Time, error) {
	h, m, err := ParseClock(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location()), nil
}

// ParseClock valida "HH:MM" en formato 24h.
func ParseClock(hhmm string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidInput
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidInput
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidInput
	}
	return hour, minute, nil
}

func buildTask(id int, at time.Time, in TaskInput) (*tasks.Task, error) {
	switch in.Kind {
	case tasks.KindWalk:
		return tasks.NewWalk(id, at, in.Priority, in.Recurrence, in.DurationMinutes)
	case tasks.KindFeed:
		return tasks.NewFeed(id, at, in.Priority, in.Recurrence, in.FoodType, in.PortionSize)
	case tasks.KindGiveMedicine:
		return tasks.NewMedicine(id, at, in.Priority, in.Recurrence, in.MedicationName, in.Dosage)
	default:
		return nil, tasks.ErrInvalidInput
	}
}
