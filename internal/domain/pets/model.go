package pets

import (
	"errors"
	"sort"
	"time"

	"pet-care-planner/internal/domain/tasks"
)

var (
	// ErrTaskNotFound: la tarea no pertenece a esta mascota.
	ErrTaskNotFound = errors.New("task not found")
)

// Species define las especies que ofrece el formulario.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Pet es dueña exclusiva de sus tareas; el orden es el de inserción, no el horario.
type Pet struct {
	ID int

	Name    string
	Species Species
	Breed   string

	MedicationType string // texto libre, "None" si no toma nada

	tasks []*tasks.Task
}

func New(id int, name string, species Species, breed, medicationType string) *Pet {
	return &Pet{
		ID:             id,
		Name:           name,
		Species:        species,
		Breed:          breed,
		MedicationType: medicationType,
	}
}

// AddTask agrega sin deduplicar ni validar solapamientos (eso es del scheduler).
func (p *Pet) AddTask(t *tasks.Task) {
	p.tasks = append(p.tasks, t)
}

// Tasks devuelve una copia del slice; los punteros siguen siendo las tareas vivas.
func (p *Pet) Tasks() []*tasks.Task {
	out := make([]*tasks.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

func (p *Pet) TaskByID(id int) (*tasks.Task, bool) {
	for _, t := range p.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// IntervalOf es una función pura de la tarea; se mantiene en Pet por compatibilidad de API.
func (p *Pet) IntervalOf(t *tasks.Task) (start, end time.Time) {
	return t.Interval()
}

// CompleteTask completa una tarea propia. Si la tarea se repite, la siguiente
// ocurrencia se agrega a esta mascota y se devuelve.
func (p *Pet) CompleteTask(t *tasks.Task, nextID int) (*tasks.Task, error) {
	if !p.owns(t) {
		return nil, ErrTaskNotFound
	}

	next, err := t.Complete(nextID)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, nil
	}

	p.AddTask(next)
	return next, nil
}

// RemoveTask borra del historial. El core nunca borra; solo lo usa el planner a pedido del usuario.
func (p *Pet) RemoveTask(id int) error {
	for i, t := range p.tasks {
		if t.ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}

// DailySchedule ordena por ScheduledAt (estable: empates respetan inserción).
// No filtra por estado ni por día.
func (p *Pet) DailySchedule() []*tasks.Task {
	out := p.Tasks()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})
	return out
}

func (p *Pet) owns(t *tasks.Task) bool {
	if t == nil {
		return false
	}
	for _, own := range p.tasks {
		if own == t {
			return true
		}
	}
	return false
}
