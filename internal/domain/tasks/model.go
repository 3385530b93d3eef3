package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingIdentifier: se pidió completar una tarea recurrente sin id para la siguiente ocurrencia.
	ErrMissingIdentifier = errors.New("missing identifier for next occurrence")
)

// NoID indica "sin id" al completar una tarea (válido solo si no es recurrente).
const NoID = 0

// Task es una tarea de cuidado programada.
//
// Es una familia cerrada: Kind decide cuál de Walk / Feed / Medicine viene poblado,
// y exactamente uno de ellos es distinto de nil.
type Task struct {
	ID int

	Kind Kind

	ScheduledAt time.Time
	Priority    Priority
	Status      Status
	Recurrence  Recurrence

	Walk     *Walk
	Feed     *Feed
	Medicine *Medicine
}

func NewWalk(id int, at time.Time, priority Priority, recurrence Recurrence, minutes int) (*Task, error) {
	if minutes <= 0 {
		return nil, ErrInvalidInput
	}
	return newTask(id, KindWalk, at, priority, recurrence, func(t *Task) {
		t.Walk = &Walk{Duration: time.Duration(minutes) * time.Minute}
	})
}

func NewFeed(id int, at time.Time, priority Priority, recurrence Recurrence, foodType, portionSize string) (*Task, error) {
	return newTask(id, KindFeed, at, priority, recurrence, func(t *Task) {
		t.Feed = &Feed{
			FoodType:    strings.TrimSpace(foodType),
			PortionSize: strings.TrimSpace(portionSize),
		}
	})
}

func NewMedicine(id int, at time.Time, priority Priority, recurrence Recurrence, medicationName, dosage string) (*Task, error) {
	return newTask(id, KindGiveMedicine, at, priority, recurrence, func(t *Task) {
		t.Medicine = &Medicine{
			MedicationName: strings.TrimSpace(medicationName),
			Dosage:         strings.TrimSpace(dosage),
		}
	})
}

func newTask(id int, kind Kind, at time.Time, priority Priority, recurrence Recurrence, fill func(*Task)) (*Task, error) {
	if id <= NoID {
		return nil, ErrInvalidInput
	}
	if at.IsZero() {
		return nil, ErrInvalidInput
	}
	if !priority.valid() {
		return nil, ErrInvalidInput
	}
	if recurrence == "" {
		recurrence = RecurrenceNone
	}
	if !recurrence.valid() {
		return nil, ErrInvalidInput
	}

	t := &Task{
		ID:          id,
		Kind:        kind,
		ScheduledAt: at,
		Priority:    priority,
		Status:      StatusPending,
		Recurrence:  recurrence,
	}
	fill(t)
	return t, nil
}

func (t *Task) IsComplete() bool {
	return t.Status == StatusComplete
}

// Interval devuelve el intervalo cerrado [start, end] que ocupa la tarea.
// Feed y GiveMedicine son instantáneas (start == end).
func (t *Task) Interval() (start, end time.Time) {
	switch t.Kind {
	case KindWalk:
		if t.Walk != nil {
			return t.ScheduledAt, t.ScheduledAt.Add(t.Walk.Duration)
		}
	case KindFeed, KindGiveMedicine:
	}
	return t.ScheduledAt, t.ScheduledAt
}

// Complete marca la tarea como completa.
//
// Si la tarea se repite devuelve la siguiente ocurrencia (id = nextID, pending,
// desplazada 1 o 7 días desde ScheduledAt). Completar una tarea ya completa no hace
// nada y no genera otra ocurrencia.
func (t *Task) Complete(nextID int) (*Task, error) {
	if t.IsComplete() {
		return nil, nil
	}

	// En días de calendario, no en horas: la hora del día se mantiene aunque haya
	// cambio de horario en el medio.
	var days int
	switch t.Recurrence {
	case RecurrenceDaily:
		days = 1
	case RecurrenceWeekly:
		days = 7
	default:
		t.Status = StatusComplete
		return nil, nil
	}

	// Sin id no se toca el estado: el caller puede reintentar.
	if nextID <= NoID {
		return nil, ErrMissingIdentifier
	}

	t.Status = StatusComplete

	next := t.clone()
	next.ID = nextID
	next.Status = StatusPending
	next.ScheduledAt = t.ScheduledAt.AddDate(0, 0, days)
	return next, nil
}

func (t *Task) clone() *Task {
	c := *t
	if t.Walk != nil {
		w := *t.Walk
		c.Walk = &w
	}
	if t.Feed != nil {
		f := *t.Feed
		c.Feed = &f
	}
	if t.Medicine != nil {
		m := *t.Medicine
		c.Medicine = &m
	}
	return &c
}

// Describe arma la línea legible: variante, hora, prioridad y recurrencia.
func (t *Task) Describe() string {
	line := fmt.Sprintf("%s at %s [Priority %d]", t.Kind.Label(), t.ScheduledAt.Format("15:04"), int(t.Priority))
	if t.Recurrence != RecurrenceNone && t.Recurrence != "" {
		line += fmt.Sprintf(" (repeats %s)", t.Recurrence)
	}
	return line
}

// Instructions describe qué hacer al ejecutar la tarea.
func (t *Task) Instructions() string {
	switch t.Kind {
	case KindWalk:
		if t.Walk != nil {
			return fmt.Sprintf("Walking pet for %d minutes.", int(t.Walk.Duration/time.Minute))
		}
	case KindFeed:
		if t.Feed != nil {
			return fmt.Sprintf("Feeding pet %s of %s.", t.Feed.PortionSize, t.Feed.FoodType)
		}
	case KindGiveMedicine:
		if t.Medicine != nil {
			return fmt.Sprintf("Giving %s of %s.", t.Medicine.Dosage, t.Medicine.MedicationName)
		}
	}
	return ""
}
