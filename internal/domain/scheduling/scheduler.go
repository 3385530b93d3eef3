// Package scheduling detecta conflictos entre tareas de una misma mascota y arma la
// agenda diaria de un dueño, ordenada por hora y luego por prioridad descendente.
//
// El Scheduler no cachea nada: cada llamada recorre el grafo vivo Owner -> Pet -> Task.
package scheduling

import (
	"fmt"
	"sort"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/tasks"
)

// ConflictMarker se agrega a la línea de una entrada en conflicto.
const ConflictMarker = "[CONFLICT]"

// Conflict es un diagnóstico, no un error: dos tareas pendientes de la misma mascota
// con intervalos solapados.
type Conflict struct {
	PetID   int
	PetName string

	Task  *tasks.Task // la candidata
	Other *tasks.Task // la primera tarea existente con la que choca
}

func (c Conflict) Message() string {
	return fmt.Sprintf("%s: %s overlaps %s", c.PetName, c.Task.Describe(), c.Other.Describe())
}

// Reporter recibe los diagnósticos de conflicto. Debe ser seguro para uso concurrente
// si el Scheduler corre bajo un read lock compartido.
type Reporter interface {
	ConflictDetected(c Conflict)
}

type ReporterFunc func(c Conflict)

func (f ReporterFunc) ConflictDetected(c Conflict) { f(c) }

type Option func(*Scheduler)

func WithReporter(r Reporter) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.reporter = r
		}
	}
}

type Scheduler struct {
	owner    *owners.Owner
	reporter Reporter
}

func New(owner *owners.Owner, opts ...Option) *Scheduler {
	s := &Scheduler{
		owner:    owner,
		reporter: ReporterFunc(func(Conflict) {}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasConflict indica si candidate choca con alguna otra tarea pendiente de pet.
// Corta en el primer conflicto y lo reporta.
func (s *Scheduler) HasConflict(candidate *tasks.Task, pet *pets.Pet) bool {
	_, ok := s.CheckConflict(candidate, pet)
	return ok
}

// CheckConflict es HasConflict devolviendo además el diagnóstico reportado.
func (s *Scheduler) CheckConflict(candidate *tasks.Task, pet *pets.Pet) (Conflict, bool) {
	c, ok := s.FindConflict(candidate, pet)
	if ok {
		s.reporter.ConflictDetected(c)
	}
	return c, ok
}

// FindConflict hace el mismo chequeo que HasConflict sin reportar.
//
// Intervalos cerrados: choca si c.start <= o.end && o.start <= c.end. Dos tareas
// instantáneas en el mismo instante chocan, y también un paseo cuyo fin coincide con
// el inicio de otra tarea. Las tareas completas no participan; una tarea nunca se
// compara consigo misma (mismo ID).
func (s *Scheduler) FindConflict(candidate *tasks.Task, pet *pets.Pet) (Conflict, bool) {
	if candidate == nil || pet == nil || candidate.IsComplete() {
		return Conflict{}, false
	}

	cStart, cEnd := pet.IntervalOf(candidate)
	for _, other := range pet.Tasks() {
		if other.ID == candidate.ID || other.IsComplete() {
			continue
		}
		oStart, oEnd := pet.IntervalOf(other)
		if !cStart.After(oEnd) && !oStart.After(cEnd) {
			return Conflict{
				PetID:   pet.ID,
				PetName: pet.Name,
				Task:    candidate,
				Other:   other,
			}, true
		}
	}
	return Conflict{}, false
}

// Entry es una línea de la agenda diaria.
type Entry struct {
	PetID   int
	PetName string

	Task     *tasks.Task
	Conflict bool

	pet *pets.Pet
}

func (e Entry) Line() string {
	line := fmt.Sprintf("%s - %s", e.PetName, e.Task.Describe())
	if e.Conflict {
		line += " " + ConflictMarker
	}
	return line
}

// Lines renderiza la agenda para imprimirla.
func Lines(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Line())
	}
	return out
}

// GenerateDailySchedule junta todas las tareas de todas las mascotas y las ordena por
// (ScheduledAt asc, Priority desc); el resto de empates conserva el orden mascota/inserción.
// Cada entrada se marca si su tarea choca con otra de su misma mascota. Cada par en
// conflicto se reporta una sola vez por llamada.
func (s *Scheduler) GenerateDailySchedule() []Entry {
	entries := make([]Entry, 0)
	if s.owner == nil {
		return entries
	}

	for _, p := range s.owner.Pets() {
		for _, t := range p.Tasks() {
			entries = append(entries, Entry{
				PetID:   p.ID,
				PetName: p.Name,
				Task:    t,
				pet:     p,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Task, entries[j].Task
		if !a.ScheduledAt.Equal(b.ScheduledAt) {
			return a.ScheduledAt.Before(b.ScheduledAt)
		}
		return a.Priority > b.Priority
	})

	type pairKey struct {
		pet    *pets.Pet
		lo, hi int
	}
	reported := make(map[pairKey]struct{})

	for i := range entries {
		c, ok := s.FindConflict(entries[i].Task, entries[i].pet)
		if !ok {
			continue
		}
		entries[i].Conflict = true

		key := pairKey{pet: entries[i].pet, lo: c.Task.ID, hi: c.Other.ID}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}
		if _, seen := reported[key]; seen {
			continue
		}
		reported[key] = struct{}{}
		s.reporter.ConflictDetected(c)
	}

	return entries
}
