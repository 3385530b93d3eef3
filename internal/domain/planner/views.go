package planner

import (
	"time"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"
)

// Las vistas son copias tomadas bajo lock: los handlers nunca tocan el grafo vivo.

type OwnerView struct {
	ID          int
	Name        string
	ContactInfo string
	PetCount    int
}

type PetView struct {
	ID             int
	Name           string
	Species        pets.Species
	Breed          string
	MedicationType string
	TaskCount      int
}

type TaskView struct {
	ID          int
	Kind        tasks.Kind
	ScheduledAt time.Time
	Priority    tasks.Priority
	Status      tasks.Status
	Recurrence  tasks.Recurrence

	DurationMinutes int
	FoodType        string
	PortionSize     string
	MedicationName  string
	Dosage          string

	Description  string
	Instructions string
}

type ConflictView struct {
	PetName          string
	TaskID           int
	OtherTaskID      int
	OtherDescription string
	Message          string
}

type EntryView struct {
	PetName  string
	Task     TaskView
	Conflict bool
	Line     string
}

func toOwnerView(o *owners.Owner) OwnerView {
	return OwnerView{
		ID:          o.ID,
		Name:        o.Name,
		ContactInfo: o.ContactInfo,
		PetCount:    len(o.Pets()),
	}
}

func toPetView(p *pets.Pet) PetView {
	return PetView{
		ID:             p.ID,
		Name:           p.Name,
		Species:        p.Species,
		Breed:          p.Breed,
		MedicationType: p.MedicationType,
		TaskCount:      len(p.Tasks()),
	}
}

func toTaskView(t *tasks.Task) TaskView {
	v := TaskView{
		ID:           t.ID,
		Kind:         t.Kind,
		ScheduledAt:  t.ScheduledAt,
		Priority:     t.Priority,
		Status:       t.Status,
		Recurrence:   t.Recurrence,
		Description:  t.Describe(),
		Instructions: t.Instructions(),
	}
	switch t.Kind {
	case tasks.KindWalk:
		if t.Walk != nil {
			v.DurationMinutes = int(t.Walk.Duration / time.Minute)
		}
	case tasks.KindFeed:
		if t.Feed != nil {
			v.FoodType = t.Feed.FoodType
			v.PortionSize = t.Feed.PortionSize
		}
	case tasks.KindGiveMedicine:
		if t.Medicine != nil {
			v.MedicationName = t.Medicine.MedicationName
			v.Dosage = t.Medicine.Dosage
		}
	}
	return v
}

func toConflictView(c scheduling.Conflict) *ConflictView {
	return &ConflictView{
		PetName:          c.PetName,
		TaskID:           c.Task.ID,
		OtherTaskID:      c.Other.ID,
		OtherDescription: c.Other.Describe(),
		Message:          c.Message(),
	}
}

func toEntryView(e scheduling.Entry) EntryView {
	return EntryView{
		PetName:  e.PetName,
		Task:     toTaskView(e.Task),
		Conflict: e.Conflict,
		Line:     e.Line(),
	}
}
