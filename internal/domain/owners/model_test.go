package owners

import (
	"testing"
	"time"

	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPet_KeepsInsertionOrder(t *testing.T) {
	o := New(1, "Hamid", "hamid@email.com")
	o.AddPet(pets.New(101, "Buddy", pets.SpeciesDog, "Golden Retriever", "Antibiotic"))
	o.AddPet(pets.New(102, "Mittens", pets.SpeciesCat, "Tabby", "Vitamin"))

	got := o.Pets()
	require.Len(t, got, 2)
	assert.Equal(t, "Buddy", got[0].Name)
	assert.Equal(t, "Mittens", got[1].Name)
}

func TestRemovePet(t *testing.T) {
	o := New(1, "Hamid", "hamid@email.com")
	buddy := pets.New(101, "Buddy", pets.SpeciesDog, "Golden Retriever", "Antibiotic")
	o.AddPet(buddy)

	require.NoError(t, o.RemovePet(buddy))
	assert.Empty(t, o.Pets())
	assert.ErrorIs(t, o.RemovePet(buddy), ErrPetNotFound)
}

func TestPetByName(t *testing.T) {
	o := New(1, "Hamid", "hamid@email.com")
	o.AddPet(pets.New(101, "Buddy", pets.SpeciesDog, "Golden Retriever", "Antibiotic"))

	p, ok := o.PetByName(" Buddy ")
	require.True(t, ok)
	assert.Equal(t, 101, p.ID)

	_, ok = o.PetByName("Rex")
	assert.False(t, ok)
}

func TestTaskOverview(t *testing.T) {
	o := New(1, "Hamid", "hamid@email.com")
	buddy := pets.New(101, "Buddy", pets.SpeciesDog, "Golden Retriever", "Antibiotic")
	mittens := pets.New(102, "Mittens", pets.SpeciesCat, "Tabby", "Vitamin")
	o.AddPet(buddy)
	o.AddPet(mittens)

	w, _ := tasks.NewWalk(1, time.Date(2026, 2, 11, 9, 0, 0, 0, time.Local), tasks.PriorityLow, tasks.RecurrenceNone, 30)
	buddy.AddTask(w)
	_, _ = buddy.CompleteTask(w, tasks.NoID)

	assert.Equal(t, []string{
		"Tasks for Buddy:",
		"- Walk at 2026-02-11 09:00 [complete]",
		"Tasks for Mittens:",
	}, o.TaskOverview())
}
