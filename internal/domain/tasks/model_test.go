package tasks

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 2, 11, 10, 0, 0, 0, time.Local)

func TestNewTasks_StartPending(t *testing.T) {
	w, err := NewWalk(1, base, PriorityMedium, RecurrenceNone, 30)
	require.NoError(t, err)
	f, err := NewFeed(2, base, PriorityLow, RecurrenceDaily, "Dry Kibble", "1 cup")
	require.NoError(t, err)
	m, err := NewMedicine(3, base, PriorityHigh, RecurrenceWeekly, "PetMed", "5ml")
	require.NoError(t, err)

	for _, task := range []*Task{w, f, m} {
		assert.Equal(t, StatusPending, task.Status, "task %d", task.ID)
		assert.False(t, task.IsComplete())
	}
}

func TestNewTasks_RejectInvalidInput(t *testing.T) {
	_, err := NewWalk(1, base, PriorityMedium, RecurrenceNone, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewFeed(1, base, Priority(4), RecurrenceNone, "kibble", "1 cup")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewMedicine(1, base, PriorityLow, Recurrence("monthly"), "PetMed", "5ml")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewFeed(NoID, base, PriorityLow, RecurrenceNone, "kibble", "1 cup")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewFeed(1, time.Time{}, PriorityLow, RecurrenceNone, "kibble", "1 cup")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTask_EmptyRecurrenceDefaultsToNone(t *testing.T) {
	task, err := NewFeed(1, base, PriorityLow, "", "kibble", "1 cup")
	require.NoError(t, err)
	assert.Equal(t, RecurrenceNone, task.Recurrence)
}

func TestInterval(t *testing.T) {
	w, _ := NewWalk(1, base, PriorityMedium, RecurrenceNone, 30)
	start, end := w.Interval()
	assert.Equal(t, base, start)
	assert.Equal(t, base.Add(30*time.Minute), end)

	f, _ := NewFeed(2, base, PriorityMedium, RecurrenceNone, "kibble", "1 cup")
	start, end = f.Interval()
	assert.Equal(t, base, start)
	assert.Equal(t, start, end)

	m, _ := NewMedicine(3, base, PriorityMedium, RecurrenceNone, "PetMed", "5ml")
	start, end = m.Interval()
	assert.True(t, start.Equal(end))
}

func TestComplete_NonRecurring(t *testing.T) {
	task, _ := NewWalk(1, base, PriorityLow, RecurrenceNone, 20)

	next, err := task.Complete(NoID)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, StatusComplete, task.Status)
}

func TestComplete_Daily(t *testing.T) {
	task, _ := NewFeed(1, base, PriorityHigh, RecurrenceDaily, "Wet Food", "1 can")

	next, err := task.Complete(2)
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Equal(t, StatusComplete, task.Status)
	assert.Equal(t, 2, next.ID)
	assert.Equal(t, StatusPending, next.Status)
	assert.Equal(t, time.Date(2026, 2, 12, 10, 0, 0, 0, time.Local), next.ScheduledAt)
	assert.Equal(t, KindFeed, next.Kind)
	assert.Equal(t, PriorityHigh, next.Priority)
	assert.Equal(t, RecurrenceDaily, next.Recurrence)
	assert.Equal(t, *task.Feed, *next.Feed)

	// el sucesor no comparte detalle con el original
	next.Feed.FoodType = "changed"
	assert.Equal(t, "Wet Food", task.Feed.FoodType)
}

func TestComplete_Weekly(t *testing.T) {
	task, _ := NewWalk(5, base, PriorityMedium, RecurrenceWeekly, 45)

	next, err := task.Complete(6)
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Equal(t, base.AddDate(0, 0, 7), next.ScheduledAt)
	assert.Equal(t, 45*time.Minute, next.Walk.Duration)
}

func TestComplete_KeepsClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08: adelanto de hora en EE.UU.
	walk, _ := NewWalk(1, time.Date(2026, 3, 7, 10, 0, 0, 0, ny), PriorityMedium, RecurrenceDaily, 30)
	next, err := walk.Complete(2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, ny), next.ScheduledAt)
	assert.Equal(t, 10, next.ScheduledAt.Hour())

	// 2026-11-01: atraso de hora, dentro de la semana.
	feed, _ := NewFeed(3, time.Date(2026, 10, 29, 8, 0, 0, 0, ny), PriorityLow, RecurrenceWeekly, "kibble", "1 cup")
	next, err = feed.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 5, 8, 0, 0, 0, ny), next.ScheduledAt)
	assert.Equal(t, "Feed at 08:00 [Priority 1] (repeats weekly)", next.Describe())
}

func TestComplete_RecurringWithoutIDFails(t *testing.T) {
	task, _ := NewMedicine(1, base, PriorityHigh, RecurrenceDaily, "PetMed", "5ml")

	next, err := task.Complete(NoID)
	assert.ErrorIs(t, err, ErrMissingIdentifier)
	assert.Nil(t, next)
	assert.Equal(t, StatusPending, task.Status)
}

func TestComplete_IsIdempotent(t *testing.T) {
	task, _ := NewFeed(1, base, PriorityLow, RecurrenceDaily, "kibble", "1 cup")

	first, err := task.Complete(2)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := task.Complete(3)
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Equal(t, StatusComplete, task.Status)
}

func TestDescribe(t *testing.T) {
	w, _ := NewWalk(1, base, PriorityMedium, RecurrenceNone, 30)
	assert.Equal(t, "Walk at 10:00 [Priority 2]", w.Describe())

	m, _ := NewMedicine(2, base.Add(90*time.Minute), PriorityHigh, RecurrenceWeekly, "PetMed", "5ml")
	assert.Equal(t, "GiveMedicine at 11:30 [Priority 3] (repeats weekly)", m.Describe())
}

func TestInstructions(t *testing.T) {
	w, _ := NewWalk(1, base, PriorityMedium, RecurrenceNone, 30)
	f, _ := NewFeed(2, base, PriorityMedium, RecurrenceNone, "Dry Kibble", "1 cup")
	m, _ := NewMedicine(3, base, PriorityMedium, RecurrenceNone, "PetMed", "5ml")

	assert.Equal(t, "Walking pet for 30 minutes.", w.Instructions())
	assert.Equal(t, "Feeding pet 1 cup of Dry Kibble.", f.Instructions())
	assert.Equal(t, "Giving 5ml of PetMed.", m.Instructions())
}
