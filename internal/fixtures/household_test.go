package fixtures

import (
	"path/filepath"
	"testing"
	"time"

	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 11, 6, 0, 0, 0, time.UTC)

func TestLoadFile_Household(t *testing.T) {
	h, err := LoadFile(filepath.Join("testdata", "household.yaml"), now)
	require.NoError(t, err)
	require.NotNil(t, h.Owner)

	assert.Equal(t, 1, h.Owner.ID)
	assert.Equal(t, "Hamid", h.Owner.Name)

	ps := h.Owner.Pets()
	require.Len(t, ps, 2)
	assert.Equal(t, "Buddy", ps[0].Name)
	assert.Equal(t, pets.SpeciesDog, ps[0].Species)
	assert.Equal(t, 102, ps[1].ID)

	buddy := ps[0].Tasks()
	require.Len(t, buddy, 2)
	// Ids autoasignados siguen al máximo explícito (10).
	assert.Equal(t, 11, buddy[0].ID)
	assert.Equal(t, 12, buddy[1].ID)
	assert.Equal(t, now.Add(time.Hour), buddy[0].ScheduledAt)
	assert.Equal(t, tasks.PriorityHigh, buddy[1].Priority)
	assert.Equal(t, tasks.RecurrenceDaily, buddy[1].Recurrence)

	mittens := ps[1].Tasks()
	require.Len(t, mittens, 1)
	assert.Equal(t, 10, mittens[0].ID)
	assert.Equal(t, time.Date(2026, 2, 11, 7, 15, 0, 0, time.UTC), mittens[0].ScheduledAt)
	assert.Equal(t, tasks.PriorityLow, mittens[0].Priority)

	assert.Equal(t, 12, h.LastTaskID)

	lines := scheduling.Lines(scheduling.New(h.Owner).GenerateDailySchedule())
	assert.Equal(t, []string{
		"Buddy - Walk at 07:00 [Priority 2]",
		"Mittens - Feed at 07:15 [Priority 1]",
		"Buddy - GiveMedicine at 09:00 [Priority 3] (repeats daily)",
	}, lines)
}

func TestParse_Defaults(t *testing.T) {
	h, err := Parse([]byte(`
owner:
  name: Ana
pets:
  - name: Kiwi
    tasks:
      - kind: feed
        at: "12:00"
`), now)
	require.NoError(t, err)

	p := h.Owner.Pets()[0]
	assert.Equal(t, 101, p.ID)
	assert.Equal(t, pets.SpeciesOther, p.Species)
	assert.Equal(t, "None", p.MedicationType)

	ts := p.Tasks()
	require.Len(t, ts, 1)
	assert.Equal(t, 1, ts[0].ID)
	assert.Equal(t, tasks.PriorityMedium, ts[0].Priority)
	assert.Equal(t, tasks.RecurrenceNone, ts[0].Recurrence)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing owner":  "pets: []\n",
		"unknown field":  "owner:\n  name: Ana\n  phone: 1\n",
		"bad species":    "owner:\n  name: Ana\npets:\n  - name: Nemo\n    species: fish\n",
		"duplicated pet": "owner:\n  name: Ana\npets:\n  - name: Kiwi\n  - name: Kiwi\n",
		"bad kind":       "owner:\n  name: Ana\npets:\n  - name: Kiwi\n    tasks:\n      - kind: groom\n        in: 1h\n",
		"no time":        "owner:\n  name: Ana\npets:\n  - name: Kiwi\n    tasks:\n      - kind: feed\n",
		"both times":     "owner:\n  name: Ana\npets:\n  - name: Kiwi\n    tasks:\n      - kind: feed\n        in: 1h\n        at: \"08:00\"\n",
		"walk no length": "owner:\n  name: Ana\npets:\n  - name: Kiwi\n    tasks:\n      - kind: walk\n        in: 1h\n",
		"dup task id":    "owner:\n  name: Ana\npets:\n  - name: Kiwi\n    tasks:\n      - {id: 3, kind: feed, in: 1h}\n      - {id: 3, kind: feed, in: 2h}\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), now)
			assert.ErrorIs(t, err, ErrInvalidFixture)
		})
	}
}
