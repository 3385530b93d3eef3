// Package fixtures arma un hogar (dueño, mascotas y tareas) desde un archivo YAML.
// Lo usan el demo y el api para precargar la sesión.
package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"pet-care-planner/internal/domain/owners"
	"pet-care-planner/internal/domain/pets"
	"pet-care-planner/internal/domain/tasks"

	yaml "go.yaml.in/yaml/v3"
)

var ErrInvalidFixture = errors.New("invalid household fixture")

// Formato:
//
//	owner:
//	  name: Hamid
//	  contact_info: hamid@email.com
//	pets:
//	  - name: Buddy
//	    species: dog
//	    tasks:
//	      - kind: walk
//	        in: 1h            # offset desde ahora, o bien
//	        at: "08:30"       # hora del día de hoy (24h)
//	        priority: 2
//	        duration_minutes: 30
type fileHousehold struct {
	Owner fileOwner `yaml:"owner"`
	Pets  []filePet `yaml:"pets"`
}

type fileOwner struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	ContactInfo string `yaml:"contact_info"`
}

type filePet struct {
	ID             int        `yaml:"id"`
	Name           string     `yaml:"name"`
	Species        string     `yaml:"species"`
	Breed          string     `yaml:"breed"`
	MedicationType string     `yaml:"medication_type"`
	Tasks          []fileTask `yaml:"tasks"`
}

type fileTask struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`
	At         string `yaml:"at"`
	In         string `yaml:"in"`
	Priority   string `yaml:"priority"`
	Recurrence string `yaml:"recurrence"`

	DurationMinutes int    `yaml:"duration_minutes"`
	FoodType        string `yaml:"food_type"`
	PortionSize     string `yaml:"portion_size"`
	MedicationName  string `yaml:"medication_name"`
	Dosage          string `yaml:"dosage"`
}

// Household es el grafo resultante. LastTaskID es el id de tarea más alto usado,
// para que el contador del caller siga desde ahí.
type Household struct {
	Owner      *owners.Owner
	LastTaskID int
}

func LoadFile(path string, now time.Time) (Household, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Household{}, fmt.Errorf("read household %s: %w", path, err)
	}
	h, err := Parse(data, now)
	if err != nil {
		return Household{}, fmt.Errorf("household %s: %w", path, err)
	}
	return h, nil
}

// Parse decodifica en modo estricto (campos desconocidos fallan). Los ids omitidos se
// asignan en orden: dueño 1, mascotas 101.., tareas desde el máximo explícito + 1.
func Parse(data []byte, now time.Time) (Household, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f fileHousehold
	if err := dec.Decode(&f); err != nil {
		return Household{}, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	name := strings.TrimSpace(f.Owner.Name)
	if name == "" {
		return Household{}, fmt.Errorf("%w: owner.name is required", ErrInvalidFixture)
	}
	ownerID := f.Owner.ID
	if ownerID <= 0 {
		ownerID = 1
	}
	o := owners.New(ownerID, name, strings.TrimSpace(f.Owner.ContactInfo))

	// Primera pasada: ids explícitos, para no pisarlos al autoasignar.
	counter := 0
	seenTask := map[int]struct{}{}
	for _, fp := range f.Pets {
		for _, ft := range fp.Tasks {
			if ft.ID <= 0 {
				continue
			}
			if _, dup := seenTask[ft.ID]; dup {
				return Household{}, fmt.Errorf("%w: duplicated task id %d", ErrInvalidFixture, ft.ID)
			}
			seenTask[ft.ID] = struct{}{}
			if ft.ID > counter {
				counter = ft.ID
			}
		}
	}

	seenPet := map[string]struct{}{}
	for i, fp := range f.Pets {
		p, err := buildPet(i, fp)
		if err != nil {
			return Household{}, err
		}
		if _, dup := seenPet[p.Name]; dup {
			return Household{}, fmt.Errorf("%w: duplicated pet %q", ErrInvalidFixture, p.Name)
		}
		seenPet[p.Name] = struct{}{}

		for j, ft := range fp.Tasks {
			id := ft.ID
			if id <= 0 {
				counter++
				id = counter
			}
			t, err := buildTask(id, ft, now)
			if err != nil {
				return Household{}, fmt.Errorf("%w: pets[%d].tasks[%d]: %v", ErrInvalidFixture, i, j, err)
			}
			p.AddTask(t)
		}
		o.AddPet(p)
	}

	return Household{Owner: o, LastTaskID: counter}, nil
}

func buildPet(i int, fp filePet) (*pets.Pet, error) {
	name := strings.TrimSpace(fp.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: pets[%d].name is required", ErrInvalidFixture, i)
	}

	species := pets.Species(strings.ToLower(strings.TrimSpace(fp.Species)))
	switch species {
	case pets.SpeciesDog, pets.SpeciesCat, pets.SpeciesOther:
	case "":
		species = pets.SpeciesOther
	default:
		return nil, fmt.Errorf("%w: pets[%d].species %q", ErrInvalidFixture, i, fp.Species)
	}

	id := fp.ID
	if id <= 0 {
		id = 100 + i + 1
	}

	medication := strings.TrimSpace(fp.MedicationType)
	if medication == "" {
		medication = "None"
	}

	return pets.New(id, name, species, strings.TrimSpace(fp.Breed), medication), nil
}

func buildTask(id int, ft fileTask, now time.Time) (*tasks.Task, error) {
	kind, err := tasks.ParseKind(ft.Kind)
	if err != nil {
		return nil, fmt.Errorf("kind %q", ft.Kind)
	}

	priority := tasks.PriorityMedium
	if strings.TrimSpace(ft.Priority) != "" {
		priority, err = tasks.ParsePriority(ft.Priority)
		if err != nil {
			return nil, fmt.Errorf("priority %q", ft.Priority)
		}
	}

	recurrence, err := tasks.ParseRecurrence(ft.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("recurrence %q", ft.Recurrence)
	}

	at, err := scheduledAt(ft, now)
	if err != nil {
		return nil, err
	}

	switch kind {
	case tasks.KindWalk:
		return tasks.NewWalk(id, at, priority, recurrence, ft.DurationMinutes)
	case tasks.KindFeed:
		return tasks.NewFeed(id, at, priority, recurrence, ft.FoodType, ft.PortionSize)
	default:
		return tasks.NewMedicine(id, at, priority, recurrence, ft.MedicationName, ft.Dosage)
	}
}

// scheduledAt: exactamente uno de "at" (HH:MM de hoy) o "in" (offset desde now).
func scheduledAt(ft fileTask, now time.Time) (time.Time, error) {
	at := strings.TrimSpace(ft.At)
	in := strings.TrimSpace(ft.In)

	switch {
	case at != "" && in != "":
		return time.Time{}, errors.New("use either at or in, not both")
	case in != "":
		d, err := time.ParseDuration(in)
		if err != nil {
			return time.Time{}, fmt.Errorf("in %q", ft.In)
		}
		return now.Add(d), nil
	case at != "":
		clock, err := time.Parse("15:04", at)
		if err != nil {
			return time.Time{}, fmt.Errorf("at %q must be HH:MM", ft.At)
		}
		return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
	default:
		return time.Time{}, errors.New("at or in is required")
	}
}
