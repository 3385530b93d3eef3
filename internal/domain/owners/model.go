package owners

import (
	"errors"
	"fmt"
	"strings"

	"pet-care-planner/internal/domain/pets"
)

var (
	ErrPetNotFound = errors.New("pet not found")
)

// Owner agrupa sus mascotas. No tiene lógica de agenda.
type Owner struct {
	ID int

	Name        string
	ContactInfo string // email o teléfono

	pets []*pets.Pet
}

func New(id int, name, contactInfo string) *Owner {
	return &Owner{
		ID:          id,
		Name:        name,
		ContactInfo: contactInfo,
	}
}

func (o *Owner) AddPet(p *pets.Pet) {
	o.pets = append(o.pets, p)
}

// RemovePet quita la mascota (por identidad) junto con todas sus tareas.
func (o *Owner) RemovePet(p *pets.Pet) error {
	for i, own := range o.pets {
		if own == p {
			o.pets = append(o.pets[:i], o.pets[i+1:]...)
			return nil
		}
	}
	return ErrPetNotFound
}

// Pets devuelve una copia en orden de inserción.
func (o *Owner) Pets() []*pets.Pet {
	out := make([]*pets.Pet, len(o.pets))
	copy(out, o.pets)
	return out
}

// PetByName devuelve la primera mascota con ese nombre (el core no exige unicidad).
func (o *Owner) PetByName(name string) (*pets.Pet, bool) {
	name = strings.TrimSpace(name)
	for _, p := range o.pets {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// TaskOverview lista las tareas de cada mascota en orden de inserción, con su estado.
func (o *Owner) TaskOverview() []string {
	lines := make([]string, 0)
	for _, p := range o.pets {
		lines = append(lines, fmt.Sprintf("Tasks for %s:", p.Name))
		for _, t := range p.Tasks() {
			lines = append(lines, fmt.Sprintf("- %s at %s [%s]",
				t.Kind.Label(), t.ScheduledAt.Format("2006-01-02 15:04"), t.Status))
		}
	}
	return lines
}
