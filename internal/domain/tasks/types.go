package tasks

import (
	"strconv"
	"strings"
)

// Kind identifica la variante concreta de una tarea.
// @Enum walk, feed, give_medicine
type Kind string

const (
	KindWalk         Kind = "walk"
	KindFeed         Kind = "feed"
	KindGiveMedicine Kind = "give_medicine"
)

// Label es el nombre de la variante tal como se muestra en la agenda.
func (k Kind) Label() string {
	switch k {
	case KindWalk:
		return "Walk"
	case KindFeed:
		return "Feed"
	case KindGiveMedicine:
		return "GiveMedicine"
	default:
		return string(k)
	}
}

// ParseKind acepta tanto el valor canónico ("give_medicine") como la etiqueta ("GiveMedicine").
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "_")
	switch v {
	case "walk":
		return KindWalk, nil
	case "feed":
		return KindFeed, nil
	case "give_medicine", "givemedicine", "medicine":
		return KindGiveMedicine, nil
	default:
		return "", ErrInvalidInput
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

func (r Recurrence) valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	default:
		return false
	}
}

// ParseRecurrence: vacío equivale a "none".
func ParseRecurrence(s string) (Recurrence, error) {
	r := Recurrence(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RecurrenceNone, nil
	}
	if !r.valid() {
		return "", ErrInvalidInput
	}
	return r, nil
}

// Priority solo se usa para desempatar tareas en el mismo instante.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return strconv.Itoa(int(p))
	}
}

// ParsePriority acepta "3", "high" o el formato del formulario "high (3)".
func ParsePriority(s string) (Priority, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if i := strings.Index(v, "("); i >= 0 {
		v = strings.TrimSpace(strings.TrimSuffix(v[i+1:], ")"))
	}

	var p Priority
	switch v {
	case "low":
		p = PriorityLow
	case "medium":
		p = PriorityMedium
	case "high":
		p = PriorityHigh
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, ErrInvalidInput
		}
		p = Priority(n)
	}

	if !p.valid() {
		return 0, ErrInvalidInput
	}
	return p, nil
}
