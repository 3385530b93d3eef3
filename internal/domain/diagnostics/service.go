package diagnostics

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-care-planner/internal/domain/scheduling"
	"pet-care-planner/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time

	// pares ya guardados: la agenda se regenera en cada lectura y no debe
	// duplicar el journal.
	mu       sync.Mutex
	recorded map[pairKey]Record
}

// pairKey identifica un conflicto: mascota + par de ids sin orden. Los ids no se
// reusan y completar es terminal, así que un par no vuelve a aparecer distinto.
type pairKey struct {
	petID  int
	lo, hi int
}

func keyOf(c scheduling.Conflict) pairKey {
	k := pairKey{petID: c.PetID, lo: c.Task.ID, hi: c.Other.ID}
	if k.lo > k.hi {
		k.lo, k.hi = k.hi, k.lo
	}
	return k
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		log:      log,
		now:      time.Now,
		recorded: make(map[pairKey]Record),
	}
}

// Record loguea el conflicto (warn) y lo guarda en el journal. Un par ya guardado
// devuelve el registro existente sin loguear ni escribir de nuevo.
func (s *Service) Record(ctx context.Context, c scheduling.Conflict) (Record, error) {
	key := keyOf(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.recorded[key]; ok {
		return prev, nil
	}

	r := Record{
		ID:               uuid.NewString(),
		PetID:            c.PetID,
		PetName:          c.PetName,
		TaskID:           c.Task.ID,
		TaskDescription:  c.Task.Describe(),
		OtherTaskID:      c.Other.ID,
		OtherDescription: c.Other.Describe(),
		Message:          c.Message(),
		DetectedAt:       s.now(),
	}

	s.log.Warn("task conflict detected", map[string]any{
		"pet":        r.PetName,
		"task_id":    r.TaskID,
		"task":       r.TaskDescription,
		"other_id":   r.OtherTaskID,
		"other_task": r.OtherDescription,
	})

	// Si falla no se marca: la próxima detección reintenta.
	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	s.recorded[key] = r
	return r, nil
}

// Reporter adapta el Service a scheduling.Reporter usando ctx para el journal.
// Un fallo al guardar se loguea y no corta la generación de la agenda.
func (s *Service) Reporter(ctx context.Context) scheduling.Reporter {
	return scheduling.ReporterFunc(func(c scheduling.Conflict) {
		if _, err := s.Record(ctx, c); err != nil {
			s.log.Error("conflict journal write failed", map[string]any{
				"pet":   c.PetName,
				"error": err.Error(),
			})
		}
	})
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	filter.PetName = strings.TrimSpace(filter.PetName)
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return s.repo.List(ctx, filter)
}
