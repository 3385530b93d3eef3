package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "pet-care-planner/docs"

	mem "pet-care-planner/internal/adapters/storage/memory"
	pg "pet-care-planner/internal/adapters/storage/postgres"
	"pet-care-planner/internal/domain/diagnostics"
	"pet-care-planner/internal/domain/planner"
	"pet-care-planner/internal/fixtures"
	"pet-care-planner/internal/middleware"
	"pet-care-planner/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, el journal de conflictos va a Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil = Nop

	// Límite por defecto de GET /conflicts (0 = diagnostics.DefaultLimit).
	ConflictLimit int

	// Opcional: hogar precargado. LastTaskID fija desde dónde siguen los ids.
	Household *fixtures.Household
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var conflictRepo diagnostics.Repository
	if opts.DB != nil {
		repo := pg.NewConflictsRepo(opts.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := repo.EnsureSchema(ctx)
		cancel()

		if err != nil {
			log.Error("conflict journal schema failed, using memory", map[string]any{"error": err.Error()})
			conflictRepo = mem.NewConflictRepo()
		} else {
			conflictRepo = repo
		}
	} else {
		conflictRepo = mem.NewConflictRepo()
	}

	limit := opts.ConflictLimit
	if limit <= 0 || limit > diagnostics.MaxLimit {
		limit = diagnostics.DefaultLimit
	}

	// Services por módulo
	diagSvc := diagnostics.NewService(conflictRepo, log.With(map[string]any{"module": "diagnostics"}))
	plannerSvc := planner.NewService(diagSvc, log.With(map[string]any{"module": "planner"}))

	if h := opts.Household; h != nil && h.Owner != nil {
		if err := plannerSvc.Load(h.Owner, h.LastTaskID); err != nil {
			log.Error("household seed failed", map[string]any{"error": err.Error()})
		}
	}

	// Rutas por módulo
	planner.RegisterRoutes(r, plannerSvc)
	diagnostics.RegisterRoutes(r, diagSvc, limit)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
