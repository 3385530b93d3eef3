package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-care-planner/internal/domain/diagnostics"
)

type ConflictsRepo struct {
	db *sql.DB
}

func NewConflictsRepo(db *sql.DB) *ConflictsRepo {
	return &ConflictsRepo{db: db}
}

// EnsureSchema crea la tabla del journal si no existe (no hay migrador todavía).
func (r *ConflictsRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS pet_conflicts (
			id                TEXT PRIMARY KEY,
			pet_id            INTEGER NOT NULL,
			pet_name          TEXT NOT NULL,
			task_id           INTEGER NOT NULL,
			task_description  TEXT NOT NULL,
			other_task_id     INTEGER NOT NULL,
			other_description TEXT NOT NULL,
			message           TEXT NOT NULL,
			detected_at       TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS pet_conflicts_detected_at_idx ON pet_conflicts (detected_at DESC)
	`)
	return err
}

func (r *ConflictsRepo) Create(ctx context.Context, rec diagnostics.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_conflicts (
			id,
			pet_id, pet_name,
			task_id, task_description,
			other_task_id, other_description,
			message, detected_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.PetID,
		rec.PetName,
		rec.TaskID,
		rec.TaskDescription,
		rec.OtherTaskID,
		rec.OtherDescription,
		rec.Message,
		rec.DetectedAt,
	)
	return err
}

const listColumns = `id, pet_id, pet_name, task_id, task_description, other_task_id, other_description, message, detected_at`

// listQuery arma el SELECT del journal: filtro opcional por mascota, más nuevo
// primero y LIMIT acotado a [1, MaxLimit]. Los placeholders se numeran en orden.
func listQuery(filter diagnostics.ListFilter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString("SELECT " + listColumns + " FROM pet_conflicts")

	args := []any{}
	if name := strings.TrimSpace(filter.PetName); name != "" {
		args = append(args, name)
		sb.WriteString(fmt.Sprintf(" WHERE pet_name = $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = diagnostics.DefaultLimit
	}
	if limit > diagnostics.MaxLimit {
		limit = diagnostics.MaxLimit
	}
	args = append(args, limit)

	sb.WriteString(" ORDER BY detected_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))

	return sb.String(), args
}

func (r *ConflictsRepo) List(ctx context.Context, filter diagnostics.ListFilter) ([]diagnostics.Record, error) {
	query, args := listQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]diagnostics.Record, 0)
	for rows.Next() {
		var rec diagnostics.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.PetID,
			&rec.PetName,
			&rec.TaskID,
			&rec.TaskDescription,
			&rec.OtherTaskID,
			&rec.OtherDescription,
			&rec.Message,
			&rec.DetectedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
