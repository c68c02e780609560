package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/storage"
)

func (s *Store) AddAttempt(attempt models.Attempt) error {
	return s.UpdateAttempt(attempt)
}

func (s *Store) GetAttempt(id string) (models.Attempt, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, started_at, completed_at, duration_seconds, status, notes
		FROM attempts WHERE id = $1`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Attempt{}, storage.ErrNotFound
	}
	return a, err
}

func (s *Store) UpdateAttempt(attempt models.Attempt) error {
	var notes sql.NullString
	if attempt.Notes != "" {
		notes = sql.NullString{String: attempt.Notes, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO attempts (id, habit_id, started_at, completed_at, duration_seconds, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT(id) DO UPDATE SET
			completed_at = EXCLUDED.completed_at,
			duration_seconds = EXCLUDED.duration_seconds,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes`,
		attempt.ID, attempt.HabitID, attempt.StartedAt.UTC(), attempt.CompletedAt.UTC(),
		attempt.DurationSeconds, string(attempt.Status), notes)
	return err
}

func (s *Store) GetAttempts(habitID string, from, to *time.Time) ([]models.Attempt, error) {
	query := `
		SELECT id, habit_id, started_at, completed_at, duration_seconds, status, notes
		FROM attempts WHERE 1=1`
	var args []any
	if habitID != "" {
		args = append(args, habitID)
		query += placeholder(" AND habit_id = ", len(args))
	}
	if from != nil {
		args = append(args, from.UTC())
		query += placeholder(" AND completed_at >= ", len(args))
	}
	if to != nil {
		args = append(args, to.UTC())
		query += placeholder(" AND completed_at < ", len(args))
	}
	query += " ORDER BY completed_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []models.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func scanAttempt(row scanner) (models.Attempt, error) {
	var a models.Attempt
	var status string
	var notes sql.NullString

	err := row.Scan(&a.ID, &a.HabitID, &a.StartedAt, &a.CompletedAt, &a.DurationSeconds, &status, &notes)
	if err != nil {
		return models.Attempt{}, err
	}

	a.Status = models.AttemptStatus(status)
	if notes.Valid {
		a.Notes = notes.String
	}

	return a, nil
}
