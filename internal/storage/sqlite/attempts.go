package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
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
		FROM attempts WHERE id = ?`, id)
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
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			completed_at = excluded.completed_at,
			duration_seconds = excluded.duration_seconds,
			status = excluded.status,
			notes = excluded.notes`,
		attempt.ID, attempt.HabitID,
		attempt.StartedAt.UTC().Format(time.RFC3339), attempt.CompletedAt.UTC().Format(time.RFC3339),
		attempt.DurationSeconds, string(attempt.Status), notes)
	return err
}

func (s *Store) GetAttempts(habitID string, from, to *time.Time) ([]models.Attempt, error) {
	query := `
		SELECT id, habit_id, started_at, completed_at, duration_seconds, status, notes
		FROM attempts WHERE 1=1`
	var args []any
	if habitID != "" {
		query += " AND habit_id = ?"
		args = append(args, habitID)
	}
	if from != nil {
		query += " AND completed_at >= ?"
		args = append(args, from.UTC().Format(time.RFC3339))
	}
	if to != nil {
		query += " AND completed_at < ?"
		args = append(args, to.UTC().Format(time.RFC3339))
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
	var startedAt, completedAt, status string
	var notes sql.NullString

	err := row.Scan(&a.ID, &a.HabitID, &startedAt, &completedAt, &a.DurationSeconds, &status, &notes)
	if err != nil {
		return models.Attempt{}, err
	}

	a.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return models.Attempt{}, fmt.Errorf("failed to parse started_at: %w", err)
	}
	a.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
	if err != nil {
		return models.Attempt{}, fmt.Errorf("failed to parse completed_at: %w", err)
	}
	a.Status = models.AttemptStatus(status)
	if notes.Valid {
		a.Notes = notes.String
	}

	return a, nil
}
