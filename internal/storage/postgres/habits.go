package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/storage"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, title, micro_action, emoji, focus_minutes, theme_color, created_at, is_active, sort_order
		FROM habits WHERE id = $1`, id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.ErrNotFound
	}
	return h, err
}

func (s *Store) GetActiveHabits() ([]models.Habit, error) {
	return s.queryHabits(`
		SELECT id, title, micro_action, emoji, focus_minutes, theme_color, created_at, is_active, sort_order
		FROM habits WHERE is_active
		ORDER BY sort_order`)
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	if !includeArchived {
		return s.GetActiveHabits()
	}
	return s.queryHabits(`
		SELECT id, title, micro_action, emoji, focus_minutes, theme_color, created_at, is_active, sort_order
		FROM habits
		ORDER BY is_active DESC, sort_order, created_at`)
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, title, micro_action, emoji, focus_minutes, theme_color, created_at, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT(id) DO UPDATE SET
			title = EXCLUDED.title,
			micro_action = EXCLUDED.micro_action,
			emoji = EXCLUDED.emoji,
			focus_minutes = EXCLUDED.focus_minutes,
			theme_color = EXCLUDED.theme_color,
			is_active = EXCLUDED.is_active,
			sort_order = EXCLUDED.sort_order`,
		habit.ID, habit.Title, habit.MicroAction, habit.Emoji, habit.FocusMinutes,
		habit.ThemeColor, habit.CreatedAt.UTC(), habit.IsActive, habit.SortOrder)
	return err
}

func (s *Store) SetSortOrders(orders map[string]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE habits SET sort_order = $1 WHERE id = $2`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for id, order := range orders {
		result, err := stmt.Exec(order, id)
		if err != nil {
			return err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("habit %s not found", id)
		}
	}

	return tx.Commit()
}

func (s *Store) PurgeHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM attempts WHERE habit_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found")
	}

	return tx.Commit()
}

func (s *Store) queryHabits(query string, args ...any) ([]models.Habit, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	err := row.Scan(&h.ID, &h.Title, &h.MicroAction, &h.Emoji, &h.FocusMinutes,
		&h.ThemeColor, &h.CreatedAt, &h.IsActive, &h.SortOrder)
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}
