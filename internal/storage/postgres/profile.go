package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/storage"
)

func (s *Store) GetProfile() (models.UserProfile, error) {
	rows, err := s.db.Query("SELECT key, value FROM profile")
	if err != nil {
		return models.UserProfile{}, err
	}
	defer rows.Close()

	profile := models.UserProfile{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserProfile{}, err
		}
		switch key {
		case "nickname":
			profile.Nickname = value
		case "notifications_enabled":
			profile.NotificationsEnabled = value == "true"
		case "is_first_launch":
			profile.IsFirstLaunch = value == "true"
		case "created_at":
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return models.UserProfile{}, fmt.Errorf("parsing created_at: %w", err)
			}
			profile.CreatedAt = t
		case "updated_at":
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return models.UserProfile{}, fmt.Errorf("parsing updated_at: %w", err)
			}
			profile.UpdatedAt = t
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.UserProfile{}, err
	}

	if count == 0 {
		return models.UserProfile{}, storage.ErrProfileNotFound
	}

	return profile, nil
}

func (s *Store) SaveProfile(profile models.UserProfile) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO profile (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	entries := [][2]string{
		{"nickname", profile.Nickname},
		{"notifications_enabled", fmt.Sprintf("%v", profile.NotificationsEnabled)},
		{"is_first_launch", fmt.Sprintf("%v", profile.IsFirstLaunch)},
		{"created_at", profile.CreatedAt.UTC().Format(time.RFC3339)},
		{"updated_at", profile.UpdatedAt.UTC().Format(time.RFC3339)},
	}
	for _, e := range entries {
		if _, err := stmt.Exec(e[0], e[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
