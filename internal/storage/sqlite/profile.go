package sqlite

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

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO profile (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("nickname", profile.Nickname); err != nil {
		return err
	}
	if _, err := stmt.Exec("notifications_enabled", fmt.Sprintf("%v", profile.NotificationsEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec("is_first_launch", fmt.Sprintf("%v", profile.IsFirstLaunch)); err != nil {
		return err
	}
	if _, err := stmt.Exec("created_at", profile.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := stmt.Exec("updated_at", profile.UpdatedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}
