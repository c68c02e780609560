package models

import (
	"fmt"
	"time"
)

// UserProfile is the single-row settings entity. Exactly one instance
// exists per installation; the repository creates it lazily with defaults
// on first access.
type UserProfile struct {
	Nickname             string    `json:"nickname"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	IsFirstLaunch        bool      `json:"is_first_launch"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Greeting returns a time-of-day greeting addressed to the user.
func (p UserProfile) Greeting(now time.Time) string {
	var timeOfDay string
	switch hour := now.Hour(); {
	case hour >= 6 && hour < 12:
		timeOfDay = "Good morning"
	case hour >= 12 && hour < 18:
		timeOfDay = "Good afternoon"
	case hour >= 18 && hour < 22:
		timeOfDay = "Good evening"
	default:
		timeOfDay = "Burning the midnight oil"
	}
	return fmt.Sprintf("%s, %s", timeOfDay, p.Nickname)
}

// DaysUsingApp returns the number of days since the profile was created,
// never less than 1.
func (p UserProfile) DaysUsingApp(now time.Time) int {
	days := int(now.Sub(p.CreatedAt).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
