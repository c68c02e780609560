package cli

import (
	"fmt"
	"time"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" default:"1" help:"Show the current profile."`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile settings."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	profile, err := repo.CurrentProfile()
	if err != nil {
		return err
	}

	now := time.Now()
	fmt.Printf("Nickname:       %s\n", profile.Nickname)
	fmt.Printf("Notifications:  %v\n", profile.NotificationsEnabled)
	fmt.Printf("Member since:   %s (%d days)\n", profile.CreatedAt.Format("Jan 2, 2006"), profile.DaysUsingApp(now))
	return nil
}

type ProfileSetCmd struct {
	Nickname      *string `help:"Display name used in greetings."`
	Notifications *bool   `help:"Enable or disable reminders."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if c.Nickname == nil && c.Notifications == nil {
		fmt.Println("Nothing to change. Pass --nickname or --notifications.")
		return nil
	}

	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	profile, err := repo.UpdateProfile(c.Nickname, c.Notifications)
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated. Hello, %s!\n", profile.Nickname)
	return nil
}
