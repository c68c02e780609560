package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/minihab/internal/cli"
	"github.com/julianstephens/minihab/internal/constants"
	"github.com/julianstephens/minihab/internal/logger"
	"github.com/julianstephens/minihab/internal/storage"
	"github.com/julianstephens/minihab/internal/storage/postgres"
	"github.com/julianstephens/minihab/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"path" default:"~/.config/minihab/minihab.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize minihab storage."`
	Today    cli.TodayCmd    `cmd:"" help:"Show today's habits and streaks." default:"1"`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits."`
	Focus    cli.FocusCmd    `cmd:"" help:"Run a focus countdown for a habit."`
	Mark     cli.MarkCmd     `cmd:"" help:"Mark a habit complete for today without a session."`
	Log      cli.LogCmd      `cmd:"" help:"Show the completion grid."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show habit statistics."`
	Template cli.TemplateCmd `cmd:"" help:"Browse and use built-in habit templates."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Show or update the user profile."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Micro-habit tracker: tiny daily actions, short focus sessions, streaks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":               constants.Version,
			"default_focus_minutes": strconv.Itoa(constants.DefaultFocusMinutes),
		},
	)

	// Initialize storage based on config format
	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if postgres.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use environment variables (PGPASSWORD) or a .pgpass file instead.\n")
			os.Exit(1)
		}
		store = postgres.New(CLI.Config)
	} else {
		store = sqlite.NewStore(CLI.Config)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: store.GetConfigPath(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
