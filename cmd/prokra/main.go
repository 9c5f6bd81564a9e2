package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"prokra/internal/chat"
	"prokra/internal/logging"
	"prokra/internal/scheduler"
	"prokra/internal/storage"
	"prokra/internal/update"
)

func main() {
	cmd := &cli.Command{
		Name:  "prokra",
		Usage: "Прокрастинатор Онлайн: single-session task TUI with a scripted chat buddy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog level (trace, debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append JSON logs to this file instead of stderr",
			},
			&cli.IntFlag{
				Name:  "reply-delay-ms",
				Usage: "delay before the chat buddy answers",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "upcoming-limit",
				Usage: "how many upcoming tasks the calendar page lists",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "desktop-notifications",
				Usage: "mirror in-app notifications to the desktop",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "prokra: %v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, c *cli.Command) error {
	log, closeLog, err := logging.New(c.String("log-level"), c.String("log-file"))
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	if v := c.Int("reply-delay-ms"); v > 0 {
		cfg.ReplyDelayMS = v
	}
	if v := c.Int("upcoming-limit"); v > 0 {
		cfg.UpcomingLimit = v
	}
	if c.Bool("desktop-notifications") {
		cfg.DesktopNotifications = true
	}

	repo, err := storage.OpenMemory()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("closing store")
		}
	}()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithConfig(
		repo,
		engine,
		chat.NewCannedResponder(time.Now().UnixNano()),
		notifier,
		cfg,
		logging.Component(log, "app"),
	)

	log.Info().Int("reply_delay_ms", cfg.ReplyDelayMS).Msg("starting session")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info().Msg("session ended")
	return nil
}
