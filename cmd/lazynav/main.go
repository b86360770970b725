package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/lazynav/internal/config"
	"github.com/jask/lazynav/internal/demo"
	"github.com/jask/lazynav/internal/history"
	"github.com/jask/lazynav/internal/i18n"
	"github.com/jask/lazynav/internal/logging"
	"github.com/jask/lazynav/link"
	"github.com/jask/lazynav/nav"
	"github.com/jask/lazynav/screens"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dbPath, logPath, locale string

	root := &cobra.Command{
		Use:   "lazynav",
		Short: "Stack navigation with lazily constructed destinations",
		Long: `lazynav is a terminal demo of lazily constructed navigation
destinations. Menu rows are links: the screen behind a link is built
on first open, resolves to the same instance while presented, and is
torn down again when dismissed.

Examples:
  lazynav                        open with config defaults
  lazynav --locale es            force the Spanish catalog
  lazynav --db /tmp/visits.db    use a scratch visit store
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dbPath, logPath, locale)
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "visit store path (default: from config)")
	root.PersistentFlags().StringVar(&logPath, "log", "", "debug log path (default: from config)")
	root.PersistentFlags().StringVar(&locale, "locale", "", "UI locale (default: from config)")
	root.SilenceUsage = true

	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print lazynav version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("lazynav %s\n", version)
		},
	}
}

func run(dbPath, logPath, locale string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if dbPath != "" {
		cfg.History.Path = dbPath
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if locale != "" {
		cfg.UI.Locale = locale
	}

	logger, closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := history.RunMigrations(cfg.History.Path, "internal/history/migrations"); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	store := history.NewStore(db)

	tr, err := i18n.NewTranslator()
	if err != nil {
		return fmt.Errorf("translator: %w", err)
	}

	root := buildRootMenu(ctx, cfg, store, tr, logging.Component(logger, "visits"))

	keys := nav.NewKeyRegistry(nav.DefaultBindings())
	keys.Register(nav.KeyBinding{Keys: []string{"enter"}, Action: "open", Description: "open link", Scopes: []string{"menu:*"}})
	keys.Register(nav.KeyBinding{Keys: []string{"/"}, Action: "find", Description: "find", Scopes: []string{"menu:*"}})
	keys.Register(nav.KeyBinding{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: []string{"menu:*", "screen:*"}})

	m := nav.NewModel(root, keys,
		nav.WithAppName("lazynav"),
		nav.WithLogger(logging.Component(logger, "nav")),
	)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// buildRootMenu wires the demo menus. Destination producers close over
// the store and config; nothing behind a link exists until the link is
// opened.
func buildRootMenu(ctx context.Context, cfg config.Config, store *history.Store, tr link.Translator, log zerolog.Logger) *screens.Menu {
	locale := cfg.UI.Locale

	t := func(key, fallback string) string {
		text, err := tr.Translate(locale, key)
		if err != nil || text == "" {
			return fallback
		}
		return text
	}
	opened := func(title string) string {
		text, err := tr.Translate(locale, "status.opened", title)
		if err != nil || text == "" {
			return "Opened " + title
		}
		return text
	}

	record := func(linkID, title string) tea.Cmd {
		return func() tea.Msg {
			if err := store.Record(ctx, linkID, title, history.Now()); err != nil {
				log.Err(err).Str("title", title).Msg("record visit")
				return nav.StatusMsg{Text: err.Error(), IsErr: true}
			}
			log.Debug().Str("link_id", linkID).Str("title", title).Msg("visit recorded")
			return nav.StatusMsg{Text: opened(title)}
		}
	}

	opts := []link.Option{link.WithTranslator(tr, locale), link.WithOnActivate(record)}

	historyLink := link.NewTitleKey("menu.history", func() nav.Screen {
		return demo.NewHistoryScreen(ctx, store)
	}, opts...)

	toolsLink := link.NewTitleKey("menu.tools", func() nav.Screen {
		stats := link.NewTitleKey("menu.stats", func() nav.Screen {
			return demo.NewStatsScreen(ctx, store)
		}, opts...)
		settings := link.NewTitleKey("menu.settings", func() nav.Screen {
			return demo.NewSettingsScreen(cfg, tr)
		}, opts...)
		return screens.NewMenu(t("menu.tools", "Tools"), stats, settings)
	}, opts...)

	aboutLink := link.NewTitleKey("menu.about", func() nav.Screen {
		return demo.NewAboutScreen(version, cfg.History.Path, cfg.Log.Path)
	}, opts...)

	return screens.NewMenu(t("menu.main", "Main Menu"), historyLink, toolsLink, aboutLink)
}
