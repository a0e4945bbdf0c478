package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gh-wrapped/internal/api"
	"gh-wrapped/internal/config"
	"gh-wrapped/internal/logging"
	"gh-wrapped/internal/prefs"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	noColor bool
	cfg     *config.AppConfig

	statsClient api.Client
)

var rootCmd = &cobra.Command{
	Use:   "gh-wrapped",
	Short: "Your GitHub year in review, in the terminal",
	Long: `gh-wrapped looks up a GitHub account through the Wrapped stats service,
quizzes you about your year, shows the full report and renders a shareable card.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		statsClient = api.NewClient(cfg.Service)

		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			noColor = true
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("service", cfg.Service.BaseURL).
			Msg("gh-wrapped starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// openPrefs opens the preference store and loads the saved values.
func openPrefs(ctx context.Context) (*prefs.Store, prefs.Preferences, error) {
	store, err := prefs.Open(cfg.DataPath)
	if err != nil {
		return nil, prefs.Defaults, err
	}
	p, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, prefs.Defaults, err
	}
	return store, p, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(runCmd, cardCmd, rateLimitCmd, prefsCmd)
}
