package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gh-wrapped/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or toggle saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPrefs(cmd)
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved language and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPrefs(cmd)
	},
}

var prefsLangCmd = &cobra.Command{
	Use:   "lang",
	Short: "Toggle the interface language",
	RunE: func(cmd *cobra.Command, args []string) error {
		return togglePref(cmd, func(s *prefs.Store, ctx context.Context, p prefs.Preferences) (prefs.Preferences, error) {
			return s.ToggleLanguage(ctx, p)
		})
	},
}

var prefsThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between the dark and light theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		return togglePref(cmd, func(s *prefs.Store, ctx context.Context, p prefs.Preferences) (prefs.Preferences, error) {
			return s.ToggleTheme(ctx, p)
		})
	},
}

func showPrefs(cmd *cobra.Command) error {
	store, p, err := openPrefs(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()
	printPrefs(cmd, p)
	return nil
}

func togglePref(cmd *cobra.Command, fn func(*prefs.Store, context.Context, prefs.Preferences) (prefs.Preferences, error)) error {
	store, p, err := openPrefs(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()
	p, err = fn(store, cmd.Context(), p)
	if err != nil {
		return err
	}
	printPrefs(cmd, p)
	return nil
}

func printPrefs(cmd *cobra.Command, p prefs.Preferences) {
	fmt.Fprintf(cmd.OutOrStdout(), "lang:  %s\ntheme: %s\n", p.Language, p.Theme)
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd, prefsLangCmd, prefsThemeCmd)
}
