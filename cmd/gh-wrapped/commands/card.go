package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gh-wrapped/internal/compositor"
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/report"
	"gh-wrapped/internal/share"
)

var (
	cardLang   string
	cardOut    string
	cardHTML   bool
	cardReport bool
)

var cardCmd = &cobra.Command{
	Use:   "card <username>",
	Short: "Render the share card for a user without the quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		lang := i18n.Language(cardLang)
		if cardLang == "" {
			store, p, err := openPrefs(ctx)
			if err != nil {
				return err
			}
			store.Close()
			lang = p.Language
		}
		t := tableFor(lang)

		r, err := statsClient.FetchStats(ctx, args[0], cfg.Year)
		if err != nil {
			return err
		}

		if cardReport {
			if err := report.WriteText(cmd.OutOrStdout(), r, t); err != nil {
				return err
			}
		}

		comp, err := compositor.New(nil)
		if err != nil {
			return err
		}
		png, err := comp.Compose(ctx, r, t)
		if err != nil {
			return err
		}

		out := cardOut
		if out == "" {
			out = filepath.Join(cfg.DownloadDir, share.FileName(cfg.Product, cfg.Year, r.Username))
		}
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("write card: %w", err)
		}
		log.Info().Str("path", out).Msg("Share card written")
		fmt.Fprintln(cmd.OutOrStdout(), out)

		if cardHTML {
			path, err := exportHTML(r, t, filepath.Dir(out), cfg.Product, cfg.Year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	cardCmd.Flags().StringVarP(&cardLang, "lang", "l", "", "language (tr or en); defaults to the saved preference")
	cardCmd.Flags().StringVarP(&cardOut, "output", "o", "", "output PNG path")
	cardCmd.Flags().BoolVar(&cardHTML, "html", false, "also export the report as HTML")
	cardCmd.Flags().BoolVar(&cardReport, "report", false, "print the text report to stdout")
}
