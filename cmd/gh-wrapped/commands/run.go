package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"gh-wrapped/internal/compositor"
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/prefs"
	"gh-wrapped/internal/preview"
	"gh-wrapped/internal/report"
	"gh-wrapped/internal/session"
	"gh-wrapped/internal/share"
	"gh-wrapped/internal/stats"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive lookup, quiz and report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// app glues the controller to the terminal and the share actions.
type app struct {
	term    *terminal
	ctrl    *session.Controller
	store   *prefs.Store
	comp    *compositor.Compositor
	preview *preview.Server
	sharer  *share.Sharer

	mu       sync.Mutex
	prefs    prefs.Preferences
	answered bool
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	store, p, err := openPrefs(ctx)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	comp, err := compositor.New(nil)
	if err != nil {
		return err
	}

	srv := preview.New()
	if err := srv.Listen(cfg.PreviewAddr); err != nil {
		return err
	}

	a := &app{
		term:    newTerminal(out, p, noColor),
		store:   store,
		comp:    comp,
		preview: srv,
		prefs:   p,
		sharer: &share.Sharer{
			Opener:    share.BrowserOpener{},
			Clipboard: &share.SystemClipboard{},
			Dir:       cfg.DownloadDir,
			Product:   cfg.Product,
			Year:      cfg.Year,
			Delay:     share.LinkedInDelay,
		},
	}
	a.ctrl = session.NewController(statsClient, a.term, tableFor(p.Language), cfg.Year, nil)

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(ctx) })
	g.Go(func() error {
		defer cancel()
		return a.loop(ctx, in)
	})
	return g.Wait()
}

func (a *app) loop(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.handle(ctx, strings.TrimSpace(line)); quit {
				a.preview.Revoke()
				return nil
			}
		}
	}
}

// handle processes one input line and reports whether to quit.
func (a *app) handle(ctx context.Context, line string) bool {
	switch line {
	case ":q", ":quit":
		return true
	case ":lang":
		a.toggle(ctx, a.store.ToggleLanguage)
		return false
	case ":theme":
		a.toggle(ctx, a.store.ToggleTheme)
		return false
	case ":new":
		a.newSearch()
		return false
	}

	switch a.ctrl.State() {
	case session.Input:
		go a.lookup(ctx, line)
	case session.Loading:
	case session.Quiz:
		a.quizInput(ctx, line)
	case session.Report:
		return a.reportAction(ctx, line)
	}
	return false
}

func (a *app) toggle(ctx context.Context, fn func(context.Context, prefs.Preferences) (prefs.Preferences, error)) {
	a.mu.Lock()
	p, err := fn(ctx, a.prefs)
	if err != nil {
		a.mu.Unlock()
		log.Error().Err(err).Msg("Failed to save preference")
		a.term.ShowError(a.term.table.ErrGeneric)
		return
	}
	relabel := p.Language != a.prefs.Language
	a.prefs = p
	a.mu.Unlock()

	a.term.apply(p)
	a.ctrl.SetTable(tableFor(p.Language))
	if relabel {
		// The cached card carries the old language's text.
		a.preview.Revoke()
		a.ctrl.ReleaseImage()
	}

	switch a.ctrl.State() {
	case session.Input:
		a.term.Show(session.Input)
		a.term.FocusInput()
	case session.Report:
		a.term.Show(session.Report)
		a.term.dashboard(ctx, a.ctrl.Session().Report())
	}
}

func (a *app) lookup(ctx context.Context, username string) {
	err := a.ctrl.Submit(ctx, username)
	switch {
	case errors.Is(err, session.ErrSuperseded):
		return
	case err != nil:
		a.term.FocusInput()
		return
	}
	a.mu.Lock()
	a.answered = false
	a.mu.Unlock()
	a.showQuestionOrReport(ctx)
}

func (a *app) showQuestionOrReport(ctx context.Context) {
	s := a.ctrl.Session()
	if s == nil {
		return
	}
	if q, ok := s.Quiz().Current(); ok && a.ctrl.State() == session.Quiz {
		a.term.question(q, s.Quiz().Index(), s.Quiz().Len())
		return
	}
	a.term.score(s.Quiz().Score(), s.Quiz().Len())
	a.term.dashboard(ctx, s.Report())
}

func (a *app) quizInput(ctx context.Context, line string) {
	a.mu.Lock()
	answered := a.answered
	a.mu.Unlock()

	if answered {
		if _, err := a.ctrl.Next(); err != nil {
			log.Debug().Err(err).Msg("Advance rejected")
			return
		}
		a.mu.Lock()
		a.answered = false
		a.mu.Unlock()
		a.showQuestionOrReport(ctx)
		return
	}

	s := a.ctrl.Session()
	if s == nil {
		return
	}
	q, ok := s.Quiz().Current()
	if !ok {
		return
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(q.Options) {
		a.term.question(q, s.Quiz().Index(), s.Quiz().Len())
		return
	}
	res, err := a.ctrl.Answer(q.Options[n-1])
	if err != nil {
		log.Debug().Err(err).Msg("Answer rejected")
		return
	}
	a.mu.Lock()
	a.answered = true
	a.mu.Unlock()
	a.term.feedback(res)
}

func (a *app) reportAction(ctx context.Context, line string) bool {
	s := a.ctrl.Session()
	if s == nil {
		return false
	}
	r := s.Report()
	t := a.term.table

	switch strings.ToLower(line) {
	case "p":
		png, ok := a.image(ctx)
		if !ok {
			break
		}
		u, err := a.preview.Publish(png)
		if err != nil {
			a.term.ShowError(t.ImageFailed)
			break
		}
		a.term.info(t.PreviewTitle + ": " + u)
		if err := a.sharer.Opener.Open(u); err != nil {
			log.Warn().Err(err).Msg("Could not open browser")
		}
	case "x":
		if err := a.sharer.PostToX(share.Text(t, r.Stats)); err != nil {
			log.Warn().Err(err).Msg("Could not open browser")
			a.term.info(share.XIntentURL(share.Text(t, r.Stats)))
		}
	case "l":
		png, ok := a.image(ctx)
		if !ok {
			break
		}
		res, err := a.sharer.CopyAndOpen(ctx, r.Username, png, func() { a.term.info(t.PasteHint) })
		switch {
		case err != nil:
			log.Error().Err(err).Msg("Share failed")
			a.term.ShowError(t.ImageFailed)
		case res.SavedPath != "":
			a.term.info(t.Downloaded + " " + res.SavedPath)
		}
	case "d":
		png, ok := a.image(ctx)
		if !ok {
			break
		}
		path, err := a.sharer.Save(r.Username, png)
		if err != nil {
			log.Error().Err(err).Msg("Save failed")
			a.term.ShowError(t.ImageFailed)
			break
		}
		a.term.info(t.Downloaded + " " + path)
	case "h":
		path, err := exportHTML(r, t, cfg.DownloadDir, cfg.Product, cfg.Year)
		if err != nil {
			log.Error().Err(err).Msg("HTML export failed")
			a.term.ShowError(t.ErrGeneric)
			break
		}
		a.term.info(path)
	case "n":
		a.newSearch()
		return false
	case "q":
		return true
	}
	a.term.menu()
	return false
}

// image returns the session's share image, composing it on first use.
func (a *app) image(ctx context.Context) ([]byte, bool) {
	s := a.ctrl.Session()
	if s == nil {
		return nil, false
	}
	if png := s.Image(); png != nil {
		return png, true
	}
	a.term.info(a.term.table.Generating)
	png, err := a.comp.Compose(ctx, s.Report(), a.term.table)
	if err != nil {
		a.term.ShowError(a.term.table.ImageFailed)
		return nil, false
	}
	if err := a.ctrl.SetImage(png); err != nil {
		return nil, false
	}
	return png, true
}

func (a *app) newSearch() {
	a.preview.Revoke()
	a.ctrl.ReleaseImage()
	a.mu.Lock()
	a.answered = false
	a.mu.Unlock()
	a.ctrl.NewSearch()
}

// exportHTML writes the standalone dashboard page next to the images.
func exportHTML(r *stats.Report, t *i18n.Table, dir, product string, year int) (string, error) {
	page, err := report.RenderHTML(r, t)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d-%s.html", product, year, r.Username))
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return path, nil
}
