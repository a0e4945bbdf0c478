package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/prefs"
	"gh-wrapped/internal/quiz"
	"gh-wrapped/internal/report"
	"gh-wrapped/internal/session"
	"gh-wrapped/internal/stats"
)

// terminal is the line-oriented view. Writes are serialized because the
// lookup goroutine and the input loop both print.
type terminal struct {
	mu      sync.Mutex
	out     io.Writer
	table   *i18n.Table
	pal     palette
	counter report.CounterConfig
}

func newTerminal(out io.Writer, p prefs.Preferences, plain bool) *terminal {
	return &terminal{
		out:     out,
		table:   tableFor(p.Language),
		pal:     paletteFor(p.Theme, plain),
		counter: report.DefaultCounter,
	}
}

// tableFor returns the string table of lang for the configured year.
func tableFor(lang i18n.Language) *i18n.Table {
	if cfg == nil {
		return i18n.Lookup(lang)
	}
	return i18n.LookupYear(lang, cfg.Year)
}

func (t *terminal) apply(p prefs.Preferences) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table = tableFor(p.Language)
	t.pal = paletteFor(p.Theme, t.pal.plain)
}

func (t *terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}

func (t *terminal) Show(s session.State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch s {
	case session.Input:
		fmt.Fprintf(t.out, "\n%s\n%s\n", t.pal.title(t.table.Title), t.pal.paint(t.pal.muted, t.table.Subtitle))
	case session.Quiz:
		fmt.Fprintf(t.out, "\n%s\n", t.pal.title(t.table.QuizTitle))
	case session.Report:
		fmt.Fprintf(t.out, "\n%s\n%s\n", t.pal.title(t.table.ResultsTitle), t.pal.paint(t.pal.muted, t.table.ResultsSubtitle))
	}
}

func (t *terminal) ShowError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, t.pal.paint(t.pal.bad, "✗ "+msg))
}

func (t *terminal) ClearError() {}

func (t *terminal) SetLoading(on bool) {
	if !on {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, t.pal.paint(t.pal.muted, "⏳ "+t.table.Loading))
}

func (t *terminal) FocusInput() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s: ", t.table.InputPlaceholder)
}

func (t *terminal) info(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, t.pal.paint(t.pal.good, msg))
}

func (t *terminal) question(q quiz.Question, index, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", t.pal.paint(t.pal.muted, fmt.Sprintf("[%d/%d]", index+1, total)), q.Prompt)
	for i, o := range q.Options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprint(t.out, "> ")
}

func (t *terminal) feedback(res quiz.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if res.Correct {
		fmt.Fprintln(t.out, t.pal.paint(t.pal.good, t.table.QuizCorrect))
	} else {
		fmt.Fprintln(t.out, t.pal.paint(t.pal.bad, t.table.QuizWrong))
	}
	fmt.Fprintf(t.out, "%s\n[%s] ", res.Explanation, t.table.QuizContinue)
}

func (t *terminal) score(score, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := i18n.Fill(t.table.QuizScore, "score", fmt.Sprint(score), "total", fmt.Sprint(total))
	fmt.Fprintln(t.out, t.pal.title(msg))
}

// dashboard prints the whole report. Hero counters count up together and
// chart sections appear after their reveal delay.
func (t *terminal) dashboard(ctx context.Context, r *stats.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "%s %s\n\n", t.pal.paint(colorBold, r.DisplayName()), t.pal.paint(t.pal.muted, "@"+r.Username))
	for _, sec := range report.Resolve(t.table, report.Build(r)) {
		switch sec.ID {
		case report.RegionHero:
			t.heroLocked(ctx, sec)
			continue
		case report.RegionLanguages:
			wait(ctx, report.LanguageRevealDelay)
		case report.RegionMonthly:
			wait(ctx, report.MonthRevealDelay)
		}
		t.sectionLocked(sec)
	}
	t.menuLocked()
}

func (t *terminal) heroLocked(ctx context.Context, sec report.Section) {
	fmt.Fprintln(t.out, t.pal.title("== "+sec.Title+" =="))
	frames := make([][]int, len(sec.Entries))
	for i, e := range sec.Entries {
		frames[i] = t.counter.Frames(e.Raw)
	}

	line := func(step int) string {
		parts := make([]string, len(sec.Entries))
		for i, e := range sec.Entries {
			parts[i] = fmt.Sprintf("%s %s", t.pal.paint(colorBold, t.table.FormatInt(frames[i][step])), e.Label)
		}
		return strings.Join(parts, " · ")
	}

	last := len(frames[0]) - 1
	if t.pal.plain || t.counter.Interval() <= 0 {
		fmt.Fprintf(t.out, "  %s\n\n", line(last))
		return
	}

	ticker := time.NewTicker(t.counter.Interval())
	defer ticker.Stop()
	for step := 0; step <= last; step++ {
		select {
		case <-ctx.Done():
			step = last
		case <-ticker.C:
		}
		fmt.Fprintf(t.out, "\r\033[K  %s", line(step))
	}
	fmt.Fprint(t.out, "\n\n")
}

func (t *terminal) sectionLocked(sec report.Section) {
	var b strings.Builder
	_ = report.WriteSection(&b, sec)
	text := b.String()
	if title := "== " + sec.Title + " =="; strings.HasPrefix(text, title) {
		text = t.pal.title(title) + strings.TrimPrefix(text, title)
	}
	text = strings.ReplaceAll(text, "█", t.pal.paint(t.pal.bar, "█"))
	fmt.Fprint(t.out, text)
}

func (t *terminal) menuLocked() {
	tb := t.table
	fmt.Fprintf(t.out, "[p] %s  [x] %s  [l] %s  [d] %s  [h] HTML  [n] %s  [q] ⏻\n> ",
		tb.PreviewTitle, tb.ShareX, tb.ShareLinkedIn, tb.Download, tb.NewSearch)
}

func (t *terminal) menu() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.menuLocked()
}

func wait(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
