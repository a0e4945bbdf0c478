package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

// BarWidth is the number of cells a full terminal bar occupies.
const BarWidth = 30

// Bar draws a horizontal bar for a percentage in [0, 100].
func Bar(percent float64, width int) string {
	filled := int(math.Round(min(max(percent, 0), 100) / 100 * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// WriteText renders the dashboard as plain terminal text with counters at
// their final values.
func WriteText(w io.Writer, r *stats.Report, t *i18n.Table) error {
	p := &printer{w: w}
	p.line("%s", t.ResultsTitle)
	p.line("%s (@%s)", r.DisplayName(), r.Username)
	p.line("")
	if p.err != nil {
		return p.err
	}
	for _, sec := range Resolve(t, Build(r)) {
		if err := WriteSection(p.w, sec); err != nil {
			return err
		}
	}
	return nil
}

// WriteSection renders one resolved section.
func WriteSection(w io.Writer, sec Section) error {
	p := &printer{w: w}
	p.line("== %s ==", sec.Title)
	if sec.Empty != "" {
		p.line("  %s", sec.Empty)
		p.line("")
		return p.err
	}
	for _, e := range sec.Entries {
		switch e.Kind {
		case KindCounter, KindSummaryItem:
			p.line("  %-28s %s", e.Label, e.Value)
		case KindRepoCard:
			p.line("  %s: %s (%s)", e.Label, e.Text, e.Value)
		case KindCreatedRepo:
			p.line("  %s %s %s", e.Text, e.Tag, strings.Join(e.Stats, " "))
			if e.Detail != "" {
				p.line("    %s", e.Detail)
			}
		case KindOrg:
			p.line("  %s: %s %s", e.Text, e.Value, strings.Join(e.Stats, " "))
			if len(e.Items) > 0 {
				p.line("    %s", strings.Join(e.Items, ", "))
			}
		case KindMessage:
			p.line("  %q x%s", e.Text, e.Value)
		case KindLanguageBar:
			p.line("  %-12s %s %s", e.Text, Bar(e.Percent, BarWidth), e.Value)
		case KindMonthBar:
			p.line("  %-4s %s %d", e.Label, Bar(e.Percent, BarWidth), e.Raw)
		case KindPersona:
			p.line("  %s %s", e.Icon, e.Label)
			p.line("  %s", e.Detail)
		case KindNotice:
			p.line("  %s", e.Text)
		}
	}
	p.line("")
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
