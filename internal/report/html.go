package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

var reportTmpl = template.Must(
	template.New("report").
		Funcs(template.FuncMap{
			"pct":    func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
			"isKind": func(k Kind, name string) bool { return kindNames[name] == k },
		}).
		Parse(reportTemplate),
)

var kindNames = map[string]Kind{
	"counter":  KindCounter,
	"summary":  KindSummaryItem,
	"repo":     KindRepoCard,
	"created":  KindCreatedRepo,
	"org":      KindOrg,
	"message":  KindMessage,
	"language": KindLanguageBar,
	"month":    KindMonthBar,
	"persona":  KindPersona,
	"notice":   KindNotice,
}

type pageViewModel struct {
	Lang      string
	Title     string
	Heading   string
	Subtitle  string
	Name      string
	Handle    string
	AvatarURL string
	Sections  []Section
}

// RenderHTML produces a standalone dashboard page. Service and user text is
// escaped by context; unsafe link targets are replaced.
func RenderHTML(r *stats.Report, t *i18n.Table) ([]byte, error) {
	vm := pageViewModel{
		Lang:      string(t.Lang),
		Title:     t.Title,
		Heading:   t.ResultsTitle,
		Subtitle:  t.ResultsSubtitle,
		Name:      r.DisplayName(),
		Handle:    "@" + r.Username,
		AvatarURL: r.UserInfo.AvatarURL,
		Sections:  Resolve(t, Build(r)),
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
