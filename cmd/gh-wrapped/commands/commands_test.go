package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gh-wrapped/internal/api"
	"gh-wrapped/internal/config"
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/prefs"
	"gh-wrapped/internal/preview"
	"gh-wrapped/internal/quiz"
	"gh-wrapped/internal/report"
	"gh-wrapped/internal/session"
	"gh-wrapped/internal/share"
)

const payload = `{
  "username": "torvalds",
  "user_info": {"name": "Linus Torvalds"},
  "stats": {"total_commits": 2750, "total_repos": 12, "active_days": 301, "longest_streak": 44},
  "top_repos": {"most_commits": {"name": "linux", "count": 2500, "url": "u1"}},
  "languages": {"C": 88.4, "Shell": 6.1},
  "commit_analysis": {"most_common_messages": [{"message": "<b>fix</b>", "count": 3}], "monthly_distribution": {"May": 10}},
  "has_token": true
}`

func TestColorizePlain(t *testing.T) {
	p := paletteFor(prefs.Dark, true)
	if got := p.paint(p.good, "ok"); got != "ok" {
		t.Errorf("paint with plain palette = %q, want %q", got, "ok")
	}

	p = paletteFor(prefs.Light, false)
	if got := p.paint(p.good, "ok"); !strings.Contains(got, "\033[") {
		t.Errorf("paint with colors = %q, want ANSI codes", got)
	}
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	store, err := prefs.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	dir := t.TempDir()
	cfg = &config.AppConfig{Year: 2025, Product: "github-wrapped", DownloadDir: dir}

	var out bytes.Buffer
	term := newTerminal(&out, prefs.Defaults, true)
	term.counter = report.CounterConfig{}
	a := &app{
		term:    term,
		store:   store,
		preview: preview.New(),
		prefs:   prefs.Defaults,
		sharer:  &share.Sharer{Dir: dir, Product: "github-wrapped", Year: 2025},
	}
	a.ctrl = session.NewController(api.NewClient(api.Config{BaseURL: srv.URL}), term, i18n.Lookup(i18n.Primary), 2025, nil)
	return a, &out
}

func TestApp_QuizToReport(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	tr := i18n.Lookup(i18n.Turkish)

	a.lookup(ctx, "torvalds")
	require.Equal(t, session.Quiz, a.ctrl.State())
	require.Contains(t, out.String(), tr.Q1)

	qz := a.ctrl.Session().Quiz()
	for qz.Phase() != quiz.Complete {
		q, ok := qz.Current()
		require.True(t, ok)
		idx := 0
		for i, o := range q.Options {
			if o == q.Correct {
				idx = i + 1
			}
		}
		a.quizInput(ctx, "9")
		a.quizInput(ctx, strconv.Itoa(idx))
		a.quizInput(ctx, "")
	}

	require.Equal(t, session.Report, a.ctrl.State())
	text := out.String()
	require.Contains(t, text, "3/3")
	require.Contains(t, text, "2.750")
	require.Contains(t, text, "Linus Torvalds")
}

func TestApp_LanguageToggleRelabelsReport(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	a.lookup(ctx, "torvalds")
	for a.ctrl.State() == session.Quiz {
		q, _ := a.ctrl.Session().Quiz().Current()
		_, err := a.ctrl.Answer(q.Options[0])
		require.NoError(t, err)
		_, err = a.ctrl.Next()
		require.NoError(t, err)
	}

	out.Reset()
	require.False(t, a.handle(ctx, ":lang"))
	require.Equal(t, i18n.English, a.prefs.Language)
	require.Contains(t, out.String(), i18n.Lookup(i18n.English).ResultsTitle)
	require.Contains(t, out.String(), "2,750")

	saved, err := a.store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, i18n.English, saved.Language)
}

func TestApp_LanguageToggleDropsCachedCard(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t)
	require.NoError(t, a.preview.Listen("127.0.0.1:0"))
	sctx, stop := context.WithCancel(ctx)
	t.Cleanup(stop)
	go func() { _ = a.preview.Serve(sctx) }()

	a.lookup(ctx, "torvalds")
	for a.ctrl.State() == session.Quiz {
		q, _ := a.ctrl.Session().Quiz().Current()
		_, _ = a.ctrl.Answer(q.Correct)
		_, _ = a.ctrl.Next()
	}
	require.NoError(t, a.ctrl.SetImage([]byte("tr-card")))
	link, err := a.preview.Publish([]byte("tr-card"))
	require.NoError(t, err)
	path := link[strings.Index(link, "/preview/"):]

	require.False(t, a.handle(ctx, ":theme"))
	require.Equal(t, []byte("tr-card"), a.ctrl.Session().Image())

	require.False(t, a.handle(ctx, ":lang"))
	require.Nil(t, a.ctrl.Session().Image())
	rec := httptest.NewRecorder()
	a.preview.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApp_TablesFollowConfiguredYear(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	cfg.Year = 2024
	a.term.apply(a.prefs)
	a.ctrl.SetTable(tableFor(a.prefs.Language))

	a.lookup(ctx, "torvalds")
	require.Contains(t, out.String(), i18n.LookupYear(i18n.Turkish, 2024).Q1)
	require.NotContains(t, out.String(), "2025")
	require.NotContains(t, out.String(), "{year}")
}

func TestApp_HTMLExportAndNewSearch(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t)
	a.lookup(ctx, "torvalds")
	for a.ctrl.State() == session.Quiz {
		q, _ := a.ctrl.Session().Quiz().Current()
		_, _ = a.ctrl.Answer(q.Correct)
		_, _ = a.ctrl.Next()
	}

	require.False(t, a.handle(ctx, "h"))
	path := cfg.DownloadDir + "/github-wrapped-2025-torvalds.html"
	page, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(page), "&lt;b&gt;fix&lt;/b&gt;")
	require.Contains(t, out.String(), path)

	require.False(t, a.handle(ctx, "n"))
	require.Equal(t, session.Input, a.ctrl.State())
	require.Nil(t, a.ctrl.Session())

	require.True(t, a.handle(ctx, ":q"))
}

func TestApp_EmptyUsername(t *testing.T) {
	a, out := newTestApp(t)
	a.lookup(context.Background(), "  ")
	require.Equal(t, session.Input, a.ctrl.State())
	require.Contains(t, out.String(), i18n.Lookup(i18n.Turkish).ErrUsernameRequired)
}
