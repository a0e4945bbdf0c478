package share

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/stats"
)

type fakeOpener struct{ urls []string }

func (f *fakeOpener) Open(u string) error {
	f.urls = append(f.urls, u)
	return nil
}

type fakeClipboard struct {
	err  error
	data []byte
}

func (f *fakeClipboard) WriteImage(png []byte) error {
	if f.err != nil {
		return f.err
	}
	f.data = png
	return nil
}

func TestFileName(t *testing.T) {
	if got := FileName("github-wrapped", 2025, "torvalds"); got != "github-wrapped-2025-torvalds.png" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestText(t *testing.T) {
	en := i18n.Lookup(i18n.English)
	got := Text(en, stats.Totals{TotalCommits: 1234, TotalRepos: 5, ActiveDays: 99, StarsReceived: 7, TotalMerges: 400})
	require.Contains(t, got, "1,234 Commits")
	require.Contains(t, got, "5 Projects")
	require.Contains(t, got, "99 Active Days")
	require.Contains(t, got, "7 Stars")
	require.NotContains(t, got, "{")
}

func TestXIntentURL(t *testing.T) {
	text := "My stats & more #GitHubWrapped\nok"
	got := XIntentURL(text)
	require.NotContains(t, got, "+")

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "x.com", u.Host)
	require.Equal(t, "/intent/tweet", u.Path)
	require.Equal(t, text, u.Query().Get("text"))
}

func TestCopyAndOpen(t *testing.T) {
	op := &fakeOpener{}
	cb := &fakeClipboard{}
	s := &Sharer{Opener: op, Clipboard: cb, Dir: t.TempDir(), Product: "github-wrapped", Year: 2025}

	hinted := false
	res, err := s.CopyAndOpen(context.Background(), "octocat", []byte("png"), func() { hinted = true })
	require.NoError(t, err)
	require.True(t, res.Copied)
	require.True(t, hinted)
	require.Equal(t, []byte("png"), cb.data)
	require.Equal(t, []string{LinkedInFeedURL}, op.urls)
}

func TestCopyAndOpen_FallsBackToSave(t *testing.T) {
	op := &fakeOpener{}
	dir := t.TempDir()
	s := &Sharer{Opener: op, Clipboard: &fakeClipboard{err: errors.New("denied")}, Dir: dir, Product: "github-wrapped", Year: 2025, Delay: time.Hour}

	res, err := s.CopyAndOpen(context.Background(), "octocat", []byte("png"), nil)
	require.NoError(t, err)
	require.False(t, res.Copied)
	require.Equal(t, filepath.Join(dir, "github-wrapped-2025-octocat.png"), res.SavedPath)
	require.Empty(t, op.urls)

	data, err := os.ReadFile(res.SavedPath)
	require.NoError(t, err)
	require.Equal(t, []byte("png"), data)
}

func TestCopyAndOpen_Cancelled(t *testing.T) {
	op := &fakeOpener{}
	s := &Sharer{Opener: op, Clipboard: &fakeClipboard{}, Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.CopyAndOpen(ctx, "octocat", []byte("png"), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, res.Copied)
	require.Empty(t, op.urls)
}

func TestPostToX(t *testing.T) {
	op := &fakeOpener{}
	s := &Sharer{Opener: op}
	require.NoError(t, s.PostToX("hi there"))
	require.Equal(t, []string{"https://x.com/intent/tweet?text=hi%20there"}, op.urls)
}

func TestClipboardError(t *testing.T) {
	base := errors.New("no display")
	err := error(&ClipboardError{Err: base})
	require.ErrorIs(t, err, base)
	require.Equal(t, "clipboard: no display", err.Error())
}
