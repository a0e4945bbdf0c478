package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gh-wrapped/internal/i18n"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Get(ctx, "lang")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "lang", "en"))
	require.NoError(t, s.Set(ctx, "lang", "tr"))
	v, err := s.Get(ctx, "lang")
	require.NoError(t, err)
	require.Equal(t, "tr", v)
}

func TestLoad_Defaults(t *testing.T) {
	p, err := openTestStore(t).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, Defaults, p)
	require.Equal(t, i18n.Turkish, p.Language)
}

func TestLoad_IgnoresUnknownValues(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Set(ctx, "lang", "de"))
	require.NoError(t, s.Set(ctx, "theme", "sepia"))

	p, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, Defaults, p)
}

func TestToggles(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	p, err := s.Load(ctx)
	require.NoError(t, err)

	p, err = s.ToggleLanguage(ctx, p)
	require.NoError(t, err)
	require.Equal(t, i18n.English, p.Language)

	p, err = s.ToggleTheme(ctx, p)
	require.NoError(t, err)
	require.Equal(t, Light, p.Theme)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, p, loaded)

	p, err = s.ToggleLanguage(ctx, p)
	require.NoError(t, err)
	require.Equal(t, i18n.Turkish, p.Language)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	_, err = s1.ToggleLanguage(ctx, Defaults)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()
	p, err := s2.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, i18n.English, p.Language)
	require.Equal(t, Dark, p.Theme)
}
