package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"gh-wrapped/internal/api"
	"gh-wrapped/internal/i18n"
	"gh-wrapped/internal/quiz"
)

const torvaldsPayload = `{
  "username": "torvalds",
  "user_info": {"name": "Linus Torvalds", "avatar_url": "https://example.test/a.png"},
  "stats": {"total_commits": 2750, "total_repos": 12, "active_days": 301, "longest_streak": 44},
  "top_repos": {
    "most_commits": {"name": "linux", "count": 2500, "url": "u1"},
    "most_prs": {"name": "subsurface", "count": 7, "url": "u2"}
  },
  "languages": {"C": 88.4, "Shell": 6.1},
  "commit_analysis": {"most_common_messages": [], "monthly_distribution": {"January": 200}},
  "has_token": true
}`

type recordingView struct {
	mu      sync.Mutex
	shown   []State
	err     string
	loading bool
	focused int
}

func (v *recordingView) Show(s State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = append(v.shown, s)
}

func (v *recordingView) ShowError(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = msg
}

func (v *recordingView) ClearError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = ""
}

func (v *recordingView) SetLoading(b bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = b
}

func (v *recordingView) FocusInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focused++
}

func (v *recordingView) visible() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.shown[len(v.shown)-1]
}

func (v *recordingView) errText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func newTestController(t *testing.T, h http.HandlerFunc) (*Controller, *recordingView) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	view := &recordingView{}
	c := NewController(api.NewClient(api.Config{BaseURL: srv.URL}), view, i18n.Lookup(i18n.English), 2025, nil)
	return c, view
}

func serve(body string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestController_FullFlow(t *testing.T) {
	c, view := newTestController(t, serve(torvaldsPayload, http.StatusOK))
	require.Equal(t, Input, c.State())

	require.NoError(t, c.Submit(context.Background(), "torvalds"))
	require.Equal(t, Quiz, c.State())
	require.Equal(t, []State{Input, Loading, Quiz}, view.shown)
	require.False(t, view.loading)

	s := c.Session()
	require.NotNil(t, s)
	require.Equal(t, "torvalds", s.Report().Username)
	require.Equal(t, 3, s.Quiz().Len())

	for i := 0; i < s.Quiz().Len(); i++ {
		q, ok := s.Quiz().Current()
		require.True(t, ok)
		res, err := c.Answer(q.Correct)
		require.NoError(t, err)
		require.True(t, res.Correct)

		_, err = c.Answer(q.Correct)
		require.ErrorIs(t, err, quiz.ErrAlreadyAnswered)

		_, err = c.Next()
		require.NoError(t, err)
	}
	require.Equal(t, Report, c.State())
	require.Equal(t, Report, view.visible())
	require.Equal(t, 3, s.Quiz().Score())

	require.NoError(t, c.SetImage([]byte("png")))
	require.Equal(t, []byte("png"), c.Session().Image())

	c.NewSearch()
	require.Equal(t, Input, c.State())
	require.Nil(t, c.Session())
	require.Empty(t, view.errText())
	require.Equal(t, 2, view.focused)
}

func TestController_EmptyUsername(t *testing.T) {
	var calls atomic.Int32
	c, view := newTestController(t, func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })

	err := c.Submit(context.Background(), "   ")
	var ve *api.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, Input, c.State())
	require.Equal(t, i18n.Lookup(i18n.English).ErrUsernameRequired, view.errText())
	require.Zero(t, calls.Load())
}

func TestController_ServiceErrorShownVerbatim(t *testing.T) {
	c, view := newTestController(t, serve(`{"error":"Kullanıcı bulunamadı"}`, http.StatusNotFound))

	err := c.Submit(context.Background(), "nobody")
	var se *api.ServiceError
	require.ErrorAs(t, err, &se)
	require.Equal(t, Input, c.State())
	require.Equal(t, []State{Input, Loading, Input}, view.shown)
	require.Equal(t, "Kullanıcı bulunamadı", view.errText())
	require.False(t, view.loading)
	require.Nil(t, c.Session())
}

func TestController_ServiceErrorWithoutMessage(t *testing.T) {
	c, view := newTestController(t, serve(`oops`, http.StatusInternalServerError))
	require.Error(t, c.Submit(context.Background(), "x"))
	require.Equal(t, i18n.Lookup(i18n.English).ErrGeneric, view.errText())
}

func TestController_NetworkError(t *testing.T) {
	view := &recordingView{}
	c := NewController(api.NewClient(api.Config{BaseURL: "http://127.0.0.1:1"}), view, i18n.Lookup(i18n.Turkish), 2025, nil)

	err := c.Submit(context.Background(), "torvalds")
	var ne *api.NetworkError
	require.ErrorAs(t, err, &ne)
	require.Equal(t, i18n.Lookup(i18n.Turkish).ErrNetwork, view.errText())
	require.Equal(t, Input, c.State())
}

func TestController_LateFailureAfterNewSearchIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c, view := newTestController(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"late failure"}`))
	})

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "torvalds") }()

	<-started
	require.Equal(t, Loading, c.State())
	c.NewSearch()
	close(release)

	require.True(t, errors.Is(<-done, ErrSuperseded))
	require.Equal(t, Input, c.State())
	require.Equal(t, Input, view.visible())
	require.Empty(t, view.errText())
	require.Nil(t, c.Session())
}

func TestController_WrongState(t *testing.T) {
	c, _ := newTestController(t, serve(torvaldsPayload, http.StatusOK))

	_, err := c.Answer("x")
	require.ErrorIs(t, err, ErrWrongState)
	_, err = c.Next()
	require.ErrorIs(t, err, ErrWrongState)
	require.ErrorIs(t, c.SetImage([]byte("x")), ErrNoSession)

	require.NoError(t, c.Submit(context.Background(), "torvalds"))
	require.ErrorIs(t, c.Submit(context.Background(), "torvalds"), ErrWrongState)
	_, err = c.Next()
	require.ErrorIs(t, err, quiz.ErrNotAnswered)
}

func TestUserMessage(t *testing.T) {
	tr := i18n.Lookup(i18n.Turkish)
	tests := []struct {
		err  error
		want string
	}{
		{&api.ValidationError{Field: "username"}, tr.ErrUsernameRequired},
		{&api.ServiceError{Status: 404, Message: "not found"}, "not found"},
		{&api.ServiceError{Status: 502}, tr.ErrGeneric},
		{&api.NetworkError{Err: errors.New("refused")}, tr.ErrNetwork},
		{errors.New("other"), tr.ErrGeneric},
	}
	for _, tt := range tests {
		if got := userMessage(tt.err, tr); got != tt.want {
			t.Errorf("userMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
