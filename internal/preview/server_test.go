package preview

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func get(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func startServer(t *testing.T) *Server {
	t.Helper()
	s := New()
	require.NoError(t, s.Listen("127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	var g errgroup.Group
	g.Go(func() error { return s.Serve(ctx) })
	t.Cleanup(func() {
		cancel()
		require.NoError(t, g.Wait())
	})
	return s
}

func TestPublish_NotListening(t *testing.T) {
	_, err := New().Publish([]byte("x"))
	require.ErrorIs(t, err, ErrNotListening)
}

func TestPublishReplacesPrevious(t *testing.T) {
	s := startServer(t)

	first, err := s.Publish([]byte("one"))
	require.NoError(t, err)
	status, body := get(t, first)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "one", string(body))

	second, err := s.Publish([]byte("two"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	status, _ = get(t, first)
	require.Equal(t, http.StatusNotFound, status)
	status, body = get(t, second)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "two", string(body))
}

func TestRevoke(t *testing.T) {
	s := startServer(t)
	u, err := s.Publish([]byte("img"))
	require.NoError(t, err)

	s.Revoke()
	status, _ := get(t, u)
	require.Equal(t, http.StatusNotFound, status)

	s.Revoke()
}

func TestMetricsRoute(t *testing.T) {
	s := startServer(t)
	_, err := s.Publish([]byte("img"))
	require.NoError(t, err)

	status, body := get(t, s.baseURL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, string(body), "wrapped_preview_blobs_live")
}
