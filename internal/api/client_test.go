package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchStats_Success(t *testing.T) {
	var got analyzeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"torvalds","stats":{"total_commits":42},"languages":{"C":100}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/"})
	r, err := c.FetchStats(context.Background(), "  torvalds ", 2025)
	require.NoError(t, err)

	require.Equal(t, analyzeRequest{Username: "torvalds", Year: 2025}, got)
	require.Equal(t, 42, r.Stats.TotalCommits)
	require.Equal(t, []string{"C"}, r.Languages.Names())
}

func TestFetchStats_EmptyUsernameNeverCallsService(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := c.FetchStats(context.Background(), in, 2025)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "username", ve.Field)
	}
	require.Zero(t, calls.Load())
}

func TestFetchStats_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		wantErr string
	}{
		{"not found with message", 404, `{"error":"Kullanıcı bulunamadı"}`, "Kullanıcı bulunamadı", "Kullanıcı bulunamadı"},
		{"server error without body", 500, ``, "", "stats service returned status 500"},
		{"html error page", 502, `<html>bad gateway</html>`, "", "stats service returned status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(Config{BaseURL: srv.URL}).FetchStats(context.Background(), "ghost", 2025)
			var se *ServiceError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tt.status, se.Status)
			require.Equal(t, tt.wantMsg, se.Message)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestFetchStats_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(Config{BaseURL: url}).FetchStats(context.Background(), "torvalds", 2025)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	require.NotNil(t, errors.Unwrap(err))
}

func TestFetchStats_UndecodableSuccessIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).FetchStats(context.Background(), "torvalds", 2025)
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
}

func TestRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rate-limit", r.URL.Path)
		_, _ = w.Write([]byte(`{"core":{"limit":5000,"remaining":4990,"reset":1767225600},"graphql":{"limit":5000,"remaining":5000,"reset":0},"has_token":true}`))
	}))
	defer srv.Close()

	rl, err := NewClient(Config{BaseURL: srv.URL}).RateLimit(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4990, rl.Core.Remaining)
	require.Equal(t, 5000, rl.GraphQL.Limit)
	require.True(t, rl.HasToken)
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"torvalds", "torvalds"},
		{"  torvalds  ", "torvalds"},
		{"https://github.com/torvalds", "torvalds"},
		{"github.com/4ni1ak/", "4ni1ak"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
