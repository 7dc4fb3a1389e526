package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html>Senior Go Engineer</html>"))
	}))
	defer server.Close()

	body, err := New(Config{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "<html>Senior Go Engineer</html>", body)
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestFetchCustomUserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := New(Config{UserAgent: "custom/2.0"}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "custom/2.0", gotUserAgent)
}

func TestFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(Config{}).Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetchInvalidURL(t *testing.T) {
	_, err := New(Config{}).Fetch(context.Background(), "://not-a-url")
	assert.Error(t, err)
}

func TestFetchCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{}).Fetch(ctx, server.URL)
	assert.Error(t, err)
}
