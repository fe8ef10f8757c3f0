package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{ServiceKey: "k"})
	assert.Error(t, err)

	_, err = New(Config{URL: "https://x.supabase.co"})
	assert.Error(t, err)

	c, err := New(Config{URL: "https://x.supabase.co/", ServiceKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "https://x.supabase.co", c.baseURL)
}

func TestRPC_SendsParamsAndDecodes(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody) //nolint:errcheck // asserted below

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("7")) //nolint:errcheck // test server
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, ServiceKey: "service-role"})
	require.NoError(t, err)

	var count int
	err = c.RPC(context.Background(), "get_user_usage_today", map[string]any{"p_user_id": "u1"}, &count)
	require.NoError(t, err)

	assert.Equal(t, 7, count)
	assert.Equal(t, "/rest/v1/rpc/get_user_usage_today", gotPath)
	assert.Equal(t, "service-role", gotKey)
	assert.Equal(t, "Bearer service-role", gotAuth)
	assert.Equal(t, "u1", gotBody["p_user_id"])
}

func TestRPC_VoidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, ServiceKey: "k"})
	require.NoError(t, err)

	var out int
	assert.NoError(t, c.RPC(context.Background(), "increment_user_usage_today", nil, &out))
	assert.Equal(t, 0, out)
}

func TestRPC_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"PGRST202","message":"Could not find the function"}`)) //nolint:errcheck // test server
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, ServiceKey: "k"})
	require.NoError(t, err)

	err = c.RPC(context.Background(), "missing_fn", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "PGRST202", apiErr.Code)
	assert.Contains(t, err.Error(), "missing_fn")
}

func TestRPC_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, ServiceKey: "k"})
	require.NoError(t, err)

	err = c.RPC(context.Background(), "fn", nil, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestRPC_CanceledContext(t *testing.T) {
	c, err := New(Config{URL: "http://127.0.0.1:1", ServiceKey: "k"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, c.RPC(ctx, "fn", nil, nil))
}
