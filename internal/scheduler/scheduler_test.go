package scheduler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"codeberg.org/daybook/server/internal/config"
	"codeberg.org/daybook/server/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFirer struct {
	mu    sync.Mutex
	fired []string
	err   error
}

func (f *fakeFirer) Fire(_ context.Context, job string) (*JobResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fired = append(f.fired, job)
	if f.err != nil {
		return nil, f.err
	}

	return &JobResponse{OK: true}, nil
}

func TestRegister_Defaults(t *testing.T) {
	s := New(&fakeFirer{}, time.UTC, time.Second)

	require.NoError(t, s.Register(jobs.Defaults()))
	assert.Equal(t, 3, s.Entries())
}

func TestRegister_InvalidSchedule(t *testing.T) {
	s := New(&fakeFirer{}, nil, time.Second)

	err := s.Register([]jobs.Job{{Name: "bad", Schedule: "every tuesday"}})
	assert.Error(t, err)
}

func TestFireOnce(t *testing.T) {
	firer := &fakeFirer{}
	s := New(firer, time.UTC, time.Second)

	assert.True(t, s.FireOnce(context.Background(), jobs.NameDailyDigest))
	assert.Equal(t, []string{jobs.NameDailyDigest}, firer.fired)

	firer.err = errors.New("connection refused")
	assert.False(t, s.FireOnce(context.Background(), jobs.NameDailyDigest))
}

func TestStartStop(t *testing.T) {
	s := New(&fakeFirer{}, time.UTC, time.Second)
	require.NoError(t, s.Register(jobs.Defaults()))

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func newTrigger(url string) *HTTPTrigger {
	return NewHTTPTrigger(&config.SchedulerConfig{
		BaseURL:    url,
		CronSecret: "s3cr3t",
		Timeout:    time.Second,
	})
}

func TestHTTPTrigger_SendsBearer(t *testing.T) {
	var gotPath, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"processed":4}`)) //nolint:errcheck // test server
	}))
	defer srv.Close()

	resp, err := newTrigger(srv.URL).Fire(context.Background(), jobs.NameWeeklyReport)

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Processed)
	assert.Equal(t, "/api/cron/weekly-report", gotPath)
	assert.Equal(t, "Bearer s3cr3t", gotAuth)
}

func TestHTTPTrigger_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"error":"Unauthorized"}`)) //nolint:errcheck // test server
	}))
	defer srv.Close()

	resp, err := newTrigger(srv.URL).Fire(context.Background(), jobs.NameNotifications)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, "Unauthorized", resp.Error)
}

func TestHTTPTrigger_GarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`)) //nolint:errcheck // test server
	}))
	defer srv.Close()

	_, err := newTrigger(srv.URL).Fire(context.Background(), jobs.NameNotifications)
	assert.Error(t, err)
}
