package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/gate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLister struct {
	items     []feedback.Feedback
	err       error
	calls     int
	lastLimit int
}

func (f *fakeLister) List(_ context.Context, limit int) ([]feedback.Feedback, error) {
	f.calls++
	f.lastLimit = limit
	return f.items, f.err
}

func newRouter(t *testing.T, lister FeedbackLister) *gin.Engine {
	t.Helper()

	g, err := gate.New("admin", "admin-key")
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), g, lister)

	return r
}

func get(r http.Handler, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if key != "" {
		req.Header.Set(gate.AdminKeyHeader, key)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestListFeedback_Authorized(t *testing.T) {
	lister := &fakeLister{items: []feedback.Feedback{
		{ID: "f1", Category: "bug", Message: "calendar is off by one", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	}}
	r := newRouter(t, lister)

	w := get(r, "/api/admin/feedback", "admin-key")
	require.Equal(t, http.StatusOK, w.Code)

	var body FeedbackListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.OK)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "f1", body.Data[0].ID)
	assert.Nil(t, body.Data[0].UserID)
	assert.Equal(t, feedback.DefaultListLimit, lister.lastLimit)
}

func TestListFeedback_EmptyIsArray(t *testing.T) {
	r := newRouter(t, &fakeLister{})

	w := get(r, "/api/admin/feedback", "admin-key")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[]}`, w.Body.String())
}

func TestListFeedback_WrongOrMissingKey(t *testing.T) {
	lister := &fakeLister{}
	r := newRouter(t, lister)

	for _, key := range []string{"", "wrong"} {
		w := get(r, "/api/admin/feedback", key)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Unauthorized"}`, w.Body.String())
	}

	assert.Equal(t, 0, lister.calls)
}

func TestListFeedback_Limit(t *testing.T) {
	lister := &fakeLister{}
	r := newRouter(t, lister)

	get(r, "/api/admin/feedback?limit=10", "admin-key")
	assert.Equal(t, 10, lister.lastLimit)

	get(r, "/api/admin/feedback?limit=100000", "admin-key")
	assert.Equal(t, feedback.MaxListLimit, lister.lastLimit)

	get(r, "/api/admin/feedback?limit=abc", "admin-key")
	assert.Equal(t, feedback.DefaultListLimit, lister.lastLimit)
}

func TestListFeedback_UpstreamFailure(t *testing.T) {
	r := newRouter(t, &fakeLister{err: errors.New("connection reset by peer")})

	w := get(r, "/api/admin/feedback", "admin-key")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}
