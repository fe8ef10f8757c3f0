package feedback

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codeberg.org/daybook/server/daybook/feedback"
	"codeberg.org/daybook/server/internal/auth"
	"codeberg.org/daybook/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCreator struct {
	got *feedback.CreateRequest
	err error
}

func (f *fakeCreator) Create(_ context.Context, req *feedback.CreateRequest) (*feedback.Feedback, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	var userID *string
	if req.UserID != "" {
		id := req.UserID
		userID = &id
	}

	return &feedback.Feedback{
		ID:        "f1",
		UserID:    userID,
		Category:  req.Category,
		Message:   req.Message,
		Page:      req.Page,
		UserAgent: req.UserAgent,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

// stands in for auth.Verifier.OptionalMiddleware
func fakeOptionalAuth(c *gin.Context) {
	if id := c.GetHeader("X-Test-User"); id != "" {
		c.Set(auth.ContextUserID, id)
	}
	c.Next()
}

func post(creator Creator, body string, user string) *httptest.ResponseRecorder {
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), creator, fakeOptionalAuth)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestCreate_Anonymous(t *testing.T) {
	creator := &fakeCreator{}

	w := post(creator, `{"message":"  love the weekly report  "}`, "")

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, creator.got)
	assert.Equal(t, "", creator.got.UserID)
	assert.Equal(t, "other", creator.got.Category)
	assert.Equal(t, "love the weekly report", creator.got.Message)
	assert.Equal(t, "test-agent", creator.got.UserAgent)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), `"user_id":null`)
}

func TestCreate_SignedIn(t *testing.T) {
	creator := &fakeCreator{}

	w := post(creator, `{"message":"tasks vanish","category":"bug","page":"/tasks"}`, "u1")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u1", creator.got.UserID)
	assert.Equal(t, "bug", creator.got.Category)
	assert.Equal(t, "/tasks", creator.got.Page)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
}

func TestCreate_Validation(t *testing.T) {
	cases := map[string]string{
		"missing message":  `{}`,
		"blank message":    `{"message":"   "}`,
		"too long":         `{"message":"` + strings.Repeat("a", 2001) + `"}`,
		"unknown category": `{"message":"hi","category":"rant"}`,
		"not json":         `nope`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			creator := &fakeCreator{}

			w := post(creator, body, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"ok":false`)
			assert.Nil(t, creator.got)
		})
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	w := post(&fakeCreator{err: errors.New("connection refused")}, `{"message":"hi"}`, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestRateLimit_SignedInCallersLimitedPerUser(t *testing.T) {
	limiter, err := ratelimit.New("feedback-test", "1-M")
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), &fakeCreator{}, fakeOptionalAuth, limiter)

	send := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		if user != "" {
			req.Header.Set("X-Test-User", user)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send("user-a"))
	assert.Equal(t, http.StatusTooManyRequests, send("user-a"))
	assert.Equal(t, http.StatusCreated, send("user-b"))
	assert.Equal(t, http.StatusCreated, send(""))
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}
