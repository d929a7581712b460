package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SzerokiGeralt/MemeSwipe/backend/middleware"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database"
)

var clock = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T, rateLimit int) *Server {
	t.Helper()

	cfg := memeswipe.DefaultConfig()
	cfg.DB.Driver = database.DriverMemory
	cfg.Web.RateLimit = rateLimit

	app, err := memeswipe.New(context.Background(), cfg, "test", "abc123")
	require.NoError(t, err)
	t.Cleanup(app.Close)

	s := NewServer(app)
	s.Web.Now = func() time.Time { return clock }
	return s
}

func doRequest(t *testing.T, s *Server, method, path string, userID int64, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		req.Header.Set(middleware.UserHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodGet, "/health", 0, nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"database"`)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestUserRoutesRequireIdentity(t *testing.T) {
	s := newTestServer(t, 0)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "not a number", header: "abc"},
		{name: "not positive", header: "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/quests", nil)
			if tt.header != "" {
				req.Header.Set(middleware.UserHeader, tt.header)
			}
			resp, err := s.App.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestStatsRoutes(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodGet, "/api/stats/7", 0, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/stats", 0, map[string]any{"user_id": 7})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// a second registration returns the same record
	resp, _ = doRequest(t, s, http.MethodPost, "/api/stats", 0, map[string]any{"user_id": 7})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = doRequest(t, s, http.MethodGet, "/api/stats/7", 0, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		UserID   int64 `json:"user_id"`
		Level    int   `json:"level"`
		Diamonds int64 `json:"diamonds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(7), stats.UserID)
	assert.Equal(t, 1, stats.Level)

	resp, env = doRequest(t, s, http.MethodPost, "/api/stats", 0, map[string]any{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "user_id")

	resp, _ = doRequest(t, s, http.MethodGet, "/api/stats/zero", 0, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStreakCheck(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodPost, "/api/streak/check", 3, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"status":"new"`)

	_, env = doRequest(t, s, http.MethodPost, "/api/streak/check", 3, nil)
	assert.Contains(t, string(env.Data), `"status":"maintained"`)
}

func TestUploadAndVoteFlow(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodPost, "/api/uploads", 2, map[string]any{"image_url": "/uploads/cat.png"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var upload struct {
		Post struct {
			ID     int64 `json:"id"`
			UserID int64 `json:"user_id"`
		} `json:"post"`
		ExperienceGained int64 `json:"experience_gained"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &upload))
	assert.Equal(t, int64(2), upload.Post.UserID)
	assert.Positive(t, upload.ExperienceGained)

	// second upload within the cooldown
	resp, env = doRequest(t, s, http.MethodPost, "/api/uploads", 2, map[string]any{"image_url": "/uploads/dog.png"})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UPLOAD_COOLDOWN", env.Error.Code)
	assert.Equal(t, "86400", resp.Header.Get("Retry-After"))

	postPath := "/api/votes"
	vote := map[string]any{"post_id": upload.Post.ID, "vote_kind": "upvote"}

	resp, env = doRequest(t, s, http.MethodPost, postPath, 1, vote)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"vote_kind":"upvote"`)

	resp, env = doRequest(t, s, http.MethodPost, postPath, 1, vote)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_VOTE", env.Error.Code)

	tests := []struct {
		name     string
		userID   int64
		body     map[string]any
		wantCode int
		wantErr  string
	}{
		{name: "own post", userID: 2, body: vote, wantCode: http.StatusBadRequest, wantErr: "SELF_VOTE"},
		{name: "unknown kind", userID: 1, body: map[string]any{"post_id": upload.Post.ID, "vote_kind": "sideways"}, wantCode: http.StatusBadRequest, wantErr: "INVALID_VOTE_KIND"},
		{name: "missing post", userID: 1, body: map[string]any{"post_id": 9999, "vote_kind": "downvote"}, wantCode: http.StatusNotFound, wantErr: "POST_NOT_FOUND"},
		{name: "no post id", userID: 1, body: map[string]any{"vote_kind": "upvote"}, wantCode: http.StatusUnprocessableEntity, wantErr: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doRequest(t, s, http.MethodPost, postPath, tt.userID, tt.body)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t, 0)

	req := httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.UserHeader, "1")

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid request body", env.Error.Message)
	// decoder errors stay in the logs
	assert.Equal(t, map[string]string{
		"body": "must be a JSON object matching the endpoint schema",
	}, env.Error.Details)
}

func TestQuestRoutes(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodGet, "/api/quests", 5, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var weekly struct {
		Quests []struct {
			ID int64 `json:"id"`
		} `json:"quests"`
		Reset struct {
			Days int `json:"days"`
		} `json:"reset"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &weekly))
	assert.Len(t, weekly.Quests, 4)
	assert.Equal(t, 4, weekly.Reset.Days)

	resp, env = doRequest(t, s, http.MethodPost, "/api/quests/claim", 5, map[string]any{"quest_id": weekly.Quests[0].ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_YET_COMPLETE", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodPost, "/api/quests/claim", 5, map[string]any{"quest_id": 4242})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "QUEST_NOT_FOUND", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodGet, "/api/quests/reset", 5, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"total_seconds"`)
}

func TestShopRoutes(t *testing.T) {
	s := newTestServer(t, 0)

	resp, env := doRequest(t, s, http.MethodGet, "/api/shop", 8, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID   int64 `json:"id"`
		Cost int64 `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.NotEmpty(t, items)

	resp, env = doRequest(t, s, http.MethodPost, "/api/shop/purchase", 8, map[string]any{"item_id": items[0].ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_DIAMONDS", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodPost, "/api/shop/purchase", 8, map[string]any{"item_id": 4242})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ITEM_NOT_FOUND", env.Error.Code)

	resp, env = doRequest(t, s, http.MethodGet, "/api/shop/vip", 8, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"has_vip_badge":false`)
}

func TestFeedAndLeaders(t *testing.T) {
	s := newTestServer(t, 0)

	resp, _ := doRequest(t, s, http.MethodGet, "/api/posts/next", 1, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/uploads", 2, map[string]any{"image_url": "/uploads/cat.png"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, s, http.MethodGet, "/api/posts/next", 1, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"user_id":2`)

	_, env = doRequest(t, s, http.MethodGet, "/api/posts/mine", 2, nil)
	assert.Contains(t, string(env.Data), "/uploads/cat.png")

	resp, env = doRequest(t, s, http.MethodGet, "/api/leaders?period=bogus", 1, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"period":"all"`)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, 2)

	for range 2 {
		resp, _ := doRequest(t, s, http.MethodGet, "/api/quests/reset", 1, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env := doRequest(t, s, http.MethodGet, "/api/quests/reset", 1, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", env.Error.Code)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	// other users have their own window
	resp, _ = doRequest(t, s, http.MethodGet, "/api/quests/reset", 2, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsAndUnknownRoute(t *testing.T) {
	s := newTestServer(t, 0)

	resp, _ := doRequest(t, s, http.MethodGet, "/nowhere", 0, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "memeswipe_requests_total")
}
