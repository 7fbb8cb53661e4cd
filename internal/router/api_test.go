package router

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/auth"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/calendar"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/config"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/handlers"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/rowstore"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/services"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "e2e-secret")

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	db := map[string][][]string{
		"Users": {
			{"username", "passwordHash"},
			{"wang", hash},
		},
		"Categories": {
			{"name", "color", "target"},
			{"工作", "#ff6b6b", "20"},
			{"生活", "#4ecdc4", ""},
		},
		"Roles": {
			{"name", "target", "description"},
			{"工程師", "8", "本業"},
		},
		"Notes": {
			{"id", "date", "category", "content", "role", "startTime", "endTime", "eventId"},
		},
	}

	path := filepath.Join(t.TempDir(), "local_db.json")
	data, err := json.Marshal(db)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	store := rowstore.NewLocalStore(path)
	cal := calendar.NewLogCalendar()

	noteService := services.NewNoteService(store, cal)
	userService := services.NewUserService(store)
	catalogService := services.NewCatalogService(store, nil, time.Minute)

	h := Handlers{
		Auth:     handlers.NewAuthHandler(userService),
		Notes:    handlers.NewNoteHandler(noteService),
		Catalogs: handlers.NewCatalogHandler(catalogService),
		Stats:    handlers.NewStatsHandler(noteService, catalogService),
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRouter(r, cfg, nil, h)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimitWindow: time.Minute,
		RateLimitMax:    300,
		LoginLimitMax:   10,
		CatalogCacheTTL: time.Minute,
	}
}

func login(t *testing.T, client *resty.Client, rememberMe bool) string {
	t.Helper()

	var result struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	resp, err := client.R().
		SetBody(map[string]interface{}{
			"username":   "wang",
			"password":   "password123",
			"rememberMe": rememberMe,
		}).
		SetResult(&result).
		Post("/api/login")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.NotEmpty(t, result.Token)
	require.Equal(t, "wang", result.Username)
	return result.Token
}

func TestEndToEnd_NoteLifecycle(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := resty.New().SetBaseURL(srv.URL)

	token := login(t, client, false)
	client.SetAuthToken(token)

	// catalogs, with the default target filled in for 生活
	var categories []models.Category
	resp, err := client.R().SetResult(&categories).Get("/api/categories")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.Len(t, categories, 2)
	assert.Equal(t, 20, categories[0].Target)
	assert.Equal(t, models.DefaultCategoryTarget, categories[1].Target)

	// create a timed, synced note
	var created struct {
		Message string `json:"message"`
		EventID string `json:"eventId"`
	}
	resp, err = client.R().
		SetBody(map[string]interface{}{
			"id": "n1", "date": "2024-05-01", "category": "工作",
			"content": "寫週報", "role": "工程師",
			"syncToCalendar": true, "startTime": "09:00", "endTime": "10:00",
		}).
		SetResult(&created).
		Post("/api/notes")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.NotEmpty(t, created.EventID)

	// the note sits in the first data row
	var notes []models.Note
	resp, err = client.R().SetResult(&notes).Get("/api/notes")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.Len(t, notes, 1)
	assert.Equal(t, 2, notes[0].RowIndex)
	assert.Equal(t, created.EventID, notes[0].EventID)

	// turning sync off clears the stored event id
	resp, err = client.R().
		SetBody(map[string]interface{}{
			"id": "n1", "date": "2024-05-01", "category": "工作",
			"content": "寫週報", "role": "工程師",
			"syncToCalendar": false, "startTime": "09:00", "endTime": "10:00",
		}).
		Put("/api/notes/2")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	resp, err = client.R().SetResult(&notes).Get("/api/notes")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.Len(t, notes, 1)
	assert.Empty(t, notes[0].EventID)

	// stats for the note's month
	var progress []struct {
		Name       string `json:"name"`
		Count      int    `json:"count"`
		Target     int    `json:"target"`
		Percentage int    `json:"percentage"`
	}
	resp, err = client.R().SetResult(&progress).Get("/api/stats/categories?month=2024-05")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	require.Len(t, progress, 2)
	assert.Equal(t, 1, progress[0].Count)
	assert.Equal(t, 5, progress[0].Percentage)

	// delete removes the row
	resp, err = client.R().Delete("/api/notes/2")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())

	resp, err = client.R().SetResult(&notes).Get("/api/notes")
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode())
	assert.Empty(t, notes)
}

func TestEndToEnd_TokenLifetimes(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := resty.New().SetBaseURL(srv.URL)

	shortToken := login(t, client, false)
	claims, err := auth.ValidateToken(shortToken)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	longToken := login(t, client, true)
	claims, err = auth.ValidateToken(longToken)
	require.NoError(t, err)
	assert.Equal(t, 365*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestEndToEnd_AuthRequired(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/api/notes")
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode())

	resp, err = client.R().SetAuthToken("garbage").Get("/api/notes")
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode())
}

func TestEndToEnd_LoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.LoginLimitMax = 3
	srv := newTestServer(t, cfg)
	client := resty.New().SetBaseURL(srv.URL)

	body := map[string]interface{}{"username": "wang", "password": "wrong"}
	for i := 0; i < 3; i++ {
		resp, err := client.R().SetBody(body).Post("/api/login")
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode())
	}

	resp, err := client.R().SetBody(body).Post("/api/login")
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode())
}

func TestEndToEnd_Liveness(t *testing.T) {
	srv := newTestServer(t, testConfig())
	client := resty.New().SetBaseURL(srv.URL)

	for _, path := range []string{"/health", "/ping"} {
		resp, err := client.R().Get(path)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode())
	}
}
