package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/handlers"
	"github.com/mentoraq/backend/internal/service"
	"github.com/mentoraq/backend/internal/store/memory"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := memory.New()
	h := handlers.NewHandler(service.NewQAService(st), service.NewUserService(st), st)
	cfg := &config.Config{
		App:  config.AppConfig{Port: "0", StoreDriver: config.DriverMemory},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return New(cfg, h).RegisterRoutes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_QuestionAnswerVoteFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/questions", map[string]any{"title": "Test?"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	q := decode[map[string]any](t, rec)
	qid, _ := q["_id"].(string)
	require.NotEmpty(t, qid)
	assert.Equal(t, float64(0), q["votes"])
	assert.Equal(t, "Anonymous", q["author"])

	rec = do(t, srv, http.MethodGet, "/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]any](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, qid, list[0]["_id"])
	assert.Equal(t, float64(0), list[0]["answers_count"])

	rec = do(t, srv, http.MethodPost, "/questions/"+qid+"/answers", map[string]any{"content": "A1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	a := decode[map[string]any](t, rec)
	assert.Equal(t, float64(0), a["votes"])
	assert.Equal(t, qid, a["question_id"])

	rec = do(t, srv, http.MethodGet, "/questions/"+qid+"/answers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = do(t, srv, http.MethodPost, "/vote/question/"+qid, map[string]any{"direction": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"_id": qid, "votes": float64(1)}, decode[map[string]any](t, rec))

	rec = do(t, srv, http.MethodPost, "/vote/question/"+qid, map[string]any{"direction": -1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, rec)["votes"])

	rec = do(t, srv, http.MethodGet, "/questions", nil)
	list = decode[[]map[string]any](t, rec)
	assert.Equal(t, float64(1), list[0]["answers_count"])
	assert.Equal(t, float64(0), list[0]["votes"])
}

func TestServer_Comments(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/questions", map[string]any{"title": "q"})
	qid := decode[map[string]any](t, rec)["_id"].(string)
	rec = do(t, srv, http.MethodPost, "/questions/"+qid+"/answers", map[string]any{"content": "a"})
	aid := decode[map[string]any](t, rec)["_id"].(string)

	rec = do(t, srv, http.MethodPost, "/questions/"+qid+"/comments", map[string]any{"text": "nice"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "success", body["status"])
	comment := body["comment"].(map[string]any)
	assert.Equal(t, "nice", comment["text"])
	assert.NotEmpty(t, comment["_id"])

	rec = do(t, srv, http.MethodPost, "/answers/"+aid+"/comments", map[string]any{"text": "agreed"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, srv, http.MethodGet, "/questions/"+qid, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	comments := decode[map[string]any](t, rec)["comments"].([]any)
	assert.Len(t, comments, 1)

	rec = do(t, srv, http.MethodPost, "/answers/"+qid+"/comments", map[string]any{"text": "wrong parent"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ClientErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing title", http.MethodPost, "/questions", map[string]any{"description": "d"}, http.StatusBadRequest},
		{"blank title", http.MethodPost, "/questions", map[string]any{"title": "  "}, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/questions", "not an object", http.StatusBadRequest},
		{"unknown question", http.MethodGet, "/questions/missing", nil, http.StatusNotFound},
		{"answer to unknown question", http.MethodPost, "/questions/missing/answers", map[string]any{"content": "x"}, http.StatusNotFound},
		{"answer without content", http.MethodPost, "/questions/missing/answers", map[string]any{}, http.StatusBadRequest},
		{"empty comment", http.MethodPost, "/questions/missing/comments", map[string]any{"text": ""}, http.StatusBadRequest},
		{"vote out of range", http.MethodPost, "/vote/answer/missing", map[string]any{"direction": 3}, http.StatusBadRequest},
		{"vote unknown answer", http.MethodPost, "/vote/answer/missing", map[string]any{"direction": 1}, http.StatusNotFound},
		{"sync without email", http.MethodPost, "/sync-user", map[string]any{"name": "x"}, http.StatusBadRequest},
		{"stats without email", http.MethodGet, "/user-stats", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Contains(t, decode[map[string]any](t, rec), "error")
		})
	}
}

func TestServer_UserSync(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/user-stats?email=a@b.c", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"contributionPoints": float64(0),
		"notesCount":         float64(0),
		"badgesCount":        float64(0),
	}, decode[map[string]any](t, rec))

	rec = do(t, srv, http.MethodPost, "/sync-user", map[string]any{"email": "a@b.c", "name": "Ana", "image": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"success": true}, decode[map[string]any](t, rec))

	rec = do(t, srv, http.MethodGet, "/user-stats?email=a@b.c", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, rec)["badgesCount"])
}

func TestServer_HealthAndHeaders(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "memory", decode[map[string]string](t, rec)["driver"])

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("X-Request-ID", "req-1")
	out := httptest.NewRecorder()
	srv.ServeHTTP(out, req)
	assert.Equal(t, "http://localhost:3000", out.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "req-1", out.Header().Get("X-Request-ID"))
}
