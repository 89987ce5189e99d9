package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/ArowuTest/intern-dashboard/internal/config"
	"github.com/ArowuTest/intern-dashboard/internal/handlers"
	"github.com/ArowuTest/intern-dashboard/internal/metrics"
	"github.com/ArowuTest/intern-dashboard/internal/repositories/memory"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memory.InternRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewInternRepository()
	log, _ := test.NewNullLogger()
	m := metrics.New()
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"*"}}}

	router := SetupRouter(cfg, HandlerDependencies{
		InternHandler: handlers.NewInternHandler(services.NewInternService(repo), m, log),
		Metrics:       m,
		Static: fstest.MapFS{
			"index.html": {Data: []byte("<html>dashboard</html>")},
			"script.js":  {Data: []byte("// client")},
		},
		Logger: log,
	})
	return router, repo
}

func do(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupBody(email, code string) map[string]string {
	return map[string]string{
		"name":         "Ada Lovelace",
		"email":        email,
		"password":     "plaintext",
		"referralCode": code,
	}
}

func TestCreateIntern(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/interns", signupBody("ada@example.com", "ada2025"))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string                 `json:"message"`
		Intern  map[string]interface{} `json:"intern"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Intern created successfully", resp.Message)
	assert.Len(t, resp.Intern, 3)
	assert.Equal(t, "Ada Lovelace", resp.Intern["name"])
	assert.Equal(t, "ada@example.com", resp.Intern["email"])
	assert.NotEmpty(t, resp.Intern["id"])
}

func TestCreateInternDuplicateEmailLeavesCollectionUnchanged(t *testing.T) {
	router, repo := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/interns", signupBody("ada@example.com", "one")).Code)

	w := do(router, http.MethodPost, "/api/interns", signupBody("ada@example.com", "two"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Intern already exists"}`, w.Body.String())

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Referral codes are not checked by the application, but the unique index
// rejects the second insert and the store error surfaces as a 500.
func TestCreateInternSharedReferralCodeIsStoreError(t *testing.T) {
	router, repo := newTestRouter(t)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/interns", signupBody("a@example.com", "shared")).Code)

	w := do(router, http.MethodPost, "/api/interns", signupBody("b@example.com", "shared"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Error creating intern", body["message"])
	assert.Contains(t, body["error"], "duplicate key")

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateInternMissingFieldIsStoreError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/interns", map[string]string{"email": "a@example.com"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestCreateInternMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/interns", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListInternsNeverIncludesPassword(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/interns", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/interns", signupBody(email, email)).Code)
	}

	w = do(router, http.MethodGet, "/api/interns", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var interns []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &interns))
	require.Len(t, interns, 3)
	for _, intern := range interns {
		assert.NotContains(t, intern, "password")
		assert.Contains(t, intern, "referralCode")
		assert.Contains(t, intern, "createdAt")

		donations := intern["donationsRaised"].(float64)
		assert.GreaterOrEqual(t, donations, 100.0)
		assert.LessOrEqual(t, donations, 1099.0)
		assert.Equal(t, []interface{}{"Bronze Badge", "Silver Badge", "Gold Badge"}, intern["rewards"])
	}
}

func TestGetIntern(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/interns", signupBody("ada@example.com", "ada"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Intern struct {
			ID string `json:"id"`
		} `json:"intern"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(router, http.MethodGet, "/api/intern/"+created.Intern.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var intern map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &intern))
	assert.Equal(t, "ada@example.com", intern["email"])
	assert.NotContains(t, intern, "password")
}

func TestGetInternNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, id := range []string{"64b7f0c2a1b2c3d4e5f60718", "not-an-id"} {
		w := do(router, http.MethodGet, "/api/intern/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.JSONEq(t, `{"message":"Intern not found"}`, w.Body.String())
	}
}

func TestDemoData(t *testing.T) {
	router, repo := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/demo-data", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"name": "John Doe",
		"referralCode": "johndoe2025",
		"donationsRaised": 1250,
		"rewards": ["Bronze Badge", "Silver Badge", "Gold Badge", "Platinum Badge"]
	}`, w.Body.String())

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStaticClientAndHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")

	w = do(router, http.MethodGet, "/script.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `intern_dashboard_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/interns", nil)
	req.Header.Set("Origin", "http://example.org")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
