package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/intern/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/intern/"+id, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/intern/:id", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "intern_dashboard_http_requests_total")
}

func TestRecordSignup(t *testing.T) {
	m := New()
	m.RecordSignup(SignupCreated)
	m.RecordSignup(SignupConflict)
	m.RecordSignup(SignupConflict)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.signups.WithLabelValues(SignupCreated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.signups.WithLabelValues(SignupConflict)))
}
