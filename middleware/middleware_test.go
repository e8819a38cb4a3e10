package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web3dir/metrics"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(RequestIDKey)})
	})
	r.POST("/other", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequestID_Generated(t *testing.T) {
	rr := do(newEngine(RequestID()), http.MethodGet, "/api/ping", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	rid := rr.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err)
	assert.Contains(t, rr.Body.String(), rid)
}

func TestRequestID_Propagated(t *testing.T) {
	h := http.Header{}
	h.Set(RequestIDHeader, "abc-123")

	rr := do(newEngine(RequestID()), http.MethodGet, "/api/ping", h)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"request_id":"abc-123"}`, rr.Body.String())
}

func TestReadOnly(t *testing.T) {
	r := newEngine(ReadOnly("/api/"))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "get allowed", method: http.MethodGet, path: "/api/ping", want: http.StatusOK},
		{name: "post rejected", method: http.MethodPost, path: "/api/ping", want: http.StatusMethodNotAllowed},
		{name: "delete on unknown api route rejected", method: http.MethodDelete, path: "/api/projects/1", want: http.StatusMethodNotAllowed},
		{name: "outside prefix untouched", method: http.MethodPost, path: "/other", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(r, tt.method, tt.path, nil)
			assert.Equal(t, tt.want, rr.Code)
			if tt.want == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"error":"read-only API"}`, rr.Body.String())
				assert.Equal(t, "GET, HEAD, OPTIONS", rr.Header().Get("Allow"))
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	r := newEngine(Metrics())

	ok := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/ping", "200")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	okBefore := testutil.ToFloat64(ok)
	unmatchedBefore := testutil.ToFloat64(unmatched)

	do(r, http.MethodGet, "/api/ping", nil)
	do(r, http.MethodGet, "/nope", nil)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(unmatched))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}
