package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncAnalysisStarted()
	IncLLMRetry()
	ObserveAnalysisDurationMs(120)

	out := Render()
	assert.Contains(t, out, "# TYPE analysis_started_total counter")
	assert.Contains(t, out, "llm_retries_total")
	assert.Contains(t, out, `analysis_duration_ms_bucket{le="250"}`)
	assert.Contains(t, out, `analysis_duration_ms_bucket{le="+Inf"}`)
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	assert.Equal(t, []uint64{1, 1}, snap.counts)
	assert.Equal(t, uint64(3), snap.count)
	assert.InDelta(t, 555.0, snap.sum, 1e-9)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
