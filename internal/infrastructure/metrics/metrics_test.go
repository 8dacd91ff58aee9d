package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitebuilder-api/internal/infrastructure/metrics"
)

func TestRecorder_Contadores(t *testing.T) {
	rec := metrics.NewRecorder(false)

	rec.ObserveResolution("alias")
	rec.ObserveResolution("alias")
	rec.ObserveResolution("default")
	rec.ObserveModuleCheck("pos", false)
	rec.ObserveHTTP("GET", "/api/templates", 200, 0.004)

	n, err := testutil.GatherAndCount(rec.Registry(), "sitebuilder_templates_resolutions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por outcome observado")

	n, err = testutil.GatherAndCount(rec.Registry(), "sitebuilder_modules_checks_total", "sitebuilder_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_Handler(t *testing.T) {
	rec := metrics.NewRecorder(false)
	rec.ObserveResolution("direct")

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `sitebuilder_templates_resolutions_total{outcome="direct"} 1`)
}
