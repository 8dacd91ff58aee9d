package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sitebuilder"

// Recorder agrupa los colectores del servicio sobre un registro propio.
// Implementa usecase.ResolutionObserver y usecase.ModuleCheckObserver.
type Recorder struct {
	registry *prometheus.Registry

	resolutions  *prometheus.CounterVec
	moduleChecks *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder crea y registra los colectores. withRuntime agrega los colectores de proceso y Go.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "templates",
				Name:      "resolutions_total",
				Help:      "Resoluciones de categoría por resultado (direct, alias, default).",
			},
			[]string{"outcome"},
		),
		moduleChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "modules",
				Name:      "checks_total",
				Help:      "Verificaciones de módulo habilitado por módulo y decisión.",
			},
			[]string{"module", "allowed"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Peticiones HTTP atendidas.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duración de las peticiones HTTP.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms a ~4s
			},
			[]string{"method", "route"},
		),
	}
	r.registry.MustRegister(r.resolutions, r.moduleChecks, r.httpRequests, r.httpDuration)
	if withRuntime {
		r.registry.MustRegister(
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			prometheus.NewGoCollector(),
		)
	}
	return r
}

// ObserveResolution cuenta una resolución de categoría.
func (r *Recorder) ObserveResolution(outcome string) {
	r.resolutions.WithLabelValues(outcome).Inc()
}

// ObserveModuleCheck cuenta una decisión del gate de módulos.
func (r *Recorder) ObserveModuleCheck(module string, allowed bool) {
	r.moduleChecks.WithLabelValues(module, strconv.FormatBool(allowed)).Inc()
}

// ObserveHTTP registra una petición terminada.
func (r *Recorder) ObserveHTTP(method, route string, status int, seconds float64) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// Registry expone el registro (tests y handlers).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler devuelve el handler HTTP de exposición de métricas.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
