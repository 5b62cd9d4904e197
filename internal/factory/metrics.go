package factory

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pterobot/pterobot/internal/config"
)

const (
	metricsNamespace = "pterobot"
)

// CreateRegistry returns a registry exposing the runtime collectors and the build info.
func CreateRegistry() (*prometheus.Registry, error) {
	ret := prometheus.NewRegistry()

	for _, collector := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versioncollector.NewCollector(metricsNamespace),
	} {
		err := ret.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return ret, nil
}

func CreatePrometheusServer(conf config.Metrics, gatherer prometheus.Gatherer) *http.Server {
	ret := &http.Server{Addr: fmt.Sprintf(":%v", conf.Port)}
	ret.SetKeepAlivesEnabled(true)
	ret.IdleTimeout = 5 * time.Second
	ret.ReadHeaderTimeout = 5 * time.Second

	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ret.Handler = router

	return ret
}
