package metrics

import (
	"net/http"

	"marketplace/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// NewRegistry creates the process registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewHandler serves reg in the Prometheus text format.
func NewHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// NewEndpoint returns the scrape handler, or nil when metrics.enabled is false.
func NewEndpoint(cfg *config.Config, reg *prometheus.Registry) http.Handler {
	if !cfg.Metrics.Enabled {
		return nil
	}

	return NewHandler(reg)
}

// Module provides the registry, its Registerer view, the Collector and the
// scrape handler named "metrics".
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		NewCollector,
		fx.Annotate(NewEndpoint, fx.ResultTags(`name:"metrics"`)),
	),
)
