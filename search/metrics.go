package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors updated by EncounterSearch.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Expansions   prometheus.Counter
	Children     prometheus.Counter
	Solutions    prometheus.Counter
	Compactions  prometheus.Counter
	Pruned       prometheus.Counter
	FrontierSize prometheus.Gauge
}

// NewMetrics creates the search collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Expansions: factory.NewCounter(prometheus.CounterOpts{
			Name: "encrouter_search_expansions_total",
			Help: "Routes expanded into children",
		}),
		Children: factory.NewCounter(prometheus.CounterOpts{
			Name: "encrouter_search_children_total",
			Help: "Child routes pushed onto the frontier",
		}),
		Solutions: factory.NewCounter(prometheus.CounterOpts{
			Name: "encrouter_search_solutions_total",
			Help: "Terminal routes accepted as solutions",
		}),
		Compactions: factory.NewCounter(prometheus.CounterOpts{
			Name: "encrouter_search_compactions_total",
			Help: "Frontier compaction rounds",
		}),
		Pruned: factory.NewCounter(prometheus.CounterOpts{
			Name: "encrouter_search_pruned_total",
			Help: "Routes dropped by frontier compaction",
		}),
		FrontierSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "encrouter_search_frontier_size",
			Help: "Routes currently on the frontier",
		}),
	}
}

func (m *Metrics) expanded(children int, frontier int) {
	if m == nil {
		return
	}
	m.Expansions.Inc()
	m.Children.Add(float64(children))
	m.FrontierSize.Set(float64(frontier))
}

func (m *Metrics) solved() {
	if m == nil {
		return
	}
	m.Solutions.Inc()
}

func (m *Metrics) compacted(dropped int, frontier int) {
	if m == nil {
		return
	}
	m.Compactions.Inc()
	m.Pruned.Add(float64(dropped))
	m.FrontierSize.Set(float64(frontier))
}
