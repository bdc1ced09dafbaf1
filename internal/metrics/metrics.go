// Package metrics exposes run counters for a world build.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "osm2mc"

// Metrics holds the counters updated while carving and saving a world.
type Metrics struct {
	WaysCarved      prometheus.Counter
	WaysSkipped     prometheus.Counter
	BlocksWritten   prometheus.Counter
	SectionsEncoded prometheus.Counter
	RegionsWritten  prometheus.Counter
	RegionsReused   prometheus.Counter
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		WaysCarved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ways_carved_total",
			Help:      "Waterways carved into the world.",
		}),
		WaysSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ways_skipped_total",
			Help:      "Ways ignored because they are not waterways or lie below ground.",
		}),
		BlocksWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_written_total",
			Help:      "Block writes applied to the world.",
		}),
		SectionsEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sections_encoded_total",
			Help:      "Sections converted to the legacy block format.",
		}),
		RegionsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_written_total",
			Help:      "Region files written to disk.",
		}),
		RegionsReused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_unchanged_total",
			Help:      "Region files left alone because their content did not change.",
		}),
	}
	reg.MustRegister(m.WaysCarved, m.WaysSkipped, m.BlocksWritten,
		m.SectionsEncoded, m.RegionsWritten, m.RegionsReused)
	return m
}

// Nop returns counters that are not registered anywhere.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}

// WriteFile dumps every metric gathered by g in the text exposition format.
func WriteFile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
