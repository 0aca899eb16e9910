// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics is the ambient prometheus seam an adapter plugs into
// reducer.Observer to watch simulation activity from the outside — within
// the reducer package only observer.go imports it; Step never touches it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts command dispatches, emitted events and invariant
// violations. It owns no simulation state; every observation is a handful
// of counter updates driven by reducer.Observer after a Step call returns.
type Recorder struct {
	Registry prometheus.Registerer

	commandsTotal       *prometheus.CounterVec
	eventsEmittedTotal  prometheus.Counter
	invariantViolations prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors against
// reg. reg is typically prometheus.NewRegistry() in tests and the
// adapter's shared registry in production.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Registry: reg,
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guildsim",
			Name:      "commands_total",
			Help:      "Commands dispatched through Step, by kind and acceptance.",
		}, []string{"kind", "accepted"}),
		eventsEmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guildsim",
			Name:      "events_emitted_total",
			Help:      "Events emitted across all Step calls.",
		}),
		invariantViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guildsim",
			Name:      "invariant_violations_total",
			Help:      "InvariantViolated events observed across all Step calls.",
		}),
	}
	if err := r.Register(r.commandsTotal); err != nil {
		return nil, err
	}
	if err := r.Register(r.eventsEmittedTotal); err != nil {
		return nil, err
	}
	if err := r.Register(r.invariantViolations); err != nil {
		return nil, err
	}
	return r, nil
}

// Register registers a prometheus collector against r's registry.
func (r *Recorder) Register(collector prometheus.Collector) error {
	return r.Registry.Register(collector)
}

// ObserveStep records one Step call's outcome: its command kind, whether
// it was accepted, how many events it emitted, and how many of those
// were InvariantViolated.
func (r *Recorder) ObserveStep(cmdKind string, accepted bool, eventCount, violationCount int) {
	r.commandsTotal.WithLabelValues(cmdKind, boolLabel(accepted)).Inc()
	r.eventsEmittedTotal.Add(float64(eventCount))
	r.invariantViolations.Add(float64(violationCount))
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
