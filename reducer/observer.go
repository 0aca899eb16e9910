// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/log"
	"github.com/ironguild/guildsim/metrics"
)

// Observer watches Step calls from the outside: it is never passed into
// Step itself and never influences what Step returns (SPEC_FULL.md §A.1
// "reducer.Step stays logger-free"). A caller constructs one explicitly
// and invokes it after each Step call it wants observed.
type Observer struct {
	Log     log.Logger
	Metrics *metrics.Recorder
}

// NewObserver builds an Observer. Either argument may be the zero value:
// a nil Metrics skips counter updates, and log.NoOp() discards logging.
func NewObserver(logger log.Logger, recorder *metrics.Recorder) *Observer {
	if logger == nil {
		logger = log.NoOp()
	}
	return &Observer{Log: logger, Metrics: recorder}
}

// ObserveStep logs and records the outcome of one Step call: the
// dispatched command, the number of events it produced, and any
// invariant violations found among them.
func (o *Observer) ObserveStep(cmd command.Command, events []event.Event) {
	if o == nil {
		return
	}

	accepted := true
	violations := 0
	for _, e := range events {
		switch e.(type) {
		case event.CommandRejected:
			accepted = false
		case event.InvariantViolated:
			violations++
		}
	}

	if !accepted {
		o.Log.Warn("command rejected", "kind", string(cmd.Kind()), "cmdId", cmd.CmdId())
	} else if violations > 0 {
		o.Log.Error("invariant violated", "kind", string(cmd.Kind()), "cmdId", cmd.CmdId(), "violations", violations)
	} else {
		o.Log.Debug("command applied", "kind", string(cmd.Kind()), "cmdId", cmd.CmdId(), "events", len(events))
	}

	if o.Metrics != nil {
		o.Metrics.ObserveStep(string(cmd.Kind()), accepted, len(events), violations)
	}
}
