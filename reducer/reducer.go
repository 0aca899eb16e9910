// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package reducer is the simulation's single entry point: Step applies
// one command to one state with one Rng and returns the next state plus
// the events that command produced (spec.md §4.8). Step itself is pure
// and logger-free; Observer is the optional, explicitly-passed seam an
// adapter uses to watch activity, grounded on the teacher's engine/
// dispatch shape (_examples/luxfi-consensus/.../engine) of a single
// sealed entry point fanning out to per-message handlers.
package reducer

import (
	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/verify"
)

// Step applies cmd to s using r and bal, returning the next state and the
// events produced (spec.md §4.8). bal is the balance-constant table the
// pipeline policies consume (SPEC_FULL.md §A.3) — it is a parameter
// rather than state because it is tuning data, not simulation content;
// two states built from the same commands but different Balance values
// are not expected to replay to the same hash. On rejection, s is
// returned unchanged with a single CommandRejected event at seq=1 and
// r.Draws() is left untouched since no handler runs.
func Step(s state.GameState, cmd command.Command, r *rng.Rng, bal config.Balance) (state.GameState, []event.Event) {
	decision := command.CanApply(s, cmd)
	if !decision.Accepted {
		rejected := event.CommandRejected{
			Common: event.Common{
				Day:      s.Meta.DayIndex,
				Revision: s.Meta.Revision,
				CmdId:    cmd.CmdId(),
				Seq:      1,
			},
			CmdType: string(cmd.Kind()),
			Reason:  decision.Reason,
			Detail:  decision.Detail,
		}
		return s, []event.Event{rejected}
	}

	next := s
	next.Meta.Revision = s.Meta.Revision + 1
	if _, ok := cmd.(command.AdvanceDay); ok {
		// dayStarted's dayIndex++ happens here, before ctx is built, so
		// every event this Step call emits — including DayStarted itself
		// — is stamped with the day the pipeline is advancing into, not
		// the one it left.
		next.Meta.DayIndex++
	}

	ctx := event.NewSeqContext(next.Meta.DayIndex, next.Meta.Revision, cmd.CmdId())
	next = dispatch(next, cmd, r, bal, ctx)

	violations := verify.Verify(next)
	events := ctx.Events()
	if len(violations) > 0 {
		common := event.Common{
			Day:      next.Meta.DayIndex,
			Revision: next.Meta.Revision,
			CmdId:    cmd.CmdId(),
		}
		extra := make([]event.Event, len(violations))
		for i, v := range violations {
			extra[i] = event.InvariantViolated{
				Common:      common,
				InvariantId: v.InvariantId,
				Details:     v.Detail,
			}
		}
		events = event.InsertBeforeLast(events, extra)
	}

	return next, event.FinalizeEvents(events)
}

// dispatch is the exhaustive switch over every command kind; a missing
// case is a compile-time error by construction since Command is closed.
func dispatch(s state.GameState, cmd command.Command, r *rng.Rng, bal config.Balance, ctx *event.SeqContext) state.GameState {
	switch c := cmd.(type) {
	case command.AdvanceDay:
		return handleAdvanceDay(s, r, bal, ctx)
	case command.PostContract:
		return handlePostContract(s, c, ctx)
	case command.CreateContract:
		return handleCreateContract(s, c, bal, ctx)
	case command.UpdateContractTerms:
		return handleUpdateContractTerms(s, c, ctx)
	case command.CancelContract:
		return handleCancelContract(s, c, ctx)
	case command.CloseReturn:
		return handleCloseReturn(s, c, bal, ctx)
	case command.SellTrophies:
		return handleSellTrophies(s, c, ctx)
	case command.PayTax:
		return handlePayTax(s, c, ctx)
	case command.SetProofPolicy:
		return handleSetProofPolicy(s, c, ctx)
	default:
		panic("reducer: unhandled command kind")
	}
}
