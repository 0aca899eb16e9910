// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package event

// SeqContext accumulates events emitted by a single handler invocation
// with Seq left at 0; the reducer finalizes Seq to 1..N after the
// invariant verifier runs (spec.md §4.8, §9 "sequencing context": "This
// avoids threading seq numbers through every policy").
type SeqContext struct {
	day      int
	revision int64
	cmdId    int64
	events   []Event
}

// NewSeqContext creates a context that stamps every emitted event with
// the given day, revision and cmdId; Seq stays 0 until Finalize.
func NewSeqContext(day int, revision int64, cmdId int64) *SeqContext {
	return &SeqContext{day: day, revision: revision, cmdId: cmdId}
}

// Emit appends e to the pending batch, stamping its Common header.
// Handlers must never set Seq themselves.
func (c *SeqContext) Emit(e Event) {
	c.events = append(c.events, e.withCommon(Common{
		Day:      c.day,
		Revision: c.revision,
		CmdId:    c.cmdId,
		Seq:      0,
	}))
}

// Events returns the pending batch with Seq still 0.
func (c *SeqContext) Events() []Event {
	return c.events
}

// Finalize assigns Seq 1..N in emission order and returns the finalized
// slice; it does not mutate the context's internal slice in place so a
// caller can inspect the pre-finalized batch if needed.
func (c *SeqContext) Finalize() []Event {
	return FinalizeEvents(c.events)
}

// FinalizeEvents assigns Seq 1..N to events in order and returns the
// result. Exported so the reducer can finalize a batch that has had
// InvariantViolated events spliced into it after the handler returned.
func FinalizeEvents(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = e.withSeq(i + 1)
	}
	return out
}

// InsertBeforeLast inserts extra events immediately before the final
// event in events if that final event is a DayEnded; otherwise it
// appends extra to the end (spec.md §4.8: "insert InvariantViolated
// events... before the last event if that last event is DayEnded;
// otherwise append").
func InsertBeforeLast(events []Event, extra []Event) []Event {
	if len(extra) == 0 {
		return events
	}
	if len(events) > 0 {
		if _, isDayEnded := events[len(events)-1].(DayEnded); isDayEnded {
			out := make([]Event, 0, len(events)+len(extra))
			out = append(out, events[:len(events)-1]...)
			out = append(out, extra...)
			out = append(out, events[len(events)-1])
			return out
		}
	}
	out := make([]Event, 0, len(events)+len(extra))
	out = append(out, events...)
	out = append(out, extra...)
	return out
}
