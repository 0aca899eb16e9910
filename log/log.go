// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log is the ambient logging seam around the simulation core.
//
// Nothing in ids, xstatus, rng, state, balance, event, command, policy,
// verify, serialize or hashing ever imports this package, and within
// reducer only observer.go does: Step and every pure function it calls
// stay logger-free, so determinism never
// depends on what a caller chooses to log. reducer.Observer is the only
// place a Logger is consulted, always after Step has already returned.
package log

import (
	luxlog "github.com/luxfi/log"
)

// Logger is the minimal structured-logging surface this module depends
// on. It matches the Debug/Info/Warn/Error/With shape that
// github.com/luxfi/log.Logger exposes (see FromLux), so callers already
// holding one of those need no adapter code beyond FromLux itself.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

// FromLux adapts a github.com/luxfi/log.Logger into a Logger, so an
// adapter that already holds one of the teacher's loggers can pass it
// straight to reducer.Observer without writing its own shim.
func FromLux(l luxlog.Logger) Logger {
	if l == nil {
		return NoOp()
	}
	return luxAdapter{l}
}

type luxAdapter struct{ l luxlog.Logger }

func (a luxAdapter) Debug(msg string, kv ...any) { a.l.Debug(msg, kv...) }
func (a luxAdapter) Info(msg string, kv ...any)  { a.l.Info(msg, kv...) }
func (a luxAdapter) Warn(msg string, kv ...any)  { a.l.Warn(msg, kv...) }
func (a luxAdapter) Error(msg string, kv ...any) { a.l.Error(msg, kv...) }
func (a luxAdapter) With(kv ...any) Logger       { return luxAdapter{a.l.With(kv...)} }

// noop discards every call. It is the zero-configuration default for
// every Observer and every test harness, mirroring the teacher's
// log.NewNoOpLogger().
type noop struct{}

// NoOp returns a Logger that discards everything written to it.
func NoOp() Logger { return noop{} }

func (noop) Debug(string, ...any)   {}
func (noop) Info(string, ...any)    {}
func (noop) Warn(string, ...any)    {}
func (noop) Error(string, ...any)   {}
func (noop) With(...any) Logger     { return noop{} }
