// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logmock is a hand-written gomock-style mock of log.Logger, in
// the spirit of the teacher's validator/validatorsmock re-export: a small
// checked-in mock rather than a generated file nobody owns.
package logmock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/ironguild/guildsim/log"
)

// Logger is a mock of log.Logger.
type Logger struct {
	ctrl     *gomock.Controller
	recorder *LoggerMockRecorder
}

// LoggerMockRecorder records expected calls on Logger.
type LoggerMockRecorder struct {
	mock *Logger
}

// NewLogger returns a new mock Logger.
func NewLogger(ctrl *gomock.Controller) *Logger {
	m := &Logger{ctrl: ctrl}
	m.recorder = &LoggerMockRecorder{m}
	return m
}

// EXPECT returns the recorder for setting expectations.
func (m *Logger) EXPECT() *LoggerMockRecorder {
	return m.recorder
}

func (m *Logger) Debug(msg string, kv ...any) {
	m.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	m.ctrl.Call(m, "Debug", args...)
}

func (mr *LoggerMockRecorder) Debug(msg any, kv ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debug", reflect.TypeOf((*Logger)(nil).Debug), args...)
}

func (m *Logger) Info(msg string, kv ...any) {
	m.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	m.ctrl.Call(m, "Info", args...)
}

func (mr *LoggerMockRecorder) Info(msg any, kv ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*Logger)(nil).Info), args...)
}

func (m *Logger) Warn(msg string, kv ...any) {
	m.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	m.ctrl.Call(m, "Warn", args...)
}

func (mr *LoggerMockRecorder) Warn(msg any, kv ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Warn", reflect.TypeOf((*Logger)(nil).Warn), args...)
}

func (m *Logger) Error(msg string, kv ...any) {
	m.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	m.ctrl.Call(m, "Error", args...)
}

func (mr *LoggerMockRecorder) Error(msg any, kv ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	args := append([]any{msg}, kv...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Error", reflect.TypeOf((*Logger)(nil).Error), args...)
}

func (m *Logger) With(kv ...any) log.Logger {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "With", kv...)
	l, _ := ret[0].(log.Logger)
	if l == nil {
		return m
	}
	return l
}

func (mr *LoggerMockRecorder) With(kv ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "With", reflect.TypeOf((*Logger)(nil).With), kv...)
}

var _ log.Logger = (*Logger)(nil)
