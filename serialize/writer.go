// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serialize is the canonical JSON encoder and decoder for
// GameState and the event batch a Step call returns (spec.md §4.2, §6).
// Encoding is hand-written rather than delegated to a reflective
// marshaler: every object below is built field-by-field in the exact
// order §4.2/§6 specify, compact (no inserted whitespace), with value-typed
// IDs stripped to bare integers and enums emitted as their name string
// (spec.md §4.2 "Do not rely on reflective serializers that reorder
// keys" — see DESIGN.md for why this replaces the teacher's
// codec.JSONCodec, which was exactly such a reflective marshaler).
package serialize

import (
	"strconv"
	"strings"
)

// kv is one already-encoded "name":value pair; val must already be valid
// JSON text (produced by jstr/jint/buildObject/buildArray/etc.), never a
// raw Go value, so object/array assembly never has to re-escape anything.
type kv struct {
	key string
	val string
}

// buildObject concatenates pairs into a compact JSON object, preserving
// pairs' declaration order exactly — the whole point of hand-writing
// this instead of using a reflective marshaler.
func buildObject(pairs ...kv) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(p.key)
		b.WriteString(`":`)
		b.WriteString(p.val)
	}
	b.WriteByte('}')
	return b.String()
}

// buildArray concatenates already-encoded element strings into a
// compact JSON array.
func buildArray(vals []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v)
	}
	b.WriteByte(']')
	return b.String()
}

// jstr encodes a Go string as a JSON string literal, escaping exactly
// the characters spec.md §4.2 names: backslash, double quote, newline,
// carriage return and tab.
func jstr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func jint(v int) string     { return strconv.Itoa(v) }
func jint64(v int64) string { return strconv.FormatInt(v, 10) }
func jbool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// jintArray encodes a bare JSON array of integers (spec.md §6 "Integer
// arrays emitted as bare JSON arrays with no whitespace").
func jintArray(vals []int64) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = jint64(v)
	}
	return buildArray(strs)
}

// jstrArray encodes a bare JSON array of strings.
func jstrArray(vals []string) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = jstr(v)
	}
	return buildArray(strs)
}

// jnullableInt64 encodes *int64 as a JSON number or null (spec.md §6
// "Nullable ints as JSON number or null").
func jnullableInt64(v *int64) string {
	if v == nil {
		return "null"
	}
	return jint64(*v)
}
