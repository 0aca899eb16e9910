// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing computes the replay-comparison digests spec.md §4.3
// defines: SHA-256 over the canonical serialization of a GameState or
// an event batch, rendered as lowercase hex. Two independent Step runs
// over the same command sequence must produce identical digests (spec.md
// §8 "run twice, same sequence, compare hashState and hashEvents").
package hashing

import (
	"crypto/sha256"

	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/serialize"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/utils/formatting"
)

// HashState returns the lowercase hex SHA-256 digest of s's canonical
// JSON encoding.
func HashState(s state.GameState) string {
	return hashBytes(serialize.MarshalState(s))
}

// HashEvents returns the lowercase hex SHA-256 digest of events'
// canonical JSON encoding. Order-sensitive: reordering events changes
// the digest even though every individual event is unchanged (spec.md
// §8, demonstrated by serialize's TestMarshalEventsOrderAffectsHash).
func HashEvents(events []event.Event) string {
	return hashBytes(serialize.MarshalEvents(events))
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	hex, err := formatting.Encode(formatting.HexNC, sum[:])
	if err != nil {
		// formatting.HexNC is always a valid encoding; this path is
		// unreachable.
		panic(err)
	}
	return hex
}
