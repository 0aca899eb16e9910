// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state defines the aggregate GameState the reducer threads
// through every Step call, grounded on the teacher's snowman/Block +
// chain state-machine shape (_examples/luxfi-consensus/.../state): one
// value type carrying every piece of mutable data, no hidden globals,
// no interfaces — plain structs copied and partially replaced by each
// handler rather than mutated in place.
package state

import (
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// IDSeq is the next-to-assign counter for every value-typed ID domain.
// Kept on Meta rather than derived from collection lengths because IDs
// are never reused after a contract is archived or a hero is removed
// (spec.md §3 "IDs are assigned once and never reused").
type IDSeq struct {
	NextContractId       ids.ContractId
	NextActiveContractId ids.ActiveContractId
	NextHeroId           ids.HeroId
}

// Meta carries bookkeeping that is not itself game content: the save
// format version, the RNG seed the state was created with, the current
// day, the command-application revision counter, ID sequencing, and the
// guild's outstanding tax bill.
type Meta struct {
	SaveVersion int
	Seed        int64
	DayIndex    int
	Revision    int64
	Ids         IDSeq

	TaxDueDay      int
	TaxAmountDue   int64 // copper
	TaxPenalty     int64 // copper, accrues on missed payments
	TaxMissedCount int
}

// Guild is the player's standing.
type Guild struct {
	Rank                     xstatus.GuildRank
	Reputation               int
	CompletedContractsTotal  int
	ContractsTowardNextRank  int
	ProofPolicy              xstatus.ProofPolicy
}

// Region is the shared world state contracts are drawn against.
type Region struct {
	Stability int // [0,100]
}

// Economy is the guild's liquid assets. Invariant: MoneyCopper >=
// ReservedCopper >= 0 (spec.md §3).
type Economy struct {
	MoneyCopper   int64
	ReservedCopper int64
	TrophiesStock int64
}

// Contracts groups every contract by its lifecycle stage (spec.md §3).
type Contracts struct {
	Inbox   []ContractDraft
	Board   []BoardContract
	Active  []ActiveContract
	Returns []ReturnPacket
	Archive []BoardContract
}

// Heroes groups the roster and same-day arrivals.
//
// ArrivalsToday is transient presentation state, not replay-significant:
// it is rebuilt by handleAdvanceDay every day and is elided from
// canonical serialization (SPEC_FULL.md §C, spec.md §4.2).
type Heroes struct {
	Roster        []Hero
	ArrivalsToday []ids.HeroId
}

// GameState is the entire simulation: everything step needs to compute
// the next state and the emitted events, and nothing else.
type GameState struct {
	Meta      Meta
	Guild     Guild
	Region    Region
	Economy   Economy
	Contracts Contracts
	Heroes    Heroes
}

// SaveVersion is the current canonical-serialization format version
// (spec.md §4.2 "UnsupportedSaveVersion").
const SaveVersion = 1

// Clone returns a shallow copy of s. Handlers build the next state from
// a clone, replacing only the top-level fields and slices they touch;
// unmodified slices keep sharing their backing array with the previous
// state; because a GameState value is conceptually append-only, two
// states can safely observe the same backing array.
func (s GameState) Clone() GameState {
	return s
}
