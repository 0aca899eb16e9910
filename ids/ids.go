// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ids wraps each ID domain in a distinct type so a ContractId can
// never be passed where a HeroId is expected, the way the teacher keeps
// ids.ID and ids.NodeID distinct instead of passing raw integers around
// (see github.com/luxfi/consensus's dependency on github.com/luxfi/ids).
// github.com/luxfi/ids itself wraps 32-byte content-addressed identifiers
// for blockchain objects; this domain's IDs are small monotonically
// increasing integers (spec.md §3: "ids: nextContractId, nextHeroId,
// nextActiveContractId : int > 0"), so the wrapper is built fresh here
// rather than imported — see DESIGN.md for the dependency note.
package ids

import "strconv"

// ContractId identifies an inbox draft or a board contract. Drafts and
// board contracts share one ID space: PostContract moves a draft to the
// board under the same ContractId, it never mints a new one.
type ContractId int64

// ActiveContractId identifies a taken (active) contract.
type ActiveContractId int64

// HeroId identifies a hero.
type HeroId int64

func (id ContractId) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id ActiveContractId) String() string { return strconv.FormatInt(int64(id), 10) }
func (id HeroId) String() string           { return strconv.FormatInt(int64(id), 10) }

// Int64 unwraps the raw value for canonical serialization, which emits
// value-typed IDs as bare integers (spec.md §4.2).
func (id ContractId) Int64() int64       { return int64(id) }
func (id ActiveContractId) Int64() int64 { return int64(id) }
func (id HeroId) Int64() int64           { return int64(id) }

// Valid reports whether the ID is a legal (strictly positive) member of
// its domain; the zero value is never assigned by any sequence.
func (id ContractId) Valid() bool       { return id > 0 }
func (id ActiveContractId) Valid() bool { return id > 0 }
func (id HeroId) Valid() bool           { return id > 0 }
