// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify is the post-mutation invariant checker (spec.md §4.4,
// §8 "Universal invariants"). It is defensive: a violation means the
// reducer has a bug, never that a caller supplied bad input — those are
// rejected by command.CanApply before a handler ever runs. verify never
// mutates its argument and never panics; it always returns, even on a
// state with every invariant broken at once, grounded on the teacher's
// utils/wrappers.Errs idiom of collecting every failure instead of
// stopping at the first (_examples/luxfi-consensus/utils/wrappers/errors.go).
package verify

import (
	"fmt"

	"github.com/ironguild/guildsim/set"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// Violation is one broken invariant, carrying a stable identifier and a
// deterministic detail string — no timestamps, no pointer addresses
// (spec.md §4.4).
type Violation struct {
	InvariantId string
	Detail      string
}

// Invariant identifiers, one per rule in spec.md §3/§8. Stable strings:
// callers may match on them, and golden replay tests assert on them.
const (
	IDMonotoneContractId       = "monotone_contract_id"
	IDMonotoneActiveId         = "monotone_active_id"
	IDMonotoneHeroId           = "monotone_hero_id"
	IDLockedHasActive          = "locked_board_has_active"
	IDReturnReadyHasReturn     = "return_ready_has_return"
	IDReturnReadyHeroOnMission = "return_ready_hero_on_mission"
	IDReturnRefersActive       = "return_refers_active"
	IDWipDaysRemainingRange    = "wip_days_remaining_range"
	IDActiveDaysRemainingNeg   = "active_days_remaining_negative"
	IDHeroSingleMission        = "hero_single_mission"
	IDEconomyNegative          = "economy_negative"
	IDEconomyMoneyVsReserved   = "economy_money_vs_reserved"
	IDStabilityRange           = "stability_range"
	IDReputationRange          = "reputation_range"
)

// Verify runs every invariant in spec.md §3/§8 against s and returns
// every violation found, in a stable, deterministic order (ascending ID
// within each check, checks in the order declared below). It never
// throws (spec.md §4.4 "The verifier does not throw").
func Verify(s state.GameState) []Violation {
	var out []Violation

	out = append(out, checkMonotoneIds(s)...)
	out = append(out, checkLockedBoardsHaveActive(s)...)
	out = append(out, checkReturnReady(s)...)
	out = append(out, checkReturnsReferActive(s)...)
	out = append(out, checkActiveDaysRemaining(s)...)
	out = append(out, checkHeroSingleMission(s)...)
	out = append(out, checkEconomy(s)...)
	out = append(out, checkRegionAndGuildRanges(s)...)

	return out
}

func maxContractId(s state.GameState) int64 {
	var max int64
	for _, d := range s.Contracts.Inbox {
		if v := d.ID.Int64(); v > max {
			max = v
		}
	}
	for _, b := range s.Contracts.Board {
		if v := b.ID.Int64(); v > max {
			max = v
		}
	}
	for _, b := range s.Contracts.Archive {
		if v := b.ID.Int64(); v > max {
			max = v
		}
	}
	return max
}

func maxActiveId(s state.GameState) int64 {
	var max int64
	for _, a := range s.Contracts.Active {
		if v := a.ID.Int64(); v > max {
			max = v
		}
	}
	return max
}

func maxHeroId(s state.GameState) int64 {
	var max int64
	for _, h := range s.Heroes.Roster {
		if v := h.ID.Int64(); v > max {
			max = v
		}
	}
	return max
}

// checkMonotoneIds verifies spec.md §3 "IDs monotone and strictly
// greater than any existing member of their domain".
func checkMonotoneIds(s state.GameState) []Violation {
	var out []Violation
	if want := maxContractId(s); s.Meta.Ids.NextContractId.Int64() <= want {
		out = append(out, Violation{
			InvariantId: IDMonotoneContractId,
			Detail:      fmt.Sprintf("nextContractId=%d must be > max existing contract id %d", s.Meta.Ids.NextContractId, want),
		})
	}
	if want := maxActiveId(s); s.Meta.Ids.NextActiveContractId.Int64() <= want {
		out = append(out, Violation{
			InvariantId: IDMonotoneActiveId,
			Detail:      fmt.Sprintf("nextActiveContractId=%d must be > max existing active id %d", s.Meta.Ids.NextActiveContractId, want),
		})
	}
	if want := maxHeroId(s); s.Meta.Ids.NextHeroId.Int64() <= want {
		out = append(out, Violation{
			InvariantId: IDMonotoneHeroId,
			Detail:      fmt.Sprintf("nextHeroId=%d must be > max existing hero id %d", s.Meta.Ids.NextHeroId, want),
		})
	}
	return out
}

// checkLockedBoardsHaveActive verifies spec.md §3 "Board LOCKED ⇒ at
// least one non-CLOSED active references it" (spec.md §8 first bullet).
func checkLockedBoardsHaveActive(s state.GameState) []Violation {
	var out []Violation
	for _, b := range s.Contracts.Board {
		if b.Status != xstatus.ContractLocked {
			continue
		}
		found := false
		for _, a := range s.Contracts.Active {
			if a.BoardContractId == b.ID && a.Status != xstatus.ActiveClosed {
				found = true
				break
			}
		}
		if !found {
			out = append(out, Violation{
				InvariantId: IDLockedHasActive,
				Detail:      fmt.Sprintf("board %d is LOCKED but has no non-CLOSED active contract", b.ID),
			})
		}
	}
	return out
}

// checkReturnReady verifies spec.md §3 "Active RETURN_READY ⇒ exactly
// one return packet references it; hero status is ON_MISSION".
func checkReturnReady(s state.GameState) []Violation {
	var out []Violation
	for _, a := range s.Contracts.Active {
		if a.Status != xstatus.ActiveReturnReady {
			continue
		}
		count := 0
		for _, r := range s.Contracts.Returns {
			if r.ActiveContractId == a.ID {
				count++
			}
		}
		if count != 1 {
			out = append(out, Violation{
				InvariantId: IDReturnReadyHasReturn,
				Detail:      fmt.Sprintf("active %d is RETURN_READY but has %d return packets, want exactly 1", a.ID, count),
			})
		}
		for _, hid := range a.HeroIds {
			idx := s.Heroes.FindHero(hid)
			if idx < 0 || s.Heroes.Roster[idx].Status != xstatus.HeroOnMission {
				out = append(out, Violation{
					InvariantId: IDReturnReadyHeroOnMission,
					Detail:      fmt.Sprintf("active %d is RETURN_READY but hero %d is not ON_MISSION", a.ID, hid),
				})
			}
		}
	}
	return out
}

// checkReturnsReferActive verifies spec.md §3 "Return packet
// activeContractId refers to an existing active contract".
func checkReturnsReferActive(s state.GameState) []Violation {
	var out []Violation
	for _, r := range s.Contracts.Returns {
		if s.Contracts.FindActive(r.ActiveContractId) < 0 {
			out = append(out, Violation{
				InvariantId: IDReturnRefersActive,
				Detail:      fmt.Sprintf("return for active %d refers to a non-existent active contract", r.ActiveContractId),
			})
		}
	}
	return out
}

// checkActiveDaysRemaining verifies spec.md §3 "All WIP daysRemaining ∈
// {1,2}; all active daysRemaining ≥ 0".
func checkActiveDaysRemaining(s state.GameState) []Violation {
	var out []Violation
	for _, a := range s.Contracts.Active {
		if a.DaysRemaining < 0 {
			out = append(out, Violation{
				InvariantId: IDActiveDaysRemainingNeg,
				Detail:      fmt.Sprintf("active %d has negative daysRemaining %d", a.ID, a.DaysRemaining),
			})
		}
		if a.Status == xstatus.ActiveWIP && (a.DaysRemaining < 1 || a.DaysRemaining > 2) {
			out = append(out, Violation{
				InvariantId: IDWipDaysRemainingRange,
				Detail:      fmt.Sprintf("active %d is WIP with daysRemaining=%d, want 1 or 2", a.ID, a.DaysRemaining),
			})
		}
	}
	return out
}

// checkHeroSingleMission verifies spec.md §3 "ON_MISSION hero appears in
// exactly one non-CLOSED active" using set.Set to collect membership
// counts without relying on map iteration order anywhere in the result
// (the violation list itself is built by a single ascending pass over
// the roster, set membership is only used to count).
func checkHeroSingleMission(s state.GameState) []Violation {
	counts := make(map[ids64]int, len(s.Heroes.Roster))
	for _, a := range s.Contracts.Active {
		if a.Status == xstatus.ActiveClosed {
			continue
		}
		seenThisActive := set.Of[int64]()
		for _, hid := range a.HeroIds {
			v := hid.Int64()
			if seenThisActive.Contains(v) {
				continue
			}
			seenThisActive.Add(v)
			counts[ids64(v)]++
		}
	}

	var out []Violation
	for _, h := range s.Heroes.Roster {
		if h.Status != xstatus.HeroOnMission {
			continue
		}
		if got := counts[ids64(h.ID.Int64())]; got != 1 {
			out = append(out, Violation{
				InvariantId: IDHeroSingleMission,
				Detail:      fmt.Sprintf("hero %d is ON_MISSION but appears in %d non-CLOSED actives, want exactly 1", h.ID, got),
			})
		}
	}
	return out
}

// ids64 is a local alias so the counts map above reads as hero-id-keyed
// without importing ids just for a map key type.
type ids64 int64

// checkEconomy verifies spec.md §3 "moneyCopper, reservedCopper,
// trophiesStock ≥ 0; moneyCopper ≥ reservedCopper".
func checkEconomy(s state.GameState) []Violation {
	var out []Violation
	e := s.Economy
	if e.MoneyCopper < 0 || e.ReservedCopper < 0 || e.TrophiesStock < 0 {
		out = append(out, Violation{
			InvariantId: IDEconomyNegative,
			Detail:      fmt.Sprintf("economy fields must be >= 0: money=%d reserved=%d trophies=%d", e.MoneyCopper, e.ReservedCopper, e.TrophiesStock),
		})
	}
	if e.MoneyCopper < e.ReservedCopper {
		out = append(out, Violation{
			InvariantId: IDEconomyMoneyVsReserved,
			Detail:      fmt.Sprintf("moneyCopper=%d must be >= reservedCopper=%d", e.MoneyCopper, e.ReservedCopper),
		})
	}
	return out
}

// checkRegionAndGuildRanges verifies spec.md §3 "stability ∈ [0,100];
// reputation ∈ [0,100]".
func checkRegionAndGuildRanges(s state.GameState) []Violation {
	var out []Violation
	if s.Region.Stability < 0 || s.Region.Stability > 100 {
		out = append(out, Violation{
			InvariantId: IDStabilityRange,
			Detail:      fmt.Sprintf("stability=%d must be in [0,100]", s.Region.Stability),
		})
	}
	if s.Guild.Reputation < 0 || s.Guild.Reputation > 100 {
		out = append(out, Violation{
			InvariantId: IDReputationRange,
			Detail:      fmt.Sprintf("reputation=%d must be in [0,100]", s.Guild.Reputation),
		})
	}
	return out
}
