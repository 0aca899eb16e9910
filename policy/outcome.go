// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package policy holds every pure pipeline decision function
// handleAdvanceDay and the other handlers orchestrate: outcome
// resolution, theft, auto-resolve buckets, contract pickup, WIP
// progression, economy settlement, tax, guild progression and
// stability (spec.md §4.6). Each function takes explicit inputs, never
// the whole GameState, so a grep over this package enumerates every RNG
// draw the simulation makes — the same "free function, explicit input"
// idiom the teacher uses for its snowball/decision helpers
// (_examples/luxfi-consensus/.../snowball).
package policy

import (
	"github.com/ironguild/guildsim/balance"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/xstatus"
)

// OutcomeResult is ResolveOutcome's decision DTO.
type OutcomeResult struct {
	Outcome         xstatus.Outcome
	TrophiesCount   int
	TrophiesQuality xstatus.TrophyQuality
}

// ResolveOutcome computes a completed active contract's outcome
// (spec.md §4.6 "Outcome resolution"). Draw order: success roll,
// optional missing/death sub-roll, optional trophy-count roll
// (SUCCESS only), then always a trophy-quality roll — 2 or 3 draws
// depending on outcome.
func ResolveOutcome(heroPower, difficulty int, bal config.Balance, r *rng.Rng) OutcomeResult {
	rawSuccess := (heroPower - difficulty + bal.Offset) * bal.Mult
	pSuccess := balance.Clamp(rawSuccess, 0, bal.MaxSuccess())
	pPartial := bal.PartialFixed

	roll := r.NextInt(100)

	var outcome xstatus.Outcome
	switch {
	case roll < pSuccess:
		outcome = xstatus.OutcomeSuccess
	case roll < pSuccess+pPartial:
		outcome = xstatus.OutcomePartial
	default:
		outcome = xstatus.OutcomeFail
		if roll >= 95 {
			subRoll := r.NextInt(100)
			if subRoll < bal.MissingChance {
				outcome = xstatus.OutcomeMissing
			} else {
				outcome = xstatus.OutcomeDeath
			}
		}
	}

	trophies := 0
	switch outcome {
	case xstatus.OutcomeSuccess:
		trophies = 1 + r.NextInt(3)
	case xstatus.OutcomePartial:
		trophies = 1
	}

	quality := xstatus.TrophyQuality(r.NextInt(xstatus.NumTrophyQualities))

	return OutcomeResult{
		Outcome:         outcome,
		TrophiesCount:   trophies,
		TrophiesQuality: quality,
	}
}
