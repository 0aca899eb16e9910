// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config carries every tunable balance constant as one validated
// value, the way the teacher threads config.Parameters (K/Alpha/Beta/
// round timeouts) through its consensus engines instead of hardcoding
// thresholds inline (see _examples/luxfi-consensus/config/config.go,
// config/parameters.go, config/validator.go). Parameters there gate
// consensus voting; Balance here gates contract-resolution economics, but
// the shape — one struct, a Default() constructor, a Validate() method
// that returns one sentinel error per violated field — is the same idiom.
package config

import (
	"errors"

	"github.com/ironguild/guildsim/xstatus"
)

// Sentinel validation errors, one per Balance invariant, grounded on the
// teacher's config/errors.go (ErrInvalidK, ErrInvalidAlpha, ...) style.
var (
	ErrPartialFixedRange   = errors.New("balance: PartialFixed must be in [0,100]")
	ErrFailMinRange        = errors.New("balance: FailMin must be in [0,100]")
	ErrSuccessBandNegative = errors.New("balance: PartialFixed+FailMin must leave room for a success band")
	ErrMissingChanceRange  = errors.New("balance: MissingChance must be in [0,100]")
	ErrDaysInitRange       = errors.New("balance: DaysInit must be in [1,2]")
	ErrTaxMaxMissedRange   = errors.New("balance: TaxMaxMissed must be >= 1")
	ErrTaxPenaltyBpsRange  = errors.New("balance: TaxPenaltyBps must be in [0,10000]")
	ErrDepositChanceRange  = errors.New("balance: ClientDepositChanceBps must be in [0,10000]")
	ErrDepositBpsRange     = errors.New("balance: ClientDepositBps must be in [0,10000]")
	ErrRankTableIncomplete = errors.New("balance: rank-indexed table must cover every GuildRank")
	ErrPricingBandInverted = errors.New("balance: pricing band min must be <= max")
	ErrVarianceSpanRange   = errors.New("balance: DifficultyVarianceSpan must be >= 1")
	ErrAutoResolveWindow   = errors.New("balance: DraftAutoResolveWindowDays must be >= 1")
)

// PricingBand is the inclusive [min,max] gp range samplePayoutCopper
// draws from for a given rank (spec.md §4.6).
type PricingBand struct {
	MinGp int
	MaxGp int
}

// Balance is every replay-significant constant the pipeline policies
// consume. Changing any field changes future replays (spec.md §4.6:
// "Exact constants are fixed... changes break replay"), which is exactly
// why it is one explicit, validated value threaded through InitialState
// rather than scattered package-level constants.
type Balance struct {
	// Outcome resolution (spec.md §4.6 "Outcome resolution").
	Offset        int // OFFSET
	Mult          int // MULT
	PartialFixed  int // PARTIAL_FIXED
	FailMin       int // FAIL_MIN
	MissingChance int // MISSING_CHANCE, percent

	// WIP / pickup.
	DaysInit int // initial ActiveContract.daysRemaining

	// Auto-resolve inbox drafts (spec.md §4.7 step 4).
	AutoResolveRescheduleDays int // NEUTRAL bucket reschedule offset
	AutoResolveBadPenalty     int // stability penalty per BAD bucket

	// Pickup hard thresholds (SPEC_FULL.md §C attractiveness).
	UnprofitableThreshold int // attractiveness below this => "unprofitable"
	TooRiskyThreshold     int // baseDifficulty above this (at non-negative attractiveness) => "too_risky"

	// Pricing (spec.md §4.6 "Pricing").
	PricingByRank          map[xstatus.GuildRank]PricingBand
	ClientDepositChanceBps int // Bernoulli "presence" chance, basis points
	ClientDepositBps       int // deposit = payout * this / 10000

	// Day-advancement multipliers (spec.md §4.7 steps 2-3).
	InboxMultiplierByRank map[xstatus.GuildRank]int
	HeroMultiplierByRank  map[xstatus.GuildRank]int

	// Guild progression (spec.md §4.6 "Guild progression").
	ContractsForNextRank map[xstatus.GuildRank]int

	// Tax (spec.md §4.6 "Tax").
	TaxMaxMissed       int
	TaxPenaltyBps      int // 10% == 1000 bps
	TaxRescheduleDays  int
	InitialTaxDueDay   int
	InitialTaxAmount   int64 // copper

	// Hero power (SPEC_FULL.md §C heroPower).
	BasePowerByRank map[xstatus.GuildRank]int
	ClassBonus      map[xstatus.HeroClass]int

	// Initial economy (spec.md §8 scenario 1).
	InitialMoneyCopper int64

	// NamePool is the fixed, ordered candidate list hero arrivals draw
	// from by index (SPEC_FULL.md §C "name pool").
	NamePool []string

	// BaseDifficultyByRank + DifficultyVarianceSpan fix the "difficulty
	// variance" draw spec.md §4.7 step 2 names but does not enumerate:
	// baseDifficulty = clamp(base[rank] + nextInt(span) - span/2, 0, 100).
	BaseDifficultyByRank   map[xstatus.GuildRank]int
	DifficultyVarianceSpan int

	// DraftAutoResolveWindowDays is the number of days after creation an
	// inbox draft is first eligible for auto-resolution (spec.md §4.7
	// step 4 "due").
	DraftAutoResolveWindowDays int
}

// MaxSuccess is the clamp ceiling for rawSuccess (spec.md §4.6:
// "clamped into [MIN, MAX_SUCCESS = 100 − PARTIAL_FIXED − FAIL_MIN]").
func (b Balance) MaxSuccess() int {
	return 100 - b.PartialFixed - b.FailMin
}

// Validate checks every range and table-completeness invariant. Neither
// InitialState nor the reducer calls it; they read the fields directly
// and take the Balance as already validated by the caller.
func (b Balance) Validate() error {
	switch {
	case b.PartialFixed < 0 || b.PartialFixed > 100:
		return ErrPartialFixedRange
	case b.FailMin < 0 || b.FailMin > 100:
		return ErrFailMinRange
	case b.MaxSuccess() < 0:
		return ErrSuccessBandNegative
	case b.MissingChance < 0 || b.MissingChance > 100:
		return ErrMissingChanceRange
	case b.DaysInit < 1 || b.DaysInit > 2:
		return ErrDaysInitRange
	case b.TaxMaxMissed < 1:
		return ErrTaxMaxMissedRange
	case b.TaxPenaltyBps < 0 || b.TaxPenaltyBps > 10000:
		return ErrTaxPenaltyBpsRange
	case b.ClientDepositChanceBps < 0 || b.ClientDepositChanceBps > 10000:
		return ErrDepositChanceRange
	case b.ClientDepositBps < 0 || b.ClientDepositBps > 10000:
		return ErrDepositBpsRange
	case b.DifficultyVarianceSpan < 1:
		return ErrVarianceSpanRange
	case b.DraftAutoResolveWindowDays < 1:
		return ErrAutoResolveWindow
	}
	for r := xstatus.RankF; r <= xstatus.RankS; r++ {
		if _, ok := b.InboxMultiplierByRank[r]; !ok {
			return ErrRankTableIncomplete
		}
		if _, ok := b.HeroMultiplierByRank[r]; !ok {
			return ErrRankTableIncomplete
		}
		if _, ok := b.BasePowerByRank[r]; !ok {
			return ErrRankTableIncomplete
		}
		if _, ok := b.BaseDifficultyByRank[r]; !ok {
			return ErrRankTableIncomplete
		}
		if band, ok := b.PricingByRank[r]; !ok {
			return ErrRankTableIncomplete
		} else if band.MinGp > band.MaxGp {
			return ErrPricingBandInverted
		}
		if r != xstatus.RankS {
			if _, ok := b.ContractsForNextRank[r]; !ok {
				return ErrRankTableIncomplete
			}
		}
	}
	for c := xstatus.HeroClass(0); c < xstatus.HeroClass(xstatus.NumHeroClasses); c++ {
		if _, ok := b.ClassBonus[c]; !ok {
			return ErrRankTableIncomplete
		}
	}
	return nil
}
