// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package balance turns config.Balance's tunable constants into the
// deterministic integer formulas the pipeline policies evaluate:
// hero combat power, contract attractiveness, and copper pricing.
// Every function here is pure and integer-only (spec.md §1 "no floats
// in economy math"), grounded on the teacher's utils/math/safe_math.go
// idiom of small, named, single-purpose integer helpers rather than
// one large opaque scoring function.
package balance

import (
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
	safemath "github.com/ironguild/guildsim/utils/math"
	"github.com/ironguild/guildsim/xstatus"
)

// CopperPerGp is the fixed exchange rate between the gp unit pricing
// bands are authored in and the copper unit the economy stores
// (SPEC_FULL.md §C "pricing bands").
const CopperPerGp = 100

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return safemath.Max(safemath.Min(v, hi), lo)
}

// HeroPower scores a hero's combat effectiveness (SPEC_FULL.md §C):
// basePowerByRank + classBonus + (courage - greed/2) + historyCompleted*2,
// clamped to [0,200].
func HeroPower(hero state.Hero, bal config.Balance) int {
	raw := bal.BasePowerByRank[hero.Rank] + bal.ClassBonus[hero.Class] +
		(hero.Traits.Courage - hero.Traits.Greed/2) +
		hero.HistoryCompleted*2
	return Clamp(raw, 0, 200)
}

// FeeWeight converts a contract's copper fee into a small integer bonus,
// one point of attractiveness per gp (SPEC_FULL.md §C "feeWeight").
func FeeWeight(feeCopper int64) int {
	return int(feeCopper / CopperPerGp)
}

// RiskPenalty grows with a contract's difficulty and shrinks with a
// hero's courage; never negative (SPEC_FULL.md §C "riskPenalty").
func RiskPenalty(baseDifficulty, courage int) int {
	return safemath.Max(baseDifficulty-courage/2, 0)
}

// Attractiveness scores how appealing board is to hero: heroPower minus
// the contract's difficulty, plus its fee weight, minus a risk penalty
// (SPEC_FULL.md §C "attractiveness"). Negative values are legal — a
// negative-or-below-threshold score is what makes a pickup
// "unprofitable" or "too_risky" (spec.md §4.6 "Contract pickup").
func Attractiveness(hero state.Hero, board state.BoardContract, bal config.Balance) int {
	return HeroPower(hero, bal) - board.BaseDifficulty +
		FeeWeight(board.Fee) - RiskPenalty(board.BaseDifficulty, hero.Traits.Courage)
}

// SamplePayoutCopper draws a uniform gp amount from rank's pricing band
// and converts it to copper (spec.md §4.6 "Pricing").
func SamplePayoutCopper(rank xstatus.GuildRank, bal config.Balance, r *rng.Rng) int64 {
	band := bal.PricingByRank[rank]
	span := band.MaxGp - band.MinGp + 1
	gp := band.MinGp + r.NextInt(span)
	return int64(gp) * CopperPerGp
}

// SampleDifficulty draws a single difficulty-variance value and applies
// it to rank's base difficulty (spec.md §4.7 step 2 "draw difficulty
// variance"): base[rank] + nextInt(span) - span/2, clamped to [0,100].
func SampleDifficulty(rank xstatus.GuildRank, bal config.Balance, r *rng.Rng) int {
	variance := r.NextInt(bal.DifficultyVarianceSpan) - bal.DifficultyVarianceSpan/2
	return Clamp(bal.BaseDifficultyByRank[rank]+variance, 0, 100)
}

// SampleClientDepositCopper is a Bernoulli draw for whether a client
// deposit is present, and if so, a basis-point fraction of payout
// (spec.md §4.6 "Pricing": "Bernoulli for presence... 50% basis-point
// multiplier"). Always draws exactly once from r, win or lose, so
// replay draw-counts stay stable regardless of outcome.
func SampleClientDepositCopper(payoutCopper int64, bal config.Balance, r *rng.Rng) int64 {
	draw := r.NextInt(10000)
	if draw >= bal.ClientDepositChanceBps {
		return 0
	}
	return payoutCopper * int64(bal.ClientDepositBps) / 10000
}

// TraitsFromNameIndex derives a deterministic starting trait triple for
// an arriving hero from the name-pool index already drawn for them
// (spec.md §4.7 step 3 draws exactly one RNG value per hero — its name
// index — so traits are fixed functions of that index rather than
// independent draws, keeping the per-hero draw count at one).
func TraitsFromNameIndex(nameIndex int) state.Traits {
	return state.Traits{
		Greed:   Clamp(20+(nameIndex*13)%60, 0, 100),
		Honesty: Clamp(30+(nameIndex*7)%60, 0, 100),
		Courage: Clamp(25+(nameIndex*11)%60, 0, 100),
	}
}
