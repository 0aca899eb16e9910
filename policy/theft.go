// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import (
	"github.com/ironguild/guildsim/balance"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/xstatus"
)

// TheftResult is ResolveTheft's decision DTO.
type TheftResult struct {
	SuspectedTheft bool
	Stolen         int
	Reported       int
}

// ResolveTheft decides whether a hero skims trophies before reporting
// back (spec.md §4.6 "Theft"). Ineligible cases (DEATH/MISSING outcome,
// zero trophies, or a missing hero/board reference) draw nothing and
// return a zero result — callers must check eligibility via
// heroPresent/boardPresent themselves since this package never sees
// GameState directly. Eligible cases always draw exactly once.
//
// fee is in copper; theftChance is computed against the gp-denominated
// fee (fee / balance.CopperPerGp) since greed and honesty are both
// [0,100]-scaled and a raw-copper fee would swamp the comparison.
func ResolveTheft(
	outcome xstatus.Outcome,
	trophies int,
	heroPresent, boardPresent bool,
	salvage xstatus.SalvagePolicy,
	feeCopper int64,
	greed, honesty int,
	r *rng.Rng,
) TheftResult {
	if outcome == xstatus.OutcomeDeath || outcome == xstatus.OutcomeMissing ||
		trophies == 0 || !heroPresent || !boardPresent {
		return TheftResult{}
	}

	feeGp := int(feeCopper / balance.CopperPerGp)

	var theftChance int
	switch salvage {
	case xstatus.SalvageGuild:
		if feeGp == 0 {
			theftChance = greed
		} else {
			theftChance = balance.Clamp(greed-feeGp/2, 0, 100)
		}
	case xstatus.SalvageHero:
		theftChance = 0
	case xstatus.SalvageSplit:
		theftChance = balance.Clamp((greed-honesty)/2, 0, 100)
	}

	if r.NextInt(100) >= theftChance {
		return TheftResult{}
	}

	stolen := (trophies + 1) / 2 // ceil(trophies/2)
	return TheftResult{
		SuspectedTheft: true,
		Stolen:         stolen,
		Reported:       trophies - stolen,
	}
}
