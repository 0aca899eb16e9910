// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package balance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

func TestHeroPowerClampsToRange(t *testing.T) {
	require := require.New(t)
	bal := config.Default()

	weak := state.Hero{ID: 1, Rank: xstatus.RankF, Class: xstatus.ClassCleric}
	require.GreaterOrEqual(HeroPower(weak, bal), 0)

	strong := state.Hero{
		ID: 2, Rank: xstatus.RankS, Class: xstatus.ClassWarrior,
		Traits:           state.Traits{Courage: 100},
		HistoryCompleted: 100,
	}
	require.LessOrEqual(HeroPower(strong, bal), 200)
}

func TestFeeWeight(t *testing.T) {
	require.Equal(t, 5, FeeWeight(500))
	require.Equal(t, 0, FeeWeight(99))
}

func TestRiskPenaltyNeverNegative(t *testing.T) {
	require := require.New(t)
	require.Equal(0, RiskPenalty(5, 100))
	require.Equal(5, RiskPenalty(10, 10))
}

func TestAttractivenessDeterministic(t *testing.T) {
	require := require.New(t)
	bal := config.Default()

	hero := state.Hero{
		ID: 1, Rank: xstatus.RankD, Class: xstatus.ClassRogue,
		Traits: state.Traits{Courage: 40, Greed: 10},
	}
	board := state.BoardContract{ID: ids.ContractId(1), BaseDifficulty: 20, Fee: 300}

	a1 := Attractiveness(hero, board, bal)
	a2 := Attractiveness(hero, board, bal)
	require.Equal(a1, a2)
}

func TestSamplePayoutCopperWithinBand(t *testing.T) {
	require := require.New(t)
	bal := config.Default()
	r := rng.New(7)

	for i := 0; i < 100; i++ {
		c := SamplePayoutCopper(xstatus.RankC, bal, r)
		band := bal.PricingByRank[xstatus.RankC]
		require.GreaterOrEqual(c, int64(band.MinGp)*CopperPerGp)
		require.LessOrEqual(c, int64(band.MaxGp)*CopperPerGp)
	}
}

func TestSampleClientDepositCopperAlwaysDrawsOnce(t *testing.T) {
	require := require.New(t)
	bal := config.Default()
	r := rng.New(3)

	before := r.Draws()
	SampleClientDepositCopper(1000, bal, r)
	require.Equal(before+1, r.Draws())
}

func TestSampleClientDepositCopperIsFractionOfPayout(t *testing.T) {
	require := require.New(t)
	bal := config.Default()
	bal.ClientDepositChanceBps = 10000 // always present, deterministic branch
	r := rng.New(11)

	got := SampleClientDepositCopper(1000, bal, r)
	require.Equal(int64(500), got)
}
