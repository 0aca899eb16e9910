// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package xstatus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuildRank(t *testing.T) {
	require := require.New(t)

	require.True(RankF.Valid())
	require.True(RankS.Valid())
	require.False(GuildRank(math.MaxInt32).Valid())
	require.False(GuildRank(0).Valid())
	require.Equal("F", RankF.String())
	require.Equal("S", RankS.String())
	require.True(RankS.Max())
	require.False(RankF.Max())
	require.Equal(RankE, RankF.Next())
	require.Equal(RankS, RankS.Next())
}

func TestContractStatus(t *testing.T) {
	require := require.New(t)

	for _, s := range []ContractStatus{ContractOpen, ContractLocked, ContractCompleted} {
		require.True(s.Valid())
		require.NotEqual("INVALID", s.String())
	}
	require.False(ContractStatus(99).Valid())
}

func TestActiveStatus(t *testing.T) {
	require := require.New(t)

	require.True(ActiveWIP.Valid())
	require.True(ActiveReturnReady.Valid())
	require.True(ActiveClosed.Valid())
	require.False(ActiveStatus(99).Valid())
	require.Equal("WIP", ActiveWIP.String())
}

func TestSalvagePolicy(t *testing.T) {
	require := require.New(t)

	require.Equal("GUILD", SalvageGuild.String())
	require.Equal("HERO", SalvageHero.String())
	require.Equal("SPLIT", SalvageSplit.String())
	require.False(SalvagePolicy(99).Valid())
}

func TestHeroStatus(t *testing.T) {
	require := require.New(t)

	for _, s := range []HeroStatus{HeroAvailable, HeroOnMission, HeroBanned, HeroWarned} {
		require.True(s.Valid())
	}
	require.False(HeroStatus(99).Valid())
}

func TestHeroClass(t *testing.T) {
	require := require.New(t)

	require.Equal(5, NumHeroClasses)
	require.True(ClassWarrior.Valid())
	require.True(ClassRanger.Valid())
	require.False(HeroClass(99).Valid())
}

func TestOutcome(t *testing.T) {
	require := require.New(t)

	require.True(OutcomeDeath.RemovesHero())
	require.True(OutcomeMissing.RemovesHero())
	require.False(OutcomeSuccess.RemovesHero())
	require.False(OutcomePartial.AutoClosable())
	require.True(OutcomeSuccess.AutoClosable())
	require.True(OutcomeFail.AutoClosable())
	require.False(Outcome(99).Valid())
}

func TestTrophyQuality(t *testing.T) {
	require := require.New(t)

	require.Equal(4, NumTrophyQualities)
	require.True(QualityDamaged.Valid())
	require.False(TrophyQuality(99).Valid())
}

func TestAutoResolveBucket(t *testing.T) {
	require := require.New(t)

	require.True(BucketGood.Valid())
	require.True(BucketNeutral.Valid())
	require.True(BucketBad.Valid())
	require.False(AutoResolveBucket(99).Valid())
}

func TestProofPolicy(t *testing.T) {
	require := require.New(t)

	require.Equal("FAST", ProofFast.String())
	require.Equal("SOFT", ProofSoft.String())
	require.Equal("STRICT", ProofStrict.String())
	require.False(ProofPolicy(99).Valid())
}

func TestCloseDecision(t *testing.T) {
	require := require.New(t)

	require.Equal("ACCEPT", DecisionAccept.String())
	require.Equal("REJECT", DecisionReject.String())
	require.Equal("UNSPECIFIED", DecisionUnspecified.String())
	require.False(CloseDecision(99).Valid())
}

func TestRejectReason(t *testing.T) {
	require := require.New(t)

	require.Equal("NOT_FOUND", ReasonNotFound.String())
	require.Equal("INVALID_ARG", ReasonInvalidArg.String())
	require.Equal("INVALID_STATE", ReasonInvalidState.String())
	require.False(RejectReason(99).Valid())
}

func TestParseRoundTripsWithString(t *testing.T) {
	require := require.New(t)

	for _, r := range []GuildRank{RankF, RankE, RankD, RankC, RankB, RankA, RankS} {
		got, err := ParseGuildRank(r.String())
		require.NoError(err)
		require.Equal(r, got)
	}
	_, err := ParseGuildRank("Z")
	require.Error(err)

	for _, s := range []ContractStatus{ContractOpen, ContractLocked, ContractCompleted} {
		got, err := ParseContractStatus(s.String())
		require.NoError(err)
		require.Equal(s, got)
	}
	_, err = ParseContractStatus("BOGUS")
	require.Error(err)

	for _, s := range []ActiveStatus{ActiveWIP, ActiveReturnReady, ActiveClosed} {
		got, err := ParseActiveStatus(s.String())
		require.NoError(err)
		require.Equal(s, got)
	}
	_, err = ParseActiveStatus("BOGUS")
	require.Error(err)

	for _, p := range []SalvagePolicy{SalvageGuild, SalvageHero, SalvageSplit} {
		got, err := ParseSalvagePolicy(p.String())
		require.NoError(err)
		require.Equal(p, got)
	}
	_, err = ParseSalvagePolicy("BOGUS")
	require.Error(err)

	for _, s := range []HeroStatus{HeroAvailable, HeroOnMission, HeroBanned, HeroWarned} {
		got, err := ParseHeroStatus(s.String())
		require.NoError(err)
		require.Equal(s, got)
	}
	_, err = ParseHeroStatus("BOGUS")
	require.Error(err)

	for c := HeroClass(0); int(c) < NumHeroClasses; c++ {
		got, err := ParseHeroClass(c.String())
		require.NoError(err)
		require.Equal(c, got)
	}
	_, err = ParseHeroClass("BOGUS")
	require.Error(err)

	for _, o := range []Outcome{OutcomeSuccess, OutcomePartial, OutcomeFail, OutcomeDeath, OutcomeMissing} {
		got, err := ParseOutcome(o.String())
		require.NoError(err)
		require.Equal(o, got)
	}
	_, err = ParseOutcome("BOGUS")
	require.Error(err)

	for q := TrophyQuality(0); int(q) < NumTrophyQualities; q++ {
		got, err := ParseTrophyQuality(q.String())
		require.NoError(err)
		require.Equal(q, got)
	}
	_, err = ParseTrophyQuality("BOGUS")
	require.Error(err)

	for _, p := range []ProofPolicy{ProofFast, ProofSoft, ProofStrict} {
		got, err := ParseProofPolicy(p.String())
		require.NoError(err)
		require.Equal(p, got)
	}
	_, err = ParseProofPolicy("BOGUS")
	require.Error(err)
}
