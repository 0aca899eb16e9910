// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package serialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

func TestMarshalStateFieldOrder(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	out := string(MarshalState(s))

	require.Contains(out, `{"meta":{"saveVersion":1,"seed":42,"dayIndex":0,"revision":0,"ids":{"nextContractId":1,"nextHeroId":1,"nextActiveContractId":1}`)
	require.Contains(out, `"guild":{"guildRank":"F","reputation":0,"completedContractsTotal":0,"contractsForNextRank":0,"proofPolicy":"FAST"}`)
	require.Contains(out, `"region":{"stability":50}`)
	require.Contains(out, `"economy":{"moneyCopper":100,"reservedCopper":0,"trophiesStock":0}`)
	require.Contains(out, `"contracts":{"inbox":[],"board":[],"active":[],"returns":[],"archive":[]}`)
	require.Contains(out, `"heroes":{"roster":[]}`)
	require.NotContains(out, "arrivalsToday")
}

func TestMarshalStateIsCompactNoWhitespace(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(1, config.Default())
	out := string(MarshalState(s))

	require.NotContains(out, " ")
	require.NotContains(out, "\n")
	require.NotContains(out, "\t")
}

func TestStateRoundTrip(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(7, config.Default())
	s.Contracts.Inbox = []state.ContractDraft{{
		ID:                 ids.ContractId(1),
		CreatedDay:         1,
		NextAutoResolveDay: 6,
		Title:              "Clear the \"old\" mine",
		RankSuggested:      xstatus.RankE,
		FeeOffered:         500,
		Salvage:            xstatus.SalvageSplit,
		BaseDifficulty:     10,
		ProofHint:          "kobold tally\nsecond line",
		ClientDeposit:      200,
	}}
	s.Heroes.Roster = []state.Hero{{
		ID:     ids.HeroId(1),
		Name:   "Bron",
		Rank:   xstatus.RankF,
		Class:  xstatus.ClassWarrior,
		Traits: state.Traits{Greed: 10, Honesty: 80, Courage: 60},
		Status: xstatus.HeroAvailable,
	}}

	bytes1 := MarshalState(s)
	decoded, err := UnmarshalState(bytes1)
	require.NoError(err)

	bytes2 := MarshalState(decoded)
	require.Equal(string(bytes1), string(bytes2))

	require.Equal(s.Contracts.Inbox[0].Title, decoded.Contracts.Inbox[0].Title)
	require.Equal(s.Contracts.Inbox[0].ProofHint, decoded.Contracts.Inbox[0].ProofHint)
	require.Equal(s.Heroes.Roster[0].Name, decoded.Heroes.Roster[0].Name)
	require.Nil(decoded.Heroes.ArrivalsToday)
}

func TestUnmarshalStateRejectsUnsupportedVersion(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(1, config.Default())
	s.Meta.SaveVersion = 99
	bad := MarshalState(s)

	_, err := UnmarshalState(bad)
	require.ErrorIs(err, ErrUnsupportedSaveVersion)
}

func TestUnmarshalStateRejectsInvalidEnum(t *testing.T) {
	require := require.New(t)

	raw := []byte(`{"meta":{"saveVersion":1,"seed":1,"dayIndex":1,"revision":0,"ids":{"nextContractId":1,"nextHeroId":1,"nextActiveContractId":1},"taxDueDay":7,"taxAmountDue":50,"taxPenalty":0,"taxMissedCount":0},"guild":{"guildRank":"ZZZ","reputation":0,"completedContractsTotal":0,"contractsForNextRank":0,"proofPolicy":"FAST"},"region":{"stability":50},"economy":{"moneyCopper":100,"reservedCopper":0,"trophiesStock":0},"contracts":{"inbox":[],"board":[],"active":[],"returns":[],"archive":[]},"heroes":{"roster":[]}}`)

	_, err := UnmarshalState(raw)
	require.Error(err)
}

func TestMarshalStateEscapesSpecialCharacters(t *testing.T) {
	require := require.New(t)

	require.Equal(`"a\\b\"c\nd\re\tf"`, jstr("a\\b\"c\nd\re\tf"))
}
