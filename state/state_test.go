// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

func TestInitialStateMatchesScenarioOne(t *testing.T) {
	require := require.New(t)

	s := InitialState(42, config.Default())

	require.Equal(int64(100), s.Economy.MoneyCopper)
	require.Equal(int64(0), s.Economy.ReservedCopper)
	require.Equal(int64(0), s.Economy.TrophiesStock)
	require.Empty(s.Contracts.Inbox)
	require.Empty(s.Contracts.Board)
	require.Empty(s.Contracts.Active)
	require.Empty(s.Contracts.Returns)
	require.Empty(s.Contracts.Archive)
	require.Empty(s.Heroes.Roster)
	require.Empty(s.Heroes.ArrivalsToday)
	require.Equal(xstatus.RankF, s.Guild.Rank)
	require.Equal(0, s.Meta.DayIndex)
	require.Equal(int64(0), s.Meta.Revision)
	require.Equal(ids.ContractId(1), s.Meta.Ids.NextContractId)
	require.Equal(ids.ActiveContractId(1), s.Meta.Ids.NextActiveContractId)
	require.Equal(ids.HeroId(1), s.Meta.Ids.NextHeroId)
}

func TestCloneIsIndependentTopLevel(t *testing.T) {
	require := require.New(t)

	s := InitialState(1, config.Default())
	c := s.Clone()
	c.Economy.MoneyCopper = 999

	require.Equal(int64(100), s.Economy.MoneyCopper)
	require.Equal(int64(999), c.Economy.MoneyCopper)
}

func TestIDSeqAssignIncrements(t *testing.T) {
	require := require.New(t)

	seq := IDSeq{NextContractId: 1, NextActiveContractId: 1, NextHeroId: 1}

	id1, seq := seq.NextContractIdAssign()
	id2, seq := seq.NextContractIdAssign()
	require.Equal(ids.ContractId(1), id1)
	require.Equal(ids.ContractId(2), id2)
	require.Equal(ids.ContractId(3), seq.NextContractId)

	hid, seq := seq.NextHeroIdAssign()
	require.Equal(ids.HeroId(1), hid)
	require.Equal(ids.HeroId(2), seq.NextHeroId)

	aid, seq := seq.NextActiveContractIdAssign()
	require.Equal(ids.ActiveContractId(1), aid)
	require.Equal(ids.ActiveContractId(2), seq.NextActiveContractId)
}
