// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

func TestVerifyCleanInitialStateHasNoViolations(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	require.Empty(Verify(s))
}

func TestVerifyDetectsLockedBoardWithNoActive(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Contracts.Board = []state.BoardContract{{ID: 1, Status: xstatus.ContractLocked}}
	s.Meta.Ids.NextContractId = 2

	violations := Verify(s)
	require.Len(violations, 1)
	require.Equal(IDLockedHasActive, violations[0].InvariantId)
}

func TestVerifyDetectsReturnReadyWithoutReturnPacket(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Contracts.Active = []state.ActiveContract{{ID: 1, Status: xstatus.ActiveReturnReady, HeroIds: []ids.HeroId{1}}}
	s.Heroes.Roster = []state.Hero{{ID: 1, Status: xstatus.HeroOnMission}}
	s.Meta.Ids.NextActiveContractId = 2
	s.Meta.Ids.NextHeroId = 2

	violations := Verify(s)
	var found bool
	for _, v := range violations {
		if v.InvariantId == IDReturnReadyHasReturn {
			found = true
		}
	}
	require.True(found)
}

func TestVerifyDetectsHeroOnMissionTwice(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Heroes.Roster = []state.Hero{{ID: 1, Status: xstatus.HeroOnMission}}
	s.Contracts.Active = []state.ActiveContract{
		{ID: 1, Status: xstatus.ActiveWIP, DaysRemaining: 1, HeroIds: []ids.HeroId{1}},
		{ID: 2, Status: xstatus.ActiveWIP, DaysRemaining: 1, HeroIds: []ids.HeroId{1}},
	}
	s.Meta.Ids.NextActiveContractId = 3
	s.Meta.Ids.NextHeroId = 2

	violations := Verify(s)
	var found bool
	for _, v := range violations {
		if v.InvariantId == IDHeroSingleMission {
			found = true
		}
	}
	require.True(found)
}

func TestVerifyDetectsEconomyInvariantBreak(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Economy.ReservedCopper = 150

	violations := Verify(s)
	require.Len(violations, 1)
	require.Equal(IDEconomyMoneyVsReserved, violations[0].InvariantId)
}

func TestVerifyDetectsNonMonotoneContractId(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Contracts.Inbox = []state.ContractDraft{{ID: 5}}
	s.Meta.Ids.NextContractId = 3

	violations := Verify(s)
	var found bool
	for _, v := range violations {
		if v.InvariantId == IDMonotoneContractId {
			found = true
		}
	}
	require.True(found)
}

func TestVerifyDetectsStabilityOutOfRange(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Region.Stability = 150

	violations := Verify(s)
	require.Len(violations, 1)
	require.Equal(IDStabilityRange, violations[0].InvariantId)
}
