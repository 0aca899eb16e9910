// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/hashing"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/verify"
	"github.com/ironguild/guildsim/xstatus"
)

// scenario 2: a single AdvanceDay produces a contiguous DayStarted..DayEnded
// batch with no gaps in seq, and advances dayIndex/revision by exactly one.
func TestAdvanceDayProducesContiguousSeqEndingInDayEnded(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	r := rng.New(100)
	bal := config.Default()

	next, events := Step(s, command.AdvanceDay{Id: 1}, r, bal)

	require.NotEmpty(events)
	require.Equal(event.KindDayStarted, events[0].Kind())
	require.Equal(event.KindDayEnded, events[len(events)-1].Kind())
	for i, e := range events {
		require.Equal(i+1, e.Base().Seq)
		require.Equal(1, e.Base().Day)
		require.Equal(int64(1), e.Base().Revision)
	}

	require.Equal(1, next.Meta.DayIndex)
	require.Equal(int64(1), next.Meta.Revision)
	require.Empty(verify.Verify(next))
}

// scenario 4: CloseReturn(ACCEPT) on a FAIL outcome releases escrow with
// no fee paid and no trophies transferred.
func TestCloseReturnFailReleasesEscrowOnly(t *testing.T) {
	require := require.New(t)

	s := failReturnState()
	bal := config.Default()
	r := rng.New(1)

	next, events := Step(s, command.CloseReturn{Id: 1, ActiveContractId: 1, Decision: xstatus.DecisionAccept}, r, bal)

	require.Equal(int64(100), next.Economy.MoneyCopper)
	require.Equal(int64(0), next.Economy.ReservedCopper)
	require.Equal(int64(0), next.Economy.TrophiesStock)

	var closes int
	for _, e := range events {
		if e.Kind() == event.KindReturnClosed {
			closes++
		}
	}
	require.Equal(1, closes)
	require.Empty(verify.Verify(next))
}

// scenario 5: STRICT policy with DAMAGED proof blocks the close instead of
// settling it, leaving state untouched.
func TestCloseReturnStrictDamagedIsBlocked(t *testing.T) {
	require := require.New(t)

	s := failReturnState()
	s.Guild.ProofPolicy = xstatus.ProofStrict
	s.Contracts.Returns[0].TrophiesQuality = xstatus.QualityDamaged

	bal := config.Default()
	r := rng.New(1)

	next, events := Step(s, command.CloseReturn{Id: 1, ActiveContractId: 1, Decision: xstatus.DecisionAccept}, r, bal)

	require.Equal(s.Economy, next.Economy)
	require.Len(next.Contracts.Returns, 1)
	require.Equal(xstatus.ActiveReturnReady, next.Contracts.Active[0].Status)

	require.Len(events, 1)
	blocked, ok := events[0].(event.ReturnClosureBlocked)
	require.True(ok)
	require.Equal(xstatus.ProofStrict, blocked.Policy)
	require.Equal("strict_policy_damaged_proof", blocked.Reason)
}

func failReturnState() state.GameState {
	s := state.InitialState(42, config.Default())
	s.Economy.MoneyCopper = 100
	s.Economy.ReservedCopper = 10
	s.Contracts.Board = []state.BoardContract{{
		ID: 1, Fee: 10, ClientDeposit: 10, Status: xstatus.ContractLocked,
	}}
	s.Contracts.Active = []state.ActiveContract{{
		ID: 1, BoardContractId: 1, HeroIds: []ids.HeroId{1}, Status: xstatus.ActiveReturnReady,
	}}
	s.Heroes.Roster = []state.Hero{{ID: 1, Status: xstatus.HeroOnMission}}
	s.Contracts.Returns = []state.ReturnPacket{{
		ActiveContractId:    1,
		BoardContractId:     1,
		HeroIds:             []ids.HeroId{1},
		Outcome:             xstatus.OutcomeFail,
		RequiresPlayerClose: true,
	}}
	s.Meta.Ids.NextContractId = 2
	s.Meta.Ids.NextActiveContractId = 2
	s.Meta.Ids.NextHeroId = 2
	return s
}

// scenario 6: 21 days with no tax payments and no money produces exactly
// three TaxMissed evaluations and one GuildShutdown.
func TestAdvanceDayTaxShutdownAfterThreeMisses(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	s.Economy.MoneyCopper = 0
	bal := config.Default()
	r := rng.New(100)

	missed := 0
	shutdowns := 0
	for day := int64(1); day <= 21; day++ {
		var events []event.Event
		s, events = Step(s, command.AdvanceDay{Id: day}, r, bal)
		for _, e := range events {
			switch e.Kind() {
			case event.KindTaxMissed:
				missed++
			case event.KindGuildShutdown:
				shutdowns++
			}
		}
	}

	require.Equal(3, missed)
	require.Equal(1, shutdowns)
	require.Equal(3, s.Meta.TaxMissedCount)
}

// scenario 7: replaying the same command sequence against a fresh state
// and a fresh Rng with the same seed yields identical hashes and draws.
func TestReplayEquivalence(t *testing.T) {
	require := require.New(t)

	run := func() (string, string, int64) {
		s := state.InitialState(42, config.Default())
		bal := config.Default()
		r := rng.New(100)

		var allEvents []event.Event
		for i := int64(1); i <= 5; i++ {
			var events []event.Event
			s, events = Step(s, command.AdvanceDay{Id: i}, r, bal)
			allEvents = append(allEvents, events...)
		}
		return hashing.HashState(s), hashing.HashEvents(allEvents), r.Draws()
	}

	stateHash1, eventsHash1, draws1 := run()
	stateHash2, eventsHash2, draws2 := run()

	require.Equal(stateHash1, stateHash2)
	require.Equal(eventsHash1, eventsHash2)
	require.Equal(draws1, draws2)
}

// A rejected command leaves state referentially untouched (same values)
// and produces exactly one CommandRejected event, with no RNG consumed.
func TestRejectedCommandIsANoOp(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	bal := config.Default()
	r := rng.New(1)

	next, events := Step(s, command.PayTax{Id: 1, Amount: 0}, r, bal)

	require.Equal(s, next)
	require.Len(events, 1)
	require.Equal(event.KindCommandRejected, events[0].Kind())
	require.Equal(int64(0), r.Draws())
}
