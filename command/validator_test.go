// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

func baseState() state.GameState {
	return state.InitialState(42, config.Default())
}

func TestAdvanceDayAlwaysAccepts(t *testing.T) {
	require.True(t, CanApply(baseState(), AdvanceDay{Id: 1}).Accepted)
}

func TestPostContractRejectsMissingDraft(t *testing.T) {
	d := CanApply(baseState(), PostContract{Id: 1, InboxId: 1, Fee: 10})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonNotFound, d.Reason)
}

func TestPostContractAcceptsWithZeroAvailableWhenDepositCoversFee(t *testing.T) {
	s := baseState()
	s.Economy.MoneyCopper = 0
	s.Contracts.Inbox = []state.ContractDraft{{ID: 1, FeeOffered: 10, ClientDeposit: 10}}

	d := CanApply(s, PostContract{Id: 1, InboxId: 1, Fee: 10})
	require.True(t, d.Accepted)
}

func TestPostContractRejectsWhenFeeExceedsAvailable(t *testing.T) {
	s := baseState()
	s.Economy.MoneyCopper = 5
	s.Contracts.Inbox = []state.ContractDraft{{ID: 1, FeeOffered: 10, ClientDeposit: 0}}

	d := CanApply(s, PostContract{Id: 1, InboxId: 1, Fee: 10})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonInvalidState, d.Reason)
}

func TestCreateContractRejectsBlankTitle(t *testing.T) {
	d := CanApply(baseState(), CreateContract{Id: 1, Title: "   ", Rank: xstatus.RankF})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonInvalidArg, d.Reason)
}

func TestCancelContractAllowsInboxAlways(t *testing.T) {
	s := baseState()
	s.Contracts.Inbox = []state.ContractDraft{{ID: 1}}
	require.True(t, CanApply(s, CancelContract{Id: 1, ContractId: 1}).Accepted)
}

func TestCancelContractRejectsLockedBoard(t *testing.T) {
	s := baseState()
	s.Contracts.Board = []state.BoardContract{{ID: 1, Status: xstatus.ContractLocked}}
	d := CanApply(s, CancelContract{Id: 1, ContractId: 1})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonInvalidState, d.Reason)
}

func TestCloseReturnStrictRequiresExplicitDecision(t *testing.T) {
	s := baseState()
	s.Guild.ProofPolicy = xstatus.ProofStrict
	s.Contracts.Returns = []state.ReturnPacket{{ActiveContractId: 1, RequiresPlayerClose: true}}

	d := CanApply(s, CloseReturn{Id: 1, ActiveContractId: 1, Decision: xstatus.DecisionUnspecified})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonInvalidArg, d.Reason)
}

func TestCloseReturnStrictAcceptsDamagedAtValidationLayer(t *testing.T) {
	// STRICT + DAMAGED is denied by the handler's canClose check
	// (ReturnClosureBlocked, spec.md §8 scenario 5), not by CanApply —
	// CanApply must still accept so the command reaches the handler.
	s := baseState()
	s.Guild.ProofPolicy = xstatus.ProofStrict
	s.Contracts.Returns = []state.ReturnPacket{{
		ActiveContractId:    1,
		RequiresPlayerClose: true,
		TrophiesQuality:     xstatus.QualityDamaged,
		Outcome:             xstatus.OutcomeFail,
	}}

	d := CanApply(s, CloseReturn{Id: 1, ActiveContractId: 1, Decision: xstatus.DecisionAccept})
	require.True(t, d.Accepted)
}

func TestCloseReturnAcceptFailDoesNotRequireFunds(t *testing.T) {
	s := baseState()
	s.Economy.MoneyCopper = 0
	s.Economy.ReservedCopper = 0
	s.Contracts.Returns = []state.ReturnPacket{{
		ActiveContractId:    1,
		RequiresPlayerClose: true,
		Outcome:             xstatus.OutcomeFail,
	}}

	d := CanApply(s, CloseReturn{Id: 1, ActiveContractId: 1, Decision: xstatus.DecisionAccept})
	require.True(t, d.Accepted)
}

func TestSellTrophiesRejectsZeroStockSellAll(t *testing.T) {
	d := CanApply(baseState(), SellTrophies{Id: 1, Amount: 0})
	require.False(t, d.Accepted)
}

func TestPayTaxRejectsWhenNothingDue(t *testing.T) {
	s := baseState()
	s.Meta.TaxAmountDue = 0
	s.Meta.TaxPenalty = 0
	s.Economy.MoneyCopper = 100

	d := CanApply(s, PayTax{Id: 1, Amount: 10})
	require.False(t, d.Accepted)
	require.Equal(t, xstatus.ReasonInvalidState, d.Reason)
}

func TestSetProofPolicyAlwaysAccepts(t *testing.T) {
	require.True(t, CanApply(baseState(), SetProofPolicy{Id: 1, Policy: xstatus.ProofSoft}).Accepted)
}
