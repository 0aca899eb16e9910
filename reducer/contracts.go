// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/policy"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// handlePostContract moves a draft from inbox to board as OPEN and
// reserves its client deposit as escrow (spec.md §4.7 handlePostContract).
func handlePostContract(s state.GameState, c command.PostContract, ctx *event.SeqContext) state.GameState {
	idx := s.Contracts.FindDraft(c.InboxId)
	draft := s.Contracts.Inbox[idx]

	inbox := make([]state.ContractDraft, 0, len(s.Contracts.Inbox)-1)
	inbox = append(inbox, s.Contracts.Inbox[:idx]...)
	inbox = append(inbox, s.Contracts.Inbox[idx+1:]...)
	s.Contracts.Inbox = inbox

	board := state.BoardContract{
		ID:             draft.ID,
		PostedDay:      s.Meta.DayIndex,
		Title:          draft.Title,
		Rank:           draft.RankSuggested,
		Fee:            c.Fee,
		Salvage:        c.Salvage,
		BaseDifficulty: draft.BaseDifficulty,
		Status:         xstatus.ContractOpen,
		ClientDeposit:  draft.ClientDeposit,
	}
	s.Contracts.Board = append(append([]state.BoardContract{}, s.Contracts.Board...), board)

	delta := policy.ComputePostContractDelta(draft.ClientDeposit)
	s.Economy.ReservedCopper += delta.DeltaReserved

	ctx.Emit(event.ContractPosted{
		BoardContractId: board.ID,
		FromInboxId:     draft.ID,
		Rank:            board.Rank,
		Fee:             board.Fee,
		Salvage:         board.Salvage,
		ClientDeposit:   board.ClientDeposit,
	})
	return s
}

// handleCreateContract appends a new authored draft to inbox (spec.md
// §4.7 handleCreateContract).
func handleCreateContract(s state.GameState, c command.CreateContract, bal config.Balance, ctx *event.SeqContext) state.GameState {
	id, seq := s.Meta.Ids.NextContractIdAssign()
	s.Meta.Ids = seq

	draft := state.ContractDraft{
		ID:                 id,
		CreatedDay:         s.Meta.DayIndex,
		NextAutoResolveDay: s.Meta.DayIndex + bal.DraftAutoResolveWindowDays,
		Title:              c.Title,
		RankSuggested:      c.Rank,
		FeeOffered:         c.Reward,
		Salvage:            c.Salvage,
		BaseDifficulty:     c.Difficulty,
		ProofHint:          "",
		ClientDeposit:      0,
	}
	s.Contracts.Inbox = append(append([]state.ContractDraft{}, s.Contracts.Inbox...), draft)

	ctx.Emit(event.ContractDraftCreated{
		DraftId:    draft.ID,
		Title:      draft.Title,
		Rank:       draft.RankSuggested,
		Difficulty: draft.BaseDifficulty,
		Reward:     draft.FeeOffered,
		Salvage:    draft.Salvage,
	})
	return s
}

// handleUpdateContractTerms rewrites fee/salvage on an inbox draft or an
// OPEN board contract (spec.md §4.7 handleUpdateContractTerms).
func handleUpdateContractTerms(s state.GameState, c command.UpdateContractTerms, ctx *event.SeqContext) state.GameState {
	if idx := s.Contracts.FindDraft(c.ContractId); idx >= 0 {
		draft := s.Contracts.Inbox[idx]
		var oldFee *int64
		var newFee *int64
		if c.NewFee != nil {
			old := draft.FeeOffered
			oldFee = &old
			newFee = c.NewFee
			draft.FeeOffered = *c.NewFee
		}
		var oldSalvage, newSalvage *xstatus.SalvagePolicy
		if c.NewSalvage != nil {
			old := draft.Salvage
			oldSalvage = &old
			newSalvage = c.NewSalvage
			draft.Salvage = *c.NewSalvage
		}
		inbox := append([]state.ContractDraft{}, s.Contracts.Inbox...)
		inbox[idx] = draft
		s.Contracts.Inbox = inbox

		ctx.Emit(event.ContractTermsUpdated{
			ContractId: c.ContractId,
			OldFee:     oldFee,
			NewFee:     newFee,
			OldSalvage: oldSalvage,
			NewSalvage: newSalvage,
			Location:   "inbox",
		})
		return s
	}

	idx := s.Contracts.FindBoard(c.ContractId)
	board := s.Contracts.Board[idx]

	var oldFee, newFee *int64
	var oldSalvage, newSalvage *xstatus.SalvagePolicy
	oldClientDeposit := board.ClientDeposit
	newClientDeposit := board.ClientDeposit

	if c.NewFee != nil {
		old := board.Fee
		oldFee = &old
		newFee = c.NewFee
		board.Fee = *c.NewFee
	}
	if c.NewSalvage != nil {
		old := board.Salvage
		oldSalvage = &old
		newSalvage = c.NewSalvage
		board.Salvage = *c.NewSalvage
	}

	boardList := append([]state.BoardContract{}, s.Contracts.Board...)
	boardList[idx] = board
	s.Contracts.Board = boardList

	delta := policy.ComputeUpdateTermsDelta(oldClientDeposit, newClientDeposit)
	s.Economy.ReservedCopper += delta.DeltaReserved

	ctx.Emit(event.ContractTermsUpdated{
		ContractId: c.ContractId,
		OldFee:     oldFee,
		NewFee:     newFee,
		OldSalvage: oldSalvage,
		NewSalvage: newSalvage,
		Location:   "board",
	})
	return s
}

// handleCancelContract removes a draft or an OPEN board contract,
// releasing escrow on the board path (spec.md §4.7 handleCancelContract).
func handleCancelContract(s state.GameState, c command.CancelContract, ctx *event.SeqContext) state.GameState {
	if idx := s.Contracts.FindDraft(c.ContractId); idx >= 0 {
		inbox := make([]state.ContractDraft, 0, len(s.Contracts.Inbox)-1)
		inbox = append(inbox, s.Contracts.Inbox[:idx]...)
		inbox = append(inbox, s.Contracts.Inbox[idx+1:]...)
		s.Contracts.Inbox = inbox

		ctx.Emit(event.ContractCancelled{
			ContractId:     c.ContractId,
			RefundedCopper: 0,
			Location:       "inbox",
		})
		return s
	}

	idx := s.Contracts.FindBoard(c.ContractId)
	board := s.Contracts.Board[idx]

	boardList := make([]state.BoardContract, 0, len(s.Contracts.Board)-1)
	boardList = append(boardList, s.Contracts.Board[:idx]...)
	boardList = append(boardList, s.Contracts.Board[idx+1:]...)
	s.Contracts.Board = boardList

	delta := policy.ComputeCancelContractDelta(board.ClientDeposit)
	s.Economy.ReservedCopper += delta.DeltaReserved

	ctx.Emit(event.ContractCancelled{
		ContractId:     c.ContractId,
		RefundedCopper: board.ClientDeposit,
		Location:       "board",
	})
	return s
}
