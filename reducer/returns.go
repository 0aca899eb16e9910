// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/policy"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// handleCloseReturn settles a return packet that requires a player
// decision (spec.md §4.7 handleCloseReturn). ACCEPT denied under the
// guild's proof policy leaves state untouched and emits
// ReturnClosureBlocked; REJECT releases escrow with no payout; ACCEPT
// otherwise runs the same settlement the day pipeline's auto-close path
// would have run.
func handleCloseReturn(s state.GameState, c command.CloseReturn, bal config.Balance, ctx *event.SeqContext) state.GameState {
	retIdx := s.Contracts.FindReturn(c.ActiveContractId)
	ret := s.Contracts.Returns[retIdx]

	if c.Decision == xstatus.DecisionAccept {
		if allowed, reason := policy.CanClose(s.Guild.ProofPolicy, ret.TrophiesQuality, ret.SuspectedTheft); !allowed {
			ctx.Emit(event.ReturnClosureBlocked{
				ActiveContractId: c.ActiveContractId,
				Policy:           s.Guild.ProofPolicy,
				Reason:           reason,
			})
			return s
		}
	}

	activeIdx := s.Contracts.FindActive(c.ActiveContractId)
	active := s.Contracts.Active[activeIdx]
	boardIdx := s.Contracts.FindBoard(active.BoardContractId)
	board := s.Contracts.Board[boardIdx]

	if c.Decision == xstatus.DecisionReject {
		delta := policy.SettleRejectedReturn(board.ClientDeposit)
		s.Economy.MoneyCopper += delta.DeltaMoney
		s.Economy.ReservedCopper += delta.DeltaReserved
		s.Economy.TrophiesStock += delta.DeltaTrophies

		s = releaseHeroesAvailable(s, active.HeroIds)
		s = closeActiveAndMaybeArchiveBoard(s, activeIdx, boardIdx)
		s.Contracts.Returns = removeReturn(s.Contracts.Returns, retIdx)

		ctx.Emit(event.ReturnRejected{
			ActiveContractId: c.ActiveContractId,
			BoardContractId:  board.ID,
		})
		return s
	}

	delta := policy.SettleReturn(ret.Outcome, board.Fee, board.ClientDeposit, board.Salvage, ret.TrophiesCount)
	s.Economy.MoneyCopper += delta.DeltaMoney
	s.Economy.ReservedCopper += delta.DeltaReserved
	s.Economy.TrophiesStock += delta.DeltaTrophies

	var diedHeroes []ids.HeroId
	if ret.Outcome.RemovesHero() {
		s, diedHeroes = removeHeroes(s, active.HeroIds)
	} else {
		s = releaseHeroesAvailable(s, active.HeroIds)
	}

	s = closeActiveAndMaybeArchiveBoard(s, activeIdx, boardIdx)
	s.Contracts.Returns = removeReturn(s.Contracts.Returns, retIdx)

	if ret.Outcome == xstatus.OutcomeSuccess || ret.Outcome == xstatus.OutcomePartial {
		s = applyGuildProgression(s, bal, ctx)
	}

	for _, hid := range diedHeroes {
		ctx.Emit(event.HeroDied{HeroId: hid, Outcome: ret.Outcome})
	}

	ctx.Emit(event.ReturnClosed{
		ActiveContractId: c.ActiveContractId,
		BoardContractId:  board.ID,
		Outcome:          ret.Outcome,
		FeePaid:          delta.DeltaMoney,
		TrophiesToGuild:  int(delta.DeltaTrophies),
	})
	return s
}

// releaseHeroesAvailable sets every hero in ids back to AVAILABLE.
func releaseHeroesAvailable(s state.GameState, heroIds []ids.HeroId) state.GameState {
	roster := append([]state.Hero{}, s.Heroes.Roster...)
	for _, hid := range heroIds {
		if idx := findHero(roster, hid); idx >= 0 {
			roster[idx].Status = xstatus.HeroAvailable
		}
	}
	s.Heroes.Roster = roster
	return s
}

// removeHeroes deletes every hero in heroIds from the roster (DEATH/MISSING).
func removeHeroes(s state.GameState, heroIds []ids.HeroId) (state.GameState, []ids.HeroId) {
	dead := append([]ids.HeroId{}, heroIds...)
	roster := make([]state.Hero, 0, len(s.Heroes.Roster))
	for _, h := range s.Heroes.Roster {
		remove := false
		for _, hid := range heroIds {
			if h.ID == hid {
				remove = true
				break
			}
		}
		if !remove {
			roster = append(roster, h)
		}
	}
	s.Heroes.Roster = roster
	return s, dead
}

func findHero(roster []state.Hero, id ids.HeroId) int {
	for i := range roster {
		if roster[i].ID == id {
			return i
		}
	}
	return -1
}

// closeActiveAndMaybeArchiveBoard marks activeIdx CLOSED and, if every
// active referencing its board is now CLOSED, moves the board to
// COMPLETED and archives it (spec.md §4.7 handleCloseReturn "possibly
// complete+archive board").
func closeActiveAndMaybeArchiveBoard(s state.GameState, activeIdx, boardIdx int) state.GameState {
	actives := append([]state.ActiveContract{}, s.Contracts.Active...)
	actives[activeIdx].Status = xstatus.ActiveClosed
	s.Contracts.Active = actives

	boardId := s.Contracts.Board[boardIdx].ID
	allClosed := true
	for _, a := range s.Contracts.Active {
		if a.BoardContractId == boardId && a.Status != xstatus.ActiveClosed {
			allClosed = false
			break
		}
	}
	if !allClosed {
		return s
	}

	board := s.Contracts.Board[boardIdx]
	board.Status = xstatus.ContractCompleted

	boardList := make([]state.BoardContract, 0, len(s.Contracts.Board)-1)
	boardList = append(boardList, s.Contracts.Board[:boardIdx]...)
	boardList = append(boardList, s.Contracts.Board[boardIdx+1:]...)
	s.Contracts.Board = boardList
	s.Contracts.Archive = append(append([]state.BoardContract{}, s.Contracts.Archive...), board)
	return s
}

func removeReturn(returns []state.ReturnPacket, idx int) []state.ReturnPacket {
	out := make([]state.ReturnPacket, 0, len(returns)-1)
	out = append(out, returns[:idx]...)
	out = append(out, returns[idx+1:]...)
	return out
}

// applyGuildProgression advances completedContractsTotal and, on a
// rank-threshold crossing, emits GuildRankUp (spec.md §4.6 "Guild
// progression").
func applyGuildProgression(s state.GameState, bal config.Balance, ctx *event.SeqContext) state.GameState {
	newCompleted, newRank, newThreshold, rankedUp := policy.AdvanceProgression(
		s.Guild.Rank, s.Guild.CompletedContractsTotal, s.Guild.ContractsTowardNextRank, bal)

	oldRank := s.Guild.Rank
	s.Guild.CompletedContractsTotal = newCompleted
	s.Guild.Rank = newRank
	s.Guild.ContractsTowardNextRank = newThreshold

	if rankedUp {
		ctx.Emit(event.GuildRankUp{OldRank: oldRank, NewRank: newRank})
	}
	return s
}

// handleSellTrophies converts trophies to copper at 1:1 (spec.md §4.7
// handleSellTrophies).
func handleSellTrophies(s state.GameState, c command.SellTrophies, ctx *event.SeqContext) state.GameState {
	amount := c.Amount
	if amount <= 0 || amount > s.Economy.TrophiesStock {
		amount = s.Economy.TrophiesStock
	}
	s.Economy.TrophiesStock -= amount
	s.Economy.MoneyCopper += amount

	ctx.Emit(event.TrophySold{Amount: amount, MoneyGained: amount})
	return s
}

// handlePayTax applies payment to penalty then principal (spec.md §4.7
// handlePayTax).
func handlePayTax(s state.GameState, c command.PayTax, ctx *event.SeqContext) state.GameState {
	newDue, newPenalty, isPartial, fullyCleared := policy.ComputePayment(c.Amount, s.Meta.TaxAmountDue, s.Meta.TaxPenalty)

	s.Economy.MoneyCopper -= c.Amount
	s.Meta.TaxAmountDue = newDue
	s.Meta.TaxPenalty = newPenalty
	if fullyCleared {
		s.Meta.TaxMissedCount = 0
	}

	ctx.Emit(event.TaxPaid{
		AmountPaid:       c.Amount,
		AmountRemaining:  newDue + newPenalty,
		IsPartialPayment: isPartial,
	})
	return s
}

// handleSetProofPolicy updates the guild's proof policy, emitting
// ProofPolicyChanged only when it actually changed (spec.md §4.7
// handleSetProofPolicy).
func handleSetProofPolicy(s state.GameState, c command.SetProofPolicy, ctx *event.SeqContext) state.GameState {
	old := s.Guild.ProofPolicy
	if old == c.Policy {
		return s
	}
	s.Guild.ProofPolicy = c.Policy
	ctx.Emit(event.ProofPolicyChanged{OldPolicy: old, NewPolicy: c.Policy})
	return s
}
