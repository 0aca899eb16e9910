// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"strings"

	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// Decision is canApply's pure result: either Accept or Reject with a
// reason code and a free-form detail string (spec.md §4.5).
type Decision struct {
	Accepted bool
	Reason   xstatus.RejectReason
	Detail   string
}

// Accept is the sole accepting decision value.
func Accept() Decision { return Decision{Accepted: true} }

// Reject builds a rejecting decision.
func Reject(reason xstatus.RejectReason, detail string) Decision {
	return Decision{Accepted: false, Reason: reason, Detail: detail}
}

// CanApply is a pure function of (state, cmd): it never reads RNG and
// never mutates state (spec.md §4.5). Step calls it once per command; a
// caller probing acceptance ahead of time gets the same answer.
func CanApply(s state.GameState, cmd Command) Decision {
	switch c := cmd.(type) {
	case AdvanceDay:
		return Accept()
	case PostContract:
		return canApplyPostContract(s, c)
	case CreateContract:
		return canApplyCreateContract(s, c)
	case UpdateContractTerms:
		return canApplyUpdateContractTerms(s, c)
	case CancelContract:
		return canApplyCancelContract(s, c)
	case CloseReturn:
		return canApplyCloseReturn(s, c)
	case SellTrophies:
		return canApplySellTrophies(s, c)
	case PayTax:
		return canApplyPayTax(s, c)
	case SetProofPolicy:
		return Accept()
	default:
		return Reject(xstatus.ReasonInvalidArg, "unknown command kind")
	}
}

func canApplyPostContract(s state.GameState, c PostContract) Decision {
	idx := s.Contracts.FindDraft(c.InboxId)
	if idx < 0 {
		return Reject(xstatus.ReasonNotFound, "inbox draft not found")
	}
	if c.Fee < 0 {
		return Reject(xstatus.ReasonInvalidArg, "fee must be >= 0")
	}
	draft := s.Contracts.Inbox[idx]
	escrowDelta := c.Fee - draft.ClientDeposit
	if escrowDelta < 0 {
		escrowDelta = 0
	}
	if escrowDelta > s.Economy.AvailableCopper() {
		return Reject(xstatus.ReasonInvalidState, "insufficient available money to post contract")
	}
	return Accept()
}

func canApplyCreateContract(_ state.GameState, c CreateContract) Decision {
	if strings.TrimSpace(c.Title) == "" {
		return Reject(xstatus.ReasonInvalidArg, "title must not be blank")
	}
	if !c.Rank.Valid() {
		return Reject(xstatus.ReasonInvalidArg, "invalid rank")
	}
	if c.Difficulty < 0 || c.Difficulty > 100 {
		return Reject(xstatus.ReasonInvalidArg, "difficulty must be in [0,100]")
	}
	if c.Reward < 0 {
		return Reject(xstatus.ReasonInvalidArg, "reward must be >= 0")
	}
	if !c.Salvage.Valid() {
		return Reject(xstatus.ReasonInvalidArg, "invalid salvage policy")
	}
	return Accept()
}

func canApplyUpdateContractTerms(s state.GameState, c UpdateContractTerms) Decision {
	if c.NewFee != nil && *c.NewFee < 0 {
		return Reject(xstatus.ReasonInvalidArg, "fee must be >= 0")
	}

	if idx := s.Contracts.FindDraft(c.ContractId); idx >= 0 {
		return Accept()
	}

	idx := s.Contracts.FindBoard(c.ContractId)
	if idx < 0 {
		return Reject(xstatus.ReasonNotFound, "contract not found")
	}
	board := s.Contracts.Board[idx]
	if board.Status != xstatus.ContractOpen {
		return Reject(xstatus.ReasonInvalidState, "board contract is not OPEN")
	}
	if c.NewFee != nil && *c.NewFee > board.Fee {
		delta := *c.NewFee - board.Fee
		if delta > s.Economy.AvailableCopper() {
			return Reject(xstatus.ReasonInvalidState, "insufficient available money to raise fee")
		}
	}
	return Accept()
}

func canApplyCancelContract(s state.GameState, c CancelContract) Decision {
	if idx := s.Contracts.FindDraft(c.ContractId); idx >= 0 {
		return Accept()
	}
	idx := s.Contracts.FindBoard(c.ContractId)
	if idx < 0 {
		return Reject(xstatus.ReasonNotFound, "contract not found")
	}
	if s.Contracts.Board[idx].Status != xstatus.ContractOpen {
		return Reject(xstatus.ReasonInvalidState, "board contract is not OPEN")
	}
	return Accept()
}

func canApplyCloseReturn(s state.GameState, c CloseReturn) Decision {
	idx := s.Contracts.FindReturn(c.ActiveContractId)
	if idx < 0 {
		return Reject(xstatus.ReasonNotFound, "return packet not found")
	}
	ret := s.Contracts.Returns[idx]
	if !ret.RequiresPlayerClose {
		return Reject(xstatus.ReasonInvalidState, "return does not require a player close")
	}
	if s.Guild.ProofPolicy == xstatus.ProofStrict && c.Decision == xstatus.DecisionUnspecified {
		return Reject(xstatus.ReasonInvalidArg, "an explicit decision is required under STRICT proof policy")
	}
	// Whether STRICT-with-damaged-proof denies an ACCEPT is decided by
	// the handler's canClose check (spec.md §4.7 handleCloseReturn), not
	// here: a denial there surfaces as ReturnClosureBlocked rather than
	// CommandRejected (spec.md §8 scenario 5), so CanApply must still
	// accept the command for it to reach the handler.
	if c.Decision == xstatus.DecisionAccept {
		if ret.Outcome == xstatus.OutcomeSuccess || ret.Outcome == xstatus.OutcomePartial {
			activeIdx := s.Contracts.FindActive(c.ActiveContractId)
			if activeIdx >= 0 {
				boardIdx := s.Contracts.FindBoard(s.Contracts.Active[activeIdx].BoardContractId)
				if boardIdx >= 0 {
					fee := s.Contracts.Board[boardIdx].Fee
					if s.Economy.ReservedCopper < fee || s.Economy.MoneyCopper < fee {
						return Reject(xstatus.ReasonInvalidState, "insufficient reserved or available money to pay fee")
					}
				}
			}
		}
	}
	return Accept()
}

func canApplySellTrophies(s state.GameState, c SellTrophies) Decision {
	if c.Amount > 0 {
		if c.Amount > s.Economy.TrophiesStock {
			return Reject(xstatus.ReasonInvalidState, "amount exceeds trophy stock")
		}
		return Accept()
	}
	if s.Economy.TrophiesStock <= 0 {
		return Reject(xstatus.ReasonInvalidState, "no trophies to sell")
	}
	return Accept()
}

func canApplyPayTax(s state.GameState, c PayTax) Decision {
	if c.Amount <= 0 {
		return Reject(xstatus.ReasonInvalidArg, "amount must be > 0")
	}
	if c.Amount > s.Economy.MoneyCopper {
		return Reject(xstatus.ReasonInvalidState, "amount exceeds available money")
	}
	if s.Meta.TaxAmountDue+s.Meta.TaxPenalty <= 0 {
		return Reject(xstatus.ReasonInvalidState, "no outstanding tax to pay")
	}
	return Accept()
}
