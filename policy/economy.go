// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import "github.com/ironguild/guildsim/xstatus"

// EconomyDelta is the pure result of a settlement computation: the
// caller applies it to Economy rather than this package mutating
// anything directly (spec.md §4.6 "Economy settlement": "returns a
// delta... rather than mutating directly").
type EconomyDelta struct {
	DeltaMoney    int64
	DeltaReserved int64
	DeltaTrophies int64
}

// SettleReturn computes the economy delta for closing a return packet,
// whether auto-closed or player-closed via ACCEPT (spec.md §4.6
// "Economy settlement"). reportedTrophies is the post-theft trophy
// count (policy.TheftResult.Reported when theft applied, otherwise the
// raw resolved count).
func SettleReturn(outcome xstatus.Outcome, fee, clientDeposit int64, salvage xstatus.SalvagePolicy, reportedTrophies int) EconomyDelta {
	var money int64
	if outcome == xstatus.OutcomeSuccess || outcome == xstatus.OutcomePartial {
		money = fee
	}

	var trophiesToGuild int
	switch salvage {
	case xstatus.SalvageGuild:
		trophiesToGuild = reportedTrophies
	case xstatus.SalvageHero:
		trophiesToGuild = 0
	case xstatus.SalvageSplit:
		trophiesToGuild = reportedTrophies / 2
	}

	return EconomyDelta{
		DeltaMoney:    money,
		DeltaReserved: -clientDeposit,
		DeltaTrophies: int64(trophiesToGuild),
	}
}

// SettleRejectedReturn computes the delta for a player REJECT close: no
// fee paid, no trophies to guild, escrow released (spec.md §4.7
// handleCloseReturn "If decision = REJECT: no money paid, zero
// trophies, escrow released").
func SettleRejectedReturn(clientDeposit int64) EconomyDelta {
	return EconomyDelta{DeltaReserved: -clientDeposit}
}

// ComputePostContractDelta reserves a posted contract's client deposit
// as escrow (spec.md §4.7 handlePostContract).
func ComputePostContractDelta(clientDeposit int64) EconomyDelta {
	return EconomyDelta{DeltaReserved: clientDeposit}
}

// ComputeCancelContractDelta releases a cancelled board contract's
// escrow (spec.md §4.7 handleCancelContract). Only board-resident
// contracts hold escrow; cancelling an inbox draft yields a zero delta.
func ComputeCancelContractDelta(clientDeposit int64) EconomyDelta {
	return EconomyDelta{DeltaReserved: -clientDeposit}
}

// ComputeUpdateTermsDelta adjusts escrow by the change in a board
// contract's client deposit when its fee changes (spec.md §4.7
// handleUpdateContractTerms: "on board fee change, adjust reserved by
// ΔclientDeposit").
func ComputeUpdateTermsDelta(oldClientDeposit, newClientDeposit int64) EconomyDelta {
	return EconomyDelta{DeltaReserved: newClientDeposit - oldClientDeposit}
}
