// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import (
	"github.com/ironguild/guildsim/balance"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// PickupResult is Pickup's decision DTO.
type PickupResult struct {
	Picked          bool
	BoardContractId ids.ContractId
	Score           int
	DeclineReason   string // "unprofitable" | "too_risky" | "no_contracts"
}

// Pickup scores every OPEN board contract against hero and takes the
// highest-scoring one, deterministically, with no RNG (spec.md §4.6
// "Contract pickup"). Ties resolve to the first OPEN contract
// encountered, i.e. the lowest ID, since callers iterate board in
// ascending-ID order.
func Pickup(hero state.Hero, board []state.BoardContract, bal config.Balance) PickupResult {
	bestIdx := -1
	bestScore := 0
	for i := range board {
		if board[i].Status != xstatus.ContractOpen {
			continue
		}
		score := balance.Attractiveness(hero, board[i], bal)
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestIdx == -1 {
		return PickupResult{DeclineReason: "no_contracts"}
	}

	if bestScore < 0 {
		reason := "too_risky"
		if bestScore < bal.UnprofitableThreshold {
			reason = "unprofitable"
		}
		return PickupResult{Score: bestScore, DeclineReason: reason}
	}

	if board[bestIdx].BaseDifficulty > bal.TooRiskyThreshold {
		return PickupResult{Score: bestScore, DeclineReason: "too_risky"}
	}

	return PickupResult{Picked: true, BoardContractId: board[bestIdx].ID, Score: bestScore}
}
