// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import (
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/xstatus"
)

// AdvanceProgression increments the guild's completed-contract counter
// after any successful close and ranks up when the current rank's
// threshold is crossed (spec.md §4.6 "Guild progression"). No RNG.
func AdvanceProgression(rank xstatus.GuildRank, completedTotal, contractsForNextRank int, bal config.Balance) (newCompletedTotal int, newRank xstatus.GuildRank, newContractsForNextRank int, rankedUp bool) {
	newCompletedTotal = completedTotal + 1

	if rank.Max() {
		return newCompletedTotal, rank, 0, false
	}

	if newCompletedTotal < contractsForNextRank {
		return newCompletedTotal, rank, contractsForNextRank, false
	}

	newRank = rank.Next()
	newThreshold := 0
	if !newRank.Max() {
		newThreshold = bal.ContractsForNextRank[newRank]
	}
	return newCompletedTotal, newRank, newThreshold, true
}
