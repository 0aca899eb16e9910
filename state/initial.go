// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// InitialState builds the day-0 GameState a new game starts from
// (spec.md §8 scenario 1: moneyCopper=100, trophiesStock=0, every
// contract collection empty). balance is assumed already validated —
// callers construct it via config.Default() or their own Balance plus
// Validate().
func InitialState(seed int64, balance config.Balance) GameState {
	return GameState{
		Meta: Meta{
			SaveVersion: SaveVersion,
			Seed:        seed,
			DayIndex:    0,
			Revision:    0,
			Ids: IDSeq{
				NextContractId:       1,
				NextActiveContractId: 1,
				NextHeroId:           1,
			},
			TaxDueDay:      balance.InitialTaxDueDay,
			TaxAmountDue:   balance.InitialTaxAmount,
			TaxPenalty:     0,
			TaxMissedCount: 0,
		},
		Guild: Guild{
			Rank:                    xstatus.RankF,
			Reputation:              0,
			CompletedContractsTotal: 0,
			ContractsTowardNextRank: 0,
			ProofPolicy:             xstatus.ProofFast,
		},
		Region: Region{
			Stability: 50,
		},
		Economy: Economy{
			MoneyCopper:    balance.InitialMoneyCopper,
			ReservedCopper: 0,
			TrophiesStock:  0,
		},
		Contracts: Contracts{
			Inbox:   nil,
			Board:   nil,
			Active:  nil,
			Returns: nil,
			Archive: nil,
		},
		Heroes: Heroes{
			Roster:        nil,
			ArrivalsToday: nil,
		},
	}
}

// NextContractIdAssign returns the next ContractId to assign and the IDSeq
// advanced past it.
func (seq IDSeq) NextContractIdAssign() (ids.ContractId, IDSeq) {
	id := seq.NextContractId
	seq.NextContractId++
	return id, seq
}

// NextActiveContractIdAssign returns the next ActiveContractId to
// assign and the IDSeq advanced past it.
func (seq IDSeq) NextActiveContractIdAssign() (ids.ActiveContractId, IDSeq) {
	id := seq.NextActiveContractId
	seq.NextActiveContractId++
	return id, seq
}

// NextHeroIdAssign returns the next HeroId to assign and the IDSeq
// advanced past it.
func (seq IDSeq) NextHeroIdAssign() (ids.HeroId, IDSeq) {
	id := seq.NextHeroId
	seq.NextHeroId++
	return id, seq
}
