// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "github.com/ironguild/guildsim/xstatus"

// Default returns the balance constants this simulation ships with. Every
// numeric choice not pinned exactly by spec.md is fixed here per
// SPEC_FULL.md §C, and is part of the replay contract: changing any of
// these values changes every future golden hash.
func Default() Balance {
	return Balance{
		Offset:        50,
		Mult:          1,
		PartialFixed:  20,
		FailMin:       10,
		MissingChance: 10,

		DaysInit: 2,

		AutoResolveRescheduleDays: 3,
		AutoResolveBadPenalty:     2,

		UnprofitableThreshold: -20,
		TooRiskyThreshold:     90,

		PricingByRank: map[xstatus.GuildRank]PricingBand{
			xstatus.RankF: {MinGp: 1, MaxGp: 3},
			xstatus.RankE: {MinGp: 2, MaxGp: 5},
			xstatus.RankD: {MinGp: 3, MaxGp: 8},
			xstatus.RankC: {MinGp: 5, MaxGp: 14},
			xstatus.RankB: {MinGp: 8, MaxGp: 22},
			xstatus.RankA: {MinGp: 14, MaxGp: 36},
			xstatus.RankS: {MinGp: 24, MaxGp: 60},
		},
		ClientDepositChanceBps: 3000, // 30%
		ClientDepositBps:       5000, // 50% of payout

		InboxMultiplierByRank: map[xstatus.GuildRank]int{
			xstatus.RankF: 1,
			xstatus.RankE: 1,
			xstatus.RankD: 2,
			xstatus.RankC: 2,
			xstatus.RankB: 3,
			xstatus.RankA: 3,
			xstatus.RankS: 4,
		},
		HeroMultiplierByRank: map[xstatus.GuildRank]int{
			xstatus.RankF: 1,
			xstatus.RankE: 1,
			xstatus.RankD: 2,
			xstatus.RankC: 2,
			xstatus.RankB: 3,
			xstatus.RankA: 3,
			xstatus.RankS: 4,
		},

		ContractsForNextRank: map[xstatus.GuildRank]int{
			xstatus.RankF: 5,
			xstatus.RankE: 10,
			xstatus.RankD: 20,
			xstatus.RankC: 35,
			xstatus.RankB: 55,
			xstatus.RankA: 80,
		},

		TaxMaxMissed:      3,
		TaxPenaltyBps:     1000, // 10%
		TaxRescheduleDays: 7,
		InitialTaxDueDay:  7,
		InitialTaxAmount:  50,

		BasePowerByRank: map[xstatus.GuildRank]int{
			xstatus.RankF: 10,
			xstatus.RankE: 20,
			xstatus.RankD: 32,
			xstatus.RankC: 46,
			xstatus.RankB: 62,
			xstatus.RankA: 80,
			xstatus.RankS: 100,
		},
		ClassBonus: map[xstatus.HeroClass]int{
			xstatus.ClassWarrior: 10,
			xstatus.ClassRogue:   6,
			xstatus.ClassMage:    8,
			xstatus.ClassCleric:  4,
			xstatus.ClassRanger:  7,
		},

		InitialMoneyCopper: 100,

		NamePool: []string{
			"Alden", "Brennis", "Cael", "Dorwin", "Eska",
			"Faelan", "Garrow", "Hestia", "Ilyra", "Joss",
			"Kestrel", "Liora", "Mordan", "Nyssa", "Oren",
			"Perrin", "Quill", "Roswyn", "Sable", "Tamsin",
		},

		BaseDifficultyByRank: map[xstatus.GuildRank]int{
			xstatus.RankF: 10,
			xstatus.RankE: 20,
			xstatus.RankD: 32,
			xstatus.RankC: 46,
			xstatus.RankB: 62,
			xstatus.RankA: 80,
			xstatus.RankS: 100,
		},
		DifficultyVarianceSpan: 21, // nextInt(21) - 10 => [-10, +10]

		DraftAutoResolveWindowDays: 5,
	}
}
