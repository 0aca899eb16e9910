// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// ContractDraft is an authored-but-unpublished contract (spec.md §3).
type ContractDraft struct {
	ID                 ids.ContractId
	CreatedDay         int
	NextAutoResolveDay int
	Title              string
	RankSuggested      xstatus.GuildRank
	FeeOffered         int64 // copper
	Salvage            xstatus.SalvagePolicy
	BaseDifficulty     int
	ProofHint          string
	ClientDeposit      int64 // copper
}

// BoardContract is a published contract (spec.md §3).
type BoardContract struct {
	ID             ids.ContractId
	PostedDay      int
	Title          string
	Rank           xstatus.GuildRank
	Fee            int64 // copper
	Salvage        xstatus.SalvagePolicy
	BaseDifficulty int
	Status         xstatus.ContractStatus
	ClientDeposit  int64 // copper
}

// ActiveContract is a taken contract with heroes in the field (spec.md §3).
type ActiveContract struct {
	ID              ids.ActiveContractId
	BoardContractId ids.ContractId
	TakenDay        int
	DaysRemaining   int
	HeroIds         []ids.HeroId
	Status          xstatus.ActiveStatus
}

// ReturnPacket is the resolved outcome of an ActiveContract, awaiting (or
// not requiring) a player close (spec.md §3).
type ReturnPacket struct {
	ActiveContractId   ids.ActiveContractId
	BoardContractId    ids.ContractId
	HeroIds            []ids.HeroId
	ResolvedDay        int
	Outcome            xstatus.Outcome
	TrophiesCount      int
	TrophiesQuality    xstatus.TrophyQuality
	ReasonTags         []string
	RequiresPlayerClose bool
	SuspectedTheft      bool
}

// Traits are a hero's innate dispositions, each in [0,100] (spec.md §3).
type Traits struct {
	Greed   int
	Honesty int
	Courage int
}

// Hero is a roster member (spec.md §3).
type Hero struct {
	ID               ids.HeroId
	Name             string
	Rank             xstatus.GuildRank
	Class            xstatus.HeroClass
	Traits           Traits
	Status           xstatus.HeroStatus
	HistoryCompleted int
}
