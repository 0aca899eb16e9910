// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package command is the closed, sealed set of player actions the
// reducer accepts, grounded on the teacher's engine.Message-style
// tagged-union dispatch (_examples/luxfi-consensus/.../engine) but
// exhaustive over nine concrete kinds rather than an open wire protocol.
package command

import (
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// Kind discriminates the command union.
type Kind string

const (
	KindAdvanceDay          Kind = "AdvanceDay"
	KindPostContract        Kind = "PostContract"
	KindCreateContract      Kind = "CreateContract"
	KindUpdateContractTerms Kind = "UpdateContractTerms"
	KindCancelContract      Kind = "CancelContract"
	KindCloseReturn         Kind = "CloseReturn"
	KindSellTrophies        Kind = "SellTrophies"
	KindPayTax              Kind = "PayTax"
	KindSetProofPolicy      Kind = "SetProofPolicy"
)

// Command is implemented by every concrete command struct.
type Command interface {
	Kind() Kind
	CmdId() int64
}

// AdvanceDay runs the day-advancement pipeline (spec.md §4.7).
type AdvanceDay struct{ Id int64 }

func (c AdvanceDay) Kind() Kind   { return KindAdvanceDay }
func (c AdvanceDay) CmdId() int64 { return c.Id }

// PostContract publishes an inbox draft to the board (spec.md §4.5).
type PostContract struct {
	Id      int64
	InboxId ids.ContractId
	Fee     int64
	Salvage xstatus.SalvagePolicy
}

func (c PostContract) Kind() Kind   { return KindPostContract }
func (c PostContract) CmdId() int64 { return c.Id }

// CreateContract authors a new inbox draft (spec.md §4.5).
type CreateContract struct {
	Id         int64
	Title      string
	Rank       xstatus.GuildRank
	Difficulty int
	Reward     int64
	Salvage    xstatus.SalvagePolicy
}

func (c CreateContract) Kind() Kind   { return KindCreateContract }
func (c CreateContract) CmdId() int64 { return c.Id }

// UpdateContractTerms rewrites fee and/or salvage on an inbox draft or
// an OPEN board contract (spec.md §4.5). NewFee/NewSalvage are nil when
// that field is left unchanged.
type UpdateContractTerms struct {
	Id         int64
	ContractId ids.ContractId
	NewFee     *int64
	NewSalvage *xstatus.SalvagePolicy
}

func (c UpdateContractTerms) Kind() Kind   { return KindUpdateContractTerms }
func (c UpdateContractTerms) CmdId() int64 { return c.Id }

// CancelContract removes a draft or an OPEN board contract (spec.md §4.5).
type CancelContract struct {
	Id         int64
	ContractId ids.ContractId
}

func (c CancelContract) Kind() Kind   { return KindCancelContract }
func (c CancelContract) CmdId() int64 { return c.Id }

// CloseReturn settles a return packet that requires a player decision
// (spec.md §4.5).
type CloseReturn struct {
	Id               int64
	ActiveContractId ids.ActiveContractId
	Decision         xstatus.CloseDecision
}

func (c CloseReturn) Kind() Kind   { return KindCloseReturn }
func (c CloseReturn) CmdId() int64 { return c.Id }

// SellTrophies converts trophies to copper 1:1 (spec.md §4.5). Amount
// <= 0 means "sell all".
type SellTrophies struct {
	Id     int64
	Amount int64
}

func (c SellTrophies) Kind() Kind   { return KindSellTrophies }
func (c SellTrophies) CmdId() int64 { return c.Id }

// PayTax pays down outstanding tax penalty then principal (spec.md §4.5).
type PayTax struct {
	Id     int64
	Amount int64
}

func (c PayTax) Kind() Kind   { return KindPayTax }
func (c PayTax) CmdId() int64 { return c.Id }

// SetProofPolicy changes the guild's return-closure proof requirement
// (spec.md §4.5).
type SetProofPolicy struct {
	Id     int64
	Policy xstatus.ProofPolicy
}

func (c SetProofPolicy) Kind() Kind   { return KindSetProofPolicy }
func (c SetProofPolicy) CmdId() int64 { return c.Id }
