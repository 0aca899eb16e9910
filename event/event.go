// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package event is the tagged event union every Step call emits,
// grounded on the teacher's snow/consensus.Event-style notification
// shape but closed and exhaustive: one Go struct per event kind, a
// Kind() discriminator, and a shared Common header carrying day,
// revision, cmdId and seq — matching spec.md §6's canonical field
// order ("first key is always type... followed by day, revision,
// cmdId, seq, then event-specific fields").
package event

import (
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// Kind discriminates the event catalog (spec.md §6).
type Kind string

const (
	KindDayStarted            Kind = "DayStarted"
	KindInboxGenerated        Kind = "InboxGenerated"
	KindHeroesArrived         Kind = "HeroesArrived"
	KindContractAutoResolved  Kind = "ContractAutoResolved"
	KindHeroDeclined          Kind = "HeroDeclined"
	KindContractTaken         Kind = "ContractTaken"
	KindWipAdvanced           Kind = "WipAdvanced"
	KindTrophyTheftSuspected  Kind = "TrophyTheftSuspected"
	KindContractResolved      Kind = "ContractResolved"
	KindHeroDied              Kind = "HeroDied"
	KindReturnClosed          Kind = "ReturnClosed"
	KindReturnRejected        Kind = "ReturnRejected"
	KindReturnClosureBlocked  Kind = "ReturnClosureBlocked"
	KindStabilityUpdated      Kind = "StabilityUpdated"
	KindTaxDue                Kind = "TaxDue"
	KindTaxPaid               Kind = "TaxPaid"
	KindTaxMissed             Kind = "TaxMissed"
	KindGuildShutdown         Kind = "GuildShutdown"
	KindGuildRankUp           Kind = "GuildRankUp"
	KindDayEnded              Kind = "DayEnded"
	KindContractDraftCreated  Kind = "ContractDraftCreated"
	KindContractPosted        Kind = "ContractPosted"
	KindContractTermsUpdated  Kind = "ContractTermsUpdated"
	KindContractCancelled     Kind = "ContractCancelled"
	KindTrophySold            Kind = "TrophySold"
	KindProofPolicyChanged    Kind = "ProofPolicyChanged"
	KindCommandRejected       Kind = "CommandRejected"
	KindInvariantViolated     Kind = "InvariantViolated"
)

// Common is the header every event carries, in canonical field order
// (spec.md §6). Seq is 0 until SeqContext.Finalize assigns 1..N
// (spec.md §4.8 "sequencing context").
type Common struct {
	Day      int
	Revision int64
	CmdId    int64
	Seq      int
}

// Event is implemented by every concrete event struct. Kind is used by
// the canonical serializer to pick the field-order table; Base exposes
// the header for seq finalization without a type switch.
type Event interface {
	Kind() Kind
	Base() Common
	withSeq(seq int) Event
	withCommon(c Common) Event
}

// DayStarted opens a day-advancement pipeline run (spec.md §4.7 step 1).
type DayStarted struct {
	Common
}

func (e DayStarted) Kind() Kind       { return KindDayStarted }
func (e DayStarted) Base() Common     { return e.Common }
func (e DayStarted) withSeq(s int) Event { e.Seq = s; return e }
func (e DayStarted) withCommon(c Common) Event { e.Common = c; return e }

// InboxGenerated reports the drafts created this day (spec.md §4.7 step 2).
type InboxGenerated struct {
	Common
	Count       int
	ContractIds []ids.ContractId
}

func (e InboxGenerated) Kind() Kind       { return KindInboxGenerated }
func (e InboxGenerated) Base() Common     { return e.Common }
func (e InboxGenerated) withSeq(s int) Event { e.Seq = s; return e }
func (e InboxGenerated) withCommon(c Common) Event { e.Common = c; return e }

// HeroesArrived reports the heroes recruited this day (spec.md §4.7 step 3).
type HeroesArrived struct {
	Common
	Count   int
	HeroIds []ids.HeroId
}

func (e HeroesArrived) Kind() Kind       { return KindHeroesArrived }
func (e HeroesArrived) Base() Common     { return e.Common }
func (e HeroesArrived) withSeq(s int) Event { e.Seq = s; return e }
func (e HeroesArrived) withCommon(c Common) Event { e.Common = c; return e }

// ContractAutoResolved reports an inbox draft that aged out (spec.md §4.7
// step 4).
type ContractAutoResolved struct {
	Common
	DraftId ids.ContractId
	Bucket  xstatus.AutoResolveBucket
}

func (e ContractAutoResolved) Kind() Kind       { return KindContractAutoResolved }
func (e ContractAutoResolved) Base() Common     { return e.Common }
func (e ContractAutoResolved) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractAutoResolved) withCommon(c Common) Event { e.Common = c; return e }

// HeroDeclined reports a hero that found no suitable contract to take
// (spec.md §4.6 "Contract pickup").
type HeroDeclined struct {
	Common
	HeroId ids.HeroId
	Reason string // "unprofitable" | "too_risky" | "no_contracts"
}

func (e HeroDeclined) Kind() Kind       { return KindHeroDeclined }
func (e HeroDeclined) Base() Common     { return e.Common }
func (e HeroDeclined) withSeq(s int) Event { e.Seq = s; return e }
func (e HeroDeclined) withCommon(c Common) Event { e.Common = c; return e }

// ContractTaken reports a hero locking a board contract (spec.md §4.6
// "Contract pickup").
type ContractTaken struct {
	Common
	HeroId          ids.HeroId
	BoardContractId ids.ContractId
	ActiveContractId ids.ActiveContractId
	DaysRemaining   int
}

func (e ContractTaken) Kind() Kind       { return KindContractTaken }
func (e ContractTaken) Base() Common     { return e.Common }
func (e ContractTaken) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractTaken) withCommon(c Common) Event { e.Common = c; return e }

// WipAdvanced reports a day's WIP decrement for one active contract
// (spec.md §4.7 step 6).
type WipAdvanced struct {
	Common
	ActiveContractId ids.ActiveContractId
	DaysRemaining    int
}

func (e WipAdvanced) Kind() Kind       { return KindWipAdvanced }
func (e WipAdvanced) Base() Common     { return e.Common }
func (e WipAdvanced) withSeq(s int) Event { e.Seq = s; return e }
func (e WipAdvanced) withCommon(c Common) Event { e.Common = c; return e }

// TrophyTheftSuspected reports a theft roll hitting (spec.md §4.6 "Theft").
type TrophyTheftSuspected struct {
	Common
	ActiveContractId ids.ActiveContractId
	Stolen           int
	Reported         int
}

func (e TrophyTheftSuspected) Kind() Kind       { return KindTrophyTheftSuspected }
func (e TrophyTheftSuspected) Base() Common     { return e.Common }
func (e TrophyTheftSuspected) withSeq(s int) Event { e.Seq = s; return e }
func (e TrophyTheftSuspected) withCommon(c Common) Event { e.Common = c; return e }

// ContractResolved reports an active contract's outcome resolution
// (spec.md §4.6 "Outcome resolution").
type ContractResolved struct {
	Common
	ActiveContractId ids.ActiveContractId
	BoardContractId  ids.ContractId
	Outcome          xstatus.Outcome
	TrophiesCount    int
	TrophiesQuality  xstatus.TrophyQuality
}

func (e ContractResolved) Kind() Kind       { return KindContractResolved }
func (e ContractResolved) Base() Common     { return e.Common }
func (e ContractResolved) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractResolved) withCommon(c Common) Event { e.Common = c; return e }

// HeroDied reports a hero removed from the roster on DEATH or MISSING
// (spec.md §9 "MISSING vs DEATH... preserve both outcomes").
type HeroDied struct {
	Common
	HeroId  ids.HeroId
	Outcome xstatus.Outcome
}

func (e HeroDied) Kind() Kind       { return KindHeroDied }
func (e HeroDied) Base() Common     { return e.Common }
func (e HeroDied) withSeq(s int) Event { e.Seq = s; return e }
func (e HeroDied) withCommon(c Common) Event { e.Common = c; return e }

// ReturnClosed reports a settled return, whether auto-closed or player
// closed via ACCEPT (spec.md §4.7 steps 6, handleCloseReturn).
type ReturnClosed struct {
	Common
	ActiveContractId ids.ActiveContractId
	BoardContractId  ids.ContractId
	Outcome          xstatus.Outcome
	FeePaid          int64
	TrophiesToGuild  int
}

func (e ReturnClosed) Kind() Kind       { return KindReturnClosed }
func (e ReturnClosed) Base() Common     { return e.Common }
func (e ReturnClosed) withSeq(s int) Event { e.Seq = s; return e }
func (e ReturnClosed) withCommon(c Common) Event { e.Common = c; return e }

// ReturnRejected reports a player REJECT close (handleCloseReturn).
type ReturnRejected struct {
	Common
	ActiveContractId ids.ActiveContractId
	BoardContractId  ids.ContractId
}

func (e ReturnRejected) Kind() Kind       { return KindReturnRejected }
func (e ReturnRejected) Base() Common     { return e.Common }
func (e ReturnRejected) withSeq(s int) Event { e.Seq = s; return e }
func (e ReturnRejected) withCommon(c Common) Event { e.Common = c; return e }

// ReturnClosureBlocked reports a denied close under proof policy
// (spec.md §4.5 CloseReturn rules, §4.7 handleCloseReturn).
type ReturnClosureBlocked struct {
	Common
	ActiveContractId ids.ActiveContractId
	Policy           xstatus.ProofPolicy
	Reason           string
}

func (e ReturnClosureBlocked) Kind() Kind       { return KindReturnClosureBlocked }
func (e ReturnClosureBlocked) Base() Common     { return e.Common }
func (e ReturnClosureBlocked) withSeq(s int) Event { e.Seq = s; return e }
func (e ReturnClosureBlocked) withCommon(c Common) Event { e.Common = c; return e }

// StabilityUpdated reports a changed Region.Stability value (spec.md
// §4.6 "Stability update"). Only emitted when the value actually changed.
type StabilityUpdated struct {
	Common
	Old int
	New int
}

func (e StabilityUpdated) Kind() Kind       { return KindStabilityUpdated }
func (e StabilityUpdated) Base() Common     { return e.Common }
func (e StabilityUpdated) withSeq(s int) Event { e.Seq = s; return e }
func (e StabilityUpdated) withCommon(c Common) Event { e.Common = c; return e }

// TaxDue reports a DUE_SCHEDULED tax evaluation outcome (spec.md §4.6 "Tax").
type TaxDue struct {
	Common
	AmountDue int64
	DueDay    int
}

func (e TaxDue) Kind() Kind       { return KindTaxDue }
func (e TaxDue) Base() Common     { return e.Common }
func (e TaxDue) withSeq(s int) Event { e.Seq = s; return e }
func (e TaxDue) withCommon(c Common) Event { e.Common = c; return e }

// TaxPaid reports a PayTax command applied via computePayment (spec.md
// §4.6 "Tax").
type TaxPaid struct {
	Common
	AmountPaid       int64
	AmountRemaining  int64
	IsPartialPayment bool
}

func (e TaxPaid) Kind() Kind       { return KindTaxPaid }
func (e TaxPaid) Base() Common     { return e.Common }
func (e TaxPaid) withSeq(s int) Event { e.Seq = s; return e }
func (e TaxPaid) withCommon(c Common) Event { e.Common = c; return e }

// TaxMissed reports a MISSED tax evaluation outcome (spec.md §4.6 "Tax").
type TaxMissed struct {
	Common
	Penalty     int64
	MissedCount int
	NextDueDay  int
}

func (e TaxMissed) Kind() Kind       { return KindTaxMissed }
func (e TaxMissed) Base() Common     { return e.Common }
func (e TaxMissed) withSeq(s int) Event { e.Seq = s; return e }
func (e TaxMissed) withCommon(c Common) Event { e.Common = c; return e }

// GuildShutdown reports the guild crossing TAX_MAX_MISSED (spec.md §4.6 "Tax").
type GuildShutdown struct {
	Common
	Reason string
}

func (e GuildShutdown) Kind() Kind       { return KindGuildShutdown }
func (e GuildShutdown) Base() Common     { return e.Common }
func (e GuildShutdown) withSeq(s int) Event { e.Seq = s; return e }
func (e GuildShutdown) withCommon(c Common) Event { e.Common = c; return e }

// GuildRankUp reports a rank-threshold crossing (spec.md §4.6 "Guild
// progression").
type GuildRankUp struct {
	Common
	OldRank xstatus.GuildRank
	NewRank xstatus.GuildRank
}

func (e GuildRankUp) Kind() Kind       { return KindGuildRankUp }
func (e GuildRankUp) Base() Common     { return e.Common }
func (e GuildRankUp) withSeq(s int) Event { e.Seq = s; return e }
func (e GuildRankUp) withCommon(c Common) Event { e.Common = c; return e }

// DaySnapshot is DayEnded's payload (spec.md §4.7 step 9).
type DaySnapshot struct {
	Day                      int
	Revision                 int64
	MoneyCopper              int64
	TrophiesStock            int64
	Stability                int
	Reputation               int
	InboxCount               int
	BoardCount               int
	ActiveWipCount           int
	ReturnsNeedingCloseCount int
}

// DayEnded closes a day-advancement pipeline run (spec.md §4.7 step 9).
type DayEnded struct {
	Common
	Snapshot DaySnapshot
}

func (e DayEnded) Kind() Kind       { return KindDayEnded }
func (e DayEnded) Base() Common     { return e.Common }
func (e DayEnded) withSeq(s int) Event { e.Seq = s; return e }
func (e DayEnded) withCommon(c Common) Event { e.Common = c; return e }

// ContractDraftCreated reports handleCreateContract (spec.md §4.7).
type ContractDraftCreated struct {
	Common
	DraftId    ids.ContractId
	Title      string
	Rank       xstatus.GuildRank
	Difficulty int
	Reward     int64
	Salvage    xstatus.SalvagePolicy
}

func (e ContractDraftCreated) Kind() Kind       { return KindContractDraftCreated }
func (e ContractDraftCreated) Base() Common     { return e.Common }
func (e ContractDraftCreated) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractDraftCreated) withCommon(c Common) Event { e.Common = c; return e }

// ContractPosted reports handlePostContract (spec.md §4.7).
type ContractPosted struct {
	Common
	BoardContractId ids.ContractId
	FromInboxId     ids.ContractId
	Rank            xstatus.GuildRank
	Fee             int64
	Salvage         xstatus.SalvagePolicy
	ClientDeposit   int64
}

func (e ContractPosted) Kind() Kind       { return KindContractPosted }
func (e ContractPosted) Base() Common     { return e.Common }
func (e ContractPosted) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractPosted) withCommon(c Common) Event { e.Common = c; return e }

// ContractTermsUpdated reports handleUpdateContractTerms (spec.md §4.7).
// OldFee/NewFee/OldSalvage/NewSalvage are pointers because each field is
// independently optional on the command.
type ContractTermsUpdated struct {
	Common
	ContractId ids.ContractId
	OldFee     *int64
	NewFee     *int64
	OldSalvage *xstatus.SalvagePolicy
	NewSalvage *xstatus.SalvagePolicy
	Location   string // "inbox" | "board"
}

func (e ContractTermsUpdated) Kind() Kind       { return KindContractTermsUpdated }
func (e ContractTermsUpdated) Base() Common     { return e.Common }
func (e ContractTermsUpdated) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractTermsUpdated) withCommon(c Common) Event { e.Common = c; return e }

// ContractCancelled reports handleCancelContract (spec.md §4.7).
type ContractCancelled struct {
	Common
	ContractId     ids.ContractId
	RefundedCopper int64
	Location       string // "inbox" | "board"
}

func (e ContractCancelled) Kind() Kind       { return KindContractCancelled }
func (e ContractCancelled) Base() Common     { return e.Common }
func (e ContractCancelled) withSeq(s int) Event { e.Seq = s; return e }
func (e ContractCancelled) withCommon(c Common) Event { e.Common = c; return e }

// TrophySold reports handleSellTrophies (spec.md §4.7).
type TrophySold struct {
	Common
	Amount      int64
	MoneyGained int64
}

func (e TrophySold) Kind() Kind       { return KindTrophySold }
func (e TrophySold) Base() Common     { return e.Common }
func (e TrophySold) withSeq(s int) Event { e.Seq = s; return e }
func (e TrophySold) withCommon(c Common) Event { e.Common = c; return e }

// ProofPolicyChanged reports handleSetProofPolicy, only emitted when the
// value actually changed (spec.md §4.7).
type ProofPolicyChanged struct {
	Common
	OldPolicy xstatus.ProofPolicy
	NewPolicy xstatus.ProofPolicy
}

func (e ProofPolicyChanged) Kind() Kind       { return KindProofPolicyChanged }
func (e ProofPolicyChanged) Base() Common     { return e.Common }
func (e ProofPolicyChanged) withSeq(s int) Event { e.Seq = s; return e }
func (e ProofPolicyChanged) withCommon(c Common) Event { e.Common = c; return e }

// CommandRejected is emitted in place of any domain event when
// canApply rejects a command (spec.md §4.8).
type CommandRejected struct {
	Common
	CmdType string
	Reason  xstatus.RejectReason
	Detail  string
}

func (e CommandRejected) Kind() Kind       { return KindCommandRejected }
func (e CommandRejected) Base() Common     { return e.Common }
func (e CommandRejected) withSeq(s int) Event { e.Seq = s; return e }
func (e CommandRejected) withCommon(c Common) Event { e.Common = c; return e }

// InvariantViolated is emitted for every verify() violation found after
// a handler runs (spec.md §4.8).
type InvariantViolated struct {
	Common
	InvariantId string
	Details     string
}

func (e InvariantViolated) Kind() Kind       { return KindInvariantViolated }
func (e InvariantViolated) Base() Common     { return e.Common }
func (e InvariantViolated) withSeq(s int) Event { e.Seq = s; return e }
func (e InvariantViolated) withCommon(c Common) Event { e.Common = c; return e }
