// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package serialize

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

func TestMarshalEventsFieldOrder(t *testing.T) {
	require := require.New(t)

	ctx := event.NewSeqContext(3, 5, 42)
	ctx.Emit(event.DayStarted{})
	ctx.Emit(event.ContractTaken{
		HeroId:           ids.HeroId(1),
		BoardContractId:  ids.ContractId(2),
		ActiveContractId: ids.ActiveContractId(9),
		DaysRemaining:    4,
	})
	events := ctx.Finalize()

	out := string(MarshalEvents(events))

	require.Contains(out, `{"type":"DayStarted","day":3,"revision":5,"cmdId":42,"seq":1}`)
	require.Contains(out, `{"type":"ContractTaken","day":3,"revision":5,"cmdId":42,"seq":2,"heroId":1,"boardContractId":2,"activeContractId":9,"daysRemaining":4}`)
}

func TestMarshalEventsCompact(t *testing.T) {
	require := require.New(t)

	ctx := event.NewSeqContext(1, 0, 1)
	ctx.Emit(event.DayStarted{})
	out := string(MarshalEvents(ctx.Finalize()))

	require.NotContains(out, " ")
	require.NotContains(out, "\n")
}

func TestMarshalEventsOrderAffectsHash(t *testing.T) {
	require := require.New(t)

	ctx1 := event.NewSeqContext(1, 0, 1)
	ctx1.Emit(event.TrophySold{Amount: 1, MoneyGained: 10})
	ctx1.Emit(event.TrophySold{Amount: 2, MoneyGained: 20})
	h1 := sha256Hex(MarshalEvents(ctx1.Finalize()))

	ctx2 := event.NewSeqContext(1, 0, 1)
	ctx2.Emit(event.TrophySold{Amount: 2, MoneyGained: 20})
	ctx2.Emit(event.TrophySold{Amount: 1, MoneyGained: 10})
	h2 := sha256Hex(MarshalEvents(ctx2.Finalize()))

	require.NotEqual(h1, h2)
}

func TestMarshalEventsNullableFields(t *testing.T) {
	require := require.New(t)

	ctx := event.NewSeqContext(1, 0, 1)
	ctx.Emit(event.ContractTermsUpdated{
		ContractId: ids.ContractId(1),
		NewFee:     nil,
		NewSalvage: nil,
		Location:   "board",
	})
	out := string(MarshalEvents(ctx.Finalize()))

	require.Contains(out, `"oldFee":null`)
	require.Contains(out, `"newFee":null`)
	require.Contains(out, `"oldSalvage":null`)
	require.Contains(out, `"newSalvage":null`)
}

func TestMarshalEventsAllKindsEncode(t *testing.T) {
	require := require.New(t)

	salvage := xstatus.SalvageGuild
	fee := int64(100)

	all := []event.Event{
		event.DayStarted{},
		event.InboxGenerated{Count: 1, ContractIds: []ids.ContractId{1}},
		event.HeroesArrived{Count: 1, HeroIds: []ids.HeroId{1}},
		event.ContractAutoResolved{DraftId: 1, Bucket: xstatus.BucketGood},
		event.HeroDeclined{HeroId: 1, Reason: "no_contracts"},
		event.ContractTaken{HeroId: 1, BoardContractId: 1, ActiveContractId: 1, DaysRemaining: 3},
		event.WipAdvanced{ActiveContractId: 1, DaysRemaining: 2},
		event.TrophyTheftSuspected{ActiveContractId: 1, Stolen: 1, Reported: 0},
		event.ContractResolved{ActiveContractId: 1, BoardContractId: 1, Outcome: xstatus.OutcomeSuccess, TrophiesCount: 2, TrophiesQuality: xstatus.QualityGood},
		event.HeroDied{HeroId: 1, Outcome: xstatus.OutcomeDeath},
		event.ReturnClosed{ActiveContractId: 1, BoardContractId: 1, Outcome: xstatus.OutcomeSuccess, FeePaid: 10, TrophiesToGuild: 1},
		event.ReturnRejected{ActiveContractId: 1, BoardContractId: 1},
		event.ReturnClosureBlocked{ActiveContractId: 1, Policy: xstatus.ProofStrict, Reason: "no_proof"},
		event.StabilityUpdated{Old: 50, New: 48},
		event.TaxDue{AmountDue: 50, DueDay: 7},
		event.TaxPaid{AmountPaid: 50, AmountRemaining: 0, IsPartialPayment: false},
		event.TaxMissed{Penalty: 5, MissedCount: 1, NextDueDay: 14},
		event.GuildShutdown{Reason: "tax_max_missed"},
		event.GuildRankUp{OldRank: xstatus.RankF, NewRank: xstatus.RankE},
		event.DayEnded{Snapshot: event.DaySnapshot{Day: 1}},
		event.ContractDraftCreated{DraftId: 1, Title: "t", Rank: xstatus.RankF, Difficulty: 1, Reward: 1, Salvage: salvage},
		event.ContractPosted{BoardContractId: 1, FromInboxId: 1, Rank: xstatus.RankF, Fee: fee, Salvage: salvage, ClientDeposit: 0},
		event.ContractTermsUpdated{ContractId: 1, NewFee: &fee, Location: "board"},
		event.ContractCancelled{ContractId: 1, RefundedCopper: 10, Location: "inbox"},
		event.TrophySold{Amount: 1, MoneyGained: 10},
		event.ProofPolicyChanged{OldPolicy: xstatus.ProofFast, NewPolicy: xstatus.ProofSoft},
		event.CommandRejected{CmdType: "PostContract", Reason: xstatus.ReasonNotFound, Detail: "missing"},
		event.InvariantViolated{InvariantId: "x", Details: "y"},
	}

	ctx := event.NewSeqContext(1, 0, 1)
	for _, e := range all {
		ctx.Emit(e)
	}
	out := string(MarshalEvents(ctx.Finalize()))
	require.NotEmpty(out)
	require.Equal(len(all), countTopLevelObjects(out))
}

func countTopLevelObjects(s string) int {
	depth := 0
	count := 0
	for _, r := range s {
		switch r {
		case '{':
			if depth == 1 {
				count++
			}
			depth++
		case '}':
			depth--
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return count
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
