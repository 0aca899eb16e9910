// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package serialize

import (
	"fmt"

	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/xstatus"
)

// MarshalEvents encodes a finalized event batch as a compact canonical
// JSON array. Each object starts with "type", then the Common header
// fields in order (day, revision, cmdId, seq), then the event's own
// fields in the order event.go declares them (spec.md §6).
func MarshalEvents(events []event.Event) []byte {
	encoded := make([]string, len(events))
	for i, e := range events {
		encoded[i] = encodeEvent(e)
	}
	return []byte(buildArray(encoded))
}

func header(kind event.Kind, c event.Common) []kv {
	return []kv{
		{"type", jstr(string(kind))},
		{"day", jint(c.Day)},
		{"revision", jint64(c.Revision)},
		{"cmdId", jint64(c.CmdId)},
		{"seq", jint(c.Seq)},
	}
}

func contractIdArray(cids []ids.ContractId) string {
	vals := make([]int64, len(cids))
	for i, id := range cids {
		vals[i] = id.Int64()
	}
	return jintArray(vals)
}

func heroIdArray(hids []ids.HeroId) string {
	vals := make([]int64, len(hids))
	for i, id := range hids {
		vals[i] = id.Int64()
	}
	return jintArray(vals)
}

func nullableSalvagePolicy(p *xstatus.SalvagePolicy) string {
	if p == nil {
		return "null"
	}
	return jstr(p.String())
}

// encodeEvent type-switches over every concrete event.Event and emits
// its canonical object. This is the one place the full event catalog
// must be kept exhaustive; a missing case here means that event kind
// can never round-trip through a save or a replay log.
func encodeEvent(e event.Event) string {
	switch ev := e.(type) {
	case event.DayStarted:
		return buildObject(header(ev.Kind(), ev.Common)...)

	case event.InboxGenerated:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"count", jint(ev.Count)},
			kv{"contractIds", contractIdArray(ev.ContractIds)},
		)
		return buildObject(pairs...)

	case event.HeroesArrived:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"count", jint(ev.Count)},
			kv{"heroIds", heroIdArray(ev.HeroIds)},
		)
		return buildObject(pairs...)

	case event.ContractAutoResolved:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"draftId", jint64(ev.DraftId.Int64())},
			kv{"bucket", jstr(ev.Bucket.String())},
		)
		return buildObject(pairs...)

	case event.HeroDeclined:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"heroId", jint64(ev.HeroId.Int64())},
			kv{"reason", jstr(ev.Reason)},
		)
		return buildObject(pairs...)

	case event.ContractTaken:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"heroId", jint64(ev.HeroId.Int64())},
			kv{"boardContractId", jint64(ev.BoardContractId.Int64())},
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"daysRemaining", jint(ev.DaysRemaining)},
		)
		return buildObject(pairs...)

	case event.WipAdvanced:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"daysRemaining", jint(ev.DaysRemaining)},
		)
		return buildObject(pairs...)

	case event.TrophyTheftSuspected:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"stolen", jint(ev.Stolen)},
			kv{"reported", jint(ev.Reported)},
		)
		return buildObject(pairs...)

	case event.ContractResolved:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"boardContractId", jint64(ev.BoardContractId.Int64())},
			kv{"outcome", jstr(ev.Outcome.String())},
			kv{"trophiesCount", jint(ev.TrophiesCount)},
			kv{"trophiesQuality", jstr(ev.TrophiesQuality.String())},
		)
		return buildObject(pairs...)

	case event.HeroDied:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"heroId", jint64(ev.HeroId.Int64())},
			kv{"outcome", jstr(ev.Outcome.String())},
		)
		return buildObject(pairs...)

	case event.ReturnClosed:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"boardContractId", jint64(ev.BoardContractId.Int64())},
			kv{"outcome", jstr(ev.Outcome.String())},
			kv{"feePaid", jint64(ev.FeePaid)},
			kv{"trophiesToGuild", jint(ev.TrophiesToGuild)},
		)
		return buildObject(pairs...)

	case event.ReturnRejected:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"boardContractId", jint64(ev.BoardContractId.Int64())},
		)
		return buildObject(pairs...)

	case event.ReturnClosureBlocked:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"activeContractId", jint64(ev.ActiveContractId.Int64())},
			kv{"policy", jstr(ev.Policy.String())},
			kv{"reason", jstr(ev.Reason)},
		)
		return buildObject(pairs...)

	case event.StabilityUpdated:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"old", jint(ev.Old)},
			kv{"new", jint(ev.New)},
		)
		return buildObject(pairs...)

	case event.TaxDue:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"amountDue", jint64(ev.AmountDue)},
			kv{"dueDay", jint(ev.DueDay)},
		)
		return buildObject(pairs...)

	case event.TaxPaid:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"amountPaid", jint64(ev.AmountPaid)},
			kv{"amountRemaining", jint64(ev.AmountRemaining)},
			kv{"isPartialPayment", jbool(ev.IsPartialPayment)},
		)
		return buildObject(pairs...)

	case event.TaxMissed:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"penalty", jint64(ev.Penalty)},
			kv{"missedCount", jint(ev.MissedCount)},
			kv{"nextDueDay", jint(ev.NextDueDay)},
		)
		return buildObject(pairs...)

	case event.GuildShutdown:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs, kv{"reason", jstr(ev.Reason)})
		return buildObject(pairs...)

	case event.GuildRankUp:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"oldRank", jstr(ev.OldRank.String())},
			kv{"newRank", jstr(ev.NewRank.String())},
		)
		return buildObject(pairs...)

	case event.DayEnded:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs, kv{"snapshot", encodeDaySnapshot(ev.Snapshot)})
		return buildObject(pairs...)

	case event.ContractDraftCreated:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"draftId", jint64(ev.DraftId.Int64())},
			kv{"title", jstr(ev.Title)},
			kv{"rank", jstr(ev.Rank.String())},
			kv{"difficulty", jint(ev.Difficulty)},
			kv{"reward", jint64(ev.Reward)},
			kv{"salvage", jstr(ev.Salvage.String())},
		)
		return buildObject(pairs...)

	case event.ContractPosted:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"boardContractId", jint64(ev.BoardContractId.Int64())},
			kv{"fromInboxId", jint64(ev.FromInboxId.Int64())},
			kv{"rank", jstr(ev.Rank.String())},
			kv{"fee", jint64(ev.Fee)},
			kv{"salvage", jstr(ev.Salvage.String())},
			kv{"clientDeposit", jint64(ev.ClientDeposit)},
		)
		return buildObject(pairs...)

	case event.ContractTermsUpdated:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"contractId", jint64(ev.ContractId.Int64())},
			kv{"oldFee", jnullableInt64(ev.OldFee)},
			kv{"newFee", jnullableInt64(ev.NewFee)},
			kv{"oldSalvage", nullableSalvagePolicy(ev.OldSalvage)},
			kv{"newSalvage", nullableSalvagePolicy(ev.NewSalvage)},
			kv{"location", jstr(ev.Location)},
		)
		return buildObject(pairs...)

	case event.ContractCancelled:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"contractId", jint64(ev.ContractId.Int64())},
			kv{"refundedCopper", jint64(ev.RefundedCopper)},
			kv{"location", jstr(ev.Location)},
		)
		return buildObject(pairs...)

	case event.TrophySold:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"amount", jint64(ev.Amount)},
			kv{"moneyGained", jint64(ev.MoneyGained)},
		)
		return buildObject(pairs...)

	case event.ProofPolicyChanged:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"oldPolicy", jstr(ev.OldPolicy.String())},
			kv{"newPolicy", jstr(ev.NewPolicy.String())},
		)
		return buildObject(pairs...)

	case event.CommandRejected:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"cmdType", jstr(ev.CmdType)},
			kv{"reason", jstr(ev.Reason.String())},
			kv{"detail", jstr(ev.Detail)},
		)
		return buildObject(pairs...)

	case event.InvariantViolated:
		pairs := header(ev.Kind(), ev.Common)
		pairs = append(pairs,
			kv{"invariantId", jstr(ev.InvariantId)},
			kv{"details", jstr(ev.Details)},
		)
		return buildObject(pairs...)

	default:
		panic(fmt.Sprintf("serialize: unhandled event kind %T", e))
	}
}

func encodeDaySnapshot(s event.DaySnapshot) string {
	return buildObject(
		kv{"day", jint(s.Day)},
		kv{"revision", jint64(s.Revision)},
		kv{"moneyCopper", jint64(s.MoneyCopper)},
		kv{"trophiesStock", jint64(s.TrophiesStock)},
		kv{"stability", jint(s.Stability)},
		kv{"reputation", jint(s.Reputation)},
		kv{"inboxCount", jint(s.InboxCount)},
		kv{"boardCount", jint(s.BoardCount)},
		kv{"activeWipCount", jint(s.ActiveWipCount)},
		kv{"returnsNeedingCloseCount", jint(s.ReturnsNeedingCloseCount)},
	)
}
