// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"fmt"

	"github.com/ironguild/guildsim/balance"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/policy"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/xstatus"
)

// handleAdvanceDay runs the nine-phase day-advancement pipeline in the
// fixed order spec.md §4.7 requires; RNG draws occur only in the order
// the phases below make them.
func handleAdvanceDay(s state.GameState, r *rng.Rng, bal config.Balance, ctx *event.SeqContext) state.GameState {
	s = dayStarted(s, ctx)
	s = generateInbox(s, bal, r, ctx)
	s = generateHeroArrivals(s, bal, r, ctx)
	s = autoResolveInbox(s, bal, r, ctx)
	s = pickupPhase(s, bal, ctx)
	s = wipAndResolvePhase(s, bal, r, ctx)
	s = stabilityPhase(s, ctx)
	s = taxPhase(s, bal, ctx)
	s = dayEnded(s, ctx)
	return s
}

// Phase 1: DayStarted. dayIndex itself is already advanced by Step
// before ctx is built (reducer.go), so this phase only clears
// arrivalsToday and opens the event batch.
func dayStarted(s state.GameState, ctx *event.SeqContext) state.GameState {
	s.Heroes.ArrivalsToday = nil
	ctx.Emit(event.DayStarted{})
	return s
}

// Phase 2: inbox generation. N = 2 * inboxMultiplier(rank) drafts; per
// draft draw difficulty variance, then payout, then client deposit —
// exactly that order, matching spec.md §4.7 step 2.
func generateInbox(s state.GameState, bal config.Balance, r *rng.Rng, ctx *event.SeqContext) state.GameState {
	n := 2 * bal.InboxMultiplierByRank[s.Guild.Rank]
	contractIds := make([]ids.ContractId, 0, n)
	inbox := append([]state.ContractDraft{}, s.Contracts.Inbox...)

	for i := 0; i < n; i++ {
		id, seq := s.Meta.Ids.NextContractIdAssign()
		s.Meta.Ids = seq

		difficulty := balance.SampleDifficulty(s.Guild.Rank, bal, r)
		payout := balance.SamplePayoutCopper(s.Guild.Rank, bal, r)
		clientDeposit := balance.SampleClientDepositCopper(payout, bal, r)

		draft := state.ContractDraft{
			ID:                 id,
			CreatedDay:         s.Meta.DayIndex,
			NextAutoResolveDay: s.Meta.DayIndex + bal.DraftAutoResolveWindowDays,
			Title:              fmt.Sprintf("Job #%d (%s rank)", id.Int64(), s.Guild.Rank),
			RankSuggested:      s.Guild.Rank,
			FeeOffered:         payout,
			Salvage:            xstatus.SalvagePolicy(i % 3),
			BaseDifficulty:     difficulty,
			ProofHint:          "",
			ClientDeposit:      clientDeposit,
		}
		inbox = append(inbox, draft)
		contractIds = append(contractIds, id)
	}
	s.Contracts.Inbox = inbox

	ctx.Emit(event.InboxGenerated{Count: n, ContractIds: contractIds})
	return s
}

// Phase 3: hero arrivals. M = 2 * heroMultiplier(rank); per hero draw a
// name index from the fixed name pool — exactly one draw per hero
// (spec.md §4.7 step 3).
func generateHeroArrivals(s state.GameState, bal config.Balance, r *rng.Rng, ctx *event.SeqContext) state.GameState {
	m := 2 * bal.HeroMultiplierByRank[s.Guild.Rank]
	heroIds := make([]ids.HeroId, 0, m)
	roster := append([]state.Hero{}, s.Heroes.Roster...)

	for i := 0; i < m; i++ {
		id, seq := s.Meta.Ids.NextHeroIdAssign()
		s.Meta.Ids = seq

		nameIndex := r.NextInt(len(bal.NamePool))
		traits := balance.TraitsFromNameIndex(nameIndex)

		hero := state.Hero{
			ID:               id,
			Name:             bal.NamePool[nameIndex],
			Rank:             xstatus.RankF,
			Class:            xstatus.HeroClass(nameIndex % xstatus.NumHeroClasses),
			Traits:           traits,
			Status:           xstatus.HeroAvailable,
			HistoryCompleted: 0,
		}
		roster = append(roster, hero)
		heroIds = append(heroIds, id)
	}
	s.Heroes.Roster = roster
	s.Heroes.ArrivalsToday = heroIds

	ctx.Emit(event.HeroesArrived{Count: m, HeroIds: heroIds})
	return s
}

// Phase 4: auto-resolve stale inbox drafts. One RNG draw per due draft,
// processed in ascending draft-id order; a single cumulative
// StabilityUpdated absorbs every BAD bucket's penalty (spec.md §4.7 step 4).
func autoResolveInbox(s state.GameState, bal config.Balance, r *rng.Rng, ctx *event.SeqContext) state.GameState {
	kept := make([]state.ContractDraft, 0, len(s.Contracts.Inbox))
	badCount := 0

	for _, draft := range s.Contracts.Inbox {
		if draft.NextAutoResolveDay > s.Meta.DayIndex {
			kept = append(kept, draft)
			continue
		}

		bucket := policy.ResolveAutoBucket(r)
		ctx.Emit(event.ContractAutoResolved{DraftId: draft.ID, Bucket: bucket})

		switch bucket {
		case xstatus.BucketNeutral:
			draft.NextAutoResolveDay = s.Meta.DayIndex + bal.AutoResolveRescheduleDays
			kept = append(kept, draft)
		case xstatus.BucketBad:
			badCount++
		case xstatus.BucketGood:
			// removed, no replacement
		}
	}
	s.Contracts.Inbox = kept

	if badCount > 0 {
		penalty := badCount * bal.AutoResolveBadPenalty
		old := s.Region.Stability
		newStability := balance.Clamp(old-penalty, 0, 100)
		if newStability != old {
			s.Region.Stability = newStability
			ctx.Emit(event.StabilityUpdated{Old: old, New: newStability})
		}
	}
	return s
}

// Phase 5: contract pickup. No RNG. Each hero that arrived today
// considers every OPEN board contract, in ascending hero-id order
// (spec.md §4.7 step 5, §4.6 "Contract pickup").
func pickupPhase(s state.GameState, bal config.Balance, ctx *event.SeqContext) state.GameState {
	for _, hid := range s.Heroes.ArrivalsToday {
		heroIdx := s.Heroes.FindHero(hid)
		if heroIdx < 0 {
			continue
		}
		hero := s.Heroes.Roster[heroIdx]

		result := policy.Pickup(hero, s.Contracts.Board, bal)
		if !result.Picked {
			ctx.Emit(event.HeroDeclined{HeroId: hid, Reason: result.DeclineReason})
			continue
		}

		boardIdx := s.Contracts.FindBoard(result.BoardContractId)
		board := append([]state.BoardContract{}, s.Contracts.Board...)
		board[boardIdx].Status = xstatus.ContractLocked
		s.Contracts.Board = board

		activeId, seq := s.Meta.Ids.NextActiveContractIdAssign()
		s.Meta.Ids = seq
		active := state.ActiveContract{
			ID:              activeId,
			BoardContractId: result.BoardContractId,
			TakenDay:        s.Meta.DayIndex,
			DaysRemaining:   bal.DaysInit,
			HeroIds:         []ids.HeroId{hid},
			Status:          xstatus.ActiveWIP,
		}
		s.Contracts.Active = append(append([]state.ActiveContract{}, s.Contracts.Active...), active)

		roster := append([]state.Hero{}, s.Heroes.Roster...)
		roster[heroIdx].Status = xstatus.HeroOnMission
		s.Heroes.Roster = roster

		ctx.Emit(event.ContractTaken{
			HeroId:           hid,
			BoardContractId:  result.BoardContractId,
			ActiveContractId: activeId,
			DaysRemaining:    active.DaysRemaining,
		})
	}
	return s
}

// Phase 6: WIP progression plus resolution, theft and auto-close
// settlement for every active that reaches zero days remaining, in
// ascending active-id order (spec.md §4.7 step 6).
func wipAndResolvePhase(s state.GameState, bal config.Balance, r *rng.Rng, ctx *event.SeqContext) state.GameState {
	successfulAutoClosed := 0
	failedAutoClosed := 0

	actives := append([]state.ActiveContract{}, s.Contracts.Active...)
	for i := range actives {
		if actives[i].Status != xstatus.ActiveWIP {
			continue
		}
		newDays, ready := policy.AdvanceWip(actives[i].DaysRemaining)
		actives[i].DaysRemaining = newDays
		ctx.Emit(event.WipAdvanced{ActiveContractId: actives[i].ID, DaysRemaining: newDays})

		if !ready {
			continue
		}

		s.Contracts.Active = actives
		var autoClosedSuccess, autoClosedFailed bool
		s, autoClosedSuccess, autoClosedFailed = resolveActive(s, actives[i].ID, bal, r, ctx)
		actives = append([]state.ActiveContract{}, s.Contracts.Active...)
		if autoClosedSuccess {
			successfulAutoClosed++
		}
		if autoClosedFailed {
			failedAutoClosed++
		}
	}
	s.Contracts.Active = actives

	old := s.Region.Stability
	newStability, changed := policy.UpdateStability(old, successfulAutoClosed, failedAutoClosed)
	s.Region.Stability = newStability
	if changed {
		ctx.Emit(event.StabilityUpdated{Old: old, New: newStability})
	}
	return s
}

// resolveActive resolves one active contract that just reached zero
// days remaining: outcome, optional theft, then either a player-close
// return packet (PARTIAL) or an immediate auto-close settlement.
func resolveActive(s state.GameState, activeId ids.ActiveContractId, bal config.Balance, r *rng.Rng, ctx *event.SeqContext) (state.GameState, bool, bool) {
	activeIdx := s.Contracts.FindActive(activeId)
	active := s.Contracts.Active[activeIdx]
	boardIdx := s.Contracts.FindBoard(active.BoardContractId)
	board := s.Contracts.Board[boardIdx]

	var hero state.Hero
	heroPresent := false
	if len(active.HeroIds) > 0 {
		if idx := s.Heroes.FindHero(active.HeroIds[0]); idx >= 0 {
			hero = s.Heroes.Roster[idx]
			heroPresent = true
		}
	}

	result := policy.ResolveOutcome(balance.HeroPower(hero, bal), board.BaseDifficulty, bal, r)

	theft := policy.ResolveTheft(result.Outcome, result.TrophiesCount, heroPresent, boardIdx >= 0,
		board.Salvage, board.Fee, hero.Traits.Greed, hero.Traits.Honesty, r)
	if theft.SuspectedTheft {
		ctx.Emit(event.TrophyTheftSuspected{
			ActiveContractId: activeId,
			Stolen:           theft.Stolen,
			Reported:         theft.Reported,
		})
	}
	reportedTrophies := result.TrophiesCount
	if theft.SuspectedTheft {
		reportedTrophies = theft.Reported
	}

	ctx.Emit(event.ContractResolved{
		ActiveContractId: activeId,
		BoardContractId:  active.BoardContractId,
		Outcome:          result.Outcome,
		TrophiesCount:    result.TrophiesCount,
		TrophiesQuality:  result.TrophiesQuality,
	})

	if result.Outcome == xstatus.OutcomePartial {
		s = markActiveReturnReady(s, activeIdx)
		s.Contracts.Returns = append(append([]state.ReturnPacket{}, s.Contracts.Returns...), state.ReturnPacket{
			ActiveContractId:    activeId,
			BoardContractId:     active.BoardContractId,
			HeroIds:             active.HeroIds,
			ResolvedDay:         s.Meta.DayIndex,
			Outcome:             result.Outcome,
			TrophiesCount:       reportedTrophies,
			TrophiesQuality:     result.TrophiesQuality,
			RequiresPlayerClose: true,
			SuspectedTheft:      theft.SuspectedTheft,
		})
		return s, false, false
	}

	delta := policy.SettleReturn(result.Outcome, board.Fee, board.ClientDeposit, board.Salvage, reportedTrophies)
	s.Economy.MoneyCopper += delta.DeltaMoney
	s.Economy.ReservedCopper += delta.DeltaReserved
	s.Economy.TrophiesStock += delta.DeltaTrophies

	if result.Outcome.RemovesHero() && heroPresent {
		s, _ = removeHeroes(s, []ids.HeroId{hero.ID})
		ctx.Emit(event.HeroDied{HeroId: hero.ID, Outcome: result.Outcome})
	} else if heroPresent {
		s = releaseHeroesAvailable(s, []ids.HeroId{hero.ID})
	}

	s = closeActiveAndMaybeArchiveBoard(s, activeIdx, boardIdx)

	if result.Outcome == xstatus.OutcomeSuccess {
		s = applyGuildProgression(s, bal, ctx)
	}

	ctx.Emit(event.ReturnClosed{
		ActiveContractId: activeId,
		BoardContractId:  active.BoardContractId,
		Outcome:          result.Outcome,
		FeePaid:          delta.DeltaMoney,
		TrophiesToGuild:  int(delta.DeltaTrophies),
	})

	return s, result.Outcome == xstatus.OutcomeSuccess, result.Outcome == xstatus.OutcomeFail || result.Outcome.RemovesHero()
}

func markActiveReturnReady(s state.GameState, activeIdx int) state.GameState {
	actives := append([]state.ActiveContract{}, s.Contracts.Active...)
	actives[activeIdx].Status = xstatus.ActiveReturnReady
	s.Contracts.Active = actives
	return s
}

// Phase 7 is folded into wipAndResolvePhase's stability update above;
// stabilityPhase exists as its own step only to keep the pipeline's
// nine phases visible one-to-one with spec.md §4.7, and is a no-op today
// since nothing else changes stability between phase 6 and phase 8.
func stabilityPhase(s state.GameState, _ *event.SeqContext) state.GameState {
	return s
}

// Phase 8: tax evaluation.
func taxPhase(s state.GameState, bal config.Balance, ctx *event.SeqContext) state.GameState {
	result := policy.EvaluateEndOfDay(s.Meta.DayIndex, s.Meta.TaxDueDay, s.Meta.TaxAmountDue, s.Meta.TaxPenalty, s.Meta.TaxMissedCount, bal)

	switch result.Kind {
	case policy.TaxEvalMissed:
		s.Meta.TaxAmountDue = result.NewTaxAmountDue
		s.Meta.TaxPenalty = result.NewTaxPenalty
		s.Meta.TaxMissedCount = result.NewMissedCount
		s.Meta.TaxDueDay = result.NewTaxDueDay

		ctx.Emit(event.TaxMissed{
			Penalty:     result.NewTaxPenalty,
			MissedCount: result.NewMissedCount,
			NextDueDay:  result.NewTaxDueDay,
		})
		if result.ShutdownTriggered {
			ctx.Emit(event.GuildShutdown{Reason: "tax_evasion"})
		}
	case policy.TaxEvalDueScheduled:
		s.Meta.TaxAmountDue = result.NewTaxAmountDue
		s.Meta.TaxPenalty = result.NewTaxPenalty
		s.Meta.TaxMissedCount = result.NewMissedCount
		s.Meta.TaxDueDay = result.NewTaxDueDay

		ctx.Emit(event.TaxDue{
			AmountDue: result.NewTaxAmountDue,
			DueDay:    result.NewTaxDueDay,
		})
	}
	return s
}

// Phase 9: DayEnded.
func dayEnded(s state.GameState, ctx *event.SeqContext) state.GameState {
	activeWip := 0
	for _, a := range s.Contracts.Active {
		if a.Status == xstatus.ActiveWIP {
			activeWip++
		}
	}
	returnsNeedingClose := 0
	for _, rp := range s.Contracts.Returns {
		if rp.RequiresPlayerClose {
			returnsNeedingClose++
		}
	}

	ctx.Emit(event.DayEnded{Snapshot: event.DaySnapshot{
		Day:                      s.Meta.DayIndex,
		Revision:                 s.Meta.Revision,
		MoneyCopper:              s.Economy.MoneyCopper,
		TrophiesStock:            s.Economy.TrophiesStock,
		Stability:                s.Region.Stability,
		Reputation:               s.Guild.Reputation,
		InboxCount:               len(s.Contracts.Inbox),
		BoardCount:               len(s.Contracts.Board),
		ActiveWipCount:           activeWip,
		ReturnsNeedingCloseCount: returnsNeedingClose,
	}})
	return s
}
