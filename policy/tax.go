// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import "github.com/ironguild/guildsim/config"

// TaxEvalKind discriminates EvaluateEndOfDay's result (spec.md §4.6 "Tax").
type TaxEvalKind int

const (
	TaxEvalNone TaxEvalKind = iota
	TaxEvalMissed
	TaxEvalDueScheduled
)

// TaxEvalResult is EvaluateEndOfDay's decision DTO. Only the fields
// relevant to Kind are meaningful; callers overwrite Meta's tax fields
// wholesale with NewTaxAmountDue/NewTaxPenalty/NewMissedCount/NewTaxDueDay.
type TaxEvalResult struct {
	Kind              TaxEvalKind
	NewTaxAmountDue   int64
	NewTaxPenalty     int64
	NewMissedCount    int
	NewTaxDueDay      int
	ShutdownTriggered bool
}

// EvaluateEndOfDay decides the day's tax outcome (spec.md §4.6 "Tax"):
// not yet due, a MISSED evaluation (penalty grows, reschedule, and a
// shutdown flag once TaxMaxMissed is crossed), or a DUE_SCHEDULED
// evaluation when the due day is reached with no outstanding debt. No RNG.
func EvaluateEndOfDay(currentDay, taxDueDay int, taxAmountDue, taxPenalty int64, missedCount int, bal config.Balance) TaxEvalResult {
	if currentDay < taxDueDay {
		return TaxEvalResult{Kind: TaxEvalNone}
	}

	if taxAmountDue+taxPenalty > 0 {
		addedPenalty := taxAmountDue * int64(bal.TaxPenaltyBps) / 10000
		newMissed := missedCount + 1
		return TaxEvalResult{
			Kind:              TaxEvalMissed,
			NewTaxAmountDue:   taxAmountDue,
			NewTaxPenalty:     taxPenalty + addedPenalty,
			NewMissedCount:    newMissed,
			NewTaxDueDay:      currentDay + bal.TaxRescheduleDays,
			ShutdownTriggered: newMissed >= bal.TaxMaxMissed,
		}
	}

	return TaxEvalResult{
		Kind:            TaxEvalDueScheduled,
		NewTaxAmountDue: bal.InitialTaxAmount,
		NewTaxPenalty:   0,
		NewMissedCount:  0,
		NewTaxDueDay:    currentDay + bal.TaxRescheduleDays,
	}
}

// ComputePayment applies payment to outstanding penalty first, then
// principal (spec.md §4.6 "Tax": "applies to penalty first, then
// principal"). fullyCleared tells the caller to reset taxMissedCount.
func ComputePayment(payment, taxAmountDue, taxPenalty int64) (newTaxAmountDue, newTaxPenalty int64, isPartialPayment, fullyCleared bool) {
	remaining := payment

	newTaxPenalty = taxPenalty
	if remaining > 0 && newTaxPenalty > 0 {
		applied := remaining
		if applied > newTaxPenalty {
			applied = newTaxPenalty
		}
		newTaxPenalty -= applied
		remaining -= applied
	}

	newTaxAmountDue = taxAmountDue
	if remaining > 0 && newTaxAmountDue > 0 {
		applied := remaining
		if applied > newTaxAmountDue {
			applied = newTaxAmountDue
		}
		newTaxAmountDue -= applied
	}

	fullyCleared = newTaxAmountDue == 0 && newTaxPenalty == 0
	isPartialPayment = !fullyCleared
	return newTaxAmountDue, newTaxPenalty, isPartialPayment, fullyCleared
}
