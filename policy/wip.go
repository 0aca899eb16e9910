// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

// AdvanceWip decrements a WIP active contract's remaining days by one
// and reports whether it has now reached zero and is ready for
// resolution (spec.md §4.6 "WIP progression").
func AdvanceWip(daysRemaining int) (newDaysRemaining int, readyForResolution bool) {
	newDaysRemaining = daysRemaining - 1
	return newDaysRemaining, newDaysRemaining <= 0
}
