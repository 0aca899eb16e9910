// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import "github.com/ironguild/guildsim/balance"

// UpdateStability recomputes Region.Stability from a day's accounting:
// successful auto-closes raise it, failed ones lower it, PARTIAL does
// not count (spec.md §4.6 "Stability update"). changed reports whether
// the value actually moved, so the caller emits StabilityUpdated only
// when it did (spec.md §4.7 step 7).
func UpdateStability(old, successfulAutoClosed, failedAutoClosed int) (newStability int, changed bool) {
	delta := successfulAutoClosed - failedAutoClosed
	newStability = balance.Clamp(old+delta, 0, 100)
	return newStability, newStability != old
}
