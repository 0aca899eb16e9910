// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import "github.com/ironguild/guildsim/xstatus"

// CanClose gates a player's ACCEPT decision against the guild's proof
// policy (spec.md §4.7 handleCloseReturn: "check proof policy with
// canClose(policy, quality, suspectedTheft)"). FAST and SOFT always
// allow; STRICT denies when the recovered trophies are DAMAGED or theft
// is suspected, returning the stable reason string the caller attaches
// to ReturnClosureBlocked.
func CanClose(p xstatus.ProofPolicy, quality xstatus.TrophyQuality, suspectedTheft bool) (allowed bool, reason string) {
	if p != xstatus.ProofStrict {
		return true, ""
	}
	if quality == xstatus.QualityDamaged || suspectedTheft {
		return false, "strict_policy_damaged_proof"
	}
	return true, ""
}
