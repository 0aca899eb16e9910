// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package policy

import (
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/xstatus"
)

// ResolveAutoBucket draws the fate of one stale inbox draft: GOOD
// (remove), NEUTRAL (reschedule) or BAD (remove, stability penalty)
// (spec.md §4.7 step 4). Always exactly one draw.
func ResolveAutoBucket(r *rng.Rng) xstatus.AutoResolveBucket {
	return xstatus.AutoResolveBucket(r.NextInt(3))
}
