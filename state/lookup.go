// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "github.com/ironguild/guildsim/ids"

// Collections are kept in ascending-ID order (spec.md §3), so lookups
// are linear scans rather than maps — maps are explicitly excluded from
// the canonical form (spec.md §4.2) and keeping the in-memory shape the
// same as the serialized shape avoids a second representation to keep
// in sync.

// FindDraft returns the inbox index of id, or -1.
func (c Contracts) FindDraft(id ids.ContractId) int {
	for i := range c.Inbox {
		if c.Inbox[i].ID == id {
			return i
		}
	}
	return -1
}

// FindBoard returns the board index of id, or -1.
func (c Contracts) FindBoard(id ids.ContractId) int {
	for i := range c.Board {
		if c.Board[i].ID == id {
			return i
		}
	}
	return -1
}

// FindActive returns the active index of id, or -1.
func (c Contracts) FindActive(id ids.ActiveContractId) int {
	for i := range c.Active {
		if c.Active[i].ID == id {
			return i
		}
	}
	return -1
}

// FindReturn returns the returns index whose ActiveContractId is id, or -1.
func (c Contracts) FindReturn(id ids.ActiveContractId) int {
	for i := range c.Returns {
		if c.Returns[i].ActiveContractId == id {
			return i
		}
	}
	return -1
}

// FindHero returns the roster index of id, or -1.
func (h Heroes) FindHero(id ids.HeroId) int {
	for i := range h.Roster {
		if h.Roster[i].ID == id {
			return i
		}
	}
	return -1
}

// AvailableCopper is the guild's unreserved money (spec.md §4.5
// PostContract: "moneyCopper - reservedCopper").
func (e Economy) AvailableCopper() int64 {
	return e.MoneyCopper - e.ReservedCopper
}
