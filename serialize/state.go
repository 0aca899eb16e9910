// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package serialize

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironguild/guildsim/ids"
	"github.com/ironguild/guildsim/state"
	"github.com/ironguild/guildsim/utils/wrappers"
	"github.com/ironguild/guildsim/xstatus"
)

// ErrUnsupportedSaveVersion is raised at the serialization boundary when
// a loaded save's saveVersion does not match state.SaveVersion (spec.md
// §4.2 "UnsupportedSaveVersion"). This is a serialization-tier error
// (spec.md §7 tier 3), never an in-band event.
var ErrUnsupportedSaveVersion = errors.New("serialize: unsupported save version")

// MarshalState encodes s as compact canonical JSON with the fixed field
// order spec.md §6 specifies. ArrivalsToday is elided (spec.md §4.2
// "arrivalsToday is elided on save").
func MarshalState(s state.GameState) []byte {
	out := buildObject(
		kv{"meta", encodeMeta(s.Meta)},
		kv{"guild", encodeGuild(s.Guild)},
		kv{"region", encodeRegion(s.Region)},
		kv{"economy", encodeEconomy(s.Economy)},
		kv{"contracts", encodeContracts(s.Contracts)},
		kv{"heroes", encodeHeroes(s.Heroes)},
	)
	return []byte(out)
}

func encodeMeta(m state.Meta) string {
	return buildObject(
		kv{"saveVersion", jint(m.SaveVersion)},
		kv{"seed", jint64(m.Seed)},
		kv{"dayIndex", jint(m.DayIndex)},
		kv{"revision", jint64(m.Revision)},
		kv{"ids", buildObject(
			kv{"nextContractId", jint64(m.Ids.NextContractId.Int64())},
			kv{"nextHeroId", jint64(m.Ids.NextHeroId.Int64())},
			kv{"nextActiveContractId", jint64(m.Ids.NextActiveContractId.Int64())},
		)},
		kv{"taxDueDay", jint(m.TaxDueDay)},
		kv{"taxAmountDue", jint64(m.TaxAmountDue)},
		kv{"taxPenalty", jint64(m.TaxPenalty)},
		kv{"taxMissedCount", jint(m.TaxMissedCount)},
	)
}

func encodeGuild(g state.Guild) string {
	return buildObject(
		kv{"guildRank", jstr(g.Rank.String())},
		kv{"reputation", jint(g.Reputation)},
		kv{"completedContractsTotal", jint(g.CompletedContractsTotal)},
		kv{"contractsForNextRank", jint(g.ContractsTowardNextRank)},
		kv{"proofPolicy", jstr(g.ProofPolicy.String())},
	)
}

func encodeRegion(r state.Region) string {
	return buildObject(kv{"stability", jint(r.Stability)})
}

func encodeEconomy(e state.Economy) string {
	return buildObject(
		kv{"moneyCopper", jint64(e.MoneyCopper)},
		kv{"reservedCopper", jint64(e.ReservedCopper)},
		kv{"trophiesStock", jint64(e.TrophiesStock)},
	)
}

func encodeContracts(c state.Contracts) string {
	inbox := make([]string, len(c.Inbox))
	for i, d := range c.Inbox {
		inbox[i] = encodeContractDraft(d)
	}
	board := make([]string, len(c.Board))
	for i, b := range c.Board {
		board[i] = encodeBoardContract(b)
	}
	active := make([]string, len(c.Active))
	for i, a := range c.Active {
		active[i] = encodeActiveContract(a)
	}
	returns := make([]string, len(c.Returns))
	for i, r := range c.Returns {
		returns[i] = encodeReturnPacket(r)
	}
	archive := make([]string, len(c.Archive))
	for i, b := range c.Archive {
		archive[i] = encodeBoardContract(b)
	}
	return buildObject(
		kv{"inbox", buildArray(inbox)},
		kv{"board", buildArray(board)},
		kv{"active", buildArray(active)},
		kv{"returns", buildArray(returns)},
		kv{"archive", buildArray(archive)},
	)
}

func encodeContractDraft(d state.ContractDraft) string {
	return buildObject(
		kv{"id", jint64(d.ID.Int64())},
		kv{"createdDay", jint(d.CreatedDay)},
		kv{"nextAutoResolveDay", jint(d.NextAutoResolveDay)},
		kv{"title", jstr(d.Title)},
		kv{"rankSuggested", jstr(d.RankSuggested.String())},
		kv{"feeOffered", jint64(d.FeeOffered)},
		kv{"salvage", jstr(d.Salvage.String())},
		kv{"baseDifficulty", jint(d.BaseDifficulty)},
		kv{"proofHint", jstr(d.ProofHint)},
		kv{"clientDeposit", jint64(d.ClientDeposit)},
	)
}

func encodeBoardContract(b state.BoardContract) string {
	return buildObject(
		kv{"id", jint64(b.ID.Int64())},
		kv{"postedDay", jint(b.PostedDay)},
		kv{"title", jstr(b.Title)},
		kv{"rank", jstr(b.Rank.String())},
		kv{"fee", jint64(b.Fee)},
		kv{"salvage", jstr(b.Salvage.String())},
		kv{"baseDifficulty", jint(b.BaseDifficulty)},
		kv{"status", jstr(b.Status.String())},
		kv{"clientDeposit", jint64(b.ClientDeposit)},
	)
}

func encodeActiveContract(a state.ActiveContract) string {
	heroIds := make([]int64, len(a.HeroIds))
	for i, h := range a.HeroIds {
		heroIds[i] = h.Int64()
	}
	return buildObject(
		kv{"id", jint64(a.ID.Int64())},
		kv{"boardContractId", jint64(a.BoardContractId.Int64())},
		kv{"takenDay", jint(a.TakenDay)},
		kv{"daysRemaining", jint(a.DaysRemaining)},
		kv{"heroIds", jintArray(heroIds)},
		kv{"status", jstr(a.Status.String())},
	)
}

func encodeReturnPacket(r state.ReturnPacket) string {
	heroIds := make([]int64, len(r.HeroIds))
	for i, h := range r.HeroIds {
		heroIds[i] = h.Int64()
	}
	return buildObject(
		kv{"activeContractId", jint64(r.ActiveContractId.Int64())},
		kv{"boardContractId", jint64(r.BoardContractId.Int64())},
		kv{"heroIds", jintArray(heroIds)},
		kv{"resolvedDay", jint(r.ResolvedDay)},
		kv{"outcome", jstr(r.Outcome.String())},
		kv{"trophiesCount", jint(r.TrophiesCount)},
		kv{"trophiesQuality", jstr(r.TrophiesQuality.String())},
		kv{"reasonTags", jstrArray(r.ReasonTags)},
		kv{"requiresPlayerClose", jbool(r.RequiresPlayerClose)},
		kv{"suspectedTheft", jbool(r.SuspectedTheft)},
	)
}

func encodeHeroes(h state.Heroes) string {
	roster := make([]string, len(h.Roster))
	for i, hero := range h.Roster {
		roster[i] = encodeHero(hero)
	}
	return buildObject(kv{"roster", buildArray(roster)})
}

func encodeHero(h state.Hero) string {
	return buildObject(
		kv{"id", jint64(h.ID.Int64())},
		kv{"name", jstr(h.Name)},
		kv{"rank", jstr(h.Rank.String())},
		kv{"class", jstr(h.Class.String())},
		kv{"traits", buildObject(
			kv{"greed", jint(h.Traits.Greed)},
			kv{"honesty", jint(h.Traits.Honesty)},
			kv{"courage", jint(h.Traits.Courage)},
		)},
		kv{"status", jstr(h.Status.String())},
		kv{"historyCompleted", jint(h.HistoryCompleted)},
	)
}

// --- decode ---
//
// Field order is irrelevant to a parser (only MarshalState's *output*
// order is part of the replay contract), so UnmarshalState decodes
// through tag-driven wire structs via encoding/json rather than
// hand-writing a JSON reader: Go's map/struct decoding never reorders
// what it reads, it only builds Go values from whatever order the bytes
// already contain.

type wireIDs struct {
	NextContractId       int64 `json:"nextContractId"`
	NextHeroId           int64 `json:"nextHeroId"`
	NextActiveContractId int64 `json:"nextActiveContractId"`
}

type wireMeta struct {
	SaveVersion    int      `json:"saveVersion"`
	Seed           int64    `json:"seed"`
	DayIndex       int      `json:"dayIndex"`
	Revision       int64    `json:"revision"`
	Ids            wireIDs  `json:"ids"`
	TaxDueDay      int      `json:"taxDueDay"`
	TaxAmountDue   int64    `json:"taxAmountDue"`
	TaxPenalty     int64    `json:"taxPenalty"`
	TaxMissedCount int      `json:"taxMissedCount"`
}

type wireGuild struct {
	GuildRank               string `json:"guildRank"`
	Reputation              int    `json:"reputation"`
	CompletedContractsTotal int    `json:"completedContractsTotal"`
	ContractsForNextRank    int    `json:"contractsForNextRank"`
	ProofPolicy             string `json:"proofPolicy"`
}

type wireRegion struct {
	Stability int `json:"stability"`
}

type wireEconomy struct {
	MoneyCopper    int64 `json:"moneyCopper"`
	ReservedCopper int64 `json:"reservedCopper"`
	TrophiesStock  int64 `json:"trophiesStock"`
}

type wireContractDraft struct {
	ID                 int64  `json:"id"`
	CreatedDay         int    `json:"createdDay"`
	NextAutoResolveDay int    `json:"nextAutoResolveDay"`
	Title              string `json:"title"`
	RankSuggested      string `json:"rankSuggested"`
	FeeOffered         int64  `json:"feeOffered"`
	Salvage            string `json:"salvage"`
	BaseDifficulty     int    `json:"baseDifficulty"`
	ProofHint          string `json:"proofHint"`
	ClientDeposit      int64  `json:"clientDeposit"`
}

type wireBoardContract struct {
	ID             int64  `json:"id"`
	PostedDay      int    `json:"postedDay"`
	Title          string `json:"title"`
	Rank           string `json:"rank"`
	Fee            int64  `json:"fee"`
	Salvage        string `json:"salvage"`
	BaseDifficulty int    `json:"baseDifficulty"`
	Status         string `json:"status"`
	ClientDeposit  int64  `json:"clientDeposit"`
}

type wireActiveContract struct {
	ID              int64   `json:"id"`
	BoardContractId int64   `json:"boardContractId"`
	TakenDay        int     `json:"takenDay"`
	DaysRemaining   int     `json:"daysRemaining"`
	HeroIds         []int64 `json:"heroIds"`
	Status          string  `json:"status"`
}

type wireReturnPacket struct {
	ActiveContractId    int64    `json:"activeContractId"`
	BoardContractId     int64    `json:"boardContractId"`
	HeroIds             []int64  `json:"heroIds"`
	ResolvedDay         int      `json:"resolvedDay"`
	Outcome             string   `json:"outcome"`
	TrophiesCount       int      `json:"trophiesCount"`
	TrophiesQuality     string   `json:"trophiesQuality"`
	ReasonTags          []string `json:"reasonTags"`
	RequiresPlayerClose bool     `json:"requiresPlayerClose"`
	SuspectedTheft      bool     `json:"suspectedTheft"`
}

type wireContracts struct {
	Inbox   []wireContractDraft  `json:"inbox"`
	Board   []wireBoardContract  `json:"board"`
	Active  []wireActiveContract `json:"active"`
	Returns []wireReturnPacket   `json:"returns"`
	Archive []wireBoardContract  `json:"archive"`
}

type wireTraits struct {
	Greed   int `json:"greed"`
	Honesty int `json:"honesty"`
	Courage int `json:"courage"`
}

type wireHero struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Rank             string     `json:"rank"`
	Class            string     `json:"class"`
	Traits           wireTraits `json:"traits"`
	Status           string     `json:"status"`
	HistoryCompleted int        `json:"historyCompleted"`
}

type wireHeroes struct {
	Roster []wireHero `json:"roster"`
}

type wireState struct {
	Meta      wireMeta      `json:"meta"`
	Guild     wireGuild     `json:"guild"`
	Region    wireRegion    `json:"region"`
	Economy   wireEconomy   `json:"economy"`
	Contracts wireContracts `json:"contracts"`
	Heroes    wireHeroes    `json:"heroes"`
}

// UnmarshalState decodes canonical JSON produced by MarshalState back
// into a GameState. It enforces the single supported saveVersion
// (spec.md §4.2) and restores ArrivalsToday as empty (spec.md §4.2
// "restored empty on load"). Every malformed-enum field encountered is
// collected via wrappers.Errs so a caller sees every problem at once
// rather than the first one found (spec.md §7 tier 3: "Serialization
// error... Raised at the boundary").
func UnmarshalState(data []byte) (state.GameState, error) {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return state.GameState{}, fmt.Errorf("serialize: malformed state JSON: %w", err)
	}
	if w.Meta.SaveVersion != state.SaveVersion {
		return state.GameState{}, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedSaveVersion, w.Meta.SaveVersion, state.SaveVersion)
	}

	var errs wrappers.Errs

	guildRank, err := xstatus.ParseGuildRank(w.Guild.GuildRank)
	errs.Add(err)
	proofPolicy, err := xstatus.ParseProofPolicy(w.Guild.ProofPolicy)
	errs.Add(err)

	inbox := make([]state.ContractDraft, len(w.Contracts.Inbox))
	for i, d := range w.Contracts.Inbox {
		inbox[i] = decodeContractDraft(d, &errs)
	}
	board := make([]state.BoardContract, len(w.Contracts.Board))
	for i, b := range w.Contracts.Board {
		board[i] = decodeBoardContract(b, &errs)
	}
	active := make([]state.ActiveContract, len(w.Contracts.Active))
	for i, a := range w.Contracts.Active {
		active[i] = decodeActiveContract(a, &errs)
	}
	returns := make([]state.ReturnPacket, len(w.Contracts.Returns))
	for i, r := range w.Contracts.Returns {
		returns[i] = decodeReturnPacket(r, &errs)
	}
	archive := make([]state.BoardContract, len(w.Contracts.Archive))
	for i, b := range w.Contracts.Archive {
		archive[i] = decodeBoardContract(b, &errs)
	}
	roster := make([]state.Hero, len(w.Heroes.Roster))
	for i, h := range w.Heroes.Roster {
		roster[i] = decodeHero(h, &errs)
	}

	if errs.Errored() {
		return state.GameState{}, fmt.Errorf("serialize: %w", errs.Err())
	}

	return state.GameState{
		Meta: state.Meta{
			SaveVersion: w.Meta.SaveVersion,
			Seed:        w.Meta.Seed,
			DayIndex:    w.Meta.DayIndex,
			Revision:    w.Meta.Revision,
			Ids: state.IDSeq{
				NextContractId:       ids.ContractId(w.Meta.Ids.NextContractId),
				NextActiveContractId: ids.ActiveContractId(w.Meta.Ids.NextActiveContractId),
				NextHeroId:           ids.HeroId(w.Meta.Ids.NextHeroId),
			},
			TaxDueDay:      w.Meta.TaxDueDay,
			TaxAmountDue:   w.Meta.TaxAmountDue,
			TaxPenalty:     w.Meta.TaxPenalty,
			TaxMissedCount: w.Meta.TaxMissedCount,
		},
		Guild: state.Guild{
			Rank:                    guildRank,
			Reputation:              w.Guild.Reputation,
			CompletedContractsTotal: w.Guild.CompletedContractsTotal,
			ContractsTowardNextRank: w.Guild.ContractsForNextRank,
			ProofPolicy:             proofPolicy,
		},
		Region: state.Region{Stability: w.Region.Stability},
		Economy: state.Economy{
			MoneyCopper:    w.Economy.MoneyCopper,
			ReservedCopper: w.Economy.ReservedCopper,
			TrophiesStock:  w.Economy.TrophiesStock,
		},
		Contracts: state.Contracts{
			Inbox:   inbox,
			Board:   board,
			Active:  active,
			Returns: returns,
			Archive: archive,
		},
		Heroes: state.Heroes{
			Roster:        roster,
			ArrivalsToday: nil,
		},
	}, nil
}

func decodeContractDraft(d wireContractDraft, errs *wrappers.Errs) state.ContractDraft {
	rank, err := xstatus.ParseGuildRank(d.RankSuggested)
	errs.Add(err)
	salvage, err := xstatus.ParseSalvagePolicy(d.Salvage)
	errs.Add(err)
	return state.ContractDraft{
		ID:                 ids.ContractId(d.ID),
		CreatedDay:         d.CreatedDay,
		NextAutoResolveDay: d.NextAutoResolveDay,
		Title:              d.Title,
		RankSuggested:      rank,
		FeeOffered:         d.FeeOffered,
		Salvage:            salvage,
		BaseDifficulty:     d.BaseDifficulty,
		ProofHint:          d.ProofHint,
		ClientDeposit:      d.ClientDeposit,
	}
}

func decodeBoardContract(b wireBoardContract, errs *wrappers.Errs) state.BoardContract {
	rank, err := xstatus.ParseGuildRank(b.Rank)
	errs.Add(err)
	salvage, err := xstatus.ParseSalvagePolicy(b.Salvage)
	errs.Add(err)
	status, err := xstatus.ParseContractStatus(b.Status)
	errs.Add(err)
	return state.BoardContract{
		ID:             ids.ContractId(b.ID),
		PostedDay:      b.PostedDay,
		Title:          b.Title,
		Rank:           rank,
		Fee:            b.Fee,
		Salvage:        salvage,
		BaseDifficulty: b.BaseDifficulty,
		Status:         status,
		ClientDeposit:  b.ClientDeposit,
	}
}

func decodeActiveContract(a wireActiveContract, errs *wrappers.Errs) state.ActiveContract {
	status, err := xstatus.ParseActiveStatus(a.Status)
	errs.Add(err)
	heroIds := make([]ids.HeroId, len(a.HeroIds))
	for i, h := range a.HeroIds {
		heroIds[i] = ids.HeroId(h)
	}
	return state.ActiveContract{
		ID:              ids.ActiveContractId(a.ID),
		BoardContractId: ids.ContractId(a.BoardContractId),
		TakenDay:        a.TakenDay,
		DaysRemaining:   a.DaysRemaining,
		HeroIds:         heroIds,
		Status:          status,
	}
}

func decodeReturnPacket(r wireReturnPacket, errs *wrappers.Errs) state.ReturnPacket {
	outcome, err := xstatus.ParseOutcome(r.Outcome)
	errs.Add(err)
	quality, err := xstatus.ParseTrophyQuality(r.TrophiesQuality)
	errs.Add(err)
	heroIds := make([]ids.HeroId, len(r.HeroIds))
	for i, h := range r.HeroIds {
		heroIds[i] = ids.HeroId(h)
	}
	return state.ReturnPacket{
		ActiveContractId:    ids.ActiveContractId(r.ActiveContractId),
		BoardContractId:     ids.ContractId(r.BoardContractId),
		HeroIds:             heroIds,
		ResolvedDay:         r.ResolvedDay,
		Outcome:             outcome,
		TrophiesCount:       r.TrophiesCount,
		TrophiesQuality:     quality,
		ReasonTags:          r.ReasonTags,
		RequiresPlayerClose: r.RequiresPlayerClose,
		SuspectedTheft:      r.SuspectedTheft,
	}
}

func decodeHero(h wireHero, errs *wrappers.Errs) state.Hero {
	rank, err := xstatus.ParseGuildRank(h.Rank)
	errs.Add(err)
	class, err := xstatus.ParseHeroClass(h.Class)
	errs.Add(err)
	status, err := xstatus.ParseHeroStatus(h.Status)
	errs.Add(err)
	return state.Hero{
		ID:   ids.HeroId(h.ID),
		Name: h.Name,
		Rank: rank,
		Class: class,
		Traits: state.Traits{
			Greed:   h.Traits.Greed,
			Honesty: h.Traits.Honesty,
			Courage: h.Traits.Courage,
		},
		Status:           status,
		HistoryCompleted: h.HistoryCompleted,
	}
}
