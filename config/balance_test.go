// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/xstatus"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestMaxSuccess(t *testing.T) {
	b := Default()
	require.Equal(t, 70, b.MaxSuccess())
}

func TestValidateCatchesOutOfRangeFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Balance)
		want   error
	}{
		{"partial fixed negative", func(b *Balance) { b.PartialFixed = -1 }, ErrPartialFixedRange},
		{"fail min too big", func(b *Balance) { b.FailMin = 200 }, ErrFailMinRange},
		{"success band negative", func(b *Balance) { b.PartialFixed = 60; b.FailMin = 60 }, ErrSuccessBandNegative},
		{"missing chance out of range", func(b *Balance) { b.MissingChance = 101 }, ErrMissingChanceRange},
		{"days init zero", func(b *Balance) { b.DaysInit = 0 }, ErrDaysInitRange},
		{"tax max missed zero", func(b *Balance) { b.TaxMaxMissed = 0 }, ErrTaxMaxMissedRange},
		{"tax penalty bps too big", func(b *Balance) { b.TaxPenaltyBps = 20000 }, ErrTaxPenaltyBpsRange},
		{"deposit chance negative", func(b *Balance) { b.ClientDepositChanceBps = -1 }, ErrDepositChanceRange},
		{"deposit bps too big", func(b *Balance) { b.ClientDepositBps = 20000 }, ErrDepositBpsRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Default()
			tt.mutate(&b)
			require.ErrorIs(t, b.Validate(), tt.want)
		})
	}
}

func TestValidateRequiresCompleteRankTables(t *testing.T) {
	b := Default()
	delete(b.InboxMultiplierByRank, xstatus.RankS)
	require.ErrorIs(t, b.Validate(), ErrRankTableIncomplete)
}

func TestValidateRequiresCompleteClassTable(t *testing.T) {
	b := Default()
	delete(b.ClassBonus, xstatus.ClassMage)
	require.ErrorIs(t, b.Validate(), ErrRankTableIncomplete)
}

func TestValidatePricingBandInverted(t *testing.T) {
	b := Default()
	b.PricingByRank[xstatus.RankF] = PricingBand{MinGp: 10, MaxGp: 1}
	require.ErrorIs(t, b.Validate(), ErrPricingBandInverted)
}
