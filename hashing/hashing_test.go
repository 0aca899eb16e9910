// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/event"
	"github.com/ironguild/guildsim/state"
)

func TestHashStateIsDeterministic(t *testing.T) {
	require := require.New(t)

	s := state.InitialState(42, config.Default())
	require.Equal(HashState(s), HashState(s))
	require.Len(HashState(s), 64)
}

func TestHashStateChangesWithState(t *testing.T) {
	require := require.New(t)

	s1 := state.InitialState(42, config.Default())
	s2 := s1
	s2.Economy.MoneyCopper++

	require.NotEqual(HashState(s1), HashState(s2))
}

func TestHashEventsIsOrderSensitive(t *testing.T) {
	require := require.New(t)

	ctx1 := event.NewSeqContext(1, 0, 1)
	ctx1.Emit(event.TrophySold{Amount: 1, MoneyGained: 10})
	ctx1.Emit(event.TrophySold{Amount: 2, MoneyGained: 20})

	ctx2 := event.NewSeqContext(1, 0, 1)
	ctx2.Emit(event.TrophySold{Amount: 2, MoneyGained: 20})
	ctx2.Emit(event.TrophySold{Amount: 1, MoneyGained: 10})

	require.NotEqual(HashEvents(ctx1.Finalize()), HashEvents(ctx2.Finalize()))
}

func TestHashEventsEmptyBatch(t *testing.T) {
	require := require.New(t)
	require.Len(HashEvents(nil), 64)
}
