// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNextIntKnownSequence pins the first few draws for seed 42 so a
// future change to the LCG constants or the rejection loop trips a test
// instead of silently breaking replay. java.util.Random(42)'s first
// nextInt() is -1170105035, whose top 31 bits give nextInt(100) == 30.
func TestNextIntKnownSequence(t *testing.T) {
	require := require.New(t)

	r := New(42)
	first := r.NextInt(100)
	require.Equal(30, first)
	require.Equal(int64(1), r.Draws())

	var got []int
	for i := 0; i < 10; i++ {
		v := r.NextInt(7)
		require.GreaterOrEqual(v, 0)
		require.Less(v, 7)
		got = append(got, v)
	}
	require.Equal([]int{5, 6, 3, 5, 4, 1, 3, 6, 3, 3}, got)
	require.Equal(int64(11), r.Draws())
}

func TestNextIntDeterministic(t *testing.T) {
	require := require.New(t)

	a := New(1234)
	b := New(1234)
	for i := 0; i < 200; i++ {
		require.Equal(a.NextInt(97), b.NextInt(97))
	}
	require.Equal(a.Draws(), b.Draws())
}

func TestNextIntDifferentSeeds(t *testing.T) {
	require := require.New(t)

	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.NextInt(1000) != b.NextInt(1000) {
			same = false
		}
	}
	require.False(same, "different seeds should diverge within 20 draws")
}

func TestNextIntPowerOfTwoBound(t *testing.T) {
	require := require.New(t)

	r := New(7)
	for i := 0; i < 500; i++ {
		v := r.NextInt(64)
		require.GreaterOrEqual(v, 0)
		require.Less(v, 64)
	}
}

func TestNextIntRejectsNonPositiveBound(t *testing.T) {
	require := require.New(t)

	require.Panics(func() { New(1).NextInt(0) })
	require.Panics(func() { New(1).NextInt(-5) })
}

func TestDrawsMonotone(t *testing.T) {
	require := require.New(t)

	r := New(9)
	require.Equal(int64(0), r.Draws())
	r.NextInt(10)
	require.Equal(int64(1), r.Draws())
	r.NextBoolean()
	require.Equal(int64(2), r.Draws())
	r.NextLong()
	require.Equal(int64(4), r.Draws())
}
