// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewRecorderRegistersCollectors(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(err)
	require.NotNil(r)
}

func TestObserveStepIncrementsCounters(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(err)

	r.ObserveStep("AdvanceDay", true, 5, 0)
	r.ObserveStep("PostContract", false, 1, 0)
	r.ObserveStep("AdvanceDay", true, 3, 2)

	families, err := reg.Gather()
	require.NoError(err)
	require.NotEmpty(families)
}
