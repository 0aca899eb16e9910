// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

package reducer

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ironguild/guildsim/command"
	"github.com/ironguild/guildsim/config"
	"github.com/ironguild/guildsim/log/logmock"
	"github.com/ironguild/guildsim/metrics"
	"github.com/ironguild/guildsim/rng"
	"github.com/ironguild/guildsim/state"
)

func TestObserverLogsAcceptedCommandAtDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logmock.NewLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).Times(1)

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	obs := NewObserver(logger, recorder)

	s := state.InitialState(42, config.Default())
	r := rng.New(100)
	bal := config.Default()

	cmd := command.AdvanceDay{Id: 1}
	_, events := Step(s, cmd, r, bal)

	obs.ObserveStep(cmd, events)
}

func TestObserverLogsRejectedCommandAtWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logmock.NewLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).Times(1)

	obs := NewObserver(logger, nil)

	s := state.InitialState(42, config.Default())
	r := rng.New(1)
	bal := config.Default()

	cmd := command.PayTax{Id: 1, Amount: 0}
	_, events := Step(s, cmd, r, bal)

	obs.ObserveStep(cmd, events)
}
