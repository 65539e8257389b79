// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRoomGauges(t *testing.T) {
	before := testutil.ToFloat64(promRoomCurrent)
	statsBefore := CurrentStats()

	RoomStarted()
	RoomStarted()
	RoomEnded()
	RoomReclaimed()

	require.Equal(t, before+1, testutil.ToFloat64(promRoomCurrent))
	stats := CurrentStats()
	require.Equal(t, statsBefore.Rooms+1, stats.Rooms)
	require.Equal(t, statsBefore.Reclaimed+1, stats.Reclaimed)
}

func TestConnectionGauge(t *testing.T) {
	before := testutil.ToFloat64(promConnectionCurrent)
	AddConnection()
	require.Equal(t, before+1, testutil.ToFloat64(promConnectionCurrent))
	SubConnection()
	require.Equal(t, before, testutil.ToFloat64(promConnectionCurrent))
}

func TestRelayCounter(t *testing.T) {
	c := promSignalRelay.WithLabelValues("offer", "dropped")
	before := testutil.ToFloat64(c)
	RecordRelay("offer", "dropped")
	require.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestRegisterWithNodeLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(prometheus.WrapRegistererWith(prometheus.Labels{"node_id": "ND_test"}, reg))

	RecordSignalEvent("join-room")
	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() != "rendezvous_signal_events_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "node_id" {
					require.Equal(t, "ND_test", lp.GetValue())
					found = true
				}
			}
		}
	}
	require.True(t, found)
}
