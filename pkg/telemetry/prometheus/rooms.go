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
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

var (
	connectionCurrent atomic.Int32
	roomCurrent       atomic.Int32
	roomReclaimed     atomic.Uint64

	promConnectionCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: rendezvousNamespace,
		Subsystem: "connection",
		Name:      "total",
		Help:      "Live signal connections.",
	})
	promRoomCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: rendezvousNamespace,
		Subsystem: "room",
		Name:      "total",
		Help:      "Rooms in the directory, including empty rooms awaiting cleanup.",
	})
	promRoomReclaimed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: rendezvousNamespace,
		Subsystem: "room",
		Name:      "reclaimed_total",
		Help:      "Rooms deleted after staying empty for the grace period.",
	})
)

func AddConnection() {
	promConnectionCurrent.Add(1)
	connectionCurrent.Inc()
}

func SubConnection() {
	promConnectionCurrent.Sub(1)
	connectionCurrent.Dec()
}

func RoomStarted() {
	promRoomCurrent.Add(1)
	roomCurrent.Inc()
}

func RoomEnded() {
	promRoomCurrent.Sub(1)
	roomCurrent.Dec()
}

func RoomReclaimed() {
	promRoomReclaimed.Inc()
	roomReclaimed.Inc()
}
