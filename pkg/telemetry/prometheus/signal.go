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
)

var (
	promSignalEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: rendezvousNamespace,
		Subsystem: "signal",
		Name:      "events_total",
		Help:      "Inbound signal requests by event kind.",
	}, []string{"event"})
	promSignalRelay = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: rendezvousNamespace,
		Subsystem: "signal",
		Name:      "relay_total",
		Help:      "Relayed negotiation messages by outcome.",
	}, []string{"event", "result"})
)

func RecordSignalEvent(event string) {
	promSignalEvents.WithLabelValues(event).Inc()
}

func RecordRelay(event, result string) {
	promSignalRelay.WithLabelValues(event, result).Inc()
}
