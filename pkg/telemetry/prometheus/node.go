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

const (
	rendezvousNamespace string = "rendezvous"
)

var (
	initialized atomic.Bool
)

// Init registers all collectors with the default registry, labelled with the
// node id. Collectors are usable before Init; they are simply not exported.
func Init(nodeID string) {
	if initialized.Swap(true) {
		return
	}
	Register(prometheus.WrapRegistererWith(prometheus.Labels{"node_id": nodeID}, prometheus.DefaultRegisterer))
}

func Register(reg prometheus.Registerer) {
	reg.MustRegister(promConnectionCurrent)
	reg.MustRegister(promRoomCurrent)
	reg.MustRegister(promRoomReclaimed)
	reg.MustRegister(promSignalEvents)
	reg.MustRegister(promSignalRelay)
}

type Stats struct {
	Connections int32  `json:"connections"`
	Rooms       int32  `json:"rooms"`
	Reclaimed   uint64 `json:"reclaimed"`
}

func CurrentStats() Stats {
	return Stats{
		Connections: connectionCurrent.Load(),
		Rooms:       roomCurrent.Load(),
		Reclaimed:   roomReclaimed.Load(),
	}
}
