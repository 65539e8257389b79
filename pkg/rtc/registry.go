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

package rtc

import (
	"sync"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/telemetry/prometheus"
	"github.com/livekit/rendezvous-server/pkg/utils"
)

// ConnectionRegistry maps live connection ids to their outbound sinks.
type ConnectionRegistry struct {
	lock  sync.RWMutex
	sinks map[types.ConnectionID]types.MessageSink
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		sinks: make(map[types.ConnectionID]types.MessageSink),
	}
}

func (r *ConnectionRegistry) Register(sink types.MessageSink) types.ConnectionID {
	r.lock.Lock()
	defer r.lock.Unlock()

	var id types.ConnectionID
	for {
		id = types.ConnectionID(utils.NewGuid(utils.ConnectionPrefix))
		if _, ok := r.sinks[id]; !ok {
			break
		}
	}
	r.sinks[id] = sink
	prometheus.AddConnection()
	return id
}

// Send hands msg to the connection's sink. It never blocks and never fails
// loudly: unknown ids and rejecting sinks both report SendDropped.
func (r *ConnectionRegistry) Send(id types.ConnectionID, msg *types.SignalResponse) types.SendResult {
	r.lock.RLock()
	sink := r.sinks[id]
	r.lock.RUnlock()

	if sink == nil {
		return types.SendDropped
	}
	if err := sink.WriteMessage(msg); err != nil {
		logger.Debugw("could not deliver message", "connID", id, "event", msg.Event, "error", err)
		return types.SendDropped
	}
	return types.SendDelivered
}

func (r *ConnectionRegistry) Unregister(id types.ConnectionID) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.sinks[id]; !ok {
		return false
	}
	delete(r.sinks, id)
	prometheus.SubConnection()
	return true
}

func (r *ConnectionRegistry) IsRegistered(id types.ConnectionID) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	_, ok := r.sinks[id]
	return ok
}

func (r *ConnectionRegistry) Count() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.sinks)
}
