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
	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/rtc/types/typesfakes"
)

func newMockSink() *typesfakes.FakeMessageSink {
	return &typesfakes.FakeMessageSink{}
}

func sentMessages(sink *typesfakes.FakeMessageSink) []*types.SignalResponse {
	msgs := make([]*types.SignalResponse, 0, sink.WriteMessageCallCount())
	for i := 0; i < sink.WriteMessageCallCount(); i++ {
		msgs = append(msgs, sink.WriteMessageArgsForCall(i))
	}
	return msgs
}

func sentEvents(sink *typesfakes.FakeMessageSink, event types.EventKind) []*types.SignalResponse {
	var msgs []*types.SignalResponse
	for _, msg := range sentMessages(sink) {
		if msg.Event == event {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func testRoomConfig() *config.RoomConfig {
	return &config.RoomConfig{
		EmptyTimeout:    60,
		MaxRoomIDLength: 256,
	}
}
