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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/rtc/types/typesfakes"
)

type testClient struct {
	id   types.ConnectionID
	sink *typesfakes.FakeMessageSink
}

type testRendezvous struct {
	handler   *RendezvousHandler
	registry  *ConnectionRegistry
	directory *RoomDirectory
	reclaimer *GraceReclaimer
}

func newTestRendezvous(t *testing.T, grace time.Duration) *testRendezvous {
	registry := NewConnectionRegistry()
	directory := NewRoomDirectory(testRoomConfig())
	reclaimer := NewGraceReclaimer(directory, grace)
	t.Cleanup(reclaimer.Stop)
	return &testRendezvous{
		handler:   NewRendezvousHandler(registry, directory, reclaimer, testRoomConfig()),
		registry:  registry,
		directory: directory,
		reclaimer: reclaimer,
	}
}

func (r *testRendezvous) connect(t *testing.T) *testClient {
	sink := newMockSink()
	id := r.handler.Connect(sink)
	require.Equal(t, 1, sink.WriteMessageCallCount())
	connected := sink.WriteMessageArgsForCall(0)
	require.Equal(t, types.EventConnected, connected.Event)
	require.Equal(t, id, connected.UserID)
	return &testClient{id: id, sink: sink}
}

func (r *testRendezvous) send(t *testing.T, c *testClient, req *types.SignalRequest) {
	require.NoError(t, r.handler.HandleRequest(c.id, req))
}

func (r *testRendezvous) join(t *testing.T, c *testClient, roomID string) {
	r.send(t, c, &types.SignalRequest{Event: types.EventJoinRoom, RoomID: roomID})
}

func TestJoinRoom(t *testing.T) {
	t.Run("existing members are listed and notified", func(t *testing.T) {
		r := newTestRendezvous(t, time.Minute)
		a := r.connect(t)
		b := r.connect(t)

		r.join(t, a, "call-42")
		users := sentEvents(a.sink, types.EventRoomUsers)
		require.Len(t, users, 1)
		require.NotNil(t, users[0].Users)
		require.Empty(t, users[0].Users)

		r.join(t, b, "call-42")
		users = sentEvents(b.sink, types.EventRoomUsers)
		require.Len(t, users, 1)
		require.Equal(t, "call-42", users[0].RoomID)
		require.Equal(t, []types.ConnectionID{a.id}, users[0].Users)

		joined := sentEvents(a.sink, types.EventUserJoined)
		require.Len(t, joined, 1)
		require.Equal(t, b.id, joined[0].UserID)
		require.Equal(t, "call-42", joined[0].RoomID)
		require.Empty(t, sentEvents(b.sink, types.EventUserJoined))
	})

	t.Run("membership is the same for either join order", func(t *testing.T) {
		for _, reverse := range []bool{false, true} {
			r := newTestRendezvous(t, time.Minute)
			a := r.connect(t)
			b := r.connect(t)
			first, second := a, b
			if reverse {
				first, second = b, a
			}
			r.join(t, first, "r")
			r.join(t, second, "r")
			require.ElementsMatch(t, []types.ConnectionID{a.id, b.id}, r.directory.MembersOf("r"))
		}
	})

	t.Run("rejoining does not notify again", func(t *testing.T) {
		r := newTestRendezvous(t, time.Minute)
		a := r.connect(t)
		b := r.connect(t)
		r.join(t, a, "call-42")
		r.join(t, b, "call-42")
		r.join(t, b, "call-42")

		require.Len(t, sentEvents(a.sink, types.EventUserJoined), 1)
		require.Len(t, sentEvents(b.sink, types.EventRoomUsers), 2)
		require.Len(t, r.directory.MembersOf("call-42"), 2)
	})

	t.Run("invalid room ids are ignored", func(t *testing.T) {
		r := newTestRendezvous(t, time.Minute)
		a := r.connect(t)

		err := r.handler.HandleRequest(a.id, &types.SignalRequest{Event: types.EventJoinRoom})
		require.ErrorIs(t, err, ErrEmptyRoomID)

		long := make([]byte, 257)
		for i := range long {
			long[i] = 'x'
		}
		err = r.handler.HandleRequest(a.id, &types.SignalRequest{Event: types.EventJoinRoom, RoomID: string(long)})
		require.ErrorIs(t, err, ErrRoomIDTooLong)

		require.Empty(t, r.directory.Rooms())
		require.Equal(t, 1, a.sink.WriteMessageCallCount())
	})
}

func TestMalformedRequestsSkipDirectory(t *testing.T) {
	registry := NewConnectionRegistry()
	directory := &typesfakes.FakeRoomDirectory{}
	reclaimer := &typesfakes.FakeRoomReclaimer{}
	h := NewRendezvousHandler(registry, directory, reclaimer, testRoomConfig())
	id := h.Connect(newMockSink())

	require.ErrorIs(t, h.HandleRequest(id, nil), ErrUnknownEvent)
	require.ErrorIs(t, h.HandleRequest(id, &types.SignalRequest{Event: "dance"}), ErrUnknownEvent)
	require.ErrorIs(t, h.HandleRequest(id, &types.SignalRequest{Event: types.EventJoinRoom}), ErrEmptyRoomID)
	require.ErrorIs(t, h.HandleRequest(id, &types.SignalRequest{Event: types.EventLeaveRoom}), ErrEmptyRoomID)
	require.ErrorIs(t, h.HandleRequest(id, &types.SignalRequest{Event: types.EventOffer}), ErrMissingTarget)
	require.ErrorIs(t, h.HandleRequest("CO_unknown", &types.SignalRequest{Event: types.EventJoinRoom, RoomID: "r"}), ErrNotRegistered)

	require.Equal(t, 0, directory.JoinCallCount())
	require.Equal(t, 0, directory.LeaveAllCallCount())
	require.Equal(t, 0, reclaimer.OnRoomEmptiedCallCount())
}

func TestJoinErrorIsReturned(t *testing.T) {
	registry := NewConnectionRegistry()
	directory := &typesfakes.FakeRoomDirectory{}
	directory.JoinReturns(nil, false, ErrTooManyRooms)
	h := NewRendezvousHandler(registry, directory, &typesfakes.FakeRoomReclaimer{}, testRoomConfig())
	sink := newMockSink()
	id := h.Connect(sink)

	err := h.HandleRequest(id, &types.SignalRequest{Event: types.EventJoinRoom, RoomID: "r"})
	require.ErrorIs(t, err, ErrTooManyRooms)
	require.Empty(t, sentEvents(sink, types.EventRoomUsers))
}

func TestRelay(t *testing.T) {
	r := newTestRendezvous(t, time.Minute)
	a := r.connect(t)
	b := r.connect(t)
	c := r.connect(t)
	for _, client := range []*testClient{a, b, c} {
		r.join(t, client, "call-42")
	}

	sdp := map[string]interface{}{"type": "offer", "sdp": "v=0"}
	r.send(t, b, &types.SignalRequest{Event: types.EventOffer, To: a.id, SDP: sdp})

	offers := sentEvents(a.sink, types.EventOffer)
	require.Len(t, offers, 1)
	require.Equal(t, b.id, offers[0].From)
	require.Equal(t, sdp, offers[0].SDP)
	require.Empty(t, sentEvents(b.sink, types.EventOffer))
	require.Empty(t, sentEvents(c.sink, types.EventOffer))

	candidate := map[string]interface{}{"candidate": "candidate:1 1 udp 2122260223 10.0.0.1 54400 typ host"}
	r.send(t, a, &types.SignalRequest{Event: types.EventICECandidate, To: b.id, Candidate: candidate})
	candidates := sentEvents(b.sink, types.EventICECandidate)
	require.Len(t, candidates, 1)
	require.Equal(t, a.id, candidates[0].From)
	require.Equal(t, candidate, candidates[0].Candidate)
	require.Nil(t, candidates[0].SDP)
	require.Empty(t, sentEvents(c.sink, types.EventICECandidate))

	// unknown targets are dropped quietly
	r.send(t, a, &types.SignalRequest{Event: types.EventAnswer, To: "CO_gone", SDP: sdp})
	for _, client := range []*testClient{a, b, c} {
		require.Empty(t, sentEvents(client.sink, types.EventAnswer))
	}
}

func TestLeaveRoom(t *testing.T) {
	r := newTestRendezvous(t, time.Minute)
	a := r.connect(t)
	b := r.connect(t)
	r.join(t, a, "r1")
	r.join(t, a, "r2")
	r.join(t, b, "r2")

	r.send(t, a, &types.SignalRequest{Event: types.EventLeaveRoom, RoomID: "r2"})

	left := sentEvents(b.sink, types.EventUserDisconnected)
	require.Len(t, left, 1)
	require.Equal(t, a.id, left[0].UserID)
	require.Equal(t, "r2", left[0].RoomID)
	require.Empty(t, r.directory.RoomsOf(a.id))
	require.Equal(t, []types.ConnectionID{b.id}, r.directory.MembersOf("r2"))

	// r1 became empty and was handed to the reclaimer
	require.Equal(t, 1, r.reclaimer.Pending())

	// the connection stays usable and a repeat is a no-op
	require.True(t, r.registry.IsRegistered(a.id))
	r.send(t, a, &types.SignalRequest{Event: types.EventLeaveRoom, RoomID: "r2"})
	require.Len(t, sentEvents(b.sink, types.EventUserDisconnected), 1)

	r.join(t, a, "r1")
	require.Equal(t, 0, r.reclaimer.Pending())
}

func TestDisconnect(t *testing.T) {
	r := newTestRendezvous(t, time.Minute)
	a := r.connect(t)
	b := r.connect(t)
	c := r.connect(t)
	r.join(t, a, "r1")
	r.join(t, b, "r1")
	r.join(t, a, "r2")
	r.join(t, c, "r2")

	r.handler.Disconnect(a.id)

	bLeft := sentEvents(b.sink, types.EventUserDisconnected)
	require.Len(t, bLeft, 1)
	require.Equal(t, "r1", bLeft[0].RoomID)
	require.Equal(t, a.id, bLeft[0].UserID)
	cLeft := sentEvents(c.sink, types.EventUserDisconnected)
	require.Len(t, cLeft, 1)
	require.Equal(t, "r2", cLeft[0].RoomID)

	require.Equal(t, []types.ConnectionID{b.id}, r.directory.MembersOf("r1"))
	require.Equal(t, []types.ConnectionID{c.id}, r.directory.MembersOf("r2"))
	require.False(t, r.registry.IsRegistered(a.id))
	require.Equal(t, 0, r.reclaimer.Pending())

	r.handler.Disconnect(a.id)
	require.Len(t, sentEvents(b.sink, types.EventUserDisconnected), 1)
	require.Len(t, sentEvents(c.sink, types.EventUserDisconnected), 1)

	require.ErrorIs(t, r.handler.HandleRequest(a.id, &types.SignalRequest{Event: types.EventJoinRoom, RoomID: "r1"}), ErrNotRegistered)
}

func TestRejoinWithinGracePreservesRoom(t *testing.T) {
	r := newTestRendezvous(t, 50*time.Millisecond)
	a := r.connect(t)
	r.join(t, a, "call-42")
	created := r.directory.Rooms()[0].CreatedAt

	var deleted []string
	r.directory.OnRoomDeleted(func(roomID string) {
		deleted = append(deleted, roomID)
	})

	r.send(t, a, &types.SignalRequest{Event: types.EventLeaveRoom, RoomID: "call-42"})
	r.join(t, a, "call-42")

	time.Sleep(100 * time.Millisecond)
	rooms := r.directory.Rooms()
	require.Len(t, rooms, 1)
	require.Equal(t, created, rooms[0].CreatedAt)
	require.Empty(t, deleted)
}

func TestRoomRecreatedAfterGrace(t *testing.T) {
	r := newTestRendezvous(t, 10*time.Millisecond)
	a := r.connect(t)
	b := r.connect(t)
	r.join(t, a, "call-42")
	r.handler.Disconnect(a.id)

	require.Eventually(t, func() bool {
		return len(r.directory.Rooms()) == 0
	}, time.Second, 5*time.Millisecond)

	r.join(t, b, "call-42")
	users := sentEvents(b.sink, types.EventRoomUsers)
	require.Len(t, users, 1)
	require.Empty(t, users[0].Users)
	require.Equal(t, []types.ConnectionID{b.id}, r.directory.MembersOf("call-42"))
}

func TestCallScenario(t *testing.T) {
	r := newTestRendezvous(t, 100*time.Millisecond)
	x := r.connect(t)
	y := r.connect(t)

	r.join(t, x, "call-42")
	require.Empty(t, sentEvents(x.sink, types.EventRoomUsers)[0].Users)

	r.join(t, y, "call-42")
	require.Equal(t, []types.ConnectionID{x.id}, sentEvents(y.sink, types.EventRoomUsers)[0].Users)
	require.Equal(t, y.id, sentEvents(x.sink, types.EventUserJoined)[0].UserID)

	r.send(t, y, &types.SignalRequest{Event: types.EventOffer, To: x.id, SDP: "offer-sdp"})
	offer := sentEvents(x.sink, types.EventOffer)[0]
	require.Equal(t, "offer-sdp", offer.SDP)
	require.Equal(t, y.id, offer.From)

	r.send(t, x, &types.SignalRequest{Event: types.EventAnswer, To: y.id, SDP: "answer-sdp"})
	answer := sentEvents(y.sink, types.EventAnswer)[0]
	require.Equal(t, "answer-sdp", answer.SDP)
	require.Equal(t, x.id, answer.From)

	r.handler.Disconnect(y.id)
	require.Equal(t, y.id, sentEvents(x.sink, types.EventUserDisconnected)[0].UserID)
	require.Equal(t, []types.ConnectionID{x.id}, r.directory.MembersOf("call-42"))
	require.Equal(t, 0, r.reclaimer.Pending())

	r.handler.Disconnect(x.id)
	require.Empty(t, r.directory.MembersOf("call-42"))
	require.Equal(t, 1, r.reclaimer.Pending())
	require.True(t, r.directory.Rooms()[0].CleanupPending)

	require.Eventually(t, func() bool {
		return len(r.directory.Rooms()) == 0
	}, time.Second, 5*time.Millisecond)
}
