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

package types

import (
	"encoding/json"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type EventKind string

const (
	// server -> client
	EventConnected        EventKind = "connected"
	EventRoomUsers        EventKind = "room-users"
	EventUserJoined       EventKind = "user-joined"
	EventUserDisconnected EventKind = "user-disconnected"

	// client -> server
	EventJoinRoom  EventKind = "join-room"
	EventLeaveRoom EventKind = "leave-room"

	// relayed both ways
	EventOffer        EventKind = "offer"
	EventAnswer       EventKind = "answer"
	EventICECandidate EventKind = "ice-candidate"
)

func (e EventKind) IsRelay() bool {
	switch e {
	case EventOffer, EventAnswer, EventICECandidate:
		return true
	}
	return false
}

// ConnectionID identifies one live signal connection. Assigned by the server.
type ConnectionID string

// Payload is negotiation data owned by the two endpoints. It is decoded
// generically so it can cross between JSON and msgpack clients, and is never
// inspected.
type Payload = interface{}

type SignalRequest struct {
	Event     EventKind    `json:"event" msgpack:"event"`
	RoomID    string       `json:"roomId,omitempty" msgpack:"roomId,omitempty"`
	To        ConnectionID `json:"to,omitempty" msgpack:"to,omitempty"`
	SDP       Payload      `json:"sdp,omitempty" msgpack:"sdp,omitempty"`
	Candidate Payload      `json:"candidate,omitempty" msgpack:"candidate,omitempty"`
}

type SignalResponse struct {
	Event     EventKind      `json:"event" msgpack:"event"`
	RoomID    string         `json:"roomId,omitempty" msgpack:"roomId,omitempty"`
	UserID    ConnectionID   `json:"userId,omitempty" msgpack:"userId,omitempty"`
	Users     []ConnectionID `json:"users,omitempty" msgpack:"users,omitempty"`
	From      ConnectionID   `json:"from,omitempty" msgpack:"from,omitempty"`
	SDP       Payload        `json:"sdp,omitempty" msgpack:"sdp,omitempty"`
	Candidate Payload        `json:"candidate,omitempty" msgpack:"candidate,omitempty"`
}

// MarshalJSON always writes "users" for room-users, including an empty room.
func (r SignalResponse) MarshalJSON() ([]byte, error) {
	type alias SignalResponse
	out := struct {
		alias
		Users *[]ConnectionID `json:"users,omitempty"`
	}{alias: alias(r)}
	if r.Event == EventRoomUsers {
		users := r.Users
		if users == nil {
			users = []ConnectionID{}
		}
		out.Users = &users
	}
	return json.Marshal(out)
}

type roomUsersFrame struct {
	Event  EventKind      `msgpack:"event"`
	RoomID string         `msgpack:"roomId,omitempty"`
	Users  []ConnectionID `msgpack:"users"`
}

// EncodeMsgpack matches MarshalJSON: "users" is present for room-users only.
func (r SignalResponse) EncodeMsgpack(enc *msgpack.Encoder) error {
	if r.Event == EventRoomUsers {
		users := r.Users
		if users == nil {
			users = []ConnectionID{}
		}
		return enc.Encode(&roomUsersFrame{Event: r.Event, RoomID: r.RoomID, Users: users})
	}
	type alias SignalResponse
	return enc.Encode((*alias)(&r))
}

type SendResult int

const (
	SendDropped SendResult = iota
	SendDelivered
)

func (s SendResult) String() string {
	if s == SendDelivered {
		return "delivered"
	}
	return "dropped"
}

// RoomInfo is a point-in-time snapshot of a room.
type RoomInfo struct {
	RoomID string `json:"roomId" msgpack:"roomId"`
	// node holding the room, set by stores shared between processes
	NodeID         string         `json:"nodeId,omitempty" msgpack:"nodeId,omitempty"`
	Members        []ConnectionID `json:"members" msgpack:"members"`
	CreatedAt      time.Time      `json:"createdAt" msgpack:"createdAt"`
	EmptySince     time.Time      `json:"emptySince" msgpack:"emptySince"`
	CleanupPending bool           `json:"cleanupPending" msgpack:"cleanupPending"`
}

// RoomDeparture describes the effect of removing one connection from one room.
type RoomDeparture struct {
	RoomID    string
	NowEmpty  bool
	Remaining []ConnectionID
}
