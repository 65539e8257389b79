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
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . WebsocketClient
type WebsocketClient interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

//counterfeiter:generate . SignalConnection
type SignalConnection interface {
	ReadRequest() (*SignalRequest, int, error)
	WriteResponse(*SignalResponse) (int, error)
}

// MessageSink accepts outbound messages for a single connection. WriteMessage
// must not block.
//
//counterfeiter:generate . MessageSink
type MessageSink interface {
	WriteMessage(msg *SignalResponse) error
}

//counterfeiter:generate . ConnectionRegistry
type ConnectionRegistry interface {
	Register(sink MessageSink) ConnectionID
	Send(id ConnectionID, msg *SignalResponse) SendResult
	// Unregister returns true only for the call that actually removed the id
	Unregister(id ConnectionID) bool
	IsRegistered(id ConnectionID) bool
	Count() int
}

//counterfeiter:generate . RoomDirectory
type RoomDirectory interface {
	// Join returns the other members oldest first, and whether connID was newly added
	Join(roomID string, connID ConnectionID) ([]ConnectionID, bool, error)
	// Leave reports whether connID was a member, and the state of the room it left
	Leave(roomID string, connID ConnectionID) (RoomDeparture, bool)
	LeaveAll(connID ConnectionID) []RoomDeparture
	CancelPendingCleanup(roomID string) bool
	AttachPendingCleanup(roomID string, handle CleanupHandle) bool
	DeleteIfEmpty(roomID string, handle CleanupHandle) bool
	MembersOf(roomID string) []ConnectionID
	RoomsOf(connID ConnectionID) []string
	Rooms() []RoomInfo
}

//counterfeiter:generate . RoomReclaimer
type RoomReclaimer interface {
	OnRoomEmptied(roomID string)
	Stop()
}

//counterfeiter:generate . CleanupHandle
type CleanupHandle interface {
	// Cancel returns false if the task already fired or was canceled
	Cancel() bool
}
