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

package service

import (
	"context"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RoomStore mirrors room snapshots for observation. The in-memory directory
// stays authoritative and is never rebuilt from a store.
//
//counterfeiter:generate . RoomStore
type RoomStore interface {
	RORoomStore

	StoreRoom(ctx context.Context, room *types.RoomInfo) error
	DeleteRoom(ctx context.Context, roomID string) error
}

//counterfeiter:generate . RORoomStore
type RORoomStore interface {
	LoadRoom(ctx context.Context, roomID string) (*types.RoomInfo, error)
	ListRooms(ctx context.Context) ([]*types.RoomInfo, error)
}
