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
	"sync"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

// encapsulates room snapshots in memory, used when redis is not configured
type LocalRoomStore struct {
	// map of roomID => room
	rooms map[string]*types.RoomInfo
	lock  sync.RWMutex
}

func NewLocalRoomStore() *LocalRoomStore {
	return &LocalRoomStore{
		rooms: make(map[string]*types.RoomInfo),
	}
}

func (s *LocalRoomStore) StoreRoom(_ context.Context, room *types.RoomInfo) error {
	s.lock.Lock()
	s.rooms[room.RoomID] = room
	s.lock.Unlock()
	return nil
}

func (s *LocalRoomStore) LoadRoom(_ context.Context, roomID string) (*types.RoomInfo, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	room := s.rooms[roomID]
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *LocalRoomStore) ListRooms(_ context.Context) ([]*types.RoomInfo, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	rooms := make([]*types.RoomInfo, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	sortRooms(rooms)
	return rooms, nil
}

func (s *LocalRoomStore) DeleteRoom(_ context.Context, roomID string) error {
	s.lock.Lock()
	delete(s.rooms, roomID)
	s.lock.Unlock()
	return nil
}
