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
	"sort"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

const (
	// hash of node_id/room_id => msgpack encoded RoomInfo, shared by every node
	RoomsKey = "rendezvous_rooms"
)

// RedisRoomStore mirrors the rooms of one node into a hash shared by all
// nodes. Writes and deletes only touch this node's entries; ListRooms returns
// every node's rooms.
type RedisRoomStore struct {
	rc     redis.UniversalClient
	nodeID NodeID
}

func NewRedisRoomStore(rc redis.UniversalClient, nodeID NodeID) *RedisRoomStore {
	return &RedisRoomStore{
		rc:     rc,
		nodeID: nodeID,
	}
}

func (s *RedisRoomStore) roomField(roomID string) string {
	return string(s.nodeID) + "/" + roomID
}

func (s *RedisRoomStore) StoreRoom(ctx context.Context, room *types.RoomInfo) error {
	stored := *room
	stored.NodeID = string(s.nodeID)
	data, err := msgpack.Marshal(&stored)
	if err != nil {
		return err
	}

	if err := s.rc.HSet(ctx, RoomsKey, s.roomField(room.RoomID), data).Err(); err != nil {
		return errors.Wrap(err, "could not store room")
	}
	return nil
}

func (s *RedisRoomStore) LoadRoom(ctx context.Context, roomID string) (*types.RoomInfo, error) {
	data, err := s.rc.HGet(ctx, RoomsKey, s.roomField(roomID)).Result()
	if err != nil {
		if err == redis.Nil {
			err = ErrRoomNotFound
		}
		return nil, err
	}

	room := types.RoomInfo{}
	if err := msgpack.Unmarshal([]byte(data), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RedisRoomStore) ListRooms(ctx context.Context) ([]*types.RoomInfo, error) {
	items, err := s.rc.HVals(ctx, RoomsKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "could not get rooms")
	}

	rooms := make([]*types.RoomInfo, 0, len(items))
	for _, item := range items {
		room := types.RoomInfo{}
		if err := msgpack.Unmarshal([]byte(item), &room); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	sortRooms(rooms)
	return rooms, nil
}

func (s *RedisRoomStore) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.rc.HDel(ctx, RoomsKey, s.roomField(roomID)).Err(); err != nil {
		return errors.Wrap(err, "could not delete room")
	}
	return nil
}

func sortRooms(rooms []*types.RoomInfo) {
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].RoomID != rooms[j].RoomID {
			return rooms[i].RoomID < rooms[j].RoomID
		}
		return rooms[i].NodeID < rooms[j].NodeID
	})
}
