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

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/service"
)

func TestLocalRoomStore(t *testing.T) {
	ctx := context.Background()
	s := service.NewLocalRoomStore()

	_, err := s.LoadRoom(ctx, "call-42")
	require.ErrorIs(t, err, service.ErrRoomNotFound)

	for _, id := range []string{"b", "c", "a"} {
		require.NoError(t, s.StoreRoom(ctx, &types.RoomInfo{RoomID: id}))
	}
	require.NoError(t, s.StoreRoom(ctx, &types.RoomInfo{RoomID: "a", Members: []types.ConnectionID{"CO_a"}}))

	rooms, err := s.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	require.Equal(t, "a", rooms[0].RoomID)
	require.Equal(t, "b", rooms[1].RoomID)
	require.Equal(t, "c", rooms[2].RoomID)
	require.Equal(t, []types.ConnectionID{"CO_a"}, rooms[0].Members)

	require.NoError(t, s.DeleteRoom(ctx, "b"))
	require.NoError(t, s.DeleteRoom(ctx, "missing"))
	_, err = s.LoadRoom(ctx, "b")
	require.ErrorIs(t, err, service.ErrRoomNotFound)
}
