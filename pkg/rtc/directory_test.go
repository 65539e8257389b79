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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/rtc/types/typesfakes"
)

func TestDirectoryJoin(t *testing.T) {
	t.Run("first join creates the room", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		others, added, err := d.Join("call-42", "CO_a")
		require.NoError(t, err)
		require.True(t, added)
		require.Empty(t, others)
		require.Equal(t, []types.ConnectionID{"CO_a"}, d.MembersOf("call-42"))
		require.Equal(t, []string{"call-42"}, d.RoomsOf("CO_a"))
	})

	t.Run("others are returned oldest first", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		for _, id := range []types.ConnectionID{"CO_c", "CO_a", "CO_b"} {
			_, _, err := d.Join("call-42", id)
			require.NoError(t, err)
		}
		others, added, err := d.Join("call-42", "CO_d")
		require.NoError(t, err)
		require.True(t, added)
		require.Equal(t, []types.ConnectionID{"CO_c", "CO_a", "CO_b"}, others)
	})

	t.Run("joining twice is idempotent", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")
		_, _, _ = d.Join("call-42", "CO_b")

		others, added, err := d.Join("call-42", "CO_b")
		require.NoError(t, err)
		require.False(t, added)
		require.Equal(t, []types.ConnectionID{"CO_a"}, others)
		require.Len(t, d.MembersOf("call-42"), 2)
	})

	t.Run("empty room id is rejected", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, err := d.Join("", "CO_a")
		require.ErrorIs(t, err, ErrEmptyRoomID)
		require.Empty(t, d.Rooms())
	})

	t.Run("rooms per connection are capped", func(t *testing.T) {
		conf := testRoomConfig()
		conf.MaxRoomsPerConnection = 2
		d := NewRoomDirectory(conf)

		_, _, err := d.Join("r1", "CO_a")
		require.NoError(t, err)
		_, _, err = d.Join("r2", "CO_a")
		require.NoError(t, err)
		_, _, err = d.Join("r3", "CO_a")
		require.ErrorIs(t, err, ErrTooManyRooms)
		require.Nil(t, d.MembersOf("r3"))

		// rejoining a room already held is not a new room
		_, added, err := d.Join("r1", "CO_a")
		require.NoError(t, err)
		require.False(t, added)

		_, _, err = d.Join("r3", "CO_b")
		require.NoError(t, err)
	})

	t.Run("concurrent joins are all recorded", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, added, err := d.Join("call-42", types.ConnectionID(fmt.Sprintf("CO_%d", i)))
				require.NoError(t, err)
				require.True(t, added)
			}(i)
		}
		wg.Wait()
		require.Len(t, d.MembersOf("call-42"), 50)
		require.Len(t, d.Rooms(), 1)
	})
}

func TestDirectoryLeave(t *testing.T) {
	t.Run("leave reports remaining members", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")
		_, _, _ = d.Join("call-42", "CO_b")
		_, _, _ = d.Join("call-42", "CO_c")

		departure, ok := d.Leave("call-42", "CO_b")
		require.True(t, ok)
		require.False(t, departure.NowEmpty)
		require.Equal(t, "call-42", departure.RoomID)
		require.Equal(t, []types.ConnectionID{"CO_a", "CO_c"}, departure.Remaining)
		require.Empty(t, d.RoomsOf("CO_b"))
	})

	t.Run("last member leaving empties but keeps the room", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")

		departure, ok := d.Leave("call-42", "CO_a")
		require.True(t, ok)
		require.True(t, departure.NowEmpty)
		require.Empty(t, departure.Remaining)

		rooms := d.Rooms()
		require.Len(t, rooms, 1)
		require.Empty(t, rooms[0].Members)
		require.False(t, rooms[0].EmptySince.IsZero())
		require.False(t, rooms[0].CleanupPending)
	})

	t.Run("leaving a room not joined has no effect", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")

		_, ok := d.Leave("call-42", "CO_b")
		require.False(t, ok)
		_, ok = d.Leave("unknown", "CO_a")
		require.False(t, ok)
		require.Equal(t, []types.ConnectionID{"CO_a"}, d.MembersOf("call-42"))
	})

	t.Run("leave all removes every membership", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("r1", "CO_a")
		_, _, _ = d.Join("r2", "CO_a")
		_, _, _ = d.Join("r2", "CO_b")

		departures := d.LeaveAll("CO_a")
		require.Len(t, departures, 2)
		require.Equal(t, "r1", departures[0].RoomID)
		require.True(t, departures[0].NowEmpty)
		require.Equal(t, "r2", departures[1].RoomID)
		require.False(t, departures[1].NowEmpty)
		require.Equal(t, []types.ConnectionID{"CO_b"}, departures[1].Remaining)

		require.Empty(t, d.RoomsOf("CO_a"))
		require.Empty(t, d.LeaveAll("CO_a"))
	})
}

func TestDirectoryPendingCleanup(t *testing.T) {
	newEmptyRoom := func(t *testing.T) *RoomDirectory {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")
		_, ok := d.Leave("call-42", "CO_a")
		require.True(t, ok)
		return d
	}

	t.Run("attach refuses occupied rooms", func(t *testing.T) {
		d := NewRoomDirectory(testRoomConfig())
		_, _, _ = d.Join("call-42", "CO_a")
		require.False(t, d.AttachPendingCleanup("call-42", &typesfakes.FakeCleanupHandle{}))
		require.False(t, d.AttachPendingCleanup("unknown", &typesfakes.FakeCleanupHandle{}))
	})

	t.Run("only one task can be attached", func(t *testing.T) {
		d := newEmptyRoom(t)
		require.True(t, d.AttachPendingCleanup("call-42", &typesfakes.FakeCleanupHandle{}))
		require.False(t, d.AttachPendingCleanup("call-42", &typesfakes.FakeCleanupHandle{}))
		require.True(t, d.Rooms()[0].CleanupPending)
	})

	t.Run("rejoin cancels the attached task", func(t *testing.T) {
		d := newEmptyRoom(t)
		handle := &typesfakes.FakeCleanupHandle{}
		require.True(t, d.AttachPendingCleanup("call-42", handle))

		_, added, err := d.Join("call-42", "CO_b")
		require.NoError(t, err)
		require.True(t, added)
		require.Equal(t, 1, handle.CancelCallCount())
		require.False(t, d.Rooms()[0].CleanupPending)

		// the canceled task can no longer delete the room
		require.False(t, d.DeleteIfEmpty("call-42", handle))
		require.Equal(t, []types.ConnectionID{"CO_b"}, d.MembersOf("call-42"))
	})

	t.Run("explicit cancel", func(t *testing.T) {
		d := newEmptyRoom(t)
		handle := &typesfakes.FakeCleanupHandle{}
		require.False(t, d.CancelPendingCleanup("call-42"))
		require.True(t, d.AttachPendingCleanup("call-42", handle))
		require.True(t, d.CancelPendingCleanup("call-42"))
		require.False(t, d.CancelPendingCleanup("call-42"))
		require.Equal(t, 1, handle.CancelCallCount())
		require.False(t, d.CancelPendingCleanup("unknown"))
	})

	t.Run("delete requires the attached task", func(t *testing.T) {
		d := newEmptyRoom(t)
		handle := &typesfakes.FakeCleanupHandle{}
		require.False(t, d.DeleteIfEmpty("call-42", handle))
		require.True(t, d.AttachPendingCleanup("call-42", handle))
		require.False(t, d.DeleteIfEmpty("call-42", &typesfakes.FakeCleanupHandle{}))

		require.True(t, d.DeleteIfEmpty("call-42", handle))
		require.Empty(t, d.Rooms())
		require.False(t, d.DeleteIfEmpty("call-42", handle))
	})

	t.Run("a room can be recreated after deletion", func(t *testing.T) {
		d := newEmptyRoom(t)
		handle := &typesfakes.FakeCleanupHandle{}
		require.True(t, d.AttachPendingCleanup("call-42", handle))
		require.True(t, d.DeleteIfEmpty("call-42", handle))

		others, added, err := d.Join("call-42", "CO_b")
		require.NoError(t, err)
		require.True(t, added)
		require.Empty(t, others)
	})
}

func TestDirectoryHooks(t *testing.T) {
	d := NewRoomDirectory(&config.RoomConfig{})

	var updates []types.RoomInfo
	var deleted []string
	d.OnRoomUpdated(func(info types.RoomInfo) {
		updates = append(updates, info)
	})
	d.OnRoomDeleted(func(roomID string) {
		deleted = append(deleted, roomID)
	})

	_, _, _ = d.Join("call-42", "CO_a")
	_, _, _ = d.Join("call-42", "CO_a")
	require.Len(t, updates, 1)
	require.Equal(t, []types.ConnectionID{"CO_a"}, updates[0].Members)

	_, _ = d.Leave("call-42", "CO_a")
	require.Len(t, updates, 2)
	require.Empty(t, updates[1].Members)

	handle := &typesfakes.FakeCleanupHandle{}
	require.True(t, d.AttachPendingCleanup("call-42", handle))
	require.Len(t, updates, 3)
	require.True(t, updates[2].CleanupPending)

	require.True(t, d.DeleteIfEmpty("call-42", handle))
	require.Equal(t, []string{"call-42"}, deleted)
}
