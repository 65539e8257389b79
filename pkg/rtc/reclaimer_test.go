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

	"github.com/livekit/rendezvous-server/pkg/rtc/types/typesfakes"
)

const testGrace = 20 * time.Millisecond

func emptiedRoom(t *testing.T, roomID string) *RoomDirectory {
	d := NewRoomDirectory(testRoomConfig())
	_, _, err := d.Join(roomID, "CO_a")
	require.NoError(t, err)
	departure, ok := d.Leave(roomID, "CO_a")
	require.True(t, ok)
	require.True(t, departure.NowEmpty)
	return d
}

func TestReclaimerDeletesEmptyRoom(t *testing.T) {
	d := emptiedRoom(t, "call-42")
	g := NewGraceReclaimer(d, testGrace)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	require.Equal(t, 1, g.Pending())
	require.True(t, d.Rooms()[0].CleanupPending)

	require.Eventually(t, func() bool {
		return len(d.Rooms()) == 0
	}, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return g.Pending() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestReclaimerRejoinCancels(t *testing.T) {
	d := emptiedRoom(t, "call-42")
	g := NewGraceReclaimer(d, 50*time.Millisecond)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	_, added, err := d.Join("call-42", "CO_b")
	require.NoError(t, err)
	require.True(t, added)
	require.Equal(t, 0, g.Pending())

	time.Sleep(100 * time.Millisecond)
	require.Len(t, d.Rooms(), 1)
	require.Len(t, d.MembersOf("call-42"), 1)
}

func TestReclaimerSkipsOccupiedRoom(t *testing.T) {
	d := NewRoomDirectory(testRoomConfig())
	_, _, _ = d.Join("call-42", "CO_a")
	g := NewGraceReclaimer(d, testGrace)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	require.Equal(t, 0, g.Pending())
	require.False(t, d.Rooms()[0].CleanupPending)
}

func TestReclaimerSingleTaskPerRoom(t *testing.T) {
	d := emptiedRoom(t, "call-42")
	g := NewGraceReclaimer(d, time.Minute)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	g.OnRoomEmptied("call-42")
	require.Equal(t, 1, g.Pending())
}

func TestReclaimerRefusedAttach(t *testing.T) {
	d := &typesfakes.FakeRoomDirectory{}
	d.AttachPendingCleanupReturns(false)
	g := NewGraceReclaimer(d, time.Millisecond)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	require.Equal(t, 1, d.AttachPendingCleanupCallCount())
	require.Equal(t, 0, g.Pending())

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 0, d.DeleteIfEmptyCallCount())
}

func TestReclaimerFiresWithItsOwnHandle(t *testing.T) {
	d := &typesfakes.FakeRoomDirectory{}
	d.AttachPendingCleanupReturns(true)
	d.DeleteIfEmptyReturns(true)
	g := NewGraceReclaimer(d, time.Millisecond)
	defer g.Stop()

	g.OnRoomEmptied("call-42")
	require.Eventually(t, func() bool {
		return d.DeleteIfEmptyCallCount() == 1
	}, time.Second, 5*time.Millisecond)

	roomID, attached := d.AttachPendingCleanupArgsForCall(0)
	deletedID, handle := d.DeleteIfEmptyArgsForCall(0)
	require.Equal(t, "call-42", roomID)
	require.Equal(t, "call-42", deletedID)
	require.Same(t, attached, handle)

	// a fired task cannot be canceled afterwards
	require.False(t, handle.Cancel())
}

func TestReclaimerStop(t *testing.T) {
	d := emptiedRoom(t, "call-42")
	g := NewGraceReclaimer(d, testGrace)

	g.OnRoomEmptied("call-42")
	require.Equal(t, 1, g.Pending())
	g.Stop()
	require.Equal(t, 0, g.Pending())

	time.Sleep(3 * testGrace)
	require.Len(t, d.Rooms(), 1)

	// no new tasks once stopped
	d2 := emptiedRoom(t, "call-43")
	g2 := NewGraceReclaimer(d2, testGrace)
	g2.Stop()
	g2.OnRoomEmptied("call-43")
	require.Equal(t, 0, g2.Pending())
}

func TestCleanupTaskSettlesOnce(t *testing.T) {
	done := 0
	task := &cleanupTask{roomID: "call-42", onDone: func(*cleanupTask) { done++ }}
	require.True(t, task.Cancel())
	require.False(t, task.Cancel())
	require.False(t, task.fire())
	require.Equal(t, 1, done)

	task = &cleanupTask{roomID: "call-42"}
	require.True(t, task.fire())
	require.False(t, task.fire())
	require.False(t, task.Cancel())
}
