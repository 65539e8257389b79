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
	"sort"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/telemetry/prometheus"
)

type room struct {
	lock sync.Mutex
	id   string
	// connection id -> join time, in join order
	members    *orderedmap.OrderedMap[types.ConnectionID, time.Time]
	createdAt  time.Time
	emptySince time.Time
	pending    types.CleanupHandle
}

func newRoom(id string) *room {
	now := time.Now()
	return &room{
		id:         id,
		members:    orderedmap.NewOrderedMap[types.ConnectionID, time.Time](),
		createdAt:  now,
		emptySince: now,
	}
}

func (r *room) memberIDs(except types.ConnectionID) []types.ConnectionID {
	ids := make([]types.ConnectionID, 0, r.members.Len())
	for el := r.members.Front(); el != nil; el = el.Next() {
		if el.Key != except {
			ids = append(ids, el.Key)
		}
	}
	return ids
}

func (r *room) info() types.RoomInfo {
	info := types.RoomInfo{
		RoomID:         r.id,
		Members:        r.memberIDs(""),
		CreatedAt:      r.createdAt,
		CleanupPending: r.pending != nil,
	}
	if r.members.Len() == 0 {
		info.EmptySince = r.emptySince
	}
	return info
}

// RoomDirectory tracks room membership. Lock order is directory, then room,
// then the membership index. Observer hooks run under the room lock and must
// not block.
type RoomDirectory struct {
	lock  sync.RWMutex
	rooms map[string]*room

	membershipLock sync.Mutex
	memberships    map[types.ConnectionID]map[string]struct{}

	maxRoomsPerConnection int

	onRoomUpdated func(info types.RoomInfo)
	onRoomDeleted func(roomID string)
}

func NewRoomDirectory(conf *config.RoomConfig) *RoomDirectory {
	return &RoomDirectory{
		rooms:                 make(map[string]*room),
		memberships:           make(map[types.ConnectionID]map[string]struct{}),
		maxRoomsPerConnection: conf.MaxRoomsPerConnection,
	}
}

func (d *RoomDirectory) OnRoomUpdated(f func(info types.RoomInfo)) {
	d.lock.Lock()
	d.onRoomUpdated = f
	d.lock.Unlock()
}

func (d *RoomDirectory) OnRoomDeleted(f func(roomID string)) {
	d.lock.Lock()
	d.onRoomDeleted = f
	d.lock.Unlock()
}

// lockRoom returns the room locked together with the directory. When create is
// set a missing room is created under the directory write lock.
func (d *RoomDirectory) lockRoom(roomID string, create bool) (*room, func()) {
	d.lock.RLock()
	if r := d.rooms[roomID]; r != nil {
		r.lock.Lock()
		return r, func() {
			r.lock.Unlock()
			d.lock.RUnlock()
		}
	}
	d.lock.RUnlock()
	if !create {
		return nil, nil
	}

	d.lock.Lock()
	r := d.rooms[roomID]
	if r == nil {
		r = newRoom(roomID)
		d.rooms[roomID] = r
		prometheus.RoomStarted()
	}
	r.lock.Lock()
	return r, func() {
		r.lock.Unlock()
		d.lock.Unlock()
	}
}

func (d *RoomDirectory) Join(roomID string, connID types.ConnectionID) ([]types.ConnectionID, bool, error) {
	if roomID == "" {
		return nil, false, ErrEmptyRoomID
	}
	if !d.canJoin(roomID, connID) {
		return nil, false, ErrTooManyRooms
	}

	r, unlock := d.lockRoom(roomID, true)
	defer unlock()

	added := false
	if _, ok := r.members.Get(connID); !ok {
		r.members.Set(connID, time.Now())
		d.addMembership(connID, roomID)
		d.cancelPendingLocked(r)
		added = true
	}

	if added && d.onRoomUpdated != nil {
		d.onRoomUpdated(r.info())
	}
	return r.memberIDs(connID), added, nil
}

func (d *RoomDirectory) Leave(roomID string, connID types.ConnectionID) (types.RoomDeparture, bool) {
	r, unlock := d.lockRoom(roomID, false)
	if r == nil {
		return types.RoomDeparture{RoomID: roomID}, false
	}
	defer unlock()

	return d.leaveLocked(r, connID)
}

func (d *RoomDirectory) leaveLocked(r *room, connID types.ConnectionID) (types.RoomDeparture, bool) {
	departure := types.RoomDeparture{RoomID: r.id}
	if !r.members.Delete(connID) {
		return departure, false
	}
	d.removeMembership(connID, r.id)

	if r.members.Len() == 0 {
		r.emptySince = time.Now()
		departure.NowEmpty = true
	}
	departure.Remaining = r.memberIDs("")

	if d.onRoomUpdated != nil {
		d.onRoomUpdated(r.info())
	}
	return departure, true
}

// LeaveAll removes connID from every room it belongs to.
func (d *RoomDirectory) LeaveAll(connID types.ConnectionID) []types.RoomDeparture {
	var departures []types.RoomDeparture
	for _, roomID := range d.RoomsOf(connID) {
		if departure, ok := d.Leave(roomID, connID); ok {
			departures = append(departures, departure)
		}
	}
	return departures
}

func (d *RoomDirectory) CancelPendingCleanup(roomID string) bool {
	r, unlock := d.lockRoom(roomID, false)
	if r == nil {
		return false
	}
	defer unlock()

	return d.cancelPendingLocked(r)
}

func (d *RoomDirectory) cancelPendingLocked(r *room) bool {
	if r.pending == nil {
		return false
	}
	r.pending.Cancel()
	r.pending = nil
	return true
}

// AttachPendingCleanup records handle as the room's cleanup task. It refuses
// when the room is gone, has members, or already has a task attached.
func (d *RoomDirectory) AttachPendingCleanup(roomID string, handle types.CleanupHandle) bool {
	r, unlock := d.lockRoom(roomID, false)
	if r == nil {
		return false
	}
	defer unlock()

	if r.members.Len() > 0 || r.pending != nil {
		return false
	}
	r.pending = handle
	if d.onRoomUpdated != nil {
		d.onRoomUpdated(r.info())
	}
	return true
}

// DeleteIfEmpty deletes the room only if it is still empty and handle is the
// task currently attached to it.
func (d *RoomDirectory) DeleteIfEmpty(roomID string, handle types.CleanupHandle) bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	r := d.rooms[roomID]
	if r == nil {
		return false
	}
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.members.Len() > 0 || r.pending == nil || r.pending != handle {
		return false
	}
	r.pending = nil
	delete(d.rooms, roomID)
	prometheus.RoomEnded()

	if d.onRoomDeleted != nil {
		d.onRoomDeleted(roomID)
	}
	return true
}

func (d *RoomDirectory) MembersOf(roomID string) []types.ConnectionID {
	r, unlock := d.lockRoom(roomID, false)
	if r == nil {
		return nil
	}
	defer unlock()

	return r.memberIDs("")
}

func (d *RoomDirectory) RoomsOf(connID types.ConnectionID) []string {
	d.membershipLock.Lock()
	defer d.membershipLock.Unlock()

	rooms := make([]string, 0, len(d.memberships[connID]))
	for roomID := range d.memberships[connID] {
		rooms = append(rooms, roomID)
	}
	sort.Strings(rooms)
	return rooms
}

func (d *RoomDirectory) Rooms() []types.RoomInfo {
	d.lock.RLock()
	defer d.lock.RUnlock()

	infos := make([]types.RoomInfo, 0, len(d.rooms))
	for _, r := range d.rooms {
		r.lock.Lock()
		infos = append(infos, r.info())
		r.lock.Unlock()
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].RoomID < infos[j].RoomID
	})
	return infos
}

func (d *RoomDirectory) canJoin(roomID string, connID types.ConnectionID) bool {
	if d.maxRoomsPerConnection <= 0 {
		return true
	}

	d.membershipLock.Lock()
	defer d.membershipLock.Unlock()

	joined := d.memberships[connID]
	if _, ok := joined[roomID]; ok {
		return true
	}
	return len(joined) < d.maxRoomsPerConnection
}

func (d *RoomDirectory) addMembership(connID types.ConnectionID, roomID string) {
	d.membershipLock.Lock()
	defer d.membershipLock.Unlock()

	joined := d.memberships[connID]
	if joined == nil {
		joined = make(map[string]struct{})
		d.memberships[connID] = joined
	}
	joined[roomID] = struct{}{}
}

func (d *RoomDirectory) removeMembership(connID types.ConnectionID, roomID string) {
	d.membershipLock.Lock()
	defer d.membershipLock.Unlock()

	joined := d.memberships[connID]
	delete(joined, roomID)
	if len(joined) == 0 {
		delete(d.memberships, connID)
	}
}
