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
	"time"

	"github.com/gammazero/workerpool"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

const storeOpTimeout = 5 * time.Second

// RoomStoreSyncer copies directory changes into a RoomStore. Directory hooks
// run under room locks, so every store write is queued on a single worker,
// which also keeps writes for one room in order.
type RoomStoreSyncer struct {
	store RoomStore
	pool  *workerpool.WorkerPool

	lock    sync.RWMutex
	stopped bool
	// rooms written and not yet deleted, only touched by the worker
	stored map[string]struct{}
}

func NewRoomStoreSyncer(store RoomStore, directory *rtc.RoomDirectory) *RoomStoreSyncer {
	s := &RoomStoreSyncer{
		store:  store,
		pool:   workerpool.New(1),
		stored: make(map[string]struct{}),
	}
	directory.OnRoomUpdated(s.OnRoomUpdated)
	directory.OnRoomDeleted(s.OnRoomDeleted)
	return s
}

func (s *RoomStoreSyncer) OnRoomUpdated(info types.RoomInfo) {
	s.submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
		defer cancel()

		if err := s.store.StoreRoom(ctx, &info); err != nil {
			logger.Warnw("could not store room", err, "roomID", info.RoomID)
			return
		}
		s.stored[info.RoomID] = struct{}{}
	})
}

func (s *RoomStoreSyncer) OnRoomDeleted(roomID string) {
	s.submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
		defer cancel()

		if err := s.store.DeleteRoom(ctx, roomID); err != nil {
			logger.Warnw("could not delete room", err, "roomID", roomID)
			return
		}
		delete(s.stored, roomID)
	})
}

func (s *RoomStoreSyncer) submit(task func()) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.stopped {
		return
	}
	s.pool.Submit(task)
}

// Stop drains pending writes, then removes every room this process stored.
func (s *RoomStoreSyncer) Stop() {
	s.lock.Lock()
	if s.stopped {
		s.lock.Unlock()
		return
	}
	s.stopped = true
	s.lock.Unlock()

	s.pool.StopWait()

	ctx, cancel := context.WithTimeout(context.Background(), storeOpTimeout)
	defer cancel()
	for roomID := range s.stored {
		if err := s.store.DeleteRoom(ctx, roomID); err != nil {
			logger.Warnw("could not delete room on shutdown", err, "roomID", roomID)
		}
	}
}
