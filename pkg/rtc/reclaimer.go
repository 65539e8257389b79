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
	"sync"
	"time"

	"github.com/frostbyte73/core"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/telemetry/prometheus"
)

type taskState int

const (
	taskPending taskState = iota
	taskCanceled
	taskFired
)

// cleanupTask is the deferred deletion of one empty room. It settles exactly
// once, either canceled or fired.
type cleanupTask struct {
	lock   sync.Mutex
	roomID string
	state  taskState
	timer  *time.Timer
	onDone func(*cleanupTask)
}

func (t *cleanupTask) arm(delay time.Duration, f func()) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.state != taskPending {
		return
	}
	t.timer = time.AfterFunc(delay, f)
}

func (t *cleanupTask) Cancel() bool {
	t.lock.Lock()
	if t.state != taskPending {
		t.lock.Unlock()
		return false
	}
	t.state = taskCanceled
	if t.timer != nil {
		t.timer.Stop()
	}
	t.lock.Unlock()

	if t.onDone != nil {
		t.onDone(t)
	}
	return true
}

func (t *cleanupTask) fire() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.state != taskPending {
		return false
	}
	t.state = taskFired
	return true
}

// GraceReclaimer deletes rooms that stay empty for the configured delay. A
// rejoin before the delay elapses cancels the deletion through the directory.
type GraceReclaimer struct {
	directory types.RoomDirectory
	delay     time.Duration

	lock  sync.Mutex
	tasks map[*cleanupTask]struct{}
	done  core.Fuse
}

func NewGraceReclaimer(directory types.RoomDirectory, delay time.Duration) *GraceReclaimer {
	return &GraceReclaimer{
		directory: directory,
		delay:     delay,
		tasks:     make(map[*cleanupTask]struct{}),
	}
}

func (g *GraceReclaimer) OnRoomEmptied(roomID string) {
	if g.done.IsBroken() {
		return
	}

	task := &cleanupTask{roomID: roomID, onDone: g.untrack}
	g.lock.Lock()
	g.tasks[task] = struct{}{}
	g.lock.Unlock()

	if !g.directory.AttachPendingCleanup(roomID, task) {
		// rejoined or already scheduled
		g.untrack(task)
		return
	}

	logger.Debugw("room empty, scheduling cleanup", "roomID", roomID, "delay", g.delay)
	task.arm(g.delay, func() {
		g.fire(task)
	})
}

func (g *GraceReclaimer) fire(task *cleanupTask) {
	defer g.untrack(task)
	if !task.fire() {
		return
	}

	if g.directory.DeleteIfEmpty(task.roomID, task) {
		logger.Infow("reclaimed empty room", "roomID", task.roomID, "emptyTimeout", g.delay)
		prometheus.RoomReclaimed()
	}
}

func (g *GraceReclaimer) untrack(task *cleanupTask) {
	g.lock.Lock()
	delete(g.tasks, task)
	g.lock.Unlock()
}

// Pending returns the number of outstanding cleanup tasks.
func (g *GraceReclaimer) Pending() int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return len(g.tasks)
}

// Stop cancels every outstanding task. Rooms emptied afterwards are not scheduled.
func (g *GraceReclaimer) Stop() {
	g.done.Break()

	g.lock.Lock()
	tasks := make([]*cleanupTask, 0, len(g.tasks))
	for task := range g.tasks {
		tasks = append(tasks, task)
	}
	g.lock.Unlock()

	for _, task := range tasks {
		task.Cancel()
	}
}
