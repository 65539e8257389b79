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
	"errors"
	"time"

	"github.com/frostbyte73/core"
	"go.uber.org/atomic"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

// signalSession is the outbound half of one websocket. It implements
// types.MessageSink: WriteMessage only enqueues, and a single write pump owns
// the socket's writer.
type signalSession struct {
	conn   *WSSignalConnection
	queue  chan *types.SignalResponse
	closed core.Fuse
	logger logger.Logger

	sent    atomic.Uint64
	dropped atomic.Uint64
}

func newSignalSession(conn *WSSignalConnection, queueSize int) *signalSession {
	return &signalSession{
		conn:   conn,
		queue:  make(chan *types.SignalResponse, queueSize),
		logger: logger.GetLogger(),
	}
}

func (s *signalSession) WriteMessage(msg *types.SignalResponse) error {
	if s.closed.IsBroken() {
		return ErrConnectionClosed
	}
	select {
	case s.queue <- msg:
		return nil
	default:
		s.dropped.Inc()
		return ErrSendQueueFull
	}
}

// writePump drains the queue and keeps the peer alive with pings until the
// session is closed or a write fails.
func (s *signalSession) writePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.closed.Break()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-s.closed.Watch():
			_ = s.conn.WriteClose()
			return
		case msg := <-s.queue:
			if _, err := s.conn.WriteResponse(msg); err != nil {
				if errors.Is(err, ErrEncodeFailed) {
					// the socket is still healthy, only this message is lost
					s.logger.Debugw("dropping unencodable message", "event", msg.Event, "error", err)
					s.dropped.Inc()
					continue
				}
				if !IsWebSocketCloseError(err) {
					s.logger.Warnw("error writing to websocket", err, "event", msg.Event)
				}
				return
			}
			s.sent.Inc()
		case <-ticker.C:
			if err := s.conn.WritePing(); err != nil {
				s.logger.Debugw("could not send ping", "error", err)
				return
			}
		}
	}
}

// Close stops the write pump, which sends a close frame and closes the socket.
func (s *signalSession) Close() {
	s.closed.Break()
}
