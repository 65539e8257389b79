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
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

type RTCService struct {
	handler  *rtc.RendezvousHandler
	config   config.SignalConfig
	upgrader websocket.Upgrader

	lock     sync.Mutex
	sessions map[types.ConnectionID]*signalSession
}

func NewRTCService(conf *config.Config, handler *rtc.RendezvousHandler) *RTCService {
	s := &RTCService{
		handler:  handler,
		config:   conf.Signal,
		sessions: make(map[types.ConnectionID]*signalSession),
	}
	s.upgrader.CheckOrigin = func(r *http.Request) bool {
		return s.config.OriginAllowed(r.Header.Get("Origin"))
	}
	return s
}

func (s *RTCService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.config.OriginAllowed(r.Header.Get("Origin")) {
		handleError(w, r, http.StatusForbidden, ErrOriginNotAllowed, "origin", r.Header.Get("Origin"))
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has already replied
		logger.Warnw("could not upgrade to WS", err, "remote", GetClientIP(r))
		return
	}

	conn.SetReadLimit(s.config.MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(s.config.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.config.PongWait))
	})

	sigConn := NewWSSignalConnection(conn, s.config.WriteWait)
	session := newSignalSession(sigConn, s.config.SendQueueSize)
	connID := s.handler.Connect(session)
	session.logger = logger.GetLogger().WithValues("connID", connID)
	session.logger.Infow("new client WS connected", "remote", GetClientIP(r))

	s.lock.Lock()
	s.sessions[connID] = session
	s.lock.Unlock()

	defer func() {
		s.handler.Disconnect(connID)
		session.Close()

		s.lock.Lock()
		delete(s.sessions, connID)
		s.lock.Unlock()

		session.logger.Infow("WS connection closed",
			"sent", session.sent.Load(),
			"dropped", session.dropped.Load(),
		)
	}()

	go session.writePump(s.config.PingInterval)
	s.readPump(connID, sigConn, session.logger)
}

// readPump feeds requests to the handler in arrival order until the socket fails.
func (s *RTCService) readPump(connID types.ConnectionID, sigConn *WSSignalConnection, l logger.Logger) {
	for {
		req, _, err := sigConn.ReadRequest()
		if err != nil {
			if errors.Is(err, ErrInvalidMessage) {
				l.Debugw("ignoring malformed message", "error", err)
				continue
			}
			if IsWebSocketCloseError(err) {
				l.Debugw("client closed connection")
			} else {
				l.Warnw("error reading from websocket", err)
			}
			return
		}
		if req == nil {
			continue
		}

		if err := s.handler.HandleRequest(connID, req); err != nil {
			l.Debugw("ignoring signal request", "event", req.Event, "error", err)
		}
	}
}

// Stop closes every open session. Their read loops exit and run the
// disconnect cascade.
func (s *RTCService) Stop() {
	s.lock.Lock()
	sessions := make([]*signalSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.lock.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

func (s *RTCService) SessionCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.sessions)
}
