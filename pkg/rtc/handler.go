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
	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/telemetry/prometheus"
)

type requestHandler func(connID types.ConnectionID, req *types.SignalRequest) error

// RendezvousHandler applies client events to the registry and the directory,
// and fans the results out to the affected connections. It never blocks on a
// peer: all delivery goes through non-blocking sinks.
type RendezvousHandler struct {
	registry        types.ConnectionRegistry
	directory       types.RoomDirectory
	reclaimer       types.RoomReclaimer
	maxRoomIDLength int

	handlers map[types.EventKind]requestHandler
}

func NewRendezvousHandler(
	registry types.ConnectionRegistry,
	directory types.RoomDirectory,
	reclaimer types.RoomReclaimer,
	conf *config.RoomConfig,
) *RendezvousHandler {
	h := &RendezvousHandler{
		registry:        registry,
		directory:       directory,
		reclaimer:       reclaimer,
		maxRoomIDLength: conf.MaxRoomIDLength,
	}
	h.handlers = map[types.EventKind]requestHandler{
		types.EventJoinRoom:     h.handleJoinRoom,
		types.EventLeaveRoom:    h.handleLeaveRoom,
		types.EventOffer:        h.handleRelay,
		types.EventAnswer:       h.handleRelay,
		types.EventICECandidate: h.handleRelay,
	}
	return h
}

// Connect registers a new connection and tells it its id.
func (h *RendezvousHandler) Connect(sink types.MessageSink) types.ConnectionID {
	connID := h.registry.Register(sink)
	h.registry.Send(connID, &types.SignalResponse{
		Event:  types.EventConnected,
		UserID: connID,
	})
	logger.Debugw("connection registered", "connID", connID)
	return connID
}

// HandleRequest dispatches one client event. The returned error describes why
// a request was ignored; it never needs to reach the client.
func (h *RendezvousHandler) HandleRequest(connID types.ConnectionID, req *types.SignalRequest) error {
	if req == nil {
		return ErrUnknownEvent
	}
	if !h.registry.IsRegistered(connID) {
		return ErrNotRegistered
	}
	handler, ok := h.handlers[req.Event]
	if !ok {
		return ErrUnknownEvent
	}
	prometheus.RecordSignalEvent(string(req.Event))
	return handler(connID, req)
}

// Disconnect retires a connection and notifies every room it was in. Only the
// first call for a connection has any effect.
func (h *RendezvousHandler) Disconnect(connID types.ConnectionID) {
	if !h.registry.Unregister(connID) {
		return
	}

	departures := h.directory.LeaveAll(connID)
	for _, departure := range departures {
		h.notifyDeparture(connID, departure)
	}
	logger.Debugw("connection unregistered", "connID", connID, "rooms", len(departures))
}

func (h *RendezvousHandler) handleJoinRoom(connID types.ConnectionID, req *types.SignalRequest) error {
	if err := h.validateRoomID(req.RoomID); err != nil {
		return err
	}

	others, added, err := h.directory.Join(req.RoomID, connID)
	if err != nil {
		return err
	}
	if others == nil {
		others = []types.ConnectionID{}
	}

	h.registry.Send(connID, &types.SignalResponse{
		Event:  types.EventRoomUsers,
		RoomID: req.RoomID,
		Users:  others,
	})
	if !added {
		return nil
	}

	logger.Debugw("joined room", "connID", connID, "roomID", req.RoomID, "members", len(others)+1)
	for _, other := range others {
		h.registry.Send(other, &types.SignalResponse{
			Event:  types.EventUserJoined,
			RoomID: req.RoomID,
			UserID: connID,
		})
	}
	return nil
}

func (h *RendezvousHandler) handleLeaveRoom(connID types.ConnectionID, req *types.SignalRequest) error {
	if err := h.validateRoomID(req.RoomID); err != nil {
		return err
	}

	// leaving is connection-wide: the caller drops out of every room it is in
	departures := h.directory.LeaveAll(connID)
	for _, departure := range departures {
		h.notifyDeparture(connID, departure)
	}
	logger.Debugw("left rooms", "connID", connID, "roomID", req.RoomID, "rooms", len(departures))
	return nil
}

func (h *RendezvousHandler) handleRelay(connID types.ConnectionID, req *types.SignalRequest) error {
	if req.To == "" {
		return ErrMissingTarget
	}

	msg := &types.SignalResponse{
		Event: req.Event,
		From:  connID,
	}
	if req.Event == types.EventICECandidate {
		msg.Candidate = req.Candidate
	} else {
		msg.SDP = req.SDP
	}

	result := h.registry.Send(req.To, msg)
	prometheus.RecordRelay(string(req.Event), result.String())
	if result == types.SendDropped {
		logger.Debugw("relay target unavailable", "connID", connID, "to", req.To, "event", req.Event)
	}
	return nil
}

func (h *RendezvousHandler) notifyDeparture(connID types.ConnectionID, departure types.RoomDeparture) {
	for _, other := range departure.Remaining {
		h.registry.Send(other, &types.SignalResponse{
			Event:  types.EventUserDisconnected,
			RoomID: departure.RoomID,
			UserID: connID,
		})
	}
	if departure.NowEmpty {
		h.reclaimer.OnRoomEmptied(departure.RoomID)
	}
}

func (h *RendezvousHandler) validateRoomID(roomID string) error {
	if roomID == "" {
		return ErrEmptyRoomID
	}
	if h.maxRoomIDLength > 0 && len(roomID) > h.maxRoomIDLength {
		return ErrRoomIDTooLong
	}
	return nil
}
