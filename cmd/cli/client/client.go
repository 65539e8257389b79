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

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/atomic"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

// SignalClient is a minimal rendezvous peer. It tracks the other members of
// every room it joined and records everything the server sent it.
type SignalClient struct {
	id         types.ConnectionID
	conn       *websocket.Conn
	useMsgpack bool

	lock   sync.Mutex
	wsLock sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	connected atomic.Bool
	// OnMessage is called from the read loop for every server message
	OnMessage func(msg *types.SignalResponse)
	// roomID => other members, oldest first
	rooms    map[string][]types.ConnectionID
	received []*types.SignalResponse
}

type Options struct {
	// binary msgpack frames instead of JSON text frames
	UseMsgpack bool
	Origin     string
}

func NewWebSocketConn(host string, opts *Options) (*websocket.Conn, error) {
	u, err := url.Parse(host + "/rtc")
	if err != nil {
		return nil, err
	}
	requestHeader := make(http.Header)
	if opts != nil && opts.Origin != "" {
		requestHeader.Set("Origin", opts.Origin)
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), requestHeader)
	return conn, err
}

func NewSignalClient(conn *websocket.Conn, opts *Options) *SignalClient {
	c := &SignalClient{
		conn:  conn,
		rooms: make(map[string][]types.ConnectionID),
	}
	if opts != nil {
		c.useMsgpack = opts.UseMsgpack
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	return c
}

func (c *SignalClient) ID() types.ConnectionID {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.id
}

// Run reads server messages until the connection closes.
func (c *SignalClient) Run() error {
	c.conn.SetCloseHandler(func(code int, text string) error {
		logger.Infow("connection closed", "code", code, "text", text)
		c.Stop()
		return nil
	})

	for {
		res, err := c.ReadResponse()
		if errors.Is(err, io.EOF) || c.ctx.Err() != nil {
			return nil
		} else if err != nil {
			logger.Debugw("error while reading", "error", err)
			return err
		}

		c.lock.Lock()
		c.received = append(c.received, res)
		switch res.Event {
		case types.EventConnected:
			c.id = res.UserID
			c.connected.Store(true)
		case types.EventRoomUsers:
			c.rooms[res.RoomID] = append([]types.ConnectionID{}, res.Users...)
		case types.EventUserJoined:
			c.rooms[res.RoomID] = append(c.rooms[res.RoomID], res.UserID)
		case types.EventUserDisconnected:
			members := c.rooms[res.RoomID][:0]
			for _, m := range c.rooms[res.RoomID] {
				if m != res.UserID {
					members = append(members, m)
				}
			}
			c.rooms[res.RoomID] = members
		}
		c.lock.Unlock()

		if c.OnMessage != nil {
			c.OnMessage(res)
		}
	}
}

func (c *SignalClient) WaitUntilConnected() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("could not connect after timeout")
		case <-time.After(10 * time.Millisecond):
			if c.connected.Load() {
				return nil
			}
		}
	}
}

func (c *SignalClient) ReadResponse() (*types.SignalResponse, error) {
	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}

		msg := &types.SignalResponse{}
		switch messageType {
		case websocket.TextMessage:
			return msg, json.Unmarshal(payload, msg)
		case websocket.BinaryMessage:
			return msg, msgpack.Unmarshal(payload, msg)
		default:
			continue
		}
	}
}

func (c *SignalClient) SendRequest(req *types.SignalRequest) error {
	var msgType int
	var payload []byte
	var err error
	if c.useMsgpack {
		msgType = websocket.BinaryMessage
		payload, err = msgpack.Marshal(req)
	} else {
		msgType = websocket.TextMessage
		payload, err = json.Marshal(req)
	}
	if err != nil {
		return err
	}

	c.wsLock.Lock()
	defer c.wsLock.Unlock()
	return c.conn.WriteMessage(msgType, payload)
}

func (c *SignalClient) JoinRoom(roomID string) error {
	return c.SendRequest(&types.SignalRequest{Event: types.EventJoinRoom, RoomID: roomID})
}

func (c *SignalClient) LeaveRoom(roomID string) error {
	return c.SendRequest(&types.SignalRequest{Event: types.EventLeaveRoom, RoomID: roomID})
}

func (c *SignalClient) SendOffer(to types.ConnectionID, sdp types.Payload) error {
	return c.SendRequest(&types.SignalRequest{Event: types.EventOffer, To: to, SDP: sdp})
}

func (c *SignalClient) SendAnswer(to types.ConnectionID, sdp types.Payload) error {
	return c.SendRequest(&types.SignalRequest{Event: types.EventAnswer, To: to, SDP: sdp})
}

func (c *SignalClient) SendICECandidate(to types.ConnectionID, candidate types.Payload) error {
	return c.SendRequest(&types.SignalRequest{Event: types.EventICECandidate, To: to, Candidate: candidate})
}

// RemoteMembers returns the other members of roomID as seen by this client.
// The second value is false until the server answered a join for the room.
func (c *SignalClient) RemoteMembers(roomID string) ([]types.ConnectionID, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	members, ok := c.rooms[roomID]
	return append([]types.ConnectionID{}, members...), ok
}

func (c *SignalClient) Received(event types.EventKind) []*types.SignalResponse {
	c.lock.Lock()
	defer c.lock.Unlock()
	var msgs []*types.SignalResponse
	for _, msg := range c.received {
		if msg.Event == event {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func (c *SignalClient) Stop() {
	c.cancel()
	c.wsLock.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.wsLock.Unlock()
	_ = c.conn.Close()
}
