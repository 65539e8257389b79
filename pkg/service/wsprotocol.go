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
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	pkgerrors "github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

// WSSignalConnection encodes signal messages onto a websocket. Text frames are
// JSON and binary frames are msgpack; responses use the codec of the last
// frame received, starting with JSON.
type WSSignalConnection struct {
	conn      types.WebsocketClient
	writeWait time.Duration
	mu        sync.Mutex
	useJSON   bool
}

func NewWSSignalConnection(conn types.WebsocketClient, writeWait time.Duration) *WSSignalConnection {
	return &WSSignalConnection{
		conn:      conn,
		writeWait: writeWait,
		useJSON:   true,
	}
}

func (c *WSSignalConnection) Close() error {
	return c.conn.Close()
}

func (c *WSSignalConnection) ReadRequest() (*types.SignalRequest, int, error) {
	messageType, payload, err := c.conn.ReadMessage()
	if err != nil {
		return nil, 0, err
	}

	msg := &types.SignalRequest{}
	switch messageType {
	case websocket.BinaryMessage:
		c.mu.Lock()
		// msgpack encoded, write back msgpack
		c.useJSON = false
		c.mu.Unlock()
		if err := msgpack.Unmarshal(payload, msg); err != nil {
			return nil, len(payload), pkgerrors.Wrap(ErrInvalidMessage, err.Error())
		}
		// payloads are relayed to JSON peers too, so they must be representable in JSON
		if _, err := json.Marshal(msg); err != nil {
			return nil, len(payload), pkgerrors.Wrap(ErrInvalidMessage, err.Error())
		}
		return msg, len(payload), nil
	case websocket.TextMessage:
		c.mu.Lock()
		// json encoded, also write back JSON
		c.useJSON = true
		c.mu.Unlock()
		if err := json.Unmarshal(payload, msg); err != nil {
			return nil, len(payload), pkgerrors.Wrap(ErrInvalidMessage, err.Error())
		}
		return msg, len(payload), nil
	default:
		logger.Debugw("unsupported message", "message", messageType)
		return nil, len(payload), nil
	}
}

func (c *WSSignalConnection) WriteResponse(msg *types.SignalResponse) (int, error) {
	var msgType int
	var payload []byte
	var err error

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.useJSON {
		msgType = websocket.TextMessage
		payload, err = json.Marshal(msg)
	} else {
		msgType = websocket.BinaryMessage
		payload, err = msgpack.Marshal(msg)
	}
	if err != nil {
		return 0, pkgerrors.Wrap(ErrEncodeFailed, err.Error())
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return 0, err
	}
	return len(payload), c.conn.WriteMessage(msgType, payload)
}

func (c *WSSignalConnection) WritePing() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, []byte(""), time.Now().Add(c.writeWait))
}

func (c *WSSignalConnection) WriteClose() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	return c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.writeWait))
}

// IsWebSocketCloseError checks that error is normal/expected closure
func IsWebSocketCloseError(err error) bool {
	return errors.Is(err, io.EOF) ||
		strings.HasSuffix(err.Error(), "use of closed network connection") ||
		strings.HasSuffix(err.Error(), "connection reset by peer") ||
		websocket.IsCloseError(
			err,
			websocket.CloseAbnormalClosure,
			websocket.CloseGoingAway,
			websocket.CloseNormalClosure,
			websocket.CloseNoStatusReceived,
		)
}
