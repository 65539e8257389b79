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

package service_test

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/rtc/types/typesfakes"
	"github.com/livekit/rendezvous-server/pkg/service"
)

func TestWSSignalConnectionJSON(t *testing.T) {
	ws := &typesfakes.FakeWebsocketClient{}
	ws.ReadMessageReturns(websocket.TextMessage, []byte(`{"event":"join-room","roomId":"call-42"}`), nil)
	conn := service.NewWSSignalConnection(ws, time.Second)

	req, n, err := conn.ReadRequest()
	require.NoError(t, err)
	require.Positive(t, n)
	require.Equal(t, types.EventJoinRoom, req.Event)
	require.Equal(t, "call-42", req.RoomID)

	_, err = conn.WriteResponse(&types.SignalResponse{Event: types.EventRoomUsers, RoomID: "call-42"})
	require.NoError(t, err)
	require.Equal(t, 1, ws.SetWriteDeadlineCallCount())
	msgType, payload := ws.WriteMessageArgsForCall(0)
	require.Equal(t, websocket.TextMessage, msgType)
	require.JSONEq(t, `{"event":"room-users","roomId":"call-42","users":[]}`, string(payload))

	_, err = conn.WriteResponse(&types.SignalResponse{Event: types.EventOffer, From: "CO_y", SDP: map[string]interface{}{"type": "offer"}})
	require.NoError(t, err)
	_, payload = ws.WriteMessageArgsForCall(1)
	require.JSONEq(t, `{"event":"offer","from":"CO_y","sdp":{"type":"offer"}}`, string(payload))
}

func TestWSSignalConnectionMsgpack(t *testing.T) {
	ws := &typesfakes.FakeWebsocketClient{}
	data, err := msgpack.Marshal(&types.SignalRequest{Event: types.EventOffer, To: "CO_x", SDP: "v=0"})
	require.NoError(t, err)
	ws.ReadMessageReturnsOnCall(0, websocket.BinaryMessage, data, nil)
	ws.ReadMessageReturnsOnCall(1, websocket.TextMessage, []byte(`{"event":"leave-room","roomId":"r"}`), nil)
	conn := service.NewWSSignalConnection(ws, time.Second)

	req, _, err := conn.ReadRequest()
	require.NoError(t, err)
	require.Equal(t, types.EventOffer, req.Event)
	require.Equal(t, types.ConnectionID("CO_x"), req.To)
	require.Equal(t, "v=0", req.SDP)

	// answers in the codec of the last frame received
	_, err = conn.WriteResponse(&types.SignalResponse{Event: types.EventAnswer, From: "CO_x", SDP: "v=1"})
	require.NoError(t, err)
	msgType, payload := ws.WriteMessageArgsForCall(0)
	require.Equal(t, websocket.BinaryMessage, msgType)
	res := types.SignalResponse{}
	require.NoError(t, msgpack.Unmarshal(payload, &res))
	require.Equal(t, types.EventAnswer, res.Event)
	require.Equal(t, types.ConnectionID("CO_x"), res.From)
	require.Equal(t, "v=1", res.SDP)

	_, _, err = conn.ReadRequest()
	require.NoError(t, err)
	_, err = conn.WriteResponse(&types.SignalResponse{Event: types.EventConnected, UserID: "CO_x"})
	require.NoError(t, err)
	msgType, payload = ws.WriteMessageArgsForCall(1)
	require.Equal(t, websocket.TextMessage, msgType)
	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Equal(t, "CO_x", decoded["userId"])
}

func TestWSSignalConnectionInvalid(t *testing.T) {
	ws := &typesfakes.FakeWebsocketClient{}
	ws.ReadMessageReturnsOnCall(0, websocket.TextMessage, []byte(`not json`), nil)
	ws.ReadMessageReturnsOnCall(1, websocket.BinaryMessage, []byte{0xc1}, nil)
	ws.ReadMessageReturnsOnCall(2, websocket.PingMessage, nil, nil)
	ws.ReadMessageReturnsOnCall(3, 0, nil, io.EOF)
	conn := service.NewWSSignalConnection(ws, time.Second)

	_, _, err := conn.ReadRequest()
	require.ErrorIs(t, err, service.ErrInvalidMessage)
	_, _, err = conn.ReadRequest()
	require.ErrorIs(t, err, service.ErrInvalidMessage)

	req, _, err := conn.ReadRequest()
	require.NoError(t, err)
	require.Nil(t, req)

	_, _, err = conn.ReadRequest()
	require.ErrorIs(t, err, io.EOF)
	require.True(t, service.IsWebSocketCloseError(err))
}

func TestWSSignalConnectionRejectsNonJSONPayload(t *testing.T) {
	data, err := msgpack.Marshal(map[string]interface{}{
		"event":     "ice-candidate",
		"to":        "CO_x",
		"candidate": math.Inf(1),
	})
	require.NoError(t, err)

	ws := &typesfakes.FakeWebsocketClient{}
	ws.ReadMessageReturns(websocket.BinaryMessage, data, nil)
	conn := service.NewWSSignalConnection(ws, time.Second)

	_, _, err = conn.ReadRequest()
	require.ErrorIs(t, err, service.ErrInvalidMessage)
}

func TestWSSignalConnectionEncodeFailure(t *testing.T) {
	ws := &typesfakes.FakeWebsocketClient{}
	conn := service.NewWSSignalConnection(ws, time.Second)

	_, err := conn.WriteResponse(&types.SignalResponse{Event: types.EventOffer, From: "CO_y", SDP: math.NaN()})
	require.ErrorIs(t, err, service.ErrEncodeFailed)
	require.False(t, service.IsWebSocketCloseError(err))
	require.Equal(t, 0, ws.WriteMessageCallCount())
}

func TestWSSignalConnectionControl(t *testing.T) {
	ws := &typesfakes.FakeWebsocketClient{}
	conn := service.NewWSSignalConnection(ws, time.Second)

	require.NoError(t, conn.WritePing())
	require.NoError(t, conn.WriteClose())
	require.Equal(t, 2, ws.WriteControlCallCount())
	msgType, _, _ := ws.WriteControlArgsForCall(0)
	require.Equal(t, websocket.PingMessage, msgType)
	msgType, _, _ = ws.WriteControlArgsForCall(1)
	require.Equal(t, websocket.CloseMessage, msgType)

	require.False(t, service.IsWebSocketCloseError(errors.New("boom")))
	require.True(t, service.IsWebSocketCloseError(&websocket.CloseError{Code: websocket.CloseGoingAway}))
}
