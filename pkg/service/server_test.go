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
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/service"
)

func newTestServer(t *testing.T, mutate func(conf *config.Config)) (*service.RendezvousServer, *httptest.Server) {
	conf := config.DefaultConfig
	conf.Development = true
	if mutate != nil {
		mutate(&conf)
	}
	s, err := service.InitializeServer(&conf, "ND_test")
	require.NoError(t, err)

	ts := httptest.NewServer(s.HTTPHandler())
	t.Cleanup(ts.Close)
	return s, ts
}

func dialSignal(t *testing.T, ts *httptest.Server) (*websocket.Conn, types.ConnectionID) {
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/rtc"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	msg := readSignal(t, conn)
	require.Equal(t, types.EventConnected, msg.Event)
	require.NotEmpty(t, msg.UserID)
	return conn, msg.UserID
}

func readSignal(t *testing.T, conn *websocket.Conn) *types.SignalResponse {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msg := &types.SignalResponse{}
	require.NoError(t, conn.ReadJSON(msg))
	return msg
}

func TestSignalOverWebsocket(t *testing.T) {
	_, ts := newTestServer(t, nil)

	x, xID := dialSignal(t, ts)
	y, yID := dialSignal(t, ts)

	require.NoError(t, x.WriteJSON(map[string]string{"event": "join-room", "roomId": "call-42"}))
	msg := readSignal(t, x)
	require.Equal(t, types.EventRoomUsers, msg.Event)
	require.Empty(t, msg.Users)

	require.NoError(t, y.WriteJSON(map[string]string{"event": "join-room", "roomId": "call-42"}))
	msg = readSignal(t, y)
	require.Equal(t, types.EventRoomUsers, msg.Event)
	require.Equal(t, []types.ConnectionID{xID}, msg.Users)

	msg = readSignal(t, x)
	require.Equal(t, types.EventUserJoined, msg.Event)
	require.Equal(t, yID, msg.UserID)

	// malformed frames are skipped without dropping the connection
	require.NoError(t, y.WriteMessage(websocket.TextMessage, []byte("{")))
	require.NoError(t, y.WriteJSON(map[string]interface{}{
		"event": "offer",
		"to":    xID,
		"sdp":   map[string]string{"type": "offer", "sdp": "v=0"},
	}))
	msg = readSignal(t, x)
	require.Equal(t, types.EventOffer, msg.Event)
	require.Equal(t, yID, msg.From)
	require.Equal(t, map[string]interface{}{"type": "offer", "sdp": "v=0"}, msg.SDP)

	require.NoError(t, y.Close())
	msg = readSignal(t, x)
	require.Equal(t, types.EventUserDisconnected, msg.Event)
	require.Equal(t, yID, msg.UserID)
	require.Equal(t, "call-42", msg.RoomID)
}

func TestUnencodablePayloadKeepsPeerConnected(t *testing.T) {
	_, ts := newTestServer(t, nil)

	x, xID := dialSignal(t, ts)
	y, yID := dialSignal(t, ts)

	require.NoError(t, x.WriteJSON(map[string]string{"event": "join-room", "roomId": "r"}))
	require.Equal(t, types.EventRoomUsers, readSignal(t, x).Event)
	require.NoError(t, y.WriteJSON(map[string]string{"event": "join-room", "roomId": "r"}))
	require.Equal(t, types.EventRoomUsers, readSignal(t, y).Event)
	require.Equal(t, types.EventUserJoined, readSignal(t, x).Event)

	// NaN has no JSON representation
	data, err := msgpack.Marshal(map[string]interface{}{
		"event": "offer",
		"to":    string(xID),
		"sdp":   math.NaN(),
	})
	require.NoError(t, err)
	require.NoError(t, y.WriteMessage(websocket.BinaryMessage, data))

	require.NoError(t, y.WriteJSON(map[string]interface{}{
		"event": "offer",
		"to":    xID,
		"sdp":   "v=0",
	}))
	msg := readSignal(t, x)
	require.Equal(t, types.EventOffer, msg.Event)
	require.Equal(t, yID, msg.From)
	require.Equal(t, "v=0", msg.SDP)

	require.NoError(t, x.WriteJSON(map[string]interface{}{
		"event":     "ice-candidate",
		"to":        yID,
		"candidate": "candidate:1",
	}))
	msg = readSignal(t, y)
	require.Equal(t, types.EventICECandidate, msg.Event)
	require.Equal(t, xID, msg.From)
}

func TestOriginRejected(t *testing.T) {
	_, ts := newTestServer(t, func(conf *config.Config) {
		conf.Signal.AllowedOrigins = []string{"https://app.example.com"}
	})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/rtc"

	header := http.Header{}
	header.Set("Origin", "https://evil.example.com")
	_, res, err := websocket.DefaultDialer.Dial(url, header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	header.Set("Origin", "https://app.example.com")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	_ = conn.Close()
}

func TestHealthAndDebugRooms(t *testing.T) {
	_, ts := newTestServer(t, nil)

	res, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "OK", string(body))

	conn, connID := dialSignal(t, ts)
	require.NoError(t, conn.WriteJSON(map[string]string{"event": "join-room", "roomId": "call-42"}))
	readSignal(t, conn)

	require.Eventually(t, func() bool {
		res, err := http.Get(ts.URL + "/debug/rooms")
		if err != nil {
			return false
		}
		defer res.Body.Close()

		var rooms struct {
			NodeID string `json:"nodeId"`
			Rooms  []struct {
				RoomID  string   `json:"roomId"`
				Members []string `json:"members"`
			} `json:"rooms"`
		}
		if err := json.NewDecoder(res.Body).Decode(&rooms); err != nil {
			return false
		}
		return rooms.NodeID == "ND_test" &&
			len(rooms.Rooms) == 1 &&
			rooms.Rooms[0].RoomID == "call-42" &&
			len(rooms.Rooms[0].Members) == 1 &&
			rooms.Rooms[0].Members[0] == string(connID)
	}, 2*time.Second, 20*time.Millisecond)
}

func TestDebugRoomsDisabledInProduction(t *testing.T) {
	_, ts := newTestServer(t, func(conf *config.Config) {
		conf.Development = false
	})
	res, err := http.Get(ts.URL + "/debug/rooms")
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServerStartStop(t *testing.T) {
	conf := config.DefaultConfig
	conf.Port = 0
	conf.BindAddresses = []string{"127.0.0.1"}
	s, err := service.InitializeServer(&conf, "ND_test")
	require.NoError(t, err)
	require.Equal(t, service.NodeID("ND_test"), s.Node())

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()
	require.Eventually(t, s.IsRunning, time.Second, 10*time.Millisecond)

	s.Stop(true)
	require.False(t, s.IsRunning())
	select {
	case err := <-errChan:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
