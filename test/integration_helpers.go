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

package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	testclient "github.com/livekit/rendezvous-server/cmd/cli/client"
	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/service"
	"github.com/livekit/rendezvous-server/pkg/testutils"
	"github.com/livekit/rendezvous-server/pkg/utils"
)

const (
	defaultServerPort = 17880
	testEmptyTimeout  = 1
	allowedOrigin     = "https://app.example.com"
)

func init() {
	logger.InitFromConfig(&logger.Config{Level: "debug"}, "test")
}

func setupSingleNodeTest(name string) (*service.RendezvousServer, func()) {
	logger.Infow("----------------STARTING TEST----------------", "test", name)
	s := createSingleNodeServer()
	go func() {
		if err := s.Start(); err != nil {
			logger.Errorw("server returned error", err)
		}
	}()

	waitForServerToStart(s)

	return s, func() {
		s.Stop(true)
		logger.Infow("----------------FINISHING TEST----------------", "test", name)
	}
}

func createSingleNodeServer() *service.RendezvousServer {
	conf, err := config.NewConfig("", true, nil, nil)
	if err != nil {
		panic(fmt.Sprintf("could not create config: %v", err))
	}
	conf.Port = defaultServerPort
	conf.BindAddresses = []string{"127.0.0.1"}
	conf.Development = true
	conf.Room.EmptyTimeout = testEmptyTimeout
	conf.Signal.AllowedOrigins = []string{allowedOrigin}

	s, err := service.InitializeServer(conf, service.NodeID(utils.NewGuid(utils.NodePrefix)))
	if err != nil {
		panic(fmt.Sprintf("could not create server: %v", err))
	}
	return s
}

func waitForServerToStart(s *service.RendezvousServer) {
	deadline := time.Now().Add(10 * time.Second)
	for !s.IsRunning() {
		if time.Now().After(deadline) {
			panic("could not start server after timeout")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// creates a client and runs it against the server
func createSignalClient(port int, opts *testclient.Options) *testclient.SignalClient {
	ws, err := testclient.NewWebSocketConn(fmt.Sprintf("ws://localhost:%d", port), opts)
	if err != nil {
		panic(err)
	}

	c := testclient.NewSignalClient(ws, opts)
	go func() {
		_ = c.Run()
	}()
	return c
}

func waitUntilConnected(t *testing.T, clients ...*testclient.SignalClient) {
	logger.Infow("waiting for clients to become connected")
	for _, c := range clients {
		if err := c.WaitUntilConnected(); err != nil {
			t.Fatal(err)
		}
	}
}

func stopClients(clients ...*testclient.SignalClient) {
	for _, c := range clients {
		c.Stop()
	}
}

func joinAndWait(t *testing.T, roomID string, clients ...*testclient.SignalClient) {
	for _, c := range clients {
		if err := c.JoinRoom(roomID); err != nil {
			t.Fatal(err)
		}
		testutils.WithTimeout(t, func() string {
			if _, ok := c.RemoteMembers(roomID); !ok {
				return fmt.Sprintf("%s did not receive room-users for %s", c.ID(), roomID)
			}
			return ""
		})
	}
}

type debugRoom struct {
	RoomID         string   `json:"roomId"`
	Members        []string `json:"members"`
	CleanupPending bool     `json:"cleanupPending"`
}

func listRooms(port int) (map[string]debugRoom, error) {
	res, err := http.Get(fmt.Sprintf("http://localhost:%d/debug/rooms", port))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body struct {
		Rooms []debugRoom `json:"rooms"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	rooms := make(map[string]debugRoom, len(body.Rooms))
	for _, r := range body.Rooms {
		rooms[r.RoomID] = r
	}
	return rooms, nil
}
