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

package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/livekit/rendezvous-server/cmd/cli/client"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

var (
	RTCCommands = []*cli.Command{
		{
			Name:   "join",
			Usage:  "joins a room and prints every signal message received",
			Action: joinRoom,
			Flags: []cli.Flag{
				roomFlag,
				rtcHostFlag,
				&cli.BoolFlag{
					Name:  "msgpack",
					Usage: "send binary msgpack frames instead of JSON",
				},
				&cli.StringFlag{
					Name:  "origin",
					Usage: "Origin header to present to the server",
				},
			},
		},
	}
)

func joinRoom(c *cli.Context) error {
	roomID := c.String("room-id")
	host := c.String("host")
	opts := &client.Options{
		UseMsgpack: c.Bool("msgpack"),
		Origin:     c.String("origin"),
	}

	log := logger.GetLogger()
	log.Infow("connecting to Websocket signal", "host", host)
	conn, err := client.NewWebSocketConn(host, opts)
	if err != nil {
		return err
	}
	defer conn.Close()

	sc := client.NewSignalClient(conn, opts)
	sc.OnMessage = func(msg *types.SignalResponse) {
		PrintJSON(msg)
	}
	handleSignals(sc)

	go func() {
		if err := sc.WaitUntilConnected(); err != nil {
			log.Warnw("not connected", err)
			sc.Stop()
			return
		}
		log.Infow("connected, joining room", "connID", sc.ID(), "roomID", roomID)
		if err := sc.JoinRoom(roomID); err != nil {
			log.Errorw("could not join room", err)
			sc.Stop()
		}
	}()

	return sc.Run()
}

func handleSignals(sc *client.SignalClient) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		sig := <-sigChan
		logger.Infow("exit requested, leaving room", "signal", sig)
		sc.Stop()
	}()
}
