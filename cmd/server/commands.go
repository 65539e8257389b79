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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
	"github.com/livekit/rendezvous-server/pkg/service"
)

func listRooms(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}

	store, err := service.InitializeRoomStore(conf)
	if err != nil {
		return errors.Wrap(err, "could not open room store")
	}

	ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()
	rooms, err := store.ListRooms(ctx)
	if err != nil {
		return err
	}

	renderRooms(os.Stdout, rooms, time.Now())
	return nil
}

func renderRooms(out io.Writer, rooms []*types.RoomInfo, now time.Time) {
	table := tablewriter.NewWriter(out)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"Room",
		"Members",
		"Created",
		"Empty Since",
		"Cleanup Pending",
		"Node",
	})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, room := range rooms {
		table.Append(roomRow(room, now))
	}
	table.Render()
}

func roomRow(room *types.RoomInfo, now time.Time) []string {
	members := make([]string, 0, len(room.Members))
	for _, m := range room.Members {
		members = append(members, string(m))
	}

	emptySince := "-"
	if len(room.Members) == 0 && !room.EmptySince.IsZero() {
		emptySince = humanize.RelTime(room.EmptySince, now, "ago", "from now")
	}

	return []string{
		room.RoomID,
		strings.Join(members, "\n"),
		humanize.RelTime(room.CreatedAt, now, "ago", "from now"),
		emptySince,
		fmt.Sprintf("%t", room.CleanupPending),
		room.NodeID,
	}
}

func printPorts(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}

	fmt.Println("TCP Ports")
	fmt.Printf("%d - HTTP service (signal websocket at /rtc)\n", conf.Port)
	if conf.PrometheusPort != 0 {
		fmt.Printf("%d - Prometheus metrics\n", conf.PrometheusPort)
	}
	return nil
}

func helpVerbose(c *cli.Context) error {
	generatedFlags, err := config.GenerateCLIFlags(baseFlags, false)
	if err != nil {
		return err
	}

	c.App.Flags = append(baseFlags, generatedFlags...)
	return cli.ShowAppHelp(c)
}
