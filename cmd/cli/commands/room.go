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
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var (
	RoomCommands = []*cli.Command{
		{
			Name:   "list-rooms",
			Usage:  "lists rooms on a server running in development mode",
			Action: listRooms,
			Flags: []cli.Flag{
				roomHostFlag,
				&cli.BoolFlag{
					Name:  "json",
					Usage: "print the raw response",
				},
			},
		},
	}
)

type roomsResponse struct {
	NodeID string `json:"nodeId"`
	Rooms  []struct {
		RoomID         string   `json:"roomId"`
		NodeID         string   `json:"nodeId"`
		Members        []string `json:"members"`
		CreatedAt      string   `json:"createdAt"`
		EmptySince     string   `json:"emptySince"`
		CleanupPending bool     `json:"cleanupPending"`
	} `json:"rooms"`
}

func listRooms(c *cli.Context) error {
	res, err := http.Get(strings.TrimSuffix(c.String("host"), "/") + "/debug/rooms")
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s, is it running with --dev?", res.Status)
	}

	rooms := roomsResponse{}
	if err := json.NewDecoder(res.Body).Decode(&rooms); err != nil {
		return err
	}
	if c.Bool("json") {
		PrintJSON(rooms)
		return nil
	}

	fmt.Printf("node %s\n", rooms.NodeID)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room", "Members", "Created", "Empty Since", "Cleanup", "Node"})
	for _, r := range rooms.Rooms {
		table.Append([]string{
			r.RoomID,
			strings.Join(r.Members, ", "),
			r.CreatedAt,
			r.EmptySince,
			fmt.Sprint(r.CleanupPending),
			r.NodeID,
		})
	}
	table.Render()
	return nil
}
