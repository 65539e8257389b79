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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/livekit/rendezvous-server/cmd/cli/commands"
	"github.com/livekit/rendezvous-server/pkg/logger"
	"github.com/livekit/rendezvous-server/version"
)

// command line util that exercises a running server
func main() {
	app := &cli.App{
		Name:    "rendezvous-cli",
		Version: version.Version,
	}

	app.Commands = append(app.Commands, commands.RoomCommands...)
	app.Commands = append(app.Commands, commands.RTCCommands...)

	logger.InitFromConfig(&logger.Config{Level: "debug"}, "rendezvous-cli")
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
	}
}
