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

//go:build wireinject
// +build wireinject

package service

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/livekit/rendezvous-server/pkg/config"
	"github.com/livekit/rendezvous-server/pkg/rtc"
	"github.com/livekit/rendezvous-server/pkg/rtc/types"
)

func InitializeServer(conf *config.Config, nodeID NodeID) (*RendezvousServer, error) {
	wire.Build(
		getRoomConfig,
		getRedisConfig,
		NewRedisClient,
		createStore,
		rtc.NewConnectionRegistry,
		wire.Bind(new(types.ConnectionRegistry), new(*rtc.ConnectionRegistry)),
		rtc.NewRoomDirectory,
		wire.Bind(new(types.RoomDirectory), new(*rtc.RoomDirectory)),
		createReclaimer,
		wire.Bind(new(types.RoomReclaimer), new(*rtc.GraceReclaimer)),
		rtc.NewRendezvousHandler,
		NewRTCService,
		NewRoomStoreSyncer,
		NewRendezvousServer,
	)
	return &RendezvousServer{}, nil
}

func InitializeRoomStore(conf *config.Config) (RORoomStore, error) {
	wire.Build(
		getRedisConfig,
		NewRedisClient,
		createReadOnlyStore,
	)
	return nil, nil
}

func getRoomConfig(conf *config.Config) *config.RoomConfig {
	return &conf.Room
}

func getRedisConfig(conf *config.Config) *config.RedisConfig {
	return &conf.Redis
}

func createStore(rc redis.UniversalClient, nodeID NodeID) RoomStore {
	if rc != nil {
		return NewRedisRoomStore(rc, nodeID)
	}
	return NewLocalRoomStore()
}

func createReadOnlyStore(rc redis.UniversalClient) (RORoomStore, error) {
	if rc == nil {
		return nil, ErrRedisNotAvailable
	}
	return NewRedisRoomStore(rc, ""), nil
}

func createReclaimer(directory *rtc.RoomDirectory, conf *config.RoomConfig) *rtc.GraceReclaimer {
	return rtc.NewGraceReclaimer(directory, conf.EmptyTimeoutDuration())
}
