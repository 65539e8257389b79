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

package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/livekit/rendezvous-server/pkg/logger"
)

const (
	generatedCLIFlagUsage = "generated"
	envVarPrefix          = "RENDEZVOUS"
)

var (
	ErrInvalidEmptyTimeout = errors.New("room.empty_timeout must be greater than 0")
	ErrInvalidPongWait     = errors.New("signal.pong_wait must be greater than signal.ping_interval")
	ErrInvalidQueueSize    = errors.New("signal.send_queue_size must be greater than 0")
)

type Config struct {
	Port           uint32        `yaml:"port,omitempty"`
	BindAddresses  []string      `yaml:"bind_addresses,omitempty"`
	PrometheusPort uint32        `yaml:"prometheus_port,omitempty"`
	Development    bool          `yaml:"development,omitempty"`
	Room           RoomConfig    `yaml:"room,omitempty"`
	Signal         SignalConfig  `yaml:"signal,omitempty"`
	Redis          RedisConfig   `yaml:"redis,omitempty"`
	Logging        logger.Config `yaml:"logging,omitempty"`
}

type RoomConfig struct {
	// seconds an empty room is kept before it is deleted
	EmptyTimeout          uint32 `yaml:"empty_timeout,omitempty"`
	MaxRoomIDLength       int    `yaml:"max_room_id_length,omitempty"`
	MaxRoomsPerConnection int    `yaml:"max_rooms_per_connection,omitempty"`
}

func (c *RoomConfig) EmptyTimeoutDuration() time.Duration {
	return time.Duration(c.EmptyTimeout) * time.Second
}

type SignalConfig struct {
	// allowed values of the Origin header for websocket upgrades. empty or "*" allows all
	AllowedOrigins []string      `yaml:"allowed_origins,omitempty"`
	PingInterval   time.Duration `yaml:"ping_interval,omitempty"`
	PongWait       time.Duration `yaml:"pong_wait,omitempty"`
	WriteWait      time.Duration `yaml:"write_wait,omitempty"`
	MaxMessageSize int64         `yaml:"max_message_size,omitempty"`
	SendQueueSize  int           `yaml:"send_queue_size,omitempty"`
}

type RedisConfig struct {
	Address  string `yaml:"address,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

func (r *RedisConfig) IsConfigured() bool {
	return r.Address != ""
}

var DefaultConfig = Config{
	Port: 7880,
	Room: RoomConfig{
		EmptyTimeout:    60,
		MaxRoomIDLength: 256,
	},
	Signal: SignalConfig{
		PingInterval:   10 * time.Second,
		PongWait:       60 * time.Second,
		WriteWait:      10 * time.Second,
		MaxMessageSize: 64 * 1024,
		SendQueueSize:  256,
	},
	Logging: logger.Config{
		Level: "info",
	},
}

func NewConfig(confString string, strictMode bool, c *cli.Context, baseFlags []cli.Flag) (*Config, error) {
	// start with defaults
	marshalled, err := yaml.Marshal(&DefaultConfig)
	if err != nil {
		return nil, err
	}

	var conf Config
	err = yaml.Unmarshal(marshalled, &conf)
	if err != nil {
		return nil, err
	}

	if confString != "" {
		decoder := yaml.NewDecoder(strings.NewReader(confString))
		decoder.KnownFields(strictMode)
		if err := decoder.Decode(&conf); err != nil {
			return nil, fmt.Errorf("could not parse config: %v", err)
		}
	}

	if c != nil {
		if err := conf.updateFromCLI(c, baseFlags); err != nil {
			return nil, err
		}
	}

	if conf.Development && conf.Logging.Level == DefaultConfig.Logging.Level {
		conf.Logging.Level = "debug"
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) Validate() error {
	if conf.Room.EmptyTimeout == 0 {
		return ErrInvalidEmptyTimeout
	}
	if conf.Signal.PongWait <= conf.Signal.PingInterval {
		return ErrInvalidPongWait
	}
	if conf.Signal.SendQueueSize <= 0 {
		return ErrInvalidQueueSize
	}
	return nil
}

// OriginAllowed reports whether a websocket upgrade from origin is accepted.
// Requests without an Origin header come from non-browser clients and are allowed.
func (s *SignalConfig) OriginAllowed(origin string) bool {
	if origin == "" || len(s.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range s.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

type configNode struct {
	TypeNode  reflect.Value
	TagPrefix string
}

func (conf *Config) ToCLIFlagNames(existingFlags []cli.Flag) map[string]reflect.Value {
	existingFlagNames := map[string]bool{}
	for _, flag := range existingFlags {
		for _, flagName := range flag.Names() {
			existingFlagNames[flagName] = true
		}
	}

	flagNames := map[string]reflect.Value{}
	var currNode configNode
	nodes := []configNode{{reflect.ValueOf(conf).Elem(), ""}}
	for len(nodes) > 0 {
		currNode, nodes = nodes[0], nodes[1:]
		for i := 0; i < currNode.TypeNode.NumField(); i++ {
			// inspect yaml tag from struct field to get path
			field := currNode.TypeNode.Type().Field(i)
			yamlTag := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if yamlTag == "" || yamlTag == "-" {
				continue
			}
			yamlPath := yamlTag
			if currNode.TagPrefix != "" {
				yamlPath = fmt.Sprintf("%s.%s", currNode.TagPrefix, yamlTag)
			}
			if existingFlagNames[yamlPath] {
				continue
			}

			// map flag name to value
			value := currNode.TypeNode.Field(i)
			if value.Kind() == reflect.Struct {
				nodes = append(nodes, configNode{value, yamlPath})
			} else {
				flagNames[yamlPath] = value
			}
		}
	}

	return flagNames
}

var durationType = reflect.TypeOf(time.Duration(0))

func GenerateCLIFlags(existingFlags []cli.Flag, hidden bool) ([]cli.Flag, error) {
	blankConfig := &Config{}
	flags := make([]cli.Flag, 0)
	for name, value := range blankConfig.ToCLIFlagNames(existingFlags) {
		envVar := fmt.Sprintf("%s_%s", envVarPrefix, strings.ToUpper(strings.ReplaceAll(name, ".", "_")))

		var flag cli.Flag
		switch {
		case value.Type() == durationType:
			flag = &cli.DurationFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.Bool:
			flag = &cli.BoolFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.String:
			flag = &cli.StringFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.Int, value.Kind() == reflect.Int32:
			flag = &cli.IntFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.Int64:
			flag = &cli.Int64Flag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.Uint32:
			flag = &cli.UintFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		case value.Kind() == reflect.Slice:
			if value.Type().Elem().Kind() != reflect.String {
				continue
			}
			flag = &cli.StringSliceFlag{
				Name:    name,
				EnvVars: []string{envVar},
				Usage:   generatedCLIFlagUsage,
				Hidden:  hidden,
			}
		default:
			return flags, fmt.Errorf("cli flag generation unsupported for config type: %s is a %s", name, value.Kind().String())
		}

		flags = append(flags, flag)
	}

	return flags, nil
}

func (conf *Config) updateFromCLI(c *cli.Context, baseFlags []cli.Flag) error {
	generatedFlagNames := conf.ToCLIFlagNames(baseFlags)
	for _, flag := range c.App.Flags {
		flagName := flag.Names()[0]
		if !c.IsSet(flagName) {
			continue
		}

		configValue, ok := generatedFlagNames[flagName]
		if !ok {
			continue
		}

		switch {
		case configValue.Type() == durationType:
			configValue.SetInt(int64(c.Duration(flagName)))
		case configValue.Kind() == reflect.Bool:
			configValue.SetBool(c.Bool(flagName))
		case configValue.Kind() == reflect.String:
			configValue.SetString(c.String(flagName))
		case configValue.Kind() == reflect.Int, configValue.Kind() == reflect.Int32, configValue.Kind() == reflect.Int64:
			configValue.SetInt(c.Int64(flagName))
		case configValue.Kind() == reflect.Uint32:
			configValue.SetUint(c.Uint64(flagName))
		case configValue.Kind() == reflect.Slice:
			configValue.Set(reflect.ValueOf(c.StringSlice(flagName)))
		default:
			return fmt.Errorf("unsupported generated cli flag type for config: %s is a %s", flagName, configValue.Kind().String())
		}
	}

	if c.IsSet("dev") {
		conf.Development = c.Bool("dev")
	}
	if c.IsSet("redis-host") {
		conf.Redis.Address = c.String("redis-host")
	}
	if c.IsSet("redis-password") {
		conf.Redis.Password = c.String("redis-password")
	}
	if c.IsSet("bind") {
		conf.BindAddresses = c.StringSlice("bind")
	}
	return nil
}
