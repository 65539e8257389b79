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

package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	defaultLogger Logger = NewZapLogger(zap.NewNop())
	lock          sync.RWMutex
)

// InitFromConfig replaces the default logger. Falls back to a development
// logger when the config cannot be built.
func InitFromConfig(conf *Config, name string) {
	l, err := NewLogger(conf, name)
	if err != nil {
		dev, _ := zap.NewDevelopment()
		l = NewZapLogger(dev.Named(name))
		l.Warnw("could not build logger from config", err)
	}
	SetLogger(l)
}

func SetLogger(l Logger) {
	lock.Lock()
	defaultLogger = l
	lock.Unlock()
}

func GetLogger() Logger {
	lock.RLock()
	defer lock.RUnlock()
	return defaultLogger
}

func Debugw(msg string, keysAndValues ...interface{}) {
	GetLogger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetLogger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().Warnw(msg, err, keysAndValues...)
}

func Errorw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().Errorw(msg, err, keysAndValues...)
}
