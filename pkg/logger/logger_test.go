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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarnwAttachesError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core)).WithValues("connID", "CO_1")

	l.Warnw("relay failed", errors.New("boom"), "roomID", "call-42")
	l.Warnw("no error", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	require.Equal(t, "CO_1", fields["connID"])
	require.Equal(t, "call-42", fields["roomID"])
	require.Equal(t, "boom", fields["error"])
	require.NotContains(t, entries[1].ContextMap(), "error")
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	l, err := NewLogger(&Config{Level: "loud"}, "test")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(NewZapLogger(zap.New(core)))
	Debugw("hidden")
	Infow("shown", "k", "v")
	require.Equal(t, 1, logs.Len())
}
