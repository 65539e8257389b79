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

package testutils

import (
	"testing"
	"time"
)

var (
	WaitTimeout = 5 * time.Second
	WaitTick    = 10 * time.Millisecond
)

// WithTimeout polls f until it reports no problem. f returns a description of
// what is still missing, or an empty string once the expected state is reached.
func WithTimeout(t *testing.T, f func() string) {
	t.Helper()
	deadline := time.NewTimer(WaitTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(WaitTick)
	defer ticker.Stop()

	lastErr := ""
	for {
		select {
		case <-deadline.C:
			t.Fatalf("did not reach expected state after %v: %s", WaitTimeout, lastErr)
		case <-ticker.C:
			if lastErr = f(); lastErr == "" {
				return
			}
		}
	}
}
