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

package rtc

import "errors"

var (
	ErrEmptyRoomID   = errors.New("room id is empty")
	ErrRoomIDTooLong = errors.New("room id exceeds the maximum length")
	ErrTooManyRooms  = errors.New("connection has joined the maximum number of rooms")
	ErrNotRegistered = errors.New("connection is not registered")
	ErrMissingTarget = errors.New("relay target is empty")
	ErrUnknownEvent  = errors.New("unknown event")
)
