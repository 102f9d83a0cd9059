// Copyright 2015 Google Inc. All Rights Reserved.
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

package vfs

import (
	"time"

	"github.com/jacobsa/timeutil"
)

// zeroClock implements timeutil.Clock by always returning the zero time.
// Timestamps are an external input; when the embedding host supplies no
// clock, they remain 0 rather than tracking wall-clock time.
type zeroClock struct{}

func (zeroClock) Now() time.Time { return time.Time{} }

var _ timeutil.Clock = zeroClock{}

func timestamp(clock timeutil.Clock) uint64 {
	t := clock.Now()
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}
