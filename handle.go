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

// OpenFileHandle is the mutable state attached to an open FD: which inode
// it refers to, its current I/O position, and whether it is in append
// mode. Unlike real POSIX dup(2), two handles created by Dup/Dup2 never
// share position after the call — see spec.md §5 and §9 for why this
// module deliberately does not reference-count a shared handle.
type OpenFileHandle struct {
	InodeNumber uint64
	Position    uint64
	AppendFlag  bool

	// console marks one of the three pre-opened reserved FDs (0, 1, 2).
	// Reads from a console handle return 0; writes to FD 2 are discarded;
	// writes to FD 1 go through Proc's line accumulator (see sink.go).
	// This is SPEC_FULL.md §9's decision for the otherwise-unspecified
	// behavior of the reserved FDs.
	console bool
}

func (h *OpenFileHandle) clone() *OpenFileHandle {
	cp := *h
	return &cp
}
