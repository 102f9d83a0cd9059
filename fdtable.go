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

// fdTable is a fixed-width array of maxOpenFiles slots; the slot index is
// the FD value. A nil slot is unused. Slots 0-2 are reserved for
// stdin/stdout/stderr and are never handed out by allocate(), mirroring
// the teacher's memFS.allocateInode free-list pattern but applied to FD
// numbers, which (unlike inode numbers) are never recycled onto the
// reserved range and whose allocation policy is "first unused slot from
// 3 upward" rather than a free list, per spec.md §4.3.
type fdTable struct {
	handles [maxOpenFiles]*OpenFileHandle
}

func newFDTable() *fdTable {
	t := &fdTable{}
	for fd := 0; fd < firstUserFD; fd++ {
		t.handles[fd] = &OpenFileHandle{console: true}
	}
	return t
}

// allocate scans from index firstUserFD upward, returning the first
// unused slot. Returns -1 if the table is full.
func (t *fdTable) allocate() int {
	for fd := firstUserFD; fd < maxOpenFiles; fd++ {
		if t.handles[fd] == nil {
			return fd
		}
	}
	return -1
}

func (t *fdTable) get(fd int) *OpenFileHandle {
	if fd < 0 || fd >= maxOpenFiles {
		return nil
	}
	return t.handles[fd]
}

func (t *fdTable) set(fd int, h *OpenFileHandle) {
	t.handles[fd] = h
}

func (t *fdTable) clear(fd int) {
	t.handles[fd] = nil
}
