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

// fileData maps an inode number to its byte payload. Files and directories
// both get an entry (directories always empty, since their contents are
// derived from the path index, not stored); symlinks get none.
type fileData map[uint64][]byte

func (fd fileData) grow(inode uint64, size int) []byte {
	buf := fd[inode]
	if len(buf) < size {
		buf = append(buf, make([]byte, size-len(buf))...)
		fd[inode] = buf
	}
	return buf
}
