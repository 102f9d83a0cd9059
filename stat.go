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

// Stat is the C-layout structure populated by the stat(2) family: field
// order and widths match a typical libc's expectation.
// The ABI shim embedding this package is responsible for writing it into
// guest memory at the caller-supplied buffer; this package only fills in
// the Go-side value.
type Stat struct {
	Dev     uint64
	Ino     uint64
	Mode    uint32
	Nlink   uint32
	Uid     uint32
	Gid     uint32
	Rdev    uint64
	Size    int64
	Blksize int64
	Blocks  int64
	Atime   int64
	Mtime   int64
	Ctime   int64
}

const statBlockSize = 4096
const statSectorSize = 512

func statFromInode(in *Inode) Stat {
	blocks := (int64(in.Size) + statSectorSize - 1) / statSectorSize
	return Stat{
		Ino:     in.Number,
		Mode:    in.fileTypeBits() | in.Permissions.Mode(),
		Nlink:   1,
		Uid:     in.UserID,
		Gid:     in.GroupID,
		Size:    int64(in.Size),
		Blksize: statBlockSize,
		Blocks:  blocks,
		Atime:   int64(in.Atime),
		Mtime:   int64(in.Mtime),
		Ctime:   int64(in.Ctime),
	}
}
