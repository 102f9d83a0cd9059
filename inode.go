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

// InodeKind is a tagged variant distinguishing what an Inode stands for.
// SymbolicLink carries its target path; File and Directory carry none (the
// payload lives in the file-data map, keyed by inode number, per spec.md
// §3).
type InodeKind int

const (
	KindFile InodeKind = iota
	KindDirectory
	KindSymlink
)

func (k InodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Inode is a metadata record for a file, directory, or symlink, addressed
// by Number, which also indexes FileSystem.inodes (invariant: an inode's
// position in that slice equals its Number). Payload bytes are not held
// here; they live in FileSystem's file-data map, keyed by Number.
type Inode struct {
	Number      uint64
	Size        uint64
	Permissions Permissions
	UserID      uint32
	GroupID     uint32
	Ctime       uint64
	Mtime       uint64
	Atime       uint64
	Kind        InodeKind

	// SymlinkTarget is meaningful only when Kind == KindSymlink; it is the
	// verbatim target string passed to symlink(2), never resolved.
	SymlinkTarget string
}

// IsDir reports whether in is a directory inode.
func (in *Inode) IsDir() bool { return in.Kind == KindDirectory }

// IsSymlink reports whether in is a symlink inode.
func (in *Inode) IsSymlink() bool { return in.Kind == KindSymlink }

// IsFile reports whether in is a regular file inode.
func (in *Inode) IsFile() bool { return in.Kind == KindFile }

// fileTypeBits returns the stat(2) file-type bits for in's kind, per
// spec.md §4.4: 0o100000 regular, 0o040000 directory, 0o120000 symlink.
func (in *Inode) fileTypeBits() uint32 {
	switch in.Kind {
	case KindDirectory:
		return 0o040000
	case KindSymlink:
		return 0o120000
	default:
		return 0o100000
	}
}

// direntType returns the getdents(2) d_type tag for in's kind: 8 regular,
// 4 directory, 10 symlink.
func (in *Inode) direntType() byte {
	switch in.Kind {
	case KindDirectory:
		return 4
	case KindSymlink:
		return 10
	default:
		return 8
	}
}
