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
	"fmt"

	"github.com/jacobsa/timeutil"
)

// rootInodeNumber is reserved for "/".
const rootInodeNumber = 0

// FileSystem groups the inode table, the file-data map, and the path
// index, keeping them mutually consistent. It holds no lock of its own
// — every mutation is made under the single process-wide lock Proc.mu
// guards.
type FileSystem struct {
	clock timeutil.Clock

	// inodes is index-addressable by inode number: inodes[n].Number == n
	// for every live n. A freed inode's slot is never reused or removed;
	// nextInodeNumber must strictly exceed every number ever allocated,
	// so numbers are never recycled.
	inodes []*Inode

	nextInodeNumber uint64

	currentDirectory Path

	data  fileData
	index *pathIndex
}

// newFileSystem builds a FileSystem with just the root directory inode
// present; "/" (inode 0) is created during initialization.
func newFileSystem(clock timeutil.Clock) *FileSystem {
	fs := &FileSystem{
		clock:            clock,
		data:             make(fileData),
		index:            newPathIndex(),
		currentDirectory: rootPath,
	}

	now := timestamp(clock)
	root := &Inode{
		Number:      rootInodeNumber,
		Kind:        KindDirectory,
		Permissions: PermissionsFromMode(0o755),
		Ctime:       now,
		Mtime:       now,
		Atime:       now,
	}
	fs.inodes = append(fs.inodes, root)
	fs.nextInodeNumber = rootInodeNumber + 1
	fs.data[rootInodeNumber] = nil
	fs.index.Insert(rootPath, rootInodeNumber)

	return fs
}

// Lookup consults the path index only; it never auto-creates.
func (fs *FileSystem) Lookup(p Path) (uint64, bool) {
	return fs.index.Lookup(p)
}

// Inode returns the inode at the given number, or nil if it has never been
// allocated. Orphaned inodes (no remaining path-index entry) are still
// returned — they remain addressable through still-open FDs.
func (fs *FileSystem) Inode(number uint64) *Inode {
	if number >= uint64(len(fs.inodes)) {
		return nil
	}
	return fs.inodes[number]
}

func (fs *FileSystem) allocateInode(kind InodeKind, perms Permissions) *Inode {
	now := timestamp(fs.clock)
	in := &Inode{
		Number:      fs.nextInodeNumber,
		Kind:        kind,
		Permissions: perms,
		Ctime:       now,
		Mtime:       now,
		Atime:       now,
	}
	fs.nextInodeNumber++
	fs.inodes = append(fs.inodes, in)
	return in
}

// CreateFile allocates a new File inode, registers path in the path
// index, and installs an empty payload.
func (fs *FileSystem) CreateFile(path Path, mode uint32) *Inode {
	in := fs.allocateInode(KindFile, PermissionsFromMode(mode&0o777))
	fs.data[in.Number] = []byte{}
	fs.index.Insert(path, in.Number)
	return in
}

// CreateDirectory is analogous to CreateFile but with Directory kind and
// an empty payload: directory membership is derived from the path
// index, never from payload bytes.
func (fs *FileSystem) CreateDirectory(path Path, mode uint32) *Inode {
	in := fs.allocateInode(KindDirectory, PermissionsFromMode(mode&0o777))
	fs.data[in.Number] = []byte{}
	fs.index.Insert(path, in.Number)
	return in
}

// CreateSymlink allocates a symlink inode carrying target verbatim and
// registers linkPath only; symlinks carry no file-data payload.
func (fs *FileSystem) CreateSymlink(linkPath Path, target string) *Inode {
	in := fs.allocateInode(KindSymlink, PermissionsFromMode(0o777))
	in.SymlinkTarget = target
	fs.index.Insert(linkPath, in.Number)
	return in
}

// Payload returns the current byte payload for inode n.
func (fs *FileSystem) Payload(n uint64) []byte {
	return fs.data[n]
}

// setPayload replaces the payload for inode n and keeps in.Size consistent
// with the stored bytes.
func (fs *FileSystem) setPayload(in *Inode, b []byte) {
	fs.data[in.Number] = b
	in.Size = uint64(len(b))
}

// checkInvariants panics if the inode table, file-data map, or path index
// have drifted out of mutual consistency. It is wired into Proc.mu as an
// InvariantMutex check function, run on every lock and unlock.
func (fs *FileSystem) checkInvariants() {
	// inode 0 is a directory and corresponds to "/".
	root := fs.Inode(rootInodeNumber)
	if root == nil || !root.IsDir() {
		panic("root inode missing or not a directory")
	}
	if n, ok := fs.Lookup(rootPath); !ok || n != rootInodeNumber {
		panic("\"/\" does not resolve to inode 0")
	}

	// every path-index entry names an existing inode, and no path other
	// than "/" has a trailing slash.
	var violation error
	fs.index.Each(func(p Path, n uint64) {
		if violation != nil {
			return
		}
		if fs.Inode(n) == nil {
			violation = fmt.Errorf("path %q maps to nonexistent inode %d", p, n)
			return
		}
		if p.hasTrailingSlash() {
			violation = fmt.Errorf("path %q has a trailing slash", p)
		}
	})
	if violation != nil {
		panic(violation)
	}

	// file sizes match their payload lengths, and directories carry no
	// payload bytes.
	for _, in := range fs.inodes {
		if in == nil {
			continue
		}
		switch in.Kind {
		case KindFile:
			if uint64(len(fs.data[in.Number])) != in.Size {
				panic(fmt.Sprintf("inode %d: size %d != payload length %d", in.Number, in.Size, len(fs.data[in.Number])))
			}
		case KindDirectory:
			if len(fs.data[in.Number]) != 0 {
				panic(fmt.Sprintf("inode %d: directory has nonempty payload", in.Number))
			}
		}
	}

	// every allocated inode number stays below nextInodeNumber.
	for _, in := range fs.inodes {
		if in != nil && in.Number >= fs.nextInodeNumber {
			panic("nextInodeNumber does not exceed every allocated inode number")
		}
	}
}
