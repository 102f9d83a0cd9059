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

import "golang.org/x/net/context"

// Mkdir fails if path already exists or its parent is missing/not a
// directory; otherwise allocates a Directory inode with permissions
// (mode & 0o777) &^ umask.
func (p *Proc) Mkdir(ctx context.Context, path string, mode uint32) int64 {
	return p.syscall(ctx, "Mkdir", func() (int64, *Error) {
		return p.mkdir(path, mode)
	})
}

// MkdirAt is Mkdir with dirfd ignored, per spec.md §6.
func (p *Proc) MkdirAt(ctx context.Context, dirfd int, path string, mode uint32) int64 {
	return p.syscall(ctx, "MkdirAt", func() (int64, *Error) {
		return p.mkdir(path, mode)
	})
}

func (p *Proc) mkdir(path string, mode uint32) (int64, *Error) {
	pp := p.resolve(path)
	if _, ok := p.fs.Lookup(pp); ok {
		return 0, newErr("mkdir", ErrExists)
	}
	if _, err := p.lookupParent("mkdir", pp); err != nil {
		return 0, err
	}
	p.fs.CreateDirectory(pp, (mode&0o777)&^p.umask)
	return 0, nil
}

// Rmdir fails if path is not indexed, not a directory, or has any child
// in the path index; on success it removes only the path-index entry.
func (p *Proc) Rmdir(ctx context.Context, path string) int64 {
	return p.syscall(ctx, "Rmdir", func() (int64, *Error) {
		pp := p.resolve(path)
		in, err := p.lookupInode("rmdir", pp)
		if err != nil {
			return 0, err
		}
		if !in.IsDir() {
			return 0, newErr("rmdir", ErrNotADirectory)
		}
		if len(p.fs.index.Children(pp)) > 0 {
			return 0, newErr("rmdir", ErrDirectoryNotEmpty)
		}
		p.fs.index.Remove(pp)
		return 0, nil
	})
}

// GetDents enumerates fd's directory children in path-index iteration
// order, starting at the handle's position (an entry index), writing
// fixed-size directory-entry records until the next one would not fit in
// buf. Returns the number of bytes written, 0 at end-of-directory.
func (p *Proc) GetDents(ctx context.Context, fd int, buf []byte) int64 {
	return p.syscall(ctx, "GetDents", func() (int64, *Error) {
		n, err := p.getdents("getdents", fd, buf)
		return int64(n), err
	})
}

// GetDents64 has the same semantics as GetDents and reuses its record
// layout.
func (p *Proc) GetDents64(ctx context.Context, fd int, buf []byte) int64 {
	return p.syscall(ctx, "GetDents64", func() (int64, *Error) {
		n, err := p.getdents("getdents64", fd, buf)
		return int64(n), err
	})
}

func (p *Proc) getdents(op string, fd int, buf []byte) (int, *Error) {
	h, err := p.lookupOpenHandle(op, fd)
	if err != nil {
		return 0, err
	}
	in, err := p.inodeForHandle(op, h)
	if err != nil {
		return 0, err
	}
	if !in.IsDir() {
		return 0, newErr(op, ErrNotADirectory)
	}

	dirPath, ok := p.fs.index.PathForInode(in.Number)
	if !ok {
		return 0, nil
	}

	children := p.fs.index.Children(dirPath)
	idx := int(h.Position)
	written := 0

	for idx < len(children) {
		c := children[idx]
		name, _ := c.path.FileName()
		if len(name) >= 256 {
			idx++
			continue
		}
		childInode := p.fs.Inode(c.inode)
		if childInode == nil {
			idx++
			continue
		}

		n := writeDirent(buf[written:], c.inode, int64(idx+1), childInode.direntType(), name)
		if n == 0 {
			break
		}
		written += n
		idx++
	}

	h.Position = uint64(idx)
	return written, nil
}
