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
	"golang.org/x/net/context"
	"golang.org/x/sys/unix"
)

// Rename removes oldpath from the path index and inserts newpath
// pointing at the same inode, preserving the inode number. Overwriting an
// existing newpath is implicit; the orphaned inode, if any, is not
// garbage-collected.
func (p *Proc) Rename(ctx context.Context, oldpath, newpath string) int64 {
	return p.syscall(ctx, "Rename", func() (int64, *Error) {
		return p.rename(oldpath, newpath)
	})
}

// RenameAt ignores both dirfds and behaves like Rename.
func (p *Proc) RenameAt(ctx context.Context, olddirfd int, oldpath string, newdirfd int, newpath string) int64 {
	return p.syscall(ctx, "RenameAt", func() (int64, *Error) {
		return p.rename(oldpath, newpath)
	})
}

// RenameAt2 is RenameAt plus an ignored flags argument.
func (p *Proc) RenameAt2(ctx context.Context, olddirfd int, oldpath string, newdirfd int, newpath string, flags uint32) int64 {
	return p.syscall(ctx, "RenameAt2", func() (int64, *Error) {
		return p.rename(oldpath, newpath)
	})
}

func (p *Proc) rename(oldpath, newpath string) (int64, *Error) {
	op, np := p.resolve(oldpath), p.resolve(newpath)
	n, ok := p.fs.Lookup(op)
	if !ok {
		return 0, newErr("rename", ErrNotFound)
	}
	p.fs.index.Remove(op)
	p.fs.index.Insert(np, n)
	return 0, nil
}

// Link inserts newpath -> inode(oldpath) into the path index; the inode
// becomes reachable via two paths.
func (p *Proc) Link(ctx context.Context, oldpath, newpath string) int64 {
	return p.syscall(ctx, "Link", func() (int64, *Error) {
		return p.link(oldpath, newpath)
	})
}

// LinkAt ignores both dirfds and behaves like Link.
func (p *Proc) LinkAt(ctx context.Context, olddirfd int, oldpath string, newdirfd int, newpath string, flags int32) int64 {
	return p.syscall(ctx, "LinkAt", func() (int64, *Error) {
		return p.link(oldpath, newpath)
	})
}

func (p *Proc) link(oldpath, newpath string) (int64, *Error) {
	op, np := p.resolve(oldpath), p.resolve(newpath)
	n, ok := p.fs.Lookup(op)
	if !ok {
		return 0, newErr("link", ErrNotFound)
	}
	p.fs.index.Insert(np, n)
	return 0, nil
}

// Unlink removes path from the path index, failing if it resolves to a
// directory. The inode and its payload are never deleted: this system
// does not track link counts, so storage accumulates until process exit.
func (p *Proc) Unlink(ctx context.Context, path string) int64 {
	return p.syscall(ctx, "Unlink", func() (int64, *Error) {
		return p.unlink(path)
	})
}

// UnlinkAt ignores dirfd and behaves like Unlink, unless flags requests
// directory removal, in which case it behaves like Rmdir.
func (p *Proc) UnlinkAt(ctx context.Context, dirfd int, path string, flags int32) int64 {
	return p.syscall(ctx, "UnlinkAt", func() (int64, *Error) {
		if flags&unix.AT_REMOVEDIR != 0 {
			pp := p.resolve(path)
			in, err := p.lookupInode("unlinkat", pp)
			if err != nil {
				return 0, err
			}
			if !in.IsDir() {
				return 0, newErr("unlinkat", ErrNotADirectory)
			}
			if len(p.fs.index.Children(pp)) > 0 {
				return 0, newErr("unlinkat", ErrDirectoryNotEmpty)
			}
			p.fs.index.Remove(pp)
			return 0, nil
		}
		return p.unlink(path)
	})
}

func (p *Proc) unlink(path string) (int64, *Error) {
	pp := p.resolve(path)
	in, err := p.lookupInode("unlink", pp)
	if err != nil {
		return 0, err
	}
	if in.IsDir() {
		return 0, newErr("unlink", ErrIsADirectory)
	}
	p.fs.index.Remove(pp)
	return 0, nil
}

// Symlink allocates a new symlink inode carrying target verbatim and
// registers linkpath.
func (p *Proc) Symlink(ctx context.Context, target, linkpath string) int64 {
	return p.syscall(ctx, "Symlink", func() (int64, *Error) {
		pp := p.resolve(linkpath)
		if _, ok := p.fs.Lookup(pp); ok {
			return 0, newErr("symlink", ErrExists)
		}
		p.fs.CreateSymlink(pp, target)
		return 0, nil
	})
}

// SymlinkAt ignores dirfd and behaves like Symlink.
func (p *Proc) SymlinkAt(ctx context.Context, target string, dirfd int, linkpath string) int64 {
	return p.Symlink(ctx, target, linkpath)
}

// Readlink copies up to len(buf) bytes of path's symlink target into buf,
// returning the number of bytes written; fails if path is not a symlink.
func (p *Proc) Readlink(ctx context.Context, path string, buf []byte) int64 {
	return p.syscall(ctx, "Readlink", func() (int64, *Error) {
		in, err := p.lookupInode("readlink", p.resolve(path))
		if err != nil {
			return 0, err
		}
		if !in.IsSymlink() {
			return 0, newErr("readlink", ErrInvalidArgument)
		}
		n := copy(buf, in.SymlinkTarget)
		return int64(n), nil
	})
}

// ReadlinkAt ignores dirfd and behaves like Readlink.
func (p *Proc) ReadlinkAt(ctx context.Context, dirfd int, path string, buf []byte) int64 {
	return p.Readlink(ctx, path, buf)
}
