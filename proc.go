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

	"github.com/jacobsa/reqtrace"
	"github.com/jacobsa/syncutil"
	"github.com/jacobsa/timeutil"
	"golang.org/x/net/context"
)

// Proc is the single unit of process state: a FileSystem plus a
// fixed-width FD table and the umask that governs new file/directory
// permissions. Every syscall-shaped method hangs off Proc and acquires mu
// exclusively for its entire body — each syscall-shaped entry point gets
// exclusive access to the whole Proc, rather than to a per-inode or
// per-filesystem lock.
type Proc struct {
	mu syncutil.InvariantMutex

	fs    *FileSystem // GUARDED_BY(mu)
	fdt   *fdTable     // GUARDED_BY(mu)
	umask uint32       // GUARDED_BY(mu)
	sink  *lineSink    // GUARDED_BY(mu)
}

// NewProc builds a Proc with just the root directory present and FDs 0-2
// pre-opened against the console. It lives for the host's lifetime; lazy
// construction on first syscall is the embedding ABI shim's
// responsibility, and this is the constructor it calls. A nil clock
// yields zero timestamps throughout (see zeroClock); a nil sink discards
// everything written to FD 1.
func NewProc(clock timeutil.Clock, sink HostLineWriter) *Proc {
	if clock == nil {
		clock = zeroClock{}
	}

	p := &Proc{
		fs:    newFileSystem(clock),
		fdt:   newFDTable(),
		umask: defaultUmask,
		sink:  newLineSink(sink),
	}
	p.mu = syncutil.NewInvariantMutex(p.checkInvariants)
	return p
}

// checkInvariants extends FileSystem.checkInvariants with the FD table's
// own consistency rule: every occupied non-console slot must reference a
// still-allocated inode.
func (p *Proc) checkInvariants() {
	p.fs.checkInvariants()

	for fd, h := range p.fdt.handles {
		if h == nil || h.console {
			continue
		}
		if p.fs.Inode(h.InodeNumber) == nil {
			panic(fmt.Sprintf("fd %d references unallocated inode %d", fd, h.InodeNumber))
		}
	}
}

// resolve turns a possibly-relative path string into an absolute Path by
// joining it against the current working directory when it doesn't
// already start with "/". Must be called with mu held.
func (p *Proc) resolve(path string) Path {
	pp := Path(path)
	if pp.IsAbsolute() {
		return pp
	}
	return p.fs.currentDirectory.Join(pp)
}

// syscall centralizes locking, reqtrace span management, and debug
// logging for every syscall-shaped method, and collapses fn's (value,
// *Error) result to the -1 sentinel contract of spec.md §4.4/§7. This is
// the generalized descendant of the teacher's commonOp, which does the
// same bookkeeping (context/tracing/logging) around each FUSE op.
func (p *Proc) syscall(ctx context.Context, name string, fn func() (int64, *Error)) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, report := reqtrace.StartSpan(ctx, name)

	v, err := fn()
	if err != nil {
		report(err)
		getLogger().Printf("%s -> error: %v", name, err)
		return -1
	}

	report(nil)
	getLogger().Printf("%s -> %d", name, v)
	return v
}

// lookupOpenHandle fetches the handle for fd, returning an EBADF-flavored
// ErrNotFound if fd is out of range or unused. Must be called with mu
// held.
func (p *Proc) lookupOpenHandle(op string, fd int) (*OpenFileHandle, *Error) {
	h := p.fdt.get(fd)
	if h == nil {
		return nil, newErr(op, ErrNotFound)
	}
	return h, nil
}

// lookupInode resolves path to its inode, or ErrNotFound if no path-index
// entry exists. Must be called with mu held.
func (p *Proc) lookupInode(op string, path Path) (*Inode, *Error) {
	n, ok := p.fs.Lookup(path)
	if !ok {
		return nil, newErr(op, ErrNotFound)
	}
	in := p.fs.Inode(n)
	if in == nil {
		return nil, newErr(op, ErrNotFound)
	}
	return in, nil
}

// lookupParent resolves path's parent directory inode, failing with
// ErrNotFound if path has no parent or the parent doesn't exist, and
// ErrNotADirectory if the parent isn't a directory. Must be called with
// mu held.
func (p *Proc) lookupParent(op string, path Path) (*Inode, *Error) {
	parent, ok := path.Parent()
	if !ok {
		return nil, newErr(op, ErrNotFound)
	}
	in, err := p.lookupInode(op, parent)
	if err != nil {
		return nil, err
	}
	if !in.IsDir() {
		return nil, newErr(op, ErrNotADirectory)
	}
	return in, nil
}
