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

// The following are accepted but implemented as no-ops, per spec.md §4.4:
// this system has no real pages to lock or map, no multi-process lock
// table, and no durability boundary to flush across, since everything
// lives in process memory already. Each still goes through the ordinary
// locking/tracing/logging path so callers see consistent behavior (and so
// a future implementation can fill one in without changing its call
// shape).
func (p *Proc) noop(ctx context.Context, name string) int64 {
	return p.syscall(ctx, name, func() (int64, *Error) { return 0, nil })
}

func (p *Proc) Flock(ctx context.Context, fd int, operation int32) int64 {
	return p.noop(ctx, "Flock")
}

func (p *Proc) Mmap(ctx context.Context, addr uintptr, length int, prot, flags int32, fd int, offset int64) int64 {
	return p.noop(ctx, "Mmap")
}

func (p *Proc) Munmap(ctx context.Context, addr uintptr, length int) int64 {
	return p.noop(ctx, "Munmap")
}

func (p *Proc) Mprotect(ctx context.Context, addr uintptr, length int, prot int32) int64 {
	return p.noop(ctx, "Mprotect")
}

func (p *Proc) Mlock(ctx context.Context, addr uintptr, length int) int64 {
	return p.noop(ctx, "Mlock")
}

func (p *Proc) Munlock(ctx context.Context, addr uintptr, length int) int64 {
	return p.noop(ctx, "Munlock")
}

func (p *Proc) Msync(ctx context.Context, addr uintptr, length int, flags int32) int64 {
	return p.noop(ctx, "Msync")
}

func (p *Proc) Sync(ctx context.Context) int64 {
	return p.noop(ctx, "Sync")
}

func (p *Proc) Fsync(ctx context.Context, fd int) int64 {
	return p.noop(ctx, "Fsync")
}

func (p *Proc) Fdatasync(ctx context.Context, fd int) int64 {
	return p.noop(ctx, "Fdatasync")
}

func (p *Proc) Syncfs(ctx context.Context, fd int) int64 {
	return p.noop(ctx, "Syncfs")
}

// inotify_* has no backing implementation at all (there is nothing to
// watch: the whole tree is already in this process's memory), so it
// reports failure rather than a hollow success, per spec.md §4.4.
func (p *Proc) unsupported(ctx context.Context, name string) int64 {
	return p.syscall(ctx, name, func() (int64, *Error) { return 0, newErr(name, ErrUnsupported) })
}

func (p *Proc) InotifyInit(ctx context.Context) int64 {
	return p.unsupported(ctx, "InotifyInit")
}

func (p *Proc) InotifyAddWatch(ctx context.Context, fd int, path string, mask uint32) int64 {
	return p.unsupported(ctx, "InotifyAddWatch")
}

func (p *Proc) InotifyRmWatch(ctx context.Context, fd, wd int) int64 {
	return p.unsupported(ctx, "InotifyRmWatch")
}
