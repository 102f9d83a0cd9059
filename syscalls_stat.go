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

// Stat resolves path through the path index and populates a Stat record.
// LStat and FStatAt are operationally identical: lookups are already
// literal, never following symlinks, so there is nothing for Stat to
// resolve that LStat must not.
func (p *Proc) Stat(ctx context.Context, path string) (Stat, int64) {
	var out Stat
	rc := p.syscall(ctx, "Stat", func() (int64, *Error) {
		in, err := p.lookupInode("stat", p.resolve(path))
		if err != nil {
			return 0, err
		}
		out = statFromInode(in)
		return 0, nil
	})
	return out, rc
}

// LStat is identical to Stat; this system never follows symlinks during
// lookup, so there is no distinction to preserve.
func (p *Proc) LStat(ctx context.Context, path string) (Stat, int64) {
	return p.Stat(ctx, path)
}

// FStatAt ignores dirfd and behaves like Stat.
func (p *Proc) FStatAt(ctx context.Context, dirfd int, path string) (Stat, int64) {
	return p.Stat(ctx, path)
}

// FStat populates a Stat record from the inode referenced by fd.
func (p *Proc) FStat(ctx context.Context, fd int) (Stat, int64) {
	var out Stat
	rc := p.syscall(ctx, "FStat", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("fstat", fd)
		if err != nil {
			return 0, err
		}
		in, err := p.inodeForHandle("fstat", h)
		if err != nil {
			return 0, err
		}
		out = statFromInode(in)
		return 0, nil
	})
	return out, rc
}

// Chmod replaces path's inode permissions with mode & 0o777.
func (p *Proc) Chmod(ctx context.Context, path string, mode uint32) int64 {
	return p.syscall(ctx, "Chmod", func() (int64, *Error) {
		in, err := p.lookupInode("chmod", p.resolve(path))
		if err != nil {
			return 0, err
		}
		in.Permissions = PermissionsFromMode(mode & 0o777)
		return 0, nil
	})
}

// FChmod is Chmod via an open FD's inode.
func (p *Proc) FChmod(ctx context.Context, fd int, mode uint32) int64 {
	return p.syscall(ctx, "FChmod", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("fchmod", fd)
		if err != nil {
			return 0, err
		}
		in, err := p.inodeForHandle("fchmod", h)
		if err != nil {
			return 0, err
		}
		in.Permissions = PermissionsFromMode(mode & 0o777)
		return 0, nil
	})
}

// FChmodAt ignores dirfd and behaves like Chmod.
func (p *Proc) FChmodAt(ctx context.Context, dirfd int, path string, mode uint32) int64 {
	return p.Chmod(ctx, path, mode)
}

// Chown replaces path's inode user_id and group_id.
func (p *Proc) Chown(ctx context.Context, path string, uid, gid uint32) int64 {
	return p.syscall(ctx, "Chown", func() (int64, *Error) {
		in, err := p.lookupInode("chown", p.resolve(path))
		if err != nil {
			return 0, err
		}
		in.UserID, in.GroupID = uid, gid
		return 0, nil
	})
}

// LChown is identical to Chown; see LStat.
func (p *Proc) LChown(ctx context.Context, path string, uid, gid uint32) int64 {
	return p.Chown(ctx, path, uid, gid)
}

// FChown is Chown via an open FD's inode.
func (p *Proc) FChown(ctx context.Context, fd int, uid, gid uint32) int64 {
	return p.syscall(ctx, "FChown", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("fchown", fd)
		if err != nil {
			return 0, err
		}
		in, err := p.inodeForHandle("fchown", h)
		if err != nil {
			return 0, err
		}
		in.UserID, in.GroupID = uid, gid
		return 0, nil
	})
}

// FChownAt ignores dirfd and behaves like Chown.
func (p *Proc) FChownAt(ctx context.Context, dirfd int, path string, uid, gid uint32) int64 {
	return p.Chown(ctx, path, uid, gid)
}

// Access succeeds iff, for every requested bit of {R_OK, W_OK, X_OK}, the
// corresponding owner permission bit is set; group/other bits are
// ignored under this system's single-user model.
func (p *Proc) Access(ctx context.Context, path string, mode int32) int64 {
	return p.syscall(ctx, "Access", func() (int64, *Error) {
		in, err := p.lookupInode("access", p.resolve(path))
		if err != nil {
			return 0, err
		}
		if !ownerSatisfies(in.Permissions.Owner, mode) {
			return 0, newErr("access", ErrPermissionDenied)
		}
		return 0, nil
	})
}

// FAccessAt ignores dirfd and behaves like Access.
func (p *Proc) FAccessAt(ctx context.Context, dirfd int, path string, mode int32) int64 {
	return p.Access(ctx, path, mode)
}

func ownerSatisfies(owner Permission, mode int32) bool {
	if mode&ROK != 0 && !owner.Read {
		return false
	}
	if mode&WOK != 0 && !owner.Write {
		return false
	}
	if mode&XOK != 0 && !owner.Execute {
		return false
	}
	return true
}

// Umask installs mask & 0o777 and returns the previous umask.
func (p *Proc) Umask(ctx context.Context, mask uint32) int64 {
	return p.syscall(ctx, "Umask", func() (int64, *Error) {
		old := p.umask
		p.umask = mask & 0o777
		return int64(old), nil
	})
}
