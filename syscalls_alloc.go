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

// Truncate sets path's payload length to length (zero-fill on grow,
// discard on shrink) and updates inode size. Negative length fails.
func (p *Proc) Truncate(ctx context.Context, path string, length int64) int64 {
	return p.syscall(ctx, "Truncate", func() (int64, *Error) {
		if length < 0 {
			return 0, newErr("truncate", ErrInvalidArgument)
		}
		in, err := p.lookupInode("truncate", p.resolve(path))
		if err != nil {
			return 0, err
		}
		p.resize(in, length)
		return 0, nil
	})
}

// FTruncate is Truncate via an open FD's inode.
func (p *Proc) FTruncate(ctx context.Context, fd int, length int64) int64 {
	return p.syscall(ctx, "FTruncate", func() (int64, *Error) {
		if length < 0 {
			return 0, newErr("ftruncate", ErrInvalidArgument)
		}
		h, err := p.lookupOpenHandle("ftruncate", fd)
		if err != nil {
			return 0, err
		}
		in, err := p.inodeForHandle("ftruncate", h)
		if err != nil {
			return 0, err
		}
		p.resize(in, length)
		return 0, nil
	})
}

func (p *Proc) resize(in *Inode, length int64) {
	n := int(length)
	payload := p.fs.Payload(in.Number)
	if n <= len(payload) {
		p.fs.setPayload(in, payload[:n])
		return
	}
	p.fs.setPayload(in, p.fs.data.grow(in.Number, n))
}

// Fallocate ensures the payload length is at least offset+len, growing
// with zero-fill; mode is accepted but ignored (hole-punching and other
// mode bits have no meaning over an in-memory byte slice). Negative
// arguments fail.
func (p *Proc) Fallocate(ctx context.Context, fd int, mode int32, offset, length int64) int64 {
	return p.syscall(ctx, "Fallocate", func() (int64, *Error) {
		return p.fallocate(fd, offset, length)
	})
}

// PosixFallocate is Fallocate without a mode argument.
func (p *Proc) PosixFallocate(ctx context.Context, fd int, offset, length int64) int64 {
	return p.syscall(ctx, "PosixFallocate", func() (int64, *Error) {
		return p.fallocate(fd, offset, length)
	})
}

func (p *Proc) fallocate(fd int, offset, length int64) (int64, *Error) {
	if offset < 0 || length < 0 {
		return 0, newErr("fallocate", ErrInvalidArgument)
	}
	h, err := p.lookupOpenHandle("fallocate", fd)
	if err != nil {
		return 0, err
	}
	in, err := p.inodeForHandle("fallocate", h)
	if err != nil {
		return 0, err
	}
	need := int(offset + length)
	grown := p.fs.data.grow(in.Number, need)
	in.Size = uint64(len(grown))
	return 0, nil
}
