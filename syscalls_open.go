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

// Open resolves path, reusing its inode if present or creating a File
// inode when O_CREAT is set, truncates the payload when O_TRUNC is set,
// and installs a new FD whose initial position is 0 (or the current
// payload length, when O_APPEND is set).
func (p *Proc) Open(ctx context.Context, path string, flags int32, mode uint32) int64 {
	return p.syscall(ctx, "Open", func() (int64, *Error) {
		fd, err := p.open(p.resolve(path), flags, mode)
		if err != nil {
			return 0, err
		}
		return int64(fd), nil
	})
}

func (p *Proc) open(path Path, flags int32, mode uint32) (int, *Error) {
	var in *Inode
	if n, ok := p.fs.Lookup(path); ok {
		in = p.fs.Inode(n)
	}
	if in == nil {
		if flags&OCreat == 0 {
			return 0, newErr("open", ErrNotFound)
		}
		if _, err := p.lookupParent("open", path); err != nil {
			return 0, err
		}
		in = p.fs.CreateFile(path, mode&0o777)
	}

	if flags&OTrunc != 0 {
		p.fs.setPayload(in, []byte{})
	}

	fd := p.fdt.allocate()
	if fd < 0 {
		return 0, newErr("open", ErrFDExhausted)
	}

	h := &OpenFileHandle{InodeNumber: in.Number, AppendFlag: flags&OAppend != 0}
	if h.AppendFlag {
		h.Position = uint64(len(p.fs.Payload(in.Number)))
	}
	p.fdt.set(fd, h)

	return fd, nil
}

// Creat is equivalent to Open(path, O_WRONLY|O_CREAT|O_TRUNC, mode).
func (p *Proc) Creat(ctx context.Context, path string, mode uint32) int64 {
	return p.Open(ctx, path, OWrOnly|OCreat|OTrunc, mode)
}

// Close clears fd's slot, failing if it was already unused or out of
// range.
func (p *Proc) Close(ctx context.Context, fd int) int64 {
	return p.syscall(ctx, "Close", func() (int64, *Error) {
		if _, err := p.lookupOpenHandle("close", fd); err != nil {
			return 0, err
		}
		p.fdt.clear(fd)
		return 0, nil
	})
}
