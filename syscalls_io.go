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

// Read copies min(len(buf), size-position) bytes from fd's payload into
// buf starting at position, advancing position, and returns the number
// of bytes copied (0 at or past EOF).
func (p *Proc) Read(ctx context.Context, fd int, buf []byte) int64 {
	return p.syscall(ctx, "Read", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("read", fd)
		if err != nil {
			return 0, err
		}
		if h.console {
			return 0, nil
		}
		in, err := p.inodeForHandle("read", h)
		if err != nil {
			return 0, err
		}
		n := p.readAt(in, buf, h.Position)
		h.Position += uint64(n)
		return int64(n), nil
	})
}

// Write appends or overwrites at fd's position (or the current payload
// length, in append mode), growing the payload as needed, and returns
// len(buf). FD 1 is special-cased: bytes flow through the line sink
// instead of any payload.
func (p *Proc) Write(ctx context.Context, fd int, buf []byte) int64 {
	return p.syscall(ctx, "Write", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("write", fd)
		if err != nil {
			return 0, err
		}
		if h.console {
			if fd == 1 {
				p.sink.Write(buf)
			}
			return int64(len(buf)), nil
		}

		in, err := p.inodeForHandle("write", h)
		if err != nil {
			return 0, err
		}
		if h.AppendFlag {
			h.Position = uint64(len(p.fs.Payload(in.Number)))
		}
		p.writeAt(in, buf, h.Position)
		h.Position += uint64(len(buf))
		return int64(len(buf)), nil
	})
}

// PRead behaves like Read but uses offset as the I/O position and never
// touches fd's own position.
func (p *Proc) PRead(ctx context.Context, fd int, buf []byte, offset uint64) int64 {
	return p.syscall(ctx, "PRead", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("pread", fd)
		if err != nil {
			return 0, err
		}
		if h.console {
			return 0, nil
		}
		in, err := p.inodeForHandle("pread", h)
		if err != nil {
			return 0, err
		}
		n := p.readAt(in, buf, offset)
		return int64(n), nil
	})
}

// PWrite behaves like Write but uses offset as the I/O position and
// never touches fd's own position; it still updates payload length and
// inode size.
func (p *Proc) PWrite(ctx context.Context, fd int, buf []byte, offset uint64) int64 {
	return p.syscall(ctx, "PWrite", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("pwrite", fd)
		if err != nil {
			return 0, err
		}
		if h.console {
			if fd == 1 {
				p.sink.Write(buf)
			}
			return int64(len(buf)), nil
		}
		in, err := p.inodeForHandle("pwrite", h)
		if err != nil {
			return 0, err
		}
		p.writeAt(in, buf, offset)
		return int64(len(buf)), nil
	})
}

// readAt copies into buf from in's payload starting at off, returning the
// number of bytes copied.
func (p *Proc) readAt(in *Inode, buf []byte, off uint64) int {
	payload := p.fs.Payload(in.Number)
	if off >= uint64(len(payload)) {
		return 0
	}
	n := copy(buf, payload[off:])
	return n
}

// writeAt grows in's payload to at least off+len(buf), zero-filling the
// gap, copies buf in at off, and keeps in.Size in sync.
func (p *Proc) writeAt(in *Inode, buf []byte, off uint64) {
	need := int(off) + len(buf)
	grown := p.fs.data.grow(in.Number, need)
	copy(grown[off:], buf)
	in.Size = uint64(len(grown))
}

func (p *Proc) inodeForHandle(op string, h *OpenFileHandle) (*Inode, *Error) {
	in := p.fs.Inode(h.InodeNumber)
	if in == nil {
		return nil, newErr(op, ErrNotFound)
	}
	return in, nil
}

// LSeek recomputes position from whence and offset and returns the new
// position, failing if the result would be negative. Seeking past EOF is
// permitted and does not grow the payload.
func (p *Proc) LSeek(ctx context.Context, fd int, offset int64, whence int) int64 {
	return p.syscall(ctx, "LSeek", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("lseek", fd)
		if err != nil {
			return 0, err
		}

		var base int64
		switch whence {
		case SeekSet:
			base = 0
		case SeekCur:
			base = int64(h.Position)
		case SeekEnd:
			if h.console {
				base = 0
			} else {
				in, err := p.inodeForHandle("lseek", h)
				if err != nil {
					return 0, err
				}
				base = int64(in.Size)
			}
		default:
			return 0, newErr("lseek", ErrInvalidArgument)
		}

		result := base + offset
		if result < 0 {
			return 0, newErr("lseek", ErrInvalidArgument)
		}
		h.Position = uint64(result)
		return result, nil
	})
}

// Dup allocates a new FD with a copy of oldfd's handle; the two
// thereafter evolve independently.
func (p *Proc) Dup(ctx context.Context, oldfd int) int64 {
	return p.syscall(ctx, "Dup", func() (int64, *Error) {
		h, err := p.lookupOpenHandle("dup", oldfd)
		if err != nil {
			return 0, err
		}
		newfd := p.fdt.allocate()
		if newfd < 0 {
			return 0, newErr("dup", ErrFDExhausted)
		}
		p.fdt.set(newfd, h.clone())
		return int64(newfd), nil
	})
}

// Dup2 is like Dup but the caller chooses newfd; an already-open newfd is
// implicitly closed first, and oldfd == newfd is a no-op.
func (p *Proc) Dup2(ctx context.Context, oldfd, newfd int) int64 {
	return p.syscall(ctx, "Dup2", func() (int64, *Error) {
		if oldfd == newfd {
			if _, err := p.lookupOpenHandle("dup2", oldfd); err != nil {
				return 0, err
			}
			return int64(newfd), nil
		}

		h, err := p.lookupOpenHandle("dup2", oldfd)
		if err != nil {
			return 0, err
		}
		if newfd < 0 || newfd >= maxOpenFiles {
			return 0, newErr("dup2", ErrInvalidArgument)
		}
		p.fdt.set(newfd, h.clone())
		return int64(newfd), nil
	})
}

// SendFile copies min(count, input_size-start) bytes from inFd's payload
// to outFd at outFd's effective write position. When offset is non-nil,
// it is used (and advanced) instead of inFd's position, which is then
// left untouched.
func (p *Proc) SendFile(ctx context.Context, outFd, inFd int, offset *uint64, count int) int64 {
	return p.syscall(ctx, "SendFile", func() (int64, *Error) {
		return p.copyBetween("sendfile", outFd, inFd, offset, nil, count)
	})
}

// Splice generalizes SendFile with an optional output offset; the same
// use-offset-and-don't-advance rule applies at both endpoints. flags is
// ignored.
func (p *Proc) Splice(ctx context.Context, inFd int, offIn *uint64, outFd int, offOut *uint64, length int, flags uint32) int64 {
	return p.syscall(ctx, "Splice", func() (int64, *Error) {
		return p.copyBetween("splice", outFd, inFd, offIn, offOut, length)
	})
}

func (p *Proc) copyBetween(op string, outFd, inFd int, offIn, offOut *uint64, count int) (int64, *Error) {
	hIn, err := p.lookupOpenHandle(op, inFd)
	if err != nil {
		return 0, err
	}
	hOut, err := p.lookupOpenHandle(op, outFd)
	if err != nil {
		return 0, err
	}
	inInode, err := p.inodeForHandle(op, hIn)
	if err != nil {
		return 0, err
	}
	outInode, err := p.inodeForHandle(op, hOut)
	if err != nil {
		return 0, err
	}

	start := hIn.Position
	if offIn != nil {
		start = *offIn
	}

	payload := p.fs.Payload(inInode.Number)
	if start >= uint64(len(payload)) {
		return 0, nil
	}
	avail := uint64(len(payload)) - start
	n := uint64(count)
	if n > avail {
		n = avail
	}
	data := payload[start : start+n]

	writePos := hOut.Position
	if hOut.AppendFlag {
		writePos = uint64(len(p.fs.Payload(outInode.Number)))
	}
	if offOut != nil {
		writePos = *offOut
	}
	p.writeAt(outInode, data, writePos)

	if offIn != nil {
		*offIn += n
	} else {
		hIn.Position += n
	}
	if offOut != nil {
		*offOut += n
	} else {
		hOut.Position = writePos + n
	}

	return int64(n), nil
}
