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

	"golang.org/x/sys/unix"
)

// ErrKind is the error taxonomy a syscall-shaped method may fail with. The
// core never distinguishes further than this; it is up to the ABI layer
// embedding this package to map a Kind to whatever errno space the guest
// expects (see Errno).
type ErrKind int

const (
	ErrNotFound ErrKind = iota
	ErrNotADirectory
	ErrIsADirectory
	ErrExists
	ErrOutOfRange
	ErrInvalidArgument
	ErrDirectoryNotEmpty
	ErrFDExhausted
	ErrPermissionDenied
	ErrUnsupported
)

func (k ErrKind) String() string {
	switch k {
	case ErrNotFound:
		return "not found"
	case ErrNotADirectory:
		return "not a directory"
	case ErrIsADirectory:
		return "is a directory"
	case ErrExists:
		return "exists"
	case ErrOutOfRange:
		return "out of range"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrDirectoryNotEmpty:
		return "directory not empty"
	case ErrFDExhausted:
		return "fd exhausted"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrUnsupported:
		return "unsupported"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every unexported implementation
// method backing the syscall surface. Exported syscall-shaped methods
// (Open, Read, ...) never return this directly; they collapse it to the
// -1 sentinel described in spec.md §4.4/§7. The Error itself is visible
// only inside this package, where Proc.syscall reports it to the trace
// span and the debug log.
type Error struct {
	Kind ErrKind
	Op   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

// Errno maps a Kind to the POSIX errno a real libc would set. This mirrors
// the teacher's errors.go, which re-exports kernel errno values from its
// transport rather than inventing its own error codes.
func (k ErrKind) Errno() unix.Errno {
	switch k {
	case ErrNotFound:
		return unix.ENOENT
	case ErrNotADirectory:
		return unix.ENOTDIR
	case ErrIsADirectory:
		return unix.EISDIR
	case ErrExists:
		return unix.EEXIST
	case ErrOutOfRange:
		return unix.ERANGE
	case ErrInvalidArgument:
		return unix.EINVAL
	case ErrDirectoryNotEmpty:
		return unix.ENOTEMPTY
	case ErrFDExhausted:
		return unix.EMFILE
	case ErrPermissionDenied:
		return unix.EACCES
	case ErrUnsupported:
		return unix.ENOSYS
	default:
		return unix.EIO
	}
}

func newErr(op string, kind ErrKind) *Error {
	return &Error{Kind: kind, Op: op}
}
