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

import "unsafe"

// dirent is the directory-entry record returned by getdents:
//
//	u64 d_ino; i64 d_off; u16 d_reclen; u8 d_type; u8 d_name[256]
//
// Encoded with an unsafe.Pointer cast-to-byte-array trick, in host byte
// order.
type dirent struct {
	ino     uint64
	off     int64
	reclen  uint16
	dtype   uint8
	name    [256]byte
}

const direntSize = int(unsafe.Sizeof(dirent{}))

// writeDirent encodes one directory entry into buf, returning the number
// of bytes written, or 0 if the entry (including a name long enough to
// need truncation protection) does not fit in len(buf). Names of 256
// bytes or more are skipped entirely by the caller before this is
// reached.
func writeDirent(buf []byte, ino uint64, off int64, dtype uint8, name string) (n int) {
	if direntSize > len(buf) {
		return 0
	}
	if len(name) >= len(dirent{}.name) {
		return 0
	}

	d := dirent{
		ino:    ino,
		off:    off,
		reclen: uint16(direntSize),
		dtype:  dtype,
	}
	copy(d.name[:], name)

	src := (*[direntSize]byte)(unsafe.Pointer(&d))[:]
	return copy(buf, src)
}
