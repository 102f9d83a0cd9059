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

// Open flag bits accepted by Open/Creat. These are the fixed wire values a
// wasm guest's libc computes against (spec.md §6), not the build host's
// golang.org/x/sys/unix constants: unix.O_CREAT/O_TRUNC/O_APPEND differ in
// numeric value across GOOS (Linux uses the octal values below; Darwin and
// the BSDs use a different bit layout for the same names), so aliasing them
// would make the ABI this module presents depend on the platform it happens
// to be built on. The guest's O_* values never change regardless of host
// GOOS, so these are declared as plain literals instead.
const (
	ORdOnly = 0
	OWrOnly = 1
	ORdWr   = 2
	OCreat  = 0o100
	OTrunc  = 0o1000
	OAppend = 0o2000
)

// lseek(2) whence values.
const (
	SeekSet = 0
	SeekCur = 1
	SeekEnd = 2
)

// access(2) mode bits.
const (
	ROK = 4
	WOK = 2
	XOK = 1
)

// AtFDCwd is accepted by every *at syscall but ignored: paths are always
// resolved relative to Proc's current working directory, per spec.md §6.
// Fixed at the Linux value for the same ABI-stability reason as the O_*
// flags above rather than aliased from golang.org/x/sys/unix.
const AtFDCwd = -100

const (
	defaultUmask = 0o022
	maxOpenFiles = 1024
	firstUserFD  = 3
)
