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

import "bytes"

// HostLineWriter stands in for the external host_write_stdout_line
// collaborator (spec.md §6): the embedding host supplies an
// implementation, and the VFS calls it with each complete
// (newline-terminated) line written to FD 1. Marshaling this across the
// C/wasm ABI boundary is out of scope; this interface is the Go-level
// seam the ABI shim sits behind.
type HostLineWriter interface {
	WriteLine(line []byte)
}

// discardLineWriter is the default HostLineWriter when none is supplied:
// lines are dropped rather than the VFS panicking on nil.
type discardLineWriter struct{}

func (discardLineWriter) WriteLine([]byte) {}

// lineSink accumulates bytes written to FD 1 and flushes complete lines
// (including their trailing newline) to a HostLineWriter, clearing the
// accumulator after each flush. Non-newline trailing bytes remain
// buffered across calls, per spec.md §6.
type lineSink struct {
	writer HostLineWriter
	buf    []byte
}

func newLineSink(w HostLineWriter) *lineSink {
	if w == nil {
		w = discardLineWriter{}
	}
	return &lineSink{writer: w}
}

func (s *lineSink) Write(p []byte) {
	s.buf = append(s.buf, p...)
	for {
		i := bytes.IndexByte(s.buf, '\n')
		if i < 0 {
			break
		}
		line := s.buf[:i+1]
		s.writer.WriteLine(line)
		s.buf = s.buf[i+1:]
	}
}
