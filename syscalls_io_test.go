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

package vfs_test

import (
	"testing"

	. "github.com/jacobsa/ogletest"
	"golang.org/x/net/context"

	"github.com/jacobsa/memvfs"
)

func TestIO(t *testing.T) { RunTests(t) }

type IOTest struct {
	ctx  context.Context
	proc *vfs.Proc
}

func init() { RegisterTestSuite(&IOTest{}) }

func (t *IOTest) SetUp(ti *TestInfo) {
	t.ctx = context.Background()
	t.proc = vfs.NewProc(nil, nil)
}

// Write then seek back and read recovers the same bytes.
func (t *IOTest) WriteSeekReadRoundTrip() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	data := []byte("tacobell")
	AssertEq(len(data), t.proc.Write(t.ctx, int(fd), data))

	AssertEq(0, t.proc.LSeek(t.ctx, int(fd), int64(-len(data)), vfs.SeekCur))

	buf := make([]byte, len(data))
	AssertEq(len(data), t.proc.Read(t.ctx, int(fd), buf))
	ExpectEq(string(data), string(buf))
}

// Pwrite never perturbs the handle's own position.
func (t *IOTest) PWriteDoesNotMovePosition() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	t.proc.Write(t.ctx, int(fd), []byte("0123456789"))

	pos := t.proc.LSeek(t.ctx, int(fd), 0, vfs.SeekCur)
	AssertEq(10, pos)

	t.proc.PWrite(t.ctx, int(fd), []byte("XX"), 2)

	ExpectEq(pos, t.proc.LSeek(t.ctx, int(fd), 0, vfs.SeekCur))
}

// O_APPEND writes always land at the end, regardless of seeks.
func (t *IOTest) AppendModeIgnoresSeeks() {
	fd := t.proc.Open(t.ctx, "/a", vfs.OWrOnly|vfs.OCreat|vfs.OAppend, 0o644)
	AssertGe(fd, 0)

	AssertEq(5, t.proc.Write(t.ctx, int(fd), []byte("data1")))
	t.proc.LSeek(t.ctx, int(fd), 0, vfs.SeekSet)
	AssertEq(5, t.proc.Write(t.ctx, int(fd), []byte("data2")))

	st, rc := t.proc.Stat(t.ctx, "/a")
	AssertEq(0, rc)
	ExpectEq(10, st.Size)

	rfd := t.proc.Open(t.ctx, "/a", vfs.ORdOnly, 0)
	buf := make([]byte, 10)
	t.proc.Read(t.ctx, int(rfd), buf)
	ExpectEq("data1data2", string(buf))
}

// Dup'd FDs evolve their positions independently.
func (t *IOTest) DupGivesIndependentPosition() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	t.proc.Write(t.ctx, int(fd), []byte("0123456789"))
	t.proc.LSeek(t.ctx, int(fd), 0, vfs.SeekSet)

	dfd := t.proc.Dup(t.ctx, int(fd))
	AssertGe(dfd, 0)

	buf := make([]byte, 4)
	t.proc.Read(t.ctx, int(fd), buf)
	ExpectEq(4, t.proc.LSeek(t.ctx, int(fd), 0, vfs.SeekCur))
	ExpectEq(0, t.proc.LSeek(t.ctx, int(dfd), 0, vfs.SeekCur))
}

func (t *IOTest) Dup2OntoOpenFDClosesItFirst() {
	a := t.proc.Creat(t.ctx, "/a", 0o644)
	b := t.proc.Creat(t.ctx, "/b", 0o644)
	t.proc.Write(t.ctx, int(a), []byte("AAAA"))

	ExpectEq(b, t.proc.Dup2(t.ctx, int(a), int(b)))

	buf := make([]byte, 4)
	t.proc.LSeek(t.ctx, int(b), 0, vfs.SeekSet)
	n := t.proc.Read(t.ctx, int(b), buf)
	ExpectEq(4, n)
	ExpectEq("AAAA", string(buf))
}

func (t *IOTest) Dup2SameFDIsNoOp() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	ExpectEq(fd, t.proc.Dup2(t.ctx, int(fd), int(fd)))
}

// Splice copies a bounded range between two files, advancing both
// positions and leaving the rest of the source untouched.
func (t *IOTest) SpliceBetweenFiles() {
	src := t.proc.Creat(t.ctx, "/src", 0o644)
	t.proc.Write(t.ctx, int(src), []byte("0123456789"))
	t.proc.LSeek(t.ctx, int(src), 0, vfs.SeekSet)

	dst := t.proc.Creat(t.ctx, "/dst", 0o644)

	n := t.proc.Splice(t.ctx, int(src), nil, int(dst), nil, 4, 0)
	AssertEq(4, n)

	st, rc := t.proc.Stat(t.ctx, "/dst")
	AssertEq(0, rc)
	ExpectEq(4, st.Size)

	ExpectEq(4, t.proc.LSeek(t.ctx, int(src), 0, vfs.SeekCur))
	ExpectEq(4, t.proc.LSeek(t.ctx, int(dst), 0, vfs.SeekCur))

	rfd := t.proc.Open(t.ctx, "/dst", vfs.ORdOnly, 0)
	buf := make([]byte, 4)
	t.proc.Read(t.ctx, int(rfd), buf)
	ExpectEq("0123", string(buf))
}

func (t *IOTest) SendFileWithExplicitOffsetDoesNotAdvanceInput() {
	src := t.proc.Creat(t.ctx, "/src", 0o644)
	t.proc.Write(t.ctx, int(src), []byte("abcdefgh"))
	t.proc.LSeek(t.ctx, int(src), 0, vfs.SeekSet)

	dst := t.proc.Creat(t.ctx, "/dst", 0o644)

	offset := uint64(2)
	n := t.proc.SendFile(t.ctx, int(dst), int(src), &offset, 3)
	AssertEq(3, n)
	ExpectEq(5, offset)
	ExpectEq(0, t.proc.LSeek(t.ctx, int(src), 0, vfs.SeekCur))
}

func (t *IOTest) ReadPastEOFReturnsZero() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	t.proc.Write(t.ctx, int(fd), []byte("ab"))
	t.proc.LSeek(t.ctx, int(fd), 10, vfs.SeekSet)

	buf := make([]byte, 4)
	ExpectEq(0, t.proc.Read(t.ctx, int(fd), buf))
}
