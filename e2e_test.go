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
	"github.com/kylelemons/godebug/pretty"
	"golang.org/x/net/context"

	"github.com/jacobsa/memvfs"
)

func TestE2E(t *testing.T) { RunTests(t) }

type E2ETest struct {
	ctx  context.Context
	proc *vfs.Proc
}

func init() { RegisterTestSuite(&E2ETest{}) }

func (t *E2ETest) SetUp(ti *TestInfo) {
	t.ctx = context.Background()
	t.proc = vfs.NewProc(nil, nil)
}

func (t *E2ETest) RoundTrip() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	AssertEq(5, t.proc.Write(t.ctx, int(fd), []byte("hello")))
	AssertEq(0, t.proc.Close(t.ctx, int(fd)))

	fd2 := t.proc.Open(t.ctx, "/a", vfs.ORdOnly, 0)
	buf := make([]byte, 5)
	AssertEq(5, t.proc.Read(t.ctx, int(fd2), buf))
	ExpectEq("hello", string(buf))

	st, rc := t.proc.Stat(t.ctx, "/a")
	AssertEq(0, rc)
	ExpectEq(5, st.Size)
}

func (t *E2ETest) AppendIndependence() {
	fd1 := t.proc.Open(t.ctx, "/a", vfs.OWrOnly|vfs.OAppend|vfs.OCreat, 0o600)
	AssertGe(fd1, 0)
	AssertEq(2, t.proc.Write(t.ctx, int(fd1), []byte("AB")))

	fd2 := t.proc.Open(t.ctx, "/a", vfs.OWrOnly|vfs.OAppend, 0)
	AssertGe(fd2, 0)
	AssertEq(2, t.proc.Write(t.ctx, int(fd2), []byte("CD")))

	AssertEq(2, t.proc.Write(t.ctx, int(fd1), []byte("EF")))

	rfd := t.proc.Open(t.ctx, "/a", vfs.ORdOnly, 0)
	buf := make([]byte, 6)
	t.proc.Read(t.ctx, int(rfd), buf)
	ExpectEq("ABCDEF", string(buf))
}

// Mount descriptor bulk-load helper exercise, grounding the ABI's
// mount_in_memory entry point end-to-end.
func (t *E2ETest) MountInMemorySeedsFiles() {
	AssertEq(0, t.proc.Mkdir(t.ctx, "/seed", 0o755))

	rc := t.proc.MountInMemory(t.ctx, []vfs.MountDescriptor{
		{DestPath: "/seed/a", Data: []byte("one")},
		{DestPath: "/seed/b", Data: []byte("two")},
	})
	AssertEq(0, rc)

	fd := t.proc.Open(t.ctx, "/seed/a", vfs.ORdOnly, 0)
	AssertGe(fd, 0)
	buf := make([]byte, 3)
	t.proc.Read(t.ctx, int(fd), buf)
	ExpectEq("one", string(buf))
}

func (t *E2ETest) MountInMemoryAbortsOnEmptyDestPath() {
	rc := t.proc.MountInMemory(t.ctx, []vfs.MountDescriptor{
		{DestPath: "/ok", Data: []byte("x")},
		{DestPath: "", Data: []byte("y")},
	})
	ExpectEq(-1, rc)
}

// Every FD slot that is set references an inode still present.
func (t *E2ETest) EveryOpenFDReferencesALiveInode() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	AssertGe(fd, 0)

	_, rc := t.proc.FStat(t.ctx, int(fd))
	ExpectEq(0, rc)
}

// Rename preserves every stat field but Ino is untouched; diffing the
// whole record (rather than comparing Ino alone) catches a rename that
// accidentally resets size, mode, or ownership along the way.
func (t *E2ETest) RenameLeavesEveryStatFieldButInoUntouched() {
	fd := t.proc.Creat(t.ctx, "/a", 0o640)
	t.proc.Write(t.ctx, int(fd), []byte("payload"))
	AssertEq(0, t.proc.Chown(t.ctx, "/a", 11, 22))

	before, rc := t.proc.Stat(t.ctx, "/a")
	AssertEq(0, rc)

	AssertEq(0, t.proc.Rename(t.ctx, "/a", "/b"))

	after, rc := t.proc.Stat(t.ctx, "/b")
	AssertEq(0, rc)

	after.Ino = before.Ino
	ExpectEq("", pretty.Compare(before, after))
}
