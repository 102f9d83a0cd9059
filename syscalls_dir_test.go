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

func TestDir(t *testing.T) { RunTests(t) }

type DirTest struct {
	ctx  context.Context
	proc *vfs.Proc
}

func init() { RegisterTestSuite(&DirTest{}) }

func (t *DirTest) SetUp(ti *TestInfo) {
	t.ctx = context.Background()
	t.proc = vfs.NewProc(nil, nil)
}

// mkdir then rmdir is an identity on the path index.
func (t *DirTest) MkdirRmdirIsIdentity() {
	AssertEq(0, t.proc.Mkdir(t.ctx, "/d", 0o755))
	AssertEq(0, t.proc.Rmdir(t.ctx, "/d"))

	_, rc := t.proc.Stat(t.ctx, "/d")
	ExpectEq(-1, rc)
}

// Rmdir fails on a directory that still has children.
func (t *DirTest) RmdirNonEmptyFails() {
	AssertEq(0, t.proc.Mkdir(t.ctx, "/d", 0o755))
	AssertGe(t.proc.Creat(t.ctx, "/d/f", 0o644), 0)

	ExpectEq(-1, t.proc.Rmdir(t.ctx, "/d"))

	_, rc := t.proc.Stat(t.ctx, "/d")
	ExpectEq(0, rc)
	_, rc = t.proc.Stat(t.ctx, "/d/f")
	ExpectEq(0, rc)
}

func (t *DirTest) MkdirExistingFails() {
	AssertEq(0, t.proc.Mkdir(t.ctx, "/d", 0o755))
	ExpectEq(-1, t.proc.Mkdir(t.ctx, "/d", 0o755))
}

// Umask affects subsequently created directories' permission bits.
func (t *DirTest) UmaskAffectsMkdirPermissions() {
	old := t.proc.Umask(t.ctx, 0o077)
	ExpectEq(0o022, old)

	AssertEq(0, t.proc.Mkdir(t.ctx, "/d", 0o777))

	st, rc := t.proc.Stat(t.ctx, "/d")
	AssertEq(0, rc)
	ExpectEq(0o700, st.Mode&0o777)
}

// GetDents returns records for a directory's children, then 0 once the
// directory is exhausted.
func (t *DirTest) GetDentsEnumeratesChildren() {
	AssertEq(0, t.proc.Mkdir(t.ctx, "/d", 0o755))
	AssertGe(t.proc.Creat(t.ctx, "/d/x", 0o644), 0)
	AssertGe(t.proc.Creat(t.ctx, "/d/y", 0o644), 0)

	fd := t.proc.Open(t.ctx, "/d", vfs.ORdOnly, 0)
	AssertGe(fd, 0)

	buf := make([]byte, 4096)
	n := t.proc.GetDents(t.ctx, int(fd), buf)
	AssertGe(n, 0)
	ExpectNe(0, n)

	n2 := t.proc.GetDents(t.ctx, int(fd), buf)
	ExpectEq(0, n2)
}
