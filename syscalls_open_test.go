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

func TestOpen(t *testing.T) { RunTests(t) }

////////////////////////////////////////////////////////////////////////
// Boilerplate
////////////////////////////////////////////////////////////////////////

type OpenTest struct {
	ctx  context.Context
	proc *vfs.Proc
}

func init() { RegisterTestSuite(&OpenTest{}) }

func (t *OpenTest) SetUp(ti *TestInfo) {
	t.ctx = context.Background()
	t.proc = vfs.NewProc(nil, nil)
}

////////////////////////////////////////////////////////////////////////
// Test functions
////////////////////////////////////////////////////////////////////////

func (t *OpenTest) CreatThenOpenRoundTrip() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	AssertGe(fd, 0)

	n := t.proc.Write(t.ctx, int(fd), []byte("hello"))
	AssertEq(5, n)

	AssertEq(0, t.proc.Close(t.ctx, int(fd)))

	fd2 := t.proc.Open(t.ctx, "/a", vfs.ORdOnly, 0)
	AssertGe(fd2, 0)

	buf := make([]byte, 5)
	n = t.proc.Read(t.ctx, int(fd2), buf)
	ExpectEq(5, n)
	ExpectEq("hello", string(buf))

	st, rc := t.proc.Stat(t.ctx, "/a")
	AssertEq(0, rc)
	ExpectEq(5, st.Size)
}

func (t *OpenTest) OpenMissingWithoutCreatFails() {
	fd := t.proc.Open(t.ctx, "/nope", vfs.ORdOnly, 0)
	ExpectEq(-1, fd)
}

func (t *OpenTest) OpenTruncExistingClearsPayload() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	t.proc.Write(t.ctx, int(fd), []byte("hello"))
	t.proc.Close(t.ctx, int(fd))

	fd2 := t.proc.Open(t.ctx, "/a", vfs.OWrOnly|vfs.OTrunc, 0)
	AssertGe(fd2, 0)

	st, rc := t.proc.Stat(t.ctx, "/a")
	AssertEq(0, rc)
	ExpectEq(0, st.Size)
}

func (t *OpenTest) CloseUnusedFDFails() {
	ExpectEq(-1, t.proc.Close(t.ctx, 17))
}

func (t *OpenTest) CloseTwiceFails() {
	fd := t.proc.Creat(t.ctx, "/a", 0o644)
	AssertEq(0, t.proc.Close(t.ctx, int(fd)))
	ExpectEq(-1, t.proc.Close(t.ctx, int(fd)))
}

func (t *OpenTest) FDExhaustionReturnsMinusOne() {
	var last int64
	for i := 0; i < 2000; i++ {
		last = t.proc.Creat(t.ctx, "/many", 0o644)
		if last < 0 {
			break
		}
	}
	ExpectEq(-1, last)
}
