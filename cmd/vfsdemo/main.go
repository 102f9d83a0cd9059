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

// Command vfsdemo exercises the in-memory VFS the way a host embedding it
// behind a C ABI would: it seeds the tree via the bulk-mount entry point,
// then runs a few syscalls against it, printing whatever flows to FD 1
// through the host line sink.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/jacobsa/memvfs"
	"golang.org/x/net/context"
)

var fSeedFile = flag.String("seed_file", "", "Optional host path to copy into /seed on mount.")

type stdoutSink struct{}

func (stdoutSink) WriteLine(line []byte) {
	fmt.Print(string(line))
}

func main() {
	flag.Parse()

	ctx := context.Background()
	proc := vfs.NewProc(nil, stdoutSink{})

	descriptors := []vfs.MountDescriptor{
		{DestPath: "/greeting.txt", Data: []byte("hello from vfsdemo\n")},
	}
	if *fSeedFile != "" {
		data, err := ioutil.ReadFile(*fSeedFile)
		if err != nil {
			log.Fatalf("reading seed file: %v", err)
		}
		descriptors = append(descriptors, vfs.MountDescriptor{DestPath: "/seed", Data: data})
	}
	if rc := proc.MountInMemory(ctx, descriptors); rc != 0 {
		log.Fatalf("MountInMemory failed: rc=%d", rc)
	}

	fd := proc.Open(ctx, "/greeting.txt", vfs.ORdOnly, 0)
	if fd < 0 {
		log.Fatalf("Open failed")
	}

	buf := make([]byte, 256)
	n := proc.Read(ctx, int(fd), buf)
	if n < 0 {
		log.Fatalf("Read failed")
	}

	proc.Close(ctx, int(fd))

	const stdoutFD = 1
	proc.Write(ctx, stdoutFD, buf[:n])
}
