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

// MountDescriptor is the Go-side view of one entry in the bulk-mount
// ABI's `{ dest_path, data_ptr, data_len }` array. Decoding the raw C
// array into a slice of these is the embedding ABI shim's job; this
// package only consumes the decoded form.
type MountDescriptor struct {
	DestPath string
	Data     []byte
}

// MountInMemory performs, for each descriptor in order, the equivalent of
// open(dest_path, O_WRONLY|O_CREAT|O_TRUNC, 0o644); write(data); close(),
// aborting at the first descriptor whose DestPath is empty. Returns -1 on
// early abort or write failure, 0 on success, mirroring mount_in_memory's
// C ABI contract: a batch of files seeded into one Proc in a single call.
func (p *Proc) MountInMemory(ctx context.Context, descriptors []MountDescriptor) int64 {
	return p.syscall(ctx, "MountInMemory", func() (int64, *Error) {
		for _, d := range descriptors {
			if d.DestPath == "" {
				return 0, newErr("mount_in_memory", ErrInvalidArgument)
			}

			fd, err := p.open(p.resolve(d.DestPath), OWrOnly|OCreat|OTrunc, 0o644)
			if err != nil {
				return 0, err
			}
			in, ierr := p.inodeForHandle("mount_in_memory", p.fdt.get(fd))
			if ierr != nil {
				p.fdt.clear(fd)
				return 0, ierr
			}
			p.writeAt(in, d.Data, 0)
			p.fdt.clear(fd)
		}
		return 0, nil
	})
}
