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

// Package vfs implements an in-memory, POSIX-flavored virtual file system
// meant to be linked into a sandboxed guest and exposed through a C ABI, so
// that unmodified user code compiled against a libc-like interface can
// perform file and directory operations without touching a real host
// kernel.
//
// The primary elements of interest are:
//
//  *  FileSystem, which owns the inode table, the path index, and the
//     byte payload for every file and directory.
//
//  *  Proc, which owns the file-descriptor table, open-file handles, the
//     umask, and the current working directory, and which exposes the
//     syscall-shaped surface (Open, Read, Write, LSeek, Dup, GetDents,
//     Stat, Rename, ...) that a guest's libc shim calls into.
//
// All mutation goes through Proc: a FileSystem is only ever built and held
// inside a Proc, so its exported methods (CreateFile, CreateDirectory,
// CreateSymlink, ...) are reached only under Proc's lock.
package vfs
