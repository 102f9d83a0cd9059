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

import "strings"

// Path is an immutable byte-wise path value, absolute or relative. No
// normalization is performed: "." and ".." are ordinary path components,
// never resolved against the path index. Callers that pass "." or ".."
// get surprising results, by design, not by oversight.
type Path string

const rootPath Path = "/"

// IsAbsolute reports whether p begins with a leading "/".
func (p Path) IsAbsolute() bool {
	return strings.HasPrefix(string(p), "/")
}

// Join appends other to p. If other is absolute, it wins outright. A single
// "/" separator is inserted unless p already ends in "/" or is empty.
func (p Path) Join(other Path) Path {
	if other.IsAbsolute() || p == "" {
		return other
	}
	if strings.HasSuffix(string(p), "/") {
		return p + other
	}
	return p + "/" + other
}

// Parent returns the path up to but not including the final "/" component.
// It returns (_, false) for "/", which has no parent. It returns "/" when
// stripping the final component would otherwise yield the empty string.
func (p Path) Parent() (Path, bool) {
	if p == rootPath {
		return "", false
	}

	s := string(p)
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return "", false
	}
	if idx == 0 {
		return rootPath, true
	}
	return Path(s[:idx]), true
}

// FileName returns the trailing path component, or (_, false) if p is
// empty.
func (p Path) FileName() (string, bool) {
	if p == "" {
		return "", false
	}

	s := string(p)
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return s, true
	}
	return s[idx+1:], true
}

// String returns a lossy string view of p.
func (p Path) String() string {
	return string(p)
}

// hasTrailingSlash reports whether p ends in "/" and is not itself "/".
// Used by FileSystem.checkInvariants to detect a trailing-slash path
// other than "/" in the path index; the syscalls that insert paths do not
// check for a trailing slash themselves.
func (p Path) hasTrailingSlash() bool {
	return p != rootPath && strings.HasSuffix(string(p), "/")
}
