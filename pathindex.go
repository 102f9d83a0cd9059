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

// pathEntry is one slot of the path index. A tombstoned entry (removed by
// unlink/rename) has path == "" and is skipped by iteration; its map entry
// is deleted so lookups don't see it, but its slot is not compacted so
// live neighbors keep the iteration order getdents() depends on.
type pathEntry struct {
	path  Path
	inode uint64
}

// pathIndex is the sole source of truth for name -> inode resolution.
// It is many-to-one: multiple paths may map to the same inode (hard
// links). Iteration order is insertion order. Re-inserting a path that is
// already present keeps its slot (so a rename onto an existing newpath
// takes over that path's place); a rename onto a new path tombstones the
// old slot and appends the new path at the end.
type pathIndex struct {
	entries []pathEntry
	lookup  map[Path]int
}

func newPathIndex() *pathIndex {
	return &pathIndex{lookup: make(map[Path]int)}
}

// Lookup consults the index only; it never auto-creates.
func (idx *pathIndex) Lookup(p Path) (uint64, bool) {
	i, ok := idx.lookup[p]
	if !ok {
		return 0, false
	}
	return idx.entries[i].inode, true
}

// Insert registers p -> inode. If p is already present, its inode is
// replaced in place (this is also how Rename's implicit overwrite of an
// existing newpath is implemented).
func (idx *pathIndex) Insert(p Path, inode uint64) {
	if i, ok := idx.lookup[p]; ok {
		idx.entries[i].inode = inode
		return
	}
	idx.lookup[p] = len(idx.entries)
	idx.entries = append(idx.entries, pathEntry{path: p, inode: inode})
}

// Remove deletes p from the index, if present.
func (idx *pathIndex) Remove(p Path) {
	i, ok := idx.lookup[p]
	if !ok {
		return
	}
	delete(idx.lookup, p)
	idx.entries[i] = pathEntry{}
}

// Children returns, in index iteration order, the entries whose Parent()
// equals dir.
func (idx *pathIndex) Children(dir Path) []pathEntry {
	var out []pathEntry
	for _, e := range idx.entries {
		if e.path == "" {
			continue
		}
		parent, ok := e.path.Parent()
		if !ok || parent != dir {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Len reports the number of live (non-tombstoned) entries.
func (idx *pathIndex) Len() int {
	n := 0
	for _, e := range idx.entries {
		if e.path != "" {
			n++
		}
	}
	return n
}

// PathForInode returns the first live path-index entry (in iteration
// order) that names inode, used by getdents to recover "the directory's
// own path" from the inode number an FD carries.
func (idx *pathIndex) PathForInode(inode uint64) (Path, bool) {
	for _, e := range idx.entries {
		if e.path != "" && e.inode == inode {
			return e.path, true
		}
	}
	return "", false
}

// Each calls fn for every live entry, in iteration order.
func (idx *pathIndex) Each(fn func(p Path, inode uint64)) {
	for _, e := range idx.entries {
		if e.path == "" {
			continue
		}
		fn(e.path, e.inode)
	}
}
