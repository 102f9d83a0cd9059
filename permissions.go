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

// Permission is a single read/write/execute bit triple.
type Permission struct {
	Read    bool
	Write   bool
	Execute bool
}

// Permissions is the owner/group/other triple of Permission values that
// backs an Inode's mode bits.
type Permissions struct {
	Owner Permission
	Group Permission
	Other Permission
}

func permissionFromBits(m uint32, shift uint) Permission {
	return Permission{
		Read:    m&(0o4<<shift) != 0,
		Write:   m&(0o2<<shift) != 0,
		Execute: m&(0o1<<shift) != 0,
	}
}

func (p Permission) bits(shift uint) uint32 {
	var m uint32
	if p.Read {
		m |= 0o4 << shift
	}
	if p.Write {
		m |= 0o2 << shift
	}
	if p.Execute {
		m |= 0o1 << shift
	}
	return m
}

// PermissionsFromMode sets the nine permission bits according to the
// standard octal layout (0o400..0o001): owner at bits 6-8, group at bits
// 3-5, other at bits 0-2. Bits outside 0o777 are ignored.
func PermissionsFromMode(mode uint32) Permissions {
	return Permissions{
		Owner: permissionFromBits(mode, 6),
		Group: permissionFromBits(mode, 3),
		Other: permissionFromBits(mode, 0),
	}
}

// Mode rebuilds the 9-bit mode integer from p.
func (p Permissions) Mode() uint32 {
	return p.Owner.bits(6) | p.Group.bits(3) | p.Other.bits(0)
}
