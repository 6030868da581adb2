// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package director

import "strconv"

// States are the states of a [Director]. A director goes from
// Uninitialized to Running to Disposed, which is final.
type States int32

const (
	// Uninitialized is the state before a successful [Director.Init].
	Uninitialized States = iota

	// Running is the state after a successful [Director.Init].
	Running

	// Disposed is the state after [Director.Dispose].
	Disposed
)

func (s States) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	case Disposed:
		return "Disposed"
	}
	return "States(" + strconv.Itoa(int(s)) + ")"
}
