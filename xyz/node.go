// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"
	"strings"
)

// Continue and Break are the return values of [WalkFunc]:
// Continue descends into the children of the node, Break skips them.
const (
	Continue = true
	Break    = false
)

// WalkFunc is called on each node during a traversal.
type WalkFunc func(n Node) bool

// Node is the interface for all nodes in the scene graph: [Group],
// [Solid] and the [Scene] itself. All nodes embed [NodeBase].
type Node interface {

	// AsNodeBase returns the [NodeBase] of this node.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is a [Solid] that can be rendered.
	IsSolid() bool
}

// NodeBase provides the core implementation of the [Node] interface:
// a name, a [Pose] relative to the parent, and the list of children.
type NodeBase struct {

	// Name is the name of the node, used in paths and lookups.
	Name string

	// Pose is the position, orientation and scale relative to the parent.
	Pose Pose

	// Invisible nodes and all of their children are not rendered.
	Invisible bool

	this     Node
	parent   Node
	children []Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

// init sets the node this NodeBase belongs to, its name and default pose.
func (nb *NodeBase) init(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Pose.Defaults()
}

// This returns the node this NodeBase is embedded in.
func (nb *NodeBase) This() Node {
	return nb.this
}

// Parent returns the parent node, or nil for the root.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the children of the node. The slice must not be modified.
func (nb *NodeBase) Children() []Node {
	return nb.children
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.children)
}

// AddChild adds the given node as the last child, removing it
// from any previous parent first.
func (nb *NodeBase) AddChild(n Node) {
	cb := n.AsNodeBase()
	if cb.parent != nil {
		cb.parent.AsNodeBase().RemoveChild(n)
	}
	cb.parent = nb.this
	nb.children = append(nb.children, n)
}

// RemoveChild removes the given child and returns whether it was found.
// The resources of the child (meshes and materials) are not destroyed:
// they may be shared and are owned by the [Scene].
func (nb *NodeBase) RemoveChild(n Node) bool {
	i := slices.Index(nb.children, n)
	if i < 0 {
		return false
	}
	nb.children = slices.Delete(nb.children, i, i+1)
	n.AsNodeBase().parent = nil
	return true
}

// RemoveChildren removes all children.
func (nb *NodeBase) RemoveChildren() {
	for _, c := range nb.children {
		c.AsNodeBase().parent = nil
	}
	nb.children = nil
}

// ChildByName returns the first direct child with the given name, or nil.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, c := range nb.children {
		if c.AsNodeBase().Name == name {
			return c
		}
	}
	return nil
}

// Path returns the slash-separated names from the root to this node.
func (nb *NodeBase) Path() string {
	var names []string
	for n := Node(nb.this); n != nil; n = n.AsNodeBase().parent {
		names = append(names, n.AsNodeBase().Name)
	}
	slices.Reverse(names)
	return "/" + strings.Join(names, "/")
}

// WalkDown calls fn on this node and then, depth first, on all of its
// descendants, skipping the children of any node for which fn
// returns [Break].
func (nb *NodeBase) WalkDown(fn WalkFunc) {
	if nb.this == nil || !fn(nb.this) {
		return
	}
	for _, c := range slices.Clone(nb.children) {
		c.AsNodeBase().WalkDown(fn)
	}
}
