// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[T cmp.Ordered] struct {
	root     *Node[T]
	count    int
	pool     allocator[T]
	observer Observer[T]
}

// New - create an initially empty tree
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// NewWithLimit - create an empty tree that refuses to hold more than
// limit nodes, zero or negative means no limit
func NewWithLimit[T cmp.Ordered](limit int) *Tree[T] {
	tree := New[T]()
	if limit > 0 {
		tree.pool.limit = limit
	}
	return tree
}

// Create - create a tree holding the single key x
func Create[T cmp.Ordered](x T) *Tree[T] {
	tree := New[T]()
	tree.root, _, _ = tree.insert(x, nil)
	tree.count = 1
	return tree
}

// SetObserver - attach an observer to receive rotation and release
// events, nil detaches
func (tree *Tree[T]) SetObserver(observer Observer[T]) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Destroy - release every node, children before their parent
//
// the tree is empty afterwards and any *Node obtained from it is no
// longer valid
func (tree *Tree[T]) Destroy() {
	tree.destroy(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release
func (tree *Tree[T]) destroy(p *Node[T]) {
	if nil == p {
		return
	}
	tree.destroy(p.left)
	tree.destroy(p.right)
	tree.release(p)
}

// GetChildrenByDepth - returns all nodes at a specific depth below p
func (p *Node[T]) GetChildrenByDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}

	if depth == 0 {
		nodes = []*Node[T]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[T]) Key() T {
	return p.key
}

// Height - cached height of the subtree rooted at this node
func (p *Node[T]) Height() int {
	return height(p)
}

// Left - left sub-tree, nil if none
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right sub-tree, nil if none
func (p *Node[T]) Right() *Node[T] {
	return p.right
}
