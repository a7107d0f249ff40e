// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	key    T        // key part for ordering
	height int      // of this sub-tree, a leaf is zero
}

// per-tree node allocator
type allocator[T any] struct {
	pool       *Node[T] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
	inUse      int      // nodes currently linked into the tree
	limit      int      // maximum inUse, zero for unlimited
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[T]) newNode(key T) (*Node[T], error) {
	if a.limit > 0 && a.inUse >= a.limit {
		return nil, fault.ErrNodeLimitReached
	}
	a.inUse += 1
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.totalNodes += 1
		return &Node[T]{
			key:    key,
			height: 0,
		}, nil
	}
	p := a.pool
	a.pool = p.right
	p.key = key
	p.height = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p, nil
}

// reclaim a node and keep it in the pool
func (a *allocator[T]) freeNode(node *Node[T]) {
	var zero T
	node.right = a.pool // use as free list pointer

	node.left = nil
	node.key = zero
	node.height = -1
	a.freeNodes += 1
	a.inUse -= 1

	a.pool = node
}

// Allocated - number of nodes ever created for this tree
func (tree *Tree[T]) Allocated() int {
	return tree.pool.totalNodes
}

// Pooled - number of released nodes waiting to be reused
func (tree *Tree[T]) Pooled() int {
	return tree.pool.freeNodes
}

// internal: notify and then return a node to the pool, used by Destroy
func (tree *Tree[T]) release(p *Node[T]) {
	if nil != tree.observer {
		tree.observer.Released(p.key)
	}
	tree.pool.freeNode(p)
}
