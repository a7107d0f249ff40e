// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Delete - removes a specific key from the tree
//
// returns true if the key was present
func (tree *Tree[T]) Delete(key T) bool {
	root, removed := tree.delete(key, tree.root)
	if removed {
		tree.root = root
		tree.count -= 1
		if nil != tree.observer {
			tree.observer.Released(key)
		}
	}
	return removed
}

// delete: tree balancer, returns the new root of the sub-tree
//
// the taller side is rotated towards the shorter one, the single
// rotation is preferred when both grandchildren are the same height
func (tree *Tree[T]) balance(p *Node[T]) *Node[T] {
	switch height(p.left) - height(p.right) {
	case 2:
		if height(p.left.left) >= height(p.left.right) {
			p = tree.rotate(SingleRight, p)
		} else {
			p = tree.rotate(DoubleLeftRight, p)
		}
	case -2:
		if height(p.right.right) >= height(p.right.left) {
			p = tree.rotate(SingleLeft, p)
		} else {
			p = tree.rotate(DoubleRightLeft, p)
		}
	}
	fixHeight(p)
	return p
}

// internal delete routine
//
// a key that is not in the tree leaves every node untouched
func (tree *Tree[T]) delete(key T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := cmp.Compare(key, p.key); {
	case c < 0:
		p.left, removed = tree.delete(key, p.left)
	case c > 0:
		p.right, removed = tree.delete(key, p.right)
	case nil != p.left && nil != p.right:
		// replace by the successor, then remove the successor
		p.key = p.right.first().key
		p.right, removed = tree.delete(p.key, p.right)
	default: // found: zero or one child
		q := p
		if nil != p.left {
			p = p.left
		} else {
			p = p.right
		}
		tree.pool.freeNode(q) // return deleted node to pool
		return p, true
	}

	if !removed {
		return p, false
	}
	return tree.balance(p), true
}
