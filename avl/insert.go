// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - add a key to the tree
//
// returns true if the key was added, false if it was already present
// or the node limit was reached, in which case the error is
// fault.ErrNodeLimitReached and the tree is unchanged
func (tree *Tree[T]) Insert(key T) (bool, error) {
	root, added, err := tree.insert(key, tree.root)
	if nil != err {
		return false, err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert, returns the new root of the sub-tree
func (tree *Tree[T]) insert(key T, p *Node[T]) (*Node[T], bool, error) {
	if nil == p { // insert new node
		n, err := tree.pool.newNode(key)
		if nil != err {
			return nil, false, err
		}
		return n, true, nil
	}

	added := false

	switch c := cmp.Compare(key, p.key); {
	case c < 0:
		left, a, e := tree.insert(key, p.left)
		if nil != e {
			return p, false, e
		}
		p.left, added = left, a

		// left branch has grown
		if height(p.left)-height(p.right) == 2 {
			if cmp.Less(key, p.left.key) {
				p = tree.rotate(SingleRight, p)
			} else {
				p = tree.rotate(DoubleLeftRight, p)
			}
		}
	case c > 0:
		right, a, e := tree.insert(key, p.right)
		if nil != e {
			return p, false, e
		}
		p.right, added = right, a

		// right branch has grown
		if height(p.right)-height(p.left) == 2 {
			if cmp.Less(p.right.key, key) {
				p = tree.rotate(SingleLeft, p)
			} else {
				p = tree.rotate(DoubleRightLeft, p)
			}
		}
	default:
		// key is in the tree already, nothing to do
		return p, false, nil
	}
	fixHeight(p)
	return p, added, nil
}
