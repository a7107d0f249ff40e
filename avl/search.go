// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Find - find a specific key, nil if not present
func (tree *Tree[T]) Find(key T) *Node[T] {
	p := tree.root
	for nil != p {
		switch c := cmp.Compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// FindMin - return the node with the lowest key value
func (tree *Tree[T]) FindMin() (*Node[T], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.first(), nil
}

// FindMax - return the node with the highest key value
func (tree *Tree[T]) FindMax() (*Node[T], error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root.last(), nil
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}
