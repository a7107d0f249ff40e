// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty sub-tree is -1
func height[T any](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func fixHeight[T any](p *Node[T]) {
	p.height = max(height(p.left), height(p.right)) + 1
}

// right-right case
//
//	O     <- k2
//	  O   <- k1
//	    O
func singleRotateLeft[T any](k2 *Node[T]) *Node[T] {
	k1 := k2.right
	k2.right = k1.left
	k1.left = k2
	fixHeight(k2)
	k1.height = max(height(k1.right), k2.height) + 1
	return k1
}

// left-left case
//
//	    O <- k2
//	  O   <- k1
//	O
func singleRotateRight[T any](k2 *Node[T]) *Node[T] {
	k1 := k2.left
	k2.left = k1.right
	k1.right = k2
	fixHeight(k2)
	k1.height = max(height(k1.left), k2.height) + 1
	return k1
}

// left-right case
//
//	  O <- k3
//	O   <- k2
//	  O <- k1
func doubleRotateLeftRight[T any](k3 *Node[T]) *Node[T] {
	k3.left = singleRotateLeft(k3.left)
	return singleRotateRight(k3)
}

// right-left case
//
//	O   <- k3
//	  O <- k2
//	O   <- k1
func doubleRotateRightLeft[T any](k3 *Node[T]) *Node[T] {
	k3.right = singleRotateRight(k3.right)
	return singleRotateLeft(k3)
}

// apply one of the four transforms to p and report it
func (tree *Tree[T]) rotate(kind Rotation, p *Node[T]) *Node[T] {
	if nil != tree.observer {
		tree.observer.Rotated(kind, p.key)
	}
	switch kind {
	case SingleLeft:
		return singleRotateLeft(p)
	case SingleRight:
		return singleRotateRight(p)
	case DoubleLeftRight:
		return doubleRotateLeftRight(p)
	default:
		return doubleRotateRightLeft(p)
	}
}
