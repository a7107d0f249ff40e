// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - visit every key in ascending order until f returns false
func (tree *Tree[T]) Walk(f func(key T) bool) {
	walk(tree.root, f)
}

// internal: in-order traversal, false if stopped early
func walk[T any](p *Node[T], f func(key T) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p.key) {
		return false
	}
	return walk(p.right, f)
}

// Keys - all keys in ascending order
func (tree *Tree[T]) Keys() []T {
	keys := make([]T, 0, tree.count)
	tree.Walk(func(key T) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
