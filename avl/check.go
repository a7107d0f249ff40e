// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights and balance of the whole tree
func (tree *Tree[T]) Check() error {
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	if err := tree.CheckHeights(); nil != err {
		return err
	}
	if err := tree.CheckBalance(); nil != err {
		return err
	}
	if n := countNodes(tree.root); n != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// CheckOrder - every left key is smaller and every right key larger
func (tree *Tree[T]) CheckOrder() error {
	return checkOrder(tree.root, nil, nil)
}

// internal: keys in p must lie strictly between low and high
func checkOrder[T cmp.Ordered](p *Node[T], low *T, high *T) error {
	if nil == p {
		return nil
	}
	if nil != low && cmp.Compare(p.key, *low) <= 0 {
		return fmt.Errorf("%w: key: %v  lower bound: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && cmp.Compare(p.key, *high) >= 0 {
		return fmt.Errorf("%w: key: %v  upper bound: %v", fault.ErrOrderViolation, p.key, *high)
	}
	if err := checkOrder(p.left, low, &p.key); nil != err {
		return err
	}
	return checkOrder(p.right, &p.key, high)
}

// CheckHeights - recompute every height and compare with the cached one
func (tree *Tree[T]) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

// internal: returns the recomputed height
func checkHeights[T any](p *Node[T]) (int, error) {
	if nil == p {
		return -1, nil
	}
	lh, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := max(lh, rh) + 1
	if h != p.height {
		return 0, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	return h, nil
}

// CheckBalance - the two sub-trees of each node differ in height by at most one
func (tree *Tree[T]) CheckBalance() error {
	return checkBalance(tree.root)
}

func checkBalance[T any](p *Node[T]) error {
	if nil == p {
		return nil
	}
	if d := height(p.left) - height(p.right); d < -1 || d > 1 {
		return fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrBalanceViolation, p.key, height(p.left), height(p.right))
	}
	if err := checkBalance(p.left); nil != err {
		return err
	}
	return checkBalance(p.right)
}

func countNodes[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
