// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Rotation - the kind of rebalancing applied to a sub-tree
type Rotation int

// the four rebalancing transforms
const (
	SingleLeft      Rotation = iota // right-right case
	SingleRight     Rotation = iota // left-left case
	DoubleLeftRight Rotation = iota // left-right case
	DoubleRightLeft Rotation = iota // right-left case
)

// String - name of the rotation
func (r Rotation) String() string {
	switch r {
	case SingleLeft:
		return "single-left"
	case SingleRight:
		return "single-right"
	case DoubleLeftRight:
		return "double-left-right"
	case DoubleRightLeft:
		return "double-right-left"
	default:
		return "unknown"
	}
}

//go:generate mockgen -destination=mocks/observer.go -package=mocks github.com/bitmark-inc/avltree/avl Observer

// Observer - receives structural events from a tree
//
// Rotated is called once per rebalance with the key of the node that
// was out of balance.  Released is called for each key as it leaves
// the tree, by delete or by Destroy.
type Observer[T cmp.Ordered] interface {
	Rotated(kind Rotation, pivot T)
	Released(key T)
}
