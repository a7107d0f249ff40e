// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// logs tree events at debug level and counts them
type logObserver[T cmp.Ordered] struct {
	log       *logger.L
	rotations map[avl.Rotation]int
	released  int
}

func newLogObserver[T cmp.Ordered](log *logger.L) *logObserver[T] {
	return &logObserver[T]{
		log:       log,
		rotations: make(map[avl.Rotation]int),
	}
}

// Rotated - log a rebalance
func (o *logObserver[T]) Rotated(kind avl.Rotation, pivot T) {
	o.rotations[kind] += 1
	o.log.Debugf("rotation: %s  pivot: %v", kind, pivot)
}

// Released - log a key leaving the tree
func (o *logObserver[T]) Released(key T) {
	o.released += 1
	o.log.Debugf("released: %v", key)
}

// write the totals to the log
func (o *logObserver[T]) summary() {
	for _, kind := range []avl.Rotation{avl.SingleLeft, avl.SingleRight, avl.DoubleLeftRight, avl.DoubleRightLeft} {
		o.log.Infof("rotations: %s: %d", kind, o.rotations[kind])
	}
	o.log.Infof("released: %d", o.released)
}
