// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
	"github.com/bitmark-inc/avltree/fault"
)

// build a tree from keys with a mock observer attached
func observedTree(ctl *gomock.Controller) (*avl.Tree[int], *mocks.MockObserver[int]) {
	m := mocks.NewMockObserver[int](ctl)
	tree := avl.New[int]()
	tree.SetObserver(m)
	return tree, m
}

func insertAll(t *testing.T, tree *avl.Tree[int], keys ...int) {
	t.Helper()
	for _, key := range keys {
		added, err := tree.Insert(key)
		require.NoError(t, err, "insert: %d", key)
		require.True(t, added, "insert: %d", key)
	}
}

// root, then left and right children, with their heights
func assertThreeNodes(t *testing.T, tree *avl.Tree[int]) {
	t.Helper()
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, 20, root.Key(), "root key")
	assert.Equal(t, 1, root.Height(), "root height")
	require.NotNil(t, root.Left())
	require.NotNil(t, root.Right())
	assert.Equal(t, 10, root.Left().Key(), "left key")
	assert.Equal(t, 0, root.Left().Height(), "left height")
	assert.Equal(t, 30, root.Right().Key(), "right key")
	assert.Equal(t, 0, root.Right().Height(), "right height")
	assert.NoError(t, tree.Check())
}

func TestInsertSingleLeftRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.SingleLeft, 10).Times(1)

	insertAll(t, tree, 10, 20, 30)
	assertThreeNodes(t, tree)
}

func TestInsertSingleRightRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.SingleRight, 30).Times(1)

	insertAll(t, tree, 30, 20, 10)
	assertThreeNodes(t, tree)
}

func TestInsertDoubleLeftRightRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.DoubleLeftRight, 30).Times(1)

	insertAll(t, tree, 30, 10, 20)
	assertThreeNodes(t, tree)
}

func TestInsertDoubleRightLeftRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.DoubleRightLeft, 10).Times(1)

	insertAll(t, tree, 10, 30, 20)
	assertThreeNodes(t, tree)
}

func TestInsertAscending(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	gomock.InOrder(
		m.EXPECT().Rotated(avl.SingleLeft, 1),
		m.EXPECT().Rotated(avl.SingleLeft, 3),
		m.EXPECT().Rotated(avl.SingleLeft, 2),
		m.EXPECT().Rotated(avl.SingleLeft, 5),
	)

	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)

	require.NoError(t, tree.Check())
	assert.Equal(t, 4, tree.Root().Key())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, 7, tree.Count())
}

func TestInsertExisting(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.SingleLeft, gomock.Any()).AnyTimes()
	insertAll(t, tree, 1, 2, 3, 4, 5)

	before := tree.Keys()
	rootBefore := tree.Root()

	for _, key := range []int{1, 2, 3, 4, 5} {
		added, err := tree.Insert(key)
		assert.NoError(t, err)
		assert.False(t, added, "duplicate: %d", key)
	}

	assert.Equal(t, before, tree.Keys())
	assert.Equal(t, 5, tree.Count())
	assert.Same(t, rootBefore, tree.Root())
	assert.NoError(t, tree.Check())
}

// two children: the successor key takes the place of the deleted key
func TestDeleteTwoChildren(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.SingleLeft, gomock.Any()).Times(4)
	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)

	m.EXPECT().Released(4).Times(1)
	assert.True(t, tree.Delete(4))

	require.NoError(t, tree.Check())
	assert.Nil(t, tree.Find(4))
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.Keys())
	assert.Equal(t, 6, tree.Count())

	root := tree.Root()
	assert.Equal(t, 5, root.Key(), "successor becomes root")
	assert.Equal(t, 2, root.Left().Key())
	assert.Equal(t, 6, root.Right().Key())
	assert.Nil(t, root.Right().Left())
	assert.Equal(t, 7, root.Right().Right().Key())
}

func TestDeleteSingleRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(avl.SingleLeft, gomock.Any()).Times(4)
	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)

	m.EXPECT().Released(gomock.Any()).Times(3)
	assert.True(t, tree.Delete(1))
	assert.True(t, tree.Delete(3))

	// both grandchildren on the right are the same height
	m.EXPECT().Rotated(avl.SingleLeft, 4).Times(1)
	assert.True(t, tree.Delete(2))

	require.NoError(t, tree.Check())
	assert.Equal(t, 6, tree.Root().Key())
	assert.Equal(t, 4, tree.Root().Left().Key())
	assert.Equal(t, 5, tree.Root().Left().Right().Key())
	assert.Equal(t, []int{4, 5, 6, 7}, tree.Keys())
}

func TestDeleteDoubleRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	insertAll(t, tree, 2, 1, 4, 3)

	gomock.InOrder(
		m.EXPECT().Rotated(avl.DoubleRightLeft, 2),
		m.EXPECT().Released(1),
	)
	assert.True(t, tree.Delete(1))

	require.NoError(t, tree.Check())
	assert.Equal(t, 3, tree.Root().Key())
	assert.Equal(t, 2, tree.Root().Left().Key())
	assert.Equal(t, 4, tree.Root().Right().Key())
}

func TestDeleteDoubleLeftRightRotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	insertAll(t, tree, 3, 1, 4, 2)

	gomock.InOrder(
		m.EXPECT().Rotated(avl.DoubleLeftRight, 3),
		m.EXPECT().Released(4),
	)
	assert.True(t, tree.Delete(4))

	require.NoError(t, tree.Check())
	assert.Equal(t, 2, tree.Root().Key())
	assert.Equal(t, []int{1, 2, 3}, tree.Keys())
}

// deleting an absent key touches nothing
func TestDeleteAbsent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := avl.New[int]()
	insertAll(t, tree, 10, 5, 15, 3)

	// any observer call fails the test
	tree.SetObserver(mocks.NewMockObserver[int](ctl))

	heights := map[int]int{}
	for _, key := range tree.Keys() {
		heights[key] = tree.Find(key).Height()
	}

	for _, key := range []int{0, 4, 6, 12, 20} {
		assert.False(t, tree.Delete(key), "absent: %d", key)
	}

	for key, h := range heights {
		assert.Equal(t, h, tree.Find(key).Height(), "height of: %d", key)
	}
	assert.Equal(t, 4, tree.Count())
	assert.NoError(t, tree.Check())

	empty := avl.New[int]()
	assert.False(t, empty.Delete(1))
	assert.True(t, empty.IsEmpty())
}

// children are released before their parent
func TestDestroy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree, m := observedTree(ctl)
	m.EXPECT().Rotated(gomock.Any(), gomock.Any()).AnyTimes()
	insertAll(t, tree, 1, 2, 3, 4, 5, 6, 7)

	gomock.InOrder(
		m.EXPECT().Released(1),
		m.EXPECT().Released(3),
		m.EXPECT().Released(2),
		m.EXPECT().Released(5),
		m.EXPECT().Released(7),
		m.EXPECT().Released(6),
		m.EXPECT().Released(4),
	)
	tree.Destroy()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 7, tree.Pooled())

	// already empty
	tree.Destroy()
	assert.Equal(t, 7, tree.Pooled())
}

func TestCreate(t *testing.T) {
	tree := avl.Create("only")
	require.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, "only", tree.Root().Key())
	assert.Equal(t, 0, tree.Root().Height())
	assert.Nil(t, tree.Root().Left())
	assert.Nil(t, tree.Root().Right())
	assert.NoError(t, tree.Check())
}

func TestFindMinMaxEmpty(t *testing.T) {
	tree := avl.New[float64]()

	n, err := tree.FindMin()
	assert.Nil(t, n)
	assert.Equal(t, fault.ErrEmptyTree, err)
	assert.True(t, fault.IsErrEmptyTree(err))

	n, err = tree.FindMax()
	assert.Nil(t, n)
	assert.Equal(t, fault.ErrEmptyTree, err)

	tree.Insert(2.5)
	tree.Insert(-1.0)
	n, err = tree.FindMin()
	require.NoError(t, err)
	assert.Equal(t, -1.0, n.Key())
	n, err = tree.FindMax()
	require.NoError(t, err)
	assert.Equal(t, 2.5, n.Key())
}

func TestFloatNaNKeys(t *testing.T) {
	nan := math.NaN()

	tree := avl.New[float64]()
	for _, key := range []float64{1, 2, 3} {
		added, err := tree.Insert(key)
		require.NoError(t, err)
		require.True(t, added)
	}

	assert.Nil(t, tree.Find(nan), "NaN matched an existing key")
	assert.False(t, tree.Delete(nan), "NaN deleted an existing key")
	assert.Equal(t, []float64{1, 2, 3}, tree.Keys())

	added, err := tree.Insert(nan)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = tree.Insert(nan)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 4, tree.Count())
	assert.NoError(t, tree.Check())

	n := tree.Find(nan)
	require.NotNil(t, n)
	assert.True(t, math.IsNaN(n.Key()))
	n, err = tree.FindMin()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(n.Key()))
	assert.Equal(t, 2.0, tree.Find(2).Key())

	assert.True(t, tree.Delete(nan))
	assert.Equal(t, []float64{1, 2, 3}, tree.Keys())
	assert.NoError(t, tree.Check())

	single := avl.Create(nan)
	added, err = single.Insert(1.0)
	require.NoError(t, err)
	assert.True(t, added)
	keys := single.Keys()
	require.Len(t, keys, 2)
	assert.True(t, math.IsNaN(keys[0]))
	assert.Equal(t, 1.0, keys[1])
}

func TestNodeLimit(t *testing.T) {
	tree := avl.NewWithLimit[int](3)
	insertAll(t, tree, 1, 2, 3)

	rootBefore := tree.Root()
	added, err := tree.Insert(4)
	assert.False(t, added)
	assert.Equal(t, fault.ErrNodeLimitReached, err)
	assert.True(t, fault.IsErrExhausted(err))
	assert.Equal(t, []int{1, 2, 3}, tree.Keys())
	assert.Same(t, rootBefore, tree.Root())
	assert.NoError(t, tree.Check())

	// a duplicate needs no allocation
	added, err = tree.Insert(2)
	assert.False(t, added)
	assert.NoError(t, err)

	// released nodes are reused
	assert.True(t, tree.Delete(1))
	assert.Equal(t, 1, tree.Pooled())
	insertAll(t, tree, 4)
	assert.Equal(t, 0, tree.Pooled())
	assert.Equal(t, 3, tree.Allocated())
	assert.Equal(t, []int{2, 3, 4}, tree.Keys())
	assert.NoError(t, tree.Check())
}
