// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree keyed by any ordered type, with
// the subtree height cached in every node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert and delete are recursive routines that return the new root
// of the subtree they were given, the caller replaces its own child
// link with the result.  After every completed insert or delete the
// heights of the two subtrees of any node differ by at most one.
//
// Keys are unique, inserting a key that is already present does
// nothing.  Deleting a node with two children copies the smallest key
// of its right subtree into the node and then deletes that key from
// the right subtree, so a *Node returned by Find may carry a
// different key after a later delete.
//
// Keys are ordered by cmp.Compare, so a floating point NaN is a key
// like any other: it sorts before every number and only matches NaN.
package avl
