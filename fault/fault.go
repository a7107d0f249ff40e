// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type EmptyTreeError GenericError
type ExhaustedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolation     = InvalidError("sub-tree heights differ by more than one")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrEmptyTree            = EmptyTreeError("tree is empty")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidKeyType       = InvalidError("invalid key type")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyParseFail         = ProcessError("parse key failed")
	ErrLogFileNotPlain      = InvalidError("log file is not a plain name")
	ErrMissingKey           = InvalidError("key is required")
	ErrNodeLimitReached     = ExhaustedError("node limit reached")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrOrderViolation       = InvalidError("keys out of order")
	ErrUnexpectedArgument   = InvalidError("unexpected argument")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyTreeError) Error() string { return string(e) }
func (e ExhaustedError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrEmptyTree(e error) bool { var c EmptyTreeError; return errors.As(e, &c) }
func IsErrExhausted(e error) bool { var c ExhaustedError; return errors.As(e, &c) }
func IsErrExists(e error) bool    { var c ExistsError; return errors.As(e, &c) }
func IsErrInvalid(e error) bool   { var c InvalidError; return errors.As(e, &c) }
func IsErrNotFound(e error) bool  { var c NotFoundError; return errors.As(e, &c) }
func IsErrProcess(e error) bool   { var c ProcessError; return errors.As(e, &c) }
