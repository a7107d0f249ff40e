// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - create a directory, and any parents, if it does
// not already exist; fails if the path exists but is not a directory
func EnsureDirectory(name string) error {
	if fileInfo, err := os.Stat(name); nil == err {
		if !fileInfo.IsDir() {
			return fault.ErrNotADirectory
		}
		return nil
	}
	return os.MkdirAll(name, 0o700)
}
