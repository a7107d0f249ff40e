// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avl-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultKeyType = keyTypeInt
)

// supported key types
const (
	keyTypeInt    = "int"
	keyTypeString = "string"
)

// TreeType - options for the tree being replayed
type TreeType struct {
	KeyType       string `gluamapper:"key_type" json:"key_type"`
	NodeLimit     int    `gluamapper:"node_limit" json:"node_limit"`
	CheckEachStep bool   `gluamapper:"check_each_step" json:"check_each_step"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Tree          TreeType             `gluamapper:"tree" json:"tree"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the values used when no configuration file is given
func defaultConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,

		Tree: TreeType{
			KeyType:       defaultKeyType,
			NodeLimit:     0,
			CheckEachStep: false,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{ // fresh map, the parser merges into it
				logger.DefaultTag: "info",
			},
		},
	}
}

// will read and decode the configuration, finish must be called
// once any command line overrides have been applied
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration("")

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotADirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	return options, nil
}

// validate the tree options and settle the logging paths
func (c *Configuration) finish() error {

	c.Tree.KeyType = strings.ToLower(c.Tree.KeyType)
	switch c.Tree.KeyType {
	case keyTypeInt, keyTypeString:
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidKeyType, c.Tree.KeyType)
	}

	if c.Tree.NodeLimit < 0 {
		c.Tree.NodeLimit = 0
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(c.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("%w: %q", fault.ErrNotADirectory, c.DataDirectory)
	}

	// the log file must be a simple name inside the log directory
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("%w: %q", fault.ErrLogFileNotPlain, c.Logging.File)
	}

	c.Logging.Directory = util.EnsureAbsolute(c.DataDirectory, c.Logging.Directory)
	return util.EnsureDirectory(c.Logging.Directory)
}
