// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'C'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "key-type", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "node-limit", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--check] [--config-file=FILE] [--key-type=int|string] [--node-limit=N] [script...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	var theConfiguration *Configuration
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		if !util.EnsureFileExists(configurationFile) {
			exitwithstatus.Message("%s: configuration file: %q does not exist", program, configurationFile)
		}
		theConfiguration, err = getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		theConfiguration = defaultConfiguration(filepath.Join(os.TempDir(), "avl-replay"))
		if err := util.EnsureDirectory(theConfiguration.DataDirectory); nil != err {
			exitwithstatus.Message("%s: data directory error: %s", program, err)
		}
	}

	// command line overrides
	if len(options["key-type"]) > 0 {
		theConfiguration.Tree.KeyType = options["key-type"][0]
	}
	if len(options["node-limit"]) > 0 {
		n, err := parseInt(options["node-limit"][0])
		if nil != err {
			exitwithstatus.Message("%s: node-limit: %s", program, err)
		}
		theConfiguration.Tree.NodeLimit = n
	}
	if len(options["check"]) > 0 {
		theConfiguration.Tree.CheckEachStep = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}
	if err := theConfiguration.finish(); nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	if err := replay(theConfiguration.Tree, arguments, os.Stdout, log); nil != err {
		log.Criticalf("replay error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// replay - run the named scripts, or stdin if none, against one tree
func replay(options TreeType, scripts []string, out io.Writer, log *logger.L) error {
	switch options.KeyType {
	case keyTypeInt:
		return runScripts(newSession(options, parseInt, out, log), scripts)
	case keyTypeString:
		return runScripts(newSession(options, parseString, out, log), scripts)
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidKeyType, options.KeyType)
	}
}

func runScripts[T cmp.Ordered](s *session[T], scripts []string) error {
	defer s.observer.summary()

	if 0 == len(scripts) {
		return s.run("stdin", os.Stdin)
	}
	for _, name := range scripts {
		f, err := os.Open(name)
		if nil != err {
			return err
		}
		err = s.run(name, f)
		f.Close()
		if nil != err {
			return err
		}
	}
	return nil
}
