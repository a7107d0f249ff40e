// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// one tree and the commands applied to it
type session[T cmp.Ordered] struct {
	tree     *avl.Tree[T]
	observer *logObserver[T]
	parse    func(string) (T, error)
	out      io.Writer
	log      *logger.L
	check    bool
}

// key parsers, selected by the configured key type
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrKeyParseFail, s)
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func newSession[T cmp.Ordered](options TreeType, parse func(string) (T, error), out io.Writer, log *logger.L) *session[T] {
	s := &session[T]{
		tree:     avl.NewWithLimit[T](options.NodeLimit),
		observer: newLogObserver[T](log),
		parse:    parse,
		out:      out,
		log:      log,
		check:    options.CheckEachStep,
	}
	s.tree.SetObserver(s.observer)
	return s
}

// run - execute every line of a script
func (s *session[T]) run(name string, r io.Reader) error {
	s.log.Infof("replay: %q", name)

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue
		}
		if err := s.execute(strings.ToLower(fields[0]), fields[1:]); nil != err {
			s.log.Errorf("%s:%d: %s", name, lineNumber, err)
			return fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	s.log.Infof("replay: %q finished  count: %d  height: %d", name, s.tree.Count(), s.tree.Height())
	return nil
}

// parse all the key operands of a command
func (s *session[T]) keys(arguments []string) ([]T, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingKey
	}
	keys := make([]T, 0, len(arguments))
	for _, a := range arguments {
		key, err := s.parse(a)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// execute a single command
func (s *session[T]) execute(command string, arguments []string) error {
	s.log.Debugf("command: %s %v", command, arguments)

	switch command {
	case "insert", "add":
		keys, err := s.keys(arguments)
		if nil != err {
			return err
		}
		for _, key := range keys {
			added, err := s.tree.Insert(key)
			switch {
			case nil != err:
				s.log.Warnf("insert: %v  error: %s", key, err)
				fmt.Fprintf(s.out, "insert %v: %s\n", key, err)
			case added:
				fmt.Fprintf(s.out, "insert %v: added\n", key)
			default:
				fmt.Fprintf(s.out, "insert %v: present\n", key)
			}
			if err := s.verify(); nil != err {
				return err
			}
		}

	case "delete", "remove":
		keys, err := s.keys(arguments)
		if nil != err {
			return err
		}
		for _, key := range keys {
			if s.tree.Delete(key) {
				fmt.Fprintf(s.out, "delete %v: removed\n", key)
			} else {
				fmt.Fprintf(s.out, "delete %v: absent\n", key)
			}
			if err := s.verify(); nil != err {
				return err
			}
		}

	case "find":
		keys, err := s.keys(arguments)
		if nil != err {
			return err
		}
		for _, key := range keys {
			if node := s.tree.Find(key); nil != node {
				fmt.Fprintf(s.out, "find %v: found  height: %d\n", key, node.Height())
			} else {
				fmt.Fprintf(s.out, "find %v: %s\n", key, fault.ErrKeyNotFound)
			}
		}

	case "min", "max":
		if 0 != len(arguments) {
			return fault.ErrUnexpectedArgument
		}
		find := s.tree.FindMin
		if "max" == command {
			find = s.tree.FindMax
		}
		node, err := find()
		if nil != err {
			fmt.Fprintf(s.out, "%s: %s\n", command, err)
		} else {
			fmt.Fprintf(s.out, "%s: %v\n", command, node.Key())
		}

	case "list":
		if 0 != len(arguments) {
			return fault.ErrUnexpectedArgument
		}
		items := make([]string, 0, s.tree.Count())
		s.tree.Walk(func(key T) bool {
			items = append(items, fmt.Sprint(key))
			return true
		})
		fmt.Fprintf(s.out, "list: %s\n", strings.Join(items, " "))

	case "count":
		if 0 != len(arguments) {
			return fault.ErrUnexpectedArgument
		}
		fmt.Fprintf(s.out, "count: %d\n", s.tree.Count())

	case "height":
		if 0 != len(arguments) {
			return fault.ErrUnexpectedArgument
		}
		fmt.Fprintf(s.out, "height: %d\n", s.tree.Height())

	case "print":
		depth := s.tree.Print(s.out)
		s.log.Debugf("print depth: %d", depth)

	case "check":
		if err := s.tree.Check(); nil != err {
			fault.Criticalf("check failed: %s", err)
			return err
		}
		fmt.Fprintf(s.out, "check: ok\n")

	case "destroy":
		n := s.tree.Count()
		s.tree.Destroy()
		fmt.Fprintf(s.out, "destroy: %d released\n", n)

	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidCommand, command)
	}
	return nil
}

// optional check after each mutation
func (s *session[T]) verify() error {
	if !s.check {
		return nil
	}
	if err := s.tree.Check(); nil != err {
		fault.Criticalf("check failed: %s", err)
		return err
	}
	return nil
}
