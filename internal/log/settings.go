// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
	"strings"
)

type settings struct {
	writer  io.Writer
	level   *Level
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func (kvs contextKeyValues) String() string {
	return kvs.key + "=" + strings.Join(kvs.values, ",")
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// inherit fills the fields unset in s from the parent settings.
// The parent context is placed before the context of s.
func (s *settings) inherit(parent settings) {
	if s.writer == nil {
		s.writer = parent.writer
	}

	if s.level == nil && parent.level != nil {
		level := *parent.level
		s.level = &level
	}

	if len(parent.context) == 0 {
		return
	}
	context := make([]contextKeyValues, 0, len(parent.context)+len(s.context))
	for _, kvs := range parent.context {
		context = append(context, contextKeyValues{
			key:    kvs.key,
			values: append([]string(nil), kvs.values...),
		})
	}
	s.context = append(context, s.context...)
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stderr
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}
}
