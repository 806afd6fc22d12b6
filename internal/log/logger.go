// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger is a leveled logger safe for concurrent use.
// A logger and all the children created from it share one mutex.
type Logger struct {
	settings settings
	children []*Logger
	mutex    *sync.Mutex
}

// New creates a root logger.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger inheriting the settings not set by the
// options given. The child is patched together with its parent.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.inherit(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	l.children = append(l.children, child)

	return child
}

// Patch applies the options to the logger and all its descendants.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patch(options)
}

func (l *Logger) patch(options []Option) {
	patched := newSettings(options)
	patched.inherit(l.settings)
	l.settings = patched

	for _, child := range l.children {
		child.patch(options)
	}
}
