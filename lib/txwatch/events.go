// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package txwatch

import (
	"fmt"
)

const systemPallet = "System"

// Event is an event emitted by a runtime pallet.
type Event struct {
	Pallet string
	Name   string
	Fields []Field
}

// Is returns true if the event is the event of the pallet given.
func (e Event) Is(pallet, name string) bool {
	return e.Pallet == pallet && e.Name == name
}

func (e Event) String() string {
	return e.Pallet + "." + e.Name
}

// Field is a decoded event field.
type Field struct {
	Name  string
	Value interface{}
}

func (f Field) String() string {
	if f.Name == "" {
		return fmt.Sprint(f.Value)
	}
	return fmt.Sprintf("%s: %v", f.Name, f.Value)
}

// EventDecoder decodes the event of type E identified by its pallet and name.
type EventDecoder[E any] interface {
	Pallet() string
	Name() string
	Decode(fields []Field) (E, error)
}

// DontCare is an event decoder never matching any event, for callers
// not interested in any particular event.
type DontCare struct{}

// Pallet returns a pallet name no runtime uses.
func (DontCare) Pallet() string { return "NONE" }

// Name returns an event name no runtime uses.
func (DontCare) Name() string { return "NONE" }

// Decode is never called since no event matches.
func (DontCare) Decode([]Field) (DontCare, error) { return DontCare{}, nil }

// FindFirst decodes the first event matching the decoder. It returns a nil
// event if there is no match.
func FindFirst[E any](events []Event, decoder EventDecoder[E]) (*E, error) {
	for _, event := range events {
		if !event.Is(decoder.Pallet(), decoder.Name()) {
			continue
		}

		decoded, err := decoder.Decode(event.Fields)
		if err != nil {
			return nil, fmt.Errorf("decoding event %s: %w", event, err)
		}
		return &decoded, nil
	}
	return nil, nil //nolint:nilnil
}
