// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"github.com/jcampo/go-optset/internal/option"
	"github.com/jcampo/go-optset/internal/sliceiterator"
	"github.com/jcampo/go-optset/text"
)

// Parse - Runs the arguments through the matching algorithm and returns the
// tokens that were not consumed as options, in their original order.
//
// Matched options invoke their callback as they complete, so callbacks
// already run are observable even when a later token makes Parse return an
// error.  Unrecognized tokens are never an error, they are passed through.
// Parse never mutates the OptionSet, all per call state lives in a transient
// Context that is discarded on return.
func (s *OptionSet) Parse(args []string) ([]string, error) {
	if args == nil {
		args = []string{}
	}
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))

	c := newContext(s)
	remaining := []string{}

	iterator := sliceiterator.New(args)
	for iterator.Next() {
		c.tokenIndex = iterator.Index()
		token := iterator.Value()

		// An option is waiting for values: the token is taken whole as a
		// value, it is not looked at as a flag.
		if c.active != nil {
			if err := c.accumulate(token); err != nil {
				return nil, err
			}
			continue
		}

		// Terminator: consume it and pass everything after through.
		if token == "--" {
			for iterator.Next() {
				remaining = append(remaining, iterator.Value())
			}
			break
		}

		handled, err := s.matcher.Match(c, token)
		if err != nil {
			return nil, err
		}
		if !handled {
			remaining = append(remaining, token)
		}
	}

	// End of input with an option still pending.
	if c.active != nil {
		if c.active.Arity() == option.Required {
			return nil, s.optionErrorf(ErrMissingValue, c.activeName, text.ErrorMissingValue, c.activeName)
		}
		if err := c.active.Invoke(c); err != nil {
			return nil, err
		}
	}

	Logger.Printf("Parse returns %v\n", remaining)
	return remaining, nil
}

// accumulate - Appends values for the active option, splitting the raw token
// by the option's separators.  Invokes the option as soon as its value count
// is satisfied; raises an error when a single token splits into more values
// than the option consumes.
func (c *Context) accumulate(raw string) error {
	values := c.active.def.SplitValue(raw)
	c.values = append(c.values, values...)
	count := c.active.ValueCount()
	Logger.Printf("accumulate %q for %s: %d/%d\n", values, c.activeName, len(c.values), count)
	if len(c.values) > count {
		return c.set.optionErrorf(ErrTooManyValues, c.activeName, text.ErrorTooManyValues, c.activeName)
	}
	if len(c.values) == count {
		return c.active.Invoke(c)
	}
	return nil
}
