// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"fmt"

	"github.com/jcampo/go-optset/internal/option"
	"github.com/jcampo/go-optset/text"
)

// Context - mutable per Parse state.
//
// A Context is created at the start of a Parse call and discarded at its end.
// It tracks the option currently accumulating values, the exact token text
// that matched it, the values collected so far and the position of the token
// being scanned.  Callbacks receive it to probe the collected values.
type Context struct {
	set        *OptionSet
	active     *Option
	activeName string
	values     []string
	tokenIndex int

	// Flag invocation state.  Arity None options don't collect values, the
	// toggle suffix signal and the name echo travel on the side.
	flagEcho string
	flagOn   bool
}

func newContext(set *OptionSet) *Context {
	return &Context{set: set}
}

// OptionSet - Returns the registry this Context was created from.
func (c *Context) OptionSet() *OptionSet {
	return c.set
}

// Option - Returns the option currently accumulating values, nil when none is active.
func (c *Context) Option() *Option {
	return c.active
}

// Name - Returns the token text that matched the active option, indicator included.
func (c *Context) Name() string {
	return c.activeName
}

// TokenIndex - Returns the 0 based position of the token currently being scanned.
func (c *Context) TokenIndex() int {
	return c.tokenIndex
}

// Enabled - For arity None options, reports whether the option was turned on.
// Only a '-' toggle suffix (for example '--debug-') turns an option off.
func (c *Context) Enabled() bool {
	return c.flagOn
}

// FlagEcho - Returns the raw text that triggered a flag invocation.
// For a bundled flag this is the bundle body, not just the one character.
func (c *Context) FlagEcho() string {
	return c.flagEcho
}

// Count - Returns the number of values supplied so far.
func (c *Context) Count() int {
	return len(c.values)
}

// Supplied - Reports whether the value at index i was supplied on the command line.
func (c *Context) Supplied(i int) bool {
	return i >= 0 && i < len(c.values)
}

// Value - Returns the value at index i.
//
// Asking for an index at or past the option's value count fails wrapping
// ErrValueOutOfRange.  Asking for a position that was not supplied fails with
// a missing value *OptionError when the value is required, and returns the
// empty string with a nil error when the value is optional.  This lets
// callbacks probe optional positions without a separate presence check;
// use Supplied to tell an empty value from an absent one.
func (c *Context) Value(i int) (string, error) {
	if c.active == nil {
		return "", fmt.Errorf("no active option: %w", ErrValueOutOfRange)
	}
	if i < 0 || i >= c.active.ValueCount() {
		return "", fmt.Errorf("index %d with value count %d: %w", i, c.active.ValueCount(), ErrValueOutOfRange)
	}
	if i >= len(c.values) {
		if c.active.Arity() == option.Required {
			return "", c.set.optionErrorf(ErrMissingValue, c.activeName, text.ErrorMissingValue, c.activeName)
		}
		return "", nil
	}
	return c.values[i], nil
}

// Values - Returns a copy of the values supplied so far.
func (c *Context) Values() []string {
	return append([]string{}, c.values...)
}

// reset - single reset point, run after every option invocation.
func (c *Context) reset() {
	c.active = nil
	c.activeName = ""
	c.values = nil
	c.flagEcho = ""
	c.flagOn = false
}
