// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option descriptor and prototype parsing.
package option

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Arity - Indicates whether an option consumes a value.
type Arity int

// Arities
const (
	None Arity = iota
	Optional
	Required
)

func (a Arity) String() string {
	switch a {
	case Optional:
		return "optional"
	case Required:
		return "required"
	}
	return "none"
}

// Option - immutable descriptor for a single registered option.
//
// The Set* methods are construction helpers used while the option is being
// defined; once the option is handed to a registry the descriptor never
// changes.
type Option struct {
	aliases     []string
	description string
	arity       Arity
	valueCount  int
	separators  []string
}

// Parse - Builds a descriptor from a '|'-joined prototype.
//
// Each alias may carry a single trailing terminator: '=' makes the value
// required, ':' makes it optional.  Aliases of the same option must agree on
// the terminator.  The value count defaults to 1 for value consuming options
// and 0 otherwise.
func Parse(prototype, description string) (*Option, error) {
	if prototype == "" {
		return nil, fmt.Errorf("empty prototype")
	}
	var terminator byte
	parts := strings.Split(prototype, "|")
	aliases := make([]string, 0, len(parts))
	for _, part := range parts {
		alias := part
		if n := len(part); n > 0 && (part[n-1] == '=' || part[n-1] == ':') {
			if terminator != 0 && terminator != part[n-1] {
				return nil, fmt.Errorf("conflicting value terminators '%c' and '%c'", terminator, part[n-1])
			}
			terminator = part[n-1]
			alias = part[:n-1]
		}
		if alias == "" {
			return nil, fmt.Errorf("empty alias")
		}
		if strings.ContainsAny(alias, "=:") {
			return nil, fmt.Errorf("alias '%s' contains a value terminator", alias)
		}
		aliases = append(aliases, alias)
	}
	opt := &Option{
		aliases:     aliases,
		description: description,
	}
	switch terminator {
	case '=':
		opt.arity = Required
		opt.valueCount = 1
	case ':':
		opt.arity = Optional
		opt.valueCount = 1
	}
	Logger.Printf("parsed %q: aliases %v, arity %s\n", prototype, aliases, opt.arity)
	return opt, nil
}

// SetValueCount - Sets the number of values consumed per invocation.
// Only valid during construction.
func (opt *Option) SetValueCount(n int) error {
	if n < 0 {
		return fmt.Errorf("value count %d is negative", n)
	}
	if n == 0 && opt.arity != None {
		return fmt.Errorf("value count 0 requires an option without a value terminator")
	}
	if n > 0 && opt.arity == None {
		return fmt.Errorf("value count %d requires a '=' or ':' value terminator", n)
	}
	if n <= 1 && len(opt.separators) > 0 {
		return fmt.Errorf("value count %d conflicts with declared separators", n)
	}
	opt.valueCount = n
	return nil
}

// SetSeparators - Declares the substrings used to split a single token into
// multiple values.  Only valid during construction and only when the option
// consumes more than one value.
func (opt *Option) SetSeparators(separators ...string) error {
	if opt.valueCount <= 1 {
		return fmt.Errorf("separators require a value count greater than 1")
	}
	for _, sep := range separators {
		if sep == "" {
			return fmt.Errorf("empty separator")
		}
	}
	opt.separators = append([]string{}, separators...)
	return nil
}

// Aliases - Returns a copy of the alias list in registration order.
func (opt *Option) Aliases() []string {
	return append([]string{}, opt.aliases...)
}

// Description - Returns the human readable description.
func (opt *Option) Description() string {
	return opt.description
}

// Arity - Returns the value arity.
func (opt *Option) Arity() Arity {
	return opt.arity
}

// ValueCount - Returns the number of values consumed per invocation.
func (opt *Option) ValueCount() int {
	return opt.valueCount
}

// Separators - Returns a copy of the declared value separators.
func (opt *Option) Separators() []string {
	return append([]string{}, opt.separators...)
}

// SplitValue - Splits a raw token into values using the declared separators.
// Options without separators, or that consume a single value, take the token whole.
func (opt *Option) SplitValue(raw string) []string {
	if opt.valueCount <= 1 || len(opt.separators) == 0 {
		return []string{raw}
	}
	out := []string{}
	rest := raw
	for {
		idx, width := -1, 0
		for _, sep := range opt.separators {
			if j := strings.Index(rest, sep); j >= 0 && (idx < 0 || j < idx) {
				idx, width = j, len(sep)
			}
		}
		if idx < 0 {
			return append(out, rest)
		}
		out = append(out, rest[:idx])
		rest = rest[idx+width:]
	}
}
