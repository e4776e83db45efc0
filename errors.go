// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"errors"
	"fmt"

	"github.com/jcampo/go-optset/text"
)

// Classification sentinels for OptionError.
// Match them with errors.Is, the user facing message lives in the OptionError itself.
var (
	// ErrMissingValue - An option with a required value reached the end of the input without one.
	ErrMissingValue = errors.New("")
	// ErrTooManyValues - A single invocation supplied more values than the option consumes.
	ErrTooManyValues = errors.New("")
	// ErrBundling - A bundle contained an unregistered option or one that requires a value.
	ErrBundling = errors.New("")
)

// ErrValueOutOfRange - A callback asked for a value index at or past the option's value count.
var ErrValueOutOfRange = errors.New("value index out of range")

// ConstructionError - A malformed option definition.
//
// Definition errors are programmer errors so the registration surface
// delivers them by panicking with a *ConstructionError, the same treatment
// duplicate aliases get.  Recover and errors.As if you need to inspect one.
type ConstructionError struct {
	Prototype string // Prototype or alias that failed to register
	Reason    string
	msg       string
}

func (e *ConstructionError) Error() string {
	return e.msg
}

// OptionError - An error raised while parsing, carrying the display name of
// the offending option as it was typed, indicator included.
type OptionError struct {
	Name string
	kind error
	msg  string
}

func (e *OptionError) Error() string {
	return e.msg
}

func (e *OptionError) Unwrap() error {
	return e.kind
}

// ConversionError - A value string could not be converted to the target type.
type ConversionError struct {
	Value string // Original value string
	Type  string // Target type name
	Name  string // Display name of the option
	Err   error  // Underlying conversion failure, nil when no converter was registered
	msg   string
}

func (e *ConversionError) Error() string {
	return e.msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (s *OptionSet) constructionError(prototype, reason string) *ConstructionError {
	return &ConstructionError{
		Prototype: prototype,
		Reason:    reason,
		msg:       fmt.Sprintf(s.localize(text.ErrorInvalidDefinition), prototype, reason),
	}
}

func (s *OptionSet) optionErrorf(kind error, name, format string, args ...interface{}) *OptionError {
	return &OptionError{
		Name: name,
		kind: kind,
		msg:  fmt.Sprintf(s.localize(format), args...),
	}
}
