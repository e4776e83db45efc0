// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optset - callback driven option parser following Getopt::Long
conventions: long and short options, single dash bundling, optional and
required values, boolean toggles and '--' termination.

It operates on any given slice of strings and returns the tokens that were
not consumed as options, in their original order.  Matched options invoke
the callback they were registered with.

	set := optset.New()
	var verbose bool
	var output string
	set.AddFlag("v|verbose", "increase verbosity", func(enabled bool) {
		verbose = enabled
	})
	set.Add("o|output=", "output file", func(value string) {
		output = value
	})
	rest, err := set.Parse(os.Args[1:])

Options are declared with a prototype: '|'-joined aliases with an optional
trailing '=' (the option requires a value) or ':' (the value is optional).
Typed options route through the converter registry:

	optset.Value(set, "j|jobs=", "number of workers", func(n int) {
		jobs = n
	})

Definition errors panic, they are programmer errors that have to be fixed.
Parse errors are returned.
*/
package optset

import (
	"fmt"
	"io"
	"log"

	"github.com/jcampo/go-optset/internal/option"
	"github.com/jcampo/go-optset/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Arity - whether an option takes no value, an optional value or a required value.
type Arity = option.Arity

// Arities
const (
	None     = option.None
	Optional = option.Optional
	Required = option.Required
)

// Localizer - message formatting hook applied to every user visible string
// before its placeholders are expanded.
type Localizer func(format string) string

func identity(format string) string {
	return format
}

// Option - a registered option: an immutable descriptor plus the bound callback.
type Option struct {
	def    *option.Option
	action func(c *Context) error
}

// Aliases - Returns a copy of the alias list in registration order.
func (opt *Option) Aliases() []string {
	return opt.def.Aliases()
}

// Description - Returns the human readable description.
func (opt *Option) Description() string {
	return opt.def.Description()
}

// Arity - Returns the value arity.
func (opt *Option) Arity() Arity {
	return opt.def.Arity()
}

// ValueCount - Returns the number of values consumed per invocation.
func (opt *Option) ValueCount() int {
	return opt.def.ValueCount()
}

// Separators - Returns a copy of the declared value separators.
func (opt *Option) Separators() []string {
	return opt.def.Separators()
}

// Invoke - Dispatches to the bound callback with the given context, then
// clears the context's active option, active name and collected values.
// This is the single reset point.
func (opt *Option) Invoke(c *Context) error {
	defer c.reset()
	return opt.action(c)
}

// OptionSet - ordered collection of options plus an alias index.
//
// The order of registration defines the help text order, the index makes
// lookups order independent.  An OptionSet may be mutated between Parse
// calls; a Parse call itself never mutates the set, only its transient
// Context, so concurrent Parse calls on one set are safe as long as nobody
// mutates the set while they run.
type OptionSet struct {
	options    []*Option
	index      map[string]*Option
	matcher    Matcher
	converters *ConverterRegistry
	localize   Localizer
}

// ModifyFn - Function signature for the New configuration arguments.
type ModifyFn func(set *OptionSet)

// New returns an empty OptionSet.
// This is the starting point when using go-optset.
// For example:
//
//	set := optset.New(optset.WithLocalizer(catalog.Get))
func New(mods ...ModifyFn) *OptionSet {
	set := &OptionSet{
		index:      map[string]*Option{},
		matcher:    DefaultMatcher{},
		converters: NewConverterRegistry(),
		localize:   identity,
	}
	for _, mod := range mods {
		mod(set)
	}
	return set
}

// WithLocalizer - Sets the message formatting hook.  Defaults to identity.
func WithLocalizer(l Localizer) ModifyFn {
	return func(set *OptionSet) {
		if l != nil {
			set.localize = l
		}
	}
}

// WithMatcher - Sets the matching policy.  Defaults to DefaultMatcher.
func WithMatcher(m Matcher) ModifyFn {
	return func(set *OptionSet) {
		if m != nil {
			set.matcher = m
		}
	}
}

// WithConverters - Sets the converter registry used by typed options.
func WithConverters(r *ConverterRegistry) ModifyFn {
	return func(set *OptionSet) {
		if r != nil {
			set.converters = r
		}
	}
}

// Converters - Returns the converter registry used by typed options.
func (s *OptionSet) Converters() *ConverterRegistry {
	return s.converters
}

// Options - Returns the registered options in registration order.
func (s *OptionSet) Options() []*Option {
	return append([]*Option{}, s.options...)
}

// Lookup - Returns the option registered under the given alias.
func (s *OptionSet) Lookup(alias string) (*Option, bool) {
	opt, ok := s.index[alias]
	return opt, ok
}

// define - parse a prototype, panic on definition errors.
func (s *OptionSet) define(prototype, description string) *option.Option {
	def, err := option.Parse(prototype, description)
	if err != nil {
		panic(s.constructionError(prototype, err.Error()))
	}
	return def
}

// mustSet - construction helper panic wrapper.
func (s *OptionSet) mustSet(prototype string, err error) {
	if err != nil {
		panic(s.constructionError(prototype, err.Error()))
	}
}

// register - will *panic* if an alias is defined twice.
// This is not an error because the programmer has to fix this!
func (s *OptionSet) register(def *option.Option, action func(c *Context) error) *OptionSet {
	opt := &Option{def: def, action: action}
	aliases := def.Aliases()
	for _, alias := range aliases {
		if prev, ok := s.index[alias]; ok {
			panic(&ConstructionError{
				Prototype: alias,
				Reason:    "already defined",
				msg:       fmt.Sprintf(s.localize(text.ErrorAlreadyDefined), alias, prev.Aliases()[0]),
			})
		}
	}
	for _, alias := range aliases {
		s.index[alias] = opt
	}
	s.options = append(s.options, opt)
	Logger.Printf("registered %v, arity: %s, count: %d\n", aliases, def.Arity(), def.ValueCount())
	return s
}

// Remove - Removes the option registered under the given alias, dropping all
// of its aliases atomically.  Returns whether an option was removed.
func (s *OptionSet) Remove(alias string) bool {
	opt, ok := s.index[alias]
	if !ok {
		return false
	}
	for _, a := range opt.def.Aliases() {
		delete(s.index, a)
	}
	for i, o := range s.options {
		if o == opt {
			s.options = append(s.options[:i], s.options[i+1:]...)
			break
		}
	}
	return true
}

// AddFlag - Registers an arity None option.
//
// The callback receives true when the option is passed, and false only when
// it is turned off with the '-' toggle suffix, for example '--verbose-'.
func (s *OptionSet) AddFlag(prototype, description string, action func(enabled bool)) *OptionSet {
	def := s.define(prototype, description)
	if def.Arity() != option.None {
		panic(s.constructionError(prototype, "flag options can't declare a value terminator"))
	}
	return s.register(def, func(c *Context) error {
		action(c.Enabled())
		return nil
	})
}

// Add - Registers a single value option.
//
// The prototype must declare a value with '=' or ':'.  When the value is
// optional and absent the callback receives the empty string.
func (s *OptionSet) Add(prototype, description string, action func(value string)) *OptionSet {
	def := s.define(prototype, description)
	if def.Arity() == option.None {
		panic(s.constructionError(prototype, "value options must declare '=' or ':'"))
	}
	return s.register(def, func(c *Context) error {
		v, err := c.Value(0)
		if err != nil {
			return err
		}
		action(v)
		return nil
	})
}

// AddKeyValue - Registers an option that consumes a key and a value per
// invocation, either as two tokens ('-D key value') or split out of a single
// token on '=' or ':' ('-Dkey=value').
func (s *OptionSet) AddKeyValue(prototype, description string, action func(key, value string)) *OptionSet {
	def := s.define(prototype, description)
	if def.Arity() == option.None {
		panic(s.constructionError(prototype, "key/value options must declare '=' or ':'"))
	}
	s.mustSet(prototype, def.SetValueCount(2))
	s.mustSet(prototype, def.SetSeparators("=", ":"))
	return s.register(def, func(c *Context) error {
		k, err := c.Value(0)
		if err != nil {
			return err
		}
		v, err := c.Value(1)
		if err != nil {
			return err
		}
		action(k, v)
		return nil
	})
}

// AddMulti - Registers an option that consumes count values per invocation.
// When separators are given a single token is split into multiple values,
// for example '--pair=a,b' with separator ",".  The callback receives the
// values supplied, which for an optional arity may be fewer than count.
func (s *OptionSet) AddMulti(prototype, description string, count int, separators []string, action func(values []string)) *OptionSet {
	def := s.define(prototype, description)
	if def.Arity() == option.None {
		panic(s.constructionError(prototype, "multi value options must declare '=' or ':'"))
	}
	s.mustSet(prototype, def.SetValueCount(count))
	if len(separators) > 0 {
		s.mustSet(prototype, def.SetSeparators(separators...))
	}
	return s.register(def, func(c *Context) error {
		action(c.Values())
		return nil
	})
}

// AddContext - Registers an option whose callback receives the parse Context
// directly.  The callback probes values through Context.Value and its error,
// if any, aborts the Parse call.
func (s *OptionSet) AddContext(prototype, description string, action func(c *Context) error) *OptionSet {
	def := s.define(prototype, description)
	return s.register(def, action)
}

// Value - Registers a single value option bound to type T through the set's
// converter registry.
//
// A prototype without a terminator is treated as requiring a value.  An
// absent optional value converts to the zero value of T without consulting
// the registry.  Package level because Go methods can't declare type
// parameters.
func Value[T any](s *OptionSet, prototype, description string, action func(value T)) *OptionSet {
	if !containsTerminator(prototype) {
		prototype += "="
	}
	def := s.define(prototype, description)
	return s.register(def, func(c *Context) error {
		raw, err := c.Value(0)
		if err != nil {
			return err
		}
		if !c.Supplied(0) {
			var zero T
			action(zero)
			return nil
		}
		v, err := convert[T](s.converters, s.localize, c.Name(), raw)
		if err != nil {
			return err
		}
		action(v)
		return nil
	})
}

func containsTerminator(prototype string) bool {
	for i := 0; i < len(prototype); i++ {
		if prototype[i] == '=' || prototype[i] == ':' {
			return true
		}
	}
	return false
}
