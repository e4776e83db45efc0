// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"regexp"
	"strings"

	"github.com/jcampo/go-optset/internal/option"
	"github.com/jcampo/go-optset/text"
)

// Matcher - policy that decides whether a token matches a registered option
// and drives the invocation or value accumulation that follows.
//
// The registry holds its Matcher by reference, DefaultMatcher implements the
// stock matching order.  Alternate policies are built by delegation: rewrite
// the token, then hand it to the next policy in the chain.  A Matcher returns
// false when the token is not an option, in which case the parse driver
// passes it through to the caller.
type Matcher interface {
	Match(c *Context, token string) (handled bool, err error)
}

// 1: indicator
// 2: name
// 3: separator
// 4: inline value
var tokenRegex = regexp.MustCompile(`^(--|-|/)([^:=]+)(?:([:=])(.*))?$`)

// TokenParts - The pieces of a token that looks like an option.
type TokenParts struct {
	Indicator string // '-', '--' or '/'
	Name      string // Option name as typed, indicator stripped
	Separator string // ':' or '=' when an inline value is present
	Value     string // Inline value, may be empty even when present
	HasValue  bool
}

// SplitToken - Matches a token against the option pattern
// `(--|-|/)name([:=]value)?` and extracts its parts.  Returns false for
// tokens that can't be options, including the lonesome '-' and the '--'
// terminator.
func SplitToken(token string) (TokenParts, bool) {
	// The pattern would otherwise read '--' as indicator '-' with name '-'.
	if token == "--" {
		return TokenParts{}, false
	}
	match := tokenRegex.FindStringSubmatch(token)
	if match == nil {
		return TokenParts{}, false
	}
	p := TokenParts{
		Indicator: match[1],
		Name:      match[2],
	}
	if match[3] != "" {
		p.Separator = match[3]
		p.Value = match[4]
		p.HasValue = true
	}
	return p, true
}

// DefaultMatcher - The stock matching policy.
//
// Resolution is attempted in a fixed priority order: exact alias match first,
// then the trailing '+'/'-' toggle suffix, then single dash bundling.  An
// exact match always beats a toggle, a toggle always beats a bundle, and
// bundling never applies to the '--' or '/' indicators.
type DefaultMatcher struct{}

func (DefaultMatcher) Match(c *Context, token string) (bool, error) {
	parts, ok := SplitToken(token)
	if !ok {
		return false, nil
	}
	return c.matchParts(token, parts)
}

// FoldMatcher - Case insensitive matching by delegation: the extracted name
// is lower cased and the rebuilt token is handed to the Next policy
// (DefaultMatcher when nil).  Inline values keep their case.
type FoldMatcher struct {
	Next Matcher
}

func (m FoldMatcher) Match(c *Context, token string) (bool, error) {
	next := m.Next
	if next == nil {
		next = DefaultMatcher{}
	}
	parts, ok := SplitToken(token)
	if !ok {
		return false, nil
	}
	folded := parts.Indicator + strings.ToLower(parts.Name)
	if parts.HasValue {
		folded += parts.Separator + parts.Value
	}
	return next.Match(c, folded)
}

// matchParts - Name resolution steps of the matching algorithm.
func (c *Context) matchParts(token string, p TokenParts) (bool, error) {
	set := c.set

	// Exact alias match.
	if opt, ok := set.index[p.Name]; ok {
		name := p.Indicator + p.Name
		if opt.Arity() == option.None {
			return true, c.invokeFlag(opt, name, token, true)
		}
		c.active = opt
		c.activeName = name
		if p.HasValue {
			return true, c.accumulate(p.Value)
		}
		return true, nil
	}

	// Toggle suffix.  Only resolves when the stripped base name maps to an
	// arity None option, otherwise the token falls through to bundling.
	if n := len(p.Name); n >= 2 && !p.HasValue {
		suffix := p.Name[n-1]
		if suffix == '+' || suffix == '-' {
			if opt, ok := set.index[p.Name[:n-1]]; ok && opt.Arity() == option.None {
				return true, c.invokeFlag(opt, token, token, suffix == '+')
			}
		}
	}

	// Bundling, single dash indicator only.
	if p.Indicator == "-" {
		return c.matchBundle(token, p)
	}

	return false, nil
}

// matchBundle - Single dash bundling.
//
// When the first character owns a value consuming option the rest of the
// token is taken whole as its first value (-DNAME style).  Otherwise every
// character must be a registered arity None option and each is invoked in
// turn; an unregistered character, or one requiring a value past the first
// position, is a bundling error.  An inline value left over after a flag
// bundle ('-ab=x') is a bundling error too, its separator can't be a flag.
func (c *Context) matchBundle(token string, p TokenParts) (bool, error) {
	set := c.set
	runes := []rune(p.Name)

	first, ok := set.index[string(runes[0])]
	if !ok {
		return false, nil
	}
	if first.Arity() != option.None {
		c.active = first
		c.activeName = "-" + string(runes[0])
		rest := string(runes[1:])
		if p.HasValue {
			rest += p.Separator + p.Value
		}
		if rest == "" {
			return true, nil
		}
		return true, c.accumulate(rest)
	}

	for _, r := range runes {
		name := string(r)
		opt, ok := set.index[name]
		if !ok {
			return true, set.optionErrorf(ErrBundling, "-"+name, text.ErrorBundlingUnknown, "-"+name, token)
		}
		if opt.Arity() != option.None {
			return true, set.optionErrorf(ErrBundling, "-"+name, text.ErrorBundlingValue, "-"+name, token)
		}
		if err := c.invokeFlag(opt, "-"+name, p.Name, true); err != nil {
			return true, err
		}
	}
	if p.HasValue {
		return true, set.optionErrorf(ErrBundling, "-"+p.Separator, text.ErrorBundlingUnknown, "-"+p.Separator, token)
	}
	return true, nil
}

// invokeFlag - immediate invocation of an arity None option.
func (c *Context) invokeFlag(opt *Option, name, echo string, enabled bool) error {
	c.active = opt
	c.activeName = name
	c.flagEcho = echo
	c.flagOn = enabled
	return opt.Invoke(c)
}
