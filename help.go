// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"io"
	"strconv"
	"strings"

	"github.com/jcampo/go-optset/internal/option"
	"github.com/jcampo/go-optset/text"
)

// descriptionColumn - character offset where option descriptions start.
const descriptionColumn = 29

// WriteOptionDescriptions - Writes one entry per option in registration
// order: the aliases, single dash for one character aliases and double dash
// otherwise, comma separated, followed by '=VALUE' for a required value or
// '[=VALUE]' for an optional one.  The description starts at column 29; an
// alias portion that reaches that column pushes the description to the next
// line at the same offset.  Every literal string is routed through the
// localizer.
func (s *OptionSet) WriteOptionDescriptions(w io.Writer) error {
	var out strings.Builder
	for _, opt := range s.options {
		line := s.optionSynopsis(opt)
		out.WriteString(line)
		if len(line) >= descriptionColumn {
			out.WriteString("\n")
			out.WriteString(strings.Repeat(" ", descriptionColumn))
		} else {
			out.WriteString(strings.Repeat(" ", descriptionColumn-len(line)))
		}
		out.WriteString(s.localize(opt.Description()))
		out.WriteString("\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// optionSynopsis - the alias and value placeholder portion of one entry.
func (s *OptionSet) optionSynopsis(opt *Option) string {
	var line strings.Builder
	line.WriteString("  ")
	for i, alias := range opt.Aliases() {
		if i > 0 {
			line.WriteString(", ")
		}
		if len(alias) == 1 {
			line.WriteString("-")
		} else {
			line.WriteString("--")
		}
		line.WriteString(alias)
	}
	if opt.Arity() != option.None {
		optional := opt.Arity() == option.Optional
		if optional {
			line.WriteString(s.localize("["))
		}
		line.WriteString(s.localize("=" + s.valueName(opt, 0)))
		separator := " "
		if seps := opt.Separators(); len(seps) > 0 {
			separator = seps[0]
		}
		for i := 1; i < opt.ValueCount(); i++ {
			line.WriteString(s.localize(separator + s.valueName(opt, i)))
		}
		if optional {
			line.WriteString(s.localize("]"))
		}
	}
	return line.String()
}

// valueName - placeholder for value position i: VALUE, or VALUE1..VALUEn for
// options that consume several values.
func (s *OptionSet) valueName(opt *Option, i int) string {
	if opt.ValueCount() > 1 {
		return text.HelpValueName + strconv.Itoa(i+1)
	}
	return text.HelpValueName
}
