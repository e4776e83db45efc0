// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		prototype  string
		aliases    []string
		arity      Arity
		valueCount int
		err        bool
	}{
		{"flag", "v", []string{"v"}, None, 0, false},
		{"flag aliases", "v|verbose", []string{"v", "verbose"}, None, 0, false},
		{"required", "o|output=", []string{"o", "output"}, Required, 1, false},
		{"required on first alias", "o=|output", []string{"o", "output"}, Required, 1, false},
		{"optional", "c|color:", []string{"c", "color"}, Optional, 1, false},
		{"agreeing terminators", "o=|output=", []string{"o", "output"}, Required, 1, false},
		{"empty prototype", "", nil, None, 0, true},
		{"empty alias", "a|", nil, None, 0, true},
		{"leading pipe", "|a", nil, None, 0, true},
		{"conflicting terminators", "a=|b:", nil, None, 0, true},
		{"inner terminator", "a=b", nil, None, 0, true},
		{"bare terminator", "=", nil, None, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := Parse(tt.prototype, "description")
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %v", opt)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(opt.Aliases(), tt.aliases) {
				t.Errorf("aliases got = %v, want %v", opt.Aliases(), tt.aliases)
			}
			if opt.Arity() != tt.arity {
				t.Errorf("arity got = %s, want %s", opt.Arity(), tt.arity)
			}
			if opt.ValueCount() != tt.valueCount {
				t.Errorf("value count got = %d, want %d", opt.ValueCount(), tt.valueCount)
			}
			if opt.Description() != "description" {
				t.Errorf("description got = %q", opt.Description())
			}
		})
	}
}

func TestSetValueCount(t *testing.T) {
	tests := []struct {
		name      string
		prototype string
		count     int
		err       bool
	}{
		{"two values", "a=", 2, false},
		{"one value", "a=", 1, false},
		{"zero on flag", "a", 0, false},
		{"negative", "a=", -1, true},
		{"zero with required value", "a=", 0, true},
		{"zero with optional value", "a:", 0, true},
		{"positive on flag", "a", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := Parse(tt.prototype, "")
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			err = opt.SetValueCount(tt.count)
			if (err != nil) != tt.err {
				t.Errorf("got = %v, want error: %v", err, tt.err)
			}
		})
	}
}

func TestSetSeparators(t *testing.T) {
	t.Run("single value rejects separators", func(t *testing.T) {
		opt, _ := Parse("a=", "")
		if err := opt.SetSeparators(","); err == nil {
			t.Errorf("expected error")
		}
	})
	t.Run("empty separator rejected", func(t *testing.T) {
		opt, _ := Parse("a=", "")
		if err := opt.SetValueCount(2); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if err := opt.SetSeparators(""); err == nil {
			t.Errorf("expected error")
		}
	})
	t.Run("count lowered after separators rejected", func(t *testing.T) {
		opt, _ := Parse("a=", "")
		if err := opt.SetValueCount(2); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if err := opt.SetSeparators("="); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if err := opt.SetValueCount(1); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestSplitValue(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		separators []string
		raw        string
		want       []string
	}{
		{"no separators", 2, nil, "a,b", []string{"a,b"}},
		{"single separator", 2, []string{","}, "a,b", []string{"a", "b"}},
		{"either separator", 2, []string{"=", ":"}, "key:val", []string{"key", "val"}},
		{"earliest separator wins", 2, []string{"=", ":"}, "a:b=c", []string{"a", "b=c"}},
		{"empty pieces preserved", 3, []string{","}, ",x,", []string{"", "x", ""}},
		{"multi char separator", 2, []string{"::"}, "a::b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := Parse("a=", "")
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if err := opt.SetValueCount(tt.count); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if len(tt.separators) > 0 {
				if err := opt.SetSeparators(tt.separators...); err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
			}
			got := opt.SplitValue(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestImmutableViews(t *testing.T) {
	opt, err := Parse("a|alpha=", "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	aliases := opt.Aliases()
	aliases[0] = "mutated"
	if opt.Aliases()[0] != "a" {
		t.Errorf("alias copy leaked the backing array")
	}
}
