// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitToken(t *testing.T) {
	tests := []struct {
		token string
		parts TokenParts
		ok    bool
	}{
		{"-a", TokenParts{Indicator: "-", Name: "a"}, true},
		{"--alpha", TokenParts{Indicator: "--", Name: "alpha"}, true},
		{"/alpha", TokenParts{Indicator: "/", Name: "alpha"}, true},
		{"--alpha=x", TokenParts{Indicator: "--", Name: "alpha", Separator: "=", Value: "x", HasValue: true}, true},
		{"--alpha:x", TokenParts{Indicator: "--", Name: "alpha", Separator: ":", Value: "x", HasValue: true}, true},
		{"-a=", TokenParts{Indicator: "-", Name: "a", Separator: "=", HasValue: true}, true},
		{"/opt:x=y", TokenParts{Indicator: "/", Name: "opt", Separator: ":", Value: "x=y", HasValue: true}, true},
		{"plain", TokenParts{}, false},
		{"-", TokenParts{}, false},
		{"--", TokenParts{}, false},
		{"", TokenParts{}, false},
		{"-=x", TokenParts{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			parts, ok := SplitToken(tt.token)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.parts, parts); diff != "" {
				t.Errorf("parts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFoldMatcher(t *testing.T) {
	t.Run("case insensitive lookup", func(t *testing.T) {
		got := ""
		set := New(WithMatcher(FoldMatcher{}))
		set.Add("f|file=", "", func(value string) {
			got = value
		})
		remaining, err := set.Parse([]string{"--FILE=x.txt"})
		checkError(t, err, nil)
		if got != "x.txt" {
			t.Errorf("got = %q", got)
		}
		if len(remaining) != 0 {
			t.Errorf("unexpected remaining: %v", remaining)
		}
	})
	t.Run("values keep their case", func(t *testing.T) {
		got := ""
		set := New(WithMatcher(FoldMatcher{}))
		set.Add("file=", "", func(value string) {
			got = value
		})
		_, err := set.Parse([]string{"--File", "MiXeD"})
		checkError(t, err, nil)
		if got != "MiXeD" {
			t.Errorf("got = %q", got)
		}
	})
	t.Run("non options pass through", func(t *testing.T) {
		set := New(WithMatcher(FoldMatcher{}))
		remaining, err := set.Parse([]string{"PLAIN"})
		checkError(t, err, nil)
		if diff := cmp.Diff([]string{"PLAIN"}, remaining); diff != "" {
			t.Errorf("remaining mismatch (-want +got):\n%s", diff)
		}
	})
}
