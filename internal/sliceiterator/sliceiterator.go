// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a string slice.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator
func New(data []string) *Iterator {
	return &Iterator{data: data, idx: -1}
}

// Index - return current index.
func (it *Iterator) Index() int {
	return it.idx
}

// Next - moves the index forward and returns a bool to indicate if there is another value.
func (it *Iterator) Next() bool {
	if it.idx < len(it.data) {
		it.idx++
	}
	return it.idx < len(it.data)
}

// Value - returns the value at the current index or an empty string past the end of the data.
func (it *Iterator) Value() string {
	if it.idx < 0 || it.idx >= len(it.data) {
		return ""
	}
	return it.data[it.idx]
}
