// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optset

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupLogging(t)
//	defer logTestOutput()
func setupLogging(t *testing.T) func() {
	buf := bytes.NewBufferString("")
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// recoverConstructionError - runs fn expecting it to panic with a
// *ConstructionError and returns it.
func recoverConstructionError(t *testing.T, fn func()) *ConstructionError {
	t.Helper()
	var cerr *ConstructionError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected definition panic")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &cerr) {
				t.Fatalf("unexpected panic value: %#v", r)
			}
		}()
		fn()
	}()
	return cerr
}
