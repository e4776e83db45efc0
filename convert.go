// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Typed value conversion.
//
// The registry is an explicit map from a type tag to a conversion function:
// reflect.Type is only used as the map key, there is no structural reflection
// involved.

package optset

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/jcampo/go-optset/text"
)

// ConverterRegistry - pluggable string to T conversion keyed by target type.
//
// A registry preinstalls converters for the primitive types.  User types are
// added with RegisterConverter.  A missing converter is reported as a
// *ConversionError at first use, not at registration.
type ConverterRegistry struct {
	converters map[reflect.Type]func(value string) (interface{}, error)
}

// NewConverterRegistry - Returns a registry with the built in converters installed.
func NewConverterRegistry() *ConverterRegistry {
	r := &ConverterRegistry{converters: map[reflect.Type]func(string) (interface{}, error){}}
	RegisterConverter(r, func(value string) (string, error) { return value, nil })
	RegisterConverter(r, strconv.ParseBool)
	RegisterConverter(r, strconv.Atoi)
	RegisterConverter(r, func(value string) (int8, error) {
		i, err := strconv.ParseInt(value, 10, 8)
		return int8(i), err
	})
	RegisterConverter(r, func(value string) (int16, error) {
		i, err := strconv.ParseInt(value, 10, 16)
		return int16(i), err
	})
	RegisterConverter(r, func(value string) (int32, error) {
		i, err := strconv.ParseInt(value, 10, 32)
		return int32(i), err
	})
	RegisterConverter(r, func(value string) (int64, error) {
		return strconv.ParseInt(value, 10, 64)
	})
	RegisterConverter(r, func(value string) (uint, error) {
		u, err := strconv.ParseUint(value, 10, 0)
		return uint(u), err
	})
	RegisterConverter(r, func(value string) (uint8, error) {
		u, err := strconv.ParseUint(value, 10, 8)
		return uint8(u), err
	})
	RegisterConverter(r, func(value string) (uint16, error) {
		u, err := strconv.ParseUint(value, 10, 16)
		return uint16(u), err
	})
	RegisterConverter(r, func(value string) (uint32, error) {
		u, err := strconv.ParseUint(value, 10, 32)
		return uint32(u), err
	})
	RegisterConverter(r, func(value string) (uint64, error) {
		return strconv.ParseUint(value, 10, 64)
	})
	RegisterConverter(r, func(value string) (float32, error) {
		f, err := strconv.ParseFloat(value, 32)
		return float32(f), err
	})
	RegisterConverter(r, func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	})
	return r
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterConverter - Installs or replaces the converter for type T.
func RegisterConverter[T any](r *ConverterRegistry, fn func(value string) (T, error)) {
	r.converters[typeOf[T]()] = func(value string) (interface{}, error) {
		return fn(value)
	}
}

// Convert - Converts a value string for the named option to type T.
// Fails with a *ConversionError carrying the value, the type name and the
// option display name.
func Convert[T any](r *ConverterRegistry, optName, value string) (T, error) {
	return convert[T](r, identity, optName, value)
}

func convert[T any](r *ConverterRegistry, localize Localizer, optName, value string) (T, error) {
	var zero T
	t := typeOf[T]()
	fn, ok := r.converters[t]
	if !ok {
		return zero, &ConversionError{
			Value: value,
			Type:  t.String(),
			Name:  optName,
			msg:   fmt.Sprintf(localize(text.ErrorNoConverter), t.String(), optName),
		}
	}
	v, err := fn(value)
	if err != nil {
		return zero, &ConversionError{
			Value: value,
			Type:  t.String(),
			Name:  optName,
			Err:   err,
			msg:   fmt.Sprintf(localize(text.ErrorConversion), value, t.String(), optName),
		}
	}
	return v.(T), nil
}
