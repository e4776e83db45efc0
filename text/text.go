// This file is part of go-optset.
//
// Copyright (C) 2023-2026  J. Campo
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Every string in this package is passed through the OptionSet's localizer
// before its placeholders are expanded, so translations can be provided by
// swapping the template as a whole.
package text

// ErrorMissingValue holds the text for the missing value error.
// It has a string placeholder '%s' for the display name of the option missing the value.
var ErrorMissingValue = "Missing required value for option '%s'"

// ErrorTooManyValues holds the text for the error raised when a single
// invocation supplies more values than the option consumes.
// It has a string placeholder '%s' for the display name of the option.
var ErrorTooManyValues = "Too many values supplied for option '%s'"

// ErrorBundlingValue holds the text for the error raised when an option that
// requires a value shows up past the first position of a bundle.
// It has string placeholders for the offending option and the full bundle token.
var ErrorBundlingValue = "Cannot bundle option '%s' in '%s': it requires a value"

// ErrorBundlingUnknown holds the text for the error raised when an
// unregistered option shows up inside a bundle.
// It has string placeholders for the offending option and the full bundle token.
var ErrorBundlingUnknown = "Cannot use unregistered option '%s' in bundle '%s'"

// ErrorConversion holds the text for value conversion failures.
// It has string placeholders for the value, the target type and the display
// name of the option.
var ErrorConversion = "Could not convert '%s' to type %s for option '%s'"

// ErrorNoConverter holds the text for a conversion request against a type
// that has no registered converter.
// It has string placeholders for the target type and the display name of the option.
var ErrorNoConverter = "No converter registered for type %s (option '%s')"

// ErrorInvalidDefinition holds the text for malformed option definitions.
// It has string placeholders for the prototype and the reason.
var ErrorInvalidDefinition = "Invalid option definition '%s': %s"

// ErrorAlreadyDefined holds the text for duplicate alias registrations.
// It has string placeholders for the alias and the option that owns it.
var ErrorAlreadyDefined = "Option/Alias '%s' is already defined in option '%s'"

// HelpValueName - Placeholder shown in the description list for an option's value.
var HelpValueName = "VALUE"
