// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package humanize

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrParse        = errors.New("parse error")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrOverflow     = errors.New("value overflows target")
	ErrEmptyInput   = errors.New("empty input")
	ErrUnknownUnit  = errors.New("unknown unit")
	ErrMissingUnit  = errors.New("missing unit")
	ErrInvalidValue = errors.New("invalid numeric value")
)

// ParseError reports a value that its parser could not interpret.
//
// The underlying cause (for example a *syntax.Error from the regexp
// compiler) is available through Unwrap.
type ParseError struct {
	Kind  Kind   // Target kind being decoded
	Input string // The raw input, rendered as text
	Err   error  // Underlying cause
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Kind, e.Input, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// TypeMismatchError reports a raw value whose shape does not match what the
// target kind requires, such as a number given for a duration.
type TypeMismatchError struct {
	Kind Kind       // Target kind being decoded
	Got  ScalarKind // Shape of the value actually supplied
	Type string     // Go type of the supplied value, set when it is not a scalar
}

// Error returns a formatted error message.
func (e *TypeMismatchError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("cannot decode %s from value of type %s", e.Kind, e.Type)
	}
	return fmt.Sprintf("cannot decode %s from %s value", e.Kind, e.Got)
}

// Is makes errors.Is(err, ErrTypeMismatch) match any *TypeMismatchError.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// OverflowError reports a magnitude that does not fit the target integer width.
type OverflowError struct {
	Kind  Kind
	Input string
}

// Error returns a formatted error message.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s %q overflows 64 bits", e.Kind, e.Input)
}

// Is makes errors.Is(err, ErrOverflow) match any *OverflowError.
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

func newParseError(kind Kind, input string, err error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: err}
}
