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

package codec

import (
	"bytes"
	"fmt"
)

// Type names a registered decoder, such as "yaml" or "caster-bytesize".
type Type string

// Decoder turns an encoded configuration document into Go values. The
// document decoders fill a *map[string]any tree; casters fill a *any.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, v any) error
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc func(data []byte, v any) error

// Decode calls f(data, v).
func (f DecoderFunc) Decode(data []byte, v any) error {
	return f(data, v)
}

// SyntaxError reports where in a document decoding failed. Line and Column
// start at 1.
type SyntaxError struct {
	Format Type
	Line   int
	Column int
	Msg    string
	Err    error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d, column %d: %s", e.Format, e.Line, e.Column, e.Msg)
}

// Unwrap returns the decoder's own error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// lineColumn converts a byte offset in data into a 1-based line and column.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = int(offset) - (bytes.LastIndexByte(head, '\n') + 1) + 1
	return line, column
}
