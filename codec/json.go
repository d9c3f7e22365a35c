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
	"encoding/json"
	"errors"
)

// TypeJSON names the JSON document decoder.
const TypeJSON Type = "json"

func init() {
	RegisterDecoder(TypeJSON, JSONCodec{})
}

// JSONCodec decodes JSON documents. Numbers are kept as json.Number so
// epoch timestamps and large integers survive without float rounding.
type JSONCodec struct{}

// Decode decodes data into v. Malformed documents are reported as
// [*SyntaxError].
func (JSONCodec) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := dec.Decode(v)

	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		line, col := lineColumn(data, serr.Offset)
		return &SyntaxError{Format: TypeJSON, Line: line, Column: col, Msg: serr.Error(), Err: err}
	}
	return err
}
