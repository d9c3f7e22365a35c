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
	"errors"

	"github.com/BurntSushi/toml"
)

// TypeTOML names the TOML document decoder.
const TypeTOML Type = "toml"

func init() {
	RegisterDecoder(TypeTOML, TOMLCodec{})
}

// TOMLCodec decodes TOML documents. Native TOML datetimes decode to
// time.Time, which the timestamp parser accepts as-is.
type TOMLCodec struct{}

// Decode decodes data into v. Parse errors are returned as [*SyntaxError].
func (TOMLCodec) Decode(data []byte, v any) error {
	err := toml.Unmarshal(data, v)

	var perr toml.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{
			Format: TypeTOML,
			Line:   perr.Position.Line,
			Column: perr.Position.Col,
			Msg:    perr.Message,
			Err:    err,
		}
	}
	return err
}
