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

	"github.com/goccy/go-yaml"
)

// TypeYAML names the YAML document decoder.
const TypeYAML Type = "yaml"

func init() {
	RegisterDecoder(TypeYAML, YAMLCodec{})
}

// YAMLCodec decodes YAML documents. Plain scalars keep their YAML type, so
// "64 MiB" stays a string while 1704164645 becomes an integer.
type YAMLCodec struct{}

// Decode decodes data into v. Parser errors carrying a source position are
// returned as [*SyntaxError].
func (YAMLCodec) Decode(data []byte, v any) error {
	err := yaml.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var yerr yaml.Error
	if errors.As(err, &yerr) {
		if tk := yerr.GetToken(); tk != nil && tk.Position != nil {
			return &SyntaxError{
				Format: TypeYAML,
				Line:   tk.Position.Line,
				Column: tk.Position.Column,
				Msg:    yerr.GetMessage(),
				Err:    err,
			}
		}
	}
	return err
}
