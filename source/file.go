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

package source

import (
	"context"
	"fmt"
	"os"

	"rivaas.dev/humanize/codec"
)

// File loads a configuration tree from a file path or from in-memory content.
type File struct {
	path    string
	data    []byte
	decoder codec.Decoder
}

// NewFile creates a File that reads path on every Load and decodes it with
// decoder.
func NewFile(path string, decoder codec.Decoder) *File {
	return &File{
		path:    path,
		decoder: decoder,
	}
}

// NewFileContent creates a File over fixed content, such as an embedded file.
func NewFileContent(data []byte, decoder codec.Decoder) *File {
	return &File{
		data:    data,
		decoder: decoder,
	}
}

// Path returns the file path, or "" for in-memory content.
func (f *File) Path() string {
	return f.path
}

// Load reads and decodes the file. An empty document yields an empty map.
//
// Errors:
//   - Returns ctx.Err() if the context is already done
//   - Returns error if the file cannot be read
//   - Returns error if decoding fails
func (f *File) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := f.data
	if f.path != "" {
		var err error
		data, err = os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	var tree map[string]any
	if err := f.decoder.Decode(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	return tree, nil
}
