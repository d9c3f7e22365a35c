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
	"strings"

	"rivaas.dev/humanize/codec"
)

// OSEnvVar loads configuration from the process environment.
//
// Only variables starting with the prefix are read, and the prefix is
// stripped. Underscores nest, so with prefix "APP_" the variable
// APP_CACHE_TTL=90s becomes {"cache": {"ttl": "90s"}}.
type OSEnvVar struct {
	prefix  string
	environ func() []string
	decoder codec.Decoder
}

// NewOSEnvVar creates an environment source for variables starting with prefix.
func NewOSEnvVar(prefix string) *OSEnvVar {
	return &OSEnvVar{
		prefix:  prefix,
		environ: os.Environ,
		decoder: codec.EnvVarCodec{},
	}
}

// Load snapshots the environment and decodes the matching variables.
//
// Errors:
//   - Returns error if decoding fails
func (e *OSEnvVar) Load(context.Context) (map[string]any, error) {
	var b strings.Builder
	for _, kv := range e.environ() {
		rest, ok := strings.CutPrefix(kv, e.prefix)
		if !ok {
			continue
		}
		b.WriteString(rest)
		b.WriteByte('\n')
	}

	var tree map[string]any
	if err := e.decoder.Decode([]byte(b.String()), &tree); err != nil {
		return nil, fmt.Errorf("failed to decode environment variables: %w", err)
	}

	return tree, nil
}
