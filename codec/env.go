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
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// TypeEnvVar is a constant representing the type of an environment variable codec.
const TypeEnvVar Type = "env_var"

func init() {
	RegisterDecoder(TypeEnvVar, EnvVarCodec{})
}

// EnvVarCodec decodes KEY=value lines, one per line, into a nested map.
// Keys are lower-cased and split on underscores, so CACHE_MAX_SIZE=1GiB
// becomes {"cache": {"max": {"size": "1GiB"}}}. Values stay strings; typed
// decoding happens when the map is bound to a struct.
type EnvVarCodec struct{}

// Decode decodes the environment lines in data into v, which must be a
// *map[string]any. Lines without '=' and keys made only of underscores are
// skipped. When a key is both a leaf and a prefix of another key, the
// later line wins.
func (EnvVarCodec) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarCodec.Decode: expected *map[string]any, got %T", v)
	}

	conf := make(map[string]any)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}

		path := envPath(key)
		if len(path) == 0 {
			continue
		}
		setPath(conf, path, strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan environment: %w", err)
	}

	*ptr = conf
	return nil
}

// envPath turns " APP__CACHE_SIZE " into ["app", "cache", "size"].
func envPath(key string) []string {
	return strings.FieldsFunc(strings.ToLower(strings.TrimSpace(key)), func(r rune) bool {
		return r == '_'
	})
}

// setPath stores value under path, replacing leaves that stand in the way.
func setPath(m map[string]any, path []string, value any) {
	current := m
	for _, part := range path[:len(path)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}
