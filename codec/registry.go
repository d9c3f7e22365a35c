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
	"fmt"
	"sort"
	"sync"
)

// registry holds the decoders known by name. It is safe for concurrent use.
var registry = struct {
	mu       sync.RWMutex
	decoders map[Type]Decoder
}{
	decoders: make(map[Type]Decoder),
}

// RegisterDecoder registers a decoder under the given type, replacing any
// decoder registered before under the same name.
func RegisterDecoder(name Type, decoder Decoder) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.decoders[name] = decoder
}

// GetDecoder retrieves the decoder registered for the given type.
//
// Errors:
//   - Returns error if no decoder is registered under name
func GetDecoder(name Type) (Decoder, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	decoder, exists := registry.decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return decoder, nil
}

// Types returns the registered decoder types in sorted order.
func Types() []Type {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	types := make([]Type, 0, len(registry.decoders))
	for t := range registry.decoders {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}
