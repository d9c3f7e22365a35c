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
	"path"
	"sync/atomic"

	"github.com/hashicorp/consul/api"

	"rivaas.dev/humanize/codec"
)

// ConsulKV is the subset of the Consul KV client used by [Consul].
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// Consul loads configuration from one key of Consul's key/value store.
//
// With a document decoder (JSON, YAML, TOML) the value holds a whole tree.
// With a [codec.CasterCodec] the value is a single scalar stored under the
// last segment of the key, so "service/cache/max_size" holding "1 GiB" and a
// byte size caster yields {"max_size": humanize.ByteSize(1073741824)}.
//
// The client is configured from the standard environment variables
// CONSUL_HTTP_ADDR and CONSUL_HTTP_TOKEN.
type Consul struct {
	kv        ConsulKV
	key       string
	decoder   codec.Decoder
	lastIndex atomic.Uint64
}

// NewConsul creates a Consul source for key. When kv is nil the default
// client's KV endpoint is used.
//
// Errors:
//   - Returns error if the Consul client cannot be created
func NewConsul(key string, decoder codec.Decoder, kv ConsulKV) (*Consul, error) {
	if kv == nil {
		client, err := api.NewClient(api.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create consul client: %w", err)
		}
		kv = client.KV()
	}

	return &Consul{
		kv:      kv,
		key:     key,
		decoder: decoder,
	}, nil
}

// LastIndex returns the Consul index seen by the most recent successful Load.
func (c *Consul) LastIndex() uint64 {
	return c.lastIndex.Load()
}

// Load fetches and decodes the key. A missing key yields an empty map.
//
// Errors:
//   - Returns error if the Consul query fails
//   - Returns error if decoding the value fails
func (c *Consul) Load(ctx context.Context) (map[string]any, error) {
	pair, meta, err := c.kv.Get(c.key, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get consul key %q: %w", c.key, err)
	}
	if pair == nil {
		return make(map[string]any), nil
	}
	if meta != nil {
		c.lastIndex.Store(meta.LastIndex)
	}

	if caster, ok := c.decoder.(*codec.CasterCodec); ok {
		var value any
		if err := caster.Decode(pair.Value, &value); err != nil {
			return nil, fmt.Errorf("failed to decode consul value: %w", err)
		}
		return map[string]any{path.Base(pair.Key): value}, nil
	}

	var tree map[string]any
	if err := c.decoder.Decode(pair.Value, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode consul value: %w", err)
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	return tree, nil
}
