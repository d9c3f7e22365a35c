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

// Package bind loads configuration from files, the environment and Consul,
// and binds it to structs whose fields use human-friendly formats.
//
// Field types recognized by the humanize package are decoded with its
// parsers: [humanize.ByteSize] ("64 MiB"), [humanize.Duration] and
// time.Duration ("1d 12h"), [humanize.Timestamp] and time.Time (RFC 3339 or
// Unix epoch seconds), and [humanize.Pattern] and *regexp.Regexp. Everything
// else follows mapstructure's weakly typed rules.
//
// # Loading
//
//	type Config struct {
//	    Cache struct {
//	        MaxSize humanize.ByteSize `config:"max_size" default:"64 MiB"`
//	        TTL     time.Duration     `config:"ttl" default:"1h"`
//	    } `config:"cache"`
//	    Filter *regexp.Regexp `config:"filter"`
//	}
//
//	var cfg Config
//	b := bind.MustNew(
//	    bind.WithFile("service.yaml"),
//	    bind.WithEnv("APP_"),
//	    bind.WithBinding(&cfg),
//	)
//	if err := b.Load(ctx); err != nil {
//	    return err // names the failing field, e.g. cache.max_size
//	}
//
// Sources are merged in order; later sources override earlier ones. Keys
// are case-insensitive.
//
// # Validation
//
// Bound structs are checked against `validate` tags before their Validate
// method runs. Besides the stock go-playground rules, limits may be written
// in human-friendly form:
//
//	MaxSize humanize.ByteSize `config:"max_size" validate:"maxsize=1 GiB"`
//	TTL     time.Duration     `config:"ttl" validate:"mindur=1s,maxdur=2d"`
//
// # Reading values
//
// Values can also be read without a bound struct:
//
//	size := b.ByteSize("cache.max_size")
//	ttl := bind.GetOr(b, "cache.ttl", 5*time.Minute)
//	at, err := bind.GetE[time.Time](b, "close_at")
package bind
