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

// Package codec decodes configuration documents into Go values.
//
// Decoders are registered by [Type] and looked up with [GetDecoder]. The
// built-in decoders cover JSON, YAML, TOML and KEY=value environment
// listings. JSON numbers are kept as json.Number so that epoch timestamps
// reach the humanize parsers without float rounding.
//
// # Casters
//
// Caster decoders turn a single raw value into one typed value. They are
// used for key/value stores where every key holds one scalar:
//
//	decoder, _ := codec.GetDecoder(codec.TypeCasterByteSize)
//	var value any
//	_ = decoder.Decode([]byte("64 MiB"), &value) // humanize.ByteSize(67108864)
//
// The byte size, duration, timestamp and pattern casters go through the
// humanize parsers. The timestamp caster reads plain numbers as Unix epoch
// seconds.
package codec
