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

// Package source loads raw configuration trees for the bind package.
//
// Every source returns a map[string]any whose leaves are still raw: strings,
// numbers and native TOML datetimes. Human-friendly values such as "64 MiB"
// or "1h 30m" are only interpreted when the tree is bound to a struct.
//
//   - File: a file on disk or in-memory content, decoded by any codec
//   - OSEnvVar: prefix-filtered process environment
//   - Consul: one key in Consul's key/value store
//
// Example:
//
//	decoder, _ := codec.GetDecoder(codec.TypeYAML)
//	tree, err := source.NewFile("service.yaml", decoder).Load(ctx)
package source
