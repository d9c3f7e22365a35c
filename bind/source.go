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

package bind

import "context"

// Source loads one raw configuration tree. Implementations live in the
// source package; any type with a matching Load method works.
type Source interface {
	// Load returns the tree. Keys are lower-cased by the Binder, so sources
	// may return keys in any case.
	Load(ctx context.Context) (map[string]any, error)
}

// Validator is implemented by bound structs that check themselves after
// decoding and defaults.
type Validator interface {
	Validate() error
}
