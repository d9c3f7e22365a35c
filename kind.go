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

package humanize

// Kind identifies the destination type a raw value is decoded into.
// The set is closed: every Kind has exactly one parser.
type Kind int

const (
	// KindInvalid is the zero Kind and never selects a parser.
	KindInvalid Kind = iota

	// KindByteSize decodes into [ByteSize].
	KindByteSize

	// KindDuration decodes into [Duration].
	KindDuration

	// KindTimestamp decodes into [Timestamp].
	KindTimestamp

	// KindPattern decodes into [Pattern].
	KindPattern
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindByteSize:
		return "byte size"
	case KindDuration:
		return "duration"
	case KindTimestamp:
		return "timestamp"
	case KindPattern:
		return "pattern"
	default:
		return "invalid"
	}
}

// acceptsNumeric reports whether the kind's grammar admits numeric scalars.
func (k Kind) acceptsNumeric() bool {
	return k == KindTimestamp
}
