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

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// ByteSize is a number of bytes decoded from a human-friendly size such as
// "1 M", "10Kb" or "2 GiB".
type ByteSize uint64

// Common sizes.
const (
	Byte ByteSize = 1
	KB   ByteSize = 1000 * Byte
	MB   ByteSize = 1000 * KB
	GB   ByteSize = 1000 * MB
	TB   ByteSize = 1000 * GB
	KiB  ByteSize = 1024 * Byte
	MiB  ByteSize = 1024 * KiB
	GiB  ByteSize = 1024 * MiB
	TiB  ByteSize = 1024 * GiB
)

// ParseByteSize parses a magnitude followed by an optional unit. Decimal
// units (k, M, G, T, P, E, Z, Y, optionally followed by "B") scale by powers
// of 1000 and binary units (Ki, Mi, Gi, ... optionally followed by "B") by
// powers of 1024. Units are case-insensitive and may be separated from the
// magnitude by whitespace. A bare number is a count of bytes.
//
// Errors:
//   - Returns [*ParseError] if the input is empty, lacks a numeric prefix or
//     carries an unknown unit
//   - Returns [*OverflowError] if the result does not fit 64 bits
func ParseByteSize(input string) (ByteSize, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, newParseError(KindByteSize, input, ErrEmptyInput)
	}

	n, err := humanize.ParseBigBytes(trimmed)
	if err != nil {
		return 0, newParseError(KindByteSize, input, err)
	}
	if !n.IsUint64() {
		return 0, &OverflowError{Kind: KindByteSize, Input: input}
	}

	return ByteSize(n.Uint64()), nil
}
