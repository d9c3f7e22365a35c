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
	"fmt"
	"math"
	"strings"
	"time"
)

// Timestamp is an absolute instant decoded from an RFC 3339 string or a
// Unix epoch number. Decoded timestamps are always in UTC.
type Timestamp struct {
	time.Time
}

// Std returns the value as a time.Time.
func (t Timestamp) Std() time.Time { return t.Time }

// Epoch seconds of 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z, the
// instants an RFC 3339 string can express.
const (
	minEpochSeconds = -62135596800
	maxEpochSeconds = 253402300799
)

// naiveLayout is RFC 3339 without the zone designator. Fractional seconds
// are accepted by time.Parse even though the layout omits them.
const naiveLayout = "2006-01-02T15:04:05"

// ParseTimestamp decodes a string or numeric scalar into an instant.
//
// Numbers are Unix epoch seconds; floats carry the sub-second part, rounded
// to the nearest nanosecond. Negative numbers denote instants before 1970.
// Numbers must fall within years 1 through 9999.
//
// Strings follow YYYY-MM-DDTHH:MM:SS[.fraction][Z|±HH:MM]. Fraction digits
// beyond nanoseconds are truncated. A string without a zone designator is
// read as UTC. The result is normalized to UTC.
//
// Errors:
//   - Returns [*ParseError] if the string does not match the grammar
//   - Returns [*ParseError] wrapping [ErrOverflow] if the number lies
//     outside years 1 through 9999, or [ErrInvalidValue] if it is NaN or
//     infinite
//   - Returns [*TypeMismatchError] if the scalar is unset
func ParseTimestamp(input Scalar) (time.Time, error) {
	switch input.Kind() {
	case ScalarString:
		return parseTimestampString(input.s)
	case ScalarInt:
		if input.i < minEpochSeconds || input.i > maxEpochSeconds {
			return time.Time{}, newParseError(KindTimestamp, input.Text(), ErrOverflow)
		}
		return time.Unix(input.i, 0).UTC(), nil
	case ScalarUint:
		if input.u > maxEpochSeconds {
			return time.Time{}, newParseError(KindTimestamp, input.Text(), ErrOverflow)
		}
		return time.Unix(int64(input.u), 0).UTC(), nil
	case ScalarFloat:
		return parseTimestampFloat(input.f)
	default:
		return time.Time{}, &TypeMismatchError{Kind: KindTimestamp, Got: input.Kind()}
	}
}

func parseTimestampString(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, newParseError(KindTimestamp, input, ErrEmptyInput)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		naive, naiveErr := time.ParseInLocation(naiveLayout, s, time.UTC)
		if naiveErr != nil {
			return time.Time{}, newParseError(KindTimestamp, input, err)
		}
		t = naive
	}

	return t.UTC(), nil
}

// parseTimestampFloat splits f into whole seconds and nanoseconds. Seconds
// are floored so the nanosecond part is always in [0, 1e9).
func parseTimestampFloat(f float64) (time.Time, error) {
	text := fmt.Sprint(f)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, newParseError(KindTimestamp, text, ErrInvalidValue)
	}
	if f < minEpochSeconds || f >= maxEpochSeconds+1 {
		return time.Time{}, newParseError(KindTimestamp, text, ErrOverflow)
	}

	sec := math.Floor(f)
	nsec := math.Round((f - sec) * float64(time.Second))
	if nsec >= float64(time.Second) {
		sec++
		nsec -= float64(time.Second)
	}
	if sec > maxEpochSeconds {
		return time.Time{}, newParseError(KindTimestamp, text, ErrOverflow)
	}

	return time.Unix(int64(sec), int64(nsec)).UTC(), nil
}
