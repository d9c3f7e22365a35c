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
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration decoded from a human-friendly string such as
// "1h30m", "2d" or "500ms".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String returns the time.Duration rendering of d.
func (d Duration) String() string { return time.Duration(d).String() }

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// durationUnits maps unit suffixes to their length in nanoseconds.
var durationUnits = map[string]uint64{
	"ns": uint64(time.Nanosecond),
	"us": uint64(time.Microsecond),
	"µs": uint64(time.Microsecond), // U+00B5 micro sign
	"μs": uint64(time.Microsecond), // U+03BC Greek mu
	"ms": uint64(time.Millisecond),
	"s":  uint64(time.Second),
	"m":  uint64(time.Minute),
	"h":  uint64(time.Hour),
	"d":  uint64(day),
	"w":  uint64(week),
}

// maxFractionDigits keeps the fraction accumulator within uint64.
const maxFractionDigits = 18

// ParseDuration parses a sequence of magnitude and unit pairs and returns
// their sum. Recognized units are w, d, h, m, s, ms, us (µs, μs) and ns.
// Magnitudes may have a decimal fraction, and whitespace is allowed between
// pairs and between a magnitude and its unit: "1h30m", "1h 30m", "1.5 d".
// The bare string "0" is accepted. Signs are not.
//
// Errors:
//   - Returns [*ParseError] for empty input, a malformed magnitude, a missing
//     or unknown unit, or a total that overflows time.Duration
func ParseDuration(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, newParseError(KindDuration, input, ErrEmptyInput)
	}
	if s == "0" {
		return 0, nil
	}

	var total uint64
	for s != "" {
		intPart, frac, rest := splitMagnitude(s)
		if intPart == "" && frac == "" {
			return 0, newParseError(KindDuration, input, fmt.Errorf("%w: expected a number at %q", ErrInvalidValue, s))
		}

		rest = strings.TrimLeft(rest, " \t")
		name, rest := splitUnit(rest)
		if name == "" {
			return 0, newParseError(KindDuration, input, ErrMissingUnit)
		}
		unit, ok := durationUnits[name]
		if !ok {
			return 0, newParseError(KindDuration, input, fmt.Errorf("%w %q", ErrUnknownUnit, name))
		}

		v, ok := scaleMagnitude(intPart, frac, unit)
		if !ok || v > math.MaxInt64-total {
			return 0, newParseError(KindDuration, input, ErrOverflow)
		}
		total += v

		s = strings.TrimLeft(rest, " \t")
	}

	return time.Duration(total), nil
}

// splitMagnitude cuts the leading "123.456" off s.
func splitMagnitude(s string) (intPart, frac, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart, rest = s[:i], s[i:]

	if rest != "" && rest[0] == '.' {
		j := 1
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
		frac, rest = rest[1:j], rest[j:]
	}
	return intPart, frac, rest
}

// splitUnit cuts the unit name off s. A unit ends at the next digit, dot or
// blank.
func splitUnit(s string) (name, rest string) {
	i := 0
	for i < len(s) && !isDigit(s[i]) && s[i] != '.' && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	return s[:i], s[i:]
}

// scaleMagnitude returns (intPart.frac * unit) in nanoseconds, truncating
// below one nanosecond. It reports false when the value does not fit an
// int64.
func scaleMagnitude(intPart, frac string, unit uint64) (uint64, bool) {
	var v uint64
	if intPart != "" {
		n, err := strconv.ParseUint(intPart, 10, 64)
		if err != nil || n > math.MaxInt64/unit {
			return 0, false
		}
		v = n * unit
	}

	if len(frac) > maxFractionDigits {
		frac = frac[:maxFractionDigits]
	}
	if frac != "" {
		f, err := strconv.ParseUint(frac, 10, 64)
		if err != nil {
			return 0, false
		}
		hi, lo := bits.Mul64(f, unit)
		// f < 10^len(frac), so hi < 10^len(frac) and Div64 cannot panic.
		q, _ := bits.Div64(hi, lo, pow10(len(frac)))
		v += q
		if v > math.MaxInt64 {
			return 0, false
		}
	}
	return v, true
}

func pow10(n int) uint64 {
	p := uint64(1)
	for range n {
		p *= 10
	}
	return p
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
