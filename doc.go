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

// Package humanize decodes human-friendly field values: byte sizes, durations,
// timestamps and regular expressions.
//
// Each value type has a small parser, and [Decode] routes a raw field value
// to the right parser based on the destination type alone:
//
//	size, _ := humanize.ParseByteSize("1 M")    // 1000000
//	size, _ = humanize.ParseByteSize("1 Mi")    // 1048576
//	d, _ := humanize.ParseDuration("1h30m")     // 90 * time.Minute
//	t, _ := humanize.ParseTimestamp(humanize.String("2105-03-01T10:23:57.000013579+08:00"))
//	re, _ := humanize.ParsePattern(`(\d{4})-(\d{2})`)
//
// # Raw values
//
// Deserialization frameworks hand over loosely typed values. [Scalar] is the
// closed set of shapes the parsers understand (string, signed and unsigned
// integers, floats), and [ScalarOf] builds one from whatever a decoder
// produced. Timestamps accept numbers (Unix epoch seconds) as well as
// strings; every other kind requires a string and rejects numbers with a
// [*TypeMismatchError].
//
// # Field integration
//
// The value types [ByteSize], [Duration], [Timestamp] and [Pattern] implement
// the unmarshaler interfaces of encoding/json, github.com/goccy/go-yaml and
// github.com/BurntSushi/toml, plus encoding.TextUnmarshaler:
//
//	type Config struct {
//	    Size     humanize.ByteSize  `json:"size"`
//	    Interval humanize.Duration  `json:"interval"`
//	    CloseAt  humanize.Timestamp `json:"close_at"`
//	    Pattern  humanize.Pattern   `json:"pattern"`
//	}
//
// For mapstructure based pipelines, [DecodeHook] also covers fields declared
// with the standard time.Duration, time.Time and regexp.Regexp types.
//
// # Errors
//
// Parsers return [*ParseError] for input outside their grammar and
// [*OverflowError] for byte sizes beyond 64 bits. Use errors.Is with
// [ErrParse], [ErrTypeMismatch] and [ErrOverflow] to classify them.
package humanize
