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

// Value is the set of types the dispatcher can produce.
type Value interface {
	ByteSize | Duration | Timestamp | Pattern
}

// KindOf returns the Kind selected by the static type T.
func KindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case ByteSize:
		return KindByteSize
	case Duration:
		return KindDuration
	case Timestamp:
		return KindTimestamp
	case Pattern:
		return KindPattern
	}
	return KindInvalid
}

// Deserialize decodes raw into T. The parser is chosen by T alone; the
// content of raw never influences the choice.
//
// Example:
//
//	size, err := humanize.Deserialize[humanize.ByteSize](humanize.String("1 Mi"))
//	// size == 1048576
func Deserialize[T Value](raw Scalar) (T, error) {
	var zero T
	v, err := Decode(KindOf[T](), raw)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// Decode routes raw to the parser for kind and returns a value of the
// matching type: [ByteSize], [Duration], [Timestamp] or [Pattern].
//
// Timestamps accept string and numeric scalars. Every other kind requires a
// string. Parser errors are returned as is.
//
// Errors:
//   - Returns [*TypeMismatchError] if raw has the wrong shape for kind, or
//     kind is not a known Kind
//   - Returns [*ParseError] or [*OverflowError] from the parser
func Decode(kind Kind, raw Scalar) (any, error) {
	if raw.Kind() != ScalarString && !(kind.acceptsNumeric() && raw.Kind().IsNumeric()) {
		return nil, &TypeMismatchError{Kind: kind, Got: raw.Kind()}
	}

	switch kind {
	case KindByteSize:
		n, err := ParseByteSize(raw.s)
		if err != nil {
			return nil, err
		}
		return n, nil
	case KindDuration:
		d, err := ParseDuration(raw.s)
		if err != nil {
			return nil, err
		}
		return Duration(d), nil
	case KindTimestamp:
		t, err := ParseTimestamp(raw)
		if err != nil {
			return nil, err
		}
		return Timestamp{Time: t}, nil
	case KindPattern:
		re, err := ParsePattern(raw.s)
		if err != nil {
			return nil, err
		}
		return Pattern{Regexp: re}, nil
	default:
		return nil, &TypeMismatchError{Kind: kind, Got: raw.Kind()}
	}
}

// DecodeValue is Decode for loosely typed input, as produced by generic
// document decoders.
//
// Errors:
//   - Returns [*TypeMismatchError] if v is not a string or number
//   - Returns any error from [Decode]
func DecodeValue(kind Kind, v any) (any, error) {
	raw, err := ScalarOf(v)
	if err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Kind = kind
		}
		return nil, err
	}
	return Decode(kind, raw)
}
