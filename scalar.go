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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ScalarKind is the runtime shape of a [Scalar].
type ScalarKind int

const (
	// ScalarInvalid is the zero ScalarKind.
	ScalarInvalid ScalarKind = iota
	ScalarString
	ScalarInt
	ScalarUint
	ScalarFloat
)

// String returns the string representation of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "integer"
	case ScalarUint:
		return "unsigned integer"
	case ScalarFloat:
		return "float"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether the kind is one of the number variants.
func (k ScalarKind) IsNumeric() bool {
	return k == ScalarInt || k == ScalarUint || k == ScalarFloat
}

// Scalar is a raw field value as handed over by a deserialization framework,
// before any type-specific interpretation. Exactly one variant is set,
// selected by Kind.
type Scalar struct {
	kind ScalarKind
	s    string
	i    int64
	u    uint64
	f    float64
}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: ScalarString, s: s} }

// Int returns a signed integer scalar.
func Int(i int64) Scalar { return Scalar{kind: ScalarInt, i: i} }

// Uint returns an unsigned integer scalar.
func Uint(u uint64) Scalar { return Scalar{kind: ScalarUint, u: u} }

// Float returns a floating point scalar.
func Float(f float64) Scalar { return Scalar{kind: ScalarFloat, f: f} }

// Kind returns the variant held by the scalar.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Str returns the string variant and whether it is set.
func (s Scalar) Str() (string, bool) { return s.s, s.kind == ScalarString }

// Int64 returns the signed integer variant and whether it is set.
func (s Scalar) Int64() (int64, bool) { return s.i, s.kind == ScalarInt }

// Uint64 returns the unsigned integer variant and whether it is set.
func (s Scalar) Uint64() (uint64, bool) { return s.u, s.kind == ScalarUint }

// Float64 returns the float variant and whether it is set.
func (s Scalar) Float64() (float64, bool) { return s.f, s.kind == ScalarFloat }

// Text renders the scalar as it would appear in a document. It is used to
// build error messages.
func (s Scalar) Text() string {
	switch s.kind {
	case ScalarString:
		return s.s
	case ScalarInt:
		return strconv.FormatInt(s.i, 10)
	case ScalarUint:
		return strconv.FormatUint(s.u, 10)
	case ScalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	default:
		return ""
	}
}

// ScalarOf converts a loosely typed value into a Scalar. It understands the
// values produced by the common Go decoders: strings, byte slices,
// json.Number and every integer and float width.
//
// Errors:
//   - Returns [*TypeMismatchError] for anything else (bool, maps, slices, nil)
func ScalarOf(v any) (Scalar, error) {
	switch val := v.(type) {
	case Scalar:
		return val, nil
	case string:
		return String(val), nil
	case []byte:
		return String(string(val)), nil
	case json.Number:
		return numberScalar(val)
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(val)
		if err != nil {
			return Scalar{}, err
		}
		return Int(i), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(val)
		if err != nil {
			return Scalar{}, err
		}
		return Uint(u), nil
	case float32, float64:
		f, err := cast.ToFloat64E(val)
		if err != nil {
			return Scalar{}, err
		}
		return Float(f), nil
	default:
		return Scalar{}, &TypeMismatchError{Type: fmt.Sprintf("%T", v)}
	}
}

// numberScalar keeps integral JSON numbers exact and falls back to float64
// for everything else.
func numberScalar(n json.Number) (Scalar, error) {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: %s", ErrInvalidValue, text)
	}
	return Float(f), nil
}
