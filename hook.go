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
	"reflect"
	"regexp"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	byteSizeType    = reflect.TypeOf(ByteSize(0))
	durationType    = reflect.TypeOf(Duration(0))
	stdDurationType = reflect.TypeOf(time.Duration(0))
	timestampType   = reflect.TypeOf(Timestamp{})
	timeType        = reflect.TypeOf(time.Time{})
	patternType     = reflect.TypeOf(Pattern{})
	regexpType      = reflect.TypeOf(regexp.Regexp{})
)

// KindForType returns the Kind decoded into fields of type t, or
// KindInvalid if t is not handled by this package. Besides the package's own
// types, the standard time.Duration, time.Time and regexp.Regexp are
// recognized. Pointer types are not; decoders reach the element type on
// their own.
func KindForType(t reflect.Type) Kind {
	switch t {
	case byteSizeType:
		return KindByteSize
	case durationType, stdDurationType:
		return KindDuration
	case timestampType, timeType:
		return KindTimestamp
	case patternType, regexpType:
		return KindPattern
	default:
		return KindInvalid
	}
}

// DecodeHook returns a mapstructure decode hook that decodes human-friendly
// values into fields whose type is recognized by [KindForType]. Fields of
// other types are passed through untouched.
//
// Example:
//
//	decoder, _ := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
//	    DecodeHook: humanize.DecodeHook(),
//	    Result:     &cfg,
//	})
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		kind := KindForType(to)
		if kind == KindInvalid || data == nil || from == to {
			return data, nil
		}

		if v, ok := convertDecoded(data, to); ok {
			return v, nil
		}

		v, err := DecodeValue(kind, data)
		if err != nil {
			return nil, err
		}
		return toFieldType(v, to), nil
	}
}

// convertDecoded handles data that an upstream decoder already turned into
// one of the target representations, such as TOML datetimes.
func convertDecoded(data any, to reflect.Type) (any, bool) {
	switch v := data.(type) {
	case time.Time:
		return toFieldType(Timestamp{Time: v.UTC()}, to), KindForType(to) == KindTimestamp
	case Timestamp:
		return toFieldType(v, to), KindForType(to) == KindTimestamp
	case time.Duration:
		return toFieldType(Duration(v), to), KindForType(to) == KindDuration
	case Duration:
		return toFieldType(v, to), KindForType(to) == KindDuration
	case *regexp.Regexp:
		return toFieldType(Pattern{Regexp: v}, to), v != nil && KindForType(to) == KindPattern
	case Pattern:
		return toFieldType(v, to), v.Regexp != nil && KindForType(to) == KindPattern
	}
	return nil, false
}

// toFieldType converts a package value into the standard library type when
// the field is declared with it.
func toFieldType(v any, to reflect.Type) any {
	switch val := v.(type) {
	case Duration:
		if to == stdDurationType {
			return time.Duration(val)
		}
	case Timestamp:
		if to == timeType {
			return val.Time
		}
	case Pattern:
		if to == regexpType {
			return *val.Regexp
		}
	}
	return v
}
