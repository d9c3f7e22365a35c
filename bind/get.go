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

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"

	"rivaas.dev/humanize"
)

// ErrKeyNotFound is returned by [GetE] when no value exists at the key.
var ErrKeyNotFound = errors.New("key not found")

// Get returns the value at key converted to T, or the zero value of T if the
// key is missing or the value cannot be converted.
//
// Human-friendly targets ([humanize.ByteSize], [humanize.Duration],
// time.Duration, time.Time, *regexp.Regexp and friends) are parsed with the
// humanize parsers. Other types are converted with spf13/cast.
//
// Example:
//
//	size := bind.Get[humanize.ByteSize](b, "cache.max_size")
func Get[T any](b *Binder, key string) T {
	v, _ := GetE[T](b, key)
	return v
}

// GetOr returns the value at key converted to T, or defaultVal if the key is
// missing or the value cannot be converted.
//
// Example:
//
//	ttl := bind.GetOr(b, "cache.ttl", 5*time.Minute)
func GetOr[T any](b *Binder, key string, defaultVal T) T {
	v, err := GetE[T](b, key)
	if err != nil {
		return defaultVal
	}
	return v
}

// GetE returns the value at key converted to T.
//
// Errors:
//   - Returns [ErrKeyNotFound] if there is no value at key
//   - Returns the humanize parse error, or a conversion error, if the value
//     cannot be converted to T
func GetE[T any](b *Binder, key string) (T, error) {
	var zero T
	if b == nil {
		return zero, errors.New("binder is nil")
	}

	val := b.lookup(key)
	if val == nil {
		return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	out, err := convert[T](val)
	if err != nil {
		return zero, fmt.Errorf("cannot convert value at key %q to %T: %w", key, zero, err)
	}
	return out, nil
}

func convert[T any](val any) (T, error) {
	var zero T
	if out, ok := val.(T); ok {
		return out, nil
	}

	if out, ok, err := decodeHumanized(val, reflect.TypeFor[T]()); ok {
		if err != nil {
			return zero, err
		}
		return out.(T), nil
	}

	out, err := castTo(any(zero), val)
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// decodeHumanized decodes val into t when t, or the element of pointer t, is
// a humanize target type. ok is false for every other type.
func decodeHumanized(val any, t reflect.Type) (out any, ok bool, err error) {
	target := t
	if t.Kind() == reflect.Pointer {
		target = t.Elem()
	}
	if humanize.KindForType(target) == humanize.KindInvalid {
		return nil, false, nil
	}

	v, err := humanizeHook(reflect.TypeOf(val), target, val)
	if err != nil {
		return nil, true, err
	}
	if target == t {
		return v, true, nil
	}

	p := reflect.New(target)
	p.Elem().Set(reflect.ValueOf(v))
	return p.Interface(), true, nil
}

func castTo(zero, val any) (any, error) {
	switch zero.(type) {
	case string:
		return cast.ToStringE(val)
	case bool:
		return cast.ToBoolE(val)
	case int:
		return cast.ToIntE(val)
	case int64:
		return cast.ToInt64E(val)
	case int32:
		return cast.ToInt32E(val)
	case uint:
		return cast.ToUintE(val)
	case uint64:
		return cast.ToUint64E(val)
	case uint32:
		return cast.ToUint32E(val)
	case float64:
		return cast.ToFloat64E(val)
	case float32:
		return cast.ToFloat32E(val)
	case []string:
		return cast.ToStringSliceE(val)
	case []int:
		return cast.ToIntSliceE(val)
	case map[string]any:
		return cast.ToStringMapE(val)
	case map[string]string:
		return cast.ToStringMapStringE(val)
	default:
		return nil, fmt.Errorf("unsupported target type %T", zero)
	}
}

// lookup finds key in the merged tree. A literal top-level key wins over a
// dotted path. Keys are case-insensitive.
func (b *Binder) lookup(key string) any {
	if key == "" {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	key = strings.ToLower(key)
	if v, ok := b.values[key]; ok {
		return v
	}

	var current any = b.values
	for segment := range strings.SplitSeq(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = m[segment]; !ok {
			return nil
		}
	}
	return current
}

// Get returns the raw value at key, or nil.
func (b *Binder) Get(key string) any {
	if b == nil {
		return nil
	}
	return b.lookup(key)
}

// String returns the value at key as a string, or "".
func (b *Binder) String(key string) string {
	return Get[string](b, key)
}

// Int returns the value at key as an int, or 0.
func (b *Binder) Int(key string) int {
	return Get[int](b, key)
}

// Bool returns the value at key as a bool, or false.
func (b *Binder) Bool(key string) bool {
	return Get[bool](b, key)
}

// Float64 returns the value at key as a float64, or 0.
func (b *Binder) Float64(key string) float64 {
	return Get[float64](b, key)
}

// StringSlice returns the value at key as a string slice.
func (b *Binder) StringSlice(key string) []string {
	return Get[[]string](b, key)
}

// ByteSize returns the byte size at key, such as "64 MiB", or 0. Numbers
// are not accepted; a size must be written with its unit.
func (b *Binder) ByteSize(key string) humanize.ByteSize {
	return Get[humanize.ByteSize](b, key)
}

// Duration returns the duration at key, such as "1d 12h", or 0.
func (b *Binder) Duration(key string) time.Duration {
	return Get[time.Duration](b, key)
}

// Time returns the timestamp at key, or the zero time. RFC 3339 strings and
// Unix epoch seconds are accepted.
func (b *Binder) Time(key string) time.Time {
	return Get[time.Time](b, key)
}

// Pattern returns the compiled regular expression at key, or nil.
func (b *Binder) Pattern(key string) *regexp.Regexp {
	return Get[*regexp.Regexp](b, key)
}
