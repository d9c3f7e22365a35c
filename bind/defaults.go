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
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/humanize"
)

var humanizeHook = humanize.DecodeHook()

// applyDefaults fills fields whose key is missing from tree with their
// `default` tags. A key present with a non-nil value is kept even when it
// decoded to a zero value, so `debug: false` survives `default:"true"`.
// Fields of human-friendly types take human-friendly defaults, e.g.
// `default:"64 MiB"` or `default:"1h 30m"`. Keys follow tagName the way the
// decoder matches them; path is the dotted Go field path of v, used in
// errors.
func applyDefaults(v reflect.Value, tree map[string]any, tagName, path string) error {
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		sf := t.Field(i)
		if !field.CanSet() {
			continue
		}

		name := sf.Name
		if path != "" {
			name = path + "." + sf.Name
		}

		key, squash := fieldKey(sf, tagName)
		if field.Kind() == reflect.Struct && humanize.KindForType(field.Type()) == humanize.KindInvalid {
			sub := tree
			if !squash {
				sub, _ = lookupKey(tree, key).(map[string]any)
			}
			if err := applyDefaults(field, sub, tagName, name); err != nil {
				return err
			}
			continue
		}

		tag, ok := sf.Tag.Lookup("default")
		if !ok || lookupKey(tree, key) != nil {
			continue
		}

		if err := setDefault(field, tag); err != nil {
			return NewFieldError("defaults", name, "apply", err)
		}
	}

	return nil
}

// fieldKey returns the tree key the decoder reads sf from, and whether sf
// is squashed into its parent. Embedded structs are squashed unless named
// by a tag. A key of "" means the field is never decoded.
func fieldKey(sf reflect.StructField, tagName string) (key string, squash bool) {
	name, opts, _ := strings.Cut(sf.Tag.Get(tagName), ",")
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "squash" {
			return "", true
		}
	}
	switch name {
	case "-":
		return "", false
	case "":
		return sf.Name, sf.Anonymous
	}
	return name, false
}

// lookupKey returns tree's value for key, matched case-insensitively.
func lookupKey(tree map[string]any, key string) any {
	if tree == nil || key == "" {
		return nil
	}
	if v, ok := tree[key]; ok {
		return v
	}
	for k, v := range tree {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func setDefault(field reflect.Value, tag string) error {
	if field.Kind() == reflect.Pointer {
		elem := reflect.New(field.Type().Elem())
		if err := setDefault(elem.Elem(), tag); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	if humanize.KindForType(field.Type()) != humanize.KindInvalid {
		v, err := humanizeHook(reflect.TypeOf(tag), field.Type(), tag)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(v))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(tag)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := cast.ToInt64E(tag)
		if err != nil {
			return err
		}
		if field.OverflowInt(i) {
			return fmt.Errorf("value %d overflows %s", i, field.Type())
		}
		field.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := cast.ToUint64E(tag)
		if err != nil {
			return err
		}
		if field.OverflowUint(u) {
			return fmt.Errorf("value %d overflows %s", u, field.Type())
		}
		field.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(tag)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := cast.ToBoolE(tag)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported type for default tag: %s", field.Type())
		}
		parts := strings.Split(tag, ",")
		s := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			s.Index(i).SetString(strings.TrimSpace(p))
		}
		field.Set(s)
	default:
		return fmt.Errorf("unsupported type for default tag: %s", field.Type())
	}

	return nil
}
