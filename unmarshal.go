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
	"bytes"
	"encoding/json"
	"time"
)

// Field-level hooks for encoding/json, github.com/goccy/go-yaml
// (InterfaceUnmarshaler), github.com/BurntSushi/toml (Unmarshaler) and any
// decoder that honors encoding.TextUnmarshaler. A null or absent value leaves
// the destination unchanged.

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteSize) UnmarshalText(text []byte) error {
	return assign(b, String(string(text)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	return assignJSON(b, data)
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (b *ByteSize) UnmarshalYAML(unmarshal func(any) error) error {
	return assignYAML(b, unmarshal)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (b *ByteSize) UnmarshalTOML(v any) error {
	return assignValue(b, v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	return assign(d, String(string(text)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	return assignJSON(d, data)
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	return assignYAML(d, unmarshal)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Duration) UnmarshalTOML(v any) error {
	return assignValue(d, v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	return assign(t, String(string(text)))
}

// UnmarshalJSON implements json.Unmarshaler. Both RFC 3339 strings and
// epoch numbers are accepted.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	return assignJSON(t, data)
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (t *Timestamp) UnmarshalYAML(unmarshal func(any) error) error {
	return assignYAML(t, unmarshal)
}

// UnmarshalTOML implements toml.Unmarshaler. Native TOML offset datetimes
// are taken as is.
func (t *Timestamp) UnmarshalTOML(v any) error {
	return assignValue(t, v)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	return assign(p, String(string(text)))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	return assignJSON(p, data)
}

// UnmarshalYAML implements the goccy/go-yaml InterfaceUnmarshaler.
func (p *Pattern) UnmarshalYAML(unmarshal func(any) error) error {
	return assignYAML(p, unmarshal)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Pattern) UnmarshalTOML(v any) error {
	return assignValue(p, v)
}

func assign[T Value](dst *T, raw Scalar) error {
	v, err := Deserialize[T](raw)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func assignValue[T Value](dst *T, v any) error {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		if ts, ok := any(dst).(*Timestamp); ok {
			*ts = Timestamp{Time: val.UTC()}
			return nil
		}
	}

	out, err := DecodeValue(KindOf[T](), v)
	if err != nil {
		return err
	}
	*dst = out.(T)
	return nil
}

func assignJSON[T Value](dst *T, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return assignValue(dst, v)
}

func assignYAML[T Value](dst *T, unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return assignValue(dst, v)
}
