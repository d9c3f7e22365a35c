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

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/humanize"
)

// CastType names the type a single raw value is cast to.
type CastType string

// revive:disable:exported
const (
	CastTypeByteSize    CastType = "bytesize"
	TypeCasterByteSize  Type     = "caster-bytesize"
	CastTypeDuration    CastType = "duration"
	TypeCasterDuration  Type     = "caster-duration"
	CastTypeTimestamp   CastType = "timestamp"
	TypeCasterTimestamp Type     = "caster-timestamp"
	CastTypePattern     CastType = "pattern"
	TypeCasterPattern   Type     = "caster-pattern"
	CastTypeString      CastType = "string"
	TypeCasterString    Type     = "caster-string"
	CastTypeBool        CastType = "bool"
	TypeCasterBool      Type     = "caster-bool"
	CastTypeInt64       CastType = "int64"
	TypeCasterInt64     Type     = "caster-int64"
	CastTypeUint64      CastType = "uint64"
	TypeCasterUint64    Type     = "caster-uint64"
	CastTypeFloat64     CastType = "float64"
	TypeCasterFloat64   Type     = "caster-float64"
)

// revive:enable:exported

func init() {
	RegisterDecoder(TypeCasterByteSize, NewCaster(CastTypeByteSize))
	RegisterDecoder(TypeCasterDuration, NewCaster(CastTypeDuration))
	RegisterDecoder(TypeCasterTimestamp, NewCaster(CastTypeTimestamp))
	RegisterDecoder(TypeCasterPattern, NewCaster(CastTypePattern))
	RegisterDecoder(TypeCasterString, NewCaster(CastTypeString))
	RegisterDecoder(TypeCasterBool, NewCaster(CastTypeBool))
	RegisterDecoder(TypeCasterInt64, NewCaster(CastTypeInt64))
	RegisterDecoder(TypeCasterUint64, NewCaster(CastTypeUint64))
	RegisterDecoder(TypeCasterFloat64, NewCaster(CastTypeFloat64))
}

// CasterCodec casts a single raw value, such as one Consul key, to a
// specific type. Human-friendly types go through the humanize parsers; the
// plain scalar types go through spf13/cast.
type CasterCodec struct {
	castType CastType
}

// NewCaster creates a new CasterCodec for the given cast type.
func NewCaster(castType CastType) *CasterCodec {
	return &CasterCodec{
		castType: castType,
	}
}

// CastType returns the type the codec casts to.
func (c *CasterCodec) CastType() CastType {
	return c.castType
}

// Decode casts data to the codec's type and stores the result in v, which
// must be a *any. Timestamps given as a plain number are read as Unix epoch
// seconds.
//
// Errors:
//   - Returns error if v is not a *any
//   - Returns the parser or cast error if data cannot be converted
func (c *CasterCodec) Decode(data []byte, v any) error {
	m, ok := v.(*any)
	if !ok {
		return fmt.Errorf("CasterCodec.Decode: expected *any, got %T", v)
	}
	value := string(data)

	var err error
	switch c.castType {
	case CastTypeByteSize:
		*m, err = humanize.Decode(humanize.KindByteSize, humanize.String(value))
	case CastTypeDuration:
		*m, err = humanize.Decode(humanize.KindDuration, humanize.String(value))
	case CastTypeTimestamp:
		*m, err = humanize.Decode(humanize.KindTimestamp, timestampScalar(value))
	case CastTypePattern:
		*m, err = humanize.Decode(humanize.KindPattern, humanize.String(value))
	case CastTypeString:
		*m, err = cast.ToStringE(value)
	case CastTypeBool:
		*m, err = cast.ToBoolE(strings.TrimSpace(value))
	case CastTypeInt64:
		*m, err = strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	case CastTypeUint64:
		*m, err = strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	case CastTypeFloat64:
		*m, err = cast.ToFloat64E(strings.TrimSpace(value))
	default:
		err = fmt.Errorf("unsupported cast type %q", c.castType)
	}

	return err
}

// timestampScalar reads numeric text as epoch seconds and everything else as
// an RFC 3339 string.
func timestampScalar(text string) humanize.Scalar {
	trimmed := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return humanize.Int(i)
	}
	if strings.ContainsAny(trimmed, "-:T") && !strings.HasPrefix(trimmed, "-") {
		return humanize.String(text)
	}
	if f, err := cast.ToFloat64E(trimmed); err == nil {
		return humanize.Float(f)
	}
	return humanize.String(text)
}
