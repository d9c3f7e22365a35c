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

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// TypeProtoStruct is a constant representing binary google.protobuf.Struct
// documents.
const TypeProtoStruct Type = "proto-struct"

func init() {
	RegisterDecoder(TypeProtoStruct, ProtoStructCodec{})
}

// ProtoStructCodec decodes a binary google.protobuf.Struct, as pushed by
// control planes that speak protobuf. All numbers become float64, so epoch
// timestamps keep at most microsecond precision in practice.
type ProtoStructCodec struct{}

// Decode decodes data into v, which must be a *map[string]any.
//
// Errors:
//   - Returns error if v is not a *map[string]any
//   - Returns error if data is not a valid Struct message
func (ProtoStructCodec) Decode(data []byte, v any) error {
	ptr, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("ProtoStructCodec.Decode: expected *map[string]any, got %T", v)
	}

	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal protobuf struct: %w", err)
	}

	*ptr = s.AsMap()
	return nil
}
