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

import "github.com/vmihailenco/msgpack/v5"

// TypeMsgPack is a constant representing the MessagePack encoding type.
const TypeMsgPack Type = "msgpack"

func init() {
	RegisterDecoder(TypeMsgPack, MsgPackCodec{})
}

// MsgPackCodec decodes MessagePack documents. Nested maps decode to
// map[string]any, integers to the smallest Go integer type that holds them,
// and the timestamp extension to time.Time.
type MsgPackCodec struct{}

// Decode decodes the MessagePack-encoded data into the value pointed to by v.
func (MsgPackCodec) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
