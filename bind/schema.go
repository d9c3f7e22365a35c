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
	"regexp"
	"time"

	"rivaas.dev/humanize"
)

// schemaView returns a copy of v made only of JSON types. Values that a
// source already decoded are turned back into their text or numeric form.
func schemaView(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, x := range val {
			out[k] = schemaView(x)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, x := range val {
			out[i] = schemaView(x)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, x := range val {
			out[i] = schemaView(x)
		}
		return out
	case humanize.ByteSize:
		return uint64(val)
	case humanize.Duration:
		return val.String()
	case time.Duration:
		return val.String()
	case humanize.Timestamp:
		return val.Format(time.RFC3339Nano)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case humanize.Pattern:
		return val.String()
	case *regexp.Regexp:
		return val.String()
	default:
		return v
	}
}
