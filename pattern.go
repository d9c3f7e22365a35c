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

import "regexp"

// Pattern is a compiled regular expression. String returns the source text
// exactly as it was decoded.
type Pattern struct {
	*regexp.Regexp
}

// Std returns the compiled expression.
func (p Pattern) Std() *regexp.Regexp { return p.Regexp }

// String returns the source text, or "" for the zero Pattern.
func (p Pattern) String() string {
	if p.Regexp == nil {
		return ""
	}
	return p.Regexp.String()
}

// ParsePattern compiles input with the regexp package. The input is passed
// through untouched.
//
// Errors:
//   - Returns [*ParseError] wrapping the compiler's *syntax.Error
func ParsePattern(input string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(input)
	if err != nil {
		return nil, newParseError(KindPattern, input, err)
	}
	return re, nil
}
