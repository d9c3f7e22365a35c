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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  ByteSize
	}{
		{name: "decimal mega with space", input: "1 M", want: 1_000_000},
		{name: "binary mebi with space", input: "1 Mi", want: 1_048_576},
		{name: "kilo bytes no space", input: "10Kb", want: 10_000},
		{name: "gibibytes", input: "2 GiB", want: 2 * GiB},
		{name: "lower case unit", input: "1 mb", want: MB},
		{name: "upper case unit", input: "3 TB", want: 3 * TB},
		{name: "bare number", input: "512", want: 512},
		{name: "explicit bytes", input: "1,024 B", want: 1024},
		{name: "fractional magnitude", input: "1.5 KiB", want: 1536},
		{name: "surrounding whitespace", input: "  64 MiB  ", want: 64 * MiB},
		{name: "zero", input: "0", want: 0},
		{name: "largest exbibyte multiple", input: "15 EiB", want: 15 << 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseByteSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseByteSize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		overflow bool
	}{
		{name: "empty", input: ""},
		{name: "blank", input: "   "},
		{name: "unit only", input: "M"},
		{name: "unknown unit", input: "10 XB"},
		{name: "negative", input: "-1 K"},
		{name: "trailing garbage", input: "1 M extra"},
		{name: "exbibyte overflow", input: "16 EiB", overflow: true},
		{name: "exabyte overflow", input: "20 EB", overflow: true},
		{name: "integer overflow", input: "18446744073709551616", overflow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseByteSize(tt.input)
			require.Error(t, err)

			if tt.overflow {
				var overflowErr *OverflowError
				require.ErrorAs(t, err, &overflowErr)
				assert.Equal(t, KindByteSize, overflowErr.Kind)
				assert.ErrorIs(t, err, ErrOverflow)
				assert.NotErrorIs(t, err, ErrParse)
				return
			}

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, KindByteSize, parseErr.Kind)
			assert.Equal(t, tt.input, parseErr.Input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseByteSize_EmptyInputSentinel(t *testing.T) {
	t.Parallel()

	_, err := ParseByteSize("")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}
