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
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("base error")

	tests := []struct {
		name    string
		err     *Error
		wantMsg string
	}{
		{
			name:    "with field",
			err:     NewFieldError("binding", "cache.max_size", "decode", baseErr),
			wantMsg: "bind error in binding.cache.max_size during decode: base error",
		},
		{
			name:    "without field",
			err:     NewError("source[0]", "load", baseErr),
			wantMsg: "bind error in source[0] during load: base error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.ErrorIs(t, tt.err, baseErr)
		})
	}
}

func TestDecodeError_LiftsFieldName(t *testing.T) {
	t.Parallel()

	var out struct {
		Port int `mapstructure:"port"`
	}
	err := mapstructure.WeakDecode(map[string]any{"port": "eighty"}, &out)
	require.Error(t, err)

	bindErr := decodeError(err)
	assert.Equal(t, "port", bindErr.Field)
	assert.Equal(t, "binding", bindErr.Source)
	assert.ErrorIs(t, bindErr, err)

	plain := decodeError(fmt.Errorf("opaque"))
	assert.Empty(t, plain.Field)
}
