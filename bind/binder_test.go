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

//go:build !integration

package bind

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/humanize"
	"rivaas.dev/humanize/codec"
)

type cacheConfig struct {
	MaxSize humanize.ByteSize `config:"max_size"`
	TTL     time.Duration     `config:"ttl"`
}

type serviceConfig struct {
	Name    string             `config:"name"`
	Port    int                `config:"port"`
	Cache   cacheConfig        `config:"cache"`
	CloseAt time.Time          `config:"close_at"`
	OpenAt  humanize.Timestamp `config:"open_at"`
	Filter  *regexp.Regexp     `config:"filter"`
	Pattern humanize.Pattern   `config:"pattern"`
	Tags    []string           `config:"tags"`
}

type checkedConfig struct {
	MaxSize humanize.ByteSize `config:"max_size"`
}

func (c checkedConfig) Validate() error {
	if c.MaxSize > humanize.GiB {
		return errors.New("max_size must not exceed 1 GiB")
	}
	return nil
}

const serviceYAML = `
name: svc
port: "8080"
cache:
  max_size: 64 MiB
  ttl: 1d 12h
close_at: "2105-03-01T10:23:57.000013579+08:00"
open_at: 1704164645
filter: '^v\d+$'
pattern: '\n(\d{4}\-\d{2}\-\d{2})'
tags: a,b
`

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   []Option
		errMsg string
	}{
		{name: "no options"},
		{name: "valid source", opts: []Option{WithSource(TestSource(map[string]any{"a": 1}))}},
		{name: "nil source", opts: []Option{WithSource(nil)}, errMsg: "source cannot be nil"},
		{name: "nil binding", opts: []Option{WithBinding(nil)}, errMsg: "binding target cannot be nil"},
		{name: "non-pointer binding", opts: []Option{WithBinding(serviceConfig{})}, errMsg: "pointer to a struct"},
		{name: "pointer to non-struct", opts: []Option{WithBinding(new(int))}, errMsg: "pointer to a struct"},
		{name: "nil struct pointer", opts: []Option{WithBinding((*serviceConfig)(nil))}, errMsg: "nil pointer"},
		{name: "empty tag", opts: []Option{WithTag("")}, errMsg: "tag name cannot be empty"},
		{name: "nil validator", opts: []Option{WithValidator(nil)}, errMsg: "validator cannot be nil"},
		{name: "nil logger", opts: []Option{WithLogger(nil)}, errMsg: "logger cannot be nil"},
		{name: "unknown extension", opts: []Option{WithFile("service.ini")}, errMsg: "cannot detect format"},
		{name: "unknown codec", opts: []Option{WithContent(nil, codec.Type("xml"))}, errMsg: "decoder not found"},
		{name: "invalid schema", opts: []Option{WithJSONSchema([]byte(`{`))}, errMsg: "json-schema"},
		{name: "nil option skipped", opts: []Option{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := New(tt.opts...)
			assert.NotNil(t, b)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustNew(WithSource(nil)) })
	assert.NotPanics(t, func() { MustNew() })
}

func TestLoad_BindsHumanizedFields(t *testing.T) {
	t.Parallel()

	var cfg serviceConfig
	b := TestBinder(t, WithContent([]byte(serviceYAML), codec.TypeYAML), WithBinding(&cfg))
	require.NoError(t, b.Load(t.Context()))

	assert.Equal(t, "svc", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 64*humanize.MiB, cfg.Cache.MaxSize)
	assert.Equal(t, 36*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, int64(4265317437), cfg.CloseAt.Unix())
	assert.Equal(t, 13579, cfg.CloseAt.Nanosecond())
	assert.Equal(t, int64(1704164645), cfg.OpenAt.Unix())
	require.NotNil(t, cfg.Filter)
	assert.True(t, cfg.Filter.MatchString("v12"))
	assert.Equal(t, `\n(\d{4}\-\d{2}\-\d{2})`, cfg.Pattern.String())
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestLoad_JSONEpochTimestamp(t *testing.T) {
	t.Parallel()

	var cfg serviceConfig
	b := TestBinder(t,
		WithContent([]byte(`{"close_at": 4265317437, "open_at": 1704164645.5}`), codec.TypeJSON),
		WithBinding(&cfg),
	)
	require.NoError(t, b.Load(t.Context()))

	assert.Equal(t, int64(4265317437), cfg.CloseAt.Unix())
	assert.Equal(t, 500_000_000, cfg.OpenAt.Nanosecond())
}

func TestLoad_TOMLDatetime(t *testing.T) {
	t.Parallel()

	var cfg serviceConfig
	b := TestBinder(t,
		WithContent([]byte("close_at = 2024-01-02T05:04:05+02:00\n[cache]\nmax_size = \"1 M\"\n"), codec.TypeTOML),
		WithBinding(&cfg),
	)
	require.NoError(t, b.Load(t.Context()))

	assert.Equal(t, int64(1704164645), cfg.CloseAt.Unix())
	assert.Equal(t, humanize.ByteSize(1_000_000), cfg.Cache.MaxSize)
}

func TestLoad_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tree    map[string]any
		field   string
		wantErr error
	}{
		{
			name:    "numeric byte size",
			tree:    map[string]any{"cache": map[string]any{"max_size": 1024}},
			field:   "cache.max_size",
			wantErr: humanize.ErrTypeMismatch,
		},
		{
			name:    "byte size overflow",
			tree:    map[string]any{"cache": map[string]any{"max_size": "16 EiB"}},
			field:   "cache.max_size",
			wantErr: humanize.ErrOverflow,
		},
		{
			name:    "negative duration",
			tree:    map[string]any{"cache": map[string]any{"ttl": "-5s"}},
			field:   "cache.ttl",
			wantErr: humanize.ErrParse,
		},
		{
			name:    "bad timestamp",
			tree:    map[string]any{"close_at": "next tuesday"},
			field:   "close_at",
			wantErr: humanize.ErrParse,
		},
		{
			name:    "bad pattern",
			tree:    map[string]any{"filter": "(("},
			field:   "filter",
			wantErr: humanize.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg serviceConfig
			b := TestBinder(t, WithSource(TestSource(tt.tree)), WithBinding(&cfg))

			err := b.Load(t.Context())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var bindErr *Error
			require.ErrorAs(t, err, &bindErr)
			assert.Equal(t, tt.field, bindErr.Field)
			assert.Equal(t, "decode", bindErr.Operation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_FailureKeepsPreviousState(t *testing.T) {
	t.Parallel()

	src := &staticSource{tree: map[string]any{"cache": map[string]any{"max_size": "1 KiB"}}}
	var cfg serviceConfig
	b := TestBinder(t, WithSource(src), WithBinding(&cfg))
	require.NoError(t, b.Load(t.Context()))

	src.tree = map[string]any{"cache": map[string]any{"max_size": "lots"}}
	require.Error(t, b.Load(t.Context()))

	assert.Equal(t, humanize.KiB, cfg.Cache.MaxSize)
	assert.Equal(t, "1 KiB", b.String("cache.max_size"))
}

func TestLoad_MergeOrder(t *testing.T) {
	t.Parallel()

	b := TestBinder(t,
		WithSource(TestSource(map[string]any{"Cache": map[string]any{"Max_Size": "1 KiB", "ttl": "1m"}})),
		WithSource(TestSource(map[string]any{"cache": map[string]any{"max_size": "2 KiB"}})),
		WithSource(TestSource(nil)),
	)
	require.NoError(t, b.Load(t.Context()))

	assert.Equal(t, 2*humanize.KiB, b.ByteSize("cache.max_size"))
	assert.Equal(t, time.Minute, b.Duration("CACHE.TTL"))
}

func TestLoad_SourceError(t *testing.T) {
	t.Parallel()

	b := TestBinder(t,
		WithSource(TestSource(map[string]any{"a": "b"})),
		WithSource(TestSourceWithError(errors.New("boom"))),
	)

	err := b.Load(t.Context())
	var bindErr *Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "source[1]", bindErr.Source)
	assert.Equal(t, "load", bindErr.Operation)
	assert.Empty(t, b.Values())
}

func TestLoad_StructValidator(t *testing.T) {
	t.Parallel()

	var cfg checkedConfig
	b := TestBinder(t, WithSource(TestSource(map[string]any{"max_size": "2 GiB"})), WithBinding(&cfg))

	err := b.Load(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not exceed 1 GiB")
	assert.Zero(t, cfg.MaxSize)
}

func TestLoad_CustomValidators(t *testing.T) {
	t.Parallel()

	b := TestBinder(t,
		WithSource(TestSource(map[string]any{"name": "svc"})),
		WithValidator(func(m map[string]any) error {
			if m["name"] != "svc" {
				return errors.New("unexpected name")
			}
			return nil
		}),
	)
	require.NoError(t, b.Load(t.Context()))

	b = TestBinder(t,
		WithSource(TestSource(map[string]any{"name": "svc"})),
		WithValidator(func(map[string]any) error { panic("broken") }),
	)
	err := b.Load(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom-validator[0]")
	assert.Contains(t, err.Error(), "validator panic: broken")
}

func TestLoad_JSONSchema(t *testing.T) {
	t.Parallel()

	schema := []byte(`{
		"type": "object",
		"properties": {
			"max_size": {"type": "integer", "maximum": 1048576},
			"ttl": {"type": "string"},
			"close_at": {"type": "string", "format": "date-time"}
		},
		"required": ["max_size"]
	}`)

	b := TestBinder(t,
		WithSource(TestSource(map[string]any{
			"max_size": humanize.KiB,
			"ttl":      humanize.Duration(time.Minute),
			"close_at": time.Unix(0, 0).UTC(),
		})),
		WithJSONSchema(schema),
	)
	require.NoError(t, b.Load(t.Context()))

	b = TestBinder(t, WithSource(TestSource(map[string]any{"max_size": humanize.GiB})), WithJSONSchema(schema))
	err := b.Load(t.Context())
	var bindErr *Error
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "json-schema", bindErr.Source)
}

func TestLoad_CustomTag(t *testing.T) {
	t.Parallel()

	var cfg struct {
		Size humanize.ByteSize `cfg:"size"`
	}
	b := TestBinder(t, WithSource(TestSource(map[string]any{"size": "3 KB"})), WithBinding(&cfg), WithTag("cfg"))
	require.NoError(t, b.Load(t.Context()))
	assert.Equal(t, 3*humanize.KB, cfg.Size)
}

func TestLoad_Files(t *testing.T) {
	t.Parallel()

	yamlPath := TestFile(t, "service.yaml", []byte("cache:\n  max_size: 1 Mi\n"))
	envPath := TestFile(t, "service.env", []byte("CACHE_TTL=90s\n"))
	rawPath := TestFile(t, "service", []byte(`{"name": "svc"}`))

	var cfg serviceConfig
	b := TestBinder(t,
		WithFile(yamlPath),
		WithFile(envPath),
		WithFileAs(rawPath, codec.TypeJSON),
		WithBinding(&cfg),
	)
	require.NoError(t, b.Load(t.Context()))

	assert.Equal(t, humanize.MiB, cfg.Cache.MaxSize)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "svc", cfg.Name)
}

func TestWithFile_ExpandsEnvVars(t *testing.T) {
	path := TestFile(t, "service.json", []byte(`{"name": "expanded"}`))
	t.Setenv("HUMANIZE_BIND_TEST_PATH", path)

	b := TestBinder(t, WithFile("${HUMANIZE_BIND_TEST_PATH}"))
	require.NoError(t, b.Load(t.Context()))
	assert.Equal(t, "expanded", b.String("name"))
}

func TestWithEnv(t *testing.T) {
	t.Setenv("HUMANIZE_BIND_TEST_CACHE_MAX_SIZE", "2 GiB")

	b := TestBinder(t, WithEnv("HUMANIZE_BIND_TEST_"))
	require.NoError(t, b.Load(t.Context()))

	// Underscores nest, so max_size is read as max.size.
	assert.Equal(t, 2*humanize.GiB, b.ByteSize("cache.max.size"))
}

func TestWithConsul_SkipsWithoutAddress(t *testing.T) {
	t.Setenv("CONSUL_HTTP_ADDR", "")

	b := TestBinder(t,
		WithConsul("service/config.yaml"),
		WithConsulAs("service/cache/max_size", codec.TypeCasterByteSize),
	)
	assert.Empty(t, b.sources)
}

func TestWithConsul_Configured(t *testing.T) {
	t.Setenv("CONSUL_HTTP_ADDR", "127.0.0.1:8500")

	b, err := New(WithConsul("service/config"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detect-format")
	assert.Empty(t, b.sources)

	b = TestBinder(t,
		WithConsul("service/config.yaml"),
		WithConsulAs("service/cache/max_size", codec.TypeCasterByteSize),
	)
	assert.Len(t, b.sources, 2)
}

func TestLoad_NilAndCanceledContext(t *testing.T) {
	t.Parallel()

	b := TestBinder(t, WithSource(TestSource(map[string]any{"a": "b"})))

	//nolint:staticcheck // nil context is rejected
	require.Error(t, b.Load(nil))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	assert.ErrorIs(t, b.Load(ctx), context.Canceled)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustNew(WithSource(TestSourceWithError(errors.New("boom")))).MustLoad(t.Context())
	})
	assert.NotPanics(t, func() {
		MustNew(WithSource(TestSource(map[string]any{}))).MustLoad(t.Context())
	})
}

func TestLoad_Concurrent(t *testing.T) {
	t.Parallel()

	var cfg serviceConfig
	b := TestBinder(t,
		WithSource(TestSource(map[string]any{"cache": map[string]any{"max_size": "1 KiB", "ttl": "1s"}})),
		WithBinding(&cfg),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, b.Load(context.Background()))
		}()
		go func() {
			defer wg.Done()
			_ = b.ByteSize("cache.max_size")
			_ = b.Values()
		}()
	}
	wg.Wait()

	assert.Equal(t, humanize.KiB, b.ByteSize("cache.max_size"))
}
