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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/humanize"
	"rivaas.dev/humanize/codec"
	"rivaas.dev/humanize/source"
)

const defaultTagName = "config"

var (
	noopLogger    = slog.New(slog.NewTextHandler(io.Discard, nil))
	schemaCounter atomic.Uint64
)

// Option configures a Binder.
type Option func(b *Binder) error

// Binder loads configuration from ordered sources and binds it to a struct
// whose fields may use human-friendly types such as [humanize.ByteSize],
// [humanize.Duration], time.Time or *regexp.Regexp.
//
// Binder is safe for concurrent use. A failed Load leaves the previously
// loaded values and the bound struct untouched.
type Binder struct {
	mu         sync.RWMutex
	values     map[string]any
	sources    []Source
	binding    any
	tagName    string
	schema     *jsonschema.Schema
	validators []func(map[string]any) error
	structs    *validator.Validate
	logger     *slog.Logger
}

// WithSource adds a source. Later sources override earlier ones.
func WithSource(src Source) Option {
	return func(b *Binder) error {
		if src == nil {
			return errors.New("source cannot be nil")
		}
		b.sources = append(b.sources, src)
		return nil
	}
}

// WithFile adds a file source. The format is detected from the extension
// (.yaml, .yml, .json, .toml, .env). Environment variables in path are
// expanded.
//
// Example:
//
//	b := bind.MustNew(
//	    bind.WithFile("${CONFIG_DIR}/service.yaml"),
//	    bind.WithBinding(&cfg),
//	)
func WithFile(path string) Option {
	return func(b *Binder) error {
		path = os.ExpandEnv(path)

		format, err := detectFormat(path)
		if err != nil {
			return NewError("file-source", "detect-format", err)
		}

		return WithFileAs(path, format)(b)
	}
}

// WithFileAs adds a file source decoded with an explicit codec type.
func WithFileAs(path string, codecType codec.Type) Option {
	return func(b *Binder) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("file-source", "get-decoder", err)
		}

		b.sources = append(b.sources, source.NewFile(os.ExpandEnv(path), decoder))
		return nil
	}
}

// WithContent adds in-memory content decoded with the given codec type.
func WithContent(data []byte, codecType codec.Type) Option {
	return func(b *Binder) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("content-source", "get-decoder", err)
		}

		b.sources = append(b.sources, source.NewFileContent(data, decoder))
		return nil
	}
}

// WithEnv adds the process environment, filtered by prefix. With prefix
// "APP_", APP_CACHE_TTL=90s is read as cache.ttl.
func WithEnv(prefix string) Option {
	return func(b *Binder) error {
		b.sources = append(b.sources, source.NewOSEnvVar(prefix))
		return nil
	}
}

// WithConsul adds a Consul key whose format is detected from its extension.
//
// The option does nothing when CONSUL_HTTP_ADDR is unset, so the same
// options work in development without Consul.
func WithConsul(key string) Option {
	return func(b *Binder) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		format, err := detectFormat(os.ExpandEnv(key))
		if err != nil {
			return NewError("consul-source", "detect-format", err)
		}

		return WithConsulAs(key, format)(b)
	}
}

// WithConsulAs adds a Consul key decoded with an explicit codec type. Caster
// types such as [codec.TypeCasterByteSize] store the single value under the
// last segment of the key. Like [WithConsul] it does nothing when
// CONSUL_HTTP_ADDR is unset.
func WithConsulAs(key string, codecType codec.Type) Option {
	return func(b *Binder) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("consul-source", "get-decoder", err)
		}

		src, err := source.NewConsul(os.ExpandEnv(key), decoder, nil)
		if err != nil {
			return NewError("consul-source", "create-client", err)
		}

		b.sources = append(b.sources, src)
		return nil
	}
}

// WithBinding sets the struct that Load decodes into. v must be a non-nil
// pointer to a struct.
func WithBinding(v any) Option {
	return func(b *Binder) error {
		if v == nil {
			return errors.New("binding target cannot be nil")
		}
		t := reflect.TypeOf(v)
		if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("binding target must be a pointer to a struct, got %T", v)
		}
		if reflect.ValueOf(v).IsNil() {
			return errors.New("binding target cannot be a nil pointer")
		}
		b.binding = v
		return nil
	}
}

// WithTag sets the struct tag read during binding (default "config").
func WithTag(tagName string) Option {
	return func(b *Binder) error {
		if tagName == "" {
			return errors.New("tag name cannot be empty")
		}
		b.tagName = tagName
		return nil
	}
}

// WithJSONSchema validates the merged tree against a JSON Schema before
// binding. Human-friendly values that sources already decoded are presented
// to the schema in their text form, so a byte size is a number and a
// duration or pattern is a string.
func WithJSONSchema(schema []byte) Option {
	return func(b *Binder) error {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
		if err != nil {
			return NewError("json-schema", "parse", err)
		}

		name := fmt.Sprintf("inline-%d.json", schemaCounter.Add(1))
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource(name, doc); err != nil {
			return NewError("json-schema", "compile", err)
		}
		compiled, err := compiler.Compile(name)
		if err != nil {
			return NewError("json-schema", "compile", err)
		}

		b.schema = compiled
		return nil
	}
}

// WithValidator adds a check over the merged raw tree. Validators run in
// order after schema validation; a panic is reported as an error.
func WithValidator(fn func(map[string]any) error) Option {
	return func(b *Binder) error {
		if fn == nil {
			return errors.New("validator cannot be nil")
		}
		b.validators = append(b.validators, fn)
		return nil
	}
}

// WithLogger sets the logger for load diagnostics. Nothing is logged by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// New creates a Binder. Option errors are joined and returned together with
// the partially configured Binder.
func New(options ...Option) (*Binder, error) {
	b := &Binder{
		values:  make(map[string]any),
		tagName: defaultTagName,
		logger:  noopLogger,
	}

	var errs error
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(b); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	b.structs = newStructValidator(b.tagName)

	return b, errs
}

// MustNew is New that panics on error, for use in main and tests.
func MustNew(options ...Option) *Binder {
	b, err := New(options...)
	if err != nil {
		panic(fmt.Sprintf("bind: failed to create binder: %v", err))
	}
	return b
}

// Load reads every source, merges the trees, validates them and binds the
// result. Bound structs are checked against their `validate` tags and then
// their Validate method. On success the merged values and the bound struct
// are replaced together.
//
// Errors:
//   - Returns error if ctx is nil
//   - Returns [*Error] if a source fails to load or merge
//   - Returns [*Error] if schema or custom validation fails
//   - Returns [*Error] naming the field if a value cannot be decoded, a
//     default cannot be applied, or a `validate` tag fails
//   - Returns [*Error] if the struct's Validate method fails
func (b *Binder) Load(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context cannot be nil")
	}

	values, err := b.loadSources(ctx)
	if err != nil {
		b.logger.Warn("configuration load failed", "error", err)
		return err
	}

	if err = b.validate(values); err != nil {
		b.logger.Warn("configuration validation failed", "error", err)
		return err
	}

	var bound reflect.Value
	if b.binding != nil {
		bound, err = b.bind(values)
		if err != nil {
			b.logger.Warn("configuration binding failed", "error", err)
			return err
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if bound.IsValid() {
		reflect.ValueOf(b.binding).Elem().Set(bound.Elem())
	}
	b.values = values
	b.logger.Debug("configuration loaded", "sources", len(b.sources), "keys", len(values))

	return nil
}

// MustLoad is Load that panics on error.
func (b *Binder) MustLoad(ctx context.Context) {
	if err := b.Load(ctx); err != nil {
		panic(err)
	}
}

// Values returns a copy of the top level of the merged tree.
func (b *Binder) Values() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

func (b *Binder) loadSources(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for i, src := range b.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tree, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		b.logger.Debug("configuration source loaded", "index", i, "source", fmt.Sprintf("%T", src), "keys", len(tree))

		if err = mergo.Map(&merged, lowerKeys(tree), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	return merged, nil
}

func (b *Binder) validate(values map[string]any) error {
	if b.schema != nil {
		if err := b.schema.Validate(schemaView(values)); err != nil {
			return NewError("json-schema", "validate", err)
		}
	}

	for i, fn := range b.validators {
		if err := runValidator(fn, values); err != nil {
			return NewError(fmt.Sprintf("custom-validator[%d]", i), "validate", err)
		}
	}

	return nil
}

func runValidator(fn func(map[string]any) error, values map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()
	return fn(values)
}

// bind decodes values into a fresh copy of the bound struct, so the caller's
// struct is only written once everything succeeded.
func (b *Binder) bind(values map[string]any) (reflect.Value, error) {
	target := reflect.New(reflect.TypeOf(b.binding).Elem())

	decoder, err := mapstructure.NewDecoder(b.decoderConfig(target.Interface()))
	if err != nil {
		return reflect.Value{}, NewError("binding", "create-decoder", err)
	}
	if err = decoder.Decode(values); err != nil {
		return reflect.Value{}, decodeError(err)
	}

	if err = applyDefaults(target.Elem(), values, b.tagName, ""); err != nil {
		return reflect.Value{}, err
	}

	if err = validateStruct(b.structs, target); err != nil {
		return reflect.Value{}, err
	}

	if v, ok := target.Interface().(Validator); ok {
		if err = v.Validate(); err != nil {
			return reflect.Value{}, NewError("binding", "validate", err)
		}
	}

	return target, nil
}

func (b *Binder) decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		TagName:          b.tagName,
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           result,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			humanize.DecodeHook(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToURLHookFunc(),
		),
	}
}

// lowerKeys returns m with every map key lower-cased, recursively.
func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = lowerKeys(nested)
		}
		out[strings.ToLower(k)] = v
	}
	return out
}
