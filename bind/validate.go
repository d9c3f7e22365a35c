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
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/humanize"
)

// newStructValidator returns a validator for `validate` struct tags. Field
// names in its errors follow tagName, so they match decode errors.
//
// Besides the stock rules it understands human-friendly limits:
//
//	MaxSize humanize.ByteSize `validate:"minsize=1 KiB,maxsize=1 GiB"`
//	TTL     time.Duration     `validate:"mindur=1s,maxdur=2d"`
func newStructValidator(tagName string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get(tagName), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("minsize", byteSizeRule(func(size, limit humanize.ByteSize) bool { return size >= limit }))
	_ = v.RegisterValidation("maxsize", byteSizeRule(func(size, limit humanize.ByteSize) bool { return size <= limit }))
	_ = v.RegisterValidation("mindur", durationRule(func(d, limit int64) bool { return d >= limit }))
	_ = v.RegisterValidation("maxdur", durationRule(func(d, limit int64) bool { return d <= limit }))

	return v
}

// ErrInvalidTag is returned by Load when a `validate` tag names a rule that
// does not apply to its field, or carries a malformed parameter.
var ErrInvalidTag = errors.New("invalid validate tag")

// The rules panic on misuse, as the stock go-playground rules do;
// validateStruct turns the panic into ErrInvalidTag.

func byteSizeRule(cmp func(size, limit humanize.ByteSize) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if humanize.KindForType(field.Type()) != humanize.KindByteSize {
			panic(fmt.Sprintf("%s requires a byte size field, got %s", fl.GetTag(), field.Type()))
		}
		limit, err := humanize.ParseByteSize(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("%s: %v", fl.GetTag(), err))
		}
		return cmp(humanize.ByteSize(field.Uint()), limit)
	}
}

func durationRule(cmp func(d, limit int64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if humanize.KindForType(field.Type()) != humanize.KindDuration {
			panic(fmt.Sprintf("%s requires a duration field, got %s", fl.GetTag(), field.Type()))
		}
		limit, err := humanize.ParseDuration(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("%s: %v", fl.GetTag(), err))
		}
		return cmp(field.Int(), int64(limit))
	}
}

// validateStruct checks the struct target points to against its tags.
func validateStruct(v *validator.Validate, target reflect.Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewError("binding", "validate", fmt.Errorf("%w: %v", ErrInvalidTag, r))
		}
	}()

	if verr := v.Struct(target.Interface()); verr != nil {
		return validationError(verr, target.Elem().Type())
	}
	return nil
}

// validationError reports the first failing field of a struct validation.
// Namespaces of named types start with the type name, which is dropped.
func validationError(err error, typ reflect.Type) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Namespace()
		if name := typ.Name(); name != "" {
			field = strings.TrimPrefix(field, name+".")
		}
		return NewFieldError("binding", field, "validate", err)
	}
	return NewError("binding", "validate", err)
}
