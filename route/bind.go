// Copyright 2025 The Rivaas Authors
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

package route

import (
	"fmt"
	"reflect"

	"github.com/arkhttp/arkhttp/httpmsg"
	"github.com/arkhttp/arkhttp/pattern"
)

var (
	requestType = reflect.TypeOf((*httpmsg.Request)(nil))
	senderType  = reflect.TypeOf((*Sender)(nil)).Elem()
	responseType = reflect.TypeOf((*httpmsg.Response)(nil))
	handlerType  = reflect.TypeOf((*StreamingHandler)(nil)).Elem()

	int64Type      = reflect.TypeOf(int64(0))
	float64Type    = reflect.TypeOf(float64(0))
	stringType     = reflect.TypeOf("")
	optInt64Type   = reflect.TypeOf(Optional[int64]{})
	optFloat64Type = reflect.TypeOf(Optional[float64]{})
	optStringType  = reflect.TypeOf(Optional[string]{})
)

// goTypeFor maps a pattern element type to the single Go type a handler
// parameter bound to it must declare.
func goTypeFor(pt pattern.ParamType) reflect.Type {
	switch pt {
	case pattern.Int64:
		return int64Type
	case pattern.Double:
		return float64Type
	case pattern.String:
		return stringType
	case pattern.OptInt64:
		return optInt64Type
	case pattern.OptDouble:
		return optFloat64Type
	case pattern.OptString:
		return optStringType
	default:
		return nil
	}
}

// reflectFunc validates that handler is a function value and returns its
// reflect.Value and reflect.Type.
func reflectFunc(handler any) (reflect.Value, reflect.Type, error) {
	fnVal := reflect.ValueOf(handler)
	if fnVal.Kind() != reflect.Func {
		return reflect.Value{}, nil, ErrHandlerNotFunc
	}
	return fnVal, fnVal.Type(), nil
}

// checkSignature validates that fnType takes leading as its first parameter
// followed by exactly len(schema) parameters matching schema element for
// element, and returns a single value assignable to wantReturn.
func checkSignature(fnType reflect.Type, leading, wantReturn reflect.Type, schema []pattern.ParamType, desc string) error {
	if fnType.NumIn() < 1 || fnType.In(0) != leading {
		return fmt.Errorf("%w: %s: handler must take %s as its first parameter", ErrHandlerSignature, desc, leading)
	}
	got := fnType.NumIn() - 1
	if got != len(schema) {
		return fmt.Errorf("%w: %s: handler declares %d parameters after the leading one, pattern schema has %d", ErrSchemaMismatch, desc, got, len(schema))
	}
	for i, pt := range schema {
		want := goTypeFor(pt)
		have := fnType.In(i + 1)
		if want != have {
			return fmt.Errorf("%w: %s: parameter %d: pattern expects %s (%s), handler declares %s", ErrSchemaMismatch, desc, i, pt, want, have)
		}
	}
	if fnType.NumOut() != 1 || !fnType.Out(0).AssignableTo(wantReturn) {
		return fmt.Errorf("%w: %s: handler must return a single value assignable to %s", ErrBadReturn, desc, wantReturn)
	}
	return nil
}

// extractAll converts a successful pattern match into the boxed argument
// values a handler call will splice in after its leading parameter, one per
// schema element, following the per-type extraction and overflow rules.
func extractAll(compiled *pattern.Compiled, path string, idx []int) []any {
	values := make([]any, len(compiled.Schema))
	for i, pt := range compiled.Schema {
		raw, present := compiled.Group(path, idx, i)
		values[i] = extractOne(pt, raw, present)
	}
	return values
}

func extractOne(pt pattern.ParamType, raw string, present bool) any {
	switch pt {
	case pattern.Int64:
		return parseInt64(raw)
	case pattern.Double:
		return parseDouble(raw)
	case pattern.String:
		return raw
	case pattern.OptInt64:
		if !present {
			return Optional[int64]{}
		}
		return Some(parseInt64(raw))
	case pattern.OptDouble:
		if !present {
			return Optional[float64]{}
		}
		return Some(parseDouble(raw))
	case pattern.OptString:
		if !present {
			return Optional[string]{}
		}
		return Some(raw)
	default:
		panic(fmt.Sprintf("route: unreachable param type %v", pt))
	}
}

// invokeBuffered calls a reflected buffered handler, recovering from panics
// and converting them into ErrHandlerPanic so a misbehaving handler can't
// crash the worker that's running it.
func invokeBuffered(fn reflect.Value, req *httpmsg.Request, values []any) (resp *httpmsg.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()
	args := make([]reflect.Value, 0, len(values)+1)
	args = append(args, reflect.ValueOf(req))
	for _, v := range values {
		args = append(args, reflect.ValueOf(v))
	}
	out := fn.Call(args)
	resp, _ = out[0].Interface().(*httpmsg.Response)
	return resp, nil
}

// constructStreaming calls a reflected streaming factory, recovering from
// panics the same way invokeBuffered does.
func constructStreaming(fn reflect.Value, sender Sender, values []any) (handler StreamingHandler, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, p)
		}
	}()
	args := make([]reflect.Value, 0, len(values)+1)
	args = append(args, reflect.ValueOf(sender))
	for _, v := range values {
		args = append(args, reflect.ValueOf(v))
	}
	out := fn.Call(args)
	handler, _ = out[0].Interface().(StreamingHandler)
	return handler, nil
}
