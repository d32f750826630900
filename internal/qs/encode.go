// Package qs renders tagged structs as URL query strings with parameters in
// field declaration order.
//
// github.com/google/go-querystring collects everything into url.Values, whose
// Encode sorts keys alphabetically. Bybit recomputes request signatures over
// the query string exactly as transmitted, so parameter order must survive
// from the struct definition to the wire. Each exported field is therefore
// encoded in isolation and the fragments are joined in declaration order.
package qs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
)

// Encode renders v, a struct or pointer to struct carrying url tags, as a
// percent-encoded query string whose parameters appear in field declaration
// order. Fields tagged `url:"-"` are skipped, omitempty semantics follow
// go-querystring, and a nil pointer encodes to the empty string.
func Encode(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return "", fmt.Errorf("qs: expected struct, got %T", v)
	}

	var sb strings.Builder
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(field.Tag.Get("url"), ","); tag == "-" {
			continue
		}

		fragment, err := encodeField(field, rv.Field(i))
		if err != nil {
			return "", err
		}
		if fragment == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(fragment)
	}
	return sb.String(), nil
}

// encodeField renders a single field through go-querystring by wrapping it in
// a synthetic one-field struct, so omitempty and value formatting behave
// exactly as the library defines them. Untagged embedded structs are flattened
// recursively to keep their own declaration order.
func encodeField(field reflect.StructField, value reflect.Value) (string, error) {
	if field.Anonymous && field.Tag.Get("url") == "" && isStruct(field.Type) {
		return Encode(value.Interface())
	}

	wrapper := reflect.New(reflect.StructOf([]reflect.StructField{field})).Elem()
	wrapper.Field(0).Set(value)

	vals, err := query.Values(wrapper.Interface())
	if err != nil {
		return "", fmt.Errorf("qs: field %s: %w", field.Name, err)
	}
	return vals.Encode(), nil
}

func isStruct(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
