// Package dto shapes entities into plain records before they leave the API.
package dto

import (
	"html"
	"reflect"
	"slices"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 UTC layout used when dates are serialized.
const DateLayout = "2006-01-02T15:04:05.000Z"

// Record is a plain projected entity.
type Record = map[string]any

// Options controls ToDTO. Exclude wins over Include.
type Options struct {
	Exclude        []string
	Include        []string
	SerializeDates bool
	RemoveNulls    bool
}

// ToDTO projects data into a Record according to opts.
func ToDTO(data any, opts Options) Record {
	rec := ToRecord(data)
	if rec == nil {
		return nil
	}

	out := make(Record, len(rec))
	for k, v := range rec {
		if slices.Contains(opts.Exclude, k) {
			continue
		}
		if len(opts.Include) > 0 && !slices.Contains(opts.Include, k) {
			continue
		}
		if opts.RemoveNulls && isNull(v) {
			continue
		}
		if opts.SerializeDates {
			if t, ok := v.(time.Time); ok {
				v = FormatDate(t)
			}
		}
		out[k] = v
	}
	return out
}

// ToDTOs applies ToDTO to every element of data.
func ToDTOs[E any](data []E, opts Options) []Record {
	out := make([]Record, 0, len(data))
	for _, d := range data {
		out = append(out, ToDTO(d, opts))
	}
	return out
}

// Pick keeps only keys.
func Pick(data any, keys ...string) Record {
	rec := ToRecord(data)
	out := make(Record, len(keys))
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit drops keys.
func Omit(data any, keys ...string) Record {
	rec := ToRecord(data)
	out := make(Record, len(rec))
	for k, v := range rec {
		if !slices.Contains(keys, k) {
			out[k] = v
		}
	}
	return out
}

// Sanitize HTML-escapes every string value.
func Sanitize(data any) Record {
	rec := ToRecord(data)
	out := make(Record, len(rec))
	for k, v := range rec {
		if s, ok := v.(string); ok {
			v = html.EscapeString(s)
		}
		out[k] = v
	}
	return out
}

// FormatDate renders t in UTC with millisecond precision.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

var timeType = reflect.TypeOf(time.Time{})

// ToRecord converts a struct (or pointer to one) or a string-keyed map into a Record.
// Struct keys follow json tag names; fields tagged "-" and unexported fields are
// skipped, embedded structs are flattened and pointers are dereferenced.
// Anything else yields nil.
func ToRecord(data any) Record {
	if data == nil {
		return nil
	}
	if rec, ok := data.(Record); ok {
		out := make(Record, len(rec))
		for k, v := range rec {
			out[k] = v
		}
		return out
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(Record, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = plain(iter.Value())
		}
		return out
	case reflect.Struct:
		out := make(Record)
		flatten(v, out)
		return out
	default:
		return nil
	}
}

func flatten(v reflect.Value, out Record) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		name, skip := fieldName(f)
		if skip {
			continue
		}

		fv := v.Field(i)
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv, ft = fv.Elem(), ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != timeType {
				flatten(fv, out)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = plain(fv)
	}
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}

// plain unwraps pointers so nil pointers become untyped nil.
func plain(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

// isNull reports whether v would encode as JSON null.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
