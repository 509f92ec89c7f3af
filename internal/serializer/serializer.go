// Package serializer renders in-memory values as JavaScript object, array,
// Map and Set literals.
//
// Values are dispatched on their dynamic type. Nil maps, slices and
// pointers render as null. Objects are rendered from
// *orderedmap.OrderedMap[string, any] in insertion order or from Go maps
// with sorted keys. Cyclic values are not detected and will not terminate.
package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

const indentUnit = "  "

// Options control how primitive values are written.
type Options struct {
	// PreserveTypes writes primitives as JSON literals instead of
	// inlining their string form.
	PreserveTypes bool
	// Codegen selects the quote style for preserved strings.
	Codegen models.CodegenOptions
}

// Option configures a serializer call.
type Option func(*Options)

// WithPreserveTypes toggles JSON-literal rendering of primitives.
func WithPreserveTypes(preserve bool) Option {
	return func(o *Options) {
		o.PreserveTypes = preserve
	}
}

// WithCodegenOptions sets the quote style used for preserved strings.
func WithCodegenOptions(opts models.CodegenOptions) Option {
	return func(o *Options) {
		o.Codegen = opts
	}
}

func newOptions(preserve bool, opts []Option) Options {
	o := Options{PreserveTypes: preserve}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// GenObject renders a mapping as an object literal. Keys are written bare
// when they are identifiers. Values are dispatched recursively.
// Accepts *orderedmap.OrderedMap[string, any], map[string]V or []models.Field.
func GenObject(value any, indent string, opts ...Option) string {
	o := newOptions(false, opts)
	if fields, ok := value.([]models.Field); ok {
		return GenFields(fields, indent)
	}
	return genObject(value, indent, o)
}

// GenFields renders the field-array form of an object literal. Values are
// written verbatim and each field may carry a JSDoc block.
func GenFields(fields []models.Field, indent string) string {
	newIndent := indent + indentUnit
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, syntax.GenJSDocComment(f.JSDoc, newIndent)+newIndent+syntax.GenKey(f.Name)+": "+f.Value)
	}
	return syntax.WrapInDelimiters(lines, indent, "{}", true)
}

// GenArray renders a sequence as an array literal.
func GenArray(values any, indent string, opts ...Option) string {
	return genArray(values, indent, newOptions(false, opts))
}

// GenValue renders any value through the same dispatch used for nested
// values, so scalars come out as literals rather than empty objects.
func GenValue(value any, indent string, opts ...Option) string {
	return genRawValue(value, indent, newOptions(false, opts))
}

// GenLiteral renders shorthand, spread and key/value entries as an object
// literal. Pair values are written verbatim.
func GenLiteral(fields []models.LiteralField, indent string) string {
	newIndent := indent + indentUnit
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		switch {
		case f.IsShorthand():
			lines = append(lines, newIndent+syntax.GenKey(f.Key))
		case f.IsSpread():
			lines = append(lines, newIndent+"..."+f.Value)
		default:
			lines = append(lines, newIndent+syntax.GenKey(f.Key)+": "+f.Value)
		}
	}
	return syntax.WrapInDelimiters(lines, indent, "{}", true)
}

// GenMap renders `new Map([...])`. Entries stay on one line unless one of
// them spans several lines. Primitives are JSON literals by default.
func GenMap(entries []models.MapEntry, indent string, opts ...Option) string {
	if len(entries) == 0 {
		return "new Map([])"
	}
	o := newOptions(true, opts)

	render := func(ind string) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = "[" + genRawValue(e.Key, ind, o) + ", " + genRawValue(e.Value, ind, o) + "]"
		}
		return out
	}

	compact := render("")
	if !anyMultiline(compact) {
		return "new Map([" + strings.Join(compact, ", ") + "])"
	}
	return "new Map(" + syntax.WrapInDelimiters(render(indent+indentUnit), indent, "[]", true) + ")"
}

// GenSet renders `new Set([...])` with the same layout rules as GenMap.
func GenSet(values any, indent string, opts ...Option) string {
	items := toSlice(values)
	if len(items) == 0 {
		return "new Set([])"
	}
	o := newOptions(true, opts)

	render := func(ind string) []string {
		out := make([]string, len(items))
		for i, v := range items {
			out[i] = genRawValue(v, ind, o)
		}
		return out
	}

	compact := render("")
	if !anyMultiline(compact) {
		return "new Set([" + strings.Join(compact, ", ") + "])"
	}
	return "new Set(" + syntax.WrapInDelimiters(render(indent+indentUnit), indent, "[]", true) + ")"
}

func anyMultiline(parts []string) bool {
	for _, p := range parts {
		if strings.Contains(p, "\n") {
			return true
		}
	}
	return false
}

func genObject(value any, indent string, o Options) string {
	newIndent := indent + indentUnit
	var lines []string
	eachEntry(value, func(key string, v any) {
		lines = append(lines, newIndent+syntax.GenKey(key)+": "+genRawValue(v, newIndent, o))
	})
	return syntax.WrapInDelimiters(lines, indent, "{}", true)
}

func genArray(values any, indent string, o Options) string {
	newIndent := indent + indentUnit
	items := toSlice(values)
	lines := make([]string, 0, len(items))
	for _, v := range items {
		lines = append(lines, newIndent+genRawValue(v, newIndent, o))
	}
	return syntax.WrapInDelimiters(lines, indent, "[]", true)
}

// genRawValue is the single dispatch point shared by every renderer.
func genRawValue(value any, indent string, o Options) string {
	if value == models.Undefined {
		return "undefined"
	}
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case models.Code:
		return string(v)
	case *orderedmap.OrderedMap[string, any]:
		if v == nil {
			return "null"
		}
		return genObject(v, indent, o)
	case []any:
		if v == nil {
			return "null"
		}
		return genArray(v, indent, o)
	case []models.Field:
		return GenFields(v, indent)
	case string:
		if o.PreserveTypes {
			return syntax.GenString(v, o.Codegen)
		}
		return v
	case json.Number:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return genRawValue(rv.Elem().Interface(), indent, o)
	case reflect.Slice:
		if rv.IsNil() {
			return "null"
		}
		return genArray(value, indent, o)
	case reflect.Array:
		return genArray(value, indent, o)
	case reflect.Map:
		if rv.IsNil() {
			return "null"
		}
		return genObject(value, indent, o)
	}

	if o.PreserveTypes {
		return formatJSON(value, o.Codegen)
	}
	return formatRaw(value)
}

// eachEntry walks an object-like value in rendering order.
func eachEntry(value any, fn func(key string, v any)) {
	switch m := value.(type) {
	case *orderedmap.OrderedMap[string, any]:
		for k, v := range m.AllFromFront() {
			fn(k, v)
		}
		return
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fn(k, m[k])
		}
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return
	}
	type entry struct {
		key   string
		value any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	for _, e := range entries {
		fn(e.key, e.value)
	}
}

func toSlice(values any) []any {
	switch v := values.(type) {
	case nil:
		return nil
	case []any:
		return v
	}
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{values}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
