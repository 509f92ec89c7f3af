package serializer

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

// formatRaw writes a primitive the way JavaScript string coercion does.
func formatRaw(value any) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := value.(fmt.Stringer); ok {
			return s.String()
		}
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if s, ok := value.(fmt.Stringer); ok {
			return s.String()
		}
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return FormatNumber(rv.Float(), 32)
	case reflect.Float64:
		return FormatNumber(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(value)
}

// formatJSON writes a primitive as a JSON literal. Non-finite numbers have
// no JSON form and become null.
func formatJSON(value any, codegen models.CodegenOptions) string {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "null"
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		return FormatNumber(f, bits)
	case reflect.String:
		return syntax.GenString(rv.String(), codegen)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return syntax.GenString(fmt.Sprint(value), codegen)
	}
	return string(data)
}

// FormatNumber formats f like Number.prototype.toString: the shortest
// round-tripping digits, exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
