// Package args turns loosely typed tool arguments into typed values.
//
// Tool arguments arrive as a map decoded from JSON or built from CLI
// flags. Each accessor distinguishes three cases: the key is absent (the
// caller's default applies), the key is present but null or falsy (the
// zero fallback applies), or the key holds a value that is converted or
// rejected with an *Error.
package args

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is the sentinel wrapped by every *Error.
var ErrInvalidArgument = errors.New("invalid argument")

// Error describes an argument that could not be converted.
type Error struct {
	Name  string
	Value any
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("argument %q: %v", e.Name, e.Err)
}

// Unwrap returns ErrInvalidArgument along with the conversion cause.
func (e *Error) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Err}
}

// String returns the string argument name. An absent key yields def and
// a null value yields the empty string.
func String(args map[string]any, name, def string) (string, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}

	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", &Error{Name: name, Value: v, Err: fmt.Errorf("expected string, got %T", v)}
	}
}

// Int returns the integer argument name. An absent key yields def; null,
// zero and the empty string yield falsy. Integral JSON numbers and
// decimal strings are accepted, anything else is an error.
func Int(args map[string]any, name string, def, falsy int) (int, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}

	n, isSet, err := toInt(v)
	if err != nil {
		return 0, &Error{Name: name, Value: v, Err: err}
	}
	if !isSet || n == 0 {
		return falsy, nil
	}
	return n, nil
}

// toInt converts v, reporting isSet=false for null and empty strings.
func toInt(v any) (n int, isSet bool, err error) {
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case int:
		return x, true, nil
	case int32:
		return int(x), true, nil
	case int64:
		return fromInt64(x)
	case float64:
		return fromFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return fromInt64(i)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("not a number: %q", x.String())
		}
		return fromFloat(f)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("not an integer: %q", x)
		}
		return i, true, nil
	default:
		return 0, false, fmt.Errorf("expected integer, got %T", v)
	}
}

func fromInt64(i int64) (int, bool, error) {
	if i > math.MaxInt || i < math.MinInt {
		return 0, false, fmt.Errorf("integer %d out of range", i)
	}
	return int(i), true, nil
}

func fromFloat(f float64) (int, bool, error) {
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false, fmt.Errorf("not an integer: %v", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false, fmt.Errorf("integer %v out of range", f)
	}
	return fromInt64(int64(f))
}
