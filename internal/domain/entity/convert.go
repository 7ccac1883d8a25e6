package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Payload values arrive from JSON (float64 or json.Number), from YAML
// fixtures (int), or from Go callers (any integer type). Numeric helpers
// accept all of those; text columns take strings only.

// asString accepts a JSON string, or a json.Number kept verbatim so numeric
// looking text (unit labels) survives UseNumber decoding.
func asString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func asUint(v any) (uint, error) {
	switch t := v.(type) {
	case uint:
		return t, nil
	case uint8:
		return uint(t), nil
	case uint16:
		return uint(t), nil
	case uint32:
		return uint(t), nil
	case uint64:
		return uint(t), nil
	case int:
		return signedToUint(int64(t))
	case int8:
		return signedToUint(int64(t))
	case int16:
		return signedToUint(int64(t))
	case int32:
		return signedToUint(int64(t))
	case int64:
		return signedToUint(t)
	case float32:
		return floatToUint(float64(t))
	case float64:
		return floatToUint(t)
	case json.Number:
		return parseUint(t.String())
	case string:
		return parseUint(t)
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func asFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// Bounds of a NUMERIC(10, 2) column.
const (
	decimalScale = 2
	decimalLimit = 1e8
)

// asDecimal reads a number that must fit NUMERIC(10, 2) exactly: at most two
// decimal places and eight integer digits. Scale is judged on the shortest
// decimal form of the parsed value, so "0.10" passes and "0.125" does not.
func asDecimal(v any) (float64, error) {
	f, err := asFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected finite number, got %v", f)
	}
	if math.Abs(f) >= decimalLimit {
		return 0, fmt.Errorf("expected absolute value below %.0f, got %v", decimalLimit, f)
	}
	short := strconv.FormatFloat(f, 'f', -1, 64)
	if dot := strings.IndexByte(short, '.'); dot >= 0 && len(short)-dot-1 > decimalScale {
		return 0, fmt.Errorf("expected at most %d decimal places, got %s", decimalScale, short)
	}
	return f, nil
}

// AsID converts a payload id value into a row id.
func AsID(v any) (uint, error) {
	if v == nil {
		return 0, fmt.Errorf("expected integer, got null")
	}
	return asUint(v)
}

func signedToUint(n int64) (uint, error) {
	if n < 0 {
		return 0, fmt.Errorf("expected non-negative integer, got %d", n)
	}
	return uint(n), nil
}

func floatToUint(f float64) (uint, error) {
	if f < 0 || f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("expected non-negative integer, got %v", f)
	}
	return uint(f), nil
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected non-negative integer, got %q", s)
	}
	return uint(n), nil
}
