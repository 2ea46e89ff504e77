package tools

import (
	"fmt"
	"strconv"
)

// ArgumentError reports a missing or mistyped tool argument. Dispatch turns
// it into an invalid-arguments observation the model can self-correct from,
// rather than a generic execution failure.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return e.Reason }

func argErrorf(format string, a ...any) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, a...)}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", argErrorf("missing required argument '%s'", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", argErrorf("argument '%s' must be a string, got %T", key, v)
	}
	if s == "" {
		return "", argErrorf("argument '%s' must not be empty", key)
	}
	return s, nil
}

func optStringArg(args map[string]any, key, def string) (string, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", argErrorf("argument '%s' must be a string, got %T", key, v)
	}
	return s, nil
}

func optNumberArg(args map[string]any, key string, def float64) (float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64: // the usual case: JSON numbers decode to float64
		return n, nil
	case int:
		return float64(n), nil
	case string:
		// models sometimes quote numbers; accept them
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, argErrorf("argument '%s' must be a number, got %q", key, n)
		}
		return f, nil
	default:
		return 0, argErrorf("argument '%s' must be a number, got %T", key, v)
	}
}

// formatNumber renders floats without trailing zeros, so 4.0 prints as "4".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
