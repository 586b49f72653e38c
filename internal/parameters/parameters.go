// Package parameters parses AI configuration strings, like "minimax,max_depth=4", into Params,
// a map[string]string from which typed values can be popped.
package parameters

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// Value types supported by GetParamOr and PopParamOr.
type Value interface {
	bool | int | float32 | float64 | string | time.Duration
}

// NewFromConfigString creates Params from a comma-separated list of "key" or "key=value" entries.
// Spaces around keys are trimmed and empty entries are ignored.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=") // Only the first '=' separates, values may contain '='.
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		params[key] = strings.TrimSpace(value)
	}
	return params
}

// PopParamOr is like GetParamOr, but it also deletes from the params map the retrieved parameter.
func PopParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr attempts to parse a parameter to the given type if the key is present, or returns the defaultValue
// if not.
//
// For bool types, a key without a value is interpreted as true.
// For time.Duration, values use the time.ParseDuration format (e.g. "500ms", "2s").
func GetParamOr[T Value](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var parsed any
	var err error
	switch any(defaultValue).(type) {
	case string:
		parsed = value
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			parsed = true
		case "false", "0":
			parsed = false
		default:
			err = errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
		}
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = strconv.Atoi(value)
		err = errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	case float32:
		if value == "" {
			return defaultValue, nil
		}
		var f float64
		f, err = strconv.ParseFloat(value, 32)
		parsed = float32(f)
		err = errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = strconv.ParseFloat(value, 64)
		err = errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
	case time.Duration:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err = time.ParseDuration(value)
		err = errors.Wrapf(err, "failed to parse configuration %s=%q to duration", key, value)
	}
	if err != nil {
		return defaultValue, err
	}
	return parsed.(T), nil
}
