package nba

import (
	"strconv"
	"strings"
)

// Field walkers over decoded JSON documents. The API serves most numbers
// as strings ("win": "34"), so the numeric getters coerce both forms.
// A missing key or a value of the wrong type is a FormatError; there is
// no zero-value fallback.

// digMap walks a chain of nested objects and returns the innermost one.
func digMap(m map[string]interface{}, keys ...string) (map[string]interface{}, error) {
	current := m
	for i, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil, &FormatError{Field: strings.Join(keys[:i+1], ".")}
		}
		current = next
	}
	return current, nil
}

func getMap(m map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := m[key].(map[string]interface{})
	if !ok {
		return nil, &FormatError{Field: key}
	}
	return v, nil
}

func getArray(m map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil, &FormatError{Field: key}
	}
	return v, nil
}

func getString(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key].(string)
	if !ok {
		return "", &FormatError{Field: key}
	}
	return v, nil
}

func getBool(m map[string]interface{}, key string) (bool, error) {
	v, ok := m[key].(bool)
	if !ok {
		return false, &FormatError{Field: key}
	}
	return v, nil
}

func getInt(m map[string]interface{}, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, &FormatError{Field: key}
	}
	switch val := v.(type) {
	case float64:
		return int(val), nil
	case string:
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0, &FormatError{Field: key, Detail: "not an integer: " + val}
		}
		return i, nil
	default:
		return 0, &FormatError{Field: key}
	}
}

func getFloat(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, &FormatError{Field: key}
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, &FormatError{Field: key, Detail: "not a number: " + val}
		}
		return f, nil
	default:
		return 0, &FormatError{Field: key}
	}
}

// getNumberString returns a numeric field in its string form, the shape
// stat values are rendered in. String values must parse as numbers.
func getNumberString(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &FormatError{Field: key}
	}
	switch val := v.(type) {
	case string:
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return "", &FormatError{Field: key, Detail: "not a number: " + val}
		}
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	default:
		return "", &FormatError{Field: key}
	}
}
