package panel

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

// fieldPath is a sequence of keys walked through nested objects.
type fieldPath []string

func (p fieldPath) lookup(doc map[string]interface{}) (interface{}, bool) {
	var current interface{} = doc

	for _, key := range p {
		obj, ok := asObject(current)
		if !ok {
			return nil, false
		}

		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// firstPresent returns the first present value of paths, in order.
func firstPresent(doc map[string]interface{}, paths []fieldPath) (interface{}, bool) {
	for _, path := range paths {
		value, ok := path.lookup(doc)
		if ok && present(value) {
			return value, true
		}
	}

	return nil, false
}

// firstTruthy reports whether any of paths holds a truthy value.
func firstTruthy(doc map[string]interface{}, paths []fieldPath) bool {
	for _, path := range paths {
		value, ok := path.lookup(doc)
		if ok && truthy(value) {
			return true
		}
	}

	return false
}

// firstObject returns the first path holding an object.
func firstObject(doc map[string]interface{}, paths []fieldPath) (map[string]interface{}, bool) {
	for _, path := range paths {
		value, ok := path.lookup(doc)
		if !ok {
			continue
		}

		obj, ok := asObject(value)
		if ok {
			return obj, true
		}
	}

	return nil, false
}

// present is false for null, empty strings and false.
// Numbers, zero included, are present.
func present(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	default:
		return true
	}
}

// truthy is present, except for the number zero.
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return present(value)
	}
}

func asObject(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case entity.Document:
		return v, true
	default:
		return nil, false
	}
}

func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// stringify renders scalars as text and anything else as compact json.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}

	if f, ok := asNumber(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return string(data)
}

// extractString returns the first present value of paths as a string, or "".
func extractString(doc map[string]interface{}, paths []fieldPath) string {
	value, ok := firstPresent(doc, paths)
	if !ok {
		return ""
	}

	return stringify(value)
}
