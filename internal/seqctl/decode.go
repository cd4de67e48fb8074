package seqctl

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kbukum/seqkit/errors"
)

// stdinArg makes an argument read its value from stdin.
const stdinArg = "-"

// readArg returns the raw text of an argument, reading stdin for "-".
func readArg(in io.Reader, arg string) ([]byte, error) {
	if arg != stdinArg {
		return []byte(arg), nil
	}
	if in == nil {
		return nil, errors.MissingField("stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return data, nil
}

// decodeArray parses a JSON array of scalars. JSON null decodes to a nil
// slice, the absent sequence.
func decodeArray(field string, data []byte) ([]any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidFormat(field, "JSON array").WithCause(err)
	}
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, errors.InvalidInput(field, fmt.Sprintf("expected a JSON array, got %s", kindOf(raw)))
	}
	for i, item := range items {
		if !isScalar(item) {
			return nil, errors.InvalidInput(field, fmt.Sprintf("element %d is a %s, only scalars are supported", i, kindOf(item))).
				WithDetail("index", i)
		}
	}
	return items, nil
}

// decodeScalar parses a single element. Text that is not valid JSON is taken
// as a plain string, so `seqctl union-single '["a"]' b` works unquoted.
func decodeScalar(field string, data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !isScalar(v) {
		return nil, errors.InvalidInput(field, fmt.Sprintf("expected a scalar, got %s", kindOf(v)))
	}
	return v, nil
}

// decodeAny parses any JSON document.
func decodeAny(field string, data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.InvalidFormat(field, "JSON").WithCause(err)
	}
	return v, nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, float64, string, bool:
		return true
	default:
		return false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// record is a JSON object element addressed by its "id" or "name" field.
type record map[string]any

// GetID returns the "id" field. decodeRecords guarantees it is an integer
// within int range.
func (r record) GetID() int {
	id, _ := r["id"].(float64)
	return int(id)
}

// GetName returns the "name" field.
func (r record) GetName() string {
	name, _ := r["name"].(string)
	return name
}

// decodeRecords parses a JSON array of objects that all carry the field key
// with the right type: an integer for "id", a string for "name".
func decodeRecords(field, key string, data []byte) ([]record, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidFormat(field, "JSON array of objects").WithCause(err)
	}
	records := make([]record, 0, len(raw))
	for i, obj := range raw {
		v, ok := obj[key]
		if !ok {
			return nil, errors.MissingField(fmt.Sprintf("%s[%d].%s", field, i, key))
		}
		switch key {
		case keyID:
			n, isNum := v.(float64)
			if !isNum || n != math.Trunc(n) {
				return nil, errors.InvalidInput(field, fmt.Sprintf("element %d: id must be an integer", i)).WithDetail("index", i)
			}
			if n < float64(math.MinInt) || n >= -float64(math.MinInt) {
				return nil, errors.InvalidInput(field, fmt.Sprintf("element %d: id %v does not fit in an int", i, n)).WithDetail("index", i)
			}
		case keyName:
			if _, isStr := v.(string); !isStr {
				return nil, errors.InvalidInput(field, fmt.Sprintf("element %d: name must be a string", i)).WithDetail("index", i)
			}
		}
		records = append(records, record(obj))
	}
	return records, nil
}
