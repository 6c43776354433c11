package loader

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML reads a TOML document. Decoded tables carry no ordering, so
// their keys are emitted in ascending order.
func decodeTOML(data []byte) (Value, error) {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Value{}, &SyntaxError{Format: FormatTOML, Line: row, Column: col, Msg: decodeErr.Error()}
		}
		return Value{}, &SyntaxError{Format: FormatTOML, Msg: err.Error()}
	}
	return tomlToValue(doc), nil
}

func tomlToValue(v interface{}) Value {
	switch tv := v.(type) {
	case nil:
		return Null()
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			members = append(members, Member{Key: k, Value: tomlToValue(tv[k])})
		}
		return Object(members...)
	case []interface{}:
		items := make([]Value, 0, len(tv))
		for _, item := range tv {
			items = append(items, tomlToValue(item))
		}
		return Array(items...)
	case string:
		return String(tv)
	case bool:
		return Bool(tv)
	case int64:
		return Number(strconv.FormatInt(tv, 10))
	case float64:
		return Number(strconv.FormatFloat(tv, 'g', -1, 64))
	default:
		// Dates and times.
		return String(fmt.Sprint(tv))
	}
}
