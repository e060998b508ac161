package driver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Property names read from a datasource
const (
	PropDriver   = "driver"
	PropDatabase = "database"
	PropProtocol = "protocol"
	PropHost     = "host"
	PropPort     = "port"
	PropUsername = "username"
	PropPassword = "password"
	PropCustom   = "custom"
)

// Properties holds the raw key/value configuration of a datasource.
// Keys are matched case-insensitively. Values are whatever the config source produced:
// strings, numbers of any width, nested maps or *Params for custom parameters.
type Properties map[string]any

// lookup finds key, preferring an exact match over a case-insensitive one
func (p Properties) lookup(key string) (any, bool) {
	if v, ok := p[key]; ok {
		return v, true
	}
	for k, v := range p {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether key is present with a non-nil value
func (p Properties) Has(key string) bool {
	v, ok := p.lookup(key)
	return ok && v != nil
}

// String returns the value of key as a string. Scalars of other types are converted.
func (p Properties) String(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok || v == nil {
		return "", false
	}
	return toString(v), true
}

// Int returns the value of key as an int, accepting any numeric type or a numeric string.
// A missing key yields (0, false, nil).
func (p Properties) Int(key string) (int, bool, error) {
	v, ok := p.lookup(key)
	if !ok || v == nil {
		return 0, false, nil
	}
	var n int
	if err := mapstructure.WeakDecode(v, &n); err != nil {
		return 0, true, &ValidationError{Kind: KindInvalidProperty, Property: key, Err: err}
	}
	return n, true, nil
}

// Custom returns the custom parameters of the datasource as new Params.
// A string is parsed with ParseQueryString, a *Params is copied in its own order,
// and a plain map is copied in sorted key order. The receiver is left untouched.
func (p Properties) Custom(delimiter string) (*Params, error) {
	v, ok := p.lookup(PropCustom)
	if !ok || v == nil {
		return &Params{}, nil
	}

	switch custom := v.(type) {
	case string:
		return ParseQueryString(custom, delimiter), nil
	case *Params:
		return custom.Clone(), nil
	case Params:
		return custom.Clone(), nil
	case map[string]string:
		params := &Params{}
		for _, k := range sortedKeys(custom) {
			params.Set(k, custom[k])
		}
		return params, nil
	case map[string]any:
		params := &Params{}
		for _, k := range sortedKeys(custom) {
			params.Set(k, toString(custom[k]))
		}
		return params, nil
	case Properties:
		return Properties{PropCustom: map[string]any(custom)}.Custom(delimiter)
	default:
		return nil, &ValidationError{
			Kind:     KindInvalidProperty,
			Property: PropCustom,
			Err:      fmt.Errorf("expected a string or a mapping, got %T", v),
		}
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		// weak decoding would turn booleans into "1"/"0"
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	}
	var s string
	if err := mapstructure.WeakDecode(v, &s); err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
