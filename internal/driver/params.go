package driver

import (
	"strings"
)

// Params is a string map that remembers insertion order.
// Setting an existing key replaces its value but keeps its original position.
// The zero value is ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams creates Params seeded with the given key/value pairs, in order
func NewParams(pairs ...string) *Params {
	p := &Params{}
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}

// Set stores value under key
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of entries
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order
func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Merge copies every entry of other into p, overwriting on collision
func (p *Params) Merge(other *Params) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}

// Clone returns an independent copy
func (p *Params) Clone() *Params {
	c := &Params{}
	c.Merge(p)
	return c
}

// Encode renders the entries as key=value pairs joined by delimiter
func (p *Params) Encode(delimiter string) string {
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p.values[k])
	}
	return sb.String()
}

// ParseQueryString splits s on delimiter and each segment on its first '='.
// Empty segments are skipped, a segment without '=' yields an empty value,
// and no percent-decoding is done.
func ParseQueryString(s, delimiter string) *Params {
	p := &Params{}
	for _, segment := range strings.Split(s, delimiter) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		p.Set(key, strings.TrimSpace(value))
	}
	return p
}
