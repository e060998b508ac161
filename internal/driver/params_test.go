package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_InsertionOrder(t *testing.T) {
	var p Params
	p.Set("create", "true")
	p.Set("foo", "bar")
	p.Set("create", "false")

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"create", "foo"}, p.Keys())
	assert.Equal(t, "create=false;foo=bar", p.Encode(";"))

	v, ok := p.Get("create")
	assert.True(t, ok)
	assert.Equal(t, "false", v)
	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestParams_MergeAndClone(t *testing.T) {
	base := NewParams("a", "1", "b", "2")
	clone := base.Clone()
	clone.Merge(NewParams("b", "3", "c", "4"))
	clone.Merge(nil)

	assert.Equal(t, "a=1;b=2", base.Encode(";"), "clone must not share storage")
	assert.Equal(t, "a=1;b=3;c=4", clone.Encode(";"))
}

func TestParams_EncodeEmpty(t *testing.T) {
	assert.Equal(t, "", NewParams().Encode(";"))
}

func TestParseQueryString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single pair", "foo=bar", "foo=bar"},
		{"multiple pairs", "foo=bar;baz=qux", "foo=bar;baz=qux"},
		{"empty string", "", ""},
		{"empty segments skipped", ";foo=bar;;", "foo=bar"},
		{"key without value", "shutdown", "shutdown="},
		{"value containing equals", "crypt_key=a=b", "crypt_key=a=b"},
		{"surrounding spaces trimmed", " foo = bar ; baz=qux ", "foo=bar;baz=qux"},
		{"duplicate keys last wins", "foo=1;foo=2", "foo=2"},
		{"empty key skipped", "=orphan;foo=bar", "foo=bar"},
		{"no percent decoding", "path=a%20b", "path=a%20b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQueryString(tt.input, ";").Encode(";"))
		})
	}
}
