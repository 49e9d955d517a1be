package frtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "plain string", value: "Levi's", expected: "Levi's"},
		{name: "padded string", value: "  bleu délavé \n", expected: "bleu délavé"},
		{name: "integer", value: 501, expected: "501"},
		{name: "float", value: 23.5, expected: "23.5"},
		{name: "empty string", value: "", expected: ""},
		{name: "whitespace only", value: "   ", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.value))
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{name: "int", value: 98, expected: 98, ok: true},
		{name: "float truncates", value: 98.7, expected: 98, ok: true},
		{name: "numeric string", value: "98", expected: 98, ok: true},
		{name: "float string truncates", value: "2.9", expected: 2, ok: true},
		{name: "padded string", value: " 80 ", expected: 80, ok: true},
		{name: "nil", value: nil, ok: false},
		{name: "empty string", value: "", ok: false},
		{name: "garbage", value: "coton", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Percent(tc.value)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
