package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text passes through", "hello world", "hello world"},
		{"script tag stripped", `<script>alert("xss")</script>hi`, "hi"},
		{"markup stripped, text kept", "<b>bold</b> claim", "bold claim"},
		{"img with event handler", `<img src=x onerror=alert(1)>after`, "after"},
		{"entities round-trip", "fish & chips < pie", "fish & chips < pie"},
		{"quotes survive", `she said "no"`, `she said "no"`},
		{"empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PlainText(tc.input))
		})
	}
}
