package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcutops/bskycli/bskycli/networkmanager"
)

func TestUsers(t *testing.T) {
	tests := []struct {
		format   string
		users    []string
		expected string
	}{
		{format: FormatText, users: []string{"alice", "", "alice2"}, expected: "alice\n\nalice2\n"},
		{format: FormatText, users: nil, expected: ""},
		{format: FormatJSON, users: []string{"alice", "alice2"}, expected: "[\n  \"alice\",\n  \"alice2\"\n]\n"},
		{format: FormatJSON, users: nil, expected: "[]\n"},
		{format: FormatYAML, users: []string{"alice", "alice2"}, expected: "- alice\n- alice2\n"},
		{format: FormatYAML, users: []string{}, expected: "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := NewRenderer(tt.format, &buf)
			require.NoError(t, err)

			require.NoError(t, r.Users(tt.users))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPostsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	err = r.Posts([]networkmanager.Post{{Text: "hello"}, {Text: "world"}})
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", buf.String())
}

func TestPostsJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.Posts([]networkmanager.Post{{Text: "hello"}}))
	assert.Equal(t, "[\n  {\n    \"text\": \"hello\"\n  }\n]\n", buf.String())
}

func TestNewRendererUnsupported(t *testing.T) {
	_, err := NewRenderer("xml", &bytes.Buffer{})
	assert.EqualError(t, err, "unsupported output format: xml (want one of text, json, yaml)")
}
