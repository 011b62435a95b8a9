package protocol_test

import (
	"testing"

	"kv-go/internal/protocol"
	"kv-go/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{name: "empty", line: "", expected: []string{}},
		{name: "newline only", line: "\n", expected: []string{}},
		{name: "spaces only", line: "   ", expected: []string{}},
		{name: "set", line: "SET a 1\n", expected: []string{"SET", "a", "1"}},
		{name: "crlf", line: "GET a\r\n", expected: []string{"GET", "a"}},
		{name: "trailing space", line: "GET a \n", expected: []string{"GET", "a"}},
		{name: "double space", line: "SET a  1", expected: []string{"SET", "a", "", "1"}},
		{name: "leading space", line: " GET a", expected: []string{"", "GET", "a"}},
		{name: "lone carriage return", line: "GET a\rGET b\n", expected: []string{"GET", "a\rGET", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, protocol.Tokenize(tt.line))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line     string
		expected protocol.Command
	}{
		{"SET a 1", protocol.Command{Op: protocol.OpSet, Key: "a", Value: "1"}},
		{"GET a", protocol.Command{Op: protocol.OpGet, Key: "a"}},
		{"SET a", protocol.Command{Op: protocol.OpInvalid}},
		{"SET a 1 2", protocol.Command{Op: protocol.OpInvalid}},
		{"GET", protocol.Command{Op: protocol.OpInvalid}},
		{"GET a b", protocol.Command{Op: protocol.OpInvalid}},
		{"set a 1", protocol.Command{Op: protocol.OpInvalid}},
		{"FOO", protocol.Command{Op: protocol.OpInvalid}},
		{"", protocol.Command{Op: protocol.OpInvalid}},
		{" GET a", protocol.Command{Op: protocol.OpInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, protocol.Parse(tt.line))
		})
	}
}

func TestExecute(t *testing.T) {
	kv := store.NewKeyValueStore()

	assert.Equal(t, protocol.NotFound, protocol.Execute(protocol.Parse("GET a"), kv))
	assert.Equal(t, protocol.OK, protocol.Execute(protocol.Parse("SET a 1"), kv))
	assert.Equal(t, "1", protocol.Execute(protocol.Parse("GET a"), kv))
	assert.Equal(t, protocol.OK, protocol.Execute(protocol.Parse("SET a 2"), kv))
	assert.Equal(t, "2", protocol.Execute(protocol.Parse("GET a"), kv))
}

func TestExecuteInvalidLeavesStoreUnchanged(t *testing.T) {
	kv := store.NewKeyValueStore()

	for _, line := range []string{"SET a 1 2", "SET a", "FOO", "", "set a 1"} {
		assert.Equal(t, protocol.InvalidCommand, protocol.Execute(protocol.Parse(line), kv), line)
	}

	assert.Equal(t, 0, kv.Len())
	assert.Equal(t, protocol.NotFound, protocol.Execute(protocol.Parse("GET a"), kv))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "SET", protocol.OpSet.String())
	assert.Equal(t, "GET", protocol.OpGet.String())
	assert.Equal(t, "INVALID", protocol.OpInvalid.String())
}
