package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostd/internal/ipc"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{raw: "dark", want: "dark"},
		{raw: `"dark"`, want: "dark"},
		{raw: "1.25", want: 1.25},
		{raw: "true", want: true},
		{raw: `{"open":true}`, want: map[string]any{"open": true}},
		{raw: "{not json", want: "{not json"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseValue(tt.raw))
		})
	}
}

func TestTailLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	lines, err := tailLines(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, lines)

	lines, err = tailLines(strings.NewReader(input), 10)
	require.NoError(t, err)
	assert.Len(t, lines, 4)

	lines, err = tailLines(strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunSchema(t *testing.T) {
	var out bytes.Buffer
	schemaCmd.SetOut(&out)
	t.Cleanup(func() { schemaCmd.SetOut(nil) })

	require.NoError(t, runSchema(schemaCmd, nil))
	for _, name := range ipc.SchemaNames() {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	require.NoError(t, runSchema(schemaCmd, []string{ipc.SchemaInbound}))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.NotEmpty(t, doc)

	assert.Error(t, runSchema(schemaCmd, []string{"nope"}))
}

func TestRootCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "open", "window", "status", "paths", "settings", "schema", "about", "config", "logs"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
