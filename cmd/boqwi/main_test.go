package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = `entries:
  - entry_name: Sop
    part_of_speech: v:t_c
    definition: eat
  - entry_name: puq
    part_of_speech: n
    definition: child
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeDict(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDict), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := runCLI(t, "analyze", "bISoptaH", "--kind", "verb")
	require.NoError(t, err)
	assert.Contains(t, out, "bI- + Sop + -taH")
	assert.Contains(t, out, "analyses)")

	out, err = runCLI(t, "analyze", "puqpu'", "-k", "noun", "-o", "json")
	require.NoError(t, err)
	var rows []analysisRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	var keys []string
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	assert.Contains(t, keys, "puq:n")

	_, err = runCLI(t, "analyze", "Sop", "--kind", "adverb")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestLookupCommand(t *testing.T) {
	data := writeDict(t)

	out, err := runCLI(t, "lookup", "--data", data, "puqpu'", "Sop")
	require.NoError(t, err)
	assert.Contains(t, out, "child")
	assert.Contains(t, out, "eat")
	assert.Contains(t, out, "(2 entries)")

	out, err = runCLI(t, "lookup", "--data", data, "xyzzy")
	require.NoError(t, err)
	assert.Contains(t, out, "(no entries found)")
}

func TestDecodeCommand(t *testing.T) {
	out, err := runCLI(t, "decode", "chal", "n:2,slang", "-o", "json")
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	assert.Equal(t, "noun", fields["base"])
	assert.Equal(t, true, fields["slang"])
	assert.Equal(t, float64(2), fields["homophone"])
}

func TestImportCommand(t *testing.T) {
	data := writeDict(t)
	db := filepath.Join(t.TempDir(), "boqwi.db")

	out, err := runCLI(t, "import", data, "--database", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 entries (2 total)")

	out, err = runCLI(t, "lookup", "--database", db, "bISoptaH")
	require.NoError(t, err)
	assert.Contains(t, out, "eat")

	_, err = runCLI(t, "import", data)
	assert.ErrorContains(t, err, "--database")
}
