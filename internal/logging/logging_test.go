package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugfRespectsSwitch(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		DisableDebug()
		SetOutput(os.Stderr)
	})

	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	EnableDebug()
	assert.True(t, DebugEnabled())
	buf.Reset()
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestErrorfAlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	Errorf("unknown command %q", "bogus")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), `unknown command "bogus"`)
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	require.NoError(t, Configure(path))
	t.Cleanup(Close)

	assert.True(t, TraceEnabled())
	Trace("command.deliver", map[string]interface{}{"id": "new_note", "signal": "newNote()"})
	Close()
	assert.False(t, TraceEnabled())

	Trace("dropped", nil)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 1)
	assert.Equal(t, "command.deliver", lines[0]["msg"])
	assert.Equal(t, "new_note", lines[0]["id"])
	assert.Equal(t, "newNote()", lines[0]["signal"])
}

func TestConfigureEmptyPathDisablesTracing(t *testing.T) {
	require.NoError(t, Configure(""))
	assert.False(t, TraceEnabled())
}
